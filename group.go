package bls381

import "math/big"

// jacPoint is a point on E(Fp) (or on the 11-isogenous curve) in Jacobian
// coordinates: x = X/Z^2, y = Y/Z^3. Z = 0 denotes the point at infinity.
type jacPoint struct {
	x, y, z FieldElement
}

func (jp *jacPoint) set(a *jacPoint) {
	jp.x = a.x
	jp.y = a.y
	jp.z = a.z
}

// fromBig imports a big.Int triple into limb form.
func (jp *jacPoint) fromBig(x, y, z *big.Int) {
	jp.x.importBig(x)
	jp.y.importBig(y)
	jp.z.importBig(z)
}

// toBig exports the limb point as canonical big.Int coordinates.
func (jp *jacPoint) toBig() (x, y, z *big.Int) {
	return jp.x.exportBig(), jp.y.exportBig(), jp.z.exportBig()
}

// pointDouble doubles a point in Jacobian coordinates; out == in is OK.
// From EFD: dbl-2009-l for short Weierstrass a=0.
func pointDouble(out, in *jacPoint) {
	var t0, t1, t2, t3, t4, t5, t6 FieldElement

	t0.sqr(&in.x)       // A = X^2                      v = 2   w = 1
	t1.sqr(&in.y)       // B = Y^2                      v = 2   w = 1
	t2.sqr(&t1)         // C = B^2                      v = 2   w = 1
	t3.add(&in.x, &t1)  // X + B                        v = 4   w = 2
	t3.sqr(&t3)         // (X + B)^2                    v = 2   w = 1
	t4.add(&t0, &t2)    // A + C                        v = 4   w = 2
	t3.sub(&t3, &t4, 2) // (X + B)^2 - A - C            v = 6   w = 5
	t3.lsh(&t3, 1)      // D = 2 * ((X + B)^2 - A - C)  v = 12  w = 10

	t4.lsh(&t0, 1)   // 2 * A                        v = 4   w = 2
	t4.add(&t4, &t0) // E = 3 * A                    v = 6   w = 3

	t5.sqr(&t4) // F = E^2                      v = 2   w = 1

	t6.lsh(&t3, 1)      // 2 * D                        v = 24  w = 20
	t6.sub(&t5, &t6, 5) // F - 2 * D                    v = 34  w = 33
	out.x.redc(&t6)     // X3 = F - 2 * D               v = 2   w = 1

	t6.lsh(&in.z, 1)      // 2 * Z                        v = 4   w = 2
	out.z.mul(&t6, &in.y) // Z3 = 2 * Z * Y               v = 2   w = 1

	t2.lsh(&t2, 3)         // 8 * C                        v = 16  w = 8
	t6.sub(&t3, &out.x, 1) // D - X3                       v = 16  w = 14
	t6.mul(&t6, &t4)       // E * (D - X3)                 v = 2   w = 1
	t6.sub(&t6, &t2, 4)    // E * (D - X3) - 8 * C         v = 18  w = 17
	out.y.redc(&t6)        // Y3 = E * (D - X3) - 8 * C    v = 2   w = 1
}

// pointAdd adds two points in Jacobian coordinates; out may alias either
// input. out.y remains unreduced, but meets the numerical stability
// criteria for the next operation.
// From EFD: add-2007-bl.
func pointAdd(out, in1, in2 *jacPoint) {
	var t0, t1, t2, t3, t4, t5, t6, t7, t8, t9, t10 FieldElement

	t0.sqr(&in1.z) // Z1Z1 = Z1^2                  v = 2   w = 1
	t1.sqr(&in2.z) // Z2Z2 = Z2^2                  v = 2   w = 1

	t2.mul(&t1, &in1.x) // U1 = X1 * Z2Z2               v = 2   w = 1
	t3.mul(&t0, &in2.x) // U2 = X2 * Z1Z1               v = 2   w = 1

	t4.mul(&in1.y, &in2.z) // Y1 * Z2                      v = 2   w = 1
	t4.mul(&t4, &t1)       // S1 = Y1 * Z2 * Z2Z2          v = 2   w = 1

	t5.mul(&in2.y, &in1.z) // Y2 * Z1                      v = 2   w = 1
	t5.mul(&t5, &t0)       // S2 = Y2 * Z1 * Z1Z1          v = 2   w = 1

	t6.sub(&t3, &t2, 1) // H = U2 - U1                  v = 4   w = 3

	t7.lsh(&t6, 1) // 2 * H                        v = 8   w = 6
	t7.sqr(&t7)    // I = (2 * H)^2                v = 2   w = 1

	t8.mul(&t7, &t6) // J = H * I                    v = 2   w = 1

	t9.sub(&t5, &t4, 1) // S2 - S1                      v = 4   w = 3
	t9.lsh(&t9, 1)      // r = 2 * (S2 - S1)            v = 8   w = 6

	t10.mul(&t2, &t7) // V = U1 * I                   v = 2   w = 1

	var xr, yr, zr FieldElement
	xr.lsh(&t10, 1)     // 2 * V                        v = 4   w = 2
	xr.add(&xr, &t8)    // J + 2 * V                    v = 6   w = 3
	t7.sqr(&t9)         // r^2                          v = 2   w = 1
	xr.sub(&t7, &xr, 3) // r^2 - J - 2 * V              v = 10  w = 9
	xr.redc(&xr)        // X3 = r^2 - J - 2 * V         v = 2   w = 1

	t4.lsh(&t4, 1)      // 2 * S1                       v = 4   w = 2
	t4.mul(&t4, &t8)    // 2 * S1 * J                   v = 2   w = 1
	yr.sub(&t10, &xr, 1) // V - X3                      v = 4   w = 3
	yr.mul(&yr, &t9)    // r * (V - X3)                 v = 2   w = 1
	yr.sub(&yr, &t4, 1) // r * (V - X3) - 2 * S1 * J    v = 4   w = 3

	zr.add(&in1.z, &in2.z) // Z1 + Z2                      v = 4   w = 2
	zr.sqr(&zr)            // (Z1 + Z2)^2                  v = 2   w = 1
	t0.add(&t0, &t1)       // Z1Z1 + Z2Z2                  v = 4   w = 2
	zr.sub(&zr, &t0, 2)    // (Z1 + Z2)^2 - Z1Z1 - Z2Z2    v = 6   w = 5
	zr.mul(&zr, &t6)       // Z3 = 2 * Z1 * Z2 * H         v = 2   w = 1

	out.x = xr
	out.y = yr
	out.z = zr
}

// clearHChain multiplies by 1-z using a fixed Bos-Coster window-2 addition
// chain: 70 links, 2 working registers. Rather than multiplying by the full
// cofactor h = (z-1)^2/3, multiplying by 1-z suffices to land in the
// order-q subgroup.
func clearHChain(out, in *jacPoint) {
	pointDouble(out, in)
	pointAdd(out, out, in)
	for nops := 0; nops < 2; nops++ {
		pointDouble(out, out)
	}
	pointAdd(out, out, in)
	for nops := 0; nops < 3; nops++ {
		pointDouble(out, out)
	}
	pointAdd(out, out, in)
	for nops := 0; nops < 9; nops++ {
		pointDouble(out, out)
	}
	pointAdd(out, out, in)
	for nops := 0; nops < 32; nops++ {
		pointDouble(out, out)
	}
	pointAdd(out, out, in)
	for nops := 0; nops < 16; nops++ {
		pointDouble(out, out)
	}
	pointAdd(out, out, in)
}

// ClearH multiplies the G1 point (x, y, z) by 1-z (z the BLS parameter),
// clearing the cofactor. Inputs and outputs are canonical Jacobian
// coordinates.
func ClearH(x, y, z *big.Int) (X, Y, Z *big.Int) {
	var in, out jacPoint
	in.fromBig(x, y, z)
	clearHChain(&out, &in)
	return out.toBig()
}

// AddClearH adds two G1 points together and clears the cofactor of the sum.
func AddClearH(x1, y1, z1, x2, y2, z2 *big.Int) (X, Y, Z *big.Int) {
	var a, b, out jacPoint
	a.fromBig(x1, y1, z1)
	b.fromBig(x2, y2, z2)
	pointAdd(&b, &b, &a)
	clearHChain(&out, &b)
	return out.toBig()
}
