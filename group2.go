package bls381

// jacPoint2 is a point on E'(Fp2) (or on the 3-isogenous curve) in Jacobian
// coordinates over Fp2.
type jacPoint2 struct {
	x, y, z FieldElement2
}

func (jp *jacPoint2) set(a *jacPoint2) {
	jp.x.set(&a.x)
	jp.y.set(&a.y)
	jp.z.set(&a.z)
}

// fromBig imports an Element2 triple into limb form.
func (jp *jacPoint2) fromBig(x, y, z *Element2) {
	jp.x.s.importBig(x.S)
	jp.x.t.importBig(x.T)
	jp.y.s.importBig(y.S)
	jp.y.t.importBig(y.T)
	jp.z.s.importBig(z.S)
	jp.z.t.importBig(z.T)
}

// toBig exports the limb point as canonical Element2 coordinates.
func (jp *jacPoint2) toBig() (x, y, z *Element2) {
	x = &Element2{S: jp.x.s.exportBig(), T: jp.x.t.exportBig()}
	y = &Element2{S: jp.y.s.exportBig(), T: jp.y.t.exportBig()}
	z = &Element2{S: jp.z.s.exportBig(), T: jp.z.t.exportBig()}
	return
}

// point2Double doubles a point in Jacobian coordinates over Fp2; out == in
// is OK. Same dbl-2009-l schedule as the Fp path, with extra redc calls
// where the Fp2 cross terms push the (v, w) product past the envelope.
func point2Double(out, in *jacPoint2) {
	var t0, t1, t2, t3, t4, t5, t6 FieldElement2

	t0.sqr(&in.x)       // A = X^2                     v = 4   w = 3
	t1.sqr(&in.y)       // B = Y^2                     v = 4   w = 3
	t2.sqr(&t1)         // C = B^2                     v = 4   w = 3
	t3.add(&in.x, &t1)  // X + B                       v = 8   w = 6
	t3.sqr(&t3)         // (X + B)^2                   v = 4   w = 3
	t4.add(&t0, &t2)    // A + C                       v = 8   w = 6
	t3.sub(&t3, &t4, 3) // (X + B)^2 - A - C           v = 12  w = 11
	t3.lsh(&t3, 1)      // D = 2 ((X+B)^2 - A - C)     v = 24  w = 22

	t4.lsh(&t0, 1)   // 2 * A                       v = 8   w = 6
	t4.add(&t4, &t0) // E = 3 * A                   v = 12  w = 9

	t5.sqr(&t4) // F = E^2                     v = 4   w = 3

	t6.lsh(&t3, 1)      // 2 * D                       v = 48  w = 44
	t6.sub(&t5, &t6, 6) // F - 2 * D                   v = 68  w = 67
	out.x.redc(&t6)     // X3 = F - 2 * D              v = 2   w = 1

	t6.lsh(&in.z, 1)      // 2 * Z                       v = 8   w = 6
	out.z.mul(&t6, &in.y) // Z3 = 2 * Z * Y              v = 4   w = 3

	t2.lsh(&t2, 3)         // 8 * C                       v = 32  w = 24
	t6.sub(&t3, &out.x, 1) // D - X3                      v = 26  w = 24
	t6.redc(&t6)           // reduce (24 * 9 too big)     v = 2   w = 1
	t6.mul(&t6, &t4)       // E * (D - X3)                v = 4   w = 3
	t6.sub(&t6, &t2, 5)    // E * (D - X3) - 8 * C        v = 36  w = 35
	out.y.redc(&t6)        // Y3 = E * (D - X3) - 8 * C   v = 2   w = 1
}

// point2Add adds two points in Jacobian coordinates over Fp2; out may alias
// either input. out.y remains unreduced but within stability bounds.
func point2Add(out, in1, in2 *jacPoint2) {
	var t0, t1, t2, t3, t4, t5, t6, t7, t8, t9, t10 FieldElement2

	t0.sqr(&in1.z) // Z1Z1 = Z1^2                 v = 4   w = 3
	t1.sqr(&in2.z) // Z2Z2 = Z2^2                 v = 4   w = 3

	t2.mul(&t1, &in1.x) // U1 = X1 * Z2Z2              v = 4   w = 3
	t3.mul(&t0, &in2.x) // U2 = X2 * Z1Z1              v = 4   w = 3

	t4.mul(&in1.y, &in2.z) // Y1 * Z2                     v = 4   w = 3
	t4.mul(&t4, &t1)       // S1 = Y1 * Z2 * Z2Z2         v = 4   w = 3

	t5.mul(&in2.y, &in1.z) // Y2 * Z1                     v = 4   w = 3
	t5.mul(&t5, &t0)       // S2 = Y2 * Z1 * Z1Z1         v = 4   w = 3

	t6.sub(&t3, &t2, 2) // H = U2 - U1                 v = 8   w = 7

	t7.lsh(&t6, 1) // 2 * H                       v = 16  w = 14
	t7.redc(&t7)   // reduce (14 * 14 too big)    v = 2   w = 1
	t7.sqr(&t7)    // I = (2 * H)^2               v = 4   w = 3

	t8.mul(&t7, &t6) // J = H * I                   v = 4   w = 3

	t9.sub(&t5, &t4, 2) // S2 - S1                     v = 8   w = 7
	t9.lsh(&t9, 1)      // r = 2 * (S2 - S1)           v = 16  w = 14
	t9.redc(&t9)        // reduce (14 * 14 too big)    v = 2   w = 1

	t10.mul(&t2, &t7) // V = U1 * I                  v = 4   w = 3

	var xr, yr, zr FieldElement2
	xr.lsh(&t10, 1)     // 2 * V                       v = 8   w = 6
	xr.add(&xr, &t8)    // J + 2 * V                   v = 12  w = 9
	t7.sqr(&t9)         // r^2                         v = 4   w = 3
	xr.sub(&t7, &xr, 4) // r^2 - J - 2 * V             v = 20  w = 19
	xr.redc(&xr)        // X3 = r^2 - J - 2 * V        v = 2   w = 1

	t4.lsh(&t4, 1)       // 2 * S1                      v = 8   w = 6
	t4.mul(&t4, &t8)     // 2 * S1 * J                  v = 4   w = 3
	yr.sub(&t10, &xr, 1) // V - X3                      v = 6   w = 5
	yr.mul(&yr, &t9)     // r * (V - X3)                v = 4   w = 3
	yr.sub(&yr, &t4, 2)  // r * (V - X3) - 2 * S1 * J   v = 8   w = 7

	zr.add(&in1.z, &in2.z) // Z1 + Z2                     v = 8   w = 6
	zr.sqr(&zr)            // (Z1 + Z2)^2                 v = 4   w = 3
	t0.add(&t0, &t1)       // Z1Z1 + Z2Z2                 v = 8   w = 6
	zr.sub(&zr, &t0, 3)    // (Z1 + Z2)^2 - Z1Z1 - Z2Z2   v = 12  w = 11
	zr.mul(&zr, &t6)       // Z3 = 2 * Z1 * Z2 * H        v = 4   w = 3

	out.x.set(&xr)
	out.y.set(&yr)
	out.z.set(&zr)
}

// clearH2Chain multiplies by |z| (the magnitude of the BLS parameter) with
// the same Bos-Coster window-2 chain shape as G1, minus the final add:
// 69 links, 2 working registers.
func clearH2Chain(out, in *jacPoint2) {
	point2Double(out, in)
	point2Add(out, out, in)
	for nops := 0; nops < 2; nops++ {
		point2Double(out, out)
	}
	point2Add(out, out, in)
	for nops := 0; nops < 3; nops++ {
		point2Double(out, out)
	}
	point2Add(out, out, in)
	for nops := 0; nops < 9; nops++ {
		point2Double(out, out)
	}
	point2Add(out, out, in)
	for nops := 0; nops < 32; nops++ {
		point2Double(out, out)
	}
	point2Add(out, out, in)
	for nops := 0; nops < 16; nops++ {
		point2Double(out, out)
	}
}
