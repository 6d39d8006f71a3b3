package bls381

import "math/big"

// Shallue-van de Woestijne map straight to E(Fp) (no isogeny). Three
// candidate abscissas are produced whose g-values multiply to a square, so
// at least one is the x-coordinate of a point:
//
//	x1 = cx1 + t^2 sqrt(-27) / (23 - t^2)
//	x2 = cx2 - t^2 sqrt(-27) / (23 - t^2)
//	x3 = -3 - (23 - t^2)^2 / (27 t^2)
//
// with cx1 = (3 - sqrt(-27))/2 and cx2 = cx1 - 1. In the fast and batched
// paths the exceptional value t^2 = 23 (and t = 0) is patched by skipping
// the inversion, which lands on x1 = cx1 / x2 = cx2; in SvdWMapFO and
// SvdWMapCT a zero 23 - t^2 fails both the x1 and x2 probes and x3 is used.

// SvdW constants, populated by Init: big.Int values for the variable-time
// paths and Montgomery limb values for the constant-time path.
var (
	cx1Big, cx2Big, sqrtM27Big, invM27Big *big.Int

	bintCx1, bintCx2, bintSqrtM27 FieldElement
	bint23, bintM27               FieldElement
)

// svdwXCommon computes t^2, 23 - t^2, and t^2*sqrt(-27)/(23 - t^2) (zero in
// the exceptional case), inverting t^2*(23 - t^2) itself.
func svdwXCommon(t *big.Int) (t2, v, com *big.Int) {
	t2 = sqrModP(t)
	v = subModP(big.NewInt(23), t2)
	inv := mulModP(v, t2)
	if inv.Sign() != 0 {
		inv.ModInverse(inv, fldP)
	}
	com = svdwCom(t2, inv)
	return
}

// svdwCom finishes the shared term t^2*sqrt(-27)/(23 - t^2) from t^2 and
// the inverse of t^2*(23 - t^2).
func svdwCom(t2, inv *big.Int) *big.Int {
	com := sqrModP(t2)           // t^4
	com = mulModP(com, inv)      // t^2 / (23 - t^2)
	return mulModP(com, sqrtM27Big) // t^2 sqrt(-27) / (23 - t^2)
}

// svdwMapHelp walks the three candidates given the precomputed shared
// values; it returns affine coordinates.
func svdwMapHelp(t2, v, com *big.Int, negT bool) (x, y *big.Int) {
	// x1
	x = addModP(cx1Big, com)
	if y, ok := checkFx(x, negT, false, false); ok {
		return x, y
	}

	// x2
	x = subModP(cx2Big, com)
	if y, ok := checkFx(x, negT, false, false); ok {
		return x, y
	}

	// x3 = -3 - (23 - t^2)^2 / (27 t^2)
	x = sqrModP(v)
	x = mulModP(x, v) // (23 - t^2)^3
	inv := mulModP(v, t2)
	if inv.Sign() != 0 {
		inv.ModInverse(inv, fldP)
	}
	x = mulModP(x, inv)         // (23 - t^2)^2 / t^2
	x = mulModP(x, invM27Big)   // -(23 - t^2)^2 / (27 t^2)
	x = subModP(x, big.NewInt(3))
	y, _ = checkFx(x, negT, true, false)
	return x, y
}

// SvdWMap applies the SvdW map to t, returning affine coordinates (Z = 1).
// Variable time.
func SvdWMap(t *big.Int) (x, y *big.Int) {
	Init()
	t2, v, com := svdwXCommon(t)
	negT := isNegBig(new(big.Int).Mod(t, fldP))
	return svdwMapHelp(t2, v, com, negT)
}

// SvdWMap2 applies the SvdW map to two inputs at once, sharing a single
// field inversion between them via Montgomery's trick.
func SvdWMap2(t1, t2 *big.Int) (x1, y1, x2, y2 *big.Int) {
	Init()
	a2 := sqrModP(t1)
	av := subModP(big.NewInt(23), a2)
	b2 := sqrModP(t2)
	bv := subModP(big.NewInt(23), b2)

	ia := mulModP(av, a2)
	ib := mulModP(bv, b2)
	p10 := ia.Sign() == 0
	p20 := ib.Sign() == 0
	switch {
	case p10 && !p20:
		ib.ModInverse(ib, fldP)
	case !p10 && p20:
		ia.ModInverse(ia, fldP)
	case !p10 && !p20:
		both := mulModP(ia, ib)
		both.ModInverse(both, fldP)
		ia, ib = mulModP(ib, both), mulModP(ia, both)
	}

	comA := svdwCom(a2, ia)
	comB := svdwCom(b2, ib)

	negT1 := isNegBig(new(big.Int).Mod(t1, fldP))
	x1, y1 = svdwMapHelp(a2, av, comA, negT1)
	negT2 := isNegBig(new(big.Int).Mod(t2, fldP))
	x2, y2 = svdwMapHelp(b2, bv, comB, negT2)
	return
}

// checkFxOverZ tries sqrt of f(x/z) without inverting z; on success the
// point is converted to Jacobian coordinates in place.
func checkFxOverZ(x, z *big.Int, negate, force bool) (X, Y, Z *big.Int, ok bool) {
	x3 := sqrModP(x)
	x3 = mulModP(x3, x)
	z3 := sqrModP(z)
	z3 = mulModP(z3, z)
	num := addModP(x3, mulModP(z3, big.NewInt(4))) // x^3 + 4 z^3

	y, ok := divsqrtBig(num, z3, force)
	if !ok && !force {
		return nil, nil, nil, false
	}
	X = mulModP(x, z)
	Y = mulModP(y, z3)
	if negate {
		Y = subModP(fldP, Y)
	}
	return X, Y, new(big.Int).Mod(z, fldP), true
}

// SvdWMapFO is the SvdW map using field operations only (no inversion),
// returning Jacobian coordinates. Variable time.
func SvdWMapFO(t *big.Int) (x, y, z *big.Int) {
	Init()
	negT := isNegBig(new(big.Int).Mod(t, fldP))

	t2 := sqrModP(t)
	v := subModP(big.NewInt(23), t2) // 23 - t^2                     = V
	com := mulModP(t2, sqrtM27Big)   // t^2 sqrt(-27)

	// x1 : (cx1 (23 - t^2) + t^2 sqrt(-27)) / (23 - t^2)
	u := addModP(mulModP(cx1Big, v), com)
	if X, Y, Z, ok := checkFxOverZ(u, v, negT, false); ok {
		return X, Y, Z
	}

	// x2 : (cx2 (23 - t^2) - t^2 sqrt(-27)) / (23 - t^2)
	u = subModP(mulModP(cx2Big, v), com)
	if X, Y, Z, ok := checkFxOverZ(u, v, negT, false); ok {
		return X, Y, Z
	}

	// x3 : ((23 - t^2)^2 + 81 t^2) / (-27 t^2)
	u = sqrModP(v)
	zz := mulModP(t2, big.NewInt(-27))
	u = subModP(u, mulModP(t2, big.NewInt(-81)))
	x, y, z, _ = checkFxOverZ(u, zz, negT, true)
	return
}

// checkFxOverZCT is the f(x/z) probe for the constant-time map.
func checkFxOverZCT(y, x, z *FieldElement) bool {
	var num, den, t FieldElement
	num.sqr(x)          // x^2                                 v = 2   w = 1
	num.mul(&num, x)    // x^3                                 v = 2   w = 1
	t.sqr(z)            // z^2                                 v = 2   w = 1
	den.mul(&t, z)      // z^3              (DEN)              v = 2   w = 1
	t.lsh(&den, 2)      // 4 z^3                               v = 8   w = 4
	num.add(&num, &t)   // x^3 + 4 z^3      (NUM)              v = 10  w = 5
	return y.divsqrt(&num, &den, false) // y = sqrt(NUM/DEN)   v = 2   w = 1
}

// SvdWMapCT is the constant-time SvdW map: all three candidates are
// evaluated unconditionally and the winner selected by masked assignment.
// Returns Jacobian coordinates.
func SvdWMapCT(t *big.Int) (x, y, z *big.Int) {
	Init()
	var tt, t2, com, vv FieldElement
	tt.importBig(t)
	negT := tt.isNeg()

	t2.sqr(&tt)                 // t^2                                  v = 2   w = 1
	vv.sub(&bint23, &t2, 1)     // 23 - t^2                             v = 4   w = 3
	com.mul(&t2, &bintSqrtM27)  // t^2 sqrt(-27)                        v = 2   w = 1

	// x1: (cx1 (23 - t^2) + t^2 sqrt(-27)) / (23 - t^2)
	var x1, y1 FieldElement
	x1.mul(&bintCx1, &vv) // cx1 (23 - t^2)                             v = 2   w = 1
	x1.add(&x1, &com)     // cx1 (23 - t^2) + t^2 sqrt(-27)             v = 4   w = 2
	x1g := checkFxOverZCT(&y1, &x1, &vv)

	// x2: (cx2 (23 - t^2) - t^2 sqrt(-27)) / (23 - t^2)
	var x2, y2 FieldElement
	x2.mul(&bintCx2, &vv)  // cx2 (23 - t^2)
	x2.sub(&x2, &com, 1)   // cx2 (23 - t^2) - t^2 sqrt(-27)            v = 4   w = 3
	x2g := checkFxOverZCT(&y2, &x2, &vv)

	// select from x1 or x2
	var xo, yo, zo FieldElement
	xo.condAssign(x1g, &x1, &x2) // Xout = x1g ? x1 : x2                v = 4   w = 3
	yo.condAssign(x1g, &y1, &y2) // Yout = x1g ? y1 : y2                v = 2   w = 1
	found := x1g || x2g

	// x3 : ((23 - t^2)^2 + 81 t^2) / (-27 t^2)
	var x3, y3, z3 FieldElement
	x3.sqr(&vv)          // (23 - t^2)^2                                v = 2   w = 1
	z3.mul(&t2, &bintM27) // -27 t^2                                    v = 2   w = 1
	y3.lsh(&z3, 1)       // -54 t^2                                     v = 4   w = 2
	y3.add(&y3, &z3)     // -81 t^2                                     v = 6   w = 3
	x3.sub(&x3, &y3, 3)  // (23 - t^2)^2 + 81 t^2                       v = 10  w = 9
	checkFxOverZCT(&y3, &x3, &z3)

	// if we had not found it already, we have now
	xo.condAssign(found, &xo, &x3)
	yo.condAssign(found, &yo, &y3)
	zo.condAssign(found, &vv, &z3)

	// negate Y if necessary
	var yn FieldElement
	yn.neg(&yo, 1)                // -Y                                 v = 2   w = 2
	yo.condAssign(negT, &yn, &yo) // Y = negT ? -Y : Y                  v = 2   w = 2

	// Jacobian coordinates
	var jp jacPoint
	jp.x.mul(&xo, &zo) // X = x z                                       v = 2   w = 1
	yn.sqr(&zo)        // z^2                                           v = 2   w = 1
	jp.y.mul(&yo, &yn) // y z^2                                         v = 2   w = 1
	jp.y.mul(&jp.y, &zo) // y z^3                                       v = 2   w = 1
	jp.z.set(&zo)

	return jp.toBig()
}
