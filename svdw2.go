package bls381

import "math/big"

// Shallue-van de Woestijne map to E'(Fp2). Same three-candidate structure
// as the Fp map with f2(-1) = 3 + 4i replacing 23:
//
//	x1 = cx1_2 - t^2 sqrt(-3) / (t^2 + 3 + 4i)
//	x2 = t^2 sqrt(-3) / (t^2 + 3 + 4i) - cx2_2
//	x3 = -1 - (t^2 + 3 + 4i)^2 / (3 t^2)
//
// The constants cx1_2 = (3 - sqrt(-3))/2, cx2_2 = cx1_2 - 1, sqrt(-3) and
// 1/3 all lie in Fp. The exceptional case t^2 + 3 + 4i = 0 is patched by
// conditionally assigning x = cx1_2, z = 1.

// SvdW G2 constants, populated by Init.
var (
	cx12Big, cx22Big, sqrtM3Big, inv3Big *big.Int

	bint2Cx12          FieldElement2 // cx1_2 with zero imaginary part
	bint2ThreeP4I      FieldElement2 // 3 + 4i
	bint2One           FieldElement2
	bintCx22, bintSqrtM3 FieldElement
)

// svdw2Com computes t^2, t^2 + 3 + 4i, and the shared term
// t^2*sqrt(-3)/(t^2 + 3 + 4i), inverting t^2*(t^2 + 3 + 4i) itself.
func svdw2Com(t *Element2) (t2, v, com *Element2) {
	t2 = sqrModP2(t)
	v = addModP2(t2, newElement2(3, 4))
	inv := mulModP2(v, t2)
	if !inv.isZero() {
		inv = invertModP2(inv)
	} else {
		inv = NewElement2()
	}
	com = svdw2ComFinish(t2, inv)
	return
}

func svdw2ComFinish(t2, inv *Element2) *Element2 {
	com := sqrModP2(t2)      // t^4
	com = mulModP2(com, inv) // t^2 / (t^2 + 3 + 4i)
	return mulModP2Scalar(com, sqrtM3Big)
}

// svdw2MapHelp walks the three candidates; returns affine coordinates.
func svdw2MapHelp(t2, v, com *Element2, negT bool) (x, y *Element2) {
	// x1 = cx1_2 - com
	x = subModP2(&Element2{S: cx12Big, T: new(big.Int)}, com)
	if y, ok := checkFx2(x, negT, false); ok {
		return x, y
	}

	// x2 = com - cx2_2
	x = subModP2(com, &Element2{S: cx22Big, T: new(big.Int)})
	if y, ok := checkFx2(x, negT, false); ok {
		return x, y
	}

	// x3 = -1 - (t^2 + 3 + 4i)^2 / (3 t^2)
	x = sqrModP2(v)
	x = mulModP2(x, v) // (t^2 + 3 + 4i)^3
	inv := mulModP2(v, t2)
	if !inv.isZero() {
		inv = invertModP2(inv)
	} else {
		inv = NewElement2()
	}
	x = mulModP2(x, inv)            // (t^2 + 3 + 4i)^2 / t^2
	x = mulModP2Scalar(x, inv3Big)  // (t^2 + 3 + 4i)^2 / (3 t^2)
	x = addModP2(x, newElement2(1, 0))
	x = negModP2(x)
	y, _ = checkFx2(x, negT, true)
	return x, y
}

// SvdWMapG2 applies the SvdW map to t over Fp2, returning affine
// coordinates. Variable time.
func SvdWMapG2(t *Element2) (x, y *Element2) {
	Init()
	t2, v, com := svdw2Com(t)
	negT := isNegBig2(t)
	return svdw2MapHelp(t2, v, com, negT)
}

// SvdWMap2G2 applies the SvdW map to two Fp2 inputs sharing one inversion.
func SvdWMap2G2(t1, t2 *Element2) (x1, y1, x2, y2 *Element2) {
	Init()
	a2 := sqrModP2(t1)
	av := addModP2(a2, newElement2(3, 4))
	b2 := sqrModP2(t2)
	bv := addModP2(b2, newElement2(3, 4))

	ia := mulModP2(av, a2)
	ib := mulModP2(bv, b2)
	p10 := ia.isZero()
	p20 := ib.isZero()
	switch {
	case p10 && !p20:
		ib = invertModP2(ib)
		ia = NewElement2()
	case !p10 && p20:
		ia = invertModP2(ia)
		ib = NewElement2()
	case !p10 && !p20:
		both := invertModP2(mulModP2(ia, ib))
		ia, ib = mulModP2(ib, both), mulModP2(ia, both)
	default:
		ia, ib = NewElement2(), NewElement2()
	}

	comA := svdw2ComFinish(a2, ia)
	comB := svdw2ComFinish(b2, ib)

	negT1 := isNegBig2(t1)
	x1, y1 = svdw2MapHelp(a2, av, comA, negT1)
	negT2 := isNegBig2(t2)
	x2, y2 = svdw2MapHelp(b2, bv, comB, negT2)
	return
}

// checkFx2OverZ tries sqrt of f2(x/z) without inverting z.
func checkFx2OverZ(x, z *Element2, negate, force bool) (X, Y, Z *Element2, ok bool) {
	x3 := sqrModP2(x)
	x3 = mulModP2(x3, x)
	z3 := sqrModP2(z)
	z3 = mulModP2(z3, z)
	num := addModP2(x3, mulModP2(newElement2(4, 4), z3)) // x^3 + 4(1+i) z^3

	y, ok := divsqrtModP2(num, z3)
	if !ok && !force {
		return nil, nil, nil, false
	}
	X = mulModP2(x, z)
	Y = mulModP2(y, z3)
	if negate {
		Y = negModP2(Y)
	}
	return X, Y, NewElement2().set(z), true
}

// SvdWMapFOG2 is the field-operations-only SvdW map over Fp2, returning
// Jacobian coordinates. Variable time.
func SvdWMapFOG2(t *Element2) (x, y, z *Element2) {
	Init()
	negT := isNegBig2(t)

	t2 := sqrModP2(t)
	v := addModP2(t2, newElement2(3, 4)) // t^2 + 3 + 4i          = V
	com := mulModP2Scalar(t2, sqrtM3Big) // t^2 sqrt(-3)

	// x1 : (cx1_2 (t^2 + 3 + 4i) - t^2 sqrt(-3)) / (t^2 + 3 + 4i)
	// exceptional case is v == 0 (t == 0 lands on the right answer anyway)
	var u *Element2
	if v.isZero() {
		u = &Element2{S: new(big.Int).Set(cx12Big), T: new(big.Int)}
		v = newElement2(1, 0)
	} else {
		u = subModP2(mulModP2Scalar(v, cx12Big), com)
	}
	if X, Y, Z, ok := checkFx2OverZ(u, v, negT, false); ok {
		return X, Y, Z
	}

	// x2 : (t^2 sqrt(-3) - cx2_2 (t^2 + 3 + 4i)) / (t^2 + 3 + 4i)
	u = subModP2(com, mulModP2Scalar(v, cx22Big))
	if X, Y, Z, ok := checkFx2OverZ(u, v, negT, false); ok {
		return X, Y, Z
	}

	// x3 : ((t^2 + 3 + 4i)^2 + 3 t^2) / (-3 t^2)
	u = sqrModP2(v)
	three := mulModP2Scalar(t2, big.NewInt(3))
	u = addModP2(u, three)
	zz := negModP2(three)
	x, y, z, _ = checkFx2OverZ(u, zz, negT, true)
	return
}

// checkFx2OverZCT is the f2(x/z) probe for the constant-time G2 map.
func checkFx2OverZCT(y, x, z *FieldElement2) bool {
	var num, den, t FieldElement2
	num.sqr(x)        // x^2                                 v = 4   w = 3
	num.mul(&num, x)  // x^3                                 v = 4   w = 3
	den.sqr(z)        // z^2                                 v = 4   w = 3
	den.mul(&den, z)  // z^3                                 v = 4   w = 3
	t.mulI(&den, 2)   // i z^3                               v = 4   w = 4
	t.add(&den, &t)   // (1 + i) z^3                         v = 8   w = 7
	t.lsh(&t, 2)      // 4 (1 + i) z^3                       v = 32  w = 28
	num.add(&num, &t) // x^3 + 4(1+i) z^3                    v = 36  w = 31
	num.redc(&num)    // reduce (36^2 is too big)
	return y.divsqrt(&num, &den)
}

// SvdWMapCTG2 is the constant-time SvdW map over Fp2: all three candidates
// evaluated, winner merged by masked assignment. Returns Jacobian
// coordinates.
func SvdWMapCTG2(t *Element2) (x, y, z *Element2) {
	Init()
	var tt, t2, com, vv FieldElement2
	tt.s.importBig(t.S)
	tt.t.importBig(t.T)
	negT := tt.isNeg()

	t2.sqr(&tt)                       // t^2                            v = 4   w = 3
	vv.add(&t2, &bint2ThreeP4I)       // t^2 + 3 + 4i                   v = 6   w = 4
	com.mulScalar(&t2, &bintSqrtM3)   // t^2 sqrt(-3)                   v = 2   w = 1

	// exceptional case: t^2 + 3 + 4i == 0
	vv.redc(&vv) // partial reduction before the zero test              v = 2   w = 1
	z0 := vv.eq0()

	// x1 : (cx1_2 (t^2 + 3 + 4i) - t^2 sqrt(-3)) / (t^2 + 3 + 4i)
	var x1, y1 FieldElement2
	x1.mulScalar(&vv, &bint2Cx12.s) // cx1_2 (t^2 + 3 + 4i)             v = 2   w = 1
	x1.sub(&x1, &com, 1)            // " - t^2 sqrt(-3)                 v = 4   w = 3
	x1.condAssign(z0, &bint2Cx12, &x1) // x = (z == 0) ? cx1_2 : x
	vv.condAssign(z0, &bint2One, &vv)  // z = (z == 0) ? 1 : z
	x1g := checkFx2OverZCT(&y1, &x1, &vv)

	// x2 : (t^2 sqrt(-3) - cx2_2 (t^2 + 3 + 4i)) / (t^2 + 3 + 4i)
	var x2, y2 FieldElement2
	x2.mulScalar(&vv, &bintCx22) // cx2_2 (t^2 + 3 + 4i)                v = 2   w = 1
	x2.sub(&com, &x2, 1)         // t^2 sqrt(-3) - cx2_2 (...)          v = 4   w = 3
	x2g := checkFx2OverZCT(&y2, &x2, &vv)

	// select from x1 or x2
	var xo, yo, zo FieldElement2
	xo.condAssign(x1g, &x1, &x2)
	yo.condAssign(x1g, &y1, &y2)
	found := x1g || x2g

	// x3 : ((t^2 + 3 + 4i)^2 + 3 t^2) / (-3 t^2)
	var x3, y3, z3 FieldElement2
	x3.sqr(&vv)      // (t^2 + 3 + 4i)^2                                v = 4   w = 3
	z3.lsh(&t2, 1)   // 2 t^2                                          v = 8   w = 6
	z3.add(&z3, &t2) // 3 t^2                                          v = 12  w = 9
	x3.add(&z3, &x3) // (t^2 + 3 + 4i)^2 + 3 t^2                       v = 16  w = 12
	x3.redc(&x3)     // reduce mod p                                   v = 2   w = 1
	z3.neg(&z3, 4)   // -3 t^2                                         v = 16  w = 16
	z3.redc(&z3)     // reduce mod p                                   v = 2   w = 1
	checkFx2OverZCT(&y3, &x3, &z3)

	// if we had not found it already, we have now
	xo.condAssign(found, &xo, &x3)
	yo.condAssign(found, &yo, &y3)
	zo.condAssign(found, &vv, &z3)

	// negate Y if necessary
	var yn FieldElement2
	yn.neg(&yo, 2)
	yo.condAssign(negT, &yn, &yo)

	// Jacobian coordinates
	var jp jacPoint2
	jp.x.mul(&xo, &zo)
	yn.sqr(&zo)
	jp.y.mul(&yo, &yn)
	jp.y.mul(&jp.y, &zo)
	jp.z.set(&zo)

	return jp.toBig()
}
