package bls381

// Simplified SWU map to the 3-isogenous curve E2' with xi = 1 + i, followed
// by the 3-isogeny and psi-based cofactor clearing. When g(X0(u)) is
// nonsquare the candidate root is steered to g(X1(u)) by one of four
// precomputed eta values; all four are probed unconditionally and the match
// kept by conditional assignment.

// Montgomery-form G2 map constants, populated by Init.
var (
	bintSwu2Xi  FieldElement2 // xi = 1 + i
	bintEll2pA  FieldElement  // 240; the curve coefficient a is 240*i
	bintEll2pB  FieldElement2 // 1012 + 1012*i
	bintEta01   FieldElement  // eta[0]; eta[1] = eta[0]*i
	bintEta23   [2]FieldElement2
)

// Variable-time G2 map constants as Element2 values, populated by Init.
var (
	swu2XiBig  *Element2
	ell2pABig  *Element2 // 240*i
	ell2pBBig  *Element2
	swu2EtaBig [4]*Element2
)

// swu2Help is the variable-time G2 SWU evaluation, mirroring the value
// selection of the constant-time path so both produce identical points.
func swu2Help(out *jacPoint2, u *Element2) {
	u2 := sqrModP2(u)              // u^2
	xiu2 := mulModP2(u2, swu2XiBig) // xi u^2
	xi2u4 := sqrModP2(xiu2)        // xi^2 u^4
	t1 := addModP2(xi2u4, xiu2)    // xi^2 u^4 + xi u^2
	num := addModP2(t1, newElement2(1, 0)) // xi^2 u^4 + xi u^2 + 1
	num = mulModP2(num, ell2pBBig)         // b (...)            X0 num
	den := negModP2(mulModP2(t1, ell2pABig)) // -a (xi^2 u^4 + xi u^2)  X0 den
	if den.isZero() {
		den = mulModP2(swu2XiBig, ell2pABig) // exceptional case: xi * a
	}

	// g(X0) = (num^3 + a num den^2 + b den^3) / den^3
	den2 := sqrModP2(den)
	den3 := mulModP2(den2, den)
	gnum := mulModP2(num, den2)
	gnum = mulModP2(gnum, ell2pABig)
	gnum = addModP2(gnum, mulModP2(den3, ell2pBBig))
	num2 := sqrModP2(num)
	gnum = addModP2(gnum, mulModP2(num2, num))

	y, ok := divsqrtModP2(gnum, den3)
	if ok {
		if isNegBig2(u) {
			y = negModP2(y)
		}
	} else {
		// move to X1(u) = xi u^2 X0(u); numerator of g(X1) is
		// xi^3 u^6 * gnum over the same denominator
		u3cand := mulModP2(mulModP2(u2, u), y) // u^3 * sqrtCand
		gnum1 := mulModP2(mulModP2(xi2u4, gnum), xiu2)
		for _, eta := range swu2EtaBig {
			cand := mulModP2(eta, u3cand)
			chk := mulModP2(sqrModP2(cand), den3)
			if chk.equal(gnum1) {
				y = cand
				break
			}
		}
		num = mulModP2(num, xiu2) // X1 num = xi u^2 num
	}

	x := mulModP2(num, den)
	yj := mulModP2(y, den3)
	out.fromBig(x, yj, den)
}

// swu2HelpCT is the constant-time G2 SWU evaluation.
func swu2HelpCT(out *jacPoint2, u *Element2) {
	var uu, t0, t1, t2, t3, t4, t5, t6, t7, t8, t9, t10, t11, t12, t13 FieldElement2
	uu.s.importBig(u.S)
	uu.t.importBig(u.T)

	// numerator and denominator of X0(u)
	t11.sqr(&uu)                  // u^2                                v = 4   w = 3
	t0.mul(&t11, &bintSwu2Xi)     // xi u^2                             v = 4   w = 3
	t7.sqr(&t0)                   // xi^2 u^4                           v = 4   w = 3
	t1.add(&t7, &t0)              // xi^2 u^4 + xi u^2                  v = 8   w = 6
	t2.addScalar(&t1, &bintOne)   // xi^2 u^4 + xi u^2 + 1              v = 10  w = 8
	t2.mul(&t2, &bintEll2pB)      // b (xi^2 u^4 + xi u^2 + 1)          v = 4   w = 3
	t1.neg(&t1, 3)                // -(xi^2 u^4 + xi u^2)               v = 8   w = 8
	t1.mulScalarI(&t1, &bintEll2pA) // -a (xi^2 u^4 + xi u^2)           v = 2   w = 2
	t3.mulScalarI(&bintSwu2Xi, &bintEll2pA) // xi a                     v = 2   w = 2

	t1.redc(&t1) // reduce before the zero test                         v = 2   w = 1
	den0 := t1.eq0()
	var den FieldElement2
	den.condAssign(den0, &t3, &t1) // (den == 0) ? xi a : den           v = 4   w = 3

	// g(X0) = (num^3 + a num den^2 + b den^3) / den^3
	t9.sqr(&den)                  // den^2                              v = 4   w = 3
	t4.mul(&t2, &t9)              // num den^2                          v = 4   w = 3
	t4.mulScalarI(&t4, &bintEll2pA) // a num den^2                      v = 2   w = 2

	t3.mul(&t9, &den)        // V = den^3                               v = 4   w = 3
	t5.mul(&t3, &bintEll2pB) // b den^3                                 v = 4   w = 3
	t4.add(&t4, &t5)         // a num den^2 + b den^3                   v = 8   w = 6

	t5.sqr(&t2)      // num^2                                           v = 4   w = 3
	t5.mul(&t5, &t2) // num^3                                           v = 4   w = 3
	t4.add(&t4, &t5) // U = num^3 + a num den^2 + b den^3               v = 12  w = 9

	// sqrtCand ?= sqrt(t4 / t3)
	x0Good := t5.divsqrt(&t4, &t3) //                                   v = 4   w = 3

	// value for the case that x0 was good and y must be negated
	uNeg := uu.isNeg()
	t8.neg(&t5, 2) // -sqrtCand                                         v = 4   w = 4

	// values for the case that x0 was bad
	t13.mul(&t2, &t0)  // xi u^2 num                                    v = 4   w = 3
	t7.mul(&t7, &t4)   // xi^2 u^4 U                                    v = 4   w = 3
	t7.mul(&t7, &t0)   // X1(u) V = xi^3 u^6 U                          v = 4   w = 3
	t11.mul(&t11, &t5) // u^2 sqrtCand                                  v = 4   w = 3
	t11.mul(&t11, &uu) // u^3 sqrtCand                                  v = 4   w = 3

	// probe all four eta values; exactly one can square to g(X1)
	t10.set(&uu)
	tryEta := func(mulEta func(dst, src *FieldElement2)) {
		mulEta(&t6, &t11)       // eta u^3 sqrtCand                     v = 2   w = 1
		t12.sqr(&t6)            // (eta u^3 sqrtCand)^2                 v = 4   w = 3
		t12.mul(&t12, &t3)      // V (eta u^3 sqrtCand)^2               v = 4   w = 3
		t12.sub(&t12, &t7, 2)   // " - U'                               v = 8   w = 7
		t12.redc(&t12)          // reduce before comparing to zero
		eq0 := t12.eq0()
		t10.condAssign(eq0, &t6, &t10) // keep the match
	}
	tryEta(func(dst, src *FieldElement2) { dst.mulScalar(src, &bintEta01) })  // eta[0]
	tryEta(func(dst, src *FieldElement2) { dst.mulScalarI(src, &bintEta01) }) // eta[1] = eta[0] i
	tryEta(func(dst, src *FieldElement2) { dst.mul(src, &bintEta23[0]) })     // eta[2]
	tryEta(func(dst, src *FieldElement2) { dst.mul(src, &bintEta23[1]) })     // eta[3]

	// choose the right values for x and y
	t5.condAssign(uNeg, &t8, &t5)   // Sgn0(u) * sqrtCand               v = 4   w = 4
	t5.condAssign(x0Good, &t5, &t10) // y = eta u^3 sqrtCand if !x0Good v = 4   w = 3
	t2.condAssign(x0Good, &t2, &t13) // x = xi u^2 x if !x0Good         v = 4   w = 3

	// X, Y, Z
	out.x.mul(&t2, &den) // X = num den => x = X / Z^2                  v = 4   w = 3
	t5.mul(&t5, &t9)     // y den^2                                     v = 4   w = 3
	out.y.mul(&t5, &den) // Y = y den^3 => y = Y / Z^3                  v = 4   w = 3
	out.z.redc(&den)     // Z = den                                     v = 2   w = 1
}

// SWUMapG2 evaluates the G2 SWU map at u, applies the 3-isogeny, and
// clears the cofactor via the psi chain.
func SWUMapG2(u *Element2, constantTime bool) (x, y, z *Element2) {
	Init()
	var jp jacPoint2
	if constantTime {
		swu2HelpCT(&jp, u)
	} else {
		swu2Help(&jp, u)
	}
	evalIso3(&jp)
	clearH2Help(&jp)
	return jp.toBig()
}

// SWUMap2G2 evaluates the G2 SWU map at u1 and u2, adds the two points on
// the isogenous curve, applies the isogeny, and clears the cofactor.
func SWUMap2G2(u1, u2 *Element2, constantTime bool) (x, y, z *Element2) {
	Init()
	var jp0, jp1 jacPoint2
	if constantTime {
		swu2HelpCT(&jp0, u1)
		swu2HelpCT(&jp1, u2)
	} else {
		swu2Help(&jp0, u1)
		swu2Help(&jp1, u2)
	}
	point2Add(&jp1, &jp0, &jp1)
	evalIso3(&jp1)
	clearH2Help(&jp1)
	return jp1.toBig()
}

// HashToG2 maps two Fp2 elements to the order-q subgroup of E'(Fp2) using
// the constant-time two-input SWU pipeline.
func HashToG2(u1, u2 *Element2) (x, y, z *Element2) {
	return SWUMap2G2(u1, u2, true)
}
