package bls381

import "math/big"

// Simplified SWU map to the 11-isogenous curve E11, then isogeny evaluation
// and cofactor clearing. The map targets a curve with j-invariant not in
// {0, 1728}; BLS12-381 itself is reached through the isogeny. Two tricks
// keep it cheap:
//
//  1. If g(X0(u)) is nonsquare, u^3 * g(X0(u))^((p+1)/4) is a square root
//     of g(X1(u)), so one exponentiation serves both candidates.
//  2. sqrt(u/v) is computed without inverting v (divsqrt).
//
// There are two flavors: a math/big variable-time path and a constant-time
// limb path.

// Montgomery-form map constants, populated by Init.
var (
	bintEllpA, bintEllpB, bintOne FieldElement
)

// Variable-time E11 curve constants as big.Ints, populated by Init.
var ellpABig, ellpBBig *big.Int

// swuHelp is the variable-time SWU evaluation; it writes a Jacobian point
// on E11 into out.
func swuHelp(out *jacPoint, u *big.Int) {
	u2 := sqrModP(u)         // u^2
	u4 := sqrModP(u2)        // u^4
	t1 := subModP(u2, u4)    // u^2 - u^4
	t2 := subModP(big.NewInt(1), t1) // u^4 - u^2 + 1
	num := mulModP(t2, ellpBBig)     // b * (u^4 - u^2 + 1)    => X0 num
	den := mulModP(t1, ellpABig)     // a * (u^2 - u^4)        => X0 den
	if den.Sign() == 0 {
		// u was 0, 1, or -1: num is b, den is 0. Use -a instead, since
		// -b/a is square in Fp.
		den = subModP(fldP, ellpABig)
	}

	// numerator and denominator of g(X0) = X0^3 + a*X0 + b:
	// (num^3 + a num den^2 + b den^3) / den^3
	den2 := sqrModP(den)
	gnum := mulModP(num, den2)
	gnum = mulModP(gnum, ellpABig) // a num den^2

	den3 := mulModP(den2, den)
	gnum = addModP(gnum, mulModP(den3, ellpBBig)) // + b den^3

	num2 := sqrModP(num)
	gnum = addModP(gnum, mulModP(num2, num)) // + num^3

	y, ok := divsqrtBig(gnum, den3, false)
	if !ok {
		// g(X0(u)) was nonsquare; move to X1(u). Multiplying by u^3
		// preserves the sign of u, so no extra Sgn0 fixup is needed.
		y = mulModP(y, u2)
		y = mulModP(y, u)          // u^3 * sqrtCand
		num = mulModP(num, u2)     // b u^2 (u^4 - u^2 + 1)
		num = subModP(fldP, num)   // X1 num = -b u^2 (u^4 - u^2 + 1)
	} else if isNegBig(new(big.Int).Mod(u, fldP)) {
		// g(X0(u)) was square and u is negative: negate y
		y = subModP(fldP, y)
	}

	// Jacobian output: X = x*den, Y = y*den^3, Z = den
	x := mulModP(num, den)
	y = mulModP(y, den3)
	out.fromBig(x, y, den)
}

// swuHelpCT is the constant-time SWU evaluation on limb arithmetic.
func swuHelpCT(out *jacPoint, u *big.Int) {
	var uu, t0, t1, t2, t3, t4, t5, t6, t7, t8, t9 FieldElement
	uu.importBig(u)

	// numerator and denominator of X0(u)
	t0.sqr(&uu)                 // u^2                                 v = 2   w = 1
	t1.sqr(&t0)                 // u^4                                 v = 2   w = 1
	t1.sub(&t0, &t1, 2)         // u^2 - u^4                           v = 6   w = 5
	t2.sub(&bintOne, &t1, 3)    // u^4 - u^2 + 1                       v = 9   w = 9
	t2.mul(&t2, &bintEllpB)     // b (u^4 - u^2 + 1)      X0 num       v = 2   w = 1
	t1.mul(&t1, &bintEllpA)     // a (u^2 - u^4)          X0 den       v = 2   w = 1
	t3.neg(&bintEllpA, 1)       // -a                                  v = 4   w = 3

	// exceptional case: denominator zero, patch with -a
	den0 := t1.eq0()
	t1.condAssign(den0, &t3, &t1) // -a or a(u^2 - u^4)                v = 4   w = 3

	// numerator and denominator of g(X0) = (num^3 + a num den^2 + b den^3) / den^3
	t9.sqr(&t1)            // den^2                                    v = 2   w = 1
	t4.mul(&t2, &t9)       // num den^2                                v = 2   w = 1
	t4.mul(&t4, &bintEllpA) // a num den^2                             v = 2   w = 1

	t3.mul(&t9, &t1)        // den^3                                   v = 2   w = 1
	t5.mul(&t3, &bintEllpB) // b den^3                                 v = 2   w = 1
	t4.add(&t4, &t5)        // a num den^2 + b den^3                   v = 4   w = 2

	t5.sqr(&t2)      // num^2                                          v = 2   w = 1
	t5.mul(&t5, &t2) // num^3                                          v = 2   w = 1
	t4.add(&t4, &t5) // num^3 + a num den^2 + b den^3                  v = 6   w = 3

	// sqrt(t4 / t3)
	x0Good := t5.divsqrt(&t4, &t3, false) //                           v = 2   w = 1

	// value for the case that x0 was good and y must be negated
	uNeg := uu.isNeg()
	t8.neg(&t5, 1) // -sqrtCand                                        v = 2   w = 2

	// values for the case that x0 was bad
	t6.mul(&t5, &t0) // u^2 * sqrtCand                                 v = 2   w = 1
	t6.mul(&t6, &uu) // u^3 * sqrtCand                                 v = 2   w = 1
	t7.mul(&t2, &t0) // b u^2 (u^4 - u^2 + 1)                          v = 2   w = 1
	t7.neg(&t7, 1)   // -b u^2 (u^4 - u^2 + 1)                         v = 2   w = 2

	// choose the right values for x and y
	t5.condAssign(uNeg, &t8, &t5)   // Sgn0(u) * sqrtCand              v = 2   w = 2
	t5.condAssign(x0Good, &t5, &t6) // y = u^3 sqrtCand if !x0Good     v = 2   w = 2
	t2.condAssign(x0Good, &t2, &t7) // x = -x u^2 if !x0Good           v = 2   w = 2

	// X, Y, Z
	out.x.mul(&t2, &t1)  // X = x den => x = X / Z^2                   v = 2   w = 1
	t5.mul(&t5, &t9)     // y den^2                                    v = 2   w = 1
	out.y.mul(&t5, &t1)  // Y = y den^3 => y = Y / Z^3                 v = 2   w = 1
	out.z.redc(&t1)      // Z = den                                    v = 2   w = 1
}

// SWUMap evaluates the SWU map at u, applies the 11-isogeny, and clears the
// cofactor. The constantTime flag selects the limb path, which runs with an
// input-independent operation sequence.
func SWUMap(u *big.Int, constantTime bool) (x, y, z *big.Int) {
	Init()
	var jp, out jacPoint
	if constantTime {
		swuHelpCT(&jp, u)
	} else {
		swuHelp(&jp, u)
	}
	evalIso11(&jp)
	clearHChain(&out, &jp)
	return out.toBig()
}

// SWUMap2 evaluates the SWU map at u1 and u2, adds the two points on the
// isogenous curve (the isogeny is a homomorphism, so one evaluation
// suffices), applies the isogeny, and clears the cofactor.
func SWUMap2(u1, u2 *big.Int, constantTime bool) (x, y, z *big.Int) {
	Init()
	var jp0, jp1, out jacPoint
	if constantTime {
		swuHelpCT(&jp0, u1)
		swuHelpCT(&jp1, u2)
	} else {
		swuHelp(&jp0, u1)
		swuHelp(&jp1, u2)
	}
	pointAdd(&jp1, &jp0, &jp1)
	evalIso11(&jp1)
	clearHChain(&out, &jp1)
	return out.toBig()
}

// HashToG1 maps two Fp elements to the order-q subgroup of E(Fp) using the
// constant-time two-input SWU pipeline.
func HashToG1(u1, u2 *big.Int) (x, y, z *big.Int) {
	return SWUMap2(u1, u2, true)
}
