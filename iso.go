package bls381

// Evaluation of the 11-isogeny from E11 to E(Fp) on a Jacobian point,
// using Horner's rule with coefficients pre-scaled by even powers of Z.

// Montgomery-form isogeny coefficient tables, populated by Init.
var (
	isoXNum [12]FieldElement
	isoXDen [10]FieldElement
	isoYNum [16]FieldElement
	isoYDen [15]FieldElement
)

// horner folds the pre-scaled coefficient vector into out over x, starting
// at index startval.
func horner(out, x *FieldElement, scaled []FieldElement, startval int) {
	for i := startval; i >= 0; i-- {
		out.mul(out, x)          // tot *= x               v = 2   w = 1
		out.add(out, &scaled[i]) // tot += next_val        v = 4   w = 2
	}
}

// evalIso11 evaluates the 11-isogeny in place. The x-map has numerator
// degree 11 over a monic degree-10 denominator; the y-map numerator degree
// 15 over a monic degree-14 denominator evaluated at matching degree 15.
func evalIso11(jp *jacPoint) {
	// even powers of Z up to Z^30: zpow[i] = Z^(2(i+1))
	var zpow [15]FieldElement
	zpow[0].sqr(&jp.z)           // Z^2
	zpow[1].sqr(&zpow[0])        // Z^4
	zpow[2].mul(&zpow[1], &zpow[0]) // Z^6
	zpow[3].sqr(&zpow[1])        // Z^8
	for i := 0; i < 3; i++ {
		zpow[4+i].mul(&zpow[3+i], &zpow[0]) // Z^10, Z^12, Z^14
	}
	zpow[7].sqr(&zpow[3]) // Z^16
	for i := 0; i < 7; i++ {
		zpow[8+i].mul(&zpow[7+i], &zpow[0]) // Z^18, ..., Z^30
	}

	var scaled [15]FieldElement
	var xnum, xden, ynum, yden FieldElement

	// y-map denominator: k_i Z^(2(15-i)); denominator is monic
	for i := 0; i < 15; i++ {
		scaled[i].mul(&isoYDen[i], &zpow[14-i])
	}
	yden.add(&jp.x, &scaled[14]) // X + k_14 Z^2
	horner(&yden, &jp.x, scaled[:], 13)
	yden.mul(&yden, &zpow[0]) // Yden * Z^2
	yden.mul(&yden, &jp.z)    // Yden * Z^3

	// y-map numerator: k_i Z^(2(15-i)) for i < 15, leading k_15 out of line
	for i := 0; i < 15; i++ {
		scaled[i].mul(&isoYNum[i], &zpow[14-i])
	}
	ynum.mul(&jp.x, &isoYNum[15]) // k_15 * X
	ynum.add(&ynum, &scaled[14])  // k_15 * X + k_14 Z^2
	horner(&ynum, &jp.x, scaled[:], 13)
	ynum.mul(&ynum, &jp.y) // Ynum * Y

	// x-map denominator: k_i Z^(2(10-i)); monic
	for i := 0; i < 10; i++ {
		scaled[i].mul(&isoXDen[i], &zpow[9-i])
	}
	xden.add(&jp.x, &scaled[9]) // X + k_9 Z^2
	horner(&xden, &jp.x, scaled[:], 8)
	// mul by Z^2 because the numerator has degree one greater
	xden.mul(&xden, &zpow[0])

	// x-map numerator: k_i Z^(2(11-i)) for i < 11, leading k_11 out of line
	for i := 0; i < 11; i++ {
		scaled[i].mul(&isoXNum[i], &zpow[10-i])
	}
	xnum.mul(&jp.x, &isoXNum[11]) // k_11 * X
	xnum.add(&xnum, &scaled[10])  // k_11 * X + k_10 Z^2
	horner(&xnum, &jp.x, scaled[:], 9)

	// Jacobian output so that X/Z^2 = xnum/xden and Y/Z^3 = ynum/yden
	jp.z.mul(&xden, &yden)  // Z = Xden Yden
	jp.x.mul(&xnum, &yden)  // Xnum Yden
	jp.x.mul(&jp.x, &jp.z)  // Xnum Xden Yden^2
	zpow[0].sqr(&jp.z)      // Z^2
	jp.y.mul(&ynum, &xden)  // Ynum Xden
	jp.y.mul(&jp.y, &zpow[0]) // Ynum Xden (Xden Yden)^2
}
