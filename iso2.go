package bls381

// Evaluation of the 3-isogeny from E2' to E'(Fp2). The x-map has numerator
// degree 3 over a monic degree-2 denominator; the y-map degree 3 over a
// monic degree-3 denominator.

// Montgomery-form 3-isogeny coefficient tables, populated by Init.
var (
	iso2XNum [4]FieldElement2
	iso2XDen [2]FieldElement2
	iso2YNum [4]FieldElement2
	iso2YDen [3]FieldElement2
)

func horner2(out, x *FieldElement2, scaled []FieldElement2, startval int) {
	for i := startval; i >= 0; i-- {
		out.mul(out, x)          // tot *= x         v = 4   w = 3
		out.add(out, &scaled[i]) // tot += next_val  v = 8   w = 6
	}
}

// evalIso3 evaluates the 3-isogeny in place.
func evalIso3(jp *jacPoint2) {
	// even powers of Z up to Z^6: zpow[i] = Z^(2(i+1))
	var zpow [3]FieldElement2
	zpow[0].sqr(&jp.z)              // Z^2
	zpow[1].sqr(&zpow[0])           // Z^4
	zpow[2].mul(&zpow[0], &zpow[1]) // Z^6

	var scaled [3]FieldElement2
	var xnum, xden, ynum, yden FieldElement2

	// y-map denominator: k_i Z^(2(3-i)); monic
	for i := 0; i < 3; i++ {
		scaled[i].mul(&iso2YDen[i], &zpow[2-i])
	}
	yden.add(&jp.x, &scaled[2]) // X + k_2 Z^2
	horner2(&yden, &jp.x, scaled[:], 1)
	yden.mul(&yden, &zpow[0]) // Yden * Z^2
	yden.mul(&yden, &jp.z)    // Yden * Z^3

	// y-map numerator: k_i Z^(2(3-i)) for i < 3, leading k_3 out of line
	for i := 0; i < 3; i++ {
		scaled[i].mul(&iso2YNum[i], &zpow[2-i])
	}
	ynum.mul(&jp.x, &iso2YNum[3]) // k_3 * X
	ynum.add(&ynum, &scaled[2])   // k_3 * X + k_2 Z^2
	horner2(&ynum, &jp.x, scaled[:], 1)
	ynum.mul(&ynum, &jp.y) // Ynum * Y

	// x-map denominator: k_i Z^(2(2-i)); monic
	for i := 0; i < 2; i++ {
		scaled[i].mul(&iso2XDen[i], &zpow[1-i])
	}
	xden.add(&jp.x, &scaled[1]) // X + k_1 Z^2
	horner2(&xden, &jp.x, scaled[:], 0)
	// mul by Z^2 because the numerator has degree one greater
	xden.mul(&xden, &zpow[0])

	// x-map numerator: k_i Z^(2(3-i)) for i < 3, leading k_3 out of line
	for i := 0; i < 3; i++ {
		scaled[i].mul(&iso2XNum[i], &zpow[2-i])
	}
	xnum.mul(&jp.x, &iso2XNum[3]) // k_3 * X
	xnum.add(&xnum, &scaled[2])   // k_3 * X + k_2 Z^2
	horner2(&xnum, &jp.x, scaled[:], 1)

	// Jacobian output
	jp.z.mul(&xden, &yden)    // Z = Xden Yden
	jp.x.mul(&xnum, &yden)    // Xnum Yden
	jp.x.mul(&jp.x, &jp.z)    // Xnum Xden Yden^2
	zpow[0].sqr(&jp.z)        // Z^2
	jp.y.mul(&ynum, &xden)    // Ynum Xden
	jp.y.mul(&jp.y, &zpow[0]) // Ynum Xden (Xden Yden)^2
}
