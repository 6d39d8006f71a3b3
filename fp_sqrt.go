package bls381

import "math/bits"

// Fixed exponents for the square-root chains, derived from the limbs of p.
// p = 3 mod 8, so (p-3)/4 = p>>2 and (p-3)/8 = p>>3 exactly, and
// (p+3)/2 = (p-1)/2 + 2. The Fp2 exponent (p^2-9)/16 factors as
// ((p-3)/8) * ((p+3)/2), which lets both chains run on 7-limb data.
var (
	expPm3o4 [bintNWords]uint64 // (p-3)/4
	expPm3o8 [bintNWords]uint64 // (p-3)/8
	expPp3o2 [bintNWords]uint64 // (p+3)/2
)

func init() {
	for i := 0; i < bintNWords; i++ {
		hi := uint64(0)
		if i+1 < bintNWords {
			hi = fieldP[i+1]
		}
		expPm3o4[i] = (fieldP[i]>>2 | hi<<54) & bintLoMask
		expPm3o8[i] = (fieldP[i]>>3 | hi<<53) & bintLoMask
		expPp3o2[i] = fieldPOver2[i]
	}
	expPp3o2[0] += 2 // (p-1)/2 + 2; no carry, low limb has headroom
}

// expFixed raises base to the fixed public exponent exp by a left-to-right
// square-and-multiply ladder. The operation sequence depends only on exp,
// which is compile-time data, so the walk is input-independent. base must be
// in the (v=2, w=1) envelope; out may alias base.
func expFixed(out, base *FieldElement, exp *[bintNWords]uint64) {
	top := -1
	for i := bintNWords - 1; i >= 0 && top < 0; i-- {
		if exp[i] != 0 {
			top = i*bintBitsPerWord + bits.Len64(exp[i]) - 1
		}
	}
	b := *base
	acc := b
	for k := top - 1; k >= 0; k-- {
		acc.sqr(&acc)
		if exp[k/bintBitsPerWord]>>(uint(k)%bintBitsPerWord)&1 == 1 {
			acc.mul(&acc, &b)
		}
	}
	out.set(&acc)
}

// divsqrt computes (u*v^3)^((p-3)/4) * u*v, which is sqrt(u/v) whenever u/v
// is a quadratic residue. If force is false the candidate is verified by
// squaring and the return value reports success; if force is true the
// (always defined) candidate is returned as-is. r must not alias u or v.
func (r *FieldElement) divsqrt(u, v *FieldElement, force bool) bool {
	var uvk1, uvk2 FieldElement

	uvk1.mul(u, v)          // uv
	uvk2.sqr(v)             // v^2
	uvk2.mul(&uvk2, &uvk1)  // uv^3
	expFixed(r, &uvk2, &expPm3o4)
	r.mul(r, &uvk1) // uv(uv^3)^((p-3)/4)

	if force {
		return true
	}

	// completely reduce u for the comparison
	uvk1.redc(u)
	uvk1.condSubP()

	uvk2.sqr(r)
	uvk2.mul(&uvk2, v)
	return uvk2.condSubPEq(&uvk1.n)
}
