package bls381

import "math/bits"

// FieldElement2 represents an element s + t*i of Fp2 = Fp[i]/(i^2+1), both
// coordinates in the 7x56 Montgomery representation. Operations decompose
// into FieldElement operations and carry the same (v, w) discipline
// per coordinate.
type FieldElement2 struct {
	s, t FieldElement
}

// sqrtConsts holds sqrt(-i) and sqrt(i) in Montgomery form,
// used by divsqrt to disambiguate the four candidate 16th roots.
var sqrtConsts = [2]FieldElement2{
	{
		s: FieldElement{n: [bintNWords]uint64{
			0x32a25aa33e2f27, 0xc1e049e27ca1d2, 0x55ca94c3f707a, 0x3b937942010b7b,
			0xa544de3d5a86aa, 0x9c66da5556a044, 0xcea338ec515,
		}},
		t: FieldElement{n: [bintNWords]uint64{
			0x32a25aa33e2f27, 0xc1e049e27ca1d2, 0x55ca94c3f707a, 0x3b937942010b7b,
			0xa544de3d5a86aa, 0x9c66da5556a044, 0xcea338ec515,
		}},
	},
	{
		s: FieldElement{n: [bintNWords]uint64{
			0x32a25aa33e2f27, 0xc1e049e27ca1d2, 0x55ca94c3f707a, 0x3b937942010b7b,
			0xa544de3d5a86aa, 0x9c66da5556a044, 0xcea338ec515,
		}},
		t: FieldElement{n: [bintNWords]uint64{
			0xcc5da55cc17b84, 0x3e1e6771835de7, 0x9b9a07a9e4ae31, 0xb7f1997d662557,
			0xa667f9271cc4da, 0x4a3370c65115fe, 0xd16de5b746a,
		}},
	},
}

func (r *FieldElement2) set(a *FieldElement2) {
	r.s = a.s
	r.t = a.t
}

func (r *FieldElement2) setZero() {
	r.s.setZero()
	r.t.setZero()
}

// set1 sets r to one (Montgomery form) with zero imaginary part.
func (r *FieldElement2) set1() {
	r.s.set1()
	r.t.setZero()
}

// eq0 reports whether r is zero; both coordinates are tested so the check
// does not short-circuit. r ends up reduced.
func (r *FieldElement2) eq0() bool {
	sz := r.s.eq0()
	tz := r.t.eq0()
	return sz && tz
}

// isNeg implements the Sgn0 convention for Fp2: the sign is carried by the
// first coordinate unless it is zero, in which case the second decides.
func (r *FieldElement2) isNeg() bool {
	abscCmp0 := r.s.cmp0()
	ordnIsNeg := r.t.isNeg()
	if abscCmp0 == 0 {
		return ordnIsNeg
	}
	return abscCmp0 < 0
}

func (r *FieldElement2) add(a, b *FieldElement2) {
	r.s.add(&a.s, &b.s)
	r.t.add(&a.t, &b.t)
}

func (r *FieldElement2) sub(a, b *FieldElement2, bup uint) {
	r.s.sub(&a.s, &b.s, bup)
	r.t.sub(&a.t, &b.t, bup)
}

func (r *FieldElement2) neg(a *FieldElement2, bup uint) {
	r.s.neg(&a.s, bup)
	r.t.neg(&a.t, bup)
}

func (r *FieldElement2) lsh(a *FieldElement2, sh uint) {
	r.s.lsh(&a.s, sh)
	r.t.lsh(&a.t, sh)
}

func (r *FieldElement2) condAssign(c bool, a, b *FieldElement2) {
	r.s.condAssign(c, &a.s, &b.s)
	r.t.condAssign(c, &a.t, &b.t)
}

// mul computes (s + ti)(s' + t'i) = (ss' - tt') + (st' + ts')i. The real
// part uses sub(..., 1) because each half is Montgomery-reduced with w=1.
// Aliasing with the inputs is fine: all reads happen before writes.
func (r *FieldElement2) mul(a, b *FieldElement2) {
	var tmp1, tmp2, tmp3, tmp4 FieldElement
	tmp1.mul(&a.s, &b.s)
	tmp2.mul(&a.t, &b.t)
	tmp3.mul(&a.s, &b.t)
	tmp4.mul(&a.t, &b.s)
	r.t.add(&tmp4, &tmp3)   // st' + ts'         v = 4   w = 2
	r.s.sub(&tmp1, &tmp2, 1) // ss' - tt'        v = 4   w = 3
}

// sqr computes (s + ti)^2 = (s^2 - t^2) + 2st*i.
func (r *FieldElement2) sqr(a *FieldElement2) {
	var tmp1, tmp2, tmp3 FieldElement
	tmp1.sqr(&a.s)
	tmp2.sqr(&a.t)
	tmp3.mul(&a.s, &a.t)
	r.t.lsh(&tmp3, 1)        // 2st              v = 4   w = 2
	r.s.sub(&tmp1, &tmp2, 1) // s^2 - t^2        v = 4   w = 3
}

func (r *FieldElement2) redc(a *FieldElement2) {
	r.s.redc(&a.s)
	r.t.redc(&a.t)
}

// addScalar adds an Fp value to the real coordinate only.
func (r *FieldElement2) addScalar(a *FieldElement2, b *FieldElement) {
	r.s.add(&a.s, b)
	r.t = a.t
}

// mulI multiplies by sqrt(-1): (s + ti)*i = -t + si, a swap with one
// negation under the budget bup.
func (r *FieldElement2) mulI(a *FieldElement2, bup uint) {
	var tmp FieldElement
	tmp.neg(&a.t, bup)
	r.t = a.s
	r.s = tmp
}

// mulScalar multiplies both coordinates by an Fp scalar.
func (r *FieldElement2) mulScalar(a *FieldElement2, b *FieldElement) {
	r.s.mul(&a.s, b)
	r.t.mul(&a.t, b)
}

// mulScalarI multiplies by b*i for an Fp scalar b.
func (r *FieldElement2) mulScalarI(a *FieldElement2, b *FieldElement) {
	var tmp FieldElement
	tmp.mul(&a.t, b)
	r.t.mul(&a.s, b)
	r.s.neg(&tmp, 1)
}

// negT negates the imaginary coordinate in place (the Frobenius map pi).
func (r *FieldElement2) negT(bup uint) {
	r.t.neg(&r.t, bup)
}

// spmt computes (s + t, s - t); the arguments must not overlap.
func (r *FieldElement2) spmt(a *FieldElement2, bup uint) {
	r.s.add(&a.s, &a.t)
	r.t.sub(&a.s, &a.t, bup)
}

// expFixed2 is the Fp2 counterpart of expFixed.
func expFixed2(out, base *FieldElement2, exp *[bintNWords]uint64) {
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

// divsqrtChain2 raises in to (p^2-9)/16 via the two-factor ladder.
func divsqrtChain2(out, in *FieldElement2) {
	var t FieldElement2
	expFixed2(&t, in, &expPm3o8)
	expFixed2(out, &t, &expPp3o2)
}

// divsqrtHelp2 checks whether tmp^2 * v == u; on a match (and unless
// skipAssign) tmp is stored into out by conditional assignment.
func divsqrtHelp2(out, tmp, u, v *FieldElement2, skipAssign bool) bool {
	var work FieldElement2
	work.sqr(tmp)
	work.mul(&work, v)
	work.sub(u, &work, 2)
	work.redc(&work) // partial reduction before the equality check
	eq := work.eq0()
	if !skipAssign {
		out.condAssign(eq, tmp, out)
	}
	return eq
}

// divsqrt computes u*v^7*(u*v^15)^((p^2-9)/16), one of the four candidate
// roots of u/v differing by factors {1, i, sqrt(i), sqrt(-i)}. All four are
// probed; a match is kept via conditional assignment. Returns whether any
// candidate squared to u/v; if none did, out holds the bare candidate.
// out must not alias u or v.
func (out *FieldElement2) divsqrt(u, v *FieldElement2) bool {
	var tmp, tmp2 FieldElement2

	tmp.sqr(v)           // v^2
	tmp2.mul(&tmp, v)    // v^3
	tmp.sqr(&tmp)        // v^4
	tmp2.mul(&tmp, &tmp2) // v^7
	tmp.sqr(&tmp)        // v^8
	tmp2.mul(&tmp2, u)   // uv^7
	tmp.mul(&tmp, &tmp2) // uv^15

	divsqrtChain2(out, &tmp) // (uv^15)^((p^2-9)/16)
	out.mul(out, &tmp2)      // uv^7 (uv^15)^((p^2-9)/16)

	// candidate as-is
	found := divsqrtHelp2(out, out, u, v, true)

	// sqrt(-1) * candidate
	tmp.mulI(out, 2)
	found = divsqrtHelp2(out, &tmp, u, v, false) || found

	// sqrt(-i) * candidate
	tmp.mul(out, &sqrtConsts[0])
	found = divsqrtHelp2(out, &tmp, u, v, false) || found

	// sqrt(i) * candidate
	tmp.mul(out, &sqrtConsts[1])
	found = divsqrtHelp2(out, &tmp, u, v, false) || found

	return found
}
