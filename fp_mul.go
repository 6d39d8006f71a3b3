package bls381

import "math/bits"

// acc128 is a 128-bit accumulator for schoolbook limb products, standing in
// for the reference's __int128. With 56-bit limbs there is room for 256
// products before the top word can overflow; the (v, w) discipline keeps
// callers far inside that envelope.
type acc128 struct {
	lo, hi uint64
}

func (a *acc128) addMul(x, y uint64) {
	hi, lo := bits.Mul64(x, y)
	var c uint64
	a.lo, c = bits.Add64(a.lo, lo, 0)
	a.hi += hi + c
}

// limb extracts the low 56 bits and shifts the accumulator right by 56.
func (a *acc128) limb() uint64 {
	out := a.lo & bintLoMask
	a.lo = a.lo>>bintBitsPerWord | a.hi<<(64-bintBitsPerWord)
	a.hi >>= bintBitsPerWord
	return out
}

// mulWide computes the full 14-limb product of two 7-limb values.
func mulWide(out *[2 * bintNWords]uint64, a, b *[bintNWords]uint64) {
	var t acc128
	for i := 0; i < bintNWords; i++ {
		for j := 0; j <= i; j++ {
			t.addMul(a[j], b[i-j])
		}
		out[i] = t.limb()
	}
	for i := bintNWords; i < 2*bintNWords-1; i++ {
		for j := i + 1 - bintNWords; j < bintNWords; j++ {
			t.addMul(a[j], b[i-j])
		}
		out[i] = t.limb()
	}
	out[2*bintNWords-1] = t.lo
}

// mulLow computes the low 7 limbs of the product, used for m = T*p' mod R.
func mulLow(out *[bintNWords]uint64, a, b *[bintNWords]uint64) {
	var t acc128
	for i := 0; i < bintNWords; i++ {
		for j := 0; j <= i; j++ {
			t.addMul(a[j], b[i-j])
		}
		out[i] = t.limb()
	}
}

// sqrWide computes the full 14-limb square, doubling off-diagonal terms and
// taking the diagonal once.
func sqrWide(out *[2 * bintNWords]uint64, a *[bintNWords]uint64) {
	var t acc128

	t.addMul(a[0], a[0])
	out[0] = t.limb()

	for i := 1; i < bintNWords; i++ {
		for j := 0; j < (i+1)/2; j++ {
			t.addMul(a[j]<<1, a[i-j])
		}
		if i%2 == 0 {
			t.addMul(a[i/2], a[i/2])
		}
		out[i] = t.limb()
	}

	for k := 1; k < bintNWords-1; k++ {
		i := bintNWords + k - 1
		for j := 0; j < (bintNWords-k)/2; j++ {
			t.addMul(a[j+k]<<1, a[i-j-k])
		}
		if i%2 == 0 {
			t.addMul(a[i/2], a[i/2])
		}
		out[i] = t.limb()
	}

	t.addMul(a[bintNWords-1], a[bintNWords-1])
	out[2*bintNWords-2] = t.limb()
	out[2*bintNWords-1] = t.lo
}

// montyHelp performs the Montgomery tail on a wide product T: compute
// m = (T mod R) * p' mod R, add m*p, and take the high half. The result is
// bounded by 2p, i.e. (v=2, w=1).
func montyHelp(out *FieldElement, tmp *[2 * bintNWords]uint64) {
	var m [bintNWords]uint64
	var lowHalf [bintNWords]uint64
	copy(lowHalf[:], tmp[:bintNWords])
	mulLow(&m, &lowHalf, &fieldPP)

	var tmp2 [2 * bintNWords]uint64
	mulWide(&tmp2, &m, &fieldP)

	var c uint64
	for i := 0; i < bintNWords; i++ {
		s := tmp[i] + tmp2[i] + c
		c = s >> bintBitsPerWord
	}
	for i := 0; i < bintNWords; i++ {
		o := tmp[bintNWords+i] + tmp2[bintNWords+i] + c
		c = o >> bintBitsPerWord
		out.n[i] = o & bintLoMask
	}
}

// mul computes r = a*b with Montgomery reduction. Output is in the envelope
// (v=2, w=1); it is canonical only after a further condSubP.
func (r *FieldElement) mul(a, b *FieldElement) {
	var t [2 * bintNWords]uint64
	mulWide(&t, &a.n, &b.n)
	montyHelp(r, &t)
}

// sqr computes r = a^2 with Montgomery reduction.
func (r *FieldElement) sqr(a *FieldElement) {
	var t [2 * bintNWords]uint64
	sqrWide(&t, &a.n)
	montyHelp(r, &t)
}

// redc multiplies by R mod p, reducing a loosely bounded value back to
// (v=2, w=1) without changing its residue class.
func (r *FieldElement) redc(a *FieldElement) {
	var one FieldElement
	one.n = fieldR
	r.mul(a, &one)
}

// toMonty enters Montgomery form by multiplying with R^2.
func (r *FieldElement) toMonty(a *FieldElement) {
	var rsq FieldElement
	rsq.n = fieldRSq
	r.mul(a, &rsq)
}

// fromMonty leaves Montgomery form (one reduction round with T = a) and
// fully reduces the result below p.
func (r *FieldElement) fromMonty(a *FieldElement) {
	var m [bintNWords]uint64
	mulLow(&m, &a.n, &fieldPP)

	var tmp2 [2 * bintNWords]uint64
	mulWide(&tmp2, &m, &fieldP)

	var c uint64
	for i := 0; i < bintNWords; i++ {
		s := a.n[i] + tmp2[i] + c
		c = s >> bintBitsPerWord
	}
	for i := 0; i < bintNWords-1; i++ {
		o := tmp2[bintNWords+i] + c
		c = o >> bintBitsPerWord
		r.n[i] = o & bintLoMask
	}
	r.n[bintNWords-1] = tmp2[2*bintNWords-1] + c
	r.condSubP()
}
