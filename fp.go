package bls381

import (
	"math/big"
	"math/bits"
)

// FieldElement represents an element of the BLS12-381 base field Fp, where
//
//	p = 0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab
//
// The representation uses 7 uint64 limbs carrying 56 significant bits each,
// ported from the bint 7x56 layout. The 8 spare bits per limb are headroom
// for carry accumulation: intermediates may exceed p as long as the bound
// bookkeeping below is respected.
//
// Values are kept in Montgomery form: the stored integer x stands for
// x*R mod p with R = 2^392.
//
// Bound bookkeeping: operations are annotated with a pair (v, w). v tracks
// additive growth in units of p, w the worst-case limb magnitude in units
// of 2^56. Inputs to mul and sqr must keep the limb products inside a
// 128-bit accumulator; a redc discharges an oversized bound back to
// (v=2, w=1).
type FieldElement struct {
	n [bintNWords]uint64
}

const (
	bintNWords      = 7
	bintBitsPerWord = 56
	bintLoMask      = (uint64(1) << bintBitsPerWord) - 1
)

// Field constants in 7x56 limb form, least-significant limb first.
var (
	// fieldP is the base field modulus p.
	fieldP = [bintNWords]uint64{
		0xfeffffffffaaab, 0xfffeb153ffffb9, 0xa0f6b0f6241eab, 0xf38512bf6730d2,
		0x4bacd764774b84, 0xe69a4b1ba7b643, 0x1a0111ea397f,
	}

	// fieldMP is 2^392 - p; adding it limbwise with carry subtracts p.
	fieldMP = [bintNWords]uint64{
		0x1000000005555, 0x14eac000046, 0x5f094f09dbe154, 0xc7aed4098cf2d,
		0xb453289b88b47b, 0x1965b4e45849bc, 0xffe5feee15c680,
	}

	// fieldPP is -p^-1 mod 2^392, the Montgomery reduction constant.
	fieldPP = [bintNWords]uint64{
		0xf3fffcfffcfffd, 0xdb92d9d113e889, 0xf0c8e30b48286a, 0x8eb2db4c16ef2e,
		0x68cf5819ecca0e, 0xfc9468b316fee2, 0xa0ceb06106feaa,
	}

	// fieldPOver2 is (p-1)/2, the threshold for the sign test.
	fieldPOver2 = [bintNWords]uint64{
		0xff7fffffffd555, 0xffff58a9ffffdc, 0x507b587b120f55, 0x79c2895fb39869,
		0xa5d66bb23ba5c2, 0xf34d258dd3db21, 0xd0088f51cbf,
	}

	// fieldRSq is R^2 mod p, used to enter Montgomery form.
	fieldRSq = [bintNWords]uint64{
		0x6d1c34510370ed, 0xec45c53e243d62, 0x93317d3b1d65a, 0x5d74088b4f36a0,
		0x865d118c10ea72, 0xfd5cd507320a75, 0xc8d4cc8a759,
	}

	// fieldR is R mod p, the Montgomery representation of 1.
	fieldR = [bintNWords]uint64{
		0xd800000347fcb8, 0xcde6d2002b119, 0x83a2090c7212e0, 0xda0f73e037669f,
		0x1297bb09b09b42, 0x12ca7c515d98f, 0x577a659fcfa,
	}

	fieldZero = [bintNWords]uint64{}
)

// fldP is p as a big.Int for the variable-time paths and for import/export.
var fldP, _ = new(big.Int).SetString(
	"1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab", 16)

// b2u converts a bool to 0 or 1.
func b2u(c bool) uint64 {
	if c {
		return 1
	}
	return 0
}

// set copies a into r.
func (r *FieldElement) set(a *FieldElement) {
	r.n = a.n
}

// setZero sets r to zero.
func (r *FieldElement) setZero() {
	r.n = fieldZero
}

// set1 sets r to one in Montgomery form (R mod p).
func (r *FieldElement) set1() {
	r.n = fieldR
}

// add computes r = a + b limbwise. v doubles; no reduction is performed.
func (r *FieldElement) add(a, b *FieldElement) {
	for i := 0; i < bintNWords; i++ {
		r.n[i] = a.n[i] + b.n[i]
	}
}

// sub computes r = a + (p << bup) - b limbwise. The caller-supplied borrow
// budget bup must satisfy b < p * 2^bup in every limb so the result stays
// nonnegative. v and w both grow by 2^bup.
func (r *FieldElement) sub(a, b *FieldElement, bup uint) {
	for i := 0; i < bintNWords; i++ {
		r.n[i] = a.n[i] + (fieldP[i] << bup) - b.n[i]
	}
}

// neg computes r = (p << bup) - a limbwise.
func (r *FieldElement) neg(a *FieldElement, bup uint) {
	for i := 0; i < bintNWords; i++ {
		r.n[i] = (fieldP[i] << bup) - a.n[i]
	}
}

// lsh computes r = a << sh limbwise; bounds grow by 2^sh.
func (r *FieldElement) lsh(a *FieldElement, sh uint) {
	for i := 0; i < bintNWords; i++ {
		r.n[i] = a.n[i] << sh
	}
}

// condAssign sets r to a if c, else to b, by bitmask selection.
func (r *FieldElement) condAssign(c bool, a, b *FieldElement) {
	mask1 := -b2u(c)
	mask2 := ^mask1
	for i := 0; i < bintNWords; i++ {
		r.n[i] = (a.n[i] & mask1) | (b.n[i] & mask2)
	}
}

// compare returns -1, 0, or 1 as r <, =, > b lexicographically over the raw
// limbs, using running gt/eq flags instead of branches.
func (r *FieldElement) compare(b *FieldElement) int {
	var gt, eq uint64 = 0, 1
	for i := bintNWords - 1; i >= 0; i-- {
		ai, bi := r.n[i], b.n[i]
		_, borrow := bits.Sub64(bi, ai, 0) // borrow == 1 iff ai > bi
		d := ai ^ bi
		ne := (d | -d) >> 63 // 1 iff ai != bi
		gt |= eq & borrow
		eq &= 1 - ne
	}
	return int(2*gt+eq) - 1
}

// condSubP conditionally subtracts p from r when r >= p, leaving a value
// below p. The subtraction is computed unconditionally and merged by mask.
func (r *FieldElement) condSubP() {
	geq := -b2u(r.compareP() >= 0)
	var c uint64
	for i := 0; i < bintNWords; i++ {
		tmp := r.n[i] + fieldMP[i] + c
		r.n[i] = (tmp & geq) | (r.n[i] &^ geq)
		c = r.n[i] >> bintBitsPerWord
		r.n[i] &= bintLoMask
	}
}

// condSubPEq applies condSubP and compares the result to cmp, which must be
// fully reduced. Returns whether they match; constant time.
func (r *FieldElement) condSubPEq(cmp *[bintNWords]uint64) bool {
	geq := -b2u(r.compareP() >= 0)
	var c uint64
	match := uint64(1)
	for i := 0; i < bintNWords; i++ {
		tmp := r.n[i] + fieldMP[i] + c
		r.n[i] = (tmp & geq) | (r.n[i] &^ geq)
		c = r.n[i] >> bintBitsPerWord
		r.n[i] &= bintLoMask
		d := r.n[i] ^ cmp[i]
		match &= 1 - ((d | -d) >> 63)
	}
	return match == 1
}

func (r *FieldElement) compareP() int {
	var pe FieldElement
	pe.n = fieldP
	return r.compare(&pe)
}

// eq0 reduces r by a conditional subtraction of p and reports whether the
// result is zero. Note that r is modified (it ends up reduced).
func (r *FieldElement) eq0() bool {
	return r.condSubPEq(&fieldZero)
}

// isNeg reports whether r, demontgomerized, is greater than (p-1)/2. This is
// the Sgn0 convention used by the maps.
func (r *FieldElement) isNeg() bool {
	var tmp, half FieldElement
	tmp.fromMonty(r)
	half.n = fieldPOver2
	return tmp.compare(&half) == 1
}

// cmp0 returns 0 when r is zero, -1 when it is negative per isNeg, and 1
// otherwise. r is not modified.
func (r *FieldElement) cmp0() int {
	tmp := *r
	if tmp.eq0() {
		return 0
	}
	if r.isNeg() {
		return -1
	}
	return 1
}

// importBig imports a big.Int, reducing mod p, and converts to Montgomery
// form.
func (r *FieldElement) importBig(in *big.Int) {
	v := in
	if in.Sign() < 0 || in.Cmp(fldP) >= 0 {
		v = new(big.Int).Mod(in, fldP)
	}
	var buf [48]byte
	v.FillBytes(buf[:])
	r.setB48(buf[:])
}

// exportBig leaves Montgomery form and returns the canonical value.
func (r *FieldElement) exportBig() *big.Int {
	var tmp FieldElement
	tmp.fromMonty(r)
	var buf [48]byte
	tmp.getB48(buf[:])
	return new(big.Int).SetBytes(buf[:])
}

// setB48 sets r from a 48-byte big-endian array, entering Montgomery form.
// The value must be below p.
func (r *FieldElement) setB48(b []byte) {
	if len(b) != 48 {
		panic("field element byte array must be 48 bytes")
	}
	// big-endian bytes to 6x64 words, least significant word first
	var d [6]uint64
	for i := 0; i < 6; i++ {
		off := 40 - 8*i
		d[i] = uint64(b[off+7]) | uint64(b[off+6])<<8 | uint64(b[off+5])<<16 |
			uint64(b[off+4])<<24 | uint64(b[off+3])<<32 | uint64(b[off+2])<<40 |
			uint64(b[off+1])<<48 | uint64(b[off])<<56
	}
	// 6x64 to 7x56
	r.n[0] = d[0] & bintLoMask
	r.n[1] = (d[0]>>56 | d[1]<<8) & bintLoMask
	r.n[2] = (d[1]>>48 | d[2]<<16) & bintLoMask
	r.n[3] = (d[2]>>40 | d[3]<<24) & bintLoMask
	r.n[4] = (d[3]>>32 | d[4]<<32) & bintLoMask
	r.n[5] = (d[4]>>24 | d[5]<<40) & bintLoMask
	r.n[6] = d[5] >> 16
	r.toMonty(r)
}

// getB48 writes the raw (non-Montgomery) limbs of r as 48 big-endian bytes.
// r must already be out of Montgomery form and fully reduced.
func (r *FieldElement) getB48(b []byte) {
	if len(b) != 48 {
		panic("field element byte array must be 48 bytes")
	}
	var d [6]uint64
	d[0] = r.n[0] | r.n[1]<<56
	d[1] = r.n[1]>>8 | r.n[2]<<48
	d[2] = r.n[2]>>16 | r.n[3]<<40
	d[3] = r.n[3]>>24 | r.n[4]<<32
	d[4] = r.n[4]>>32 | r.n[5]<<24
	d[5] = r.n[5]>>40 | r.n[6]<<16
	for i := 0; i < 6; i++ {
		off := 40 - 8*i
		b[off+7] = byte(d[i])
		b[off+6] = byte(d[i] >> 8)
		b[off+5] = byte(d[i] >> 16)
		b[off+4] = byte(d[i] >> 24)
		b[off+3] = byte(d[i] >> 32)
		b[off+2] = byte(d[i] >> 40)
		b[off+1] = byte(d[i] >> 48)
		b[off] = byte(d[i] >> 56)
	}
}
