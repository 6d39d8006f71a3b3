package bls381

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"math/big"

	"github.com/holiman/uint256"
	sha256simd "github.com/minio/sha256-simd"
)

// Expand-to-field front end: SHA-256 message hashing, the hash_to_field
// construction, and the SHA-256 + AES-128-CTR PRNG that the hash-and-check
// harnesses draw field elements from. The map core consumes the resulting
// already-reduced elements; nothing here touches the constant-time paths.

// HashMessage hashes a ciphersuite byte followed by the message.
func HashMessage(msg []byte, csuite byte) [32]byte {
	h := sha256simd.New()
	h.Write([]byte{csuite})
	h.Write(msg)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// HashToFieldIdx computes the vecIdx-th element of the hash_to_field output
// vector for a message digest: two SHA-256 reps are concatenated and the
// 512-bit integer reduced mod p. ctr distinguishes independent invocations.
func HashToFieldIdx(digest []byte, ctr, vecIdx byte) *big.Int {
	const hashReps = 2
	var tBuf [hashReps * 32]byte
	for j := 0; j < hashReps; j++ {
		h := sha256simd.New()
		h.Write(digest)
		// msg' || I2OSP(ctr, 1) || I2OSP(i, 1) || I2OSP(j, 1), 1-indexed
		h.Write([]byte{ctr, vecIdx, byte(j + 1)})
		copy(tBuf[j*32:(j+1)*32], h.Sum(nil))
	}
	ret := new(big.Int).SetBytes(tBuf[:])
	return ret.Mod(ret, fldP)
}

// FieldPRNG deterministically expands a message digest into field elements
// using AES-128-CTR keyed from SHA-256(digest || index).
type FieldPRNG struct {
	stream cipher.Stream
}

// NewFieldPRNG keys a PRNG for the idx-th point of a batch.
func NewFieldPRNG(digest [32]byte, idx uint32) *FieldPRNG {
	h := sha256simd.New()
	h.Write(digest[:])
	var be [4]byte
	binary.BigEndian.PutUint32(be[:], idx)
	h.Write(be[:])
	seed := h.Sum(nil)

	block, err := aes.NewCipher(seed[:16])
	if err != nil {
		panic("aes key setup cannot fail with a 16-byte key")
	}
	return &FieldPRNG{stream: cipher.NewCTR(block, seed[16:32])}
}

// NextModP draws the next field element by rejection sampling 381-bit
// candidates from the stream.
func (prng *FieldPRNG) NextModP() *big.Int {
	var buf [48]byte
	for {
		for i := range buf {
			buf[i] = 0
		}
		prng.stream.XORKeyStream(buf[:], buf[:])
		buf[0] &= 0x1f // clip to 381 bits
		v := new(big.Int).SetBytes(buf[:])
		if v.Cmp(fldP) < 0 {
			return v
		}
	}
}

// NextModPSign draws a field element plus a sign bit taken from the bits
// clipped off the 381-bit sample. Used by the hash-and-check harness to
// pick the ordinate sign.
func (prng *FieldPRNG) NextModPSign() (*big.Int, bool) {
	var buf [48]byte
	for {
		for i := range buf {
			buf[i] = 0
		}
		prng.stream.XORKeyStream(buf[:], buf[:])
		negate := buf[0]&0x20 != 0
		buf[0] &= 0x1f
		v := new(big.Int).SetBytes(buf[:])
		if v.Cmp(fldP) < 0 {
			return v, negate
		}
	}
}

// Next128 draws a 128-bit multiexp scalar.
func (prng *FieldPRNG) Next128() *uint256.Int {
	var buf [16]byte
	prng.stream.XORKeyStream(buf[:], buf[:])
	return new(uint256.Int).SetBytes(buf[:])
}

// EncodeToG1 hashes a message to the G1 subgroup: two PRNG-derived field
// elements through the two-input SWU pipeline.
func EncodeToG1(msg []byte, csuite byte) (x, y, z *big.Int) {
	digest := HashMessage(msg, csuite)
	prng := NewFieldPRNG(digest, 0)
	u1 := prng.NextModP()
	u2 := prng.NextModP()
	return SWUMap2(u1, u2, true)
}

// EncodeToG2 hashes a message to the G2 subgroup.
func EncodeToG2(msg []byte, csuite byte) (x, y, z *Element2) {
	digest := HashMessage(msg, csuite)
	prng := NewFieldPRNG(digest, 0)
	u1 := &Element2{S: prng.NextModP(), T: prng.NextModP()}
	u2 := &Element2{S: prng.NextModP(), T: prng.NextModP()}
	return SWUMap2G2(u1, u2, true)
}

// HashAndCheckG1 hashes to G1 by try-and-increment: candidate abscissas are
// drawn from the PRNG until one lies on the curve, then the cofactor is
// cleared. A candidate failing the residue test is data-dependent retry,
// not an error; idx separates points in a batch. Not constant time.
func HashAndCheckG1(msg []byte, csuite byte, idx uint32) (x, y, z *big.Int, ok bool) {
	Init()
	digest := HashMessage(msg, csuite)
	for j := uint32(0); j < 256; j++ {
		prng := NewFieldPRNG(digest, idx<<8+j)
		cand, negate := prng.NextModPSign()
		if fy, found := checkFx(cand, negate, false, false); found {
			x, y, z = ClearH(cand, fy, big.NewInt(1))
			return x, y, z, true
		}
	}
	return nil, nil, nil, false
}

// HashAndCheckG2 is the G2 hash-and-check harness.
func HashAndCheckG2(msg []byte, csuite byte, idx uint32) (x, y, z *Element2, ok bool) {
	Init()
	digest := HashMessage(msg, csuite)
	for j := uint32(0); j < 256; j++ {
		prng := NewFieldPRNG(digest, idx<<8+j)
		s, negate := prng.NextModPSign()
		cand := &Element2{S: s, T: prng.NextModP()}
		if fy, found := checkFx2(cand, negate, false); found {
			x, y, z = ClearH2(cand, fy, newElement2(1, 0))
			return x, y, z, true
		}
	}
	return nil, nil, nil, false
}
