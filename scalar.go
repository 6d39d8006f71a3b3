package bls381

import (
	"errors"

	"github.com/holiman/uint256"
)

// Scalar plumbing for the multiexp fold and the subgroup checks, carried on
// uint256.Int. The multiexp scalar r is 128 bits: its two 64-bit halves
// index the G' and 2^64*G' axes of the precomputed table.

// orderQ is the order of the G1/G2 subgroups.
var orderQ = uint256.MustFromHex("0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")

// OrderQ returns (a copy of) the subgroup order q.
func OrderQ() *uint256.Int {
	return new(uint256.Int).Set(orderQ)
}

var errScalarRange = errors.New("multiexp scalar must be below 2^128")

// scalarBit extracts bit i of a uint256 (little-endian limb order).
func scalarBit(k *uint256.Int, i int) uint64 {
	return k[i/64] >> (uint(i) % 64) & 1
}

// rBytes serializes a 128-bit scalar as the 16 big-endian bytes the window
// scans consume: bytes 0..7 drive the 2^64*G' axis, bytes 8..15 the G' axis.
func rBytes(r *uint256.Int) ([16]byte, error) {
	var out [16]byte
	if r.BitLen() > 128 {
		return out, errScalarRange
	}
	b := r.Bytes32()
	copy(out[:], b[16:])
	return out, nil
}

// scalarMulG1 computes k*P by plain double-and-add, most significant bit
// first. Variable time; used for verification, never on secret data.
func scalarMulG1(out, in *jacPoint, k *uint256.Int) {
	var acc jacPoint
	have := false
	for i := k.BitLen() - 1; i >= 0; i-- {
		if have {
			pointDouble(&acc, &acc)
		}
		if scalarBit(k, i) != 0 {
			if !have {
				acc.set(in)
				have = true
			} else {
				pointAdd(&acc, &acc, in)
			}
		}
	}
	if !have {
		acc.x.set1()
		acc.y.set1()
		acc.z.setZero()
	}
	out.set(&acc)
}

// scalarMulG2 is scalarMulG1 over Fp2.
func scalarMulG2(out, in *jacPoint2, k *uint256.Int) {
	var acc jacPoint2
	have := false
	for i := k.BitLen() - 1; i >= 0; i-- {
		if have {
			point2Double(&acc, &acc)
		}
		if scalarBit(k, i) != 0 {
			if !have {
				acc.set(in)
				have = true
			} else {
				point2Add(&acc, &acc, in)
			}
		}
	}
	if !have {
		acc.x.set1()
		acc.y.set1()
		acc.z.setZero()
	}
	out.set(&acc)
}
