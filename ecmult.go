package bls381

import (
	"math/big"

	"github.com/holiman/uint256"
)

// 3-point windowed multiexponentiation for G1: the table holds
// j*G' + k*(2^64 G') + h*P for h, j, k in [0, 4), scanned over 2-bit digits
// of the fixed multiplier 1-z and the two 64-bit halves of the random
// 128-bit scalar r. The result is (1-z)*P + r*G', i.e. cofactor clearing
// and the random-subgroup fold in one pass.

// precompG1Fixed is the input-independent quadrant [0][j][k], built by Init
// from G' and 2^64*G' and immutable afterwards. The input-dependent entries
// live in a per-call copy, keeping the library stateless after Init.
var precompG1Fixed [4][4]jacPoint

// gPrime and gPrimeLL64 are G' and 2^64*G' in affine (Z = 1) limb form,
// derived by Init.
var gPrime, gPrimeLL64 jacPoint

// precompG1Init builds the fixed table quadrant. Called from Init.
func precompG1Init() {
	precompG1Fixed[0][1].set(&gPrime)
	pointDouble(&precompG1Fixed[0][2], &precompG1Fixed[0][1])
	pointAdd(&precompG1Fixed[0][3], &precompG1Fixed[0][2], &precompG1Fixed[0][1])

	precompG1Fixed[1][0].set(&gPrimeLL64)
	pointDouble(&precompG1Fixed[2][0], &precompG1Fixed[1][0])
	pointAdd(&precompG1Fixed[3][0], &precompG1Fixed[2][0], &precompG1Fixed[1][0])

	for i := 1; i < 4; i++ {
		for j := 1; j < 4; j++ {
			pointAdd(&precompG1Fixed[i][j], &precompG1Fixed[i][0], &precompG1Fixed[0][j])
		}
	}
}

// precompG1Finish fills the input-dependent part of a per-call table from
// the point already stored at tbl[1][0][0].
func precompG1Finish(tbl *[4][4][4]jacPoint) {
	for j := 0; j < 4; j++ {
		for k := 0; k < 4; k++ {
			tbl[0][j][k] = precompG1Fixed[j][k]
		}
	}
	pointDouble(&tbl[2][0][0], &tbl[1][0][0])
	pointAdd(&tbl[3][0][0], &tbl[2][0][0], &tbl[1][0][0])
	for h := 1; h < 4; h++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				if j == 0 && k == 0 {
					continue
				}
				pointAdd(&tbl[h][j][k], &tbl[h][0][0], &tbl[0][j][k])
			}
		}
	}
}

// oblivSelectG1 scans the whole table and merges the entry at
// [h][r2][r1] into out by conditional assignment. h is public (a digit of
// 1-z); r2 and r1 are secret.
func oblivSelectG1(out *jacPoint, tbl *[4][4][4]jacPoint, h, r2, r1 uint8) {
	for i := uint8(0); i < 4; i++ {
		for j := uint8(0); j < 4; j++ {
			if h == 0 && i == 0 && j == 0 {
				// h, i, and j are public, so this branch is OK
				continue
			}
			sel := i == r2 && j == r1
			out.x.condAssign(sel, &tbl[h][i][j].x, &out.x)
			out.y.condAssign(sel, &tbl[h][i][j].y, &out.y)
			out.z.condAssign(sel, &tbl[h][i][j].z, &out.z)
		}
	}
}

// addrGClearHHelp runs the 2-bit window scan. The first window is special:
// the top digit of 1-z is 3, so the accumulator starts from a table entry
// instead of the identity.
func addrGClearHHelp(out *jacPoint, tbl *[4][4][4]jacPoint, r *[16]byte, constantTime bool) {
	r2 := r[0:8]
	r1 := r[8:16]

	hIdx := blsZM1Bytes[0] >> 6 // definitely not 0
	if constantTime {
		oblivSelectG1(out, tbl, hIdx, r2[0]>>6, r1[0]>>6)
	} else {
		out.set(&tbl[hIdx][r2[0]>>6][r1[0]>>6])
	}

	var dummy jacPoint
	for idx := 0; idx < 8; idx++ {
		// 0th iteration: the top digit was consumed above
		mask, shift := uint8(0xc0), uint(6)
		if idx == 0 {
			mask, shift = 0x30, 4
		}
		for ; mask != 0; mask, shift = mask>>2, shift-2 {
			pointDouble(out, out)
			pointDouble(out, out)

			h := (blsZM1Bytes[idx] & mask) >> shift
			d2 := (r2[idx] & mask) >> shift
			d1 := (r1[idx] & mask) >> shift
			nonzero := h|d2|d1 != 0
			if constantTime {
				oblivSelectG1(&dummy, tbl, h, d2, d1)
				pointAdd(&dummy, &dummy, out)
				out.x.condAssign(nonzero, &dummy.x, &out.x)
				out.y.condAssign(nonzero, &dummy.y, &out.y)
				out.z.condAssign(nonzero, &dummy.z, &out.z)
			} else if nonzero {
				pointAdd(out, out, &tbl[h][d2][d1])
			}
		}
	}
}

// addrGClearH computes (1-z)*P + r*G' for the G1 point P.
func addrGClearH(out, in *jacPoint, r *[16]byte, constantTime bool) {
	var tbl [4][4][4]jacPoint
	tbl[1][0][0].set(in)
	precompG1Finish(&tbl)
	addrGClearHHelp(out, &tbl, r, constantTime)
}

// AddRGClearH clears the cofactor of the G1 point (x, y, z) while folding
// in r*G' for the 128-bit scalar r, via 3-point multiexponentiation.
func AddRGClearH(x, y, z *big.Int, r *uint256.Int, constantTime bool) (X, Y, Z *big.Int, err error) {
	Init()
	rb, err := rBytes(r)
	if err != nil {
		return nil, nil, nil, err
	}
	var in, out jacPoint
	in.fromBig(x, y, z)
	addrGClearH(&out, &in, &rb, constantTime)
	X, Y, Z = out.toBig()
	return
}

// SWUMapRG evaluates the SWU map once and clears the cofactor while adding
// a random subgroup element r*G'.
func SWUMapRG(u *big.Int, r *uint256.Int, constantTime bool) (x, y, z *big.Int, err error) {
	Init()
	rb, err := rBytes(r)
	if err != nil {
		return nil, nil, nil, err
	}
	var jp, out jacPoint
	if constantTime {
		swuHelpCT(&jp, u)
	} else {
		swuHelp(&jp, u)
	}
	evalIso11(&jp)
	addrGClearH(&out, &jp, &rb, constantTime)
	x, y, z = out.toBig()
	return
}
