package bls381

import "github.com/holiman/uint256"

// G2 counterpart of the windowed multiexponentiation. The fixed axes hold
// G2' and 2^64*G2'; the input axis holds the Budroni-Pintore combination
// (1-z)P - psi(P), and the digit scan runs over |z|, so the scan output is
// (z^2-z)P + z*psi(P) + r*G2'.

var precompG2Fixed [4][4]jacPoint2

// precompG2Init builds the fixed table quadrant from the G2' constants.
// Called from Init.
func precompG2Init() {
	precompG2Fixed[0][1].x.set(&g2PrimeX)
	precompG2Fixed[0][1].y.set(&g2PrimeY)
	precompG2Fixed[0][1].z.set1()
	point2Double(&precompG2Fixed[0][2], &precompG2Fixed[0][1])
	point2Add(&precompG2Fixed[0][3], &precompG2Fixed[0][2], &precompG2Fixed[0][1])

	precompG2Fixed[1][0].x.set(&g2PrimeLL64X)
	precompG2Fixed[1][0].y.set(&g2PrimeLL64Y)
	precompG2Fixed[1][0].z.set1()
	point2Double(&precompG2Fixed[2][0], &precompG2Fixed[1][0])
	point2Add(&precompG2Fixed[3][0], &precompG2Fixed[2][0], &precompG2Fixed[1][0])

	for i := 1; i < 4; i++ {
		for j := 1; j < 4; j++ {
			point2Add(&precompG2Fixed[i][j], &precompG2Fixed[i][0], &precompG2Fixed[0][j])
		}
	}
}

func precompG2Finish(tbl *[4][4][4]jacPoint2) {
	for j := 0; j < 4; j++ {
		for k := 0; k < 4; k++ {
			tbl[0][j][k] = precompG2Fixed[j][k]
		}
	}
	point2Double(&tbl[2][0][0], &tbl[1][0][0])
	point2Add(&tbl[3][0][0], &tbl[2][0][0], &tbl[1][0][0])
	for h := 1; h < 4; h++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				if j == 0 && k == 0 {
					continue
				}
				point2Add(&tbl[h][j][k], &tbl[h][0][0], &tbl[0][j][k])
			}
		}
	}
}

func oblivSelectG2(out *jacPoint2, tbl *[4][4][4]jacPoint2, h, r2, r1 uint8) {
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

// addrG2ClearH2Help scans 2-bit digits of |z| against the r halves.
func addrG2ClearH2Help(out *jacPoint2, tbl *[4][4][4]jacPoint2, r *[16]byte, constantTime bool) {
	r2 := r[0:8]
	r1 := r[8:16]

	hIdx := blsZBytes[0] >> 6 // definitely not 0
	if constantTime {
		oblivSelectG2(out, tbl, hIdx, r2[0]>>6, r1[0]>>6)
	} else {
		out.set(&tbl[hIdx][r2[0]>>6][r1[0]>>6])
	}

	var dummy jacPoint2
	for idx := 0; idx < 8; idx++ {
		mask, shift := uint8(0xc0), uint(6)
		if idx == 0 {
			mask, shift = 0x30, 4
		}
		for ; mask != 0; mask, shift = mask>>2, shift-2 {
			point2Double(out, out)
			point2Double(out, out)

			h := (blsZBytes[idx] & mask) >> shift
			d2 := (r2[idx] & mask) >> shift
			d1 := (r1[idx] & mask) >> shift
			nonzero := h|d2|d1 != 0
			if constantTime {
				oblivSelectG2(&dummy, tbl, h, d2, d1)
				point2Add(&dummy, &dummy, out)
				out.x.condAssign(nonzero, &dummy.x, &out.x)
				out.y.condAssign(nonzero, &dummy.y, &out.y)
				out.z.condAssign(nonzero, &dummy.z, &out.z)
			} else if nonzero {
				point2Add(out, out, &tbl[h][d2][d1])
			}
		}
	}
}

// addrG2Psi performs the Budroni-Pintore clearing of jp (in place) while
// folding in r*G2' through the multiexp scan.
func addrG2Psi(jp *jacPoint2, r *[16]byte, constantTime bool) {
	var t0, t2, t4 jacPoint2

	point2Double(&t4, jp)    // t4 = 2P
	clearH2Chain(&t0, jp)    // t0 = -z P
	point2Add(&t0, &t0, jp)  // t0 = (-z + 1) P
	jp.y.neg(&jp.y, 3)       // jp = -P (bup=3: point2Add leaves Y unreduced)
	psi2(&t2, jp)            // t2 = -psi(P)

	var tbl [4][4][4]jacPoint2
	point2Add(&tbl[1][0][0], &t0, &t2) // table input: (-z + 1) P - psi(P)
	precompG2Finish(&tbl)
	addrG2ClearH2Help(&t0, &tbl, r, constantTime) // (z^2 - z) P + z psi(P) + r G2'
	point2Add(&t0, &t0, &t2)                      // + (z - 1) psi(P) total
	point2Add(jp, &t0, jp)                        // + ... - P
	psi2(&t2, &t4)                                // psi(2P)
	t4.set(&t2)
	psi2(&t2, &t4)           // psi(psi(2P))
	point2Add(jp, jp, &t2)   // final sum
}

// AddRGClearH2 clears the cofactor of the G2 point while folding in r*G2'.
func AddRGClearH2(x, y, z *Element2, r *uint256.Int, constantTime bool) (X, Y, Z *Element2, err error) {
	Init()
	rb, err := rBytes(r)
	if err != nil {
		return nil, nil, nil, err
	}
	var jp jacPoint2
	jp.fromBig(x, y, z)
	addrG2Psi(&jp, &rb, constantTime)
	X, Y, Z = jp.toBig()
	return
}

// SWUMapRGG2 evaluates the G2 SWU map once and clears the cofactor while
// adding the random subgroup element r*G2'.
func SWUMapRGG2(u *Element2, r *uint256.Int, constantTime bool) (x, y, z *Element2, err error) {
	Init()
	rb, err := rBytes(r)
	if err != nil {
		return nil, nil, nil, err
	}
	var jp jacPoint2
	if constantTime {
		swu2HelpCT(&jp, u)
	} else {
		swu2Help(&jp, u)
	}
	evalIso3(&jp)
	addrG2Psi(&jp, &rb, constantTime)
	x, y, z = jp.toBig()
	return
}
