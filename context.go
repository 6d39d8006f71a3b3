// Package bls381 deterministically maps field elements to points in the
// prime-order subgroups of the BLS12-381 curves E(Fp) and E'(Fp2), via the
// SWU and SvdW constructions with constant-time and variable-time paths.
package bls381

import (
	"math/big"
	"sync"

	sha256simd "github.com/minio/sha256-simd"
)

// One-shot initialization of the constant bank. All tables are immutable
// after Init returns; every operation is then a pure function on
// caller-supplied storage and safe for concurrent use. Uninit resets the
// latch (for tests); it frees nothing, since all storage is Go-managed.

var (
	initMu   sync.Mutex
	initDone bool
)

// gPrimeSeed is hashed to derive the base point G' for the rG fold.
const gPrimeSeed = "bls12_381 random base point"

// words6ToBig assembles a little-endian 6x64 word array into a big.Int.
func words6ToBig(w [6]uint64) *big.Int {
	out := new(big.Int)
	for i := 5; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(w[i]))
	}
	return out
}

// parseHexModP parses a hex constant; a leading '-' takes the value mod p.
func parseHexModP(s string) *big.Int {
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("bad hex constant: " + s)
	}
	if neg {
		v.Sub(fldP, v)
	}
	return v
}

// Init populates the constant tables: Montgomery forms of the isogeny
// coefficients and map constants, the SvdW constants derived from p, the
// base points G' and G2' with their 2^64 multiples, and the fixed multiexp
// table quadrants. Idempotent and safe to call concurrently.
func Init() {
	initMu.Lock()
	defer initMu.Unlock()
	if initDone {
		return
	}

	// 11-isogenous curve constants
	ellpABig = parseHexModP(ellpAHex)
	ellpBBig = parseHexModP(ellpBHex)
	bintEllpA.importBig(ellpABig)
	bintEllpB.importBig(ellpBBig)
	bintOne.set1()

	// 11-isogeny coefficient tables
	for i, s := range isoXNumHex {
		isoXNum[i].importBig(parseHexModP(s))
	}
	for i, s := range isoXDenHex {
		isoXDen[i].importBig(parseHexModP(s))
	}
	for i, s := range isoYNumHex {
		isoYNum[i].importBig(parseHexModP(s))
	}
	for i, s := range isoYDenHex {
		isoYDen[i].importBig(parseHexModP(s))
	}

	// 3-isogeny coefficient tables
	for i, pair := range iso2XNumHex {
		iso2XNum[i].s.importBig(parseHexModP(pair[0]))
		iso2XNum[i].t.importBig(parseHexModP(pair[1]))
	}
	for i, pair := range iso2XDenHex {
		iso2XDen[i].s.importBig(parseHexModP(pair[0]))
		iso2XDen[i].t.importBig(parseHexModP(pair[1]))
	}
	for i, pair := range iso2YNumHex {
		iso2YNum[i].s.importBig(parseHexModP(pair[0]))
		iso2YNum[i].t.importBig(parseHexModP(pair[1]))
	}
	for i, pair := range iso2YDenHex {
		iso2YDen[i].s.importBig(parseHexModP(pair[0]))
		iso2YDen[i].t.importBig(parseHexModP(pair[1]))
	}

	// SvdW constants over Fp, derived from p: sqrt(-27) via the (p+1)/4
	// exponentiation, cx1 = (3 - sqrt(-27))/2, cx2 = cx1 - 1, 1/-27.
	m27 := new(big.Int).Sub(fldP, big.NewInt(27))
	sqrtM27Big = new(big.Int).Exp(m27, pp1o4Big, fldP)
	cx1Big = subModP(big.NewInt(3), sqrtM27Big)
	if cx1Big.Bit(0) == 1 {
		cx1Big.Add(cx1Big, fldP)
	}
	cx1Big.Rsh(cx1Big, 1)
	cx2Big = subModP(cx1Big, big.NewInt(1))
	invM27Big = invModP(m27)
	bintCx1.importBig(cx1Big)
	bintCx2.importBig(cx2Big)
	bintSqrtM27.importBig(sqrtM27Big)
	bint23.importBig(big.NewInt(23))
	bintM27.importBig(m27)

	// SvdW constants over Fp2 (all scalars in Fp)
	cx12Big = words6ToBig(icx12)
	cx22Big = subModP(cx12Big, big.NewInt(1))
	sqrtM3Big = words6ToBig(isqrtM3)
	inv3Big = words6ToBig(iinv3)
	bint2Cx12.s.importBig(cx12Big)
	bint2Cx12.t.setZero()
	bintCx22.importBig(cx22Big)
	bintSqrtM3.importBig(sqrtM3Big)
	bint2One.set1()
	bint2ThreeP4I.s.importBig(big.NewInt(3))
	bint2ThreeP4I.t.importBig(big.NewInt(4))

	// G2 SWU constants: xi = 1 + i, a = 240i, b = 1012(1+i), and the four
	// eta values for branch selection
	swu2XiBig = newElement2(1, 1)
	ell2pABig = newElement2(0, 240)
	ell2pBBig = newElement2(1012, 1012)
	bintSwu2Xi.s.set1()
	bintSwu2Xi.t.set1()
	bintEll2pA.importBig(big.NewInt(240))
	bintEll2pB.s.importBig(big.NewInt(1012))
	bintEll2pB.t.importBig(big.NewInt(1012))

	eta1 := words6ToBig(ieta1)
	eta2 := words6ToBig(ieta2)
	swu2EtaBig[0] = &Element2{S: eta1, T: new(big.Int)}
	swu2EtaBig[1] = &Element2{S: new(big.Int), T: new(big.Int).Set(eta1)}
	swu2EtaBig[2] = &Element2{S: eta2, T: new(big.Int).Set(eta2)}
	swu2EtaBig[3] = &Element2{S: new(big.Int).Set(eta2), T: subModP(fldP, eta2)}
	bintEta01.importBig(eta1)
	bintEta23[0].s.importBig(eta2)
	bintEta23[0].t.importBig(eta2)
	bintEta23[1].s.importBig(eta2)
	bintEta23[1].t.importBig(swu2EtaBig[3].T)

	// base point G': hash a fixed seed through SWU + isogeny + clear_h,
	// then store affine coordinates along with the 2^64 multiple
	digest := sha256simd.Sum256([]byte(gPrimeSeed))
	u := new(big.Int).SetBytes(digest[:])
	u.Mod(u, fldP)
	var jp, cleared jacPoint
	swuHelp(&jp, u)
	evalIso11(&jp)
	clearHChain(&cleared, &jp)
	setAffine(&gPrime, &cleared)
	ll64 := cleared
	for i := 0; i < 64; i++ {
		pointDouble(&ll64, &ll64)
	}
	setAffine(&gPrimeLL64, &ll64)

	// fixed multiexp table quadrants
	precompG1Init()
	precompG2Init()

	initDone = true
}

// setAffine normalizes a Jacobian point and stores it with Z = 1.
func setAffine(out, in *jacPoint) {
	x, y, z := in.toBig()
	ax, ay, ok := JacToAffine(x, y, z)
	if !ok {
		panic("base point derivation hit the point at infinity")
	}
	out.x.importBig(ax)
	out.y.importBig(ay)
	out.z.set1()
}

// Uninit resets the initialization latch. Constant tables are left in
// place; the next Init rebuilds them. Intended for tests.
func Uninit() {
	initMu.Lock()
	defer initMu.Unlock()
	initDone = false
}
