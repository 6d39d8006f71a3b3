package bls381

import "math/big"

// Element2 is an element S + T*i of Fp2 for the variable-time paths and the
// public API. Both coordinates are canonical values in [0, p).
type Element2 struct {
	S, T *big.Int
}

// NewElement2 returns a zero Fp2 element.
func NewElement2() *Element2 {
	return &Element2{S: new(big.Int), T: new(big.Int)}
}

// newElement2 builds an element from int64 coordinates.
func newElement2(s, t int64) *Element2 {
	r := &Element2{S: big.NewInt(s), T: big.NewInt(t)}
	r.S.Mod(r.S, fldP)
	r.T.Mod(r.T, fldP)
	return r
}

func (r *Element2) set(a *Element2) *Element2 {
	r.S.Set(a.S)
	r.T.Set(a.T)
	return r
}

func (r *Element2) isZero() bool {
	return new(big.Int).Mod(r.S, fldP).Sign() == 0 &&
		new(big.Int).Mod(r.T, fldP).Sign() == 0
}

func (r *Element2) equal(a *Element2) bool {
	return subModP(r.S, a.S).Sign() == 0 && subModP(r.T, a.T).Sign() == 0
}

func addModP2(a, b *Element2) *Element2 {
	return &Element2{S: addModP(a.S, b.S), T: addModP(a.T, b.T)}
}

func subModP2(a, b *Element2) *Element2 {
	return &Element2{S: subModP(a.S, b.S), T: subModP(a.T, b.T)}
}

func negModP2(a *Element2) *Element2 {
	return &Element2{S: negModP(a.S), T: negModP(a.T)}
}

// mulModP2 computes (s + ti)(s' + t'i) with i^2 = -1.
func mulModP2(a, b *Element2) *Element2 {
	ss := mulModP(a.S, b.S)
	tt := mulModP(a.T, b.T)
	st := mulModP(a.S, b.T)
	ts := mulModP(a.T, b.S)
	return &Element2{S: subModP(ss, tt), T: addModP(st, ts)}
}

func sqrModP2(a *Element2) *Element2 {
	ss := sqrModP(a.S)
	tt := sqrModP(a.T)
	st := mulModP(a.S, a.T)
	return &Element2{S: subModP(ss, tt), T: addModP(st, st)}
}

// mulModP2Scalar multiplies both coordinates by an Fp scalar.
func mulModP2Scalar(a *Element2, b *big.Int) *Element2 {
	return &Element2{S: mulModP(a.S, b), T: mulModP(a.T, b)}
}

// mulModP2IScalar multiplies by b*i for an Fp scalar b.
func mulModP2IScalar(a *Element2, b *big.Int) *Element2 {
	return &Element2{S: negModP(mulModP(a.T, b)), T: mulModP(a.S, b)}
}

// normModP2 returns s^2 + t^2, the Fp norm of the element.
func normModP2(a *Element2) *big.Int {
	return addModP(sqrModP(a.S), sqrModP(a.T))
}

// invertModP2 computes the inverse via the conjugate over the norm.
func invertModP2(a *Element2) *Element2 {
	ni := invModP(normModP2(a))
	return &Element2{S: mulModP(a.S, ni), T: mulModP(negModP(a.T), ni)}
}

// legendreP2 returns 1, 0, or -1: an Fp2 element is square exactly when its
// norm is square in Fp.
func legendreP2(a *Element2) int {
	return legendreP(normModP2(a))
}

// isNegBig2 is the Sgn0 convention over Fp2.
func isNegBig2(a *Element2) bool {
	s := new(big.Int).Mod(a.S, fldP)
	if s.Sign() == 0 {
		return isNegBig(new(big.Int).Mod(a.T, fldP))
	}
	return isNegBig(s)
}

// Fp2 square-root machinery for the variable-time path. pSqM9o16Big is
// (p^2-9)/16; sqrtConstsBig mirror the limb-path disambiguation constants.
var (
	pSqM9o16Big   = new(big.Int)
	sqrtConstsBig [2]*Element2
	iElem         *Element2 // the element i
)

func init() {
	p2 := new(big.Int).Mul(fldP, fldP)
	pSqM9o16Big.Sub(p2, big.NewInt(9))
	pSqM9o16Big.Rsh(pSqM9o16Big, 4)
	for k := 0; k < 2; k++ {
		sqrtConstsBig[k] = &Element2{
			S: sqrtConsts[k].s.exportBig(),
			T: sqrtConsts[k].t.exportBig(),
		}
	}
	iElem = newElement2(0, 1)
}

// divsqrtModP2 computes sqrt(u/v) in Fp2 by the uv^7(uv^15)^((p^2-9)/16)
// candidate and the four-root probe. Returns the root and whether one was
// found.
func divsqrtModP2(u, v *Element2) (*Element2, bool) {
	v2 := sqrModP2(v)
	v3 := mulModP2(v2, v)
	v4 := sqrModP2(v2)
	v7 := mulModP2(v4, v3)
	v8 := sqrModP2(v4)
	uv7 := mulModP2(u, v7)
	uv15 := mulModP2(uv7, v8)

	cand := expModP2(uv15, pSqM9o16Big)
	cand = mulModP2(cand, uv7)

	probes := [4]*Element2{
		cand,
		mulModP2(cand, iElem),
		mulModP2(cand, sqrtConstsBig[0]),
		mulModP2(cand, sqrtConstsBig[1]),
	}
	for _, c := range probes {
		chk := mulModP2(sqrModP2(c), v)
		if chk.equal(u) {
			return c, true
		}
	}
	return cand, false
}

// expModP2 is square-and-multiply exponentiation in Fp2 (variable time).
func expModP2(a *Element2, e *big.Int) *Element2 {
	r := newElement2(1, 0)
	for k := e.BitLen() - 1; k >= 0; k-- {
		r = sqrModP2(r)
		if e.Bit(k) == 1 {
			r = mulModP2(r, a)
		}
	}
	return r
}

// checkFx2 tests whether x is the abscissa of a point on E'(Fp2) as given
// by y^2 = x^3 + 4(1+i), computing the ordinate with the requested sign.
func checkFx2(x *Element2, negate, force bool) (*Element2, bool) {
	fx := sqrModP2(x)
	fx = mulModP2(fx, x)
	fx = addModP2(fx, newElement2(4, 4))

	y, ok := divsqrtModP2(fx, newElement2(1, 0))
	if !ok && !force {
		return nil, false
	}
	if negate {
		y = negModP2(y)
	}
	return y, true
}

// CheckCurve2 reports whether the Jacobian triple satisfies the G2 curve
// equation y^2 = x^3 + 4(1+i)*z^6.
func CheckCurve2(x, y, z *Element2) bool {
	y2 := sqrModP2(y)
	x3 := sqrModP2(x)
	x3 = mulModP2(x3, x)

	z6 := sqrModP2(z)
	z6 = mulModP2(z6, z)
	z6 = sqrModP2(z6)
	z6 = mulModP2(z6, newElement2(4, 4))

	acc := addModP2(z6, x3)
	acc = subModP2(acc, y2)
	return acc.isZero()
}

// JacToAffine2 normalizes a G2 Jacobian triple to affine coordinates.
func JacToAffine2(x, y, z *Element2) (ax, ay *Element2, ok bool) {
	if z.isZero() {
		return nil, nil, false
	}
	zi := invertModP2(z)
	zi2 := sqrModP2(zi)
	ax = mulModP2(x, zi2)
	ay = mulModP2(y, mulModP2(zi2, zi))
	return ax, ay, true
}
