package bls381

import (
	"math/big"
	"testing"

	"github.com/holiman/uint256"
)

// randG1 produces a random point on E(Fp) (not necessarily in the
// subgroup) via the SvdW map.
func randG1(t *testing.T) *jacPoint {
	t.Helper()
	var jp jacPoint
	x, y, z := SvdWMapFO(randFp(t))
	jp.fromBig(x, y, z)
	return &jp
}

func randG2Point(t *testing.T) *jacPoint2 {
	t.Helper()
	var jp jacPoint2
	x, y, z := SvdWMapFOG2(randFp2(t))
	jp.fromBig(x, y, z)
	return &jp
}

// affineAddRef adds two distinct affine points with the textbook formulas.
func affineAddRef(x1, y1, x2, y2 *big.Int) (x3, y3 *big.Int) {
	lam := mulModP(subModP(y2, y1), invModP(subModP(x2, x1)))
	x3 = subModP(sqrModP(lam), addModP(x1, x2))
	y3 = subModP(mulModP(lam, subModP(x1, x3)), y1)
	return
}

func affineDoubleRef(x1, y1 *big.Int) (x3, y3 *big.Int) {
	lam := mulModP(mulModP(big.NewInt(3), sqrModP(x1)), invModP(addModP(y1, y1)))
	x3 = subModP(sqrModP(lam), addModP(x1, x1))
	y3 = subModP(mulModP(lam, subModP(x1, x3)), y1)
	return
}

func TestPointDoubleMatchesAffine(t *testing.T) {
	Init()
	for i := 0; i < 8; i++ {
		p := randG1(t)
		var d jacPoint
		pointDouble(&d, p)
		x, y, z := d.toBig()
		if !CheckCurve(x, y, z) {
			t.Fatal("double left the curve")
		}

		px, py, pz := p.toBig()
		ax, ay, _ := JacToAffine(px, py, pz)
		wx, wy := affineDoubleRef(ax, ay)
		gx, gy, _ := JacToAffine(x, y, z)
		if gx.Cmp(wx) != 0 || gy.Cmp(wy) != 0 {
			t.Fatal("double disagrees with the affine formulas")
		}
	}
}

func TestPointAddMatchesAffine(t *testing.T) {
	Init()
	for i := 0; i < 8; i++ {
		p := randG1(t)
		q := randG1(t)
		var s jacPoint
		pointAdd(&s, p, q)
		x, y, z := s.toBig()
		if !CheckCurve(x, y, z) {
			t.Fatal("add left the curve")
		}

		px, py, pz := p.toBig()
		qx, qy, qz := q.toBig()
		pax, pay, _ := JacToAffine(px, py, pz)
		qax, qay, _ := JacToAffine(qx, qy, qz)
		if pax.Cmp(qax) == 0 {
			continue // degenerate for the incomplete formulas
		}
		wx, wy := affineAddRef(pax, pay, qax, qay)
		gx, gy, _ := JacToAffine(x, y, z)
		if gx.Cmp(wx) != 0 || gy.Cmp(wy) != 0 {
			t.Fatal("add disagrees with the affine formulas")
		}
	}
}

func TestClearHChainIsZM1Multiplication(t *testing.T) {
	Init()
	zm1 := uint256.NewInt(0).SetBytes(blsZM1Bytes[:])
	for i := 0; i < 4; i++ {
		p := randG1(t)
		var chained, mult jacPoint
		clearHChain(&chained, p)
		scalarMulG1(&mult, p, zm1)

		cx, cy, cz := chained.toBig()
		mx, my, mz := mult.toBig()
		ax, ay, _ := JacToAffine(cx, cy, cz)
		bx, by, _ := JacToAffine(mx, my, mz)
		if ax.Cmp(bx) != 0 || ay.Cmp(by) != 0 {
			t.Fatal("G1 chain does not multiply by 1-z")
		}
	}
}

func TestClearH2ChainIsZMultiplication(t *testing.T) {
	Init()
	zAbs := uint256.NewInt(0).SetBytes(blsZBytes[:])
	p := randG2Point(t)
	var chained, mult jacPoint2
	clearH2Chain(&chained, p)
	scalarMulG2(&mult, p, zAbs)

	cx, cy, cz := chained.toBig()
	mx, my, mz := mult.toBig()
	ax, ay, _ := JacToAffine2(cx, cy, cz)
	bx, by, _ := JacToAffine2(mx, my, mz)
	if !ax.equal(bx) || !ay.equal(by) {
		t.Fatal("G2 chain does not multiply by |z|")
	}
}

func TestClearHLandsInSubgroup(t *testing.T) {
	Init()
	for i := 0; i < 4; i++ {
		p := randG1(t)
		px, py, pz := p.toBig()
		x, y, z := ClearH(px, py, pz)
		assertG1Subgroup(t, x, y, z)

		// q * cleared == infinity
		var cp, qp jacPoint
		cp.fromBig(x, y, z)
		scalarMulG1(&qp, &cp, orderQ)
		if !qp.z.eq0() {
			t.Fatal("q * clear_h(P) is not the identity")
		}
	}
}

func TestClearH2LandsInSubgroup(t *testing.T) {
	Init()
	for i := 0; i < 2; i++ {
		p := randG2Point(t)
		px, py, pz := p.toBig()
		x, y, z := ClearH2(px, py, pz)
		assertG2Subgroup(t, x, y, z)

		var cp, qp jacPoint2
		cp.fromBig(x, y, z)
		scalarMulG2(&qp, &cp, orderQ)
		if !qp.z.eq0() {
			t.Fatal("q * clear_h2(P) is not the identity")
		}
	}
}

func TestPsiPreservesCurve(t *testing.T) {
	Init()
	p := randG2Point(t)
	px, py, pz := p.toBig()
	x, y, z := psiBig(px, py, pz)
	if !CheckCurve2(x, y, z) {
		t.Fatal("psi left the curve")
	}
}

// On the subgroup, psi acts as multiplication by z: psi(P) == z*P, i.e.
// psi(P) + |z|*P == O.
func TestPsiEigenvalueOnSubgroup(t *testing.T) {
	Init()
	p := randG2Point(t)
	px, py, pz := p.toBig()
	sx, sy, sz := ClearH2(px, py, pz)
	var sp jacPoint2
	sp.fromBig(sx, sy, sz)

	var psiP, zP jacPoint2
	psi2(&psiP, &sp)
	zAbs := uint256.NewInt(0).SetBytes(blsZBytes[:])
	scalarMulG2(&zP, &sp, zAbs) // |z| P = -z P

	// psi(P) + |z|P should be the identity
	var sum jacPoint2
	point2Add(&sum, &psiP, &zP)
	if !sum.z.eq0() {
		t.Fatal("psi is not the z-eigenvalue map on the subgroup")
	}
}

func TestAddClearH(t *testing.T) {
	Init()
	p := randG1(t)
	q := randG1(t)
	px, py, pz := p.toBig()
	qx, qy, qz := q.toBig()
	x, y, z := AddClearH(px, py, pz, qx, qy, qz)
	assertG1Subgroup(t, x, y, z)
}

func TestAddClearH2(t *testing.T) {
	Init()
	p := randG2Point(t)
	q := randG2Point(t)
	px, py, pz := p.toBig()
	qx, qy, qz := q.toBig()
	x, y, z := AddClearH2(px, py, pz, qx, qy, qz)
	assertG2Subgroup(t, x, y, z)
}
