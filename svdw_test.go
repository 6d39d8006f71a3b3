package bls381

import (
	"math/big"
	"testing"
)

func TestSvdWMapOnCurve(t *testing.T) {
	Init()
	inputs := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(2),
		new(big.Int).Sub(fldP, big.NewInt(1)),
	}
	for i := 0; i < 16; i++ {
		inputs = append(inputs, randFp(t))
	}
	one := big.NewInt(1)
	for _, tt := range inputs {
		x, y := SvdWMap(tt)
		if !CheckCurve(x, y, one) {
			t.Fatalf("SvdWMap(%x) is off curve", tt)
		}
	}
}

func TestSvdWMapVariantsAgreeOnX(t *testing.T) {
	Init()
	for i := 0; i < 16; i++ {
		tt := randFp(t)
		x, y := SvdWMap(tt)

		fx, fy, fz := SvdWMapFO(tt)
		if !CheckCurve(fx, fy, fz) {
			t.Fatal("field-only map off curve")
		}
		ax, ay, ok := JacToAffine(fx, fy, fz)
		if !ok {
			t.Fatal("unexpected infinity")
		}
		if ax.Cmp(x) != 0 {
			t.Fatal("fast and field-only maps picked different candidates")
		}
		// same curve point up to root sign
		if ay.Cmp(y) != 0 && ay.Cmp(negModP(y)) != 0 {
			t.Fatal("field-only y is not a root at the chosen x")
		}

		cx, cy, cz := SvdWMapCT(tt)
		if !CheckCurve(cx, cy, cz) {
			t.Fatal("constant-time map off curve")
		}
		bx, _, ok := JacToAffine(cx, cy, cz)
		if !ok {
			t.Fatal("unexpected infinity")
		}
		if bx.Cmp(x) != 0 {
			t.Fatal("constant-time map picked a different candidate")
		}
	}
}

func TestSvdWMap2SharesInversion(t *testing.T) {
	Init()
	t1 := randFp(t)
	t2 := randFp(t)
	x1, y1, x2, y2 := SvdWMap2(t1, t2)

	sx1, sy1 := SvdWMap(t1)
	sx2, sy2 := SvdWMap(t2)
	if x1.Cmp(sx1) != 0 || y1.Cmp(sy1) != 0 || x2.Cmp(sx2) != 0 || y2.Cmp(sy2) != 0 {
		t.Fatal("batched map disagrees with single maps")
	}

	// zero input alongside a normal one hits the uneven-inversion branch
	z1, zy1, z2, zy2 := SvdWMap2(big.NewInt(0), t2)
	one := big.NewInt(1)
	if !CheckCurve(z1, zy1, one) || !CheckCurve(z2, zy2, one) {
		t.Fatal("batched map with exceptional first input is off curve")
	}
}

func TestSvdWMapExceptionalT(t *testing.T) {
	Init()
	// t^2 = 23 zeroes the shared denominator
	s := new(big.Int).ModSqrt(big.NewInt(23), fldP)
	if s == nil {
		t.Skip("23 is not a QR mod p")
	}
	one := big.NewInt(1)
	x, y := SvdWMap(s)
	if !CheckCurve(x, y, one) {
		t.Fatal("SvdWMap(sqrt(23)) is off curve")
	}
	fx, fy, fz := SvdWMapFO(s)
	if !CheckCurve(fx, fy, fz) {
		t.Fatal("SvdWMapFO(sqrt(23)) is off curve")
	}
	cx, cy, cz := SvdWMapCT(s)
	if !CheckCurve(cx, cy, cz) {
		t.Fatal("SvdWMapCT(sqrt(23)) is off curve")
	}

	// t = 0 zeroes the other factor
	x, y = SvdWMap(big.NewInt(0))
	if !CheckCurve(x, y, one) {
		t.Fatal("SvdWMap(0) is off curve")
	}
}

func TestSvdWConstants(t *testing.T) {
	Init()
	// sqrt(-27)^2 == -27
	m27 := subModP(big.NewInt(0), big.NewInt(27))
	if sqrModP(sqrtM27Big).Cmp(m27) != 0 {
		t.Error("sqrtM27 is not a root of -27")
	}
	// cx1 - cx2 == 1
	if subModP(cx1Big, cx2Big).Cmp(big.NewInt(1)) != 0 {
		t.Error("cx2 != cx1 - 1")
	}
	// 2*cx1 == 3 - sqrt(-27)
	if addModP(cx1Big, cx1Big).Cmp(subModP(big.NewInt(3), sqrtM27Big)) != 0 {
		t.Error("cx1 != (3 - sqrt(-27))/2")
	}
	// invM27 * -27 == 1
	if mulModP(invM27Big, m27).Cmp(big.NewInt(1)) != 0 {
		t.Error("invM27 is not 1/-27")
	}
}

func TestSvdW2Constants(t *testing.T) {
	Init()
	// sqrt(-3)^2 == -3
	m3 := subModP(big.NewInt(0), big.NewInt(3))
	if sqrModP(sqrtM3Big).Cmp(m3) != 0 {
		t.Error("sqrtM3 is not a root of -3")
	}
	// 2*cx1_2 == 3 - sqrt(-3)
	if addModP(cx12Big, cx12Big).Cmp(subModP(big.NewInt(3), sqrtM3Big)) != 0 {
		t.Error("cx1_2 != (3 - sqrt(-3))/2")
	}
	// inv3 * 3 == 1
	if mulModP(inv3Big, big.NewInt(3)).Cmp(big.NewInt(1)) != 0 {
		t.Error("inv3 is not 1/3")
	}
}

func TestSvdWMapG2OnCurve(t *testing.T) {
	Init()
	inputs := []*Element2{
		newElement2(0, 0),
		newElement2(1, 0),
		newElement2(0, 1),
	}
	for i := 0; i < 8; i++ {
		inputs = append(inputs, randFp2(t))
	}
	one2 := newElement2(1, 0)
	for _, tt := range inputs {
		x, y := SvdWMapG2(tt)
		if !CheckCurve2(x, y, one2) {
			t.Fatalf("SvdWMapG2(%x+%x i) is off curve", tt.S, tt.T)
		}

		fx, fy, fz := SvdWMapFOG2(tt)
		if !CheckCurve2(fx, fy, fz) {
			t.Fatal("G2 field-only map off curve")
		}
		ax, _, ok := JacToAffine2(fx, fy, fz)
		if !ok {
			t.Fatal("unexpected infinity")
		}
		if !ax.equal(x) {
			t.Fatal("G2 fast and field-only maps picked different candidates")
		}

		cx, cy, cz := SvdWMapCTG2(tt)
		if !CheckCurve2(cx, cy, cz) {
			t.Fatal("G2 constant-time map off curve")
		}
		bx, _, ok := JacToAffine2(cx, cy, cz)
		if !ok {
			t.Fatal("unexpected infinity")
		}
		if !bx.equal(x) {
			t.Fatal("G2 constant-time map picked a different candidate")
		}
	}
}

func TestSvdWMap2G2Batch(t *testing.T) {
	Init()
	t1 := randFp2(t)
	t2 := randFp2(t)
	x1, y1, x2, y2 := SvdWMap2G2(t1, t2)
	sx1, sy1 := SvdWMapG2(t1)
	sx2, sy2 := SvdWMapG2(t2)
	if !x1.equal(sx1) || !y1.equal(sy1) || !x2.equal(sx2) || !y2.equal(sy2) {
		t.Fatal("G2 batched map disagrees with single maps")
	}
}
