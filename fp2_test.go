package bls381

import (
	"math/big"
	"testing"
)

func randFp2(t *testing.T) *Element2 {
	t.Helper()
	return &Element2{S: randFp(t), T: randFp(t)}
}

func importFp2(e *Element2) *FieldElement2 {
	var fe FieldElement2
	fe.s.importBig(e.S)
	fe.t.importBig(e.T)
	return &fe
}

func exportFp2(fe *FieldElement2) *Element2 {
	return &Element2{S: fe.s.exportBig(), T: fe.t.exportBig()}
}

func TestFp2MulSqrMatchesReference(t *testing.T) {
	for i := 0; i < 128; i++ {
		a := randFp2(t)
		b := randFp2(t)
		fa := importFp2(a)
		fb := importFp2(b)

		var fr FieldElement2
		fr.mul(fa, fb)
		if !exportFp2(&fr).equal(mulModP2(a, b)) {
			t.Fatal("fp2 mul mismatch")
		}

		fr.sqr(fa)
		if !exportFp2(&fr).equal(sqrModP2(a)) {
			t.Fatal("fp2 sqr mismatch")
		}
	}
}

func TestFp2SmallOps(t *testing.T) {
	a := randFp2(t)
	b := randFp2(t)
	s := randFp(t)
	fa := importFp2(a)
	fb := importFp2(b)
	var fs FieldElement
	fs.importBig(s)

	var fr FieldElement2
	fr.add(fa, fb)
	if !exportFp2(&fr).equal(addModP2(a, b)) {
		t.Error("fp2 add mismatch")
	}
	fr.sub(fa, fb, 1)
	if !exportFp2(&fr).equal(subModP2(a, b)) {
		t.Error("fp2 sub mismatch")
	}
	fr.neg(fa, 1)
	if !exportFp2(&fr).equal(negModP2(a)) {
		t.Error("fp2 neg mismatch")
	}
	fr.mulI(fa, 1)
	if !exportFp2(&fr).equal(mulModP2(a, iElem)) {
		t.Error("fp2 mulI mismatch")
	}
	fr.mulScalar(fa, &fs)
	if !exportFp2(&fr).equal(mulModP2Scalar(a, s)) {
		t.Error("fp2 mulScalar mismatch")
	}
	fr.mulScalarI(fa, &fs)
	if !exportFp2(&fr).equal(mulModP2IScalar(a, s)) {
		t.Error("fp2 mulScalarI mismatch")
	}

	// spmt: (s + t, s - t)
	fr.spmt(fa, 1)
	got := exportFp2(&fr)
	if got.S.Cmp(addModP(a.S, a.T)) != 0 || got.T.Cmp(subModP(a.S, a.T)) != 0 {
		t.Error("fp2 spmt mismatch")
	}

	// negT: conjugation
	fr.set(fa)
	fr.negT(1)
	got = exportFp2(&fr)
	if got.S.Cmp(new(big.Int).Mod(a.S, fldP)) != 0 || got.T.Cmp(negModP(a.T)) != 0 {
		t.Error("fp2 negT mismatch")
	}
}

func TestFp2Sgn0(t *testing.T) {
	cases := []struct {
		s, t int64
		neg  bool
	}{
		{1, 0, false},
		{-1, 0, true},
		{0, 1, false},
		{0, -1, true},
		{1, -1, false}, // sign carried by the first coordinate
		{-1, 1, true},
		{0, 0, false},
	}
	for _, tc := range cases {
		e := newElement2(tc.s, tc.t)
		fe := importFp2(e)
		if fe.isNeg() != tc.neg {
			t.Errorf("isNeg(%d + %d i) = %v, want %v", tc.s, tc.t, !tc.neg, tc.neg)
		}
		if isNegBig2(e) != tc.neg {
			t.Errorf("isNegBig2(%d + %d i) = %v, want %v", tc.s, tc.t, !tc.neg, tc.neg)
		}
	}
}

func TestSqrtConstsAreRootsOfI(t *testing.T) {
	// sqrtConsts[0]^2 == i, sqrtConsts[1]^2 == -i
	s0 := sqrModP2(sqrtConstsBig[0])
	if !s0.equal(iElem) {
		t.Error("sqrtConsts[0] is not a square root of i")
	}
	s1 := sqrModP2(sqrtConstsBig[1])
	if !s1.equal(negModP2(iElem)) {
		t.Error("sqrtConsts[1] is not a square root of -i")
	}
}

func TestFp2DivSqrt(t *testing.T) {
	found := 0
	for i := 0; i < 48; i++ {
		u := randFp2(t)
		v := randFp2(t)
		if v.isZero() {
			continue
		}
		fu := importFp2(u)
		fv := importFp2(v)
		var fy FieldElement2
		ok := fy.divsqrt(fu, fv)

		w := mulModP2(u, invertModP2(v))
		isQR := legendreP2(w) != -1
		if ok != isQR {
			t.Fatalf("fp2 divsqrt success=%v but norm QR=%v", ok, isQR)
		}
		if ok {
			found++
			y := exportFp2(&fy)
			if !sqrModP2(y).equal(w) {
				t.Fatal("fp2 divsqrt returned a bad root")
			}
		}
	}
	if found == 0 {
		t.Error("no fp2 QR found in 48 random trials; suspicious")
	}

	// squares must always succeed
	for i := 0; i < 16; i++ {
		r := randFp2(t)
		u := sqrModP2(r)
		fu := importFp2(u)
		one := importFp2(newElement2(1, 0))
		var fy FieldElement2
		if !fy.divsqrt(fu, one) {
			t.Fatal("divsqrt failed on a known square")
		}
		y := exportFp2(&fy)
		if !sqrModP2(y).equal(u) {
			t.Fatal("root of known square does not square back")
		}
	}
}
