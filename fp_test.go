package bls381

import (
	"crypto/rand"
	"math/big"
	"testing"
)

func randFp(t *testing.T) *big.Int {
	t.Helper()
	v, err := rand.Int(rand.Reader, fldP)
	if err != nil {
		t.Fatalf("failed to sample field element: %v", err)
	}
	return v
}

// limbValue reassembles the raw integer held by the limbs.
func limbValue(fe *FieldElement) *big.Int {
	out := new(big.Int)
	for i := bintNWords - 1; i >= 0; i-- {
		out.Lsh(out, bintBitsPerWord)
		out.Or(out, new(big.Int).SetUint64(fe.n[i]))
	}
	return out
}

func TestMontgomeryRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		v := randFp(t)
		var fe FieldElement
		fe.importBig(v)
		got := fe.exportBig()
		if got.Cmp(v) != 0 {
			t.Fatalf("round trip mismatch: in=%x out=%x", v, got)
		}
	}
}

func TestFieldConstants(t *testing.T) {
	var pe FieldElement
	pe.n = fieldP
	if limbValue(&pe).Cmp(fldP) != 0 {
		t.Error("limb p does not match big p")
	}

	// mp = 2^392 - p
	var mp FieldElement
	mp.n = fieldMP
	r392 := new(big.Int).Lsh(big.NewInt(1), 392)
	if limbValue(&mp).Cmp(new(big.Int).Sub(r392, fldP)) != 0 {
		t.Error("limb mp is not 2^392 - p")
	}

	// pOver2 = (p-1)/2
	var ph FieldElement
	ph.n = fieldPOver2
	if limbValue(&ph).Cmp(pm1o2Big) != 0 {
		t.Error("limb pOver2 is not (p-1)/2")
	}

	// r = 2^392 mod p, rSq = r^2 mod p
	var one, rsq FieldElement
	one.n = fieldR
	rsq.n = fieldRSq
	rModP := new(big.Int).Mod(r392, fldP)
	if limbValue(&one).Cmp(rModP) != 0 {
		t.Error("limb r is not R mod p")
	}
	if limbValue(&rsq).Cmp(mulModP(rModP, rModP)) != 0 {
		t.Error("limb rSq is not R^2 mod p")
	}

	// pP = -p^-1 mod 2^392
	var pp FieldElement
	pp.n = fieldPP
	chk := new(big.Int).Mul(limbValue(&pp), fldP)
	chk.Add(chk, big.NewInt(1))
	chk.Mod(chk, r392)
	if chk.Sign() != 0 {
		t.Error("limb pP is not -p^-1 mod 2^392")
	}
}

func TestFieldMulMatchesReference(t *testing.T) {
	for i := 0; i < 256; i++ {
		a := randFp(t)
		b := randFp(t)
		var fa, fb, fr FieldElement
		fa.importBig(a)
		fb.importBig(b)
		fr.mul(&fa, &fb)
		if fr.exportBig().Cmp(mulModP(a, b)) != 0 {
			t.Fatalf("mul mismatch for a=%x b=%x", a, b)
		}
		fr.sqr(&fa)
		if fr.exportBig().Cmp(sqrModP(a)) != 0 {
			t.Fatalf("sqr mismatch for a=%x", a)
		}
	}
}

func TestFieldAddSubNeg(t *testing.T) {
	for i := 0; i < 128; i++ {
		a := randFp(t)
		b := randFp(t)
		var fa, fb, fr FieldElement
		fa.importBig(a)
		fb.importBig(b)

		fr.add(&fa, &fb)
		if fr.exportBig().Cmp(addModP(a, b)) != 0 {
			t.Fatal("add mismatch")
		}

		fr.sub(&fa, &fb, 1)
		if fr.exportBig().Cmp(subModP(a, b)) != 0 {
			t.Fatal("sub mismatch")
		}

		fr.neg(&fa, 1)
		if fr.exportBig().Cmp(negModP(a)) != 0 {
			t.Fatal("neg mismatch")
		}

		fr.lsh(&fa, 3)
		want := new(big.Int).Lsh(a, 3)
		want.Mod(want, fldP)
		if fr.exportBig().Cmp(want) != 0 {
			t.Fatal("lsh mismatch")
		}
	}
}

func TestFieldCondAssignAndCompare(t *testing.T) {
	a := randFp(t)
	b := randFp(t)
	var fa, fb, fr FieldElement
	fa.importBig(a)
	fb.importBig(b)

	fr.condAssign(true, &fa, &fb)
	if fr.n != fa.n {
		t.Error("condAssign(true) did not pick first")
	}
	fr.condAssign(false, &fa, &fb)
	if fr.n != fb.n {
		t.Error("condAssign(false) did not pick second")
	}

	if fa.compare(&fa) != 0 {
		t.Error("compare(x, x) != 0")
	}
	var lo, hi FieldElement
	lo.n = [bintNWords]uint64{1}
	hi.n = [bintNWords]uint64{2}
	if lo.compare(&hi) != -1 || hi.compare(&lo) != 1 {
		t.Error("compare ordering wrong")
	}
}

func TestFieldEq0IsNeg(t *testing.T) {
	var z FieldElement
	z.importBig(big.NewInt(0))
	if !z.eq0() {
		t.Error("zero should be eq0")
	}
	var one FieldElement
	one.importBig(big.NewInt(1))
	if one.eq0() {
		t.Error("one should not be eq0")
	}
	if one.isNeg() {
		t.Error("1 should not be negative")
	}
	var m1 FieldElement
	m1.importBig(new(big.Int).Sub(fldP, big.NewInt(1)))
	if !m1.isNeg() {
		t.Error("p-1 should be negative")
	}

	// cmp0
	if z2 := (&one).cmp0(); z2 != 1 {
		t.Errorf("cmp0(1) = %d, want 1", z2)
	}
	if z2 := (&m1).cmp0(); z2 != -1 {
		t.Errorf("cmp0(p-1) = %d, want -1", z2)
	}
}

// TestBoundEnvelope feeds mul non-canonical inputs built the way the point
// formulas build them (shifted and accumulated reduced values), at the
// worst (v, w) combinations the schedules allow, and checks the reduction
// stays exact — i.e. neither the per-column 128-bit accumulators nor the
// value range of the representation overflow inside the envelope.
func TestBoundEnvelope(t *testing.T) {
	r392 := new(big.Int).Lsh(big.NewInt(1), 392)
	rInv := new(big.Int).ModInverse(r392, fldP)

	// grow constructs a value with bounds (v, w) = (2^sh * reps, ...) by
	// shifting a reduced value and adding it to itself reps times
	grow := func(x *big.Int, sh uint, reps int) *FieldElement {
		var base, acc FieldElement
		base.importBig(x)
		base.lsh(&base, sh)
		acc = base
		for i := 1; i < reps; i++ {
			acc.add(&acc, &base)
		}
		return &acc
	}

	cases := []struct {
		shA   uint
		repsA int
		shB   uint
		repsB int
	}{
		{0, 1, 0, 1},
		{1, 3, 1, 1}, // v = 6 against v = 2, as in the g(x) accumulation
		{3, 2, 0, 1}, // v = 16-ish against a reduced value
		{5, 1, 0, 2}, // F - 2D feeding a redc-style multiply
		{2, 4, 1, 2}, // both operands loosened
	}
	for _, tc := range cases {
		a := randFp(t)
		b := randFp(t)
		fa := grow(a, tc.shA, tc.repsA)
		fb := grow(b, tc.shB, tc.repsB)
		av := limbValue(fa)
		bv := limbValue(fb)

		var fr FieldElement
		fr.mul(fa, fb)

		want := new(big.Int).Mul(av, bv)
		want.Mul(want, rInv)
		want.Mod(want, fldP)
		if fr.exportBig().Cmp(want) != 0 {
			t.Fatalf("mul drifted outside the envelope at shifts (%d x%d, %d x%d)",
				tc.shA, tc.repsA, tc.shB, tc.repsB)
		}

		// limb magnitudes must be inside the headroom the accumulator
		// can absorb: product of the per-limb bounds below 2^12
		maxA, maxB := uint64(0), uint64(0)
		for i := 0; i < bintNWords; i++ {
			if fa.n[i]>>bintBitsPerWord > maxA {
				maxA = fa.n[i] >> bintBitsPerWord
			}
			if fb.n[i]>>bintBitsPerWord > maxB {
				maxB = fb.n[i] >> bintBitsPerWord
			}
		}
		if (maxA+1)*(maxB+1) > 1<<12 {
			t.Fatalf("test case itself violates the envelope: w product %d", (maxA+1)*(maxB+1))
		}
	}
}

func TestRedcDischargesBounds(t *testing.T) {
	var fa, fr FieldElement
	for i := 0; i < bintNWords; i++ {
		fa.n[i] = bintLoMask * 33
	}
	before := limbValue(&fa)
	fr.redc(&fa)
	for i := 0; i < bintNWords; i++ {
		if fr.n[i] > bintLoMask {
			t.Fatalf("redc left limb %d above 2^56", i)
		}
	}
	r392 := new(big.Int).Lsh(big.NewInt(1), 392)
	rInv := new(big.Int).ModInverse(r392, fldP)
	rModP := new(big.Int).Mod(r392, fldP)
	// redc multiplies by R mod p, then Montgomery-reduces: net effect is a
	// reduction without changing the residue class
	want := new(big.Int).Mul(before, rModP)
	want.Mul(want, rInv)
	want.Mod(want, fldP)
	if fr.exportBig().Cmp(want) != 0 {
		t.Fatal("redc changed the residue class")
	}
}

func TestDivSqrt(t *testing.T) {
	found := 0
	for i := 0; i < 64; i++ {
		u := randFp(t)
		v := randFp(t)
		if v.Sign() == 0 {
			continue
		}
		var fu, fv, fy FieldElement
		fu.importBig(u)
		fv.importBig(v)
		ok := fy.divsqrt(&fu, &fv, false)

		uv := mulModP(u, invModP(v))
		isQR := legendreP(uv) != -1
		if ok != isQR {
			t.Fatalf("divsqrt success=%v but legendre(u/v) QR=%v", ok, isQR)
		}
		if ok {
			found++
			y := fy.exportBig()
			if sqrModP(y).Cmp(uv) != 0 {
				t.Fatal("divsqrt returned a bad root")
			}
		}
	}
	if found == 0 {
		t.Error("no QR found in 64 random trials; suspicious")
	}
}

func TestExpFixedMatchesModExp(t *testing.T) {
	x := randFp(t)
	var fx, fr FieldElement
	fx.importBig(x)

	expFixed(&fr, &fx, &expPm3o4)
	want := new(big.Int).Exp(x, pm3o4Big, fldP)
	if fr.exportBig().Cmp(want) != 0 {
		t.Error("(p-3)/4 ladder does not match modexp")
	}

	// the two-factor Fp2 exponent: (p-3)/8 then (p+3)/2 equals (p^2-9)/16
	e1 := new(big.Int).Rsh(fldP, 3)
	e2 := new(big.Int).Add(pm1o2Big, big.NewInt(2))
	prod := new(big.Int).Mul(e1, e2)
	if prod.Cmp(pSqM9o16Big) != 0 {
		t.Error("(p-3)/8 * (p+3)/2 != (p^2-9)/16")
	}

	expFixed(&fr, &fx, &expPm3o8)
	if fr.exportBig().Cmp(new(big.Int).Exp(x, e1, fldP)) != 0 {
		t.Error("(p-3)/8 ladder does not match modexp")
	}
	expFixed(&fr, &fx, &expPp3o2)
	if fr.exportBig().Cmp(new(big.Int).Exp(x, e2, fldP)) != 0 {
		t.Error("(p+3)/2 ladder does not match modexp")
	}
}
