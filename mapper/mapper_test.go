package mapper

import (
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

func checkG1(t *testing.T, x, y *big.Int) {
	t.Helper()
	var p bls12381.G1Affine
	p.X.SetBigInt(x)
	p.Y.SetBigInt(y)
	if !p.IsOnCurve() {
		t.Fatal("mapped G1 point is off curve")
	}
	if !p.IsInSubGroup() {
		t.Fatal("mapped G1 point is outside the subgroup")
	}
}

func checkG2(t *testing.T, xr, xi, yr, yi *big.Int) {
	t.Helper()
	var p bls12381.G2Affine
	var a fp.Element
	a.SetBigInt(xr)
	p.X.A0 = a
	a.SetBigInt(xi)
	p.X.A1 = a
	a.SetBigInt(yr)
	p.Y.A0 = a
	a.SetBigInt(yi)
	p.Y.A1 = a
	if !p.IsOnCurve() {
		t.Fatal("mapped G2 point is off curve")
	}
	if !p.IsInSubGroup() {
		t.Fatal("mapped G2 point is outside the subgroup")
	}
}

func TestBackends(t *testing.T) {
	backends := []struct {
		name string
		m    I
	}{
		{"bint", NewBintMapper()},
		{"gnark", NewGnarkMapper()},
	}
	msg := []byte("interchangeable backends")
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			x, y, err := b.m.MapToG1(msg)
			if err != nil {
				t.Fatalf("MapToG1 failed: %v", err)
			}
			checkG1(t, x, y)

			xr, xi, yr, yi, err := b.m.MapToG2(msg)
			if err != nil {
				t.Fatalf("MapToG2 failed: %v", err)
			}
			checkG2(t, xr, xi, yr, yi)
		})
	}
}

func TestBackendDeterminism(t *testing.T) {
	m := NewBintMapper()
	msg := []byte("same message")
	x1, y1, err := m.MapToG1(msg)
	if err != nil {
		t.Fatalf("MapToG1 failed: %v", err)
	}
	x2, y2, err := m.MapToG1(msg)
	if err != nil {
		t.Fatalf("MapToG1 failed: %v", err)
	}
	if x1.Cmp(x2) != 0 || y1.Cmp(y2) != 0 {
		t.Fatal("backend is not deterministic")
	}
}
