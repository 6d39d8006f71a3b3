package bls381

import (
	"math/big"
	"sync"
	"testing"
)

func TestInitIdempotent(t *testing.T) {
	Init()
	gx1, gy1, _ := gPrime.toBig()
	Init()
	gx2, gy2, _ := gPrime.toBig()
	if gx1.Cmp(gx2) != 0 || gy1.Cmp(gy2) != 0 {
		t.Fatal("repeated Init changed the base point")
	}
}

func TestInitConcurrent(t *testing.T) {
	Uninit()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Init()
		}()
	}
	wg.Wait()
	x, y, z := gPrime.toBig()
	assertG1Subgroup(t, x, y, z)
}

func TestUninitReinit(t *testing.T) {
	Init()
	u := big.NewInt(7)
	x1, y1, z1 := SWUMap(u, true)
	Uninit()
	x2, y2, z2 := SWUMap(u, true) // re-inits on entry
	if x1.Cmp(x2) != 0 || y1.Cmp(y2) != 0 || z1.Cmp(z2) != 0 {
		t.Fatal("re-initialization changed map outputs")
	}
}

func TestIsogenyConstantsReduced(t *testing.T) {
	Init()
	// spot-check that the isoXNum and iso2YDen coefficients export below p
	for i := range isoXNum {
		if isoXNum[i].exportBig().Cmp(fldP) >= 0 {
			t.Fatal("iso coefficient out of range")
		}
	}
	for i := range iso2YDen {
		if iso2YDen[i].s.exportBig().Cmp(fldP) >= 0 ||
			iso2YDen[i].t.exportBig().Cmp(fldP) >= 0 {
			t.Fatal("iso2 coefficient out of range")
		}
	}
}
