package bls381

import (
	"testing"
)

func TestHashToFieldIdx(t *testing.T) {
	digest := HashMessage([]byte("test message"), 0x01)
	u1 := HashToFieldIdx(digest[:], 0, 1)
	u2 := HashToFieldIdx(digest[:], 0, 2)
	if u1.Cmp(fldP) >= 0 || u2.Cmp(fldP) >= 0 {
		t.Fatal("hash_to_field output not reduced")
	}
	if u1.Cmp(u2) == 0 {
		t.Fatal("distinct vector indices produced the same element")
	}
	// deterministic
	again := HashToFieldIdx(digest[:], 0, 1)
	if u1.Cmp(again) != 0 {
		t.Fatal("hash_to_field is not deterministic")
	}
	// the counter separates invocations
	other := HashToFieldIdx(digest[:], 1, 1)
	if u1.Cmp(other) == 0 {
		t.Fatal("distinct counters produced the same element")
	}
}

func TestFieldPRNG(t *testing.T) {
	digest := HashMessage([]byte("prng seed"), 0x01)
	prng := NewFieldPRNG(digest, 0)
	a := prng.NextModP()
	b := prng.NextModP()
	if a.Cmp(fldP) >= 0 || b.Cmp(fldP) >= 0 {
		t.Fatal("PRNG output not reduced")
	}
	if a.Cmp(b) == 0 {
		t.Fatal("successive draws are equal")
	}

	// same seed and index replays the stream
	replay := NewFieldPRNG(digest, 0)
	if replay.NextModP().Cmp(a) != 0 {
		t.Fatal("PRNG is not deterministic")
	}

	// a different index diverges
	other := NewFieldPRNG(digest, 1)
	if other.NextModP().Cmp(a) == 0 {
		t.Fatal("PRNG index does not separate streams")
	}

	r := prng.Next128()
	if r.BitLen() > 128 {
		t.Fatal("Next128 drew more than 128 bits")
	}
}

func TestEncodeToG1(t *testing.T) {
	msg := []byte("encode to g1")
	x, y, z := EncodeToG1(msg, 0x01)
	assertG1Subgroup(t, x, y, z)

	x2, y2, z2 := EncodeToG1(msg, 0x01)
	if x.Cmp(x2) != 0 || y.Cmp(y2) != 0 || z.Cmp(z2) != 0 {
		t.Fatal("EncodeToG1 is not deterministic")
	}

	// a different ciphersuite byte changes the point
	x3, _, _ := EncodeToG1(msg, 0x02)
	if x.Cmp(x3) == 0 {
		t.Fatal("ciphersuite byte is not separating")
	}
}

func TestHashAndCheckG1(t *testing.T) {
	x, y, z, ok := HashAndCheckG1([]byte("hash and check"), 0x01, 0)
	if !ok {
		t.Fatal("no candidate found in 256 draws")
	}
	assertG1Subgroup(t, x, y, z)

	x2, y2, z2, ok := HashAndCheckG1([]byte("hash and check"), 0x01, 0)
	if !ok || x.Cmp(x2) != 0 || y.Cmp(y2) != 0 || z.Cmp(z2) != 0 {
		t.Fatal("hash-and-check is not deterministic")
	}

	// the batch index separates points
	x3, _, _, ok := HashAndCheckG1([]byte("hash and check"), 0x01, 1)
	if !ok || x.Cmp(x3) == 0 {
		t.Fatal("batch index does not separate points")
	}
}

func TestHashAndCheckG2(t *testing.T) {
	x, y, z, ok := HashAndCheckG2([]byte("hash and check g2"), 0x02, 0)
	if !ok {
		t.Fatal("no candidate found in 256 draws")
	}
	assertG2Subgroup(t, x, y, z)
}

func TestEncodeToG2(t *testing.T) {
	msg := []byte("encode to g2")
	x, y, z := EncodeToG2(msg, 0x02)
	assertG2Subgroup(t, x, y, z)

	x2, y2, z2 := EncodeToG2(msg, 0x02)
	if !x.equal(x2) || !y.equal(y2) || !z.equal(z2) {
		t.Fatal("EncodeToG2 is not deterministic")
	}
}
