package fq

import (
	"testing"

	"github.com/gibme-c/helioselene-sub002/internal/testutil"
)

func TestAddSubRoundTrip(t *testing.T) {
	var a, b, sum, back Elt
	a.SetBytes([]byte{1, 2, 3})
	b.SetBytes([]byte{4, 5, 6})
	sum.Add(&a, &b)
	back.Sub(&sum, &b)
	if !back.Equal(&a) {
		t.Fatalf("a+b-b != a")
	}
}

func TestMulInvertIdentity(t *testing.T) {
	var a, inv, prod Elt
	a.SetBytes([]byte{9, 9, 9, 9})
	inv.Invert(&a)
	prod.Mul(&a, &inv)
	if !prod.Equal(&one) {
		t.Fatalf("a * a^-1 != 1")
	}
}

func TestSquareSqrtRoundTrip(t *testing.T) {
	var a, sq, root Elt
	a.SetBytes([]byte{7, 1, 5, 3})
	sq.Square(&a)
	_, ok := root.Sqrt(&sq)
	if ok != 1 {
		t.Fatalf("expected square to have a sqrt")
	}
	var check Elt
	check.Square(&root)
	if !check.Equal(&sq) {
		t.Fatalf("sqrt(a^2)^2 != a^2")
	}
}

func TestAddCommutesOverPseudorandomVectors(t *testing.T) {
	stream := testutil.NewStream("field/fq: add commutes")
	for i := 0; i < 64; i++ {
		var a, b, ab, ba Elt
		a.SetBytes(stream.Next())
		b.SetBytes(stream.Next())
		ab.Add(&a, &b)
		ba.Add(&b, &a)
		if !ab.Equal(&ba) {
			t.Fatalf("a+b != b+a\na = %sb = %s", testutil.Dump(a), testutil.Dump(b))
		}
	}
}

func TestInvertRoundTripsOverPseudorandomVectors(t *testing.T) {
	stream := testutil.NewStream("field/fq: invert round trip")
	for i := 0; i < 64; i++ {
		var a, inv, prod Elt
		a.SetBytes(stream.Next())
		inv.Invert(&a)
		prod.Mul(&a, &inv)
		if !prod.Equal(&one) {
			t.Fatalf("a * a^-1 != 1\na = %s", testutil.Dump(a))
		}
	}
}

func TestBatchInvert(t *testing.T) {
	elts := make([]Elt, 4)
	for i := range elts {
		elts[i].SetBytes([]byte{byte(i + 1), 0x10, 0x20})
	}
	want := make([]Elt, len(elts))
	for i := range elts {
		want[i].Invert(&elts[i])
	}
	BatchInvert(elts)
	for i := range elts {
		if !elts[i].Equal(&want[i]) {
			t.Fatalf("batch invert mismatch at %d", i)
		}
	}
}
