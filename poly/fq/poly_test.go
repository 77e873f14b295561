package fq

import (
	"testing"

	"github.com/gibme-c/helioselene-sub002/internal/testutil"
)

func elt(b ...byte) Elt {
	var e Elt
	e.SetBytes(b)
	return e
}

func TestEvaluateConstant(t *testing.T) {
	p := New([]Elt{elt(5)})
	x := elt(100)
	got := p.Evaluate(x)
	if !got.Equal(ptr(elt(5))) {
		t.Fatalf("constant polynomial should evaluate to itself")
	}
}

func ptr(e Elt) *Elt { return &e }

func TestAddSubRoundTrip(t *testing.T) {
	p := New([]Elt{elt(1), elt(2), elt(3)})
	q := New([]Elt{elt(4), elt(5)})
	sum := p.Add(q)
	back := sum.Sub(q)
	x := elt(7)
	if !back.Evaluate(x).Equal(ptr(p.Evaluate(x))) {
		t.Fatalf("(p+q)-q != p")
	}
}

func TestMulMatchesPointwiseEvaluation(t *testing.T) {
	p := New([]Elt{elt(1), elt(1)}) // 1 + x
	q := New([]Elt{elt(2), elt(1)}) // 2 + x
	prod := p.Mul(q)
	x := elt(9)
	want := p.Evaluate(x)
	qx := q.Evaluate(x)
	want.Mul(&want, &qx)
	if !prod.Evaluate(x).Equal(&want) {
		t.Fatalf("p(x)*q(x) != (p*q)(x)")
	}
}

func TestFromRootsVanishesAtRoots(t *testing.T) {
	roots := []Elt{elt(1), elt(2), elt(3)}
	p := FromRoots(roots)
	for _, r := range roots {
		v := p.Evaluate(r)
		if !v.IsZero() {
			t.Fatalf("FromRoots polynomial does not vanish at a root")
		}
	}
}

func TestDivModReconstructsDividend(t *testing.T) {
	p := New([]Elt{elt(6), elt(11), elt(6), elt(1)}) // (x+1)(x+2)(x+3)
	divisor := New([]Elt{elt(1), elt(1)})             // x+1
	quot, rem := p.DivMod(divisor)
	if rem.Degree() >= divisor.Degree() {
		t.Fatalf("remainder degree too large")
	}
	reconstructed := quot.Mul(divisor).Add(rem)
	x := elt(13)
	if !reconstructed.Evaluate(x).Equal(ptr(p.Evaluate(x))) {
		t.Fatalf("q*d+r != p")
	}
}

func TestInterpolatePassesThroughPoints(t *testing.T) {
	xs := []Elt{elt(1), elt(2), elt(3)}
	ys := []Elt{elt(10), elt(20), elt(30)}
	p := Interpolate(xs, ys)
	for i := range xs {
		got := p.Evaluate(xs[i])
		if !got.Equal(&ys[i]) {
			t.Fatalf("interpolated polynomial misses a data point")
		}
	}
}

func TestMulMatchesPointwiseEvaluationOverPseudorandomVectors(t *testing.T) {
	stream := testutil.NewStream("poly/fq: mul matches pointwise evaluation")
	for i := 0; i < 16; i++ {
		var c0, c1, c2, c3 Elt
		c0.SetBytes(stream.Next())
		c1.SetBytes(stream.Next())
		c2.SetBytes(stream.Next())
		c3.SetBytes(stream.Next())
		p := New([]Elt{c0, c1})
		q := New([]Elt{c2, c3})
		prod := p.Mul(q)

		var x Elt
		x.SetBytes(stream.Next())
		want := p.Evaluate(x)
		qx := q.Evaluate(x)
		want.Mul(&want, &qx)
		if !prod.Evaluate(x).Equal(&want) {
			t.Fatalf("p(x)*q(x) != (p*q)(x)\np = %sq = %s", testutil.Dump(p), testutil.Dump(q))
		}
	}
}

func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	n := karatsubaThreshold + 5
	coeffsA := make([]Elt, n)
	coeffsB := make([]Elt, n)
	for i := 0; i < n; i++ {
		coeffsA[i] = elt(byte(i + 1))
		coeffsB[i] = elt(byte(2*i + 1))
	}
	p := New(coeffsA)
	q := New(coeffsB)
	viaDispatch := p.Mul(q)
	viaSchoolbook := p.mulSchoolbook(q)
	x := elt(17)
	if !viaDispatch.Evaluate(x).Equal(ptr(viaSchoolbook.Evaluate(x))) {
		t.Fatalf("karatsuba path disagrees with schoolbook path")
	}
}
