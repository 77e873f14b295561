package selene

import (
	"testing"

	"github.com/gibme-c/helioselene-sub002/internal/testutil"
)

func TestGeneratorOnCurve(t *testing.T) {
	g := Generator()
	if !g.IsOnCurve() {
		t.Fatalf("generator is not on the curve")
	}
}

func TestDoubleMatchesAdd(t *testing.T) {
	g := Generator()
	var viaAdd, viaDouble Point
	viaAdd.Add(&g, &g)
	viaDouble.Double(&g)
	if !viaAdd.Equal(&viaDouble) {
		t.Fatalf("G+G != 2G")
	}
}

func TestScalarMultByTwoMatchesDouble(t *testing.T) {
	g := Generator()
	var two Scalar
	two.SetBytes([]byte{2})
	got := ScalarMult(&two, &g)
	var want Point
	want.Double(&g)
	if !got.Equal(&want) {
		t.Fatalf("2*G via ScalarMult != Double(G)")
	}
}

func TestScalarMultMatchesVartime(t *testing.T) {
	g := Generator()
	var s Scalar
	s.SetBytes([]byte{0x2a, 0x91, 0x04, 0xff, 0x10})
	ct := ScalarMult(&s, &g)
	vt := ScalarMultVartime(&s, &g)
	if !ct.Equal(&vt) {
		t.Fatalf("constant-time and variable-time scalar mult disagree")
	}
}

func TestFixedBaseTableMatchesScalarMult(t *testing.T) {
	g := Generator()
	table := NewFixedBaseTable(&g)
	var s Scalar
	s.SetBytes([]byte{0x01, 0x02, 0x03, 0x04})
	got := table.Mul(&s)
	want := ScalarMult(&s, &g)
	if !got.Equal(&want) {
		t.Fatalf("fixed-base table result disagrees with ScalarMult")
	}
}

func TestMultiScalarMultVartime(t *testing.T) {
	g := Generator()
	var two Scalar
	two.SetBytes([]byte{2})
	h := ScalarMultVartime(&two, &g)

	var a, b Scalar
	a.SetBytes([]byte{5})
	b.SetBytes([]byte{7})

	got := MultiScalarMultVartime([]Scalar{a, b}, []Point{g, h})

	termA := ScalarMultVartime(&a, &g)
	termB := ScalarMultVartime(&b, &h)
	var want Point
	want.Add(&termA, &termB)

	if !got.Equal(&want) {
		t.Fatalf("MSM result disagrees with individual scalar mults")
	}
}

func TestToBytesFromBytesRoundTrip(t *testing.T) {
	g := Generator()
	enc := g.ToBytes()
	var back Point
	if err := back.FromBytes(enc); err != nil {
		t.Fatalf("FromBytes failed: %v", err)
	}
	if !g.Equal(&back) {
		t.Fatalf("round trip through ToBytes/FromBytes changed the point")
	}
}

func TestIdentityToBytesFromBytesRoundTrip(t *testing.T) {
	id := Identity()
	enc := id.ToBytes()
	for _, v := range enc {
		if v != 0 {
			t.Fatalf("identity should encode as all-zero bytes, got %x", enc)
		}
	}
	var back Point
	if err := back.FromBytes(enc); err != nil {
		t.Fatalf("FromBytes(all-zero) failed: %v", err)
	}
	if !back.IsIdentity() {
		t.Fatalf("FromBytes(all-zero) did not decode to the identity")
	}
	if !id.Equal(&back) {
		t.Fatalf("round trip through ToBytes/FromBytes changed the identity")
	}
}

func TestMapToCurveProducesOnCurvePoint(t *testing.T) {
	var u Elt
	u.SetBytes([]byte{1, 2, 3, 4, 5})
	p := MapToCurve(&u)
	if !p.IsOnCurve() {
		t.Fatalf("MapToCurve output is not on the curve")
	}
}

func TestHashToCurveProducesOnCurvePoint(t *testing.T) {
	var u0, u1 Elt
	u0.SetBytes([]byte{9, 8, 7})
	u1.SetBytes([]byte{1, 2, 3})
	p := HashToCurve(&u0, &u1)
	if !p.IsOnCurve() {
		t.Fatalf("HashToCurve output is not on the curve")
	}
}

func TestScalarMultLinearityOverPseudorandomVectors(t *testing.T) {
	g := Generator()
	stream := testutil.NewStream("curve/selene: scalar mult linearity")
	for i := 0; i < 16; i++ {
		var a, b, sum Scalar
		a.SetBytes(stream.Next())
		b.SetBytes(stream.Next())
		sum.Add(&a, &b)

		lhs := ScalarMult(&sum, &g)
		termA := ScalarMult(&a, &g)
		termB := ScalarMult(&b, &g)
		var rhs Point
		rhs = addComplete(&termA, &termB)

		if !lhs.Equal(&rhs) {
			t.Fatalf("(a+b)*G != a*G + b*G\na = %sb = %s", testutil.Dump(a), testutil.Dump(b))
		}
	}
}

func TestPedersenCommitDeterministic(t *testing.T) {
	g := Generator()

	var blinding, two Scalar
	blinding.SetBytes([]byte{1})
	two.SetBytes([]byte{2})
	hGen := ScalarMultVartime(&two, &g)

	var v0, v1 Scalar
	v0.SetBytes([]byte{3})
	v1.SetBytes([]byte{4})
	values := []Scalar{v0, v1}
	gens := []Point{g, hGen}

	a := PedersenCommit(&blinding, &hGen, values, gens)
	b := PedersenCommit(&blinding, &hGen, values, gens)
	if !a.Equal(&b) {
		t.Fatalf("PedersenCommit is not deterministic")
	}
}
