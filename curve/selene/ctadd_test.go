package selene

import "testing"

func TestAddCompleteMatchesAddGeneric(t *testing.T) {
	g := Generator()
	var two Scalar
	two.SetBytes([]byte{2})
	h := ScalarMultVartime(&two, &g)

	var want, got Point
	want.Add(&g, &h)
	got = addComplete(&g, &h)
	if !want.Equal(&got) {
		t.Fatalf("addComplete disagrees with Add for distinct points")
	}
}

func TestAddCompleteDoubling(t *testing.T) {
	g := Generator()
	var want Point
	want.Double(&g)
	got := addComplete(&g, &g)
	if !want.Equal(&got) {
		t.Fatalf("addComplete(g, g) != Double(g)")
	}
}

func TestAddCompleteWithIdentity(t *testing.T) {
	g := Generator()
	id := Identity()

	got := addComplete(&g, &id)
	if !g.Equal(&got) {
		t.Fatalf("addComplete(g, identity) != g")
	}

	got = addComplete(&id, &g)
	if !g.Equal(&got) {
		t.Fatalf("addComplete(identity, g) != g")
	}

	got = addComplete(&id, &id)
	if !got.IsIdentity() {
		t.Fatalf("addComplete(identity, identity) is not the identity")
	}
}

func TestAddCompleteCancellation(t *testing.T) {
	g := Generator()
	var negG Point
	negG.Neg(&g)

	got := addComplete(&g, &negG)
	if !got.IsIdentity() {
		t.Fatalf("addComplete(g, -g) is not the identity")
	}
}

func TestDoubleCompleteMatchesDouble(t *testing.T) {
	g := Generator()
	var want Point
	want.Double(&g)
	got := doubleComplete(&g)
	if !want.Equal(&got) {
		t.Fatalf("doubleComplete disagrees with Double")
	}
	id := Identity()
	got = doubleComplete(&id)
	if !got.IsIdentity() {
		t.Fatalf("doubleComplete(identity) is not the identity")
	}
}
