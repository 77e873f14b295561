package helios

import "testing"

func TestToSeleneScalarIsDeterministic(t *testing.T) {
	var x Elt
	x.SetBytes([]byte{1, 2, 3, 4})
	a := ToSeleneScalar(&x)
	b := ToSeleneScalar(&x)
	if !a.Equal(&b) {
		t.Fatalf("ToSeleneScalar is not deterministic")
	}
}
