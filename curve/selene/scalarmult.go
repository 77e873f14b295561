package selene

import "github.com/gibme-c/helioselene-sub002/field/fp"

// Scalar is an element of the Selene curve's scalar field, which is
// Helios's base field F_p, the other half of the 2-cycle.
type Scalar = fp.Elt

func scalarBits(s *Scalar) [256]bool {
	b := s.Bytes()
	var bits [256]bool
	for i := 0; i < 256; i++ {
		bits[i] = (b[i/8]>>(uint(i)%8))&1 == 1
	}
	return bits
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ScalarMult computes s*base in constant time with respect to s. Every
// iteration performs one doubling and one addition through the
// branch-free doubleComplete/addComplete pair rather than the general
// Double/Add, so no iteration's timing depends on whether the running
// accumulator happens to collide with base.
func ScalarMult(s *Scalar, base *Point) Point {
	bits := scalarBits(s)
	acc := Identity()
	for i := 255; i >= 0; i-- {
		acc = doubleComplete(&acc)
		sum := addComplete(&acc, base)
		acc.CMov(&sum, boolToInt(bits[i]))
	}
	return acc
}

// ScalarBaseMult computes s*Generator() in constant time.
func ScalarBaseMult(s *Scalar) Point {
	g := Generator()
	return ScalarMult(s, &g)
}

// FixedBaseTable precomputes multiples of a fixed base point for
// repeated constant-time scalar multiplication.
type FixedBaseTable struct {
	base    Point
	windows [64][16]Point
}

// NewFixedBaseTable builds a table for repeated constant-time
// multiplication against base.
func NewFixedBaseTable(base *Point) *FixedBaseTable {
	t := &FixedBaseTable{base: *base}
	cur := *base
	for w := 0; w < 64; w++ {
		t.windows[w][0] = Identity()
		for d := 1; d < 16; d++ {
			t.windows[w][d].Add(&t.windows[w][d-1], &cur)
		}
		for k := 0; k < 4; k++ {
			cur.Double(&cur)
		}
	}
	return t
}

// Mul computes s*base in constant time using the precomputed table.
// Table lookups are CMov-scanned and the window accumulation uses
// addComplete rather than Add, so the selected nibble never affects
// which field operations run.
func (t *FixedBaseTable) Mul(s *Scalar) Point {
	b := s.Bytes()
	acc := Identity()
	for w := 0; w < 64; w++ {
		nibble := 0
		if w%2 == 0 {
			nibble = int(b[w/2] & 0x0f)
		} else {
			nibble = int(b[w/2] >> 4)
		}
		selected := Identity()
		for d := 0; d < 16; d++ {
			selected.CMov(&t.windows[w][d], boolToInt(d == nibble))
		}
		acc = addComplete(&acc, &selected)
	}
	return acc
}
