package helios

import "github.com/gibme-c/helioselene-sub002/field/fq"

// Scalar is an element of the Helios curve's scalar field. Since Helios
// and Selene form a 2-cycle, the Helios scalar field is exactly
// Selene's base field F_q.
type Scalar = fq.Elt

// scalarBits returns the canonical little-endian bytes of s as a
// 256-entry bit array, most significant bit last.
func scalarBits(s *Scalar) [256]bool {
	b := s.Bytes()
	var bits [256]bool
	for i := 0; i < 256; i++ {
		bits[i] = (b[i/8]>>(uint(i)%8))&1 == 1
	}
	return bits
}

// ScalarMult computes s*base in constant time with respect to s, using
// a fixed-length double-and-add ladder over s's 256 bits. Every
// iteration performs exactly one doubling and one conditional (CMov
// based) addition regardless of the scalar's value, through the
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

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ScalarBaseMult computes s*Generator() in constant time.
func ScalarBaseMult(s *Scalar) Point {
	g := Generator()
	return ScalarMult(s, &g)
}

// FixedBaseTable precomputes multiples of a fixed base point for
// repeated constant-time scalar multiplication against the same base,
// generalized to an arbitrary fixed base rather than only the
// generator.
type FixedBaseTable struct {
	base Point
	// windows[i] holds {0*B, 1*B, ..., 15*B} scaled by 16^i, a simple
	// 4-bit fixed window; every lookup below scans the whole row with
	// CMov so the selected index never affects timing.
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
		// advance cur to 16^(w+1) * base
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
		var selected Point = Identity()
		for d := 0; d < 16; d++ {
			selected.CMov(&t.windows[w][d], boolToInt(d == nibble))
		}
		acc = addComplete(&acc, &selected)
	}
	return acc
}
