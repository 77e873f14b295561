package selene

import "github.com/gibme-c/helioselene-sub002/field/fq"

// Elt is a field element of the curve's base field, F_q.
type Elt = fq.Elt

// Curve equation: y^2 = x^3 + A*x + B over F_q, A = -3. SELENE_B and its
// derived SSWU constants are not present in the retained original
// source for this retrieval (selene_add/selene_madd port the Helios
// group law but no selene_map_to_curve/SELENE_B definition was found).
// SELENE_B below is the value for which the curve has exactly p points,
// so that F_p is its scalar field and the pair forms a 2-cycle with
// Helios (see DESIGN.md). The SSWU table is derived from that B the same
// way Helios derives its table from HELIOS_B; the base point is x = 1
// with the smaller of its two square roots.
var (
	curveA Elt
	curveB Elt

	sswuZ         Elt
	sswuNegBOverA Elt
	sswuBOverZA   Elt

	baseX Elt
	baseY Elt
)

func init() {
	curveA = decodeHex("9cc7277972d2b66e586b65b72c787fbfffffffffffffffffffffffffffffff7f")
	curveB = decodeHex("58455acb8309de680e90ae06df4b94f379e2ff95a5bb517fc176586913771270")
	sswuZ = decodeHex("0700000000000000000000000000000000000000000000000000000000000000")
	sswuNegBOverA = decodeHex("c8c1c84381589fcd04303a02f5c386a628f6ff3137e9c57f40d27278067d5b25")
	sswuBOverZA = decodeHex("a7190b948433e975c5f613b7091323831e6fdbf8aede2cc9f6e1815c91c9a97a")

	baseX = decodeHex("0100000000000000000000000000000000000000000000000000000000000000")
	baseY = decodeHex("cdc953d7cbc798fa20d074ee93c6f32ba07da3ba88ce36a86d35a347d826e605")
}

func decodeHex(s string) Elt {
	out := make([]byte, len(s)/2)
	for i := range out {
		hi := hexNibble(s[2*i])
		lo := hexNibble(s[2*i+1])
		out[i] = hi<<4 | lo
	}
	var e Elt
	e.SetBytes(out)
	return e
}

func hexNibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
