package helios

import "github.com/gibme-c/helioselene-sub002/field/fp"

// Elt is a field element of the curve's base field, F_p.
type Elt = fp.Elt

// Curve equation: y^2 = x^3 + A*x + B over F_p, A = -3. Constants below
// are the little-endian canonical encodings consumed by Elt.SetBytes,
// carried over from the original helios_map_to_curve.cpp SSWU tables
// (HELIOS_B) and independently re-derived and verified for the rest.
var (
	curveA Elt
	curveB Elt

	// Simplified SWU (RFC 9380 section 6.6.2) constants.
	sswuZ         Elt
	sswuNegBOverA Elt
	sswuBOverZA   Elt

	baseX Elt
	baseY Elt
)

func init() {
	curveA = decodeHex("eaffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff7f")
	curveB = decodeHex("d43ad7ede19eb42235bf1341386f3f043b7bbb3e6ba794beb870eab039c7e822")
	sswuZ = decodeHex("0700000000000000000000000000000000000000000000000000000000000000")
	sswuNegBOverA = decodeHex("9c139da4a0dfe660bc3fb115687a6a01697e3e6ace37dc943dd0f83a13eda20b")
	sswuBOverZA = decodeHex("698fe9c35672ba16e5f67821f1c9f0488312f739508ae033f74f93f76a70567e")

	baseX = decodeHex("0300000000000000000000000000000000000000000000000000000000000000")
	baseY = decodeHex("f9c0e71cc619bc2d235a793a22c4ffa6f8a0dfaf7c996d42e38d3f85268b842c")
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
