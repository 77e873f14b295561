package selene

import "github.com/gibme-c/helioselene-sub002/field/fp"

// ToHeliosScalar reinterprets a Selene base-field element (F_q) as a
// Helios scalar (F_p), the other direction of the curve-to-curve bridge
// alongside helios.ToSeleneScalar.
func ToHeliosScalar(x *Elt) fp.Elt {
	var out fp.Elt
	out.SetBytes(x.Bytes())
	return out
}
