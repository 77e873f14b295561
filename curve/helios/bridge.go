package helios

import "github.com/gibme-c/helioselene-sub002/field/fq"

// ToSeleneScalar reinterprets a Helios base-field element (F_p) as a
// Selene scalar (F_q), carrying a coordinate produced on one curve of
// the 2-cycle into a scalar consumable by the other curve's scalar
// multiplication. Since
// p and q are both ~255-bit primes with p > q, this reduces modulo q;
// callers that need the bijective, non-lossy direction should keep
// values below min(p, q) by construction (e.g. x-coordinates are
// already canonical F_p elements, which FromBytes/SetCanonicalBytes on
// the destination field will accept whenever the value happens to also
// be < q, and silently reduce otherwise).
func ToSeleneScalar(x *Elt) fq.Elt {
	var out fq.Elt
	out.SetBytes(x.Bytes())
	return out
}
