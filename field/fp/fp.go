// Package fp implements constant-time arithmetic over the Helios base
// field F_p, p = 2^255 - 19.
//
// Elements are carried internally as a 256-bit integer (github.com/
// holiman/uint256), reduced modulo p after every operation that can
// overflow it. The public encoding is little-endian, matching the
// teacher's getB32/setB32 convention but with byte order flipped to
// match the radix-2^51 little-endian layout the rest of the corpus uses
// for Curve25519-family fields.
package fp

import (
	"errors"

	"github.com/holiman/uint256"
)

// Elt is an element of F_p. The zero value is the field element 0.
type Elt struct {
	v uint256.Int
}

var (
	modulus    uint256.Int
	pMinus2    uint256.Int
	pPlus3Div8 uint256.Int
	sqrtM1     Elt

	zero Elt
	one  = Elt{v: *uint256.NewInt(1)}
)

func init() {
	modulus.SetBytes(reverse(modulusBytes[:]))
	pMinus2.SetBytes(reverse(pMinus2Bytes[:]))
	pPlus3Div8.SetBytes(reverse(pPlus3Div8Bytes[:]))
	sqrtM1.v.SetBytes(reverse(sqrtM1Bytes[:]))
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}

// Zero returns the additive identity.
func Zero() Elt { return zero }

// One returns the multiplicative identity.
func One() Elt { return one }

// errInvalidEncoding is returned by SetCanonicalBytes for an input that
// is not 32 bytes long or encodes a value >= p.
var errInvalidEncoding = errors.New("fp: value out of range")

// SetBytes decodes a 32-byte little-endian encoding into e, reducing
// modulo p. It never fails: inputs are always taken mod p, matching the
// teacher's permissive setB32 plus an explicit normalize step.
func (e *Elt) SetBytes(b []byte) *Elt {
	var tmp [32]byte
	copy(tmp[:], b)
	e.v.SetBytes(reverse(tmp[:]))
	e.v.Mod(&e.v, &modulus)
	return e
}

// SetCanonicalBytes decodes a 32-byte little-endian encoding, rejecting
// any value that is not the unique representative in [0, p).
func (e *Elt) SetCanonicalBytes(b []byte) (*Elt, error) {
	if len(b) != 32 {
		return nil, errInvalidEncoding
	}
	var v uint256.Int
	v.SetBytes(reverse(append([]byte(nil), b...)))
	if v.Cmp(&modulus) >= 0 {
		return nil, errInvalidEncoding
	}
	e.v = v
	return e, nil
}

// Bytes returns the canonical 32-byte little-endian encoding of e.
func (e *Elt) Bytes() []byte {
	var reduced uint256.Int
	reduced.Mod(&e.v, &modulus)
	b32 := reduced.Bytes32()
	out := make([]byte, 32)
	for i := range b32 {
		out[31-i] = b32[i]
	}
	return out
}

// Add sets e = a + b and returns e.
func (e *Elt) Add(a, b *Elt) *Elt {
	e.v.AddMod(&a.v, &b.v, &modulus)
	return e
}

// Sub sets e = a - b and returns e.
func (e *Elt) Sub(a, b *Elt) *Elt {
	e.v.SubMod(&a.v, &b.v, &modulus)
	return e
}

// Neg sets e = -a and returns e.
func (e *Elt) Neg(a *Elt) *Elt {
	var z uint256.Int
	e.v.SubMod(&z, &a.v, &modulus)
	return e
}

// Mul sets e = a * b and returns e.
func (e *Elt) Mul(a, b *Elt) *Elt {
	e.v.MulMod(&a.v, &b.v, &modulus)
	return e
}

// Square sets e = a * a and returns e.
func (e *Elt) Square(a *Elt) *Elt {
	return e.Mul(a, a)
}

// CMov sets e = a if cond == 1, leaves e unchanged if cond == 0. cond must
// be exactly 0 or 1; any other value is undefined, mirroring the
// teacher's CMov masking contract.
func (e *Elt) CMov(a *Elt, cond int) *Elt {
	mask := uint64(0) - uint64(cond&1)
	for i := range e.v {
		e.v[i] = (e.v[i] &^ mask) | (a.v[i] & mask)
	}
	return e
}

// IsZero reports whether e == 0.
func (e *Elt) IsZero() bool {
	var reduced uint256.Int
	reduced.Mod(&e.v, &modulus)
	return reduced.IsZero()
}

// Equal reports whether e == other.
func (e *Elt) Equal(other *Elt) bool {
	var a, b uint256.Int
	a.Mod(&e.v, &modulus)
	b.Mod(&other.v, &modulus)
	return a.Eq(&b)
}

// IsNegative reports the sign of e using the low-bit convention of
// RFC 9380 sgn0: e is "negative" when its canonical encoding is odd.
func (e *Elt) IsNegative() bool {
	var reduced uint256.Int
	reduced.Mod(&e.v, &modulus)
	return reduced[0]&1 == 1
}

// Invert sets e = a^-1 via Fermat's little theorem (a^(p-2)), and returns
// e. The zero element inverts to zero, matching inv0 semantics used by
// the hash-to-curve map.
func (e *Elt) Invert(a *Elt) *Elt {
	return e.pow(a, &pMinus2)
}

// Sqrt attempts to compute a square root of a, returning (root, 1) when a
// is a quadratic residue and (undefined, 0) otherwise. Uses the Atkin
// exponent (p+3)/8 with the sqrt(-1) fixup required for p = 8k+5.
func (e *Elt) Sqrt(a *Elt) (*Elt, int) {
	var candidate, check Elt
	candidate.pow(a, &pPlus3Div8)

	check.Square(&candidate)
	if check.Equal(a) {
		*e = candidate
		return e, 1
	}

	var withSqrtM1 Elt
	withSqrtM1.Mul(&candidate, &sqrtM1)
	check.Square(&withSqrtM1)
	if check.Equal(a) {
		*e = withSqrtM1
		return e, 1
	}

	return e, 0
}

// pow sets e = a^exp via square-and-multiply over the exponent's bits.
// exp is always a compile-time public constant (p-2 or (p+3)/8), so
// branching on its bits carries no secret-dependent timing.
func (e *Elt) pow(a *Elt, exp *uint256.Int) *Elt {
	result := one
	base := *a
	for i := 0; i < 256; i++ {
		word := exp[i/64]
		if (word>>(uint(i)%64))&1 == 1 {
			result.Mul(&result, &base)
		}
		base.Mul(&base, &base)
	}
	*e = result
	return e
}

// BatchInvert inverts every element of elts in place using Montgomery's
// trick: one field inversion plus 3(n-1) multiplications rather than n
// inversions, the standard optimization for affine-conversion hot paths.
func BatchInvert(elts []Elt) {
	n := len(elts)
	if n == 0 {
		return
	}
	prefix := make([]Elt, n)
	prefix[0] = elts[0]
	for i := 1; i < n; i++ {
		prefix[i].Mul(&prefix[i-1], &elts[i])
	}

	var inv Elt
	inv.Invert(&prefix[n-1])

	for i := n - 1; i > 0; i-- {
		var orig Elt
		orig = elts[i]
		elts[i].Mul(&prefix[i-1], &inv)
		inv.Mul(&inv, &orig)
	}
	elts[0] = inv
}
