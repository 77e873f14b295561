// Package fq implements constant-time arithmetic over the Selene base
// field F_q, q = 2^255 - gamma, for a ~127-bit Crandall constant gamma.
//
// This mirrors package fp's structure exactly; the two packages are
// kept as separate concrete implementations rather than one generic
// package, since the
// field modulus and reduction constant differ and Go's generic
// constraints for a self-referential "field element" interface would
// need hand-verified correctness without a compiler available.
package fq

import (
	"errors"

	"github.com/holiman/uint256"
)

// Elt is an element of F_q. The zero value is the field element 0.
type Elt struct {
	v uint256.Int
}

var (
	modulus    uint256.Int
	qMinus2    uint256.Int
	qPlus1Div4 uint256.Int
	gamma      uint256.Int

	zero Elt
	one  = Elt{v: *uint256.NewInt(1)}
)

func init() {
	modulus.SetBytes(reverse(modulusBytes[:]))
	qMinus2.SetBytes(reverse(qMinus2Bytes[:]))
	qPlus1Div4.SetBytes(reverse(qPlus1Div4Bytes[:]))
	gamma.SetBytes(reverse(gammaBytes[:]))
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

var errInvalidEncoding = errors.New("fq: value out of range")

// SetBytes decodes a 32-byte little-endian encoding into e, reducing
// modulo q.
func (e *Elt) SetBytes(b []byte) *Elt {
	var tmp [32]byte
	copy(tmp[:], b)
	e.v.SetBytes(reverse(tmp[:]))
	e.v.Mod(&e.v, &modulus)
	return e
}

// SetCanonicalBytes decodes a 32-byte little-endian encoding, rejecting
// any value that is not the unique representative in [0, q).
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

// CMov sets e = a if cond == 1, leaves e unchanged if cond == 0.
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

// IsNegative reports the sign of e using the sgn0 low-bit convention.
func (e *Elt) IsNegative() bool {
	var reduced uint256.Int
	reduced.Mod(&e.v, &modulus)
	return reduced[0]&1 == 1
}

// Invert sets e = a^-1 via Fermat's little theorem.
func (e *Elt) Invert(a *Elt) *Elt {
	return e.pow(a, &qMinus2)
}

// Sqrt computes a square root of a using the direct exponent (q+1)/4,
// valid since q = 4k+3. Returns (root, 1) when a is a quadratic residue,
// (undefined, 0) otherwise.
func (e *Elt) Sqrt(a *Elt) (*Elt, int) {
	var candidate, check Elt
	candidate.pow(a, &qPlus1Div4)
	check.Square(&candidate)
	if check.Equal(a) {
		*e = candidate
		return e, 1
	}
	return e, 0
}

// pow sets e = a^exp via square-and-multiply over the exponent's public
// bits.
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
// trick.
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
		orig := elts[i]
		elts[i].Mul(&prefix[i-1], &inv)
		inv.Mul(&inv, &orig)
	}
	elts[0] = inv
}
