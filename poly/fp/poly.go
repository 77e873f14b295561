// Package fp implements dense polynomial arithmetic over the Helios
// base field F_p, coefficients stored in ascending order (coeffs[i] is
// the coefficient of x^i), matching the ascending layout
// helioselene_polynomial.h documents in the original source.
package fp

import "github.com/gibme-c/helioselene-sub002/field/fp"

// Elt is a field element of F_p.
type Elt = fp.Elt

// Polynomial is a dense univariate polynomial over F_p. The zero
// polynomial is represented by an empty (or all-zero) coefficient
// slice; trim keeps the slice free of trailing zero coefficients.
type Polynomial struct {
	coeffs []Elt
}

// New builds a Polynomial from ascending-order coefficients, copying
// the input slice.
func New(coeffs []Elt) Polynomial {
	p := Polynomial{coeffs: append([]Elt(nil), coeffs...)}
	p.trim()
	return p
}

// FromRoots builds the monic polynomial prod(x - roots[i]).
func FromRoots(roots []Elt) Polynomial {
	result := New([]Elt{one()})
	for i := range roots {
		var negRoot Elt
		negRoot.Neg(&roots[i])
		factor := New([]Elt{negRoot, one()})
		result = result.Mul(factor)
	}
	return result
}

func one() Elt {
	var e Elt
	e.SetBytes([]byte{1})
	return e
}

func (p *Polynomial) trim() {
	n := len(p.coeffs)
	for n > 0 && p.coeffs[n-1].IsZero() {
		n--
	}
	p.coeffs = p.coeffs[:n]
}

// Degree returns the polynomial's degree, or -1 for the zero
// polynomial.
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coeffs returns the ascending-order coefficient slice.
func (p Polynomial) Coeffs() []Elt {
	return append([]Elt(nil), p.coeffs...)
}

func (p Polynomial) coeffAt(i int) Elt {
	if i < 0 || i >= len(p.coeffs) {
		var z Elt
		return z
	}
	return p.coeffs[i]
}

// Evaluate computes p(x) via Horner's method.
func (p Polynomial) Evaluate(x Elt) Elt {
	var acc Elt
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &p.coeffs[i])
	}
	return acc
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]Elt, n)
	for i := 0; i < n; i++ {
		a, b := p.coeffAt(i), q.coeffAt(i)
		out[i].Add(&a, &b)
	}
	return New(out)
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]Elt, n)
	for i := 0; i < n; i++ {
		a, b := p.coeffAt(i), q.coeffAt(i)
		out[i].Sub(&a, &b)
	}
	return New(out)
}

// karatsubaThreshold is the coefficient-count below which Mul falls back
// to schoolbook multiplication; Karatsuba's constant-factor overhead
// only pays off once operands are sufficiently large.
const karatsubaThreshold = 48

// Mul returns p * q, dispatching to schoolbook or Karatsuba multiplication
// depending on operand size.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	if len(p.coeffs) == 0 || len(q.coeffs) == 0 {
		return Polynomial{}
	}
	if len(p.coeffs) < karatsubaThreshold || len(q.coeffs) < karatsubaThreshold {
		return p.mulSchoolbook(q)
	}
	return p.mulKaratsuba(q)
}

func (p Polynomial) mulSchoolbook(q Polynomial) Polynomial {
	out := make([]Elt, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			var term Elt
			term.Mul(&a, &b)
			out[i+j].Add(&out[i+j], &term)
		}
	}
	return New(out)
}

func (p Polynomial) mulKaratsuba(q Polynomial) Polynomial {
	n := len(p.coeffs)
	m := len(q.coeffs)
	half := (max(n, m) + 1) / 2
	if half >= n || half >= m {
		return p.mulSchoolbook(q)
	}

	pLo := New(p.coeffs[:half])
	pHi := New(p.coeffs[half:])
	qLo := New(q.coeffs[:half])
	qHi := New(q.coeffs[half:])

	z0 := pLo.Mul(qLo)
	z2 := pHi.Mul(qHi)
	z1 := pLo.Add(pHi).Mul(qLo.Add(qHi)).Sub(z0).Sub(z2)

	result := make([]Elt, n+m-1)
	for i, c := range z0.coeffs {
		result[i].Add(&result[i], &c)
	}
	for i, c := range z1.coeffs {
		result[i+half].Add(&result[i+half], &c)
	}
	for i, c := range z2.coeffs {
		result[i+2*half].Add(&result[i+2*half], &c)
	}
	return New(result)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// DivMod computes q, r such that p = q*divisor + r with deg(r) <
// deg(divisor), via long division. divisor must not be the zero
// polynomial.
func (p Polynomial) DivMod(divisor Polynomial) (quot, rem Polynomial) {
	if divisor.Degree() < 0 {
		panic("fp: division by the zero polynomial")
	}
	rem = New(p.coeffs)
	divDeg := divisor.Degree()
	var leadInv Elt
	leadInv.Invert(&divisor.coeffs[divDeg])

	quotCoeffs := make([]Elt, maxInt(0, p.Degree()-divDeg+1))
	for rem.Degree() >= divDeg {
		shift := rem.Degree() - divDeg
		var coeff Elt
		coeff.Mul(&rem.coeffs[rem.Degree()], &leadInv)
		if shift < len(quotCoeffs) {
			quotCoeffs[shift] = coeff
		}

		shifted := make([]Elt, shift+divDeg+1)
		for i, c := range divisor.coeffs {
			var t Elt
			t.Mul(&c, &coeff)
			shifted[i+shift] = t
		}
		rem = rem.Sub(New(shifted))
	}
	return New(quotCoeffs), rem
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Interpolate returns the unique polynomial of degree < len(xs) passing
// through (xs[i], ys[i]) for all i, via Lagrange interpolation.
func Interpolate(xs, ys []Elt) Polynomial {
	result := Polynomial{}
	for i := range xs {
		term := New([]Elt{ys[i]})
		var denom Elt
		denom = one()
		for j := range xs {
			if i == j {
				continue
			}
			var diffX, diffDenom Elt
			diffX.Sub(&xs[i], &xs[j])
			var negXj Elt
			negXj.Neg(&xs[j])
			factor := New([]Elt{negXj, one()})
			term = term.Mul(factor)
			diffDenom.Mul(&denom, &diffX)
			denom = diffDenom
		}
		var denomInv Elt
		denomInv.Invert(&denom)
		scaled := make([]Elt, len(term.coeffs))
		for k, c := range term.coeffs {
			scaled[k].Mul(&c, &denomInv)
		}
		result = result.Add(New(scaled))
	}
	return result
}
