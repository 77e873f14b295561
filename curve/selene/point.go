// Package selene implements Jacobian-coordinate point arithmetic, scalar
// multiplication, Pedersen commitment and hash-to-curve for the Selene
// curve y^2 = x^3 - 3x + B over F_q, mirroring package helios exactly
// (selene_add.cpp in the original source is a byte-for-byte port of
// helios_add.cpp onto the other field in the 2-cycle).
package selene

// Point is a curve point in Jacobian coordinates (X:Y:Z).
type Point struct {
	X, Y, Z  Elt
	infinity bool
}

// Identity returns the point at infinity.
func Identity() Point {
	var p Point
	p.infinity = true
	return p
}

// Generator returns the canonical base point of the Selene curve.
func Generator() Point {
	var p Point
	p.X = baseX
	p.Y = baseY
	p.Z = decodeHex("01" + zerosHex(62))
	return p
}

func zerosHex(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}

// isAllZero reports whether every byte of b is zero. Point decoding is
// not a secret-dependent operation (the encoding is public), so this
// has no constant-time requirement.
func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.infinity
}

// Affine returns the affine (x, y) coordinates of p.
func (p *Point) Affine() (Elt, Elt) {
	if p.infinity {
		var z Elt
		return z, z
	}
	var zInv, zInv2, zInv3, x, y Elt
	zInv.Invert(&p.Z)
	zInv2.Square(&zInv)
	zInv3.Mul(&zInv2, &zInv)
	x.Mul(&p.X, &zInv2)
	y.Mul(&p.Y, &zInv3)
	return x, y
}

// SetAffine sets p to the affine point (x, y).
func (p *Point) SetAffine(x, y Elt) *Point {
	p.X = x
	p.Y = y
	p.Z = decodeHex("01" + zerosHex(62))
	p.infinity = false
	return p
}

// IsOnCurve reports whether p satisfies the Jacobian curve equation.
func (p *Point) IsOnCurve() bool {
	if p.infinity {
		return true
	}
	var y2, x3, z2, z4, z6, ax, rhs Elt
	y2.Square(&p.Y)
	x3.Square(&p.X)
	x3.Mul(&x3, &p.X)
	z2.Square(&p.Z)
	z4.Square(&z2)
	z6.Mul(&z4, &z2)
	ax.Mul(&curveA, &p.X)
	ax.Mul(&ax, &z4)
	var b6 Elt
	b6.Mul(&curveB, &z6)
	rhs.Add(&x3, &ax)
	rhs.Add(&rhs, &b6)
	return y2.Equal(&rhs)
}

// Double sets p = 2*a and returns p.
func (p *Point) Double(a *Point) *Point {
	if a.infinity {
		*p = *a
		return p
	}
	var delta, gamma, beta, alpha, x3, y3, z3, t0, t1, t2 Elt

	delta.Square(&a.Z)
	gamma.Square(&a.Y)
	beta.Mul(&a.X, &gamma)

	t0.Sub(&a.X, &delta)
	t1.Add(&a.X, &delta)
	alpha.Mul(&t0, &t1)
	t2 = alpha
	alpha.Add(&alpha, &t2)
	alpha.Add(&alpha, &t2)

	x3.Square(&alpha)
	t0 = beta
	for i := 0; i < 3; i++ {
		t0.Add(&t0, &t0)
	}
	x3.Sub(&x3, &t0)

	t0.Add(&a.Y, &a.Z)
	z3.Square(&t0)
	z3.Sub(&z3, &gamma)
	z3.Sub(&z3, &delta)

	t0 = beta
	t0.Add(&t0, &t0)
	t0.Add(&t0, &t0)
	t0.Sub(&t0, &x3)
	y3.Mul(&alpha, &t0)
	t1.Square(&gamma)
	for i := 0; i < 3; i++ {
		t1.Add(&t1, &t1)
	}
	y3.Sub(&y3, &t1)

	p.X, p.Y, p.Z = x3, y3, z3
	p.infinity = false
	return p
}

// Add sets p = a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	if a.infinity {
		*p = *b
		return p
	}
	if b.infinity {
		*p = *a
		return p
	}

	var z1z1, z2z2, u1, u2, s1, s2, h, i, j, r, v, x3, y3, z3, t0, t1 Elt

	z1z1.Square(&a.Z)
	z2z2.Square(&b.Z)
	u1.Mul(&a.X, &z2z2)
	u2.Mul(&b.X, &z1z1)
	t0.Mul(&b.Z, &z2z2)
	s1.Mul(&a.Y, &t0)
	t1.Mul(&a.Z, &z1z1)
	s2.Mul(&b.Y, &t1)

	h.Sub(&u2, &u1)
	if h.IsZero() {
		if s1.Equal(&s2) {
			return p.Double(a)
		}
		*p = Identity()
		return p
	}

	t0 = h
	t0.Add(&t0, &t0)
	i.Square(&t0)
	j.Mul(&h, &i)
	r.Sub(&s2, &s1)
	r.Add(&r, &r)
	v.Mul(&u1, &i)

	x3.Square(&r)
	x3.Sub(&x3, &j)
	t0 = v
	t0.Add(&t0, &t0)
	x3.Sub(&x3, &t0)

	t0.Sub(&v, &x3)
	y3.Mul(&r, &t0)
	t1.Mul(&s1, &j)
	t1.Add(&t1, &t1)
	y3.Sub(&y3, &t1)

	t0.Add(&a.Z, &b.Z)
	z3.Square(&t0)
	z3.Sub(&z3, &z1z1)
	z3.Sub(&z3, &z2z2)
	z3.Mul(&z3, &h)

	p.X, p.Y, p.Z = x3, y3, z3
	p.infinity = false
	return p
}

// AddMixed sets p = a + b where b is affine, using madd-2007-bl.
func (p *Point) AddMixed(a *Point, bx, by Elt) *Point {
	if a.infinity {
		p.SetAffine(bx, by)
		return p
	}

	var z1z1, u2, s2, h, hh, i, j, r, v, x3, y3, z3, t0, t1 Elt

	z1z1.Square(&a.Z)
	u2.Mul(&bx, &z1z1)
	t0.Mul(&a.Z, &z1z1)
	s2.Mul(&by, &t0)

	h.Sub(&u2, &a.X)
	if h.IsZero() {
		if s2.Equal(&a.Y) {
			return p.Double(a)
		}
		*p = Identity()
		return p
	}

	hh.Square(&h)
	t0 = hh
	t0.Add(&t0, &t0)
	t0.Add(&t0, &t0)
	i = t0
	j.Mul(&h, &i)
	r.Sub(&s2, &a.Y)
	r.Add(&r, &r)
	v.Mul(&a.X, &i)

	x3.Square(&r)
	x3.Sub(&x3, &j)
	t0 = v
	t0.Add(&t0, &t0)
	x3.Sub(&x3, &t0)

	t0.Sub(&v, &x3)
	y3.Mul(&r, &t0)
	t1.Mul(&a.Y, &j)
	t1.Add(&t1, &t1)
	y3.Sub(&y3, &t1)

	t0.Add(&a.Z, &h)
	z3.Square(&t0)
	z3.Sub(&z3, &z1z1)
	z3.Sub(&z3, &hh)

	p.X, p.Y, p.Z = x3, y3, z3
	p.infinity = false
	return p
}

// Neg sets p = -a and returns p.
func (p *Point) Neg(a *Point) *Point {
	*p = *a
	if !p.infinity {
		p.Y.Neg(&p.Y)
	}
	return p
}

// CMov sets p = a if cond == 1, leaves p unchanged if cond == 0.
func (p *Point) CMov(a *Point, cond int) *Point {
	p.X.CMov(&a.X, cond)
	p.Y.CMov(&a.Y, cond)
	p.Z.CMov(&a.Z, cond)
	if cond&1 == 1 {
		p.infinity = a.infinity
	}
	return p
}

// Equal reports whether p and other represent the same curve point.
func (p *Point) Equal(other *Point) bool {
	if p.infinity != other.infinity {
		return false
	}
	if p.infinity {
		return true
	}
	var z1z1, z2z2, u1, u2, z1c, z2c, s1, s2 Elt
	z1z1.Square(&p.Z)
	z2z2.Square(&other.Z)
	u1.Mul(&p.X, &z2z2)
	u2.Mul(&other.X, &z1z1)
	if !u1.Equal(&u2) {
		return false
	}
	z1c.Mul(&z1z1, &p.Z)
	z2c.Mul(&z2z2, &other.Z)
	s1.Mul(&p.Y, &z2c)
	s2.Mul(&other.Y, &z1c)
	return s1.Equal(&s2)
}

// ToBytes encodes p's affine x-coordinate with the y-coordinate's
// low-bit folded into the top bit of the high byte.
func (p *Point) ToBytes() []byte {
	x, y := p.Affine()
	out := x.Bytes()
	if y.IsNegative() {
		out[31] |= 0x80
	}
	return out
}

// FromBytes decodes a 32-byte compressed encoding into p. The all-zero
// encoding decodes to the identity, matching ToBytes's encoding of it.
func (p *Point) FromBytes(b []byte) error {
	if len(b) != 32 {
		return errInvalidEncoding
	}
	if isAllZero(b) {
		*p = Identity()
		return nil
	}
	sign := b[31]&0x80 != 0
	xb := append([]byte(nil), b...)
	xb[31] &^= 0x80

	var x Elt
	if _, err := x.SetCanonicalBytes(xb); err != nil {
		return errInvalidEncoding
	}

	var x2, x3, ax, rhs Elt
	x2.Square(&x)
	x3.Mul(&x2, &x)
	ax.Mul(&curveA, &x)
	rhs.Add(&x3, &ax)
	rhs.Add(&rhs, &curveB)

	var y Elt
	if _, ok := y.Sqrt(&rhs); ok != 1 {
		return errNotSquare
	}
	if y.IsNegative() != sign {
		y.Neg(&y)
	}
	p.SetAffine(x, y)
	return nil
}
