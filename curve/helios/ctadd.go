package helios

// doubleComplete computes 2*a using dbl-2001-b without branching on
// whether a is the point at infinity: when a's coordinates are all
// zero the formula evaluates to (0,0,0), which is the identity's own
// encoding, so no special case is needed.
func doubleComplete(a *Point) Point {
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

	return Point{X: x3, Y: y3, Z: z3, infinity: z3.IsZero()}
}

// addComplete computes a+b without any branch on secret data: unlike
// Add, it never branches on a.infinity, b.infinity, or the x/y-coordinate
// collision that distinguishes doubling from cancellation; those only
// feed CMov selections. The general
// add-2007-bl formula and the doubling formula are both evaluated
// unconditionally and the right one is selected with CMov, so the
// sequence of field operations performed is identical regardless of
// whether a, b happen to be equal, negatives of each other, or the
// identity. This is the addition constant-time scalar multiplication
// uses; Add remains the branchy, faster version for variable-time
// callers.
func addComplete(a, b *Point) Point {
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
	hIsZero := h.IsZero()
	sEqual := s1.Equal(&s2)

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

	result := Point{X: x3, Y: y3, Z: z3}

	// When h == 0 the general formula above yields Z3 = 0: for a == b
	// (r == 0) that is (0,0,0), which must be replaced by the doubling;
	// for a == -b it is (r^2, -r^3, 0), which the Z-derived infinity flag
	// below already marks as the identity. Only the former needs
	// overriding.
	dbl := doubleComplete(a)
	result.CMov(&dbl, boolToInt(hIsZero && sEqual))

	result.CMov(b, boolToInt(a.infinity))
	result.CMov(a, boolToInt(b.infinity))
	result.infinity = result.Z.IsZero()
	return result
}
