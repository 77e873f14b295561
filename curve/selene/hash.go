package selene

// MapToCurve applies the Simplified SWU map (RFC 9380 section 6.6.2) to
// a single field element u, producing a point on the Selene curve.
func MapToCurve(u *Elt) Point {
	var u2, zu2, z2, u4, z2u4, denom Elt
	u2.Square(u)
	zu2.Mul(&sswuZ, &u2)
	z2.Square(&sswuZ)
	u4.Square(&u2)
	z2u4.Mul(&z2, &u4)
	denom.Add(&z2u4, &zu2)

	var x1 Elt
	if denom.IsZero() {
		x1 = sswuBOverZA
	} else {
		var tv1, one, onePlusTV1 Elt
		tv1.Invert(&denom)
		one = decodeHex("01" + zerosHex(62))
		onePlusTV1.Add(&one, &tv1)
		x1.Mul(&sswuNegBOverA, &onePlusTV1)
	}

	gx1 := curveEquation(&x1)

	var x2 Elt
	x2.Mul(&zu2, &x1)
	gx2 := curveEquation(&x2)

	var x, y Elt
	root, ok := new(Elt).Sqrt(&gx1)
	if ok == 1 {
		x = x1
		y = *root
	} else {
		x = x2
		root2, _ := new(Elt).Sqrt(&gx2)
		y = *root2
	}

	if u.IsNegative() != y.IsNegative() {
		y.Neg(&y)
	}

	var p Point
	p.SetAffine(x, y)
	return p
}

func curveEquation(x *Elt) Elt {
	var x2, x3, ax, out Elt
	x2.Square(x)
	x3.Mul(&x2, x)
	ax.Mul(&curveA, x)
	out.Add(&x3, &ax)
	out.Add(&out, &curveB)
	return out
}

// HashToCurve combines two independent field elements into a point
// indistinguishable from uniformly random on the curve.
func HashToCurve(u0, u1 *Elt) Point {
	p0 := MapToCurve(u0)
	p1 := MapToCurve(u1)
	var r Point
	r.Add(&p0, &p1)
	return r
}
