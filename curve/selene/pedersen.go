package selene

// PedersenCommit computes blinding*H + sum(values[i]*generators[i]).
// The running sum uses addComplete, not Add, since both operands carry
// secret-dependent coordinates and Add's collision check would branch
// on them.
func PedersenCommit(blinding *Scalar, h *Point, values []Scalar, generators []Point) Point {
	if len(values) != len(generators) {
		panic(errMSMLengthMismatch)
	}
	acc := ScalarMult(blinding, h)
	for i := range values {
		term := ScalarMult(&values[i], &generators[i])
		acc = addComplete(&acc, &term)
	}
	return acc
}
