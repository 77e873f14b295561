package helios

// PedersenCommit computes blinding*H + sum(values[i]*generators[i]), a
// vector Pedersen commitment to a tuple of values against independent
// generators. Uses the constant-time scalar multiplication path since
// blinding factors and committed values are typically secret; the
// running sum uses addComplete, not Add, for the same reason.
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
