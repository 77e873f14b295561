package selene

import "errors"

var (
	errInvalidEncoding   = errors.New("selene: invalid point encoding")
	errNotSquare         = errors.New("selene: x-coordinate is not on the curve")
	errMSMLengthMismatch = errors.New("selene: scalar and point slice lengths differ")
)
