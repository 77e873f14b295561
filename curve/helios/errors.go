package helios

import "errors"

var (
	errInvalidEncoding = errors.New("helios: invalid point encoding")
	errNotSquare       = errors.New("helios: x-coordinate is not on the curve")
	errMSMLengthMismatch = errors.New("helios: scalar and point slice lengths differ")
)
