package fastdtwbd

import "errors"

// ErrInvalidRadius indicates a negative radius was supplied; radius is a
// Chebyshev neighborhood size and must be non-negative.
var ErrInvalidRadius = errors.New("fastdtwbd: radius must be non-negative")
