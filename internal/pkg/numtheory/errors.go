package numtheory

import "errors"

// ErrNotInvertible is returned when a value shares a factor with the modulus
var ErrNotInvertible = errors.New("value is not invertible")

// ErrOverflow is returned when an intermediate product does not fit in int64
var ErrOverflow = errors.New("integer overflow")

// ErrInvalidArgument is returned for a modulus below one or a negative exponent
var ErrInvalidArgument = errors.New("invalid argument")
