package toyrsa

import "errors"

// ErrInvalidRange is returned when a prime sampling range is empty or holds no prime
var ErrInvalidRange = errors.New("invalid prime range")

// ErrDegenerateTotient is returned when phi leaves no room for an exponent in (1, phi)
var ErrDegenerateTotient = errors.New("degenerate totient")
