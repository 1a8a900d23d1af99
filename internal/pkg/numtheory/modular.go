package numtheory

import (
	"fmt"

	"github.com/JohnCGriffin/overflow"
)

// EuclidStep is one iteration of the extended Euclidean algorithm.
type EuclidStep struct {
	Quotient int64
	R        int64
	NewR     int64
	T        int64
	NewT     int64
}

// ExpStep is one iteration of square-and-multiply.
type ExpStep struct {
	Exponent int64 // exponent before halving
	Bit      int64
	Base     int64 // base before squaring
	Result   int64 // result after the optional multiply
}

// MulMod returns (a * b) mod m, failing with ErrOverflow instead of wrapping.
func MulMod(a, b, m int64) (int64, error) {
	product, ok := overflow.Mul64(a, b)
	if !ok {
		return 0, fmt.Errorf("%d * %d: %w", a, b, ErrOverflow)
	}
	return product % m, nil
}

// ModInverse returns d in [0, phi) such that (e * d) mod phi == 1.
func ModInverse(e, phi int64) (int64, error) {
	return ModInverseTrace(e, phi, nil)
}

// ModInverseTrace is ModInverse reporting every iteration to trace.
// trace may be nil.
func ModInverseTrace(e, phi int64, trace func(EuclidStep)) (int64, error) {
	if phi < 1 {
		return 0, fmt.Errorf("modulus %d: %w", phi, ErrInvalidArgument)
	}

	t, newT := int64(0), int64(1)
	r, newR := phi, e
	for newR != 0 {
		quotient := r / newR

		qt, ok := overflow.Mul64(quotient, newT)
		if !ok {
			return 0, fmt.Errorf("bezout coefficient for %d mod %d: %w", e, phi, ErrOverflow)
		}
		t, newT = newT, t-qt
		r, newR = newR, r-quotient*newR

		if trace != nil {
			trace(EuclidStep{Quotient: quotient, R: r, NewR: newR, T: t, NewT: newT})
		}
	}

	if r > 1 {
		return 0, fmt.Errorf("%d mod %d (gcd %d): %w", e, phi, r, ErrNotInvertible)
	}
	if t < 0 {
		t += phi
	}
	return t, nil
}

// ModExp returns (base ^ exp) mod mod by repeated squaring.
func ModExp(base, exp, mod int64) (int64, error) {
	return ModExpTrace(base, exp, mod, nil)
}

// ModExpTrace is ModExp reporting every iteration to trace.
// trace may be nil.
func ModExpTrace(base, exp, mod int64, trace func(ExpStep)) (int64, error) {
	if mod < 1 {
		return 0, fmt.Errorf("modulus %d: %w", mod, ErrInvalidArgument)
	}
	if exp < 0 {
		return 0, fmt.Errorf("exponent %d: %w", exp, ErrInvalidArgument)
	}

	result := int64(1) % mod
	base %= mod
	if base < 0 {
		base += mod
	}

	var err error
	for exp > 0 {
		step := ExpStep{Exponent: exp, Bit: exp & 1, Base: base}

		if exp&1 == 1 {
			if result, err = MulMod(result, base, mod); err != nil {
				return 0, err
			}
		}
		step.Result = result
		if trace != nil {
			trace(step)
		}

		exp >>= 1
		if exp == 0 {
			break
		}
		if base, err = MulMod(base, base, mod); err != nil {
			return 0, err
		}
	}
	return result, nil
}
