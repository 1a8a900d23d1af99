package numtheory

// IsPrime reports whether n is prime using 6k±1 trial division.
func IsPrime(n int64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// HasPrimeInRange reports whether [min, max] contains at least one prime.
func HasPrimeInRange(min, max int64) bool {
	for n := min; n <= max; n++ {
		if IsPrime(n) {
			return true
		}
	}
	return false
}

// GCD returns the greatest common divisor of a and b. GCD(a, 0) is a.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
