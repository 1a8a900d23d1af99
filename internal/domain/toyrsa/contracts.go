package toyrsa

import "context"

// RandomSource draws uniform integers in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Int63n(n int64) int64
}

// RSAProcessor performs the textbook RSA steps on int64 values.
type RSAProcessor interface {
	// GeneratePrime draws uniformly from [min, max] until a prime is found.
	GeneratePrime(min, max int64) (int64, error)

	// GenerateExponent draws e uniformly from [2, phi-1] until gcd(e, phi) = 1.
	GenerateExponent(phi int64) (int64, error)

	// DeriveKeys computes n, phi and d for the given primes and public exponent.
	DeriveKeys(p, q, e int64) (*KeyMaterial, error)

	// Encrypt computes message^e mod n.
	Encrypt(message int64, key PublicKey) (int64, []ExpStep, error)

	// Decrypt computes ciphertext^d mod n.
	Decrypt(ciphertext int64, key PrivateKey) (int64, []ExpStep, error)
}

// RoundTripService generates key material and runs one encrypt/decrypt round trip.
type RoundTripService interface {
	Run(ctx context.Context, message int64) (*Transcript, error)
}
