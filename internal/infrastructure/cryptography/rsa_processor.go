package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/rsa-demo/internal/domain/toyrsa"
	"github.com/MGTheTrain/rsa-demo/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-demo/internal/pkg/numtheory"

	"github.com/JohnCGriffin/overflow"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	rng    toyrsa.RandomSource
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor drawing from rng
func NewRSAProcessor(rng toyrsa.RandomSource, logger logger.Logger) (toyrsa.RSAProcessor, error) {
	if rng == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	return &rsaProcessor{
		rng:    rng,
		logger: logger,
	}, nil
}

// GeneratePrime draws uniformly from [min, max] until the candidate is prime.
// A range that holds no prime fails before anything is drawn.
func (r *rsaProcessor) GeneratePrime(min, max int64) (int64, error) {
	if min < 2 || min > max {
		return 0, fmt.Errorf("[%d, %d]: %w", min, max, toyrsa.ErrInvalidRange)
	}
	if !numtheory.HasPrimeInRange(min, max) {
		return 0, fmt.Errorf("[%d, %d] contains no prime: %w", min, max, toyrsa.ErrInvalidRange)
	}

	span := max - min + 1
	for {
		candidate := min + r.rng.Int63n(span)
		if numtheory.IsPrime(candidate) {
			r.logger.Debug("Drew prime ", candidate)
			return candidate, nil
		}
		r.logger.Debug("Rejected composite candidate ", candidate)
	}
}

// GenerateExponent draws e uniformly from [2, phi-1] until gcd(e, phi) = 1.
func (r *rsaProcessor) GenerateExponent(phi int64) (int64, error) {
	if phi <= 3 {
		return 0, fmt.Errorf("phi %d: %w", phi, toyrsa.ErrDegenerateTotient)
	}

	for {
		e := 2 + r.rng.Int63n(phi-2)
		g := numtheory.GCD(e, phi)
		if g == 1 {
			r.logger.Debug("Drew public exponent ", e)
			return e, nil
		}
		r.logger.Debug("Rejected exponent ", e, ", gcd with phi is ", g)
	}
}

// DeriveKeys computes n = p*q, phi = (p-1)(q-1) and d = e^-1 mod phi.
func (r *rsaProcessor) DeriveKeys(p, q, e int64) (*toyrsa.KeyMaterial, error) {
	if !numtheory.IsPrime(p) || !numtheory.IsPrime(q) {
		return nil, fmt.Errorf("p %d and q %d must both be prime", p, q)
	}

	n, ok := overflow.Mul64(p, q)
	if !ok {
		return nil, fmt.Errorf("n = %d * %d: %w", p, q, numtheory.ErrOverflow)
	}
	phi := (p - 1) * (q - 1)
	if e <= 1 || e >= phi {
		return nil, fmt.Errorf("e %d must lie in (1, %d)", e, phi)
	}

	keys := &toyrsa.KeyMaterial{P: p, Q: q, N: n, Phi: phi, E: e}
	d, err := numtheory.ModInverseTrace(e, phi, func(step numtheory.EuclidStep) {
		keys.InverseSteps = append(keys.InverseSteps, step)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}
	keys.D = d

	if keys.SamePrimes() {
		r.logger.Warn("p and q are both ", p, ", n is a perfect square")
	}
	r.logger.Info("Derived RSA key material n=", n, " phi=", phi, " e=", e)
	return keys, nil
}

// Encrypt computes message^e mod n. A message of n or more wraps modulo n.
func (r *rsaProcessor) Encrypt(message int64, key toyrsa.PublicKey) (int64, []toyrsa.ExpStep, error) {
	if message < 0 {
		return 0, nil, fmt.Errorf("message %d must not be negative", message)
	}
	if message >= key.N {
		r.logger.Warn("Message ", message, " is not below n=", key.N, " and will not survive decryption")
	}

	var steps []toyrsa.ExpStep
	ciphertext, err := numtheory.ModExpTrace(message, key.E, key.N, func(s numtheory.ExpStep) {
		steps = append(steps, s)
	})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to encrypt message: %w", err)
	}

	r.logger.Info("RSA encryption succeeded")
	return ciphertext, steps, nil
}

// Decrypt computes ciphertext^d mod n.
func (r *rsaProcessor) Decrypt(ciphertext int64, key toyrsa.PrivateKey) (int64, []toyrsa.ExpStep, error) {
	var steps []toyrsa.ExpStep
	plain, err := numtheory.ModExpTrace(ciphertext, key.D, key.N, func(s numtheory.ExpStep) {
		steps = append(steps, s)
	})
	if err != nil {
		return 0, nil, fmt.Errorf("failed to decrypt ciphertext: %w", err)
	}

	r.logger.Info("RSA decryption succeeded")
	return plain, steps, nil
}
