package toyrsa

import (
	"errors"
	"fmt"

	"github.com/JohnCGriffin/overflow"
	"github.com/MGTheTrain/rsa-demo/internal/pkg/numtheory"
	"github.com/MGTheTrain/rsa-demo/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// EuclidStep is one iteration of the extended Euclidean algorithm that derived d
type EuclidStep = numtheory.EuclidStep

// ExpStep is one square-and-multiply iteration
type ExpStep = numtheory.ExpStep

// PublicKey is the (e, n) pair
type PublicKey struct {
	E int64
	N int64
}

// PrivateKey is the (d, n) pair
type PrivateKey struct {
	D int64
	N int64
}

// KeyMaterial holds every value computed during key generation.
type KeyMaterial struct {
	P   int64 `validate:"required,prime"`
	Q   int64 `validate:"required,prime"`
	N   int64 `validate:"required,gt=3"`
	Phi int64 `validate:"required,gt=0"`
	E   int64 `validate:"required,gt=1,ltfield=Phi,coprime_to=Phi"`
	D   int64 `validate:"gte=0,ltfield=Phi"`

	// InverseSteps is the extended Euclid table that produced D
	InverseSteps []EuclidStep `validate:"-"`
}

// PublicKey returns (e, n)
func (k *KeyMaterial) PublicKey() PublicKey {
	return PublicKey{E: k.E, N: k.N}
}

// PrivateKey returns (d, n)
func (k *KeyMaterial) PrivateKey() PrivateKey {
	return PrivateKey{D: k.D, N: k.N}
}

// SamePrimes reports whether p and q collided. Such a modulus is p squared
// and trivially factorable; it is kept rather than redrawn.
func (k *KeyMaterial) SamePrimes() bool {
	return k.P == k.Q
}

// Validate checks field constraints and the relations between the values
func (k *KeyMaterial) Validate() error {
	validate := validator.New()
	if err := validators.RegisterNumberTheory(validate); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	n, ok := overflow.Mul64(k.P, k.Q)
	if !ok {
		return fmt.Errorf("p*q = %d*%d: %w", k.P, k.Q, numtheory.ErrOverflow)
	}
	if k.N != n {
		return fmt.Errorf("n %d is not p*q = %d*%d", k.N, k.P, k.Q)
	}
	phi, ok := overflow.Mul64(k.P-1, k.Q-1)
	if !ok {
		return fmt.Errorf("(p-1)*(q-1): %w", numtheory.ErrOverflow)
	}
	if k.Phi != phi {
		return fmt.Errorf("phi %d is not (p-1)*(q-1)", k.Phi)
	}
	ed, err := numtheory.MulMod(k.E, k.D, k.Phi)
	if err != nil {
		return fmt.Errorf("failed to check e*d: %w", err)
	}
	if ed != 1 {
		return fmt.Errorf("e*d mod phi is %d, want 1", ed)
	}
	return nil
}

// Transcript is everything one round trip computed, in the order it was computed.
type Transcript struct {
	RunID        string
	Keys         *KeyMaterial
	Message      int64
	Ciphertext   int64
	Decrypted    int64
	EncryptSteps []ExpStep
	DecryptSteps []ExpStep
}

// MessageWrapped reports whether the message was at least n and so did not
// survive the round trip unchanged.
func (t *Transcript) MessageWrapped() bool {
	return t.Message >= t.Keys.N
}
