package config

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/rsa-demo/internal/pkg/numtheory"
	"github.com/MGTheTrain/rsa-demo/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// Default prime sampling range
const (
	DefaultPrimeMin = 100
	DefaultPrimeMax = 199
)

// MaxPrime keeps n = p*q small enough that n*n fits in an int64
const MaxPrime = 46340

// KeyGenSettings controls how key material is drawn. A zero FixedP, FixedQ or
// FixedE means the value is drawn at random.
type KeyGenSettings struct {
	PrimeMin int64 `mapstructure:"prime_min" validate:"gte=2,lte=46340"`
	PrimeMax int64 `mapstructure:"prime_max" validate:"gte=2,lte=46340,gtefield=PrimeMin"`
	Seed     int64 `mapstructure:"seed"`
	FixedP   int64 `mapstructure:"fixed_p" validate:"omitempty,prime,lte=46340"`
	FixedQ   int64 `mapstructure:"fixed_q" validate:"omitempty,prime,lte=46340"`
	FixedE   int64 `mapstructure:"fixed_e" validate:"omitempty,gt=1"`
}

// NewKeyGenSettings returns settings with the default prime range and the given seed
func NewKeyGenSettings(seed int64) *KeyGenSettings {
	return &KeyGenSettings{
		PrimeMin: DefaultPrimeMin,
		PrimeMax: DefaultPrimeMax,
		Seed:     seed,
	}
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()
	if err := validators.RegisterNumberTheory(validate); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for KeyGenSettings: %v", messages)
		}
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}

	// Sampling needs at least one prime to land on
	if s.FixedP == 0 || s.FixedQ == 0 {
		if !numtheory.HasPrimeInRange(s.PrimeMin, s.PrimeMax) {
			return fmt.Errorf("prime range [%d, %d] contains no prime", s.PrimeMin, s.PrimeMax)
		}
	}

	// A fixed e can only be checked once both primes are known
	if s.FixedE != 0 && s.FixedP != 0 && s.FixedQ != 0 {
		phi := (s.FixedP - 1) * (s.FixedQ - 1)
		if s.FixedE >= phi || numtheory.GCD(s.FixedE, phi) != 1 {
			return fmt.Errorf("fixed e %d is not a coprime of phi %d in (1, phi)", s.FixedE, phi)
		}
	}

	return nil
}
