package validators

import (
	"fmt"
	"reflect"

	"github.com/MGTheTrain/rsa-demo/internal/pkg/numtheory"
	"github.com/go-playground/validator/v10"
)

// Struct tags registered by RegisterNumberTheory
const (
	TagPrime     = "prime"
	TagCoprimeTo = "coprime_to"
)

// PrimeValidation validates that an integer field holds a prime.
func PrimeValidation(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numtheory.IsPrime(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := field.Uint()
		if v > 1<<62 {
			return false
		}
		return numtheory.IsPrime(int64(v))
	default:
		return false
	}
}

// CoprimeToValidation validates that a signed integer field shares no factor
// with the sibling field named by the tag parameter, e.g. `coprime_to=Phi`.
func CoprimeToValidation(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	other := parent.FieldByName(fl.Param())
	if !other.IsValid() || !isSignedInt(other.Kind()) || !isSignedInt(fl.Field().Kind()) {
		return false
	}
	return numtheory.GCD(fl.Field().Int(), other.Int()) == 1
}

func isSignedInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	default:
		return false
	}
}

// RegisterNumberTheory registers the custom number theory tags on v.
func RegisterNumberTheory(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		TagPrime:     PrimeValidation,
		TagCoprimeTo: CoprimeToValidation,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}
	return nil
}
