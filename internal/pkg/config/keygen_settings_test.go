//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyGenSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *KeyGenSettings
		expectedError bool
	}{
		{
			name:          "defaults",
			settings:      NewKeyGenSettings(42),
			expectedError: false,
		},
		{
			name:          "inverted range",
			settings:      &KeyGenSettings{PrimeMin: 199, PrimeMax: 100},
			expectedError: true,
		},
		{
			name:          "range below two",
			settings:      &KeyGenSettings{PrimeMin: 0, PrimeMax: 10},
			expectedError: true,
		},
		{
			name:          "range above max prime",
			settings:      &KeyGenSettings{PrimeMin: 100, PrimeMax: MaxPrime + 1},
			expectedError: true,
		},
		{
			name:          "range without primes",
			settings:      &KeyGenSettings{PrimeMin: 114, PrimeMax: 126},
			expectedError: true,
		},
		{
			name:          "range without primes but both primes fixed",
			settings:      &KeyGenSettings{PrimeMin: 114, PrimeMax: 126, FixedP: 101, FixedQ: 113},
			expectedError: false,
		},
		{
			name:          "fixed composite p",
			settings:      &KeyGenSettings{PrimeMin: 100, PrimeMax: 199, FixedP: 100},
			expectedError: true,
		},
		{
			name:          "fixed primes and coprime e",
			settings:      &KeyGenSettings{PrimeMin: 100, PrimeMax: 199, FixedP: 101, FixedQ: 113, FixedE: 3533},
			expectedError: false,
		},
		{
			name:          "fixed e sharing a factor with phi",
			settings:      &KeyGenSettings{PrimeMin: 100, PrimeMax: 199, FixedP: 101, FixedQ: 113, FixedE: 10},
			expectedError: true,
		},
		{
			name:          "fixed e not below phi",
			settings:      &KeyGenSettings{PrimeMin: 100, PrimeMax: 199, FixedP: 101, FixedQ: 113, FixedE: 11201},
			expectedError: true,
		},
		{
			name:          "fixed e of one",
			settings:      &KeyGenSettings{PrimeMin: 100, PrimeMax: 199, FixedE: 1},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewKeyGenSettings(t *testing.T) {
	s := NewKeyGenSettings(7)
	assert.Equal(t, int64(DefaultPrimeMin), s.PrimeMin)
	assert.Equal(t, int64(DefaultPrimeMax), s.PrimeMax)
	assert.Equal(t, int64(7), s.Seed)
}
