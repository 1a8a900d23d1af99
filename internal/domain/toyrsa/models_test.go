//go:build unit
// +build unit

package toyrsa

import (
	"testing"

	"github.com/MGTheTrain/rsa-demo/internal/pkg/numtheory"
	"github.com/stretchr/testify/assert"
)

func validKeys() *KeyMaterial {
	// 3533 * 6597 = 23307201 = 2081 * 11200 + 1
	return &KeyMaterial{P: 101, Q: 113, N: 11413, Phi: 11200, E: 3533, D: 6597}
}

func TestKeyMaterialValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(k *KeyMaterial)
		expectedError bool
	}{
		{"valid", func(k *KeyMaterial) {}, false},
		{"composite p", func(k *KeyMaterial) { k.P = 100 }, true},
		{"wrong n", func(k *KeyMaterial) { k.N = 11414 }, true},
		{"wrong phi", func(k *KeyMaterial) { k.Phi = 11300 }, true},
		{"e not below phi", func(k *KeyMaterial) { k.E = 11200 }, true},
		{"e shares factor", func(k *KeyMaterial) { k.E = 3535 }, true},
		{"wrong d", func(k *KeyMaterial) { k.D = 6598 }, true},
		{"negative d", func(k *KeyMaterial) { k.D = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := validKeys()
			tt.mutate(k)
			err := k.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyMaterialAccessors(t *testing.T) {
	k := validKeys()
	assert.Equal(t, PublicKey{E: 3533, N: 11413}, k.PublicKey())
	assert.Equal(t, PrivateKey{D: 6597, N: 11413}, k.PrivateKey())
	assert.False(t, k.SamePrimes())

	k.Q = k.P
	assert.True(t, k.SamePrimes())
}

func TestTranscriptMessageWrapped(t *testing.T) {
	tr := &Transcript{Keys: validKeys(), Message: 1234}
	assert.False(t, tr.MessageWrapped())

	tr.Message = 11413
	assert.True(t, tr.MessageWrapped())
}

func TestKeyMaterialValidation_WrappedModulus(t *testing.T) {
	// 3037000507 * 6074001001 exceeds int64; 45845955891 is the wrapped product
	k := &KeyMaterial{P: 3037000507, Q: 6074001001, N: 45845955891, Phi: 11200, E: 3533, D: 6597}

	err := k.Validate()
	assert.ErrorIs(t, err, numtheory.ErrOverflow)
}
