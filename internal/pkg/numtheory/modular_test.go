//go:build unit
// +build unit

package numtheory

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModInverse(t *testing.T) {
	t.Run("KnownValue", func(t *testing.T) {
		d, err := ModInverse(3, 11)
		require.NoError(t, err)
		assert.Equal(t, int64(4), d)
	})

	t.Run("RoundTripForAllCoprimes", func(t *testing.T) {
		for phi := int64(4); phi <= 300; phi++ {
			for e := int64(2); e < phi; e++ {
				if GCD(e, phi) != 1 {
					continue
				}
				d, err := ModInverse(e, phi)
				require.NoError(t, err, "ModInverse(%d, %d)", e, phi)
				assert.GreaterOrEqual(t, d, int64(0))
				assert.Less(t, d, phi)
				assert.Equal(t, int64(1), (e*d)%phi, "e=%d phi=%d d=%d", e, phi, d)
			}
		}
	})

	t.Run("NotInvertible", func(t *testing.T) {
		_, err := ModInverse(4, 8)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotInvertible)
	})

	t.Run("InvalidModulus", func(t *testing.T) {
		_, err := ModInverse(3, 0)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("TraceEndsWithZeroRemainder", func(t *testing.T) {
		var steps []EuclidStep
		d, err := ModInverseTrace(3533, 11200, func(s EuclidStep) {
			steps = append(steps, s)
		})
		require.NoError(t, err)
		require.NotEmpty(t, steps)

		last := steps[len(steps)-1]
		assert.Equal(t, int64(0), last.NewR)
		assert.Equal(t, int64(1), last.R)
		assert.Equal(t, int64(1), (3533*d)%11200)
	})
}

func TestModExp(t *testing.T) {
	tests := []struct {
		name           string
		base, exp, mod int64
		expected       int64
	}{
		{"power of two", 2, 10, 1000, 24},
		{"zero exponent", 7, 0, 13, 1},
		{"one exponent", 200, 1, 13, 200 % 13},
		{"modulus one", 5, 3, 1, 0},
		{"zero base", 0, 5, 7, 0},
		{"negative base", -2, 3, 7, 6},
		{"fermat", 3, 100, 101, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ModExp(tt.base, tt.exp, tt.mod)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestModExp_InvalidArguments(t *testing.T) {
	_, err := ModExp(2, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ModExp(2, -1, 7)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestModExp_Overflow(t *testing.T) {
	mod := int64(math.MaxInt64)
	_, err := ModExp(mod-1, 2, mod)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestModExpTrace(t *testing.T) {
	var steps []ExpStep
	result, err := ModExpTrace(2, 10, 1000, func(s ExpStep) {
		steps = append(steps, s)
	})
	require.NoError(t, err)
	assert.Equal(t, int64(24), result)

	// 10 = 0b1010
	require.Len(t, steps, 4)
	assert.Equal(t, []int64{0, 1, 0, 1}, []int64{steps[0].Bit, steps[1].Bit, steps[2].Bit, steps[3].Bit})
	assert.Equal(t, int64(24), steps[3].Result)
}

func TestMulMod(t *testing.T) {
	v, err := MulMod(11412, 11412, 11413)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = MulMod(math.MaxInt64, 2, 5)
	assert.ErrorIs(t, err, ErrOverflow)
}
