package modmath

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModInverse(t *testing.T) {
	inverse, err := ModInverse(big.NewInt(2), big.NewInt(11))
	require.NoError(t, err)
	assert.Equal(t, int64(6), inverse.Int64(), "2 * 6 mod 11 = 1")
}

func TestModInverseLargeModulus(t *testing.T) {
	// Group order of secp256k1.
	modulus, ok := new(big.Int).SetString("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 0)
	require.True(t, ok)

	for _, a := range []int64{2, 3, 7, 1 << 32} {
		inverse, err := ModInverse(big.NewInt(a), modulus)
		require.NoError(t, err)

		assert.Negative(t, inverse.Cmp(modulus), "inverse of %d must be below the modulus", a)
		assert.GreaterOrEqual(t, inverse.Sign(), 0, "inverse of %d must be nonnegative", a)

		product := new(big.Int).Mul(big.NewInt(a), inverse)
		product.Mod(product, modulus)
		assert.Equal(t, int64(1), product.Int64(), "%d * inverse mod m", a)
	}
}

func TestModInverseNegativeValue(t *testing.T) {
	// -3 = 8 mod 11 and 8 * 7 mod 11 = 1.
	inverse, err := ModInverse(big.NewInt(-3), big.NewInt(11))
	require.NoError(t, err)
	assert.Equal(t, int64(7), inverse.Int64())
}

func TestModInverseNoInverse(t *testing.T) {
	tests := []struct {
		a, m int64
	}{
		{4, 8},
		{6, 9},
		{0, 11},
		{11, 11},
	}

	for _, tt := range tests {
		inverse, err := ModInverse(big.NewInt(tt.a), big.NewInt(tt.m))
		assert.Nil(t, inverse)

		var noInverse NoInverseError
		require.ErrorAs(t, err, &noInverse, "ModInverse(%d, %d)", tt.a, tt.m)
		assert.Equal(t, tt.a, noInverse.A.Int64())
		assert.Equal(t, tt.m, noInverse.M.Int64())
	}
}

func TestModInverseInvalidModulus(t *testing.T) {
	for _, m := range []int64{0, -1, -11} {
		inverse, err := ModInverse(big.NewInt(2), big.NewInt(m))
		assert.Nil(t, inverse)

		var invalidModulus InvalidModulusError
		require.ErrorAs(t, err, &invalidModulus, "ModInverse(2, %d)", m)
		assert.Equal(t, m, invalidModulus.M.Int64())
	}
}

func TestModInverseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	// 1000003 is prime, so every a in [1, m) has an inverse.
	modulus := big.NewInt(1000003)

	properties.Property("a * inverse(a, m) mod m == 1 and 0 <= inverse < m", prop.ForAll(
		func(a int64) bool {
			inverse, err := ModInverse(big.NewInt(a), modulus)
			if err != nil {
				return false
			}
			if inverse.Sign() < 0 || inverse.Cmp(modulus) >= 0 {
				return false
			}
			product := new(big.Int).Mul(big.NewInt(a), inverse)
			product.Mod(product, modulus)
			return product.Cmp(big.NewInt(1)) == 0
		},
		gen.Int64Range(1, 1000002),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMod(t *testing.T) {
	tests := []struct {
		a, m, expected int64
	}{
		{12, 11, 1},
		{11, 11, 0},
		{0, 11, 0},
		{-11, 11, 0},
		{-10, 11, 1},
		{-15, 11, 7},
		{-37, 11, 7},
		{-111, 11, 10},
	}

	for _, tt := range tests {
		actual := Mod(big.NewInt(tt.a), big.NewInt(tt.m))
		assert.Equal(t, tt.expected, actual.Int64(), "%d mod %d", tt.a, tt.m)
	}
}

func TestModNonPositiveModulusPanics(t *testing.T) {
	assert.Panics(t, func() {
		Mod(big.NewInt(1), big.NewInt(0))
	})
	assert.Panics(t, func() {
		Mod(big.NewInt(1), big.NewInt(-11))
	})
}
