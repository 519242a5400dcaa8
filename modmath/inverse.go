// Package modmath implements modular arithmetic over arbitrary-precision
// integers: the extended Euclidean algorithm, the modular multiplicative
// inverse built on it, and the least-nonnegative remainder.
package modmath

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// NoInverseError reports that A has no multiplicative inverse modulo M
// because gcd(A, M) != 1.
type NoInverseError struct {
	A *big.Int
	M *big.Int
}

func (e NoInverseError) Error() string {
	return fmt.Sprintf("no inverse of %v modulo %v", e.A, e.M)
}

// InvalidModulusError reports a modulus that is zero or negative.
type InvalidModulusError struct {
	M *big.Int
}

func (e InvalidModulusError) Error() string {
	return fmt.Sprintf("invalid modulus %v", e.M)
}

// ModInverse computes the modular multiplicative inverse i of a modulo m,
// such that a*i mod m = 1 and 0 <= i < m.
//
// For example, the inverse of 2 mod 11 is 6 because 2*6 mod 11 = 1.
//
// Returns InvalidModulusError if m <= 0 and NoInverseError if a and m share
// a common factor; a nonsensical value is never returned silently.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		return nil, InvalidModulusError{M: new(big.Int).Set(m)}
	}
	result := ExtendedEuclidean(a, m)
	if result.GCD.Cmp(one) != 0 {
		return nil, NoInverseError{A: new(big.Int).Set(a), M: new(big.Int).Set(m)}
	}
	// The raw coefficient may be negative; reduce it into [0, m).
	return result.BezoutA.Mod(result.BezoutA, m), nil
}

// Mod returns the least nonnegative residue of a modulo m, regardless of
// the sign of a. The modulus must be positive.
func Mod(a, m *big.Int) *big.Int {
	if m.Sign() <= 0 {
		panic(fmt.Sprintf("modmath: non-positive modulus %v", m))
	}
	return new(big.Int).Mod(a, m)
}
