// Package curves provides named parameter sets for the weierstrass package.
//
// Each curve is a zero-sized type implementing weierstrass.OrderedParams;
// the parameters themselves are package-level constants parsed once at
// startup and only ever handed out as copies.
package curves

import (
	"fmt"
	"math/big"
)

func mustInt(literal string) *big.Int {
	value, ok := new(big.Int).SetString(literal, 0)
	if !ok {
		panic(fmt.Sprintf("curves: invalid number literal %q", literal))
	}
	return value
}
