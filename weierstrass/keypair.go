package weierstrass

import (
	"crypto/rand"
	"math/big"
)

// NewKeypair generates a uniform secret scalar in [1, Order()) together
// with its public point k * G.
func NewKeypair[C OrderedParams]() (Point[C], *big.Int, error) {
	var c C
	n := c.Order()
	for {
		k, err := rand.Int(rand.Reader, n)
		if err != nil {
			return Infinity[C](), nil, err
		}
		if k.Sign() == 0 {
			continue
		}
		pub := Generator[C]().Mul(k)
		if !pub.IsInfinity() {
			return pub, k, nil
		}
	}
}
