package curves

import "math/big"

var (
	secp256k1Gx = mustInt("0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	secp256k1Gy = mustInt("0x483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	secp256k1P  = mustInt("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	secp256k1N  = mustInt("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
)

// Secp256k1 is the curve y^2 = x^3 + 7 used by Bitcoin and Ethereum,
// as defined in http://www.secg.org/sec2-v2.pdf.
type Secp256k1 struct{}

// Generator returns the coordinates of the base point G.
func (Secp256k1) Generator() (gx, gy *big.Int) {
	return new(big.Int).Set(secp256k1Gx), new(big.Int).Set(secp256k1Gy)
}

// A returns the coefficient A of the curve equation.
func (Secp256k1) A() *big.Int {
	return new(big.Int)
}

// FieldModulus returns the prime modulus of the curve's field.
func (Secp256k1) FieldModulus() *big.Int {
	return new(big.Int).Set(secp256k1P)
}

// Order returns the order of the group generated by G.
func (Secp256k1) Order() *big.Int {
	return new(big.Int).Set(secp256k1N)
}

// Name returns the name of the curve.
func (Secp256k1) Name() string {
	return "secp256k1"
}
