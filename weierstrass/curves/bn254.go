package curves

import "math/big"

var (
	bn254Gx = big.NewInt(1)
	bn254Gy = big.NewInt(2)
	bn254P  = mustInt("21888242871839275222246405745257275088696311157297823662689037894645226208583")
	bn254N  = mustInt("21888242871839275222246405745257275088548364400416034343698204186575808495617")
)

// BN254 is the pairing-friendly curve y^2 = x^3 + 3 used by the Ethereum
// precompiles, as defined in https://eips.ethereum.org/EIPS/eip-197.
// Also known as bn128 or alt_bn128.
type BN254 struct{}

// Generator returns the coordinates of the base point G.
func (BN254) Generator() (gx, gy *big.Int) {
	return new(big.Int).Set(bn254Gx), new(big.Int).Set(bn254Gy)
}

// A returns the coefficient A of the curve equation.
func (BN254) A() *big.Int {
	return new(big.Int)
}

// FieldModulus returns the prime modulus of the curve's field.
func (BN254) FieldModulus() *big.Int {
	return new(big.Int).Set(bn254P)
}

// Order returns the order of the group generated by G.
func (BN254) Order() *big.Int {
	return new(big.Int).Set(bn254N)
}

// Name returns the name of the curve.
func (BN254) Name() string {
	return "bn254"
}
