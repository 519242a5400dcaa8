package modmath

import "math/big"

// Result of the extended Euclidean algorithm on a pair (a, b).
//
// GCD is always nonnegative and the Bezout identity
// a*BezoutA + b*BezoutB = GCD holds.
type Result struct {
	GCD     *big.Int
	BezoutA *big.Int
	BezoutB *big.Int
}

// ExtendedEuclidean runs the extended Euclidean algorithm on a and b.
//
// Either operand may be zero or negative. The returned integers are fresh
// values and do not alias the inputs.
func ExtendedEuclidean(a, b *big.Int) Result {
	var rPrev, r *big.Int
	var sPrev, s *big.Int
	var tPrev, t *big.Int

	// The larger operand leads the remainder sequence. In both branches
	// sPrev/s carry the coefficient of a and tPrev/t the coefficient of b,
	// so a*s + b*t = r holds for every remainder from the seeds on.
	if a.Cmp(b) > 0 {
		rPrev = new(big.Int).Set(a)
		r = new(big.Int).Set(b)
		sPrev, s = big.NewInt(1), big.NewInt(0)
		tPrev, t = big.NewInt(0), big.NewInt(1)
	} else {
		rPrev = new(big.Int).Set(b)
		r = new(big.Int).Set(a)
		sPrev, s = big.NewInt(0), big.NewInt(1)
		tPrev, t = big.NewInt(1), big.NewInt(0)
	}

	quotient := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		quotient.Quo(rPrev, r)

		tmp.Mul(quotient, r)
		rPrev.Sub(rPrev, tmp)
		rPrev, r = r, rPrev

		tmp.Mul(quotient, s)
		sPrev.Sub(sPrev, tmp)
		sPrev, s = s, sPrev

		tmp.Mul(quotient, t)
		tPrev.Sub(tPrev, tmp)
		tPrev, t = t, tPrev
	}

	// Report the gcd as a nonnegative integer, flipping the coefficients
	// with it so the Bezout identity is preserved.
	if rPrev.Sign() < 0 {
		rPrev.Neg(rPrev)
		sPrev.Neg(sPrev)
		tPrev.Neg(tPrev)
	}

	return Result{GCD: rPrev, BezoutA: sPrev, BezoutB: tPrev}
}
