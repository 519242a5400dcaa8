package weierstrass

// This package implements non-timing resistant generic weierstrass elliptic
// curves over a prime field. In particular, it allows for generic A
// coefficients, where the golang standard library only supports A=-3.

import (
	"fmt"
	"math/big"

	"github.com/primefield/curvemath/logger"
	"github.com/primefield/curvemath/modmath"
)

var two = big.NewInt(2)
var three = big.NewInt(3)

// Params is the capability a concrete curve definition supplies: the
// generator point, the linear coefficient A of the curve equation
// Y^2 = X^3 + A*X + B mod P, and the prime field modulus P. The constant
// term B is implicit; the group law never needs it.
//
// A curve is a type implementing Params, and the type is the curve's
// identity. Implementations must be immutable: accessors return fresh
// copies and no mutation path exists after the curve is defined.
type Params interface {
	// Generator returns the coordinates of the base point G.
	Generator() (gx, gy *big.Int)
	// A returns the coefficient A of the curve equation.
	A() *big.Int
	// FieldModulus returns the prime modulus of the curve's field.
	FieldModulus() *big.Int
	// Name returns the name of the curve.
	Name() string
}

// OrderedParams is implemented by curves that additionally publish the
// order of the group generated by the base point.
type OrderedParams interface {
	Params
	// Order returns the order of the group generated by G.
	Order() *big.Int
}

// Point is a point on the curve C, or the point at infinity.
//
// The type parameter statically tags a point with its curve: adding a
// point of one curve to a point of another does not compile. Coordinates
// produced by this package always lie in [0, FieldModulus()); coordinates
// handed to NewPoint are taken as-is and are not checked for range or
// curve membership.
type Point[C Params] struct {
	x *big.Int
	y *big.Int // nil, nil encodes the point at infinity
}

// NewPoint constructs a point from affine coordinates.
// Do not modify x or y after calling this function.
func NewPoint[C Params](x, y *big.Int) Point[C] {
	return Point[C]{x: x, y: y}
}

// Infinity returns the point at infinity, the identity of the group.
func Infinity[C Params]() Point[C] {
	return Point[C]{}
}

// Generator returns the base point of the curve.
func Generator[C Params]() Point[C] {
	var c C
	gx, gy := c.Generator()
	return Point[C]{x: gx, y: gy}
}

// IsInfinity tests if a point is the point at infinity.
func (p Point[C]) IsInfinity() bool {
	return p.x == nil && p.y == nil
}

// X returns a copy of the x coordinate, or nil for the point at infinity.
func (p Point[C]) X() *big.Int {
	if p.x == nil {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the point at infinity.
func (p Point[C]) Y() *big.Int {
	if p.y == nil {
		return nil
	}
	return new(big.Int).Set(p.y)
}

func (p Point[C]) String() string {
	var c C
	if p.IsInfinity() {
		return fmt.Sprintf("[%v](Infinity)", c.Name())
	}
	return fmt.Sprintf("[%v](0x%x, 0x%x)", c.Name(), p.x, p.y)
}

// Equal compares the coordinates of two points. Points of different curves
// are different types and cannot be compared at all.
func (p Point[C]) Equal(q Point[C]) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// Add returns p + q under the chord-and-tangent group law.
//
// Formulas from https://en.wikipedia.org/wiki/Elliptic_curve_point_multiplication.
func (p Point[C]) Add(q Point[C]) Point[C] {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	var c C
	m := c.FieldModulus()

	log := logger.Logger()
	if e := log.Trace(); e.Enabled() {
		e.Str("p", p.String()).Str("q", q.String()).Msg("point addition")
	}

	doubling := p.Equal(q)
	if !doubling && p.x.Cmp(q.x) == 0 {
		// Same x, different y: q = -p and the chord is vertical, so there
		// is no third intersection point.
		return Infinity[C]()
	}

	var slope *big.Int
	if doubling {
		// Slope = (3*x^2 + a) / (2*y)
		denominator := new(big.Int).Mul(two, p.y)
		denominator.Mod(denominator, m)
		if denominator.Sign() == 0 {
			// y = 0: the tangent is vertical.
			return Infinity[C]()
		}
		inverse, err := modmath.ModInverse(denominator, m)
		if err != nil {
			panic(fmt.Sprintf("weierstrass: field modulus of %v is not prime: %v", c.Name(), err))
		}

		numerator := new(big.Int).Exp(p.x, two, m)
		numerator.Mul(numerator, three)
		numerator.Add(numerator, c.A())
		numerator.Mod(numerator, m)

		slope = numerator.Mul(numerator, inverse)
		slope.Mod(slope, m)
	} else {
		// Slope = (y2 - y1) / (x2 - x1)
		denominator := new(big.Int).Sub(q.x, p.x)
		denominator.Mod(denominator, m)
		inverse, err := modmath.ModInverse(denominator, m)
		if err != nil {
			panic(fmt.Sprintf("weierstrass: field modulus of %v is not prime: %v", c.Name(), err))
		}

		numerator := new(big.Int).Sub(q.y, p.y)
		numerator.Mod(numerator, m)

		slope = numerator.Mul(numerator, inverse)
		slope.Mod(slope, m)
	}

	// x = slope^2 - x1 - x2
	x := new(big.Int).Mul(slope, slope)
	x.Sub(x, p.x)
	x.Sub(x, q.x)
	x.Mod(x, m)

	// y = slope*(x1 - x) - y1
	y := new(big.Int).Sub(p.x, x)
	y.Mul(y, slope)
	y.Sub(y, p.y)
	y.Mod(y, m)

	return Point[C]{x: x, y: y}
}

// Neg computes the additive inverse of a point, its reflection about the
// x axis.
func (p Point[C]) Neg() Point[C] {
	if p.IsInfinity() {
		return p
	}
	var c C
	m := c.FieldModulus()
	y := new(big.Int).Sub(m, p.y)
	y.Mod(y, m)
	return Point[C]{x: new(big.Int).Set(p.x), y: y}
}

// Sub subtracts one point from another using the additive inverse.
func (p Point[C]) Sub(q Point[C]) Point[C] {
	return p.Add(q.Neg())
}

// Mul computes k * p via double and add. A table of the 2^i * p multiples
// is built once by repeated doubling, then the multiples named by the set
// bits of k are accumulated, highest bit first.
//
// k = 0 yields the point at infinity without building the table. Negative
// scalars are not defined for this operation; subtract with Sub or Neg.
func (p Point[C]) Mul(k *big.Int) Point[C] {
	if k.Sign() < 0 {
		panic("weierstrass: negative scalar")
	}
	if k.Sign() == 0 {
		return Infinity[C]()
	}

	doublings := make([]Point[C], k.BitLen())
	doublings[0] = p
	for i := 1; i < len(doublings); i++ {
		doublings[i] = doublings[i-1].Add(doublings[i-1])
	}

	remaining := new(big.Int).Set(k)
	result := Infinity[C]()
	for remaining.Sign() != 0 {
		i := remaining.BitLen() - 1
		result = result.Add(doublings[i])
		remaining.SetBit(remaining, i, 0)
	}
	return result
}
