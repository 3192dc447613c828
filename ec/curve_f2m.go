package ec

import (
	"fmt"
	"math/big"

	"github.com/sammy00/ecpoint/field"
)

// F2mCurve is a short-Weierstrass curve y^2 + xy = x^3 + ax^2 + b over a
// binary field GF(2^m), per spec.md §2/§4.3. It is the F2m counterpart
// of FpCurve.
type F2mCurve struct {
	field      *field.F2mField
	a, b       field.Element
	order      *big.Int
	cofactor   *big.Int
	coordSys   CoordinateSystem
	multiplier ECPointMultiplier
	infinity   *Point
}

// NewF2mCurve builds a binary-field curve with the given Weierstrass
// coefficients, subgroup order, cofactor, coordinate system and scalar
// multiplier.
func NewF2mCurve(fld *field.F2mField, a, b *big.Int, order, cofactor *big.Int, coordSys CoordinateSystem, multiplier ECPointMultiplier) *F2mCurve {
	c := &F2mCurve{
		field:      fld,
		a:          fld.NewElement(a),
		b:          fld.NewElement(b),
		order:      order,
		cofactor:   cofactor,
		coordSys:   coordSys,
		multiplier: multiplier,
	}
	c.infinity = c.createRawPoint(nil, nil, nil, false)
	return c
}

func (c *F2mCurve) Family() Family                    { return FamilyF2m }
func (c *F2mCurve) A() field.Element                  { return c.a }
func (c *F2mCurve) B() field.Element                  { return c.b }
func (c *F2mCurve) FieldSize() int                    { return c.field.M() }
func (c *F2mCurve) ByteLen() int                      { return c.field.ByteLen() }
func (c *F2mCurve) Cofactor() *big.Int                { return c.cofactor }
func (c *F2mCurve) Order() *big.Int                   { return c.order }
func (c *F2mCurve) CoordinateSystem() CoordinateSystem { return c.coordSys }
func (c *F2mCurve) Infinity() *Point                  { return c.infinity }
func (c *F2mCurve) GetMultiplier() ECPointMultiplier  { return c.multiplier }

func (c *F2mCurve) FromBigInt(k *big.Int) field.Element { return c.field.NewElement(k) }

// CreatePoint validates (x, y) against the curve equation and wraps it as
// an affine point, then re-represents it in this curve's coordinate
// system. Lambda forms store lambda = x + y/x in place of y.
func (c *F2mCurve) CreatePoint(x, y field.Element) (*Point, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("ec: createPoint: %w: x and y must be non-nil", ErrInvalidArgument)
	}
	if !c.checkCurveEquation(x, y) {
		return nil, ErrInvariantViolation
	}
	return c.reRepresent(x, y)
}

func (c *F2mCurve) reRepresent(x, y field.Element) (*Point, error) {
	one := c.field.NewElement(big.NewInt(1))
	switch c.coordSys {
	case AFFINE:
		return newPoint(c, x, y, nil, false), nil
	case HOMOGENEOUS:
		return newPoint(c, x, y, []field.Element{one}, false), nil
	case LAMBDA_AFFINE:
		lambda := toLambda(x, y)
		return newPoint(c, x, lambda, nil, false), nil
	case LAMBDA_PROJECTIVE:
		lambda := toLambda(x, y)
		return newPoint(c, x, lambda, []field.Element{one}, false), nil
	default:
		return nil, ErrUnsupportedCoordinateSystem
	}
}

// toLambda computes lambda = x + y/x (undefined, and unused, at x == 0:
// the curve's unique order-2 point is never re-represented in lambda
// form since its affine Y is independent of the lambda substitution).
func toLambda(x, y field.Element) field.Element {
	if x.IsZero() {
		return x
	}
	return x.Add(y.Divide(x))
}

func (c *F2mCurve) createRawPoint(x, y field.Element, zs []field.Element, withCompression bool) *Point {
	return newPoint(c, x, y, zs, withCompression)
}

// ImportPoint re-represents a point from the identical curve (F2m
// requires reference identity, not mere structural equality, per
// spec.md §9) in this curve's coordinate system.
func (c *F2mCurve) ImportPoint(p *Point) (*Point, error) {
	if p.curve != nil && !c.sameParameters(p.curve) {
		return nil, ErrCurveMismatch
	}
	if p.IsInfinity() {
		return c.infinity, nil
	}
	n, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	y, err := n.AffineYCoord()
	if err != nil {
		return nil, err
	}
	return c.reRepresent(n.x, y)
}

func (c *F2mCurve) NormalizeAll(points []*Point) error {
	return normalizeBatch(points)
}

// checkCurveEquation tests y^2 + xy == x^3 + ax^2 + b.
func (c *F2mCurve) checkCurveEquation(x, y field.Element) bool {
	lhs := y.Square().Add(x.Multiply(y))
	rhs := x.Square().Multiply(x).Add(c.a.Multiply(x.Square())).Add(c.b)
	return lhs.Equals(rhs)
}

// sameParameters is reference equality for F2m: spec.md §9 resolves the
// curve-identity-vs-equivalence open question in favor of requiring the
// identical *F2mCurve instance, unlike Fp's structural comparison.
func (c *F2mCurve) sameParameters(other Curve) bool {
	o, ok := other.(*F2mCurve)
	if !ok {
		return false
	}
	return c == o
}
