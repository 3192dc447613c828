package ec

import (
	"fmt"
	"math/big"

	"github.com/sammy00/ecpoint/field"
)

// FpCurve is a short-Weierstrass curve y^2 = x^3 + ax + b over a prime
// field, per spec.md §2/§4.2. It is the Fp counterpart of F2mCurve.
type FpCurve struct {
	field      *field.FpField
	a, b       field.Element
	order      *big.Int
	cofactor   *big.Int
	coordSys   CoordinateSystem
	multiplier ECPointMultiplier
	infinity   *Point
}

// NewFpCurve builds a prime-field curve with the given Weierstrass
// coefficients, subgroup order, cofactor, coordinate system and scalar
// multiplier. a and b must already be reduced elements of field.
func NewFpCurve(fld *field.FpField, a, b *big.Int, order, cofactor *big.Int, coordSys CoordinateSystem, multiplier ECPointMultiplier) *FpCurve {
	c := &FpCurve{
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

// Modulus returns the prime modulus of this curve's field. It is not part
// of the Curve interface (F2m has no analogous single value); exposed so
// an external consumer like package ecdsa can decompress a point from its
// X coordinate alone via modular square root.
func (c *FpCurve) Modulus() *big.Int { return c.field.P() }

func (c *FpCurve) Family() Family { return FamilyFp }
func (c *FpCurve) A() field.Element { return c.a }
func (c *FpCurve) B() field.Element { return c.b }
func (c *FpCurve) FieldSize() int { return c.field.P().BitLen() }
func (c *FpCurve) ByteLen() int { return c.field.ByteLen() }
func (c *FpCurve) Cofactor() *big.Int { return c.cofactor }
func (c *FpCurve) Order() *big.Int { return c.order }
func (c *FpCurve) CoordinateSystem() CoordinateSystem { return c.coordSys }
func (c *FpCurve) Infinity() *Point { return c.infinity }
func (c *FpCurve) GetMultiplier() ECPointMultiplier { return c.multiplier }

func (c *FpCurve) FromBigInt(k *big.Int) field.Element { return c.field.NewElement(k) }

// CreatePoint validates (x, y) against the curve equation and wraps it as
// an affine point, then re-represents it in this curve's coordinate
// system (spec.md §4.1).
func (c *FpCurve) CreatePoint(x, y field.Element) (*Point, error) {
	if x == nil || y == nil {
		return nil, fmt.Errorf("ec: createPoint: %w: x and y must be non-nil", ErrInvalidArgument)
	}
	if !c.checkCurveEquation(x, y) {
		return nil, ErrInvariantViolation
	}
	affine := newPoint(c, x, y, nil, false)
	return c.reRepresent(affine)
}

// reRepresent converts an affine point into this curve's native
// coordinate system by attaching the identity projective auxiliaries.
func (c *FpCurve) reRepresent(p *Point) (*Point, error) {
	one := c.field.NewElement(big.NewInt(1))
	switch c.coordSys {
	case AFFINE:
		return p, nil
	case HOMOGENEOUS, JACOBIAN:
		return newPoint(c, p.x, p.y, []field.Element{one}, p.withCompression), nil
	case JACOBIAN_CHUDNOVSKY:
		return newPoint(c, p.x, p.y, []field.Element{one, one, one}, p.withCompression), nil
	case JACOBIAN_MODIFIED:
		return newPoint(c, p.x, p.y, []field.Element{one, c.a}, p.withCompression), nil
	default:
		return nil, ErrUnsupportedCoordinateSystem
	}
}

func (c *FpCurve) createRawPoint(x, y field.Element, zs []field.Element, withCompression bool) *Point {
	return newPoint(c, x, y, zs, withCompression)
}

// ImportPoint re-represents a point from a parameter-equivalent curve in
// this curve's coordinate system (spec.md §4.1).
func (c *FpCurve) ImportPoint(p *Point) (*Point, error) {
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
	return c.reRepresent(newPoint(c, n.x, n.y, nil, n.withCompression))
}

func (c *FpCurve) NormalizeAll(points []*Point) error {
	return normalizeBatch(points)
}

// checkCurveEquation tests y^2 == x^3 + ax + b.
func (c *FpCurve) checkCurveEquation(x, y field.Element) bool {
	lhs := y.Square()
	rhs := x.Square().Multiply(x).Add(c.a.Multiply(x)).Add(c.b)
	return lhs.Equals(rhs)
}

// sameParameters compares (field prime, a, b) structurally; Fp resolves
// spec.md §9's curve-identity-vs-equivalence open question in favor of
// structural equality, unlike F2m's reference-only comparison.
func (c *FpCurve) sameParameters(other Curve) bool {
	o, ok := other.(*FpCurve)
	if !ok {
		return false
	}
	return c.field.P().Cmp(o.field.P()) == 0 && c.a.Equals(o.a) && c.b.Equals(o.b)
}
