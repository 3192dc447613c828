// Package ec implements the elliptic-curve point-arithmetic core: curve
// parameter holders and representation-independent + representation-specific
// point operations over prime fields (Fp) and binary fields (F2^m), across
// the seven projective coordinate systems used by production EC libraries.
//
// Field-element arithmetic itself lives in the sibling field package and
// is treated here purely through the field.Element interface. Scalar
// multiplication *strategy* lives in the sibling multiplier package; this
// package only defines the ECPointMultiplier seam a strategy plugs into.
package ec

import (
	"math/big"

	"github.com/sammy00/ecpoint/field"
)

// CoordinateSystem tags which projective representation a Curve's points
// are stored in. The seven variants mirror spec.md §3's zs layout table.
type CoordinateSystem int

const (
	AFFINE CoordinateSystem = iota
	HOMOGENEOUS
	JACOBIAN
	JACOBIAN_CHUDNOVSKY
	JACOBIAN_MODIFIED
	LAMBDA_AFFINE
	LAMBDA_PROJECTIVE
)

func (c CoordinateSystem) String() string {
	switch c {
	case AFFINE:
		return "AFFINE"
	case HOMOGENEOUS:
		return "HOMOGENEOUS"
	case JACOBIAN:
		return "JACOBIAN"
	case JACOBIAN_CHUDNOVSKY:
		return "JACOBIAN_CHUDNOVSKY"
	case JACOBIAN_MODIFIED:
		return "JACOBIAN_MODIFIED"
	case LAMBDA_AFFINE:
		return "LAMBDA_AFFINE"
	case LAMBDA_PROJECTIVE:
		return "LAMBDA_PROJECTIVE"
	default:
		return "UNKNOWN"
	}
}

// Family distinguishes the two curve families this core supports. Every
// point-arithmetic branch is selected from (Family, CoordinateSystem).
type Family int

const (
	FamilyFp Family = iota
	FamilyF2m
)

// ECPointMultiplier is the out-of-scope scalar-multiplication strategy
// seam described in spec.md §6: it consumes only the public Point
// operations this package exposes.
type ECPointMultiplier interface {
	Multiply(p *Point, k *big.Int) (*Point, error)
}

// Curve holds immutable curve parameters, the chosen coordinate system,
// and manufactures/normalizes points. Concrete implementations are
// *FpCurve and *F2mCurve.
type Curve interface {
	// Family reports whether this curve is defined over Fp or F2^m.
	Family() Family
	// A and B are the curve's Weierstrass coefficients, as elements of
	// this curve's field.
	A() field.Element
	B() field.Element
	// FieldSize is the bit size of the underlying field.
	FieldSize() int
	// ByteLen is the fixed point-coordinate encoding width,
	// ceil(FieldSize/8).
	ByteLen() int
	// Cofactor is the curve's cofactor h.
	Cofactor() *big.Int
	// Order is the curve's (sub)group order n, when known; nil if unset.
	Order() *big.Int
	// CoordinateSystem reports the projective representation new points
	// on this curve are created in.
	CoordinateSystem() CoordinateSystem
	// Infinity returns the point-at-infinity singleton for this curve.
	Infinity() *Point
	// FromBigInt reduces k into a field element of this curve's field.
	FromBigInt(k *big.Int) field.Element
	// CreatePoint validates and wraps (x, y) as an affine point on this
	// curve, then re-represents it in this curve's coordinate system.
	CreatePoint(x, y field.Element) (*Point, error)
	// createRawPoint builds a point without revalidating the curve
	// equation, for use by algebraic operations that preserve
	// membership by construction.
	createRawPoint(x, y field.Element, zs []field.Element, withCompression bool) *Point
	// ImportPoint re-represents a point defined on an equivalent curve
	// in this curve's coordinate system. Fails with ErrCurveMismatch if
	// parameters differ.
	ImportPoint(p *Point) (*Point, error)
	// NormalizeAll applies Montgomery's simultaneous-inversion trick to
	// an ordered batch of points on this curve, normalizing them in
	// place (by replacing each slot with its normalized point).
	NormalizeAll(points []*Point) error
	// GetMultiplier returns the scalar multiplier this curve was built
	// with.
	GetMultiplier() ECPointMultiplier
	// checkCurveEquation is the diagnostic membership test described in
	// spec.md §7 (ErrInvariantViolation).
	checkCurveEquation(x, y field.Element) bool
	// sameParameters reports parameter equality (structural for FpCurve,
	// reference identity for F2mCurve), used by
	// ImportPoint and by Fp's reference-vs-structural equality choice
	// (see DESIGN.md "curve identity vs equivalence").
	sameParameters(other Curve) bool
}
