package ec

import "errors"

// Error kinds from spec.md §7. All are sentinel values so callers can
// match with errors.Is, the way the teacher's ecdsa package compares
// plain errors.New values by message but without the brittleness of
// string comparison.
var (
	// ErrInvalidArgument: negative e to TimesPow2, or exactly one of
	// (x, y) nil at point construction.
	ErrInvalidArgument = errors.New("ec: invalid argument")
	// ErrNotNormalized: an affine-coordinate accessor was called on a
	// projective point with Z != 1.
	ErrNotNormalized = errors.New("ec: point is not normalized")
	// ErrCurveMismatch: Add/Subtract on points whose curves differ.
	ErrCurveMismatch = errors.New("ec: points belong to different curves")
	// ErrUnsupportedCoordinateSystem: an operation invoked on a
	// coordinate-system tag the branch does not implement.
	ErrUnsupportedCoordinateSystem = errors.New("ec: unsupported coordinate system")
	// ErrInvariantViolation: checkCurveEquation found a point off-curve.
	ErrInvariantViolation = errors.New("ec: point does not satisfy the curve equation")
)
