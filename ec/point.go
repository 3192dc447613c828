package ec

import (
	"fmt"
	"hash/fnv"
	"math/big"
	"sync/atomic"

	"github.com/sammy00/ecpoint/field"
)

// Point is the representation-independent layer of spec.md §4.1: a tuple
// (curve, x, y, zs, withCompression). x == nil iff y == nil iff the point
// is the identity; zs holds the coordinate system's projective auxiliaries.
//
// A Point with curve == nil is a "detached affine" point (spec.md §9's
// re-architecture of the source's tolerance for a null curve): it carries
// only affine (x, y) and compares by coordinates alone.
type Point struct {
	curve           Curve
	x, y            field.Element
	zs              []field.Element
	withCompression bool

	// w is the lazily materialized modified-Jacobian auxiliary W = aZ^4.
	// Published behind an atomic pointer so concurrent readers observe
	// either "absent" or a fully constructed value, never a partial
	// write (spec.md §5).
	w atomic.Pointer[field.Element]

	// preComp is the opaque, caller-owned scalar-multiplication cache
	// described in spec.md §3 and §5. It is never copied to a derived
	// point; every new Point starts with preComp == nil.
	preComp atomic.Pointer[PreCompInfo]
}

// NewAffinePoint builds a detached affine point with no curve back-reference.
func NewAffinePoint(x, y field.Element) (*Point, error) {
	if (x == nil) != (y == nil) {
		return nil, fmt.Errorf("ec: %w: exactly one of (x, y) is nil", ErrInvalidArgument)
	}
	return &Point{x: x, y: y}, nil
}

// newPoint is the internal constructor used by Curve implementations and
// by every group operation. It never revalidates curve membership.
func newPoint(curve Curve, x, y field.Element, zs []field.Element, withCompression bool) *Point {
	return &Point{curve: curve, x: x, y: y, zs: zs, withCompression: withCompression}
}

// Curve returns the point's curve, or nil for a detached affine point.
func (p *Point) Curve() Curve { return p.curve }

// X returns the raw (possibly projective) x-coordinate, or nil at infinity.
func (p *Point) X() field.Element { return p.x }

// Y returns the raw (possibly projective) y-coordinate, or nil at infinity.
// In F2m lambda form this is lambda = X + Y/X, not the affine Y (see
// AffineYCoord for the conversion).
func (p *Point) Y() field.Element { return p.y }

// Zs returns the point's projective auxiliaries, following the layout in
// spec.md §3. Callers must not mutate the returned slice's elements.
func (p *Point) Zs() []field.Element { return p.zs }

// WithCompression reports the encoding hint; it never affects arithmetic.
func (p *Point) WithCompression() bool { return p.withCompression }

// coordinateSystem reports AFFINE for a detached point, else the curve's.
func (p *Point) coordinateSystem() CoordinateSystem {
	if p.curve == nil {
		return AFFINE
	}
	return p.curve.CoordinateSystem()
}

// IsInfinity reports whether p is the group identity.
func (p *Point) IsInfinity() bool {
	if p.x == nil {
		return true
	}
	if len(p.zs) > 0 && p.zs[0].IsZero() {
		return true
	}
	return false
}

// IsNormalized reports whether p's coordinate system is affine, p is
// infinity, or Z == 1.
func (p *Point) IsNormalized() bool {
	switch p.coordinateSystem() {
	case AFFINE, LAMBDA_AFFINE:
		return true
	}
	if p.IsInfinity() {
		return true
	}
	return len(p.zs) == 0 || (p.zs[0].BitLength() == 1 && p.zs[0].TestBitZero())
}

// Normalize returns an equivalent point whose coordinate system reports
// affine values directly. Infinity and already-normalized points return
// themselves.
func (p *Point) Normalize() (*Point, error) {
	if p.IsInfinity() || p.IsNormalized() {
		return p, nil
	}

	zInv := p.zs[0].Invert()
	switch p.coordinateSystem() {
	case HOMOGENEOUS, LAMBDA_PROJECTIVE:
		x := p.x.Multiply(zInv)
		// For LAMBDA_PROJECTIVE, y carries lambda; the affine Y is
		// recovered via AffineYCoord before the coordinate system is
		// dropped to AFFINE.
		if p.coordinateSystem() == LAMBDA_PROJECTIVE {
			affY, err := p.AffineYCoord()
			if err != nil {
				return nil, err
			}
			return newPoint(p.curve, x, affY, nil, p.withCompression), nil
		}
		y := p.y.Multiply(zInv)
		return newPoint(p.curve, x, y, nil, p.withCompression), nil
	case JACOBIAN, JACOBIAN_CHUDNOVSKY, JACOBIAN_MODIFIED:
		zInv2 := zInv.Square()
		zInv3 := zInv2.Multiply(zInv)
		x := p.x.Multiply(zInv2)
		y := p.y.Multiply(zInv3)
		return newPoint(p.curve, x, y, nil, p.withCompression), nil
	default:
		return nil, fmt.Errorf("ec: normalize: %w: %s", ErrUnsupportedCoordinateSystem, p.coordinateSystem())
	}
}

// AffineXCoord returns the affine X coordinate; fails with
// ErrNotNormalized unless IsNormalized().
func (p *Point) AffineXCoord() (field.Element, error) {
	if !p.IsNormalized() {
		return nil, ErrNotNormalized
	}
	return p.x, nil
}

// AffineYCoord returns the affine Y coordinate; fails with
// ErrNotNormalized unless IsNormalized(), EXCEPT in F2m lambda-projective
// form where the documented exception in spec.md §4.1 applies: Y is
// converted from lambda on every read, normalized or not.
func (p *Point) AffineYCoord() (field.Element, error) {
	if p.coordinateSystem() == LAMBDA_PROJECTIVE && p.curve != nil && p.curve.Family() == FamilyF2m && len(p.zs) > 0 {
		return lambdaProjectiveAffineY(p)
	}
	if !p.IsNormalized() {
		return nil, ErrNotNormalized
	}
	if p.coordinateSystem() == LAMBDA_AFFINE {
		return lambdaAffineAffineY(p)
	}
	return p.y, nil
}

// Equals reports whether p and other denote the same group element.
// Per spec.md §4.1, if curves differ, other is imported onto p's curve
// first; both sides are then batch-normalized via NormalizeAll before
// comparing affine coordinates.
func (p *Point) Equals(other *Point) bool {
	if other == nil {
		return false
	}
	if p == other {
		return true
	}

	if p.curve == nil || other.curve == nil {
		// Detached affine comparison: compare affine coordinates only.
		if p.IsInfinity() && other.IsInfinity() {
			return true
		}
		if p.IsInfinity() != other.IsInfinity() {
			return false
		}
		return p.x.Equals(other.x) && p.y.Equals(other.y)
	}

	o := other
	if !p.curve.sameParameters(o.curve) {
		imported, err := p.curve.ImportPoint(o)
		if err != nil {
			return false
		}
		o = imported
	}

	if p.IsInfinity() && o.IsInfinity() {
		return true
	}
	if p.IsInfinity() != o.IsInfinity() {
		return false
	}

	pts := []*Point{p, o}
	if err := p.curve.NormalizeAll(pts); err != nil {
		return false
	}
	pn, on := pts[0], pts[1]
	py, errP := pn.AffineYCoord()
	oy, errO := on.AffineYCoord()
	if errP != nil || errO != nil {
		return false
	}
	return pn.x.Equals(on.x) && py.Equals(oy)
}

// Hash combines the curve's field size with the normalized affine
// coordinates; infinity hashes to a curve-derived constant.
func (p *Point) Hash() uint64 {
	h := fnv.New64a()
	if p.curve != nil {
		fmt.Fprintf(h, "fieldsize:%d", p.curve.FieldSize())
	}
	if p.IsInfinity() {
		fmt.Fprint(h, "infinity")
		return h.Sum64()
	}
	n, err := p.Normalize()
	if err != nil {
		n = p
	}
	y, err := n.AffineYCoord()
	if err != nil {
		y = n.y
	}
	fmt.Fprintf(h, "x:%x,y:%x", n.x.ToBigInt(), y.ToBigInt())
	return h.Sum64()
}

// TimesPow2 performs e repeated doublings. e must be non-negative.
func (p *Point) TimesPow2(e int) (*Point, error) {
	if e < 0 {
		return nil, fmt.Errorf("ec: timesPow2: %w: e must be >= 0", ErrInvalidArgument)
	}
	r := p
	for i := 0; i < e; i++ {
		var err error
		r, err = r.Twice()
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Multiply delegates to this curve's ECPointMultiplier.
func (p *Point) Multiply(k *big.Int) (*Point, error) {
	if p.curve == nil {
		return nil, fmt.Errorf("ec: multiply: %w: detached point has no multiplier", ErrUnsupportedCoordinateSystem)
	}
	return p.curve.GetMultiplier().Multiply(p, k)
}

// Subtract returns p + (-b), short-circuiting when b is infinity.
func (p *Point) Subtract(b *Point) (*Point, error) {
	if b.IsInfinity() {
		return p, nil
	}
	nb, err := b.Negate()
	if err != nil {
		return nil, err
	}
	return p.Add(nb)
}

// Add, Twice, TwicePlus, ThreeTimes and Negate dispatch on (Family,
// CoordinateSystem); see point_fp.go and point_f2m.go.
func (p *Point) Add(b *Point) (*Point, error) {
	if p.IsInfinity() {
		return b, nil
	}
	if b.IsInfinity() {
		return p, nil
	}
	if p.curve != nil && b.curve != nil && !p.curve.sameParameters(b.curve) {
		if p.curve.Family() == FamilyF2m {
			return nil, ErrCurveMismatch
		}
		// Fp relies on subsequent field arithmetic to fail on
		// mismatched fields, per spec.md §7's documented asymmetry.
	}
	if p == b {
		return p.Twice()
	}
	switch {
	case p.curve == nil:
		return nil, fmt.Errorf("ec: add: %w: detached point", ErrUnsupportedCoordinateSystem)
	case p.curve.Family() == FamilyFp:
		return addFp(p, b)
	default:
		return addF2m(p, b)
	}
}

func (p *Point) Twice() (*Point, error) {
	if p.IsInfinity() {
		return p, nil
	}
	if p.curve == nil {
		return nil, fmt.Errorf("ec: twice: %w: detached point", ErrUnsupportedCoordinateSystem)
	}
	if p.curve.Family() == FamilyFp {
		return twiceFp(p)
	}
	return twiceF2m(p)
}

func (p *Point) TwicePlus(b *Point) (*Point, error) {
	if p.IsInfinity() {
		return b, nil
	}
	if b.IsInfinity() {
		return p.Twice()
	}
	if p == b {
		d, err := p.Twice()
		if err != nil {
			return nil, err
		}
		return d.Add(p)
	}
	if p.curve == nil {
		return nil, fmt.Errorf("ec: twicePlus: %w: detached point", ErrUnsupportedCoordinateSystem)
	}
	if p.curve.Family() == FamilyFp {
		return twicePlusFp(p, b)
	}
	return twicePlusF2m(p, b)
}

func (p *Point) ThreeTimes() (*Point, error) {
	if p.IsInfinity() {
		return p, nil
	}
	if p.curve == nil {
		return nil, fmt.Errorf("ec: threeTimes: %w: detached point", ErrUnsupportedCoordinateSystem)
	}
	if p.curve.Family() == FamilyFp {
		return threeTimesFp(p)
	}
	d, err := p.Twice()
	if err != nil {
		return nil, err
	}
	return d.Add(p)
}

func (p *Point) Negate() (*Point, error) {
	if p.IsInfinity() {
		return p, nil
	}
	if p.curve == nil {
		if p.y == nil {
			return p, nil
		}
		return &Point{x: p.x, y: p.y.Negate()}, nil
	}
	if p.curve.Family() == FamilyFp {
		return negateFp(p), nil
	}
	return negateF2m(p), nil
}

// GetEncoded implements SEC1 point encoding (spec.md §6). Infinity
// encodes to a single zero byte; compressed form is
// [0x02|0x03] || X with the family-specific parity bit; uncompressed is
// 0x04 || X || Y.
func (p *Point) GetEncoded(compressed bool) ([]byte, error) {
	if p.IsInfinity() {
		return []byte{0x00}, nil
	}
	n, err := p.Normalize()
	if err != nil {
		return nil, err
	}
	byteLen := n.curve.ByteLen()
	xBytes := n.x.Encode()

	if !compressed {
		y, err := n.AffineYCoord()
		if err != nil {
			return nil, err
		}
		yBytes := y.Encode()
		out := make([]byte, 1+2*byteLen)
		out[0] = 0x04
		copy(out[1:1+byteLen], xBytes)
		copy(out[1+byteLen:], yBytes)
		return out, nil
	}

	parity := false
	if !n.x.IsZero() {
		parity, err = compressionParity(n)
		if err != nil {
			return nil, err
		}
	}
	out := make([]byte, 1+byteLen)
	if parity {
		out[0] = 0x03
	} else {
		out[0] = 0x02
	}
	copy(out[1:], xBytes)
	return out, nil
}

// compressionParity computes the family-specific "compressed Y" bit: for
// Fp, the low bit of affine Y; for F2m affine, the low bit of Y/X (lambda
// - X in lambda form, which is the same quantity).
func compressionParity(n *Point) (bool, error) {
	y, err := n.AffineYCoord()
	if err != nil {
		return false, err
	}
	if n.curve.Family() == FamilyFp {
		return y.TestBitZero(), nil
	}
	yOverX := y.Divide(n.x)
	return yOverX.TestBitZero(), nil
}

// loadW / storeW implement the publication-barrier lazy memoization of
// the modified-Jacobian W = aZ^4 auxiliary.
func (p *Point) loadW() (field.Element, bool) {
	ptr := p.w.Load()
	if ptr == nil {
		return nil, false
	}
	return *ptr, true
}

func (p *Point) storeW(w field.Element) {
	p.w.Store(&w)
}

// PreComp returns the caller-attached scalar-multiplication cache, or nil.
func (p *Point) PreComp() *PreCompInfo {
	return p.preComp.Load()
}

// SetPreComp atomically replaces the caller-attached cache.
func (p *Point) SetPreComp(info *PreCompInfo) {
	p.preComp.Store(info)
}
