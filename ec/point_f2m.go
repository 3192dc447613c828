package ec

import (
	"github.com/sammy00/ecpoint/field"
)

// This file implements spec.md §4.3: short-Weierstrass group law over
// F2^m (y^2 + xy = x^3 + ax^2 + b) across AFFINE, HOMOGENEOUS,
// LAMBDA_AFFINE and LAMBDA_PROJECTIVE, plus the Frobenius endomorphism
// tau(). Characteristic 2 means Subtract == Add and Negate(P) only flips
// the Y/lambda coordinate, never the sign of a field element.

// checkPointsF2m requires identical curve references, per spec.md §4.3
// and §9's open question on curve identity vs equivalence: unlike Fp,
// F2m does not fall back to structural equality.
func checkPointsF2m(a, b *Point) error {
	if a.curve != b.curve {
		return ErrCurveMismatch
	}
	return nil
}

func addF2m(a, b *Point) (*Point, error) {
	if err := checkPointsF2m(a, b); err != nil {
		return nil, err
	}
	switch a.coordinateSystem() {
	case AFFINE:
		return addF2mAffine(a, b)
	case HOMOGENEOUS:
		return addF2mHomogeneous(a, b)
	case LAMBDA_PROJECTIVE:
		return addF2mLambdaProjective(a, b)
	default:
		return nil, ErrUnsupportedCoordinateSystem
	}
}

func twiceF2m(a *Point) (*Point, error) {
	switch a.coordinateSystem() {
	case AFFINE:
		return twiceF2mAffine(a)
	case HOMOGENEOUS:
		return twiceF2mHomogeneous(a)
	case LAMBDA_PROJECTIVE:
		return twiceF2mLambdaProjective(a)
	default:
		return nil, ErrUnsupportedCoordinateSystem
	}
}

func twicePlusF2m(a, b *Point) (*Point, error) {
	if a.coordinateSystem() == LAMBDA_PROJECTIVE && b.coordinateSystem() == LAMBDA_AFFINE {
		return twicePlusF2mLambdaProjective(a, b)
	}
	d, err := a.Twice()
	if err != nil {
		return nil, err
	}
	return d.Add(b)
}

func negateF2m(a *Point) *Point {
	switch a.coordinateSystem() {
	case LAMBDA_AFFINE:
		return a.curve.createRawPoint(a.x, a.y.AddOne(), nil, a.withCompression)
	case LAMBDA_PROJECTIVE:
		lambda3 := a.y.Add(a.zs[0])
		return a.curve.createRawPoint(a.x, lambda3, a.zs, a.withCompression)
	default:
		// -P = (X, X+Y) in affine/homogeneous.
		return a.curve.createRawPoint(a.x, a.x.Add(a.y), a.zs, a.withCompression)
	}
}

// tau applies the Frobenius endomorphism (x,y) -> (x^2, y^2); identity on
// infinity.
func tau(a *Point) (*Point, error) {
	if a.IsInfinity() {
		return a, nil
	}
	x2 := a.x.Square()
	y2 := a.y.Square()
	var zs []field.Element
	if len(a.zs) > 0 {
		zs = make([]field.Element, len(a.zs))
		for i, z := range a.zs {
			zs[i] = z.Square()
		}
	}
	return a.curve.createRawPoint(x2, y2, zs, a.withCompression), nil
}

// addF2mAffine: L = (Y1+Y2)/(X1+X2); X3 = L^2+L+X1+X2+a; Y3 = L(X1+X3)+X3+Y1.
func addF2mAffine(a, b *Point) (*Point, error) {
	x1, y1 := a.x, a.y
	x2, y2 := b.x, b.y

	if x1.Equals(x2) {
		if y1.Equals(y2) {
			return a.Twice()
		}
		return a.curve.Infinity(), nil
	}

	sumX := x1.Add(x2)
	l := y1.Add(y2).Divide(sumX)
	x3 := l.Square().Add(l).Add(sumX).Add(a.curve.A())
	y3 := l.Multiply(x1.Add(x3)).Add(x3).Add(y1)
	return a.curve.createRawPoint(x3, y3, nil, a.withCompression || b.withCompression), nil
}

// twiceF2mAffine: X1=0 is the unique order-2 fixed point, mapping to
// infinity. L1 = Y1/X1 + X1; X3 = L1^2+L1+a; Y3 = X1^2 + X3(L1+1).
func twiceF2mAffine(a *Point) (*Point, error) {
	if a.x.IsZero() {
		return a.curve.Infinity(), nil
	}
	l1 := a.y.Divide(a.x).Add(a.x)
	x3 := l1.Square().Add(l1).Add(a.curve.A())
	y3 := a.x.Square().Add(x3.Multiply(l1.AddOne()))
	return a.curve.createRawPoint(x3, y3, nil, a.withCompression), nil
}

// addF2mHomogeneous/twiceF2mHomogeneous are the projective analogues of
// the affine formulae above, with subtraction replaced by addition,
// following the EFD-style structure used for the Fp homogeneous branch
// in point_fp.go.
func addF2mHomogeneous(a, b *Point) (*Point, error) {
	x1, y1, z1 := a.x, a.y, a.zs[0]
	x2, y2, z2 := b.x, b.y, b.zs[0]

	u1 := y2.Multiply(z1)
	u2 := y1.Multiply(z2)
	u := u1.Add(u2)
	v1 := x2.Multiply(z1)
	v2 := x1.Multiply(z2)
	v := v1.Add(v2)

	if v.IsZero() {
		if u.IsZero() {
			return a.Twice()
		}
		return a.curve.Infinity(), nil
	}

	vSq := v.Square()
	vCu := vSq.Multiply(v)
	z1z2 := z1.Multiply(z2)

	w := u.Square().Add(u.Multiply(v)).Add(a.curve.A().Multiply(vSq)).Multiply(z1z2).Add(vCu)
	x3 := v.Multiply(w)
	y3 := u.Multiply(x1).Add(v.Multiply(y1)).Multiply(vSq.Multiply(z2)).Add(u.Add(v).Multiply(w))
	z3 := vCu.Multiply(z1z2)
	return a.curve.createRawPoint(x3, y3, []field.Element{z3}, a.withCompression || b.withCompression), nil
}

func twiceF2mHomogeneous(a *Point) (*Point, error) {
	if a.x.IsZero() {
		return a.curve.Infinity(), nil
	}
	x1, y1, z1 := a.x, a.y, a.zs[0]

	x1z1 := x1.Multiply(z1)
	x1sq := x1.Square()
	s := x1sq.Add(y1.Multiply(z1))
	vSq := x1z1.Square()
	sv := s.Add(x1z1)
	h := sv.Multiply(s).Add(a.curve.A().Multiply(vSq))

	x3 := x1z1.Multiply(h)
	y3 := x1sq.Square().Multiply(x1z1).Add(h.Multiply(sv))
	z3 := x1z1.Multiply(vSq)

	return a.curve.createRawPoint(x3, y3, []field.Element{z3}, a.withCompression), nil
}

// addF2mLambdaProjective adds two LAMBDA_PROJECTIVE points. Per spec.md
// §4.3/§9's open question, X=0 is the curve's unique finite order-2 point,
// not the group identity (infinity is x==nil, per spec.md §3); it is
// folded back to affine and added with the ordinary affine formula.
func addF2mLambdaProjective(a, b *Point) (*Point, error) {
	if a.x.IsZero() || b.x.IsZero() {
		return addF2mLambdaProjectiveOrder2(a, b)
	}

	x1, l1, z1 := a.x, a.y, a.zs[0]
	x2, l2, z2 := b.x, b.y, b.zs[0]

	u1 := x1.Multiply(z2)
	u2 := x2.Multiply(z1)
	aPart := u1.Add(u2)
	bPart := l1.Multiply(z2).Add(l2.Multiply(z1))

	if aPart.IsZero() {
		if bPart.IsZero() {
			return a.Twice()
		}
		return a.curve.Infinity(), nil
	}

	aSq := aPart.Square()
	bu2 := bPart.Multiply(u2)
	x3 := bPart.Multiply(u1).Multiply(bu2)
	abz2 := bPart.Multiply(aSq).Multiply(z2)
	l3 := bu2.Add(aSq).Square().Add(abz2.Multiply(l1.Add(z1)))
	z3 := abz2.Multiply(z1)

	return a.curve.createRawPoint(x3, l3, []field.Element{z3}, a.withCompression || b.withCompression), nil
}

// addF2mLambdaProjectiveOrder2 adds a LAMBDA_PROJECTIVE point to the
// curve's unique order-2 point (X=0, affine Y=sqrt(b), since 0^2+0*Y=b):
// toLambda never re-represents it (its lambda substitution is undefined
// at X=0), so its affine Y is recomputed from the curve's b rather than
// read back off the point, then the ordinary affine addition formula
// (addF2mAffine) is applied directly.
func addF2mLambdaProjectiveOrder2(a, b *Point) (*Point, error) {
	special, other := a, b
	if !special.x.IsZero() {
		special, other = b, a
	}
	if other.x.IsZero() {
		// Both operands are the order-2 point: P+P = infinity.
		return special.curve.Infinity(), nil
	}

	y0 := sqrtF2m(special.curve.B(), special.curve.FieldSize())

	zInv := other.zs[0].Invert()
	xOther := other.x.Multiply(zInv)
	yOther, err := other.AffineYCoord()
	if err != nil {
		return nil, err
	}

	l := y0.Add(yOther).Divide(xOther)
	x3 := l.Square().Add(l).Add(xOther).Add(special.curve.A())
	y3 := l.Multiply(xOther.Add(x3)).Add(x3).Add(y0)

	result, err := special.curve.CreatePoint(x3, y3)
	if err != nil {
		return nil, err
	}
	result.withCompression = a.withCompression || b.withCompression
	return result, nil
}

// sqrtF2m returns the unique square root of x in GF(2^m). Squaring is the
// Frobenius automorphism, of order m, so its inverse is m-1 repeated
// squarings: (x^(2^(m-1)))^2 = x^(2^m) = x.
func sqrtF2m(x field.Element, m int) field.Element {
	r := x
	for i := 0; i < m-1; i++ {
		r = r.Square()
	}
	return r
}

// twiceF2mLambdaProjective: T = L1^2+L1Z1+aZ1^2, X3 = T^2, Z3 = T*Z1^2.
// L3 is chosen between two algebraically equivalent expressions based on
// the bit-length of b versus half the field size, per spec.md §4.3.
func twiceF2mLambdaProjective(a *Point) (*Point, error) {
	if a.x.IsZero() {
		return a.curve.Infinity(), nil
	}
	x1, l1, z1 := a.x, a.y, a.zs[0]

	l1z1 := l1.Multiply(z1)
	z1sq := z1.Square()
	t := l1.Square().Add(l1z1).Add(a.curve.A().Multiply(z1sq))
	x3 := t.Square()
	z3 := t.Multiply(z1sq)

	var l3 field.Element
	if useAlternateLambdaFormula(a.curve) {
		t1 := l1.Add(x1).Square()
		aZ1sq := a.curve.A().Multiply(z1sq)
		l3 = t1.Add(t).Add(z1sq).Multiply(t1).Add(aZ1sq.Square()).Add(a.curve.B().Multiply(z1sq.Square())).Add(x3).Add(a.curve.A().AddOne().Multiply(z3))
	} else {
		l3 = x1.Multiply(z1).Square().Add(t.Multiply(l1z1)).Add(x3).Add(z3)
	}

	return a.curve.createRawPoint(x3, l3, []field.Element{z3}, a.withCompression), nil
}

// useAlternateLambdaFormula picks between two equivalent doubling
// expressions for L3 by comparing the bit-length of b against half the
// field size, per spec.md §4.3.
func useAlternateLambdaFormula(c Curve) bool {
	return c.B().BitLength() > c.FieldSize()/2
}

// twicePlusF2mLambdaProjective is the dedicated 2P+Q optimization when Q
// is LAMBDA_AFFINE (Z2=1, X2 != 0).
func twicePlusF2mLambdaProjective(a, b *Point) (*Point, error) {
	if a.x.IsZero() {
		return b, nil
	}
	if b.x.IsZero() {
		return a.Twice()
	}

	x1, l1, z1 := a.x, a.y, a.zs[0]
	x2, l2 := b.x, b.y

	z1sq := z1.Square()
	t := a.curve.A().Multiply(z1sq).Add(l1.Square()).Add(l1.Multiply(z1))
	l2plus1 := l2.AddOne()
	aPart := a.curve.A().Add(l2plus1).Multiply(z1sq).Add(l1.Square()).Multiply(t).Add(x1.Square().Multiply(z1sq))
	x2z1sq := x2.Multiply(z1sq)
	bPart := x2z1sq.Add(t).Square()
	if bPart.IsZero() {
		if aPart.IsZero() {
			return b.Twice()
		}
		return a.curve.Infinity(), nil
	}

	x3 := aPart.Square().Multiply(x2z1sq)
	z3 := aPart.Multiply(bPart).Multiply(z1sq)
	l3 := aPart.Add(bPart).Square().Multiply(t).Add(l2plus1.Multiply(z3))
	return a.curve.createRawPoint(x3, l3, []field.Element{z3}, a.withCompression || b.withCompression), nil
}

// lambdaAffineAffineY converts LAMBDA_AFFINE's stored lambda back to the
// affine Y coordinate: lambda = X + Y/X, so Y = X*(lambda + X).
func lambdaAffineAffineY(p *Point) (field.Element, error) {
	if p.x.IsZero() {
		return p.x, nil
	}
	return p.x.Multiply(p.y.Add(p.x)), nil
}

// lambdaProjectiveAffineY converts LAMBDA_PROJECTIVE's (X, lambda, Z) to
// the affine Y coordinate on every read, per the documented exception in
// spec.md §4.1: affine x = X/Z, and y = affineX * (lambda + affineX).
func lambdaProjectiveAffineY(p *Point) (field.Element, error) {
	if p.IsInfinity() {
		return nil, ErrNotNormalized
	}
	z := p.zs[0]
	zInv := z.Invert()
	affineX := p.x.Multiply(zInv)
	if affineX.IsZero() {
		return affineX, nil
	}
	lambda := p.y.Multiply(zInv)
	return affineX.Multiply(lambda.Add(affineX)), nil
}
