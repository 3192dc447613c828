package ec

import (
	"math/big"

	"github.com/sammy00/ecpoint/field"
)

// This file implements spec.md §4.2: short-Weierstrass group law over Fp
// (y^2 = x^3 + ax + b) across AFFINE, HOMOGENEOUS, JACOBIAN (and its
// JACOBIAN_CHUDNOVSKY cache variant) and JACOBIAN_MODIFIED. The general
// pre-checks (infinity operands, identical references, opposite points)
// are handled by Point.Add/Twice/TwicePlus/ThreeTimes in point.go; every
// function here assumes both operands are finite and distinct.

func addFp(a, b *Point) (*Point, error) {
	switch a.coordinateSystem() {
	case AFFINE:
		return addFpAffine(a, b)
	case HOMOGENEOUS:
		return addFpHomogeneous(a, b)
	case JACOBIAN:
		return addFpJacobian(a, b, false)
	case JACOBIAN_CHUDNOVSKY:
		return addFpJacobian(a, b, true)
	case JACOBIAN_MODIFIED:
		return addFpJacobianModified(a, b)
	default:
		return nil, ErrUnsupportedCoordinateSystem
	}
}

func twiceFp(a *Point) (*Point, error) {
	switch a.coordinateSystem() {
	case AFFINE:
		return twiceFpAffine(a)
	case HOMOGENEOUS:
		return twiceFpHomogeneous(a)
	case JACOBIAN:
		return twiceFpJacobian(a, false)
	case JACOBIAN_CHUDNOVSKY:
		return twiceFpJacobian(a, true)
	case JACOBIAN_MODIFIED:
		return twiceFpJacobianModified(a, true)
	default:
		return nil, ErrUnsupportedCoordinateSystem
	}
}

func twicePlusFp(a, b *Point) (*Point, error) {
	switch a.coordinateSystem() {
	case AFFINE:
		return twicePlusFpAffine(a, b)
	case JACOBIAN_MODIFIED:
		d, err := twiceFpJacobianModified(a, false)
		if err != nil {
			return nil, err
		}
		return d.Add(b)
	default:
		d, err := a.Twice()
		if err != nil {
			return nil, err
		}
		return d.Add(b)
	}
}

// threeTimesFp is 2P+P. The CJLM identity in twicePlusFpAffine requires
// X1 != X2, which never holds when doubling-then-adding the same point,
// so every coordinate system uses the plain twice-then-add here.
func threeTimesFp(a *Point) (*Point, error) {
	d, err := a.Twice()
	if err != nil {
		return nil, err
	}
	return d.Add(a)
}

func negateFp(a *Point) *Point {
	return a.curve.createRawPoint(a.x, a.y.Negate(), a.zs, a.withCompression)
}

// addFpAffine: gamma = (Y2-Y1)/(X2-X1); X3 = gamma^2-X1-X2; Y3 = gamma(X1-X3)-Y1.
func addFpAffine(a, b *Point) (*Point, error) {
	x1, y1 := a.x, a.y
	x2, y2 := b.x, b.y

	if x1.Equals(x2) {
		if y1.Equals(y2) {
			return a.Twice()
		}
		return a.curve.Infinity(), nil
	}

	gamma := y2.Subtract(y1).Divide(x2.Subtract(x1))
	x3 := gamma.Square().Subtract(x1).Subtract(x2)
	y3 := gamma.Multiply(x1.Subtract(x3)).Subtract(y1)
	return a.curve.createRawPoint(x3, y3, nil, a.withCompression || b.withCompression), nil
}

// twiceFpAffine: Y1=0 -> infinity; gamma = (3X1^2+a)/(2Y1); else as addFpAffine.
func twiceFpAffine(a *Point) (*Point, error) {
	if a.y.IsZero() {
		return a.curve.Infinity(), nil
	}
	three := a.curve.FromBigInt(big.NewInt(3))
	two := a.curve.FromBigInt(big.NewInt(2))

	gamma := a.x.Square().Multiply(three).Add(a.curve.A()).Divide(a.y.Multiply(two))
	x3 := gamma.Square().Subtract(a.x).Subtract(a.x)
	y3 := gamma.Multiply(a.x.Subtract(x3)).Subtract(a.y)
	return a.curve.createRawPoint(x3, y3, nil, a.withCompression), nil
}

// addFpHomogeneous: standard (X:Y:Z) addition (EFD shortw/projective
// add-1998-cmo shape), u = Y2Z1-Y1Z2, v = X2Z1-X1Z2.
func addFpHomogeneous(a, b *Point) (*Point, error) {
	x1, y1, z1 := a.x, a.y, a.zs[0]
	x2, y2, z2 := b.x, b.y, b.zs[0]

	z1z2 := z1.Multiply(z2)
	u1 := y2.Multiply(z1)
	u2 := y1.Multiply(z2)
	u := u1.Subtract(u2)
	v1 := x2.Multiply(z1)
	v2 := x1.Multiply(z2)
	v := v1.Subtract(v2)

	if v.IsZero() {
		if u.IsZero() {
			return a.Twice()
		}
		return a.curve.Infinity(), nil
	}

	vv := v.Square()
	vvv := vv.Multiply(v)
	r := vv.Multiply(v2)
	two := a.curve.FromBigInt(big.NewInt(2))
	aa := u.Square().Multiply(z1z2).Subtract(vvv).Subtract(r.Multiply(two))

	x3 := v.Multiply(aa)
	y3 := u.Multiply(r.Subtract(aa)).Subtract(vvv.Multiply(u2))
	z3 := vvv.Multiply(z1z2)
	return a.curve.createRawPoint(x3, y3, []field.Element{z3}, a.withCompression || b.withCompression), nil
}

// twiceFpHomogeneous: EFD shortw/projective dbl-2007-bl doubling.
func twiceFpHomogeneous(a *Point) (*Point, error) {
	if a.y.IsZero() {
		return a.curve.Infinity(), nil
	}
	x1, y1, z1 := a.x, a.y, a.zs[0]
	two := a.curve.FromBigInt(big.NewInt(2))
	three := a.curve.FromBigInt(big.NewInt(3))

	w := a.curve.A().Multiply(z1.Square()).Add(x1.Square().Multiply(three))
	s := y1.Multiply(z1).Multiply(two)
	ss := s.Square()
	sss := s.Multiply(ss)
	r := y1.Multiply(s)
	rr := r.Square()
	b := x1.Add(r).Square().Subtract(x1.Square()).Subtract(rr)
	h := w.Square().Subtract(b.Multiply(two))

	x3 := h.Multiply(s)
	y3 := w.Multiply(b.Subtract(h)).Subtract(rr.Multiply(two))
	z3 := sss
	return a.curve.createRawPoint(x3, y3, []field.Element{z3}, a.withCompression), nil
}

// jacobianAddCore computes the general-case Jacobian addition of
// spec.md §4.2: U1=Z2^2 X1, U2=Z1^2 X2, S1=Z2^3 Y1, S2=Z1^3 Y2,
// H=U1-U2, R=S1-S2, X3=R^2+H^3-2U1H^2, Y3=R(U1H^2-X3)-S1H^3,
// Z3=H Z1 Z2. When H=0 the points share an x-coordinate; isDouble
// reports whether they also share a y-coordinate (P==Q, caller should
// Twice) or not (P==-Q, caller should return Infinity).
func jacobianAddCore(a, b *Point) (x3, y3, z3 field.Element, degenerate, isDouble bool) {
	x1, y1, z1 := a.x, a.y, a.zs[0]
	x2, y2, z2 := b.x, b.y, b.zs[0]

	z1z1 := z1.Square()
	z2z2 := z2.Square()
	u1 := x1.Multiply(z2z2)
	u2 := x2.Multiply(z1z1)
	z1cubed := z1z1.Multiply(z1)
	z2cubed := z2z2.Multiply(z2)
	s1 := y1.Multiply(z2cubed)
	s2 := y2.Multiply(z1cubed)

	h := u1.Subtract(u2)
	r := s1.Subtract(s2)
	if h.IsZero() {
		return nil, nil, nil, true, r.IsZero()
	}

	hh := h.Square()
	hhh := hh.Multiply(h)
	u1hh := u1.Multiply(hh)

	x3 = r.Square().Add(hhh)
	x3 = x3.Subtract(u1hh).Subtract(u1hh)
	y3 = r.Multiply(u1hh.Subtract(x3)).Subtract(s1.Multiply(hhh))
	z3 = h.Multiply(z1).Multiply(z2)
	return x3, y3, z3, false, false
}

func addFpJacobian(a, b *Point, chudnovsky bool) (*Point, error) {
	x3, y3, z3, degenerate, isDouble := jacobianAddCore(a, b)
	if degenerate {
		if isDouble {
			return a.Twice()
		}
		return a.curve.Infinity(), nil
	}
	return jacobianResult(a.curve, x3, y3, z3, chudnovsky, a.withCompression || b.withCompression), nil
}

func jacobianResult(c Curve, x3, y3, z3 field.Element, chudnovsky bool, withCompression bool) *Point {
	if !chudnovsky {
		return c.createRawPoint(x3, y3, []field.Element{z3}, withCompression)
	}
	z3sq := z3.Square()
	z3cubed := z3sq.Multiply(z3)
	return c.createRawPoint(x3, y3, []field.Element{z3, z3sq, z3cubed}, withCompression)
}

// twiceFpJacobian implements spec.md §4.2's Jacobian doubling, including
// the a=-3 shortcut M=3(X1+Z1^2)(X1-Z1^2).
func twiceFpJacobian(a *Point, chudnovsky bool) (*Point, error) {
	if a.y.IsZero() {
		return a.curve.Infinity(), nil
	}
	x1, y1, z1 := a.x, a.y, a.zs[0]
	three := a.curve.FromBigInt(big.NewInt(3))
	four := a.curve.FromBigInt(big.NewInt(4))
	eight := a.curve.FromBigInt(big.NewInt(8))
	two := a.curve.FromBigInt(big.NewInt(2))

	var m field.Element
	if isMinus3(a.curve) {
		z1z1 := z1.Square()
		m = x1.Add(z1z1).Multiply(x1.Subtract(z1z1)).Multiply(three)
	} else {
		z1z1z1z1 := z1.Square().Square()
		m = x1.Square().Multiply(three).Add(a.curve.A().Multiply(z1z1z1z1))
	}

	y1sq := y1.Square()
	s := x1.Multiply(y1sq).Multiply(four)
	x3 := m.Square().Subtract(s).Subtract(s)
	y3 := m.Multiply(s.Subtract(x3)).Subtract(y1sq.Square().Multiply(eight))
	z3 := y1.Multiply(two).Multiply(z1)

	return jacobianResult(a.curve, x3, y3, z3, chudnovsky, a.withCompression), nil
}

// isMinus3 reports whether curve.A() == -3, the well-known special case
// that lets doubling skip a field squaring.
func isMinus3(c Curve) bool {
	negA := c.A().Negate()
	return negA.Equals(c.FromBigInt(big.NewInt(3)))
}

func addFpJacobianModified(a, b *Point) (*Point, error) {
	x3, y3, z3, degenerate, isDouble := jacobianAddCore(a, b)
	if degenerate {
		if isDouble {
			return a.Twice()
		}
		return a.curve.Infinity(), nil
	}
	np := a.curve.createRawPoint(x3, y3, []field.Element{z3}, a.withCompression || b.withCompression)
	z3sq := z3.Square()
	w3 := a.curve.A().Multiply(z3sq.Square())
	np.storeW(w3)
	return np, nil
}

// twiceFpJacobianModified threads the lazily cached W=aZ^4 auxiliary
// through doubling so Z need not be recubed. calculateW lets a caller
// that will immediately Add the result skip materializing W3.
func twiceFpJacobianModified(a *Point, calculateW bool) (*Point, error) {
	if a.y.IsZero() {
		return a.curve.Infinity(), nil
	}
	x1, y1, z1 := a.x, a.y, a.zs[0]

	w1, ok := a.loadW()
	if !ok {
		z1_4 := z1.Square().Square()
		w1 = a.curve.A().Multiply(z1_4)
		a.storeW(w1)
	}

	three := a.curve.FromBigInt(big.NewInt(3))
	four := a.curve.FromBigInt(big.NewInt(4))
	eight := a.curve.FromBigInt(big.NewInt(8))
	two := a.curve.FromBigInt(big.NewInt(2))

	m := x1.Square().Multiply(three).Add(w1)
	y1sq := y1.Square()
	s := x1.Multiply(y1sq).Multiply(four)
	x3 := m.Square().Subtract(s).Subtract(s)
	y3 := m.Multiply(s.Subtract(x3)).Subtract(y1sq.Square().Multiply(eight))
	z3 := y1.Multiply(two).Multiply(z1)

	np := a.curve.createRawPoint(x3, y3, []field.Element{z3}, a.withCompression)
	if calculateW {
		z3sq := z3.Square()
		w3 := a.curve.A().Multiply(z3sq.Square())
		np.storeW(w3)
	}
	return np, nil
}

// twicePlusFpAffine implements the Ciet-Joye-Lauter-Montgomery
// two-inversion-for-several-multiplications identity for 2P+Q in affine
// coordinates (spec.md §4.2).
func twicePlusFpAffine(a, b *Point) (*Point, error) {
	x1, y1 := a.x, a.y
	x2, y2 := b.x, b.y

	if x1.Equals(x2) {
		// P == Q or P == -Q; fall back to the general dispatch so the
		// degenerate cases (2P+P=3P, 2P+(-P)=P) are handled uniformly.
		d, err := a.Twice()
		if err != nil {
			return nil, err
		}
		return d.Add(b)
	}

	two := a.curve.FromBigInt(big.NewInt(2))
	dx := x2.Subtract(x1)
	dy := y2.Subtract(y1)
	X := dx.Square()
	Y := dy.Square()
	d := X.Multiply(x1.Multiply(two).Add(x2)).Subtract(Y)
	if d.IsZero() {
		return a.curve.Infinity(), nil
	}

	D := d.Multiply(dx)
	I := D.Invert()
	L1 := d.Multiply(I).Multiply(dy)
	L2 := y1.Multiply(two).Multiply(X).Multiply(dx).Multiply(I).Subtract(L1)

	x4 := L2.Subtract(L1).Multiply(L1.Add(L2)).Add(x2)
	y4 := x1.Subtract(x4).Multiply(L2).Subtract(y1)
	return a.curve.createRawPoint(x4, y4, nil, a.withCompression || b.withCompression), nil
}
