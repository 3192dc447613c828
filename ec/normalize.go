package ec

import "github.com/sammy00/ecpoint/field"

// normalizeAllZ applies Montgomery's simultaneous-inversion trick
// (spec.md §4.4, §8 property 9, §9): given the Z coordinates of an
// ordered batch of points, it returns the corresponding Z^-1 values using
// one field inversion and 3(n-1) multiplications instead of n inversions.
// Points at infinity or already at Z=1 are left as identity entries
// (nil) in the result, meaning "skip, already normalized".
func normalizeAllZ(zs []field.Element) []field.Element {
	n := len(zs)
	out := make([]field.Element, n)

	// present holds the indices with a non-nil Z, in ascending order.
	// c[k] = zs[present[0]] * ... * zs[present[k]].
	present := make([]int, 0, n)
	c := make([]field.Element, 0, n)
	var acc field.Element
	for i, z := range zs {
		if z == nil {
			continue
		}
		if len(present) == 0 {
			acc = z
		} else {
			acc = acc.Multiply(z)
		}
		present = append(present, i)
		c = append(c, acc)
	}
	if len(present) == 0 {
		return out // nothing to invert
	}

	u := c[len(c)-1].Invert()
	for k := len(present) - 1; k >= 0; k-- {
		i := present[k]
		if k == 0 {
			out[i] = u
		} else {
			out[i] = u.Multiply(c[k-1])
			u = u.Multiply(zs[i])
		}
	}
	return out
}

// normalizeBatch builds the Z slices (skipping infinity/Z=1 points),
// run normalizeAllZ, and rebuild affine points — shared by FpCurve and
// F2mCurve's NormalizeAll so the expensive batch-inversion code lives in
// one place.
func normalizeBatch(points []*Point) error {
	zs := make([]field.Element, len(points))
	for i, p := range points {
		if p == nil || p.IsInfinity() || p.IsNormalized() {
			continue
		}
		zs[i] = p.zs[0]
	}

	zInvs := normalizeAllZ(zs)

	for i, p := range points {
		if zInvs[i] == nil {
			continue
		}
		np, err := normalizeWithZInv(p, zInvs[i])
		if err != nil {
			return err
		}
		points[i] = np
	}
	return nil
}

func normalizeWithZInv(p *Point, zInv field.Element) (*Point, error) {
	switch p.coordinateSystem() {
	case HOMOGENEOUS:
		x := p.x.Multiply(zInv)
		y := p.y.Multiply(zInv)
		return newPoint(p.curve, x, y, nil, p.withCompression), nil
	case LAMBDA_PROJECTIVE:
		x := p.x.Multiply(zInv)
		affY, err := p.AffineYCoord()
		if err != nil {
			return nil, err
		}
		return newPoint(p.curve, x, affY, nil, p.withCompression), nil
	case JACOBIAN, JACOBIAN_CHUDNOVSKY, JACOBIAN_MODIFIED:
		zInv2 := zInv.Square()
		zInv3 := zInv2.Multiply(zInv)
		x := p.x.Multiply(zInv2)
		y := p.y.Multiply(zInv3)
		return newPoint(p.curve, x, y, nil, p.withCompression), nil
	default:
		return nil, ErrUnsupportedCoordinateSystem
	}
}
