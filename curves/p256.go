// Package curves supplies concrete curve fixtures for tests and for the
// ecdsa package's external-consumer demonstration: a prime-field curve
// (P-256) and a binary-field curve (sect233k1), exercising both halves
// of the ec package's Fp/F2m split.
package curves

import (
	"math/big"

	"github.com/sammy00/ecpoint/ec"
	"github.com/sammy00/ecpoint/field"
	"github.com/sammy00/ecpoint/multiplier"
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: invalid hex constant: " + s)
	}
	return n
}

// P256 returns a fresh NIST P-256 curve in JACOBIAN_MODIFIED coordinates,
// using the stock Basic double-and-add multiplier.
func P256() *ec.FpCurve {
	return P256WithCoordinateSystem(ec.JACOBIAN_MODIFIED)
}

// P256WithCoordinateSystem returns a fresh NIST P-256 curve in the given
// coordinate system. Exposed so representation-invariance tests (spec.md
// §8 S1) can compare the same curve's arithmetic across coordinate
// systems without duplicating the parameter constants.
func P256WithCoordinateSystem(coordSys ec.CoordinateSystem) *ec.FpCurve {
	p := mustHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff")
	a := mustHex("ffffffff00000001000000000000000000000000fffffffffffffffffffffffc")
	b := mustHex("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b")
	n := mustHex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")

	fld := field.NewFpField(p)
	return ec.NewFpCurve(fld, a, b, n, big.NewInt(1), coordSys, multiplier.Basic{})
}

// P256Generator returns the standard P-256 base point on c, in affine
// coordinates re-represented into c's native coordinate system.
func P256Generator(c *ec.FpCurve) (*ec.Point, error) {
	gx := mustHex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	gy := mustHex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")
	return c.CreatePoint(c.FromBigInt(gx), c.FromBigInt(gy))
}
