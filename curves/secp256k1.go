package curves

import (
	"math/big"

	"github.com/sammy00/ecpoint/ec"
	"github.com/sammy00/ecpoint/field"
	"github.com/sammy00/ecpoint/multiplier"
)

// Secp256K1 returns a fresh secp256k1 curve (a=0, b=7) in JACOBIAN
// coordinates. Parameters are the same hex constants the teacher
// hardcodes in elliptic.initP256K1, carried over unchanged since they
// identify a fixed, well-known curve rather than anything spec-specific.
func Secp256K1() *ec.FpCurve {
	return Secp256K1WithCoordinateSystem(ec.JACOBIAN)
}

// Secp256K1WithCoordinateSystem returns a fresh secp256k1 curve in the
// given coordinate system, so representation-invariance tests (spec.md
// §8 S1) can compare the same curve's arithmetic across coordinate
// systems without duplicating the parameter constants.
func Secp256K1WithCoordinateSystem(coordSys ec.CoordinateSystem) *ec.FpCurve {
	p := mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	a := big.NewInt(0)
	b := big.NewInt(7)
	n := mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")

	fld := field.NewFpField(p)
	return ec.NewFpCurve(fld, a, b, n, big.NewInt(1), coordSys, multiplier.Basic{})
}

// Secp256K1Generator returns the standard secp256k1 base point on c.
func Secp256K1Generator(c *ec.FpCurve) (*ec.Point, error) {
	gx := mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	gy := mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
	return c.CreatePoint(c.FromBigInt(gx), c.FromBigInt(gy))
}
