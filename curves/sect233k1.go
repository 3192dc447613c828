package curves

import (
	"math/big"

	"github.com/sammy00/ecpoint/ec"
	"github.com/sammy00/ecpoint/field"
	"github.com/sammy00/ecpoint/multiplier"
)

// Sect233K1 returns a fresh NIST K-233 curve (a Koblitz curve: a=0, b=1)
// over GF(2^233) reduced by the trinomial x^233 + x^74 + 1, in
// LAMBDA_PROJECTIVE coordinates.
func Sect233K1() *ec.F2mCurve {
	return Sect233K1WithCoordinateSystem(ec.LAMBDA_PROJECTIVE)
}

// Sect233K1WithCoordinateSystem returns a fresh NIST K-233 curve in the
// given coordinate system, so the lambda-vs-affine round trip of spec.md
// §8 S5 can be exercised without duplicating the field/parameter setup.
func Sect233K1WithCoordinateSystem(coordSys ec.CoordinateSystem) *ec.F2mCurve {
	fld := field.NewTrinomialF2mField(233, 74)
	n := mustHex("8000000000000000000000000000069d5bb915bcd46efb1ad5f173abdf")
	h := big.NewInt(4)
	return ec.NewF2mCurve(fld, big.NewInt(0), big.NewInt(1), n, h, coordSys, multiplier.Basic{})
}

// Sect233K1Generator returns the standard K-233 base point on c.
func Sect233K1Generator(c *ec.F2mCurve) (*ec.Point, error) {
	gx := mustHex("17232ba853a7e731af129f22ff4149563a419c26bf50a4c9d6eefad6126")
	gy := mustHex("1db537dece819b7f70f555a67c427a8cd9bf18aeb9b56e0c11056fae6a3")
	return c.CreatePoint(c.FromBigInt(gx), c.FromBigInt(gy))
}
