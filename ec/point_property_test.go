package ec_test

import (
	"math/big"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/sammy00/ecpoint/curves"
	"github.com/sammy00/ecpoint/ec"
)

// fixture bundles a curve with its base point so the property tests below
// can be run identically across every coordinate system curves wires up:
// secp256k1 (JACOBIAN), P-256 (JACOBIAN_MODIFIED), sect233k1
// (LAMBDA_PROJECTIVE).
type fixture struct {
	name string
	g    *ec.Point
}

func fixtures(t *testing.T) []fixture {
	t.Helper()

	secp := curves.Secp256K1()
	secpG, err := curves.Secp256K1Generator(secp)
	require.NoError(t, err)

	p256 := curves.P256()
	p256G, err := curves.P256Generator(p256)
	require.NoError(t, err)

	k233 := curves.Sect233K1()
	k233G, err := curves.Sect233K1Generator(k233)
	require.NoError(t, err)

	return []fixture{
		{"secp256k1/JACOBIAN", secpG},
		{"p256/JACOBIAN_MODIFIED", p256G},
		{"sect233k1/LAMBDA_PROJECTIVE", k233G},
	}
}

// dump is a go-spew helper for debugging a mismatched Point on test
// failure.
func dump(t interface {
	Helper()
	Logf(format string, args ...any)
}, label string, p *ec.Point) {
	t.Helper()
	t.Logf("%s:\n%s", label, spew.Sdump(p))
}

func TestPointGroupLawProperties(t *testing.T) {
	for _, fx := range fixtures(t) {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			g := fx.g
			inf := g.Curve().Infinity()

			rapid.Check(t, func(t *rapid.T) {
				k1 := int64(rapid.IntRange(1, 200).Draw(t, "k1"))
				k2 := int64(rapid.IntRange(1, 200).Draw(t, "k2"))

				P, err := g.Multiply(big.NewInt(k1))
				require.NoError(t, err)
				Q, err := g.Multiply(big.NewInt(k2))
				require.NoError(t, err)

				// identity
				sumP, err := P.Add(inf)
				require.NoError(t, err)
				require.True(t, sumP.Equals(P), "P+O != P")
				sumP, err = inf.Add(P)
				require.NoError(t, err)
				require.True(t, sumP.Equals(P), "O+P != P")

				// inverse
				negP, err := P.Negate()
				require.NoError(t, err)
				sum, err := P.Add(negP)
				require.NoError(t, err)
				if !sum.IsInfinity() {
					dump(t, "P", P)
					dump(t, "-P", negP)
					t.Fatal("P+(-P) != infinity")
				}

				// commutativity
				pq, err := P.Add(Q)
				require.NoError(t, err)
				qp, err := Q.Add(P)
				require.NoError(t, err)
				require.True(t, pq.Equals(qp), "P+Q != Q+P")

				// doubling consistency
				doubled, err := P.Twice()
				require.NoError(t, err)
				added, err := P.Add(P)
				require.NoError(t, err)
				require.True(t, doubled.Equals(added), "2P via Twice != P+P")

				// scalar consistency: (k1+k2)*G == k1*G + k2*G
				sumK := new(big.Int).Add(big.NewInt(k1), big.NewInt(k2))
				combined, err := g.Multiply(sumK)
				require.NoError(t, err)
				require.True(t, combined.Equals(pq), "(k1+k2)G != k1G+k2G")

				// TwicePlus consistency: 2P+Q == (P+P)+Q
				tp, err := P.TwicePlus(Q)
				require.NoError(t, err)
				pp, err := P.Twice()
				require.NoError(t, err)
				ppq, err := pp.Add(Q)
				require.NoError(t, err)
				require.True(t, tp.Equals(ppq), "TwicePlus(P,Q) != (2P)+Q")

				// ThreeTimes consistency: 3P == 2P+P
				three, err := P.ThreeTimes()
				require.NoError(t, err)
				twicePlusP := mustAdd(t, pp, P)
				require.True(t, three.Equals(twicePlusP), "3P != 2P+P")
			})
		})
	}
}

func mustAdd(t *rapid.T, a, b *ec.Point) *ec.Point {
	r, err := a.Add(b)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	return r
}

func TestPointNormalizeIdempotent(t *testing.T) {
	for _, fx := range fixtures(t) {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			P, err := fx.g.Multiply(big.NewInt(7))
			require.NoError(t, err)

			n1, err := P.Normalize()
			require.NoError(t, err)
			n2, err := n1.Normalize()
			require.NoError(t, err)
			require.True(t, n1.Equals(n2))
			require.True(t, n2.IsNormalized())
		})
	}
}

func TestPointBatchNormalizeEquivalence(t *testing.T) {
	for _, fx := range fixtures(t) {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			c := fx.g.Curve()
			pts := make([]*ec.Point, 5)
			want := make([]*ec.Point, 5)
			for i := range pts {
				p, err := fx.g.Multiply(big.NewInt(int64(i + 2)))
				require.NoError(t, err)
				pts[i] = p

				n, err := p.Normalize()
				require.NoError(t, err)
				want[i] = n
			}

			require.NoError(t, c.NormalizeAll(pts))
			for i := range pts {
				require.True(t, pts[i].Equals(want[i]))
			}
		})
	}
}

func TestPointEncodingRoundTrip(t *testing.T) {
	for _, fx := range fixtures(t) {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			P, err := fx.g.Multiply(big.NewInt(123))
			require.NoError(t, err)
			c := P.Curve()

			encodings := []bool{false}
			if _, isFp := c.(*ec.FpCurve); isFp {
				encodings = []bool{true, false}
			}
			for _, compressed := range encodings {
				data, err := P.GetEncoded(compressed)
				require.NoError(t, err)

				var x, y *big.Int
				if compressed {
					x = new(big.Int).SetBytes(data[1:])
					yOdd := data[0] == 0x03
					fpCurve, ok := c.(*ec.FpCurve)
					require.True(t, ok, "compressed decode exercised only over Fp in this test")
					x3 := new(big.Int).Mul(x, x)
					x3.Mul(x3, x)
					ax := new(big.Int).Mul(fpCurve.A().ToBigInt(), x)
					x3.Add(x3, ax)
					x3.Add(x3, fpCurve.B().ToBigInt())
					x3.Mod(x3, fpCurve.Modulus())
					y = new(big.Int).ModSqrt(x3, fpCurve.Modulus())
					if (y.Bit(0) == 1) != yOdd {
						y.Sub(fpCurve.Modulus(), y)
					}
				} else {
					byteLen := c.ByteLen()
					x = new(big.Int).SetBytes(data[1 : 1+byteLen])
					y = new(big.Int).SetBytes(data[1+byteLen:])
				}

				decoded, err := c.CreatePoint(c.FromBigInt(x), c.FromBigInt(y))
				require.NoError(t, err)
				require.True(t, decoded.Equals(P))
			}
		})
	}
}

func TestPointCurveEquation(t *testing.T) {
	for _, fx := range fixtures(t) {
		fx := fx
		t.Run(fx.name, func(t *testing.T) {
			n, err := fx.g.Normalize()
			require.NoError(t, err)
			x, err := n.AffineXCoord()
			require.NoError(t, err)
			y, err := n.AffineYCoord()
			require.NoError(t, err)

			c := fx.g.Curve()
			_, err = c.CreatePoint(x, y)
			require.NoError(t, err, "generator must satisfy its own curve equation")
		})
	}
}
