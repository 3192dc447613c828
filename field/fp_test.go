package field_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/sammy00/ecpoint/field"
)

// secp256k1 prime, used as a realistic modulus across the Fp tests.
func testFpField() *field.FpField {
	p, _ := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	return field.NewFpField(p)
}

func TestFpElementArithmetic(t *testing.T) {
	f := testFpField()
	a := f.NewElement(big.NewInt(7))
	b := f.NewElement(big.NewInt(11))

	require.True(t, a.Add(b).Equals(f.NewElement(big.NewInt(18))))
	require.True(t, b.Subtract(a).Equals(f.NewElement(big.NewInt(4))))
	require.True(t, a.Multiply(b).Equals(f.NewElement(big.NewInt(77))))
	require.True(t, a.Square().Equals(f.NewElement(big.NewInt(49))))
	require.True(t, a.Divide(a).Equals(f.NewElement(big.NewInt(1))))
	require.True(t, a.Multiply(a.Invert()).Equals(f.NewElement(big.NewInt(1))))
	require.True(t, a.AddOne().Equals(f.NewElement(big.NewInt(8))))
	require.False(t, a.IsZero())
	require.True(t, f.NewElement(big.NewInt(0)).IsZero())
}

func TestFpElementInvertPanicsOnZero(t *testing.T) {
	f := testFpField()
	zero := f.NewElement(big.NewInt(0))
	require.Panics(t, func() { zero.Invert() })
}

func TestFpElementEncodeRoundTrip(t *testing.T) {
	f := testFpField()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int64Range(0, 1<<62).Draw(t, "n")
		e := f.NewElement(big.NewInt(n))
		require.Len(t, e.Encode(), f.ByteLen())
		require.Equal(t, n, e.ToBigInt().Int64())
	})
}

// TestFpFieldAxioms checks the field axioms hold for randomly drawn
// elements, independent of any curve.
func TestFpFieldAxioms(t *testing.T) {
	f := testFpField()
	drawElem := func(t *rapid.T, label string) field.Element {
		bytes := rapid.SliceOfN(rapid.Byte(), 32, 32).Draw(t, label)
		return f.NewElement(new(big.Int).SetBytes(bytes))
	}

	rapid.Check(t, func(t *rapid.T) {
		a := drawElem(t, "a")
		b := drawElem(t, "b")
		c := drawElem(t, "c")

		require.True(t, a.Add(b).Equals(b.Add(a)), "commutativity of +")
		require.True(t, a.Multiply(b).Equals(b.Multiply(a)), "commutativity of *")
		require.True(t, a.Add(b).Add(c).Equals(a.Add(b.Add(c))), "associativity of +")
		require.True(t, a.Multiply(b).Multiply(c).Equals(a.Multiply(b.Multiply(c))), "associativity of *")
		require.True(t, a.Subtract(a).IsZero())
		if !a.IsZero() {
			require.True(t, a.Divide(a).Equals(f.NewElement(big.NewInt(1))))
		}
	})
}
