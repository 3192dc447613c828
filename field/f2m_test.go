package field_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/sammy00/ecpoint/field"
)

// sect233k1's trinomial reduction polynomial, used as a realistic modulus.
func testF2mField() *field.F2mField {
	return field.NewTrinomialF2mField(233, 74)
}

func TestF2mElementArithmetic(t *testing.T) {
	f := testF2mField()
	a := f.NewElement(big.NewInt(0b1011))
	b := f.NewElement(big.NewInt(0b0110))

	// Add/Subtract are Xor over characteristic 2.
	require.True(t, a.Add(b).Equals(a.Subtract(b)))
	require.True(t, a.Add(a).IsZero())
	require.True(t, a.Multiply(a.Invert()).Equals(f.NewElement(big.NewInt(1))))
	require.True(t, a.Square().Equals(a.Multiply(a)))
	require.True(t, a.Negate().Equals(a), "negate is identity over char 2")
	require.True(t, a.Divide(a).Equals(f.NewElement(big.NewInt(1))))
}

func TestF2mElementInvertPanicsOnZero(t *testing.T) {
	f := testF2mField()
	zero := f.NewElement(big.NewInt(0))
	require.Panics(t, func() { zero.Invert() })
}

func TestF2mElementEncodeRoundTrip(t *testing.T) {
	f := testF2mField()
	rapid.Check(t, func(t *rapid.T) {
		bytes := rapid.SliceOfN(rapid.Byte(), f.ByteLen(), f.ByteLen()).Draw(t, "bytes")
		e := f.NewElement(new(big.Int).SetBytes(bytes))
		require.Len(t, e.Encode(), f.ByteLen())
	})
}

// TestF2mFieldAxioms checks commutativity/associativity and multiplicative
// inverse hold for randomly drawn elements reduced mod the field polynomial.
func TestF2mFieldAxioms(t *testing.T) {
	f := testF2mField()
	drawElem := func(t *rapid.T, label string) field.Element {
		bytes := rapid.SliceOfN(rapid.Byte(), f.ByteLen(), f.ByteLen()).Draw(t, label)
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
		if !a.IsZero() {
			require.True(t, a.Divide(a).Equals(f.NewElement(big.NewInt(1))))
		}
	})
}
