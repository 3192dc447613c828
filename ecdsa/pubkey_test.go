package ecdsa_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sammy00/ecpoint/curves"
	"github.com/sammy00/ecpoint/ecdsa"
)

func newTestKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	c := curves.Secp256K1()
	g, err := curves.Secp256K1Generator(c)
	require.NoError(t, err)

	priv, err := ecdsa.GenerateKey(c, g, rand.Reader)
	require.NoError(t, err)
	return priv
}

func TestPubKeyCompress(t *testing.T) {
	priv := newTestKey(t)
	pub := &priv.PublicKey

	data, err := pub.Compress()
	require.NoError(t, err)
	require.Len(t, data, 1+pub.Curve.ByteLen())

	pubDec := new(ecdsa.PublicKey)
	require.NoError(t, pubDec.Decompress(pub.Curve, data))

	require.Equal(t, 0, pub.X.Cmp(pubDec.X))
	require.Equal(t, 0, pub.Y.Cmp(pubDec.Y))
}

func TestPubKeyUncompressedEncoding(t *testing.T) {
	priv := newTestKey(t)
	pub := &priv.PublicKey

	data, err := pub.UncompressedEncode()
	require.NoError(t, err)
	require.Len(t, data, 1+2*pub.Curve.ByteLen())

	pubDec := new(ecdsa.PublicKey)
	require.NoError(t, pubDec.UncompressedDecode(pub.Curve, data))

	require.Equal(t, 0, pub.X.Cmp(pubDec.X))
	require.Equal(t, 0, pub.Y.Cmp(pubDec.Y))
}

func TestPubKeyParsing(t *testing.T) {
	priv := newTestKey(t)
	pub := &priv.PublicKey

	t.Run("compressed form", func(t *testing.T) {
		data, err := pub.Compress()
		require.NoError(t, err)

		pubDec := new(ecdsa.PublicKey)
		require.NoError(t, pubDec.Parse(pub.Curve, data))
		require.Equal(t, 0, pub.X.Cmp(pubDec.X))
		require.Equal(t, 0, pub.Y.Cmp(pubDec.Y))
	})

	t.Run("uncompressed form", func(t *testing.T) {
		data, err := pub.UncompressedEncode()
		require.NoError(t, err)

		pubDec := new(ecdsa.PublicKey)
		require.NoError(t, pubDec.Parse(pub.Curve, data))
		require.Equal(t, 0, pub.X.Cmp(pubDec.X))
		require.Equal(t, 0, pub.Y.Cmp(pubDec.Y))
	})
}

func TestPubKeyParseRejectsGarbage(t *testing.T) {
	c := curves.Secp256K1()
	pub := new(ecdsa.PublicKey)

	require.Error(t, pub.Parse(c, []byte{0x02}))
	require.Error(t, pub.Parse(c, make([]byte, 1+c.ByteLen())))
}
