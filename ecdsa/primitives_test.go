package ecdsa_test

import (
	"crypto/rand"
	"encoding/asn1"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"

	"github.com/sammy00/ecpoint/curves"
	"github.com/sammy00/ecpoint/ec"
	"github.com/sammy00/ecpoint/ecdsa"
)

// ecdsaSig serves for testing ASN1 marshaling in signing/verification with
// private keys.
type ecdsaSig struct {
	R, S *big.Int
}

// testCurves enumerates every fixture in package curves so the ECDSA
// primitives are exercised over both field families and every coordinate
// system the curves package wires up.
func testCurves(t *testing.T) map[string]struct {
	curve ec.Curve
	g     *ec.Point
} {
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

	return map[string]struct {
		curve ec.Curve
		g     *ec.Point
	}{
		"secp256k1": {secp, secpG},
		"p256":      {p256, p256G},
		"sect233k1": {k233, k233G},
	}
}

func TestKeyGeneration(t *testing.T) {
	for name, fx := range testCurves(t) {
		t.Run(name, func(t *testing.T) {
			priv, err := ecdsa.GenerateKey(fx.curve, fx.g, rand.Reader)
			require.NoError(t, err)

			p, err := fx.curve.CreatePoint(fx.curve.FromBigInt(priv.PublicKey.X), fx.curve.FromBigInt(priv.PublicKey.Y))
			require.NoError(t, err, "generated public key must be on curve")
			require.False(t, p.IsInfinity())
		})
	}
}

func TestSignAndVerify(t *testing.T) {
	for name, fx := range testCurves(t) {
		t.Run(name, func(t *testing.T) {
			priv, err := ecdsa.GenerateKey(fx.curve, fx.g, rand.Reader)
			require.NoError(t, err)

			msg := []byte("testing")
			r, s, err := ecdsa.Sign(rand.Reader, priv, msg)
			require.NoError(t, err)
			require.True(t, ecdsa.Verify(&priv.PublicKey, msg, r, s))

			msg[0] = ^msg[0]
			require.False(t, ecdsa.Verify(&priv.PublicKey, msg, r, s))
		})
	}
}

func TestSignAndVerifyWithASN1(t *testing.T) {
	c := curves.Secp256K1()
	g, err := curves.Secp256K1Generator(c)
	require.NoError(t, err)

	privKey, err := ecdsa.GenerateKey(c, g, rand.Reader)
	require.NoError(t, err)

	msg := []byte("Hello World")
	digest := sha3.Sum256(msg)

	asn1Sig, err := privKey.Sign(rand.Reader, digest[:], nil)
	require.NoError(t, err)

	var decodedSig ecdsaSig
	_, err = asn1.Unmarshal(asn1Sig, &decodedSig)
	require.NoError(t, err)

	require.True(t, ecdsa.Verify(&privKey.PublicKey, digest[:], decodedSig.R, decodedSig.S))
}

func TestZeroHashSignature(t *testing.T) {
	zeros := make([]byte, 64)

	for name, fx := range testCurves(t) {
		t.Run(name, func(t *testing.T) {
			priv, err := ecdsa.GenerateKey(fx.curve, fx.g, rand.Reader)
			require.NoError(t, err)

			r, s, err := ecdsa.Sign(rand.Reader, priv, zeros)
			require.NoError(t, err)
			require.True(t, ecdsa.Verify(&priv.PublicKey, zeros, r, s))
		})
	}
}
