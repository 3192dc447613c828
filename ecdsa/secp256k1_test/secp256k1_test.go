// Package secp256k1_test cross-checks the local ECDSA/secp256k1 stack
// against two independent implementations of the same curve. Interop goes
// through the same wire formats the libraries already agree on: SEC1
// uncompressed points and ASN.1 DER signatures, never a library's internal
// field-element representation.
package secp256k1_test

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/asn1"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decredecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"

	"github.com/sammy00/ecpoint/curves"
	"github.com/sammy00/ecpoint/ecdsa"
)

// derSignature mirrors the unexported ecdsaSignature the ecdsa package
// marshals with, for unpacking a foreign library's DER bytes.
type derSignature struct {
	R, S *big.Int
}

func localKeyPair(t *testing.T) (*ecdsa.PrivateKey, *ecdsa.PublicKey) {
	t.Helper()
	c := curves.Secp256K1()
	g, err := curves.Secp256K1Generator(c)
	require.NoError(t, err)

	priv, err := ecdsa.GenerateKey(c, g, rand.Reader)
	require.NoError(t, err)
	return priv, &priv.PublicKey
}

// TestSecp256k1LocalAgainstDecred checks that a signature produced by the
// decred secp256k1 implementation verifies against the local public key
// reconstructed from the same SEC1 uncompressed bytes.
func TestSecp256k1LocalAgainstDecred(t *testing.T) {
	c := curves.Secp256K1()
	g, err := curves.Secp256K1Generator(c)
	require.NoError(t, err)

	privForeign, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)

	msg := "test message"
	digest := sha256.Sum256([]byte(msg))

	sig := decredecdsa.Sign(privForeign, digest[:])
	der := sig.Serialize()

	var parsed derSignature
	_, err = asn1.Unmarshal(der, &parsed)
	require.NoError(t, err)

	pubLocal := new(ecdsa.PublicKey)
	require.NoError(t, pubLocal.UncompressedDecode(c, privForeign.PubKey().SerializeUncompressed()))
	pubLocal.G = g

	require.True(t, ecdsa.Verify(pubLocal, digest[:], parsed.R, parsed.S),
		"signature by decred secp256k1 cannot be verified by the local ECDSA package")
}

// TestSecp256k1LocalAgainstBTC checks the same round trip against
// btcsuite's btcec/v2, an independent implementation built atop decred's.
func TestSecp256k1LocalAgainstBTC(t *testing.T) {
	c := curves.Secp256K1()
	g, err := curves.Secp256K1Generator(c)
	require.NoError(t, err)

	privForeign, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	msg := "test message"
	digest := sha256.Sum256([]byte(msg))

	sig := btcecdsa.Sign(privForeign, digest[:])
	der := sig.Serialize()

	var parsed derSignature
	_, err = asn1.Unmarshal(der, &parsed)
	require.NoError(t, err)

	pubLocal := new(ecdsa.PublicKey)
	require.NoError(t, pubLocal.UncompressedDecode(c, privForeign.PubKey().SerializeUncompressed()))
	pubLocal.G = g

	require.True(t, ecdsa.Verify(pubLocal, digest[:], parsed.R, parsed.S),
		"signature by btcec/v2 cannot be verified by the local ECDSA package")
}

// TestSecp256k1DecredAgainstLocal checks the reverse direction: a
// signature produced locally verifies against decred's independent
// implementation, again crossing only at SEC1/DER boundaries.
func TestSecp256k1DecredAgainstLocal(t *testing.T) {
	priv, pub := localKeyPair(t)

	msg := "test message"
	digest := sha256.Sum256([]byte(msg))

	r, s, err := ecdsa.Sign(rand.Reader, priv, digest[:])
	require.NoError(t, err)

	der, err := asn1.Marshal(derSignature{r, s})
	require.NoError(t, err)

	sigForeign, err := decredecdsa.ParseDERSignature(der)
	require.NoError(t, err)

	uncompressed, err := pub.UncompressedEncode()
	require.NoError(t, err)
	pubForeign, err := secp256k1.ParsePubKey(uncompressed)
	require.NoError(t, err)

	require.True(t, sigForeign.Verify(digest[:], pubForeign),
		"signature by the local ECDSA package cannot be verified by decred secp256k1")
}
