package ecdsa

import (
	"crypto"
	"encoding/asn1"
	"io"
	"math/big"

	"github.com/sammy00/ecpoint/ec"
)

// PrivateKey represents an ECDSA private key.
type PrivateKey struct {
	PublicKey
	D *big.Int // private scalar
}

// ecdsaSignature assists in marshaling the signature
type ecdsaSignature struct {
	R, S *big.Int
}

// Public returns the public key corresponding to priv.
func (priv *PrivateKey) Public() crypto.PublicKey {
	return &priv.PublicKey
}

// Sign signs digest with priv, reading randomness from rand. The opts argument
// is not currently used but, in keeping with the crypto.Signer interface,
// should be the hash function used to digest the message.
//
// This method implements crypto.Signer, which is an interface to support keys
// where the private part is kept in, for example, a hardware module. Common
// uses should use the Sign function in this package directly.
func (priv *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	r, s, err := Sign(rand, priv, digest)
	if err != nil {
		return nil, err
	}

	return asn1.Marshal(ecdsaSignature{r, s})
}

// GenerateKey generates a public and private key pair on c, whose base
// point is g. ec.Curve carries no generator of its own, so g must be
// supplied explicitly, e.g. from one of package curves' *Generator helpers;
// it is retained on the resulting PublicKey for later Sign/Verify calls.
func GenerateKey(c ec.Curve, g *ec.Point, rand io.Reader) (*PrivateKey, error) {
	k, err := randFieldElement(c, rand)
	if err != nil {
		return nil, err
	}

	pub, err := g.Multiply(k)
	if err != nil {
		return nil, err
	}
	n, err := pub.Normalize()
	if err != nil {
		return nil, err
	}
	affX, err := n.AffineXCoord()
	if err != nil {
		return nil, err
	}
	affY, err := n.AffineYCoord()
	if err != nil {
		return nil, err
	}

	priv := new(PrivateKey)
	priv.PublicKey.Curve = c
	priv.PublicKey.G = g
	priv.PublicKey.X = affX.ToBigInt()
	priv.PublicKey.Y = affY.ToBigInt()
	priv.D = k

	return priv, nil
}

// Sign signs a hash (which should be the result of hashing a larger message)
// using the private key, priv. If the hash is longer than the bit-length of
// the private key's curve order, the hash will be truncated to that length.
// It returns the signature as a pair of integers. The security of the
// private key depends on the entropy of rand.
func Sign(rand io.Reader, priv *PrivateKey, hash []byte) (r, s *big.Int, err error) {
	c := priv.PublicKey.Curve
	g := priv.PublicKey.G
	N := c.Order()

	var k, kInv *big.Int
	for {
		for {
			k, err = randFieldElement(c, rand)
			if err != nil {
				r, s = nil, nil
				return
			}

			kInv = fermatInverse(k, N)

			kG, err2 := g.Multiply(k)
			if err2 != nil {
				err = err2
				r, s = nil, nil
				return
			}
			if kG, err2 = kG.Normalize(); err2 != nil {
				err = err2
				r, s = nil, nil
				return
			}
			affX, err2 := kG.AffineXCoord()
			if err2 != nil {
				err = err2
				r, s = nil, nil
				return
			}

			r = new(big.Int).Mod(affX.ToBigInt(), N)
			if r.Sign() != 0 {
				break
			}
		}

		// e = H(m)
		e := hashToInt(hash, c)
		// s = k^{-1}*(e+r*d)
		s = new(big.Int).Mul(priv.D, r)
		s.Add(s, e)
		s.Mul(s, kInv)
		s.Mod(s, N)

		if s.Sign() != 0 {
			break
		}
	}

	return r, s, nil
}

// Verify verifies the signature in r, s of hash using the public key, pub.
// Its return value records whether the signature is valid. pub.G must be
// set (GenerateKey sets it; Decompress, UncompressedDecode and Parse leave
// it for the caller to fill in when reconstructing a key from the wire).
func Verify(pub *PublicKey, hash []byte, r, s *big.Int) bool {
	c := pub.Curve
	g := pub.G
	N := c.Order()

	// ensure r,s in [1,n-1]
	if r.Sign() <= 0 || s.Sign() <= 0 {
		return false
	}
	if r.Cmp(N) >= 0 || s.Cmp(N) >= 0 {
		return false
	}

	Q, err := pub.point()
	if err != nil {
		return false
	}

	// e = H(m)
	e := hashToInt(hash, c)
	// w = s^{-1}
	w := new(big.Int).ModInverse(s, N)
	// u1 = e*w
	u1 := new(big.Int).Mul(e, w)
	u1.Mod(u1, N)
	// u2 = r*w
	u2 := new(big.Int).Mul(r, w)
	u2.Mod(u2, N)

	p1, err := g.Multiply(u1)
	if err != nil {
		return false
	}
	p2, err := Q.Multiply(u2)
	if err != nil {
		return false
	}

	sum, err := p1.Add(p2)
	if err != nil {
		return false
	}
	if sum.IsInfinity() {
		return false
	}

	sum, err = sum.Normalize()
	if err != nil {
		return false
	}
	affX, err := sum.AffineXCoord()
	if err != nil {
		return false
	}

	x := new(big.Int).Mod(affX.ToBigInt(), N)
	return x.Cmp(r) == 0
}
