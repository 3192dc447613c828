package ecdsa

import (
	"errors"
	"math/big"

	"github.com/sammy00/ecpoint/ec"
	"github.com/sammy00/ecpoint/misc"
)

const (
	pubKeyCompressed   byte = 0x02 // prefix of the compressed pubkey: y bit + x coord
	pubKeyUncompressed byte = 0x04 // prefix of the uncompressed pubkey: x_coord + y_coord
)

// PublicKeyCompressor specifies the compression/uncompression interface for
// our ecdsa.PublicKey
type PublicKeyCompressor interface {
	// Compress returns a byte slice representing the compression of the
	// receiver (i.e., a PublicKey) for transmission, usually of the same
	// concrete type.
	Compress() ([]byte, error)
	// Decompress overwrites the receiver, which must be a pointer,
	// by parsing the value represented by the byte slice, which was written
	// by Compress(), usually for the same concrete type,
	// and the curve will be initialised with the ec.Curve provided
	Decompress(ec.Curve, []byte) error
}

// PublicKeyParser specifies a parser for public key,
// which can take in a byte sequence corresponding to some compressed
// or uncompressed public key
type PublicKeyParser interface {
	// Parse overwrites the receiver, which must be a pointer,
	// by parsing the value represented by the byte slice, which was written
	// by PublicKeyCompressor.Compress() or
	// PublicKeyUncompressedCodec.UncompressedEncode, usually for the
	// same concrete type.
	// And the curve of the receiver will be initialised with the ec.Curve
	// provided, which helps validate the parsed point is on the curve
	Parse(ec.Curve, []byte) error
}

// PublicKeyUncompressedCodec specifies a common api for encoding/decoding
// ecdsa.PublicKey into uncompressed form
type PublicKeyUncompressedCodec interface {
	// UncompressedEncode returns a byte slice representing the EC point of the
	// receiver (i.e., a PublicKey) for transmission, usually of the same
	// concrete type.
	UncompressedEncode() ([]byte, error)
	// UncompressedDecode overwrites the receiver, which must be a pointer,
	// by parsing the value represented by the byte slice, which was written
	// by UncompressedEncode(), usually for the same concrete type.
	// And the curve of the receiver will be initialised with the ec.Curve
	// provided
	UncompressedDecode(ec.Curve, []byte) error
}

// IsPublicKeyCompressed checks if a byte sequence representing a public key
// is in compressed form. Unlike the teacher's fixed 33-byte check, curves
// in this module vary in field byte length (secp256k1/P-256 are 32 bytes,
// sect233k1 is 30), so only the tag byte is examined here.
func IsPublicKeyCompressed(pubKey []byte) bool {
	return len(pubKey) > 0 && (pubKey[0]&0xfe) == pubKeyCompressed
}

// DecompressPoint estimates the Y coordinate for the given X coordinate
// over a given prime-field curve. F2m has no single modulus to root
// against, so unlike the rest of this package, decompression remains
// Fp-only, exactly as the teacher's DecompressPoint was Koblitz-only.
func DecompressPoint(curve *ec.FpCurve, x *big.Int, yOdd bool) (*big.Int, error) {
	p := curve.Modulus()

	// y = +-sqrt(x^3+ax+b)
	x3 := new(big.Int).Mul(x, x)
	x3.Mul(x3, x)
	ax := new(big.Int).Mul(curve.A().ToBigInt(), x)
	x3.Add(x3, ax)
	x3.Add(x3, curve.B().ToBigInt())
	x3.Mod(x3, p) // normalize x3

	y := new(big.Int).ModSqrt(x3, p)
	if y == nil {
		return nil, errors.New("x is not on the curve")
	}

	if misc.IsOdd(y) != yOdd {
		y.Sub(p, y)
	}
	if misc.IsOdd(y) != yOdd {
		return nil, errors.New("oddness of y is wrong")
	}

	return y, nil
}
