package ecdsa

import (
	"errors"
	"math/big"

	"github.com/sammy00/ecpoint/ec"
)

// PublicKey represents an ECDSA public key. G is the curve's base point:
// ec.Curve deliberately carries no generator of its own (unlike the
// teacher's elliptic.CurveParams, which bundles Gx/Gy), so it travels here
// instead, mirroring how the teacher's CurveParams is embedded alongside
// the curve rather than looked up from a registry.
type PublicKey struct {
	Curve ec.Curve
	G     *ec.Point
	X, Y  *big.Int
}

// point reconstructs and validates the underlying ec.Point from X, Y.
func (pub *PublicKey) point() (*ec.Point, error) {
	return pub.Curve.CreatePoint(pub.Curve.FromBigInt(pub.X), pub.Curve.FromBigInt(pub.Y))
}

// Compress the public key into a byte sequence, delegating to the SEC1
// encoder in package ec rather than re-deriving the byte layout here.
func (pub *PublicKey) Compress() ([]byte, error) {
	p, err := pub.point()
	if err != nil {
		return nil, err
	}
	return p.GetEncoded(true)
}

// Decompress reads in the curve and data to initialise the public key.
// Point decompression is Fp-only (see DecompressPoint).
func (pub *PublicKey) Decompress(curve ec.Curve, data []byte) error {
	fpCurve, ok := curve.(*ec.FpCurve)
	if !ok {
		return errors.New("point decompression is only supported over prime-field curves")
	}

	byteLen := curve.ByteLen()
	if len(data) != 1+byteLen {
		return errors.New("Invalid data length")
	}
	if (data[0] & 0xfe) != pubKeyCompressed {
		return errors.New("Invalid format tag")
	}
	yOdd := (data[0] & 0x01) == 0x01

	x := new(big.Int).SetBytes(data[1:])
	y, err := DecompressPoint(fpCurve, x, yOdd)
	if err != nil {
		return err
	}

	pub.Curve = curve
	pub.X, pub.Y = x, y

	return nil
}

// UncompressedDecode populates pub by decoding the given data over the
// given curve.
func (pub *PublicKey) UncompressedDecode(curve ec.Curve, data []byte) error {
	byteLen := curve.ByteLen()
	if len(data) != 1+2*byteLen {
		return errors.New("Invalid data length")
	}
	if pubKeyUncompressed != (data[0] & 0xfe) {
		return errors.New("Invalid format tag")
	}

	pub.Curve = curve
	pub.X = new(big.Int).SetBytes(data[1 : 1+byteLen])
	pub.Y = new(big.Int).SetBytes(data[1+byteLen:])

	return nil
}

// UncompressedEncode encodes the public key into a byte sequence in the
// uncompressed form.
func (pub *PublicKey) UncompressedEncode() ([]byte, error) {
	p, err := pub.point()
	if err != nil {
		return nil, err
	}
	return p.GetEncoded(false)
}

// Parse parses the given data over the curve to populate the public key
// as receiver.
func (pub *PublicKey) Parse(curve ec.Curve, data []byte) error {
	if len(data) < 1+curve.ByteLen() {
		return errors.New("Invalid data length")
	}

	var err error
	switch data[0] & 0xfe {
	case pubKeyCompressed:
		err = pub.Decompress(curve, data)
	case pubKeyUncompressed:
		err = pub.UncompressedDecode(curve, data)
	default:
		err = errors.New("Invalid format tag")
	}
	if err != nil {
		return err
	}

	if _, err = pub.point(); err != nil {
		return errors.New("The parsed point is off curve")
	}

	return nil
}
