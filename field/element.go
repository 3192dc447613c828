// Package field abstracts the finite-field arithmetic an elliptic-curve
// point needs without committing to a prime field or a binary field.
//
// Field-element arithmetic itself (how add/multiply/invert are computed
// modulo a prime or an irreducible polynomial) is not this package's
// concern beyond the two reference implementations it ships; callers that
// need a different field representation only need to satisfy Element.
package field

import "math/big"

// Element is an immutable member of a finite field. Every operation
// returns a new Element; the receiver is never mutated.
type Element interface {
	// Add returns this + b.
	Add(b Element) Element
	// Subtract returns this - b. Over a characteristic-2 field this is
	// identical to Add.
	Subtract(b Element) Element
	// Multiply returns this * b.
	Multiply(b Element) Element
	// Square returns this * this.
	Square() Element
	// Divide returns this / b, i.e. this * b.Invert().
	Divide(b Element) Element
	// Invert returns the multiplicative inverse of this. Panics if
	// IsZero().
	Invert() Element
	// Negate returns -this.
	Negate() Element
	// AddOne returns this + 1.
	AddOne() Element
	// IsZero reports whether this is the additive identity.
	IsZero() bool
	// TestBitZero reports the low bit of the canonical representative.
	TestBitZero() bool
	// BitLength returns the bit length of the canonical representative.
	BitLength() int
	// Equals reports whether this and b are the same field element of
	// the same field.
	Equals(b Element) bool
	// ToBigInt returns the canonical representative as a big.Int. The
	// returned value must not be mutated by the caller.
	ToBigInt() *big.Int
	// Encode returns the canonical representative as fixed-width,
	// big-endian bytes; the width is ceil(fieldBitSize/8).
	Encode() []byte
}
