package field

import "math/big"

// FpField is a prime field GF(p). Grounded on the teacher's habit
// (ecdsa/field.go, elliptic/koblitz.go) of carrying the modulus as a bare
// *big.Int and reducing after every arithmetic op rather than wrapping a
// Montgomery representation.
type FpField struct {
	p       *big.Int
	byteLen int
}

// NewFpField builds a prime field for modulus p. p must be prime; this is
// not verified (mirrors the teacher trusting CurveParams.P).
func NewFpField(p *big.Int) *FpField {
	byteLen := (p.BitLen() + 7) / 8
	return &FpField{p: new(big.Int).Set(p), byteLen: byteLen}
}

// P returns the field's modulus. The returned value must not be mutated.
func (f *FpField) P() *big.Int { return f.p }

// ByteLen is the fixed encoding width for elements of this field.
func (f *FpField) ByteLen() int { return f.byteLen }

// NewElement reduces x modulo p and wraps it as an Element.
func (f *FpField) NewElement(x *big.Int) *FpElement {
	v := new(big.Int).Mod(x, f.p)
	return &FpElement{field: f, v: v}
}

// FpElement is a value in a prime field, represented as a reduced
// *big.Int in [0, p).
type FpElement struct {
	field *FpField
	v     *big.Int
}

var _ Element = (*FpElement)(nil)

// checkField panics with a CurveMismatch-flavoured message when two
// elements don't share a modulus; per spec.md §7, Fp relies on this
// failing downstream rather than an explicit up-front curve check.
func (e *FpElement) checkField(b *FpElement) {
	if e.field.p.Cmp(b.field.p) != 0 {
		panic("field: mismatched prime fields")
	}
}

func (e *FpElement) Add(o Element) Element {
	b := o.(*FpElement)
	e.checkField(b)
	return e.field.NewElement(new(big.Int).Add(e.v, b.v))
}

func (e *FpElement) Subtract(o Element) Element {
	b := o.(*FpElement)
	e.checkField(b)
	return e.field.NewElement(new(big.Int).Sub(e.v, b.v))
}

func (e *FpElement) Multiply(o Element) Element {
	b := o.(*FpElement)
	e.checkField(b)
	return e.field.NewElement(new(big.Int).Mul(e.v, b.v))
}

func (e *FpElement) Square() Element {
	return e.field.NewElement(new(big.Int).Mul(e.v, e.v))
}

func (e *FpElement) Divide(o Element) Element {
	return e.Multiply(o.Invert())
}

func (e *FpElement) Invert() Element {
	if e.IsZero() {
		panic("field: inverse of zero")
	}
	// Fermat's little theorem, per the teacher's fermatInverse
	// (ecdsa/field.go) rather than math/big's extended-Euclid ModInverse.
	exp := new(big.Int).Sub(e.field.p, big.NewInt(2))
	return e.field.NewElement(new(big.Int).Exp(e.v, exp, e.field.p))
}

func (e *FpElement) Negate() Element {
	return e.field.NewElement(new(big.Int).Neg(e.v))
}

func (e *FpElement) AddOne() Element {
	return e.field.NewElement(new(big.Int).Add(e.v, big.NewInt(1)))
}

func (e *FpElement) IsZero() bool { return e.v.Sign() == 0 }

func (e *FpElement) TestBitZero() bool { return e.v.Bit(0) == 1 }

func (e *FpElement) BitLength() int { return e.v.BitLen() }

func (e *FpElement) Equals(o Element) bool {
	b, ok := o.(*FpElement)
	if !ok {
		return false
	}
	return e.field.p.Cmp(b.field.p) == 0 && e.v.Cmp(b.v) == 0
}

func (e *FpElement) ToBigInt() *big.Int { return new(big.Int).Set(e.v) }

func (e *FpElement) Encode() []byte {
	buf := make([]byte, e.field.ByteLen())
	src := e.v.Bytes()
	copy(buf[len(buf)-len(src):], src)
	return buf
}

// Field returns the element's parent field.
func (e *FpElement) Field() *FpField { return e.field }
