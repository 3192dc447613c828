package field

import "math/big"

// F2mField is a binary field GF(2^m) defined by an irreducible reduction
// polynomial, either a trinomial (x^m + x^k + 1) or a pentanomial
// (x^m + x^k3 + x^k2 + x^k1 + 1). No GF(2^m) arithmetic library turned up
// anywhere in the retrieval pack (every curve example there is a prime-field
// curve), so this implements carry-less polynomial arithmetic directly on
// *big.Int bit containers: Add is Xor, Multiply/Square are shift-and-xor
// with top-down reduction, and Invert is the polynomial extended-Euclid
// algorithm. There is no ecosystem shortcut to defer to here.
type F2mField struct {
	m       int
	poly    *big.Int // reduction polynomial, bit m .. bit 0, all set bits included
	byteLen int
}

// NewTrinomialF2mField builds GF(2^m) reduced by x^m + x^k + 1.
func NewTrinomialF2mField(m, k int) *F2mField {
	poly := new(big.Int).SetBit(new(big.Int), m, 1)
	poly.SetBit(poly, k, 1)
	poly.SetBit(poly, 0, 1)
	return &F2mField{m: m, poly: poly, byteLen: (m + 7) / 8}
}

// NewPentanomialF2mField builds GF(2^m) reduced by x^m + x^k3 + x^k2 + x^k1 + 1.
func NewPentanomialF2mField(m, k1, k2, k3 int) *F2mField {
	poly := new(big.Int).SetBit(new(big.Int), m, 1)
	poly.SetBit(poly, k3, 1)
	poly.SetBit(poly, k2, 1)
	poly.SetBit(poly, k1, 1)
	poly.SetBit(poly, 0, 1)
	return &F2mField{m: m, poly: poly, byteLen: (m + 7) / 8}
}

// M is the field's extension degree.
func (f *F2mField) M() int { return f.m }

// ByteLen is the fixed encoding width for elements of this field.
func (f *F2mField) ByteLen() int { return f.byteLen }

// NewElement reduces x modulo the field's irreducible polynomial.
func (f *F2mField) NewElement(x *big.Int) *F2mElement {
	return &F2mElement{field: f, v: f.reduce(x)}
}

func (f *F2mField) reduce(x *big.Int) *big.Int {
	r := new(big.Int).Set(x)
	for d := r.BitLen() - 1; d >= f.m; d = r.BitLen() - 1 {
		r.Xor(r, new(big.Int).Lsh(f.poly, uint(d-f.m)))
	}
	return r
}

func mulNoReduce(a, b *big.Int) *big.Int {
	res := new(big.Int)
	for i := 0; i < a.BitLen(); i++ {
		if a.Bit(i) == 1 {
			res.Xor(res, new(big.Int).Lsh(b, uint(i)))
		}
	}
	return res
}

func squareNoReduce(a *big.Int) *big.Int {
	res := new(big.Int)
	for i := 0; i < a.BitLen(); i++ {
		if a.Bit(i) == 1 {
			res.SetBit(res, 2*i, 1)
		}
	}
	return res
}

// invert runs the polynomial extended-Euclidean algorithm over GF(2)[x]
// to find a^-1 mod poly.
func (f *F2mField) invert(a *big.Int) *big.Int {
	u := new(big.Int).Set(a)
	v := new(big.Int).Set(f.poly)
	g1 := big.NewInt(1)
	g2 := new(big.Int)

	for u.BitLen() != 1 {
		j := u.BitLen() - v.BitLen()
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		u.Xor(u, new(big.Int).Lsh(v, uint(j)))
		g1.Xor(g1, new(big.Int).Lsh(g2, uint(j)))
	}
	return g1
}

// F2mElement is a value in a binary field, represented as the bit vector
// of its polynomial coefficients.
type F2mElement struct {
	field *F2mField
	v     *big.Int
}

var _ Element = (*F2mElement)(nil)

func (e *F2mElement) checkField(b *F2mElement) {
	if e.field != b.field && (e.field.m != b.field.m || e.field.poly.Cmp(b.field.poly) != 0) {
		panic("field: mismatched binary fields")
	}
}

// Add and Subtract are identical over a characteristic-2 field.
func (e *F2mElement) Add(o Element) Element {
	b := o.(*F2mElement)
	e.checkField(b)
	return e.field.NewElement(new(big.Int).Xor(e.v, b.v))
}

func (e *F2mElement) Subtract(o Element) Element { return e.Add(o) }

func (e *F2mElement) Multiply(o Element) Element {
	b := o.(*F2mElement)
	e.checkField(b)
	return e.field.NewElement(mulNoReduce(e.v, b.v))
}

func (e *F2mElement) Square() Element {
	return e.field.NewElement(squareNoReduce(e.v))
}

func (e *F2mElement) Divide(o Element) Element {
	return e.Multiply(o.Invert())
}

func (e *F2mElement) Invert() Element {
	if e.IsZero() {
		panic("field: inverse of zero")
	}
	return e.field.NewElement(e.field.invert(e.v))
}

// Negate is the identity over characteristic 2.
func (e *F2mElement) Negate() Element { return e }

func (e *F2mElement) AddOne() Element {
	return e.field.NewElement(new(big.Int).Xor(e.v, big.NewInt(1)))
}

func (e *F2mElement) IsZero() bool { return e.v.Sign() == 0 }

func (e *F2mElement) TestBitZero() bool { return e.v.Bit(0) == 1 }

func (e *F2mElement) BitLength() int { return e.v.BitLen() }

func (e *F2mElement) Equals(o Element) bool {
	b, ok := o.(*F2mElement)
	if !ok {
		return false
	}
	return e.field.m == b.field.m && e.field.poly.Cmp(b.field.poly) == 0 && e.v.Cmp(b.v) == 0
}

func (e *F2mElement) ToBigInt() *big.Int { return new(big.Int).Set(e.v) }

func (e *F2mElement) Encode() []byte {
	buf := make([]byte, e.field.ByteLen())
	src := e.v.Bytes()
	copy(buf[len(buf)-len(src):], src)
	return buf
}

// Field returns the element's parent field.
func (e *F2mElement) Field() *F2mField { return e.field }
