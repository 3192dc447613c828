// Package multiplier implements the ECPointMultiplier seam declared in
// package ec (spec.md §6): scalar-multiplication strategies that consume
// only the public Point operations ec exposes.
//
// Basic is a left-to-right double-and-add walk over the bits of k,
// grounded on the teacher's KoblitzCurve.ScalarMult loop
// (elliptic/koblitz.go) but reworked to operate through ec.Point's
// Twice/Add instead of raw Jacobian *big.Int triples.
package multiplier

import (
	"math/big"

	"github.com/sammy00/ecpoint/ec"
)

// Basic is the simplest ECPointMultiplier: one doubling per bit of k,
// plus one addition per set bit. It makes no attempt at constant time or
// windowing; it exists as the baseline every other multiplier is
// measured against.
type Basic struct{}

var _ ec.ECPointMultiplier = Basic{}

// Multiply computes k*p by double-and-add over k's bits, most
// significant first, mirroring the teacher's byte-then-bit ScalarMult
// loop.
func (Basic) Multiply(p *ec.Point, k *big.Int) (*ec.Point, error) {
	if k.Sign() == 0 || p.IsInfinity() {
		return p.Curve().Infinity(), nil
	}

	neg := k.Sign() < 0
	kAbs := new(big.Int).Abs(k)

	r := p.Curve().Infinity()
	for i := kAbs.BitLen() - 1; i >= 0; i-- {
		var err error
		r, err = r.Twice()
		if err != nil {
			return nil, err
		}
		if kAbs.Bit(i) == 1 {
			r, err = r.Add(p)
			if err != nil {
				return nil, err
			}
		}
	}

	if neg {
		return r.Negate()
	}
	return r, nil
}
