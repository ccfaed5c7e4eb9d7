package cliffgo

import (
	"fmt"

	"github.com/hupe1980/cliffgo/codec"
	"github.com/hupe1980/cliffgo/signature"
)

// wireMultivector is the serialized form of a multivector.
type wireMultivector[T Float] struct {
	Signature    string `json:"signature"`
	Coefficients []T    `json:"coefficients"`
}

// Encode serializes m with c. A nil codec selects codec.Default.
func (a *Algebra[T]) Encode(c codec.Codec, m *Multivector[T]) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	if !a.compatible(m.alg) {
		return nil, &AlgebraMismatchError{Left: a.sig.Key(), Right: m.alg.sig.Key()}
	}
	data, err := c.Marshal(wireMultivector[T]{
		Signature:    a.sig.Key(),
		Coefficients: m.c,
	})
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c.Name(), err)
	}
	return data, nil
}

// Decode parses data written by Encode. The encoded signature must have the
// metric of a, and the coefficient count must not exceed BladeCount.
func (a *Algebra[T]) Decode(c codec.Codec, data []byte) (*Multivector[T], error) {
	if c == nil {
		c = codec.Default
	}
	var w wireMultivector[T]
	if err := c.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.Name(), err)
	}
	sig, err := signature.Parse(w.Signature)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if !sig.SameMetric(a.sig) {
		return nil, &AlgebraMismatchError{Left: a.sig.Key(), Right: sig.Key()}
	}
	if len(w.Coefficients) > a.blades {
		return nil, &OutOfRangeError{Index: uint64(len(w.Coefficients) - 1), Limit: uint64(a.blades)}
	}
	return a.FromCoefficients(w.Coefficients...), nil
}
