package signature

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cliffgo/internal/bitset"
)

// MaxVectors is the largest supported basis-vector count. Blade indices are
// uint64 and BladeCount must itself fit in a uint64.
const MaxVectors = 63

// ErrInvalidSignature is returned for negative counts or too many basis vectors.
var ErrInvalidSignature = errors.New("invalid signature")

// InnerProduct selects the contraction used by the implicit inner product.
type InnerProduct uint8

const (
	// LeftContraction projects the lower-grade operand onto the higher (Dorst).
	LeftContraction InnerProduct = iota
	// RightContraction is the mirror of LeftContraction.
	RightContraction
	// Bidirectional is the symmetric inner product used by Hestenes.
	Bidirectional
	// NoImplicitInner disables the implicit inner product for the algebra.
	NoImplicitInner
)

func (ip InnerProduct) String() string {
	switch ip {
	case LeftContraction:
		return "left"
	case RightContraction:
		return "right"
	case Bidirectional:
		return "bidirectional"
	case NoImplicitInner:
		return "none"
	default:
		return fmt.Sprintf("InnerProduct(%d)", uint8(ip))
	}
}

// ParseInnerProduct parses the names produced by InnerProduct.String.
func ParseInnerProduct(s string) (InnerProduct, error) {
	switch s {
	case "", "left":
		return LeftContraction, nil
	case "right":
		return RightContraction, nil
	case "bidirectional", "hestenes":
		return Bidirectional, nil
	case "none":
		return NoImplicitInner, nil
	default:
		return 0, fmt.Errorf("%w: unknown inner product %q", ErrInvalidSignature, s)
	}
}

// Signature is the immutable description of a Clifford algebra Cl(p,n,z).
type Signature struct {
	Positive int
	Negative int
	Zero     int
	Inner    InnerProduct
}

// Option configures a Signature.
type Option func(*Signature)

// WithInnerProduct sets the style used by the implicit inner product.
func WithInnerProduct(ip InnerProduct) Option {
	return func(s *Signature) {
		s.Inner = ip
	}
}

// New returns a validated signature.
func New(positive, negative, zero int, opts ...Option) (Signature, error) {
	s := Signature{Positive: positive, Negative: negative, Zero: zero}
	for _, opt := range opts {
		opt(&s)
	}
	if err := s.Validate(); err != nil {
		return Signature{}, err
	}
	return s, nil
}

// MustNew is like New but panics on an invalid signature.
func MustNew(positive, negative, zero int, opts ...Option) Signature {
	s, err := New(positive, negative, zero, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks the counts and the inner product style.
func (s Signature) Validate() error {
	if s.Positive < 0 || s.Negative < 0 || s.Zero < 0 {
		return fmt.Errorf("%w: negative count in %s", ErrInvalidSignature, s)
	}
	if n := s.Positive + s.Negative + s.Zero; n > MaxVectors {
		return fmt.Errorf("%w: %d basis vectors exceeds %d", ErrInvalidSignature, n, MaxVectors)
	}
	if s.Inner > NoImplicitInner {
		return fmt.Errorf("%w: %s", ErrInvalidSignature, s.Inner)
	}
	return nil
}

// VectorCount returns P+N+Z.
func (s Signature) VectorCount() int { return s.Positive + s.Negative + s.Zero }

// GradeCount returns VectorCount()+1.
func (s Signature) GradeCount() int { return s.VectorCount() + 1 }

// BladeCount returns 2^VectorCount().
func (s Signature) BladeCount() uint64 { return uint64(1) << uint(s.VectorCount()) }

// Pseudoscalar returns the index of the top-grade blade.
func (s Signature) Pseudoscalar() uint64 { return s.BladeCount() - 1 }

// Metric returns the square of basis vector i: +1, -1 or 0.
// It panics if i is not a basis vector of the algebra.
func (s Signature) Metric(i int) int {
	switch {
	case i < 0 || i >= s.VectorCount():
		panic(fmt.Errorf("%w: basis vector %d of %s", bitset.ErrOutOfRange, i, s))
	case i < s.Positive:
		return 1
	case i < s.Positive+s.Negative:
		return -1
	default:
		return 0
	}
}

// IsDegenerate reports whether any basis vector squares to zero.
func (s Signature) IsDegenerate() bool { return s.Zero > 0 }

// SameMetric reports whether s and o describe the same multiplication table,
// ignoring the inner product style.
func (s Signature) SameMetric(o Signature) bool {
	return s.Positive == o.Positive && s.Negative == o.Negative && s.Zero == o.Zero
}

// Key identifies the multiplication table of s. Signatures that differ only
// in their inner product style share a key.
func (s Signature) Key() string {
	return fmt.Sprintf("Cl(%d,%d,%d)", s.Positive, s.Negative, s.Zero)
}

func (s Signature) String() string {
	if s.Inner == LeftContraction {
		return s.Key()
	}
	return s.Key() + "/" + s.Inner.String()
}
