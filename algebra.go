package cliffgo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hupe1980/cliffgo/cayley"
	"github.com/hupe1980/cliffgo/signature"
)

// Float is the scalar type of a multivector.
type Float interface {
	~float32 | ~float64
}

// InnerFunc is an inner product resolved from a signature's style.
type InnerFunc[T Float] func(a, b *Multivector[T]) *Multivector[T]

// Algebra is a Clifford algebra over T. It holds the shared Cayley table of
// its signature and creates multivectors.
//
// An Algebra is immutable and safe for concurrent use.
type Algebra[T Float] struct {
	sig    signature.Signature
	table  *cayley.Table
	layout *signature.Layout
	inner  InnerFunc[T] // nil for NoImplicitInner
	blades int
}

// New resolves the Cayley table of sig and returns the algebra.
//
// Tables are memoized per signature: the first algebra of a signature pays
// for the build, later ones share the table.
func New[T Float](sig signature.Signature, opts ...Option) (*Algebra[T], error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	key := sig.Key()

	start := time.Now()
	table, built, err := o.registry.Fetch(o.ctx, sig)
	d := time.Since(start)
	blades := int(sig.BladeCount())
	switch {
	case err != nil && built:
		o.metricsCollector.RecordTableBuild(key, blades, d, err)
		o.logger.LogTableBuild(o.ctx, key, blades, d, err)
		return nil, fmt.Errorf("algebra %s: %w", key, err)
	case err != nil:
		// Rejected before building, or a shared build started by another
		// caller failed; that caller records the build.
		o.logger.LogTableUnavailable(o.ctx, key, err)
		return nil, fmt.Errorf("algebra %s: %w", key, err)
	case built:
		o.metricsCollector.RecordTableBuild(key, blades, d, nil)
		o.logger.LogTableBuild(o.ctx, key, blades, d, nil)
	default:
		o.metricsCollector.RecordTableHit(key)
		o.logger.LogTableHit(o.ctx, key)
	}

	layout, err := signature.NewLayout(sig.VectorCount())
	if err != nil {
		return nil, err
	}

	a := &Algebra[T]{
		sig:    sig,
		table:  table,
		layout: layout,
		blades: blades,
	}
	a.inner = resolveInner[T](sig.Inner)
	return a, nil
}

// MustNew is like New but panics on error.
func MustNew[T Float](sig signature.Signature, opts ...Option) *Algebra[T] {
	a, err := New[T](sig, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// LoadTable installs a table snapshot into the registry used by opts, so
// that New does not rebuild it.
func LoadTable(ctx context.Context, r io.Reader, opts ...Option) (signature.Signature, error) {
	o := applyOptions(opts)
	start := time.Now()
	t, err := o.registry.Load(ctx, r)
	d := time.Since(start)
	if err != nil {
		o.metricsCollector.RecordTableLoad("", d, err)
		o.logger.LogTableLoad(ctx, "", d, err)
		return signature.Signature{}, err
	}
	key := t.Signature().Key()
	o.metricsCollector.RecordTableLoad(key, d, nil)
	o.logger.LogTableLoad(ctx, key, d, nil)
	return t.Signature(), nil
}

// resolveInner maps an inner product style to its product. It returns nil
// for NoImplicitInner.
func resolveInner[T Float](style signature.InnerProduct) InnerFunc[T] {
	switch style {
	case signature.LeftContraction:
		return (*Multivector[T]).LeftContraction
	case signature.RightContraction:
		return (*Multivector[T]).RightContraction
	case signature.Bidirectional:
		return (*Multivector[T]).BidirectionalInner
	default:
		return nil
	}
}

// Signature returns the signature of the algebra.
func (a *Algebra[T]) Signature() signature.Signature { return a.sig }

// Table returns the shared Cayley table.
func (a *Algebra[T]) Table() *cayley.Table { return a.table }

// Layout returns the blade naming order.
func (a *Algebra[T]) Layout() *signature.Layout { return a.layout }

// VectorCount returns the number of basis vectors.
func (a *Algebra[T]) VectorCount() int { return a.sig.VectorCount() }

// GradeCount returns the number of grades.
func (a *Algebra[T]) GradeCount() int { return a.sig.GradeCount() }

// BladeCount returns the number of coefficients of a multivector.
func (a *Algebra[T]) BladeCount() int { return a.blades }

// BladeName returns the name of blade i, such as "1" or "e01".
func (a *Algebra[T]) BladeName(i uint64) string {
	a.checkIndex(i)
	return a.layout.Name(i)
}

// InnerProduct returns the inner product selected by the signature when the
// algebra was created. It is the only way to reach the implicit inner
// product; for signature.NoImplicitInner it fails with an *UnsupportedError.
func (a *Algebra[T]) InnerProduct() (InnerFunc[T], error) {
	if a.inner == nil {
		return nil, &UnsupportedError{Op: "implicit inner product", Signature: a.sig}
	}
	return a.inner, nil
}

// compatible reports whether multivectors of a and b may be combined.
func (a *Algebra[T]) compatible(b *Algebra[T]) bool {
	return a == b || a.sig.SameMetric(b.sig)
}

func (a *Algebra[T]) checkIndex(i uint64) {
	if i >= uint64(a.blades) {
		panic(&OutOfRangeError{Index: i, Limit: uint64(a.blades)})
	}
}

// Zero returns the zero multivector.
func (a *Algebra[T]) Zero() *Multivector[T] {
	return a.newMultivector()
}

// Scalar returns the multivector v·1.
func (a *Algebra[T]) Scalar(v T) *Multivector[T] {
	m := a.newMultivector()
	m.c[0] = v
	return m
}

// FromCoefficients returns a multivector with the given coefficients in
// ascending blade index order. Missing trailing coefficients are zero; more
// than BladeCount values panic with an *OutOfRangeError.
func (a *Algebra[T]) FromCoefficients(c ...T) *Multivector[T] {
	if len(c) > a.blades {
		panic(&OutOfRangeError{Index: uint64(len(c) - 1), Limit: uint64(a.blades)})
	}
	m := a.newMultivector()
	copy(m.c, c)
	return m
}

// Basis returns the basis vector e_n, the blade with index 1<<n.
func (a *Algebra[T]) Basis(n int) *Multivector[T] {
	if n < 0 || n >= a.sig.VectorCount() {
		panic(&OutOfRangeError{Index: uint64(n), Limit: uint64(a.sig.VectorCount())})
	}
	return a.Blade(uint64(1)<<uint(n), 1)
}

// Pseudoscalar returns the unit pseudoscalar I.
func (a *Algebra[T]) Pseudoscalar() *Multivector[T] {
	return a.Blade(a.sig.Pseudoscalar(), 1)
}

// Blade returns v·e_index.
func (a *Algebra[T]) Blade(index uint64, v T) *Multivector[T] {
	a.checkIndex(index)
	m := a.newMultivector()
	m.c[index] = v
	return m
}

func (a *Algebra[T]) newMultivector() *Multivector[T] {
	return &Multivector[T]{alg: a, c: make([]T, a.blades)}
}
