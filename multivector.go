package cliffgo

import (
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/cliffgo/signature"
)

// Multivector is a dense element of an Algebra: one coefficient per blade,
// indexed by blade bit pattern.
//
// Operations return new values; only the setters mutate the receiver. A
// Multivector is not safe for concurrent mutation.
type Multivector[T Float] struct {
	alg *Algebra[T]
	c   []T
}

// Algebra returns the algebra m belongs to.
func (m *Multivector[T]) Algebra() *Algebra[T] { return m.alg }

// Signature returns the signature of m's algebra.
func (m *Multivector[T]) Signature() signature.Signature { return m.alg.sig }

// ScalarPart returns the grade-0 coefficient.
func (m *Multivector[T]) ScalarPart() T { return m.c[0] }

// SetScalar sets the grade-0 coefficient.
func (m *Multivector[T]) SetScalar(v T) { m.c[0] = v }

// Coefficient returns the coefficient of blade i.
func (m *Multivector[T]) Coefficient(i uint64) T {
	m.alg.checkIndex(i)
	return m.c[i]
}

// SetCoefficient sets the coefficient of blade i.
func (m *Multivector[T]) SetCoefficient(i uint64, v T) {
	m.alg.checkIndex(i)
	m.c[i] = v
}

// Coefficients returns a copy of all coefficients in blade index order.
func (m *Multivector[T]) Coefficients() []T { return slices.Clone(m.c) }

// Clone returns an independent copy of m.
func (m *Multivector[T]) Clone() *Multivector[T] {
	return &Multivector[T]{alg: m.alg, c: slices.Clone(m.c)}
}

// IsZero reports whether every coefficient is zero.
func (m *Multivector[T]) IsZero() bool {
	for _, v := range m.c {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports exact coefficient-wise equality.
func (m *Multivector[T]) Equal(o *Multivector[T]) bool {
	m.mustMatch(o)
	return slices.Equal(m.c, o.c)
}

// ApproxEqual reports whether every coefficient differs by at most eps.
func (m *Multivector[T]) ApproxEqual(o *Multivector[T], eps T) bool {
	m.mustMatch(o)
	for i, v := range m.c {
		if math.Abs(float64(v-o.c[i])) > float64(eps) {
			return false
		}
	}
	return true
}

// GradeProjection returns the part of m of grade g.
func (m *Multivector[T]) GradeProjection(g int) *Multivector[T] {
	if g < 0 || g >= m.alg.sig.GradeCount() {
		panic(&InvalidGradeError{Grade: g, GradeCount: m.alg.sig.GradeCount()})
	}
	r := m.alg.newMultivector()
	for i := range m.alg.table.BladesOfGrade(g) {
		r.c[i] = m.c[i]
	}
	return r
}

// Grades returns the grades with at least one nonzero coefficient, ascending.
func (m *Multivector[T]) Grades() []int {
	nz := roaring.New()
	for i, v := range m.c {
		if v != 0 {
			nz.Add(uint32(i))
		}
	}
	var grades []int
	for g := range m.alg.sig.GradeCount() {
		if m.alg.table.GradeIntersects(g, nz) {
			grades = append(grades, g)
		}
	}
	return grades
}

// Add returns m + o.
func (m *Multivector[T]) Add(o *Multivector[T]) *Multivector[T] {
	m.mustMatch(o)
	r := m.alg.newMultivector()
	for i, v := range m.c {
		r.c[i] = v + o.c[i]
	}
	return r
}

// Sub returns m - o.
func (m *Multivector[T]) Sub(o *Multivector[T]) *Multivector[T] {
	m.mustMatch(o)
	r := m.alg.newMultivector()
	for i, v := range m.c {
		r.c[i] = v - o.c[i]
	}
	return r
}

// AddScalar returns m + s.
func (m *Multivector[T]) AddScalar(s T) *Multivector[T] {
	r := m.Clone()
	r.c[0] += s
	return r
}

// SubScalar returns m - s.
func (m *Multivector[T]) SubScalar(s T) *Multivector[T] {
	r := m.Clone()
	r.c[0] -= s
	return r
}

// Scale returns s·m.
func (m *Multivector[T]) Scale(s T) *Multivector[T] {
	r := m.alg.newMultivector()
	for i, v := range m.c {
		r.c[i] = v * s
	}
	return r
}

// DivScalar returns m / s. Division by zero follows IEEE-754.
func (m *Multivector[T]) DivScalar(s T) *Multivector[T] {
	r := m.alg.newMultivector()
	for i, v := range m.c {
		r.c[i] = v / s
	}
	return r
}

// Neg returns -m.
func (m *Multivector[T]) Neg() *Multivector[T] {
	r := m.alg.newMultivector()
	for i, v := range m.c {
		r.c[i] = -v
	}
	return r
}

func (m *Multivector[T]) mustMatch(o *Multivector[T]) {
	if !m.alg.compatible(o.alg) {
		panic(&AlgebraMismatchError{Left: m.alg.sig.Key(), Right: o.alg.sig.Key()})
	}
}
