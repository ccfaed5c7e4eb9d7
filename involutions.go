package cliffgo

import (
	"math"
	"math/bits"
)

// negateWhere returns m with the coefficients of the blades whose grade
// satisfies neg negated.
func (m *Multivector[T]) negateWhere(neg func(grade int) bool) *Multivector[T] {
	r := m.alg.newMultivector()
	for i, v := range m.c {
		if neg(bits.OnesCount(uint(i))) {
			v = -v
		}
		r.c[i] = v
	}
	return r
}

// Reverse returns the reversion of m, negating grades 2 and 3 mod 4.
func (m *Multivector[T]) Reverse() *Multivector[T] {
	return m.negateWhere(func(g int) bool { return g%4 >= 2 })
}

// Conj returns the Clifford conjugate of m, negating grades 1 and 2 mod 4.
func (m *Multivector[T]) Conj() *Multivector[T] {
	return m.negateWhere(func(g int) bool { return g%4 == 1 || g%4 == 2 })
}

// Involute returns the grade involution of m, negating odd grades.
func (m *Multivector[T]) Involute() *Multivector[T] {
	return m.negateWhere(func(g int) bool { return g%2 == 1 })
}

// Dual maps each blade e_i to dualSign[i]·e_{~i}, so that e_i ∧ Dual(e_i) = I.
func (m *Multivector[T]) Dual() *Multivector[T] {
	signs := m.alg.table.DualSigns()
	last := len(m.c) - 1
	r := m.alg.newMultivector()
	for i, v := range m.c {
		if signs[i] < 0 {
			v = -v
		}
		r.c[last-i] = v
	}
	return r
}

// SquaredMagnitude returns the scalar part of m·Reverse(m).
func (m *Multivector[T]) SquaredMagnitude() T {
	// Only e_i·e_i lands on the scalar blade.
	var s T
	for i, v := range m.c {
		if v == 0 {
			continue
		}
		rv := v
		if g := bits.OnesCount(uint(i)); g%4 >= 2 {
			rv = -v
		}
		switch m.alg.table.Entry(uint64(i), uint64(i)).Sign {
		case 1:
			s += v * rv
		case -1:
			s -= v * rv
		}
	}
	return s
}

// Magnitude returns the square root of the absolute squared magnitude.
func (m *Multivector[T]) Magnitude() T {
	return T(math.Sqrt(math.Abs(float64(m.SquaredMagnitude()))))
}

// Normalized returns m divided by the square root of its squared magnitude.
// A negative or zero squared magnitude yields NaN or Inf coefficients.
func (m *Multivector[T]) Normalized() *Multivector[T] {
	return m.DivScalar(T(math.Sqrt(float64(m.SquaredMagnitude()))))
}

// Inverse returns Reverse(m) / SquaredMagnitude(m). This is the inverse of
// versors; for a zero squared magnitude the result follows IEEE-754.
func (m *Multivector[T]) Inverse() *Multivector[T] {
	return m.Reverse().DivScalar(m.SquaredMagnitude())
}

// TryInverse is Inverse that fails with ErrNotInvertible instead of
// producing non-finite coefficients.
func (m *Multivector[T]) TryInverse() (*Multivector[T], error) {
	sm := m.SquaredMagnitude()
	if sm == 0 || math.IsNaN(float64(sm)) {
		return nil, ErrNotInvertible
	}
	return m.Reverse().DivScalar(sm), nil
}
