package cliffgo

import "github.com/hupe1980/cliffgo/cayley"

// accumulate adds sign·x·y to r[blade].
func accumulate[T Float](r []T, e cayley.Entry, x, y T) {
	switch e.Sign {
	case 1:
		r[e.Blade] += x * y
	case -1:
		r[e.Blade] -= x * y
	}
}

// product sums the table entries of every pair of nonzero coefficients
// accepted by keep.
func (m *Multivector[T]) product(o *Multivector[T], keep func(i, j uint64) bool) *Multivector[T] {
	m.mustMatch(o)
	r := m.alg.newMultivector()
	for i, x := range m.c {
		if x == 0 {
			continue
		}
		row := m.alg.table.Row(uint64(i))
		for j, y := range o.c {
			if y == 0 || !keep(uint64(i), uint64(j)) {
				continue
			}
			accumulate(r.c, row[j], x, y)
		}
	}
	return r
}

func all(uint64, uint64) bool { return true }

// Mul returns the geometric product m·o.
func (m *Multivector[T]) Mul(o *Multivector[T]) *Multivector[T] {
	return m.product(o, all)
}

// LeftContraction returns m ⌋ o: the pairs whose left blade is contained in
// the right blade, landing on their difference.
func (m *Multivector[T]) LeftContraction(o *Multivector[T]) *Multivector[T] {
	return m.product(o, func(i, j uint64) bool { return i&j == i })
}

// RightContraction returns m ⌊ o, evaluated as o ⌋ m.
func (m *Multivector[T]) RightContraction(o *Multivector[T]) *Multivector[T] {
	return o.LeftContraction(m)
}

// BidirectionalInner returns the inner product that contracts the smaller
// blade index onto the larger one: a pair (i, j) contributes when i <= j and
// i is contained in j, or when i > j and j is contained in i.
func (m *Multivector[T]) BidirectionalInner(o *Multivector[T]) *Multivector[T] {
	return m.product(o, func(i, j uint64) bool {
		if i <= j {
			return i&j == i
		}
		return i&j == j
	})
}

// Outer returns the wedge product m ∧ o.
func (m *Multivector[T]) Outer(o *Multivector[T]) *Multivector[T] {
	return m.product(o, func(i, j uint64) bool { return i&j == 0 })
}

// Regress returns the regressive product Dual(Dual(m) ∧ Dual(o)).
func (m *Multivector[T]) Regress(o *Multivector[T]) *Multivector[T] {
	return m.Dual().Outer(o.Dual()).Dual()
}

// Sandwich returns m·x·m⁻¹.
func (m *Multivector[T]) Sandwich(x *Multivector[T]) *Multivector[T] {
	return m.Mul(x).Mul(m.Inverse())
}
