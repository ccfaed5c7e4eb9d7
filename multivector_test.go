package cliffgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cliffgo/signature"
)

func TestMultivector_Coefficients(t *testing.T) {
	a := newAlgebra(t, signature.VGA3)
	m := a.Zero()

	m.SetScalar(3)
	m.SetCoefficient(6, -2)
	assert.Equal(t, 3.0, m.ScalarPart())
	assert.Equal(t, -2.0, m.Coefficient(6))
	assert.Equal(t, []float64{3, 0, 0, 0, 0, 0, -2, 0}, m.Coefficients())

	c := m.Coefficients()
	c[0] = 100
	assert.Equal(t, 3.0, m.ScalarPart(), "Coefficients returns a copy")

	requirePanicsWith(t, ErrOutOfRange, func() { m.Coefficient(8) })
	requirePanicsWith(t, ErrOutOfRange, func() { m.SetCoefficient(8, 1) })

	var oe *OutOfRangeError
	func() {
		defer func() {
			err, ok := recover().(error)
			require.True(t, ok)
			require.ErrorAs(t, err, &oe)
		}()
		m.Coefficient(9)
	}()
	assert.Equal(t, uint64(9), oe.Index)
	assert.Equal(t, uint64(8), oe.Limit)
}

func TestMultivector_Clone(t *testing.T) {
	a := newAlgebra(t, signature.VGA2)
	m := a.FromCoefficients(1, 2, 3, 4)
	c := m.Clone()
	c.SetScalar(9)

	assert.Equal(t, 1.0, m.ScalarPart())
	assert.Equal(t, 9.0, c.ScalarPart())
	assert.False(t, m.Equal(c))
}

func TestMultivector_GradeProjection(t *testing.T) {
	a := newAlgebra(t, signature.VGA3)
	m := a.FromCoefficients(1, 2, 3, 4, 5, 6, 7, 8)

	assert.Equal(t, []float64{1, 0, 0, 0, 0, 0, 0, 0}, m.GradeProjection(0).Coefficients())
	assert.Equal(t, []float64{0, 2, 3, 0, 5, 0, 0, 0}, m.GradeProjection(1).Coefficients())
	assert.Equal(t, []float64{0, 0, 0, 4, 0, 6, 7, 0}, m.GradeProjection(2).Coefficients())
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 0, 8}, m.GradeProjection(3).Coefficients())

	sum := a.Zero()
	for g := range a.GradeCount() {
		sum = sum.Add(m.GradeProjection(g))
	}
	assert.True(t, sum.Equal(m))

	requirePanicsWith(t, ErrInvalidGrade, func() { m.GradeProjection(4) })
	requirePanicsWith(t, ErrInvalidGrade, func() { m.GradeProjection(-1) })
}

func TestMultivector_Grades(t *testing.T) {
	a := newAlgebra(t, signature.PGA3)
	assert.Nil(t, a.Zero().Grades())
	assert.Equal(t, []int{0}, a.Scalar(1).Grades())
	assert.Equal(t, []int{1, 4}, a.Basis(2).Add(a.Pseudoscalar()).Grades())
	assert.Equal(t, []int{0, 2}, a.Basis(0).Mul(a.Basis(1)).AddScalar(1).Grades())
}

func TestMultivector_Arithmetic(t *testing.T) {
	a := newAlgebra(t, signature.VGA2)
	x := a.FromCoefficients(1, 2, 3, 4)
	y := a.FromCoefficients(4, 3, 2, 1)

	tests := []struct {
		name string
		got  *Multivector[float64]
		want []float64
	}{
		{"add", x.Add(y), []float64{5, 5, 5, 5}},
		{"sub", x.Sub(y), []float64{-3, -1, 1, 3}},
		{"add scalar", x.AddScalar(2), []float64{3, 2, 3, 4}},
		{"sub scalar", x.SubScalar(2), []float64{-1, 2, 3, 4}},
		{"scale", x.Scale(2), []float64{2, 4, 6, 8}},
		{"div scalar", x.DivScalar(2), []float64{0.5, 1, 1.5, 2}},
		{"neg", x.Neg(), []float64{-1, -2, -3, -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Coefficients())
		})
	}

	assert.Equal(t, []float64{1, 2, 3, 4}, x.Coefficients(), "operands are not mutated")
}

func TestMultivector_DivScalarByZero(t *testing.T) {
	a := newAlgebra(t, signature.VGA2)
	r := a.FromCoefficients(1, -1, 0, 0).DivScalar(0)

	assert.True(t, r.Coefficient(0) > 1e308)
	assert.True(t, r.Coefficient(1) < -1e308)
	assert.NotEqual(t, r.Coefficient(2), r.Coefficient(2), "0/0 is NaN")
}

func TestMultivector_Equal(t *testing.T) {
	a := newAlgebra(t, signature.VGA2)
	b := newAlgebra(t, signature.VGA2)
	x := a.FromCoefficients(1, 2, 3, 4)

	assert.True(t, x.Equal(b.FromCoefficients(1, 2, 3, 4)), "same metric, separate algebras")
	assert.False(t, x.Equal(a.FromCoefficients(1, 2, 3, 4.000001)))
	assert.True(t, x.ApproxEqual(a.FromCoefficients(1, 2, 3, 4.000001), 1e-5))
	assert.False(t, x.ApproxEqual(a.FromCoefficients(1, 2, 3, 4.1), 1e-5))

	other := newAlgebra(t, signature.Quaternion)
	requirePanicsWith(t, ErrAlgebraMismatch, func() { x.Equal(other.Scalar(1)) })
	requirePanicsWith(t, ErrAlgebraMismatch, func() { x.Add(other.Scalar(1)) })
	requirePanicsWith(t, ErrAlgebraMismatch, func() { x.Mul(other.Scalar(1)) })
}

func TestMultivector_String(t *testing.T) {
	a := newAlgebra(t, signature.VGA3)
	tests := []struct {
		m    *Multivector[float64]
		want string
	}{
		{a.Zero(), "0"},
		{a.Scalar(2.5), "2.5"},
		{a.Scalar(-1), "-1"},
		{a.FromCoefficients(1, 2, 0, -1), "1 + 2e0 - e01"},
		{a.Basis(1).Neg(), "-e1"},
		{a.Blade(6, 0.5).Add(a.Basis(2)), "e2 + 0.5e12"},
		{a.Pseudoscalar().AddScalar(1), "1 + e012"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.m.String())
	}

	f := MustNew[float32](signature.VGA2)
	assert.Equal(t, "0.1 + e1", f.FromCoefficients(0.1, 0, 1).String())
}
