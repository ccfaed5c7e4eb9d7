package cliffgo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cliffgo/signature"
	"github.com/hupe1980/cliffgo/testutil"
)

var propertySignatures = []signature.Signature{
	signature.Complex,
	signature.Dual,
	signature.VGA3,
	signature.PGA3,
	signature.STA,
	signature.CGA3,
	signature.MustNew(2, 1, 1),
}

func TestMul_Scenarios(t *testing.T) {
	t.Run("complex", func(t *testing.T) {
		a := newAlgebra(t, signature.Complex)
		i := a.Basis(0)
		assert.True(t, i.Mul(i).Equal(a.Scalar(-1)))
	})

	t.Run("dual", func(t *testing.T) {
		a := newAlgebra(t, signature.Dual)
		e := a.Basis(0)
		assert.True(t, e.Mul(e).IsZero())
		// (a + be)(c + de) = ac + (ad + bc)e
		x := a.FromCoefficients(2, 3).Mul(a.FromCoefficients(5, 7))
		assert.Equal(t, []float64{10, 29}, x.Coefficients())
	})

	t.Run("split complex", func(t *testing.T) {
		a := newAlgebra(t, signature.SplitComplex)
		e := a.Basis(0)
		assert.True(t, e.Mul(e).Equal(a.Scalar(1)))
	})

	t.Run("vga", func(t *testing.T) {
		a := newAlgebra(t, signature.VGA3)
		e0, e1 := a.Basis(0), a.Basis(1)
		assert.True(t, e0.Mul(e1).Equal(a.Blade(3, 1)))
		assert.True(t, e1.Mul(e0).Equal(a.Blade(3, -1)))
		assert.True(t, e0.Mul(e0).Equal(a.Scalar(1)))
		assert.True(t, a.Pseudoscalar().Mul(a.Pseudoscalar()).Equal(a.Scalar(-1)))
	})

	t.Run("quaternion", func(t *testing.T) {
		a := newAlgebra(t, signature.Quaternion)
		i, j := a.Basis(0), a.Basis(1)
		k := i.Mul(j)
		minusOne := a.Scalar(-1)
		assert.True(t, i.Mul(i).Equal(minusOne))
		assert.True(t, j.Mul(j).Equal(minusOne))
		assert.True(t, k.Mul(k).Equal(minusOne))
		assert.True(t, i.Mul(j).Mul(k).Equal(minusOne))
	})

	t.Run("sta", func(t *testing.T) {
		a := newAlgebra(t, signature.STA)
		assert.Equal(t, 1.0, a.Basis(0).Mul(a.Basis(0)).ScalarPart())
		for n := 1; n < 4; n++ {
			assert.Equal(t, -1.0, a.Basis(n).Mul(a.Basis(n)).ScalarPart())
		}
	})
}

func TestProducts_Properties(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, sig := range propertySignatures {
		t.Run(sig.Key(), func(t *testing.T) {
			a := newAlgebra(t, sig)
			n := a.BladeCount()
			one, zero := a.Scalar(1), a.Zero()

			for range 10 {
				v := a.FromCoefficients(rng.Coefficients(n)...)
				w := a.FromCoefficients(rng.Coefficients(n)...)
				u := a.FromCoefficients(rng.Coefficients(n)...)

				require.True(t, v.Reverse().Reverse().Equal(v))
				require.True(t, v.Conj().Conj().Equal(v))
				require.True(t, v.Involute().Involute().Equal(v))
				require.True(t, v.Mul(one).Equal(v))
				require.True(t, one.Mul(v).Equal(v))
				require.True(t, v.Add(zero).Equal(v))

				// Conj is the composition of the other two involutions.
				require.True(t, v.Conj().Equal(v.Reverse().Involute()))

				testutil.RequireInDeltaSlice(t,
					v.Mul(w).Mul(u).Coefficients(),
					v.Mul(w.Mul(u)).Coefficients(), 1e-9, "associativity")
				testutil.RequireInDeltaSlice(t,
					v.Mul(w.Add(u)).Coefficients(),
					v.Mul(w).Add(v.Mul(u)).Coefficients(), 1e-9, "distributivity")
				testutil.RequireInDeltaSlice(t,
					v.Mul(w).Reverse().Coefficients(),
					w.Reverse().Mul(v.Reverse()).Coefficients(), 1e-9, "reversion is an anti-automorphism")
				require.InDelta(t, v.Mul(v.Reverse()).ScalarPart(), v.SquaredMagnitude(), 1e-12)

				x := a.FromCoefficients(rng.Vector(n)...)
				y := a.FromCoefficients(rng.Vector(n)...)
				require.True(t, x.Outer(y).Equal(y.Outer(x).Neg()))
				require.True(t, x.Outer(x).IsZero())
			}
		})
	}
}

func TestProducts_BasisVectors(t *testing.T) {
	for _, sig := range propertySignatures {
		a := newAlgebra(t, sig)
		for i := range a.VectorCount() {
			ei := a.Basis(i)
			assert.Equal(t, float64(sig.Metric(i)), ei.SquaredMagnitude(), "%s e%d", sig, i)
			for j := range a.VectorCount() {
				if i == j {
					continue
				}
				assert.Zero(t, ei.LeftContraction(a.Basis(j)).ScalarPart(), "%s e%d⌋e%d", sig, i, j)
				assert.True(t, ei.Mul(a.Basis(j)).Equal(a.Basis(j).Mul(ei).Neg()), "%s e%d e%d", sig, i, j)
			}
		}
	}
}

func TestContractions(t *testing.T) {
	a := newAlgebra(t, signature.VGA3)
	e0, e1, e2 := a.Basis(0), a.Basis(1), a.Basis(2)
	e01 := e0.Mul(e1)

	assert.True(t, e0.LeftContraction(e01).Equal(e1))
	assert.True(t, e1.LeftContraction(e01).Equal(e0.Neg()))
	assert.True(t, e01.LeftContraction(e0).IsZero())
	assert.True(t, e2.LeftContraction(e01).IsZero())
	assert.True(t, a.Scalar(3).LeftContraction(e01).Equal(e01.Scale(3)))

	assert.True(t, e01.RightContraction(e0).Equal(e0.LeftContraction(e01)))
	assert.True(t, e0.RightContraction(e01).IsZero())

	assert.True(t, e0.BidirectionalInner(e01).Equal(e1))
	assert.True(t, e01.BidirectionalInner(e0).Equal(e1.Neg()))
	assert.True(t, e0.BidirectionalInner(e1).IsZero())
	assert.True(t, e0.BidirectionalInner(e0).Equal(a.Scalar(1)))
	assert.True(t, e01.BidirectionalInner(e01).Equal(a.Scalar(-1)))
}

func TestInner_Dispatch(t *testing.T) {
	tests := []struct {
		style signature.InnerProduct
		want  func(a *Algebra[float64]) *Multivector[float64]
	}{
		{signature.LeftContraction, func(a *Algebra[float64]) *Multivector[float64] { return a.Zero() }},
		{signature.RightContraction, func(a *Algebra[float64]) *Multivector[float64] { return a.Basis(1) }},
		{signature.Bidirectional, func(a *Algebra[float64]) *Multivector[float64] { return a.Basis(1).Neg() }},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			a := newAlgebra(t, signature.MustNew(3, 0, 0, signature.WithInnerProduct(tt.style)))
			inner, err := a.InnerProduct()
			require.NoError(t, err)
			e01 := a.Basis(0).Mul(a.Basis(1))
			assert.True(t, inner(e01, a.Basis(0)).Equal(tt.want(a)))
		})
	}
}

func TestOuter(t *testing.T) {
	a := newAlgebra(t, signature.PGA3)
	e0, e1, e3 := a.Basis(0), a.Basis(1), a.Basis(3)

	assert.True(t, e0.Outer(e1).Equal(a.Blade(3, 1)))
	assert.True(t, e1.Outer(e0).Equal(a.Blade(3, -1)))
	assert.True(t, e0.Outer(e0).IsZero())
	assert.True(t, e3.Outer(e0).Equal(a.Blade(9, -1)), "null vectors still wedge")
	assert.True(t, a.Scalar(2).Outer(e1).Equal(e1.Scale(2)))
}

func TestDual(t *testing.T) {
	t.Run("wedge with dual is pseudoscalar", func(t *testing.T) {
		for _, sig := range propertySignatures {
			a := newAlgebra(t, sig)
			I := a.Pseudoscalar()
			for i := range uint64(a.BladeCount()) {
				ei := a.Blade(i, 1)
				require.True(t, ei.Outer(ei.Dual()).Equal(I), "%s blade %d", sig, i)
			}
		}
	})

	t.Run("hodge dual in euclidean algebras", func(t *testing.T) {
		rng := testutil.NewRNG(1)
		for _, sig := range []signature.Signature{signature.VGA2, signature.VGA3, signature.MustNew(5, 0, 0)} {
			a := newAlgebra(t, sig)
			v := a.FromCoefficients(rng.Coefficients(a.BladeCount())...)
			require.True(t, v.Dual().Equal(v.Reverse().Mul(a.Pseudoscalar())), sig.Key())
		}
	})

	t.Run("vga3", func(t *testing.T) {
		a := newAlgebra(t, signature.VGA3)
		want := map[uint64]*Multivector[float64]{
			0: a.Blade(7, 1),
			1: a.Blade(6, 1),
			2: a.Blade(5, -1),
			4: a.Blade(3, 1),
			3: a.Blade(4, 1),
			5: a.Blade(2, -1),
			6: a.Blade(1, 1),
			7: a.Scalar(1),
		}
		for blade, w := range want {
			assert.True(t, a.Blade(blade, 1).Dual().Equal(w), "blade %d", blade)
		}
	})
}

func TestRegress(t *testing.T) {
	a := newAlgebra(t, signature.VGA3)
	e01 := a.Blade(3, 1)
	e12 := a.Blade(6, 1)

	// Two coordinate planes meet in their shared axis.
	assert.True(t, e01.Regress(e12).Equal(a.Basis(1)))

	I := a.Pseudoscalar()
	assert.True(t, I.Regress(e01).Equal(e01), "I is the identity of the regressive product")
}

func TestInverse(t *testing.T) {
	a := newAlgebra(t, signature.VGA3)

	v := a.FromCoefficients(0, 2, 3)
	assert.Equal(t, 13.0, v.SquaredMagnitude())
	testutil.RequireInDeltaSlice(t, a.Scalar(1).Coefficients(), v.Mul(v.Inverse()).Coefficients(), 1e-12)

	inv, err := v.TryInverse()
	require.NoError(t, err)
	assert.True(t, inv.Equal(v.Inverse()))

	_, err = a.Zero().TryInverse()
	require.ErrorIs(t, err, ErrNotInvertible)
	assert.True(t, math.IsNaN(a.Zero().Inverse().ScalarPart()), "IEEE semantics")

	pga := newAlgebra(t, signature.PGA3)
	_, err = pga.Basis(3).TryInverse()
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestSandwich_Rotation(t *testing.T) {
	a := newAlgebra(t, signature.VGA3)
	half := math.Pi / 4
	// R = cos(θ/2) - sin(θ/2) e01 rotates e0 towards e1 by θ.
	r := a.Scalar(math.Cos(half)).Sub(a.Blade(3, math.Sin(half)))

	assert.InDelta(t, 1.0, r.SquaredMagnitude(), 1e-12)
	testutil.RequireInDeltaSlice(t, a.Basis(1).Coefficients(), r.Sandwich(a.Basis(0)).Coefficients(), 1e-12)
	testutil.RequireInDeltaSlice(t, a.Basis(2).Coefficients(), r.Sandwich(a.Basis(2)).Coefficients(), 1e-12)
}

func TestMagnitude(t *testing.T) {
	a := newAlgebra(t, signature.VGA3)
	v := a.FromCoefficients(0, 3, 4)
	assert.Equal(t, 5.0, v.Magnitude())
	testutil.RequireInDeltaSlice(t, []float64{0, 0.6, 0.8, 0, 0, 0, 0, 0}, v.Normalized().Coefficients(), 1e-12)

	sta := newAlgebra(t, signature.STA)
	assert.Equal(t, 1.0, sta.Basis(1).Magnitude())
	assert.True(t, math.IsNaN(sta.Basis(1).Normalized().Coefficient(2)))
}

func TestInvolutions_Signs(t *testing.T) {
	a := newAlgebra(t, signature.VGA3)
	ones := a.FromCoefficients(1, 1, 1, 1, 1, 1, 1, 1)

	assert.Equal(t, []float64{1, 1, 1, -1, 1, -1, -1, -1}, ones.Reverse().Coefficients())
	assert.Equal(t, []float64{1, -1, -1, -1, -1, -1, -1, 1}, ones.Conj().Coefficients())
	assert.Equal(t, []float64{1, -1, -1, 1, -1, 1, 1, -1}, ones.Involute().Coefficients())
}

func BenchmarkMul(b *testing.B) {
	rng := testutil.NewRNG(42)
	for _, sig := range []signature.Signature{signature.PGA3, signature.CGA3} {
		a := MustNew[float64](sig)
		v := a.FromCoefficients(rng.Coefficients(a.BladeCount())...)
		w := a.FromCoefficients(rng.Coefficients(a.BladeCount())...)
		b.Run(sig.Key(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = v.Mul(w)
			}
		})
	}
}
