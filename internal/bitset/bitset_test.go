package bitset

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitSet(t *testing.T) {
	b := New(8)
	assert.Equal(t, uint(8), b.Width())
	assert.Equal(t, 0, b.Count())

	b.Set(1)
	b.Set(7)
	assert.True(t, b.Test(1))
	assert.True(t, b.Test(7))
	assert.False(t, b.Test(0))
	assert.Equal(t, 2, b.Count())
	assert.Equal(t, uint64(0b1000_0010), b.Uint64())
	assert.Equal(t, "10000010", b.String())
}

func TestBitSet_OutOfRange(t *testing.T) {
	b := New(4)

	require.PanicsWithError(t, "bit 4 out of range for width 4", func() { b.Test(4) })
	require.Panics(t, func() { b.Set(9) })

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrOutOfRange))

		var oor *OutOfRangeError
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, uint(5), oor.Bit)
		assert.Equal(t, uint(4), oor.Width)
	}()
	b.Set(5)
}

func TestBitSet_ZeroWidth(t *testing.T) {
	var zero BitSet
	assert.Equal(t, 0, zero.Count())
	assert.Equal(t, uint64(0), zero.Uint64())
	assert.False(t, zero.Any())
	assert.Equal(t, "", zero.String())
	assert.Panics(t, func() { zero.Test(0) })

	b := FromUint64(0, 0xFF)
	assert.Equal(t, 0, b.Count())
	assert.True(t, b.Equal(New(0)))
}

func TestBitSet_Masking(t *testing.T) {
	b := FromUint64(4, 0xFF)
	assert.Equal(t, 4, b.Count())
	assert.Equal(t, uint64(0x0F), b.Uint64())
	assert.True(t, b.Equal(FromUint64(4, 0x0F)))

	// Shr masks first, so the high storage bits never shift into view.
	assert.Equal(t, uint64(0x03), b.Shr(2).Uint64())

	// Shl and Not act on the full word; reads are masked.
	assert.Equal(t, uint64(0x0C), b.Shl(2).Uint64())
	assert.Equal(t, 0, b.Not().Count())
	assert.Equal(t, 4, New(4).Not().Count())
}

func TestBitSet_Logic(t *testing.T) {
	a := FromUint64(6, 0b101100)
	b := FromUint64(6, 0b100110)

	assert.Equal(t, uint64(0b100100), a.And(b).Uint64())
	assert.Equal(t, uint64(0b101110), a.Or(b).Uint64())
	assert.Equal(t, uint64(0b001010), a.Xor(b).Uint64())
}

func TestMask(t *testing.T) {
	tests := []struct {
		name     string
		n, shift uint
		want     uint64
	}{
		{"empty", 0, 0, 0},
		{"low", 3, 0, 0b111},
		{"shifted", 2, 3, 0b11000},
		{"below top", 4, 59, 0x7800000000000000},
		{"saturate", 10, 60, ^uint64(0)},
		{"exact top", 4, 60, ^uint64(0)},
		{"full", 64, 0, ^uint64(0)},
		{"shift at word", 4, 64, ^uint64(0)},
		{"shift beyond", 1, 70, ^uint64(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Mask(64, tt.n, tt.shift)
			assert.Equal(t, tt.want, m.Uint64())
		})
	}

	assert.Equal(t, 3, Mask(5, 3, 1).Count())
	assert.Equal(t, 1, Mask(5, 3, 4).Count())
	// saturated masks are still read through the declared width
	assert.Equal(t, 5, Mask(5, 10, 60).Count())
	assert.Equal(t, uint64(0b11111), Mask(5, 1, 70).Uint64())
}

func TestBitSet_Ones(t *testing.T) {
	b := FromUint64(10, 0b11_0100_1001)
	got := slices.Collect(b.Ones())
	assert.Equal(t, []uint{0, 3, 6, 8, 9}, got)

	var first []uint
	for i := range b.Ones() {
		first = append(first, i)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []uint{0, 3}, first)
}

func TestNew_TooWide(t *testing.T) {
	assert.Panics(t, func() { New(65) })
	assert.NotPanics(t, func() {
		b := New(64)
		b.Set(63)
	})
}
