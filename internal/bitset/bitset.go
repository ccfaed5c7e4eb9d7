package bitset

import (
	"errors"
	"fmt"
	"iter"
	"math/bits"
)

// WordBits is the storage width of a BitSet.
const WordBits = 64

// ErrOutOfRange is the sentinel wrapped by OutOfRangeError.
var ErrOutOfRange = errors.New("index out of range")

// OutOfRangeError reports a bit position outside the declared width.
type OutOfRangeError struct {
	Bit   uint
	Width uint
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("bit %d out of range for width %d", e.Bit, e.Width)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// BitSet is a bit vector of a fixed declared width stored in one uint64.
//
// The zero value is a valid, always-empty bitset of width 0.
type BitSet struct {
	word  uint64
	width uint
}

// New returns an empty bitset of the given width.
// It panics if width exceeds WordBits.
func New(width uint) BitSet {
	if width > WordBits {
		panic(fmt.Errorf("bitset: width %d exceeds %d: %w", width, WordBits, ErrOutOfRange))
	}
	return BitSet{width: width}
}

// FromUint64 returns a bitset of the given width holding v.
// Bits of v at or above width are kept in storage but ignored by masked reads.
func FromUint64(width uint, v uint64) BitSet {
	b := New(width)
	b.word = v
	return b
}

// Mask returns a bitset of the given width with n contiguous ones starting at
// shift. When the run does not fit below WordBits the whole word is set.
func Mask(width, n, shift uint) BitSet {
	b := New(width)
	if n >= WordBits || shift >= WordBits || n+shift >= WordBits {
		b.word = ^uint64(0)
		return b
	}
	b.word = ((uint64(1) << n) - 1) << shift
	return b
}

// mask returns the word with all positions >= width cleared.
func (b BitSet) mask() uint64 {
	if b.width >= WordBits {
		return b.word
	}
	return b.word & ((uint64(1) << b.width) - 1)
}

// Width returns the declared width.
func (b BitSet) Width() uint { return b.width }

// Test reports whether bit is set. It panics if bit >= Width().
func (b BitSet) Test(bit uint) bool {
	if bit >= b.width {
		panic(&OutOfRangeError{Bit: bit, Width: b.width})
	}
	return b.word&(uint64(1)<<bit) != 0
}

// Set sets bit in place. It panics if bit >= Width().
func (b *BitSet) Set(bit uint) {
	if bit >= b.width {
		panic(&OutOfRangeError{Bit: bit, Width: b.width})
	}
	b.word |= uint64(1) << bit
}

// Count returns the number of set bits within the declared width.
func (b BitSet) Count() int {
	return bits.OnesCount64(b.mask())
}

// Any reports whether any bit within the declared width is set.
func (b BitSet) Any() bool { return b.mask() != 0 }

// Uint64 returns the masked value.
func (b BitSet) Uint64() uint64 { return b.mask() }

// Equal compares the masked values and widths.
func (b BitSet) Equal(o BitSet) bool {
	return b.width == o.width && b.mask() == o.mask()
}

// And returns b & o on the full word.
func (b BitSet) And(o BitSet) BitSet { return BitSet{word: b.word & o.word, width: b.width} }

// Or returns b | o on the full word.
func (b BitSet) Or(o BitSet) BitSet { return BitSet{word: b.word | o.word, width: b.width} }

// Xor returns b ^ o on the full word.
func (b BitSet) Xor(o BitSet) BitSet { return BitSet{word: b.word ^ o.word, width: b.width} }

// Not returns the complement of the full word.
func (b BitSet) Not() BitSet { return BitSet{word: ^b.word, width: b.width} }

// Shl shifts the full word left by n.
func (b BitSet) Shl(n uint) BitSet { return BitSet{word: b.word << n, width: b.width} }

// Shr masks to the declared width, then shifts right by n, so bits beyond
// the width are never shifted into view.
func (b BitSet) Shr(n uint) BitSet { return BitSet{word: b.mask() >> n, width: b.width} }

// Ones yields the positions of the set bits within the width in ascending order.
func (b BitSet) Ones() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		w := b.mask()
		for w != 0 {
			i := uint(bits.TrailingZeros64(w))
			if !yield(i) {
				return
			}
			w &= w - 1
		}
	}
}

// String renders the bits within the width, most significant first.
func (b BitSet) String() string {
	if b.width == 0 {
		return ""
	}
	return fmt.Sprintf("%0*b", int(b.width), b.mask())
}
