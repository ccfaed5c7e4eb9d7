package cayley

import (
	"fmt"

	"github.com/hupe1980/cliffgo/internal/bitset"
	"github.com/hupe1980/cliffgo/signature"
)

// Entry is the product of two basis blades: Sign * e_Blade.
type Entry struct {
	Blade uint64
	Sign  int8
}

func (e Entry) String() string {
	switch e.Sign {
	case 0:
		return "0"
	case -1:
		return fmt.Sprintf("-%d", e.Blade)
	default:
		return fmt.Sprintf("+%d", e.Blade)
	}
}

// calculator holds the range masks of one signature.
type calculator struct {
	width    uint
	blades   uint64
	negative bitset.BitSet
	null     bitset.BitSet
}

func newCalculator(sig signature.Signature) calculator {
	w := uint(sig.VectorCount())
	return calculator{
		width:    w,
		blades:   sig.BladeCount(),
		negative: bitset.Mask(w, uint(sig.Negative), uint(sig.Positive)),
		null:     bitset.Mask(w, uint(sig.Zero), uint(sig.Positive+sig.Negative)),
	}
}

func (c calculator) compute(lhs, rhs uint64) Entry {
	l := bitset.FromUint64(c.width, lhs)
	r := bitset.FromUint64(c.width, rhs)
	blade := l.Xor(r).Uint64()

	overlap := l.And(r)
	if overlap.And(c.null).Any() {
		return Entry{Blade: blade}
	}

	sign := int8(1)
	if overlap.And(c.negative).Count()%2 == 1 {
		sign = -1
	}
	if reorderOdd(l, r) {
		sign = -sign
	}
	return Entry{Blade: blade, Sign: sign}
}

// reorderOdd reports whether an odd number of transpositions is needed to
// sort the basis vectors of l followed by those of r: for every vector k of
// l, each vector of r strictly below k must move past it.
func reorderOdd(l, r bitset.BitSet) bool {
	odd := false
	for k := range l.Ones() {
		if r.And(bitset.Mask(r.Width(), k, 0)).Count()%2 == 1 {
			odd = !odd
		}
	}
	return odd
}

// Compute returns the product of basis blades lhs and rhs under sig.
// It panics with an *IndexError if either index is not a blade of sig.
func Compute(sig signature.Signature, lhs, rhs uint64) Entry {
	c := newCalculator(sig)
	if lhs >= c.blades {
		panic(&IndexError{Index: lhs, Blades: c.blades})
	}
	if rhs >= c.blades {
		panic(&IndexError{Index: rhs, Blades: c.blades})
	}
	return c.compute(lhs, rhs)
}

// ReorderSign returns +1 or -1: the sign picked up when the basis vectors of
// lhs followed by those of rhs are sorted into ascending order. The metric
// plays no part, so this is also the sign of the outer product of disjoint
// blades.
func ReorderSign(lhs, rhs uint64) int8 {
	l := bitset.FromUint64(bitset.WordBits, lhs)
	r := bitset.FromUint64(bitset.WordBits, rhs)
	if reorderOdd(l, r) {
		return -1
	}
	return 1
}
