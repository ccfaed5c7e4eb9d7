package signature

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// MaxLayoutVectors bounds the size of the lookup arrays held by a Layout.
const MaxLayoutVectors = 20

// Layout is the permutation between bit order and declaration order of the
// blades of an algebra with a given number of basis vectors.
//
// Declaration order is grade-major and lexicographic in the basis-vector
// indices within a grade: 1, e0, e1, e2, e01, e02, e12, e012 for three vectors.
type Layout struct {
	vectors int
	toBit   []uint64 // declaration position -> blade index
	toDecl  []int    // blade index -> declaration position
}

// NewLayout builds the layout for the given vector count.
func NewLayout(vectors int) (*Layout, error) {
	if vectors < 0 || vectors > MaxLayoutVectors {
		return nil, fmt.Errorf("%w: layout for %d vectors (max %d)", ErrInvalidSignature, vectors, MaxLayoutVectors)
	}

	n := 1 << vectors
	l := &Layout{
		vectors: vectors,
		toBit:   make([]uint64, 0, n),
		toDecl:  make([]int, n),
	}

	// gradeOffset(g) = sum_{k<g} C(vectors, k); combinations of each grade
	// are appended in lexicographic order so positions follow directly.
	for g := 0; g <= vectors; g++ {
		l.appendCombinations(0, g, 0)
	}
	for pos, idx := range l.toBit {
		l.toDecl[idx] = pos
	}
	return l, nil
}

// appendCombinations emits every blade of `remaining` more vectors chosen
// from [start, vectors), prefixed by acc, in lexicographic order.
func (l *Layout) appendCombinations(start, remaining int, acc uint64) {
	if remaining == 0 {
		l.toBit = append(l.toBit, acc)
		return
	}
	for i := start; i <= l.vectors-remaining; i++ {
		l.appendCombinations(i+1, remaining-1, acc|uint64(1)<<uint(i))
	}
}

// Len returns the number of blades.
func (l *Layout) Len() int { return len(l.toBit) }

// BladeAt returns the blade index at declaration position pos.
func (l *Layout) BladeAt(pos int) uint64 { return l.toBit[pos] }

// Position returns the declaration position of a blade index.
func (l *Layout) Position(blade uint64) int { return l.toDecl[blade] }

// Name returns the name of a blade of this layout.
func (l *Layout) Name(blade uint64) string { return BladeName(blade, l.vectors) }

// BladeName returns the conventional name of a blade index: "1" for the
// scalar, otherwise "e" followed by the participating basis-vector indices in
// ascending order ("e0", "e01", "e013"). With more than ten vectors the indices
// are separated by underscores ("e0_10").
func BladeName(blade uint64, vectors int) string {
	if blade == 0 {
		return "1"
	}
	var sb strings.Builder
	sb.WriteByte('e')
	first := true
	for b := blade; b != 0; b &= b - 1 {
		if !first && vectors > 10 {
			sb.WriteByte('_')
		}
		sb.WriteString(strconv.Itoa(bits.TrailingZeros64(b)))
		first = false
	}
	return sb.String()
}

// ParseBladeName is the inverse of BladeName. Indices must be strictly
// ascending and below vectors.
func ParseBladeName(name string, vectors int) (uint64, error) {
	if name == "1" {
		return 0, nil
	}
	rest, ok := strings.CutPrefix(name, "e")
	if !ok || rest == "" {
		return 0, fmt.Errorf("invalid blade name %q", name)
	}

	var parts []string
	if vectors > 10 {
		parts = strings.Split(rest, "_")
	} else {
		parts = strings.Split(rest, "")
	}

	var blade uint64
	last := -1
	for _, p := range parts {
		i, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("invalid blade name %q: %w", name, err)
		}
		if i <= last || i >= vectors {
			return 0, fmt.Errorf("invalid blade name %q for %d vectors", name, vectors)
		}
		blade |= uint64(1) << uint(i)
		last = i
	}
	return blade, nil
}
