package cayley

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/cliffgo/signature"
)

// GradeError reports a grade outside [0, GradeCount).
type GradeError struct {
	Grade  int
	Grades int
}

func (e *GradeError) Error() string {
	return fmt.Sprintf("grade %d out of range [0,%d)", e.Grade, e.Grades)
}

func (e *GradeError) Unwrap() error { return ErrInvalidGrade }

// Grade returns the grade (number of basis vectors) of a blade.
func Grade(blade uint64) int { return bits.OnesCount64(blade) }

func indexGrades(sig signature.Signature) []*roaring.Bitmap {
	grades := make([]*roaring.Bitmap, sig.GradeCount())
	for g := range grades {
		grades[g] = roaring.New()
	}
	for i := range sig.BladeCount() {
		grades[Grade(i)].Add(uint32(i))
	}
	for _, bm := range grades {
		bm.RunOptimize()
	}
	return grades
}

func (t *Table) grade(g int) *roaring.Bitmap {
	if g < 0 || g >= len(t.grades) {
		panic(&GradeError{Grade: g, Grades: len(t.grades)})
	}
	return t.grades[g]
}

// GradeSize returns the number of blades of grade g, C(n, g).
func (t *Table) GradeSize(g int) uint64 {
	return t.grade(g).GetCardinality()
}

// BladesOfGrade yields the blades of grade g in ascending index order.
// It panics with a *GradeError if g is not a grade of the algebra.
func (t *Table) BladesOfGrade(g int) iter.Seq[uint64] {
	bm := t.grade(g)
	return func(yield func(uint64) bool) {
		it := bm.Iterator()
		for it.HasNext() {
			if !yield(uint64(it.Next())) {
				return
			}
		}
	}
}

// GradeBitmap returns a copy of the blade set of grade g.
func (t *Table) GradeBitmap(g int) *roaring.Bitmap {
	return t.grade(g).Clone()
}

// GradeIntersects reports whether any blade of grade g is in blades.
func (t *Table) GradeIntersects(g int, blades *roaring.Bitmap) bool {
	return t.grade(g).Intersects(blades)
}
