package cayley

import (
	"context"
	"fmt"
	"iter"
	"runtime"
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/cliffgo/internal/resource"
	"github.com/hupe1980/cliffgo/signature"
)

// MaxTableVectors bounds the vector count of a materialized table. A table
// holds 4^n entries; at n = 12 that is 16M entries (256 MiB).
const MaxTableVectors = 12

const entrySize = int64(unsafe.Sizeof(Entry{}))

// Table is the read-only Cayley table of one signature.
//
// A Table is immutable after Build (or ReadSnapshot) returns and is safe for
// concurrent use.
type Table struct {
	sig     signature.Signature
	blades  uint64
	entries []Entry // row-major, blades*blades
	dual    []int8
	grades  []*roaring.Bitmap

	rc       *resource.Controller
	reserved int64
}

type buildOptions struct {
	workers int
	rc      *resource.Controller
}

// BuildOption configures Build.
type BuildOption func(*buildOptions)

// WithWorkers sets the number of goroutines filling rows.
// Values <= 0 use GOMAXPROCS.
func WithWorkers(n int) BuildOption {
	return func(o *buildOptions) {
		o.workers = n
	}
}

// WithController charges the table memory to rc. The memory is returned by
// Table.Release.
func WithController(rc *resource.Controller) BuildOption {
	return func(o *buildOptions) {
		o.rc = rc
	}
}

// SizeOf returns the bytes held by the entries of a table for sig.
func SizeOf(sig signature.Signature) int64 {
	n := int64(sig.BladeCount())
	return n*n*entrySize + n // entries + dual signs
}

// CheckSize reports ErrTooLarge if sig cannot be materialized.
func CheckSize(sig signature.Signature) error {
	if err := sig.Validate(); err != nil {
		return err
	}
	if n := sig.VectorCount(); n > MaxTableVectors {
		return fmt.Errorf("%w: %s has %d vectors (max %d)", ErrTooLarge, sig.Key(), n, MaxTableVectors)
	}
	return nil
}

// Build computes the table of sig, one row per task.
func Build(ctx context.Context, sig signature.Signature, opts ...BuildOption) (*Table, error) {
	o := buildOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	t, err := allocate(sig, o.rc)
	if err != nil {
		return nil, err
	}

	calc := newCalculator(sig)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i := range t.blades {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := t.entries[i*t.blades : (i+1)*t.blades]
			for j := range row {
				row[j] = calc.compute(i, uint64(j))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Release()
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		t.Release()
		return nil, err
	}

	t.finish()
	return t, nil
}

// allocate reserves memory and creates an empty table for sig.
func allocate(sig signature.Signature, rc *resource.Controller) (*Table, error) {
	if err := CheckSize(sig); err != nil {
		return nil, err
	}
	size := SizeOf(sig)
	if err := rc.AcquireMemory(size); err != nil {
		return nil, fmt.Errorf("table %s (%d bytes): %w", sig.Key(), size, err)
	}

	blades := sig.BladeCount()
	return &Table{
		sig:      sig,
		blades:   blades,
		entries:  make([]Entry, blades*blades),
		rc:       rc,
		reserved: size,
	}, nil
}

// finish derives the dual signs and the grade index from the entries.
func (t *Table) finish() {
	t.dual = deriveDualSigns(t)
	t.grades = indexGrades(t.sig)
}

// Signature returns the signature the table was built for.
func (t *Table) Signature() signature.Signature { return t.sig }

// BladeCount returns the number of blades (rows and columns).
func (t *Table) BladeCount() uint64 { return t.blades }

// SizeBytes returns the memory charged for the table.
func (t *Table) SizeBytes() int64 { return SizeOf(t.sig) }

// Entry returns the product of blades i and j.
// It panics with an *IndexError if i or j is out of range.
func (t *Table) Entry(i, j uint64) Entry {
	if i >= t.blades {
		panic(&IndexError{Index: i, Blades: t.blades})
	}
	if j >= t.blades {
		panic(&IndexError{Index: j, Blades: t.blades})
	}
	return t.entries[i*t.blades+j]
}

// Row returns the products of blade i with every blade. The slice aliases
// the table and must not be modified.
func (t *Table) Row(i uint64) []Entry {
	if i >= t.blades {
		panic(&IndexError{Index: i, Blades: t.blades})
	}
	return t.entries[i*t.blades : (i+1)*t.blades : (i+1)*t.blades]
}

// All yields every (lhs, rhs, entry) triple in row-major order.
func (t *Table) All() iter.Seq2[[2]uint64, Entry] {
	return func(yield func([2]uint64, Entry) bool) {
		for i := range t.blades {
			for j := range t.blades {
				if !yield([2]uint64{i, j}, t.entries[i*t.blades+j]) {
					return
				}
			}
		}
	}
}

// Verify recomputes every entry and returns an *EntryMismatchError for the
// first one that differs.
func (t *Table) Verify() error {
	calc := newCalculator(t.sig)
	for i := range t.blades {
		for j := range t.blades {
			got := t.entries[i*t.blades+j]
			if want := calc.compute(i, j); got != want {
				return &EntryMismatchError{Lhs: i, Rhs: j, Got: got, Want: want}
			}
		}
	}
	return nil
}

// Release returns the table memory to its controller. The table must not be
// used afterwards.
func (t *Table) Release() {
	if t == nil || t.reserved == 0 {
		return
	}
	t.rc.ReleaseMemory(t.reserved)
	t.reserved = 0
}
