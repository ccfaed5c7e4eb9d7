package cayley

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cliffgo/internal/bitset"
)

var (
	// ErrOutOfRange is wrapped by IndexError.
	ErrOutOfRange = bitset.ErrOutOfRange

	// ErrInvalidGrade is wrapped by GradeError.
	ErrInvalidGrade = errors.New("invalid grade")

	// ErrTooLarge is returned when a table would exceed MaxTableVectors.
	ErrTooLarge = errors.New("table too large")

	// ErrInvalidSnapshot is returned for snapshots that fail to decode.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrSignatureMismatch is returned when a table does not belong to the
	// requested signature.
	ErrSignatureMismatch = errors.New("signature mismatch")
)

// IndexError reports a blade index outside the table.
type IndexError struct {
	Index  uint64
	Blades uint64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("blade index %d out of range [0,%d)", e.Index, e.Blades)
}

func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// EntryMismatchError is returned by Verify for the first entry that differs
// from the entry calculator.
type EntryMismatchError struct {
	Lhs, Rhs  uint64
	Got, Want Entry
}

func (e *EntryMismatchError) Error() string {
	return fmt.Sprintf("entry (%d,%d): got %v, want %v", e.Lhs, e.Rhs, e.Got, e.Want)
}

func (e *EntryMismatchError) Unwrap() error { return ErrInvalidSnapshot }
