package cliffgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cliffgo/cayley"
	"github.com/hupe1980/cliffgo/internal/bitset"
	"github.com/hupe1980/cliffgo/signature"
)

var (
	// ErrOutOfRange is wrapped by every index violation, including those
	// raised by the cayley package.
	ErrOutOfRange = bitset.ErrOutOfRange

	// ErrInvalidGrade is wrapped by InvalidGradeError.
	ErrInvalidGrade = cayley.ErrInvalidGrade

	// ErrInvalidSignature is returned for signatures that fail validation.
	ErrInvalidSignature = signature.ErrInvalidSignature

	// ErrTooLarge is returned when the Cayley table of a signature cannot be
	// materialized.
	ErrTooLarge = cayley.ErrTooLarge

	// ErrUnsupported is wrapped by UnsupportedError.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrAlgebraMismatch is wrapped by AlgebraMismatchError.
	ErrAlgebraMismatch = errors.New("algebra mismatch")

	// ErrNotInvertible is returned by TryInverse for multivectors with a zero
	// squared magnitude.
	ErrNotInvertible = errors.New("multivector is not invertible")
)

// OutOfRangeError reports a blade or vector index outside its algebra.
type OutOfRangeError struct {
	Index uint64
	Limit uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Limit)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

// InvalidGradeError reports a grade projection onto a grade the algebra
// does not have.
type InvalidGradeError struct {
	Grade      int
	GradeCount int
}

func (e *InvalidGradeError) Error() string {
	return fmt.Sprintf("invalid grade %d: algebra has grades [0,%d)", e.Grade, e.GradeCount)
}

func (e *InvalidGradeError) Unwrap() error { return ErrInvalidGrade }

// AlgebraMismatchError reports a binary operation on multivectors of
// different signatures.
type AlgebraMismatchError struct {
	Left, Right string
}

func (e *AlgebraMismatchError) Error() string {
	return fmt.Sprintf("algebra mismatch: %s vs %s", e.Left, e.Right)
}

func (e *AlgebraMismatchError) Unwrap() error { return ErrAlgebraMismatch }

// UnsupportedError reports an operation the algebra is not configured for.
type UnsupportedError struct {
	Op        string
	Signature signature.Signature
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s is not supported by %s", e.Op, e.Signature)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }
