package fixed

import (
	"errors"
	"fmt"
)

// ErrorKind discriminates the failure modes of this package.
type ErrorKind string

const (
	ErrInvalidWidth       ErrorKind = "InvalidWidth"
	ErrDivisionByZero     ErrorKind = "DivisionByZero"
	ErrShiftOutOfRange    ErrorKind = "ShiftOutOfRange"
	ErrUnsupportedOperand ErrorKind = "UnsupportedOperand"
)

// Error is the only error type returned by this package. Arithmetic overflow
// is never an error; out-of-range results wrap.
type Error struct {
	Kind    ErrorKind
	message string
}

func (e Error) Error() string {
	return e.message
}

func newInvalidWidthError(width int) error {
	return Error{Kind: ErrInvalidWidth, message: fmt.Sprintf("width must be a positive integer, got %d", width)}
}

func newDivisionByZeroError() error {
	return Error{Kind: ErrDivisionByZero, message: "division by zero"}
}

func newShiftOutOfRangeError(count int, width int) error {
	return Error{Kind: ErrShiftOutOfRange, message: fmt.Sprintf("shift count %d out of range for width %d", count, width)}
}

func newUnsupportedOperandError(operand any) error {
	return Error{Kind: ErrUnsupportedOperand, message: fmt.Sprintf("unsupported operand type %T", operand)}
}

// IsKind reports whether err is (or wraps) a fixed.Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e Error
	return errors.As(err, &e) && e.Kind == kind
}
