package domain

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero indicates a gcd with a zero divisor.
	ErrDivisionByZero = errors.New("rsacore: division by zero")

	// ErrInvalidModulus indicates a modulus below 1.
	ErrInvalidModulus = errors.New("rsacore: invalid modulus")

	// ErrNegativeExponent indicates an exponent below 0.
	ErrNegativeExponent = errors.New("rsacore: negative exponent")

	// ErrKeyDerivationFailed indicates no private exponent exists within the search bound.
	ErrKeyDerivationFailed = errors.New("rsacore: key derivation failed")

	// ErrRandomSource indicates the witness source could not produce a value.
	ErrRandomSource = errors.New("rsacore: random source failure")

	// ErrTimeout indicates the operation ran past its deadline.
	ErrTimeout = errors.New("rsacore: timeout")

	// ErrInvalidRounds indicates a Miller-Rabin round count below 1.
	ErrInvalidRounds = errors.New("rsacore: invalid round count")

	// ErrMessageOutOfRange indicates a plaintext or ciphertext outside [0, modulus).
	ErrMessageOutOfRange = errors.New("rsacore: message out of range")

	// ErrInvalidArgument indicates a malformed or missing input.
	ErrInvalidArgument = errors.New("rsacore: invalid argument")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf wraps kind with op and a formatted detail. The result matches kind
// under errors.Is.
func Errorf(op string, kind error, format string, args ...any) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...)),
	}
}

// Wrap returns err annotated with op, or nil when err is nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// ContextError maps a finished context onto the error kinds. A passed
// deadline becomes ErrTimeout; cancellation is reported as is.
func ContextError(ctx context.Context, op string) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Op: op, Err: fmt.Errorf("%w: %v", ErrTimeout, err)}
	}
	return &Error{Op: op, Err: err}
}
