package finmath

import "errors"

// Errors reported by the error flavored functions. The boolean flavored ones
// (IRR, TWRR) collapse them all into "no solution".
var (
	// ErrNoPositiveRoot is returned when the cash-flow polynomial has no
	// real positive root, hence no rate.
	ErrNoPositiveRoot = errors.New("no positive real root")
	// ErrDegenerateInput is returned when the cash flows do not define a
	// polynomial with roots (less than two flows, all zeros, non finite values).
	ErrDegenerateInput = errors.New("degenerate cash flows")
	// ErrLengthMismatch is returned when TWRR input series differ in length.
	ErrLengthMismatch = errors.New("series length mismatch")
	// ErrNoPeriods is returned when TWRR is computed over zero periods.
	ErrNoPeriods = errors.New("no periods")
)
