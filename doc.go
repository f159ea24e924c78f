// Package finmath computes rates of return from equally spaced series.
//
// Two metrics are provided:
//   - Internal Rate of Return (IRR): the rate that makes the net present value
//     of a sequence of cash flows zero. It is found among the real positive
//     roots of the cash-flow polynomial Σ cf[i]·x^i, with x = 1/(1+r). When
//     several rates exist, the one closest to zero is returned.
//   - Time-Weighted Rate of Return (TWRR): the geometric mean of the
//     holding period returns (HPR) of each period, eliminating the distorting
//     effect of cash flows.
//
// Roots are found by a RootFinder. Companion (eigenvalues of the companion
// matrix) is the default, DurandKerner is an alternative.
//
// Functions come in two flavors: IRR and TWRR return (rate, ok) where ok is
// false when there is no solution, Solver.Solve and TWRRE return an error
// telling why.
//
// All functions are pure and safe for concurrent use. This package serves as
// the foundational logic for the `ror` command-line tool.
package finmath
