package finmath

import (
	"fmt"
	"math"
	"slices"
)

// DefaultImagTolerance is the relative tolerance under which the imaginary
// part of a root is considered to be numerical noise.
//
// A double root comes back as a conjugate pair split by about the square
// root of the machine epsilon, so the tolerance must stay well above 1e-8.
const DefaultImagTolerance = 1e-6

// Solver computes internal rates of return.
//
// The zero value is ready to use: it finds roots with Companion and uses
// DefaultImagTolerance.
type Solver struct {
	Finder RootFinder
	// ImagTolerance is the relative tolerance on the imaginary part of a root.
	// Zero means DefaultImagTolerance, a negative value means strictly zero.
	ImagTolerance float64
}

var defaultSolver Solver

// IRR returns the internal rate of return of equally spaced cash flows,
// cashflows[0] being the initial one.
//
// When several rates exist, the one closest to zero is returned. ok is false
// when there is no solution.
func IRR(cashflows []float64) (rate float64, ok bool) {
	rate, err := defaultSolver.Solve(cashflows)
	return rate, err == nil
}

// Solve returns the internal rate of return of cashflows, that is the rate r
// such that NPV(r, cashflows) == 0.
//
// Among all candidates, the one with the smallest absolute value is returned.
// Errors are ErrDegenerateInput or ErrNoPositiveRoot.
func (s Solver) Solve(cashflows []float64) (float64, error) {
	if len(cashflows) < 2 {
		return math.NaN(), fmt.Errorf("%d cash flow(s): %w", len(cashflows), ErrDegenerateInput)
	}
	finder := s.Finder
	if finder == nil {
		finder = Companion{}
	}

	// cashflows[i] is the coefficient of x^i with x = 1/(1+r), the finder
	// wants the leading coefficient first.
	coefficients := slices.Clone(cashflows)
	slices.Reverse(coefficients)

	roots := finder.Roots(coefficients)
	if len(roots) == 0 {
		return math.NaN(), ErrDegenerateInput
	}

	eps := s.tolerance()
	if !slices.ContainsFunc(roots, func(c complex128) bool { return usableRealRoot(c, eps) }) {
		return math.NaN(), ErrNoPositiveRoot
	}

	rate, found := math.NaN(), false
	for _, c := range roots {
		if !usableRealRoot(c, eps) {
			continue
		}
		r := 1/real(c) - 1
		// NaN never wins a comparison, it is kept only if nothing else shows up.
		if !found || math.Abs(r) < math.Abs(rate) {
			rate, found = r, true
		}
	}
	return rate, nil
}

func (s Solver) tolerance() float64 {
	switch {
	case s.ImagTolerance == 0:
		return DefaultImagTolerance
	case s.ImagTolerance < 0:
		return 0
	default:
		return s.ImagTolerance
	}
}

// usableRealRoot reports whether c is a real positive root, up to a relative
// tolerance eps on its imaginary part.
func usableRealRoot(c complex128, eps float64) bool {
	re, im := real(c), imag(c)
	return re > 0 && math.Abs(im) <= eps*math.Max(1, math.Abs(re))
}

// NPV returns the net present value of equally spaced cash flows discounted
// at rate, cashflows[0] being undiscounted.
func NPV(rate float64, cashflows []float64) float64 {
	var npv float64
	discount := 1.0
	for _, cf := range cashflows {
		npv += cf / discount
		discount *= 1 + rate
	}
	return npv
}
