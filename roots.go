package finmath

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RootFinder computes all the complex roots of a real polynomial.
//
// Coefficients are given leading coefficient first, so that
//
//	coefficients = [a0, a1, ..., an]
//
// describes a0·x^n + a1·x^(n-1) + ... + an. This is the numpy `roots`
// convention.
type RootFinder interface {
	Roots(coefficients []float64) []complex128
}

// RootFinderFunc adapts an ordinary function to the RootFinder interface.
type RootFinderFunc func(coefficients []float64) []complex128

// Roots calls f(coefficients).
func (f RootFinderFunc) Roots(coefficients []float64) []complex128 { return f(coefficients) }

// Companion finds roots as the eigenvalues of the companion matrix.
// It is the default RootFinder.
type Companion struct{}

// Roots implements RootFinder.
func (Companion) Roots(coefficients []float64) []complex128 {
	coef, zeros, ok := trimPolynomial(coefficients)
	if !ok {
		return nil
	}
	roots := make([]complex128, 0, len(coef)-1+zeros)

	n := len(coef) - 1
	if n > 0 {
		// first row is -a[1:]/a[0], ones on the sub diagonal.
		a := mat.NewDense(n, n, nil)
		for j := 0; j < n; j++ {
			a.Set(0, j, -coef[j+1]/coef[0])
		}
		for i := 1; i < n; i++ {
			a.Set(i, i-1, 1)
		}
		var eig mat.Eigen
		if !eig.Factorize(a, mat.EigenNone) {
			return nil
		}
		roots = append(roots, eig.Values(nil)...)
	}

	for i := 0; i < zeros; i++ {
		roots = append(roots, 0)
	}
	return roots
}

// trimPolynomial strips leading zeros (they lower the degree) and trailing
// zeros (each is a root at 0, returned as a count). ok is false when nothing
// is left to solve, or when a coefficient is not finite.
func trimPolynomial(coefficients []float64) (coef []float64, zeros int, ok bool) {
	for _, c := range coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, 0, false
		}
	}
	first, last := 0, len(coefficients)
	for first < last && coefficients[first] == 0 {
		first++
	}
	for last > first && coefficients[last-1] == 0 {
		last--
	}
	if first == last {
		// all zero
		return nil, 0, false
	}
	coef = coefficients[first:last]
	zeros = len(coefficients) - last
	if len(coef) == 1 && zeros == 0 {
		// non zero constant
		return nil, 0, false
	}
	return coef, zeros, true
}
