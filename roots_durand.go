package finmath

import (
	"math"
	"math/cmplx"
)

// DurandKerner finds roots with the Weierstrass (Durand-Kerner) simultaneous
// iteration. It needs no linear algebra but converges slowly on multiple
// roots.
type DurandKerner struct {
	MaxIter   int     // defaults to 1000
	Tolerance float64 // relative step size to stop at, defaults to 1e-14
}

// Roots implements RootFinder.
func (d DurandKerner) Roots(coefficients []float64) []complex128 {
	coef, zeros, ok := trimPolynomial(coefficients)
	if !ok {
		return nil
	}
	maxIter := d.MaxIter
	if maxIter <= 0 {
		maxIter = 1000
	}
	tol := d.Tolerance
	if tol <= 0 {
		tol = 1e-14
	}

	n := len(coef) - 1
	// monic form
	monic := make([]complex128, n+1)
	for i, c := range coef {
		monic[i] = complex(c/coef[0], 0)
	}

	// Start on a circle bounding all the roots (Cauchy bound), at angles that
	// are not symmetric with respect to the real axis.
	bound := 0.0
	for _, c := range monic[1:] {
		bound = math.Max(bound, cmplx.Abs(c))
	}
	bound++
	z := make([]complex128, n)
	for i := range z {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.4
		z[i] = cmplx.Rect(bound, angle)
	}

	for iter := 0; iter < maxIter; iter++ {
		var step float64
		for i := range z {
			den := complex(1, 0)
			for j := range z {
				if i != j {
					den *= z[i] - z[j]
				}
			}
			if den == 0 {
				// nudge coincident estimates apart
				z[i] += complex(tol, tol)
				step = math.Inf(1)
				continue
			}
			delta := horner(monic, z[i]) / den
			z[i] -= delta
			step = math.Max(step, cmplx.Abs(delta)/math.Max(1, cmplx.Abs(z[i])))
		}
		if step < tol {
			break
		}
	}
	for i := 0; i < zeros; i++ {
		z = append(z, 0)
	}
	return z
}

// horner evaluates a polynomial given leading coefficient first.
func horner(coef []complex128, x complex128) complex128 {
	var p complex128
	for _, c := range coef {
		p = p*x + c
	}
	return p
}
