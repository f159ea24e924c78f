package finmath

import (
	"fmt"
	"math"
)

// HPR returns the holding period return of a single period: the gain over
// the beginning value, counting cash received during the period.
//
// A zero beginning value is not checked, the result is then ±Inf or NaN.
func HPR(ending, beginning, cashflow float64) float64 {
	return (ending - beginning + cashflow) / beginning
}

// TWRR returns the time weighted rate of return of a sequence of periods
// described by three parallel series, as the geometric mean of (1+HPR) minus one.
//
// ok is false if the series differ in length or are empty.
func TWRR(ending, beginning, cashflows []float64) (rate float64, ok bool) {
	rate, err := TWRRE(ending, beginning, cashflows)
	return rate, err == nil
}

// TWRRE is TWRR returning ErrLengthMismatch or ErrNoPeriods instead of a
// boolean.
func TWRRE(ending, beginning, cashflows []float64) (float64, error) {
	if len(ending) != len(beginning) || len(ending) != len(cashflows) {
		return math.NaN(), fmt.Errorf("ending=%d beginning=%d cashflows=%d: %w", len(ending), len(beginning), len(cashflows), ErrLengthMismatch)
	}
	n := len(ending)
	if n == 0 {
		return math.NaN(), ErrNoPeriods
	}
	growth := 1.0
	for i := range ending {
		growth *= 1 + HPR(ending[i], beginning[i], cashflows[i])
	}
	return math.Pow(growth, 1/float64(n)) - 1, nil
}
