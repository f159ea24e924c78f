package finmath

import "fmt"

// Valuation holds the values of a portfolio over one period.
type Valuation struct {
	Begin Amount // value at the start of the period
	End   Amount // value at the end of the period
	Flow  Amount // cash received during the period
}

// HPR returns the holding period return of the period.
//
// The gain is computed exactly, only the final ratio is a float.
func (v Valuation) HPR() float64 {
	gain := v.End.Sub(v.Begin).Add(v.Flow)
	return gain.AsFloat() / v.Begin.AsFloat()
}

// Valuations is a chronological sequence of periods.
type Valuations []Valuation

// Series returns the three parallel series ending, beginning and cashflows.
func (vs Valuations) Series() (ending, beginning, cashflows []float64) {
	ending = make([]float64, len(vs))
	beginning = make([]float64, len(vs))
	cashflows = make([]float64, len(vs))
	for i, v := range vs {
		ending[i] = v.End.AsFloat()
		beginning[i] = v.Begin.AsFloat()
		cashflows[i] = v.Flow.AsFloat()
	}
	return
}

// HPRs returns the holding period return of each period.
func (vs Valuations) HPRs() []float64 {
	hprs := make([]float64, len(vs))
	for i, v := range vs {
		hprs[i] = v.HPR()
	}
	return hprs
}

// TWRR returns the time weighted rate of return over all periods, or
// ErrNoPeriods.
func (vs Valuations) TWRR() (float64, error) {
	return TWRRE(vs.Series())
}

// Currency returns the common currency of the valuations, or "" if there is
// none.
func (vs Valuations) Currency() string {
	for _, v := range vs {
		for _, a := range []Amount{v.Begin, v.End, v.Flow} {
			if a.Currency() != "" {
				return a.Currency()
			}
		}
	}
	return ""
}

// NewValuations zips three parallel series into valuations. It returns
// ErrLengthMismatch, or an error if the amounts are not all in the same
// currency.
func NewValuations(ending, beginning, cashflows []Amount) (Valuations, error) {
	if len(ending) != len(beginning) || len(ending) != len(cashflows) {
		return nil, fmt.Errorf("ending=%d beginning=%d cashflows=%d: %w", len(ending), len(beginning), len(cashflows), ErrLengthMismatch)
	}
	var currency string
	for _, series := range [][]Amount{ending, beginning, cashflows} {
		for i, a := range series {
			if err := sameCurrency(&currency, a.Currency()); err != nil {
				return nil, fmt.Errorf("period %d: %w", i+1, err)
			}
		}
	}
	vs := make(Valuations, len(ending))
	for i := range ending {
		vs[i] = Valuation{
			Begin: beginning[i],
			End:   ending[i],
			Flow:  cashflows[i],
		}
	}
	return vs, nil
}
