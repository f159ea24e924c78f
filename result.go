package finmath

// Result is the outcome of a rate computation, as reported to users.
type Result struct {
	Metric   string    // "irr" or "twrr"
	Rate     float64   // NaN when there is no solution
	Periods  int       // number of periods
	Currency string    // common currency of the inputs, if any
	Residual float64   // NPV at Rate, for irr only
	HPRs     []float64 // holding period returns, for twrr only
	Err      error     // why there is no solution
}

// IRRResult solves cashflows with s and reports the result.
func (s Solver) IRRResult(cashflows []float64) Result {
	rate, err := s.Solve(cashflows)
	res := Result{Metric: "irr", Rate: rate, Periods: max(len(cashflows)-1, 0), Err: err}
	if err == nil {
		res.Residual = NPV(rate, cashflows)
	}
	return res
}

// TWRRResult computes the time weighted return of vs and reports the result.
func TWRRResult(vs Valuations) Result {
	rate, err := vs.TWRR()
	return Result{
		Metric:   "twrr",
		Rate:     rate,
		Periods:  len(vs),
		Currency: vs.Currency(),
		HPRs:     vs.HPRs(),
		Err:      err,
	}
}

// OK reports whether the result holds a rate.
func (r Result) OK() bool { return r.Err == nil }

// Percent returns the rate as a Percent.
func (r Result) Percent() Percent { return Rate(r.Rate) }

func (r Result) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("metric", r.Metric)
	w.Append("rate", r.Rate)
	w.Append("periods", r.Periods)
	w.Optional("currency", r.Currency)
	if r.Metric == "irr" && r.OK() {
		w.Append("residual", r.Residual)
	}
	w.Optional("hprs", r.HPRs)
	if r.Err != nil {
		w.Append("error", r.Err.Error())
	}
	return w.MarshalJSON()
}
