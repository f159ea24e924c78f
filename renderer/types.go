package renderer

import "github.com/etnz/finmath"

// Summary is the headline of a rate report.
type Summary struct {
	Metric  string
	OK      bool
	Rate    finmath.Percent
	Periods int
	Reason  string
}

// IRR is the report of an internal rate of return.
type IRR struct {
	Summary  Summary
	Residual string
	Flows    []Flow
}

// Flow is one row of the cash flows table.
type Flow struct {
	Period     int
	Amount     string
	Discounted string
}

// TWRR is the report of a time weighted rate of return.
type TWRR struct {
	Summary Summary
	Periods []Period
}

// Period is one row of the valuations table.
type Period struct {
	Period int
	Begin  string
	End    string
	Flow   string
	HPR    finmath.Percent
}

func newSummary(metric string, res finmath.Result) Summary {
	s := Summary{Metric: metric, OK: res.OK(), Rate: res.Percent(), Periods: res.Periods}
	if res.Err != nil {
		s.Reason = res.Err.Error()
	}
	return s
}

// NewIRR builds the report of the internal rate of return of flows.
func NewIRR(flows []finmath.Amount, res finmath.Result) *IRR {
	r := &IRR{
		Summary:  newSummary("IRR", res),
		Residual: fmtFloat(res.Residual),
	}
	discount := 1.0
	for i, f := range flows {
		row := Flow{Period: i, Amount: f.String(), Discounted: "-"}
		if res.OK() {
			row.Discounted = fmtFloat(f.AsFloat() / discount)
			discount *= 1 + res.Rate
		}
		r.Flows = append(r.Flows, row)
	}
	return r
}

// NewTWRR builds the report of the time weighted rate of return of vs.
func NewTWRR(vs finmath.Valuations, res finmath.Result) *TWRR {
	r := &TWRR{Summary: newSummary("TWRR", res)}
	for i, v := range vs {
		r.Periods = append(r.Periods, Period{
			Period: i + 1,
			Begin:  v.Begin.String(),
			End:    v.End.String(),
			Flow:   v.Flow.String(),
			HPR:    finmath.Rate(v.HPR()),
		})
	}
	return r
}
