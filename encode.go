package finmath

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file decodes input series.
//
// Series are stored as JSONL, one period per line, in chronological order,
// so that they stay human-readable and git-friendly:
//
//	cash flows:  {"amount":-100,"currency":"EUR"} or simply -100
//	valuations:  {"begin":100,"end":120,"flow":2,"currency":"EUR"}
//
// Empty lines are ignored. All lines must share the same currency, if any.

// DecodeCashFlows decodes a JSONL stream of cash flows.
// name is for error messages only.
func DecodeCashFlows(name string, r io.Reader) ([]Amount, error) {
	type jflow struct {
		Amount   *decimal.Decimal `json:"amount"`
		Currency string           `json:"currency"`
	}

	var flows []Amount
	var currency string
	err := scanLines(r, func(i int, line string) error {
		var jf jflow
		if strings.HasPrefix(line, "{") {
			if err := json.Unmarshal([]byte(line), &jf); err != nil {
				return fmt.Errorf("parse error %s:%v: not a correct json: %w", name, i, err)
			}
			if jf.Amount == nil {
				return fmt.Errorf("parse error %s:%v: missing the property %q", name, i, "amount")
			}
		} else {
			d, err := decimal.NewFromString(line)
			if err != nil {
				return fmt.Errorf("parse error %s:%v: not a number %q: %w", name, i, line, err)
			}
			jf.Amount = &d
		}
		if err := sameCurrency(&currency, jf.Currency); err != nil {
			return fmt.Errorf("parse error %s:%v: %w", name, i, err)
		}
		flows = append(flows, Amount{value: *jf.Amount, cur: jf.Currency})
		return nil
	})
	return flows, err
}

// DecodeValuations decodes a JSONL stream of valuations.
// name is for error messages only.
func DecodeValuations(name string, r io.Reader) (Valuations, error) {
	type jvaluation struct {
		Begin    *decimal.Decimal `json:"begin"`
		End      *decimal.Decimal `json:"end"`
		Flow     decimal.Decimal  `json:"flow"`
		Currency string           `json:"currency"`
	}

	var vs Valuations
	var currency string
	err := scanLines(r, func(i int, line string) error {
		var jv jvaluation
		if err := json.Unmarshal([]byte(line), &jv); err != nil {
			return fmt.Errorf("parse error %s:%v: not a correct json: %w", name, i, err)
		}
		if jv.Begin == nil {
			return fmt.Errorf("parse error %s:%v: missing the property %q", name, i, "begin")
		}
		if jv.End == nil {
			return fmt.Errorf("parse error %s:%v: missing the property %q", name, i, "end")
		}
		if err := sameCurrency(&currency, jv.Currency); err != nil {
			return fmt.Errorf("parse error %s:%v: %w", name, i, err)
		}
		vs = append(vs, Valuation{
			Begin: Amount{value: *jv.Begin, cur: jv.Currency},
			End:   Amount{value: *jv.End, cur: jv.Currency},
			Flow:  Amount{value: jv.Flow, cur: jv.Currency},
		})
		return nil
	})
	return vs, err
}

// ExtractSeries evaluates a jsonpath expression on a decoded JSON document
// (as produced by json.Unmarshal into an any) and returns the numbers it
// selects, in order.
func ExtractSeries(doc any, path string) ([]float64, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath returns either a single value or a list of them.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}
	series := make([]float64, 0, len(jlist))
	for i, v := range jlist {
		switch n := v.(type) {
		case float64:
			series = append(series, n)
		case json.Number:
			f, err := n.Float64()
			if err != nil {
				return nil, fmt.Errorf("error evaluating %q: item %d: %w", path, i, err)
			}
			series = append(series, f)
		default:
			return nil, fmt.Errorf("error evaluating %q: item %d is not a number: %v", path, i, v)
		}
	}
	return series, nil
}

// scanLines calls fn for each non empty line, with its 1-based line number.
func scanLines(r io.Reader, fn func(i int, line string) error) error {
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := fn(i, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// sameCurrency records the first non empty currency in *seen and fails if cur
// differs from it.
func sameCurrency(seen *string, cur string) error {
	if cur == "" {
		return nil
	}
	if *seen == "" {
		*seen = cur
		return nil
	}
	if *seen != cur {
		return fmt.Errorf("currency mismatch %q != %q", cur, *seen)
	}
	return nil
}
