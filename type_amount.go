package finmath

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents an exact value, optionally in a currency.
type Amount struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// A creates an Amount from a number.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Amount {
	return Amount{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseAmount parses a decimal string into an Amount.
func ParseAmount(s, currency string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d, cur: currency}, nil
}

// String returns the amount formatted in its currency, or as a plain number
// when there is no currency.
func (a Amount) String() string {
	if a.cur == "" {
		return a.value.String()
	}
	// to get a never nil currency I need to call the Money constructor
	cur := money.New(0, a.cur).Currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (a Amount) Currency() string         { return a.cur }
func (a Amount) Equal(b Amount) bool      { return a.value.Equal(b.value) && a.cur == b.cur }
func (a Amount) IsZero() bool             { return a.value.IsZero() }
func (a Amount) IsNegative() bool         { return a.value.IsNegative() }
func (a Amount) Neg() Amount              { return Amount{value: a.value.Neg(), cur: a.cur} }
func (a Amount) Add(b Amount) Amount      { return Amount{value: a.value.Add(b.value), cur: cur(a, b)} }
func (a Amount) Sub(b Amount) Amount      { return Amount{value: a.value.Sub(b.value), cur: cur(a, b)} }
func (a Amount) AsFloat() float64         { return a.value.InexactFloat64() }
func (a Amount) Decimal() decimal.Decimal { return a.value }

// makes the "" currency totally weak.
func cur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// Floats converts amounts to floats.
func Floats(amounts []Amount) []float64 {
	fs := make([]float64, len(amounts))
	for i, a := range amounts {
		fs[i] = a.AsFloat()
	}
	return fs
}
