package finmath

import (
	"fmt"
	"math"
)

// Percent is a rate expressed in percent, 5.2 means 5.2%.
type Percent float64

// Rate converts a rate (0.052) into a Percent (5.2%).
func Rate(r float64) Percent { return Percent(100 * r) }

// Rate returns the percent as a plain rate.
func (p Percent) Rate() float64 { return float64(p) / 100 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	if math.IsNaN(float64(p)) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	if math.IsNaN(float64(p)) {
		return "n/a"
	}
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}
