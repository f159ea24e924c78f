package finmath

// EUR is a helper for test to create euro amounts from const
func EUR(v float64) Amount { return A(v, "EUR") }

// USD is a helper for test to create usd amounts from const
func USD(v float64) Amount { return A(v, "USD") }

// NO is a helper for test to create amounts from const with no currency set
func NO(v float64) Amount { return A(v, "") }
