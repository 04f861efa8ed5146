package model

import "math"

// CategoryTotal is one row of the backend's top-categories aggregate for the
// current month. Rows arrive sorted by total, largest first.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// SumTotals returns the combined spending across summary rows, rounded to
// two decimals.
func SumTotals(rows []CategoryTotal) float64 {
	var total float64
	for _, r := range rows {
		total += r.Total
	}
	return math.Round(total*100) / 100
}

// MaxTotal returns the largest row total, with a floor of 1 so share bars
// never divide by zero.
func MaxTotal(rows []CategoryTotal) float64 {
	max := 1.0
	for _, r := range rows {
		if r.Total > max {
			max = r.Total
		}
	}
	return max
}
