package models

import (
	"math"
	"strconv"
)

// Percent computes round(100*a/b). A zero denominator reads as 0% rather
// than NaN; PercentDisplay renders the dash for the defective x/0 case.
func Percent(a, b int) int {
	if b == 0 {
		return 0
	}
	return int(math.Round(100 * float64(a) / float64(b)))
}

// PercentDisplay formats a ratio for presentation. 0/0 shows "0%", a
// non-zero numerator over zero shows "—" instead of propagating a
// non-numeric value into the UI.
func PercentDisplay(a, b int) string {
	if b == 0 {
		if a == 0 {
			return "0%"
		}
		return "—"
	}
	return strconv.Itoa(Percent(a, b)) + "%"
}
