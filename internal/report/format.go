// Package report turns aggregation results into display-ready values: KPI
// tiles, the top campaigns table and the CSV export.
package report

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// USD formats v as whole dollars with thousands separators, e.g. $12,346.
// Halves round to even.
func USD(v float64) string {
	return printer.Sprintf("$%d", int64(math.RoundToEven(v)))
}

// Percent formats v with one decimal, e.g. 50.0%.
func Percent(v float64) string {
	return printer.Sprintf("%.1f%%", v)
}

// Count formats n with thousands separators.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}
