// Package analytics filters the campaign dataset and computes the
// aggregates shown on the dashboard. Every function is pure and total.
package analytics

import (
	"slices"

	"fundboard/internal/core/domain"
)

// Filter returns the campaigns matching spec in their original order.
// Dates are compared by calendar day, both bounds inclusive. The input is
// never modified; the result is a fresh slice.
func Filter(campaigns []domain.Campaign, spec domain.FilterSpec) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(campaigns))
	if len(spec.Countries) == 0 || len(spec.Categories) == 0 {
		return out
	}
	from, to := domain.Day(spec.From), domain.Day(spec.To)
	if from.After(to) {
		return out
	}
	for _, c := range campaigns {
		if !slices.Contains(spec.Countries, c.Country) {
			continue
		}
		if !slices.Contains(spec.Categories, c.Category) {
			continue
		}
		day := domain.Day(c.CreatedAt)
		if day.Before(from) || day.After(to) {
			continue
		}
		out = append(out, c)
	}
	return out
}
