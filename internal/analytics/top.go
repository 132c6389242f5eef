package analytics

import (
	"sort"

	"fundboard/internal/core/domain"
)

// TopN returns up to n campaigns with the highest field value, highest
// first. Ties keep their input order. n <= 0 yields an empty result.
func TopN(campaigns []domain.Campaign, n int, field ValueField) []domain.Campaign {
	if n <= 0 {
		return []domain.Campaign{}
	}
	sorted := make([]domain.Campaign, len(campaigns))
	copy(sorted, campaigns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return field.Value(sorted[i]) > field.Value(sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
