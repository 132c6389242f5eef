package analytics

import (
	"math"
	"sort"

	"fundboard/internal/core/domain"
)

// SalaryDimension selects how salary records are grouped.
type SalaryDimension string

const (
	ByRole    SalaryDimension = "role"
	ByCountry SalaryDimension = "country"
	BySector  SalaryDimension = "sector"
	ByGender  SalaryDimension = "gender"
)

// SalaryDimensions lists the dimensions the dashboard renders.
var SalaryDimensions = []SalaryDimension{ByRole, ByCountry, BySector, ByGender}

// BoxStats is the five-number summary (plus count and mean) of one group.
type BoxStats struct {
	Group  string  `json:"group"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// SalaryBoxes summarises salaries per group of dim. Groups follow the
// enum order of the dimension; empty groups are omitted.
func SalaryBoxes(records []domain.SalaryRecord, dim SalaryDimension) []BoxStats {
	groups := make(map[string][]float64)
	for _, r := range records {
		k := dim.key(r)
		groups[k] = append(groups[k], r.SalaryUSD)
	}
	out := make([]BoxStats, 0, len(groups))
	for _, g := range dim.order() {
		values, ok := groups[g]
		if !ok {
			continue
		}
		out = append(out, box(g, values))
	}
	return out
}

func (d SalaryDimension) key(r domain.SalaryRecord) string {
	switch d {
	case ByRole:
		return string(r.Role)
	case ByCountry:
		return string(r.Country)
	case BySector:
		return string(r.Sector)
	case ByGender:
		return string(r.Gender)
	default:
		return ""
	}
}

func (d SalaryDimension) order() []string {
	var keys []string
	switch d {
	case ByRole:
		for _, v := range domain.Roles {
			keys = append(keys, string(v))
		}
	case ByCountry:
		for _, v := range domain.Countries {
			keys = append(keys, string(v))
		}
	case BySector:
		for _, v := range domain.Sectors {
			keys = append(keys, string(v))
		}
	case ByGender:
		for _, v := range domain.Genders {
			keys = append(keys, string(v))
		}
	}
	return keys
}

func box(group string, values []float64) BoxStats {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	var sum float64
	for _, v := range sorted {
		sum += v
	}
	return BoxStats{
		Group:  group,
		Count:  len(sorted),
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
		Mean:   sum / float64(len(sorted)),
	}
}

// quantile interpolates linearly between the closest ranks of sorted.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}
