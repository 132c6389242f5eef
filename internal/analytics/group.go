package analytics

import (
	"sort"
	"time"

	"fundboard/internal/core/domain"
)

// KeyField selects the grouping key of a campaign.
type KeyField string

const (
	KeyCategory KeyField = "category"
	KeyCountry  KeyField = "country"
	KeyMonth    KeyField = "month"
	KeyStatus   KeyField = "status"
)

// ValueField selects the summed quantity of a campaign.
type ValueField string

const (
	ValueRaised ValueField = "raised_usd"
	ValueGoal   ValueField = "goal_usd"
)

// GroupSum is one entry of an ordered key→sum mapping.
type GroupSum struct {
	Key string  `json:"key"`
	Sum float64 `json:"sum"`
}

// MonthPoint is one entry of the monthly series. Month is the first day of
// the month in UTC.
type MonthPoint struct {
	Month     time.Time `json:"month"`
	RaisedUSD float64   `json:"raised_usd"`
}

// CountrySum is a per-country total carrying the code map charts need.
type CountrySum struct {
	Country   domain.Country `json:"country"`
	ISO3      string         `json:"iso3"`
	RaisedUSD float64        `json:"raised_usd"`
}

// Key returns the grouping key of c for field. Unknown fields group
// everything under the empty key.
func (f KeyField) Key(c domain.Campaign) string {
	switch f {
	case KeyCategory:
		return string(c.Category)
	case KeyCountry:
		return string(c.Country)
	case KeyMonth:
		return monthOf(c.CreatedAt).Format("2006-01")
	case KeyStatus:
		return string(c.Status)
	default:
		return ""
	}
}

// Value returns the quantity of c selected by field. Unknown fields yield 0.
func (f ValueField) Value(c domain.Campaign) float64 {
	switch f {
	case ValueRaised:
		return c.RaisedUSD
	case ValueGoal:
		return float64(c.GoalUSD)
	default:
		return 0
	}
}

// SumBy totals value per key, keys in ascending order. Only keys present in
// the view appear.
func SumBy(campaigns []domain.Campaign, key KeyField, value ValueField) []GroupSum {
	return groupSum(campaigns, key.Key, value.Value)
}

// Total sums value over the whole view.
func Total(campaigns []domain.Campaign, value ValueField) float64 {
	var sum float64
	for _, c := range campaigns {
		sum += value.Value(c)
	}
	return sum
}

// MonthlySeries totals raised amounts per creation month, oldest first.
func MonthlySeries(campaigns []domain.Campaign) []MonthPoint {
	sums := make(map[time.Time]float64)
	for _, c := range campaigns {
		sums[monthOf(c.CreatedAt)] += c.RaisedUSD
	}
	out := make([]MonthPoint, 0, len(sums))
	for m, s := range sums {
		out = append(out, MonthPoint{Month: m, RaisedUSD: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

// CountryBreakdown totals raised amounts per country, ordered by name.
func CountryBreakdown(campaigns []domain.Campaign) []CountrySum {
	sums := SumBy(campaigns, KeyCountry, ValueRaised)
	out := make([]CountrySum, len(sums))
	for i, s := range sums {
		c := domain.Country(s.Key)
		out[i] = CountrySum{Country: c, ISO3: c.ISO3(), RaisedUSD: s.Sum}
	}
	return out
}

// ChannelBreakdown totals donated amounts per acquisition channel, ordered
// by name.
func ChannelBreakdown(donors []domain.Donor) []GroupSum {
	return groupSum(donors,
		func(d domain.Donor) string { return string(d.Channel) },
		func(d domain.Donor) float64 { return d.TotalDonated },
	)
}

func groupSum[T any](rows []T, key func(T) string, value func(T) float64) []GroupSum {
	sums := make(map[string]float64)
	for _, r := range rows {
		sums[key(r)] += value(r)
	}
	out := make([]GroupSum, 0, len(sums))
	for k, s := range sums {
		out = append(out, GroupSum{Key: k, Sum: s})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func monthOf(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
