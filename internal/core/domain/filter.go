package domain

import "time"

// FilterSpec selects a view of the campaign dataset. Empty Countries or
// Categories select nothing. Zero From/To are resolved against the dataset
// window by Resolve.
type FilterSpec struct {
	Countries  []Country  `json:"countries"`
	Categories []Category `json:"categories"`
	From       time.Time  `json:"from"`
	To         time.Time  `json:"to"`
}

// DefaultFilter selects every country, every category and the full window.
func DefaultFilter(w Window) FilterSpec {
	return FilterSpec{
		Countries:  append([]Country(nil), Countries...),
		Categories: append([]Category(nil), Categories...),
		From:       Day(w.Start),
		To:         Day(w.End),
	}
}

// Resolve fills unset date bounds from w and truncates both bounds to days.
func (f FilterSpec) Resolve(w Window) FilterSpec {
	if f.From.IsZero() {
		f.From = w.Start
	}
	if f.To.IsZero() {
		f.To = w.End
	}
	f.From = Day(f.From)
	f.To = Day(f.To)
	return f
}
