package domain

import "time"

// Dataset is everything generated from a single seed. It is never mutated
// after generation.
type Dataset struct {
	Seed      int64
	Window    Window
	Campaigns []Campaign
	Donors    []Donor
	Salaries  []SalaryRecord
}

// Session owns one dataset. Pinned sessions are never evicted.
type Session struct {
	ID        string
	Dataset   Dataset
	Pinned    bool
	CreatedAt time.Time
	LastSeen  time.Time
}
