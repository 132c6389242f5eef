package configs

import (
	"time"

	"fundboard/internal/core/domain"
)

// Date is a calendar date parsed from YYYY-MM-DD.
type Date struct {
	time.Time
}

// UnmarshalText implements encoding.TextUnmarshaler so env can parse dates.
func (d *Date) UnmarshalText(text []byte) error {
	t, err := time.Parse(domain.DateLayout, string(text))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Dataset controls synthetic data generation. Seed feeds the default
// session and any session created without an explicit seed. WindowStart and
// WindowEnd bound campaign creation dates, both inclusive.
type Dataset struct {
	Seed        int64 `env:"SEED" envDefault:"42"`
	WindowStart Date  `env:"WINDOW_START" envDefault:"2025-01-01"`
	WindowEnd   Date  `env:"WINDOW_END" envDefault:"2025-07-24"`

	// DonorsFollowFilter regenerates donors from the filtered campaign
	// count on every view, reproducing the coupling of the original
	// dashboard. Off by default.
	DonorsFollowFilter bool `env:"DONORS_FOLLOW_FILTER" envDefault:"false"`
}

// Window returns the configured simulation window.
func (d Dataset) Window() domain.Window {
	return domain.Window{Start: domain.Day(d.WindowStart.Time), End: domain.Day(d.WindowEnd.Time)}
}
