package domain

import (
	"errors"
	"time"
)

// DateLayout is the calendar date format used in query parameters, config
// and CSV output.
const DateLayout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Window is the inclusive calendar range campaigns are simulated over.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DefaultWindow is Jan 1 2025 through Jul 24 2025.
func DefaultWindow() Window {
	return Window{
		Start: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.July, 24, 0, 0, 0, 0, time.UTC),
	}
}

// Days returns the number of whole days between Start and End.
func (w Window) Days() int {
	return int(Day(w.End).Sub(Day(w.Start)).Hours() / 24)
}

// Validate rejects windows that end before they start.
func (w Window) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return errors.New("window bounds must be set")
	}
	if Day(w.End).Before(Day(w.Start)) {
		return errors.New("window end is before window start")
	}
	return nil
}
