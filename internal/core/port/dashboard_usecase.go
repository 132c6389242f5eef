package port

import (
	"context"
	"errors"
	"time"

	"fundboard/internal/analytics"
	"fundboard/internal/core/domain"
	"fundboard/internal/report"
)

var ErrInvalidFilter = errors.New("invalid filter")

// DashboardUseCase defines the operations exposed by the dashboard engine.
// An empty session id addresses the default session created at startup.
// Mock implementations can be generated from this interface for testing.
type DashboardUseCase interface {
	// Meta describes the enums, window and default filter of the default
	// session.
	Meta(ctx context.Context) Meta

	// CreateSession generates a fresh dataset owned by a new session. A nil
	// seed uses the configured seed.
	CreateSession(ctx context.Context, seed *int64) (*SessionInfo, error)

	// GetSession returns the session's description or ErrSessionNotFound.
	GetSession(ctx context.Context, id string) (*SessionInfo, error)

	// DeleteSession drops a session. The default session cannot be deleted.
	DeleteSession(ctx context.Context, id string) error

	// Dashboard filters the session's campaigns with spec and recomputes
	// every aggregation from scratch.
	Dashboard(ctx context.Context, id string, spec domain.FilterSpec) (*Dashboard, error)

	// Campaigns returns the filtered campaign view.
	Campaigns(ctx context.Context, id string, spec domain.FilterSpec) ([]domain.Campaign, error)
}

// SessionInfo describes a session without its dataset.
type SessionInfo struct {
	ID        string        `json:"id"`
	Seed      int64         `json:"seed"`
	Window    domain.Window `json:"window"`
	Pinned    bool          `json:"pinned"`
	CreatedAt time.Time     `json:"created_at"`
	LastSeen  time.Time     `json:"last_seen"`
}

// Meta lists the values a filter UI offers.
type Meta struct {
	Countries     []domain.Country  `json:"countries"`
	Categories    []domain.Category `json:"categories"`
	Window        domain.Window     `json:"window"`
	DefaultFilter domain.FilterSpec `json:"default_filter"`
}

// Dashboard is every aggregation derived from one filtered view. It is a
// DTO for the presentation layer and carries no behaviour.
type Dashboard struct {
	SessionID string                 `json:"session_id"`
	Filter    domain.FilterSpec      `json:"filter"`
	KPIs      analytics.KPIs         `json:"kpis"`
	Tiles     []report.Tile          `json:"tiles"`
	Category  []analytics.GroupSum   `json:"raised_by_category"`
	Country   []analytics.CountrySum `json:"raised_by_country"`
	Monthly   []analytics.MonthPoint `json:"monthly_raised"`
	Top       []report.TopRow        `json:"top_campaigns"`
	Donors    DonorSection           `json:"donors"`
	Salaries  SalarySection          `json:"salaries"`
}

// DonorSection holds the donor analytics tab.
type DonorSection struct {
	KPIs     analytics.DonorKPIs  `json:"kpis"`
	Tiles    []report.Tile        `json:"tiles"`
	Channels []analytics.GroupSum `json:"by_channel"`
}

// SalarySection holds salary box summaries keyed by dimension.
type SalarySection struct {
	ByRole    []analytics.BoxStats `json:"by_role"`
	ByCountry []analytics.BoxStats `json:"by_country"`
	BySector  []analytics.BoxStats `json:"by_sector"`
	ByGender  []analytics.BoxStats `json:"by_gender"`
}
