package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fundboard/internal/analytics"
	"fundboard/internal/core/domain"
	"fundboard/internal/core/port"
	"fundboard/internal/generator"
	"fundboard/internal/metrics"
	"fundboard/internal/report"
)

var _ port.DashboardUseCase = (*DashboardUseCase)(nil)

// topCampaigns is the size of the top campaigns table.
const topCampaigns = 10

// Options configures dataset generation and session lifetime.
type Options struct {
	// Seed is used for the default session and for sessions created
	// without an explicit seed.
	Seed   int64
	Window domain.Window
	// DonorsFollowFilter regenerates donors from the filtered campaign
	// count on every view instead of using the fixed pool.
	DonorsFollowFilter bool
	// SessionTTL is how long an idle session survives. Zero disables
	// eviction.
	SessionTTL time.Duration
}

// DashboardUseCase implements port.DashboardUseCase. It owns session
// lifecycle and recomputes every aggregation on each call.
type DashboardUseCase struct {
	repo      port.SessionRepository
	opts      Options
	defaultID string
	now       func() time.Time
}

// NewDashboardUseCase creates a use case backed by repo. Call Bootstrap
// before serving requests so the default session exists.
func NewDashboardUseCase(repo port.SessionRepository, opts Options) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, opts: opts, now: time.Now}
}

// Bootstrap generates the pinned default session.
func (u *DashboardUseCase) Bootstrap(ctx context.Context) error {
	s := u.newSession(u.opts.Seed, true)
	if err := u.repo.Save(ctx, s); err != nil {
		return fmt.Errorf("save default session: %w", err)
	}
	u.defaultID = s.ID
	u.syncGauge(ctx)
	return nil
}

// DefaultSessionID returns the id assigned by Bootstrap.
func (u *DashboardUseCase) DefaultSessionID() string {
	return u.defaultID
}

// Meta describes the filter choices of the configured window.
func (u *DashboardUseCase) Meta(_ context.Context) port.Meta {
	return port.Meta{
		Countries:     domain.Countries,
		Categories:    domain.Categories,
		Window:        u.opts.Window,
		DefaultFilter: domain.DefaultFilter(u.opts.Window),
	}
}

// CreateSession generates a dataset for a new session.
func (u *DashboardUseCase) CreateSession(ctx context.Context, seed *int64) (*port.SessionInfo, error) {
	sd := u.opts.Seed
	if seed != nil {
		sd = *seed
	}
	s := u.newSession(sd, false)
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	u.syncGauge(ctx)
	return infoOf(s), nil
}

// GetSession returns a session description.
func (u *DashboardUseCase) GetSession(ctx context.Context, id string) (*port.SessionInfo, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return infoOf(s), nil
}

// DeleteSession removes an unpinned session.
func (u *DashboardUseCase) DeleteSession(ctx context.Context, id string) error {
	if id == "" || id == u.defaultID {
		return port.ErrSessionPinned
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	u.syncGauge(ctx)
	return nil
}

// Dashboard filters the session's campaigns and derives every aggregate
// from that view.
func (u *DashboardUseCase) Dashboard(ctx context.Context, id string, spec domain.FilterSpec) (*port.Dashboard, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = validate(spec); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() { metrics.RecordCompute(time.Since(start)) }()

	ds := s.Dataset
	spec = spec.Resolve(ds.Window)
	view := analytics.Filter(ds.Campaigns, spec)
	donors := u.donors(ds, len(view))

	kpis := analytics.ComputeKPIs(view)
	donorKPIs := analytics.ComputeDonorKPIs(donors)
	return &port.Dashboard{
		SessionID: s.ID,
		Filter:    spec,
		KPIs:      kpis,
		Tiles:     report.CampaignTiles(kpis),
		Category:  analytics.SumBy(view, analytics.KeyCategory, analytics.ValueRaised),
		Country:   analytics.CountryBreakdown(view),
		Monthly:   analytics.MonthlySeries(view),
		Top:       report.TopTable(analytics.TopN(view, topCampaigns, analytics.ValueRaised)),
		Donors: port.DonorSection{
			KPIs:     donorKPIs,
			Tiles:    report.DonorTiles(donorKPIs),
			Channels: analytics.ChannelBreakdown(donors),
		},
		Salaries: port.SalarySection{
			ByRole:    analytics.SalaryBoxes(ds.Salaries, analytics.ByRole),
			ByCountry: analytics.SalaryBoxes(ds.Salaries, analytics.ByCountry),
			BySector:  analytics.SalaryBoxes(ds.Salaries, analytics.BySector),
			ByGender:  analytics.SalaryBoxes(ds.Salaries, analytics.ByGender),
		},
	}, nil
}

// Campaigns returns the filtered view of the session's campaigns.
func (u *DashboardUseCase) Campaigns(ctx context.Context, id string, spec domain.FilterSpec) ([]domain.Campaign, error) {
	s, err := u.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = validate(spec); err != nil {
		return nil, err
	}
	return analytics.Filter(s.Dataset.Campaigns, spec.Resolve(s.Dataset.Window)), nil
}

// EvictIdle drops sessions idle for longer than the configured TTL and
// returns how many were removed.
func (u *DashboardUseCase) EvictIdle(ctx context.Context) (int, error) {
	if u.opts.SessionTTL <= 0 {
		return 0, nil
	}
	n, err := u.repo.DeleteIdle(ctx, u.now().Add(-u.opts.SessionTTL))
	if err != nil {
		return 0, fmt.Errorf("delete idle sessions: %w", err)
	}
	if n > 0 {
		metrics.SessionsEvicted.Add(float64(n))
		u.syncGauge(ctx)
	}
	return n, nil
}

func (u *DashboardUseCase) load(ctx context.Context, id string) (domain.Session, error) {
	if id == "" {
		id = u.defaultID
	}
	s, err := u.repo.Get(ctx, id)
	if err != nil {
		return domain.Session{}, fmt.Errorf("get session %s: %w", id, err)
	}
	if err = u.repo.Touch(ctx, id, u.now()); err != nil {
		return domain.Session{}, fmt.Errorf("touch session %s: %w", id, err)
	}
	return s, nil
}

// donors returns the fixed pool, or a pool sized to the view when donors
// follow the filter.
func (u *DashboardUseCase) donors(ds domain.Dataset, viewSize int) []domain.Donor {
	if u.opts.DonorsFollowFilter {
		return generator.DonorsForView(ds.Seed, ds.Window, viewSize)
	}
	return ds.Donors
}

func (u *DashboardUseCase) newSession(seed int64, pinned bool) domain.Session {
	now := u.now()
	return domain.Session{
		ID:        uuid.NewString(),
		Dataset:   generator.Generate(seed, u.opts.Window),
		Pinned:    pinned,
		CreatedAt: now,
		LastSeen:  now,
	}
}

func (u *DashboardUseCase) syncGauge(ctx context.Context) {
	if n, err := u.repo.Count(ctx); err == nil {
		metrics.SessionsActive.Set(float64(n))
	}
}

func validate(spec domain.FilterSpec) error {
	for _, c := range spec.Countries {
		if !domain.IsCountry(string(c)) {
			return fmt.Errorf("%w: unknown country %q", port.ErrInvalidFilter, c)
		}
	}
	for _, c := range spec.Categories {
		if !domain.IsCategory(string(c)) {
			return fmt.Errorf("%w: unknown category %q", port.ErrInvalidFilter, c)
		}
	}
	return nil
}

func infoOf(s domain.Session) *port.SessionInfo {
	return &port.SessionInfo{
		ID:        s.ID,
		Seed:      s.Dataset.Seed,
		Window:    s.Dataset.Window,
		Pinned:    s.Pinned,
		CreatedAt: s.CreatedAt,
		LastSeen:  s.LastSeen,
	}
}
