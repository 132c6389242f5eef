package httpadapter

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundboard/internal/analytics"
	"fundboard/internal/core/domain"
	"fundboard/internal/core/port"
	"fundboard/internal/core/port/mocks"
)

func newTestHandler(t *testing.T, opts Options) (*mocks.MockDashboardUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockDashboardUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger, opts).Router()
}

func serve(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, body))
	return rec
}

func TestParseFilterDefaults(t *testing.T) {
	spec, err := parseFilter(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, domain.Countries, spec.Countries)
	assert.Equal(t, domain.Categories, spec.Categories)
	assert.True(t, spec.From.IsZero())
	assert.True(t, spec.To.IsZero())
}

func TestParseFilterExplicitValues(t *testing.T) {
	q, err := url.ParseQuery("country=USA,Spain&country=Mexico&category=Natural+Disasters&from=2025-02-01&to=2025-03-15")
	require.NoError(t, err)

	spec, err := parseFilter(q)
	require.NoError(t, err)
	assert.Equal(t, []domain.Country{domain.CountryUSA, domain.CountrySpain, domain.CountryMexico}, spec.Countries)
	assert.Equal(t, []domain.Category{domain.CategoryNaturalDisasters}, spec.Categories)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), spec.From)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), spec.To)
}

func TestParseFilterEmptySelection(t *testing.T) {
	q, err := url.ParseQuery("country=&category=")
	require.NoError(t, err)

	spec, err := parseFilter(q)
	require.NoError(t, err)
	assert.NotNil(t, spec.Countries)
	assert.Empty(t, spec.Countries)
	assert.Empty(t, spec.Categories)
}

func TestParseFilterBadDate(t *testing.T) {
	_, err := parseFilter(url.Values{"from": {"07/01/2025"}})
	assert.Error(t, err)
	_, err = parseFilter(url.Values{"to": {"2025-13-01"}})
	assert.Error(t, err)
}

func TestDashboardDefaultSession(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().
		Dashboard(mock.Anything, "", mock.MatchedBy(func(s domain.FilterSpec) bool {
			return len(s.Countries) == 5 && len(s.Categories) == 5
		})).
		Return(&port.Dashboard{SessionID: "default", KPIs: analytics.KPIs{TotalCount: 300}}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got port.Dashboard
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 300, got.KPIs.TotalCount)
}

func TestDashboardForSession(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().
		Dashboard(mock.Anything, "abc", mock.MatchedBy(func(s domain.FilterSpec) bool {
			return len(s.Countries) == 1 && s.Countries[0] == domain.CountryUSA &&
				s.From.Equal(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
		})).
		Return(&port.Dashboard{SessionID: "abc"}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/sessions/abc/dashboard?country=USA&from=2025-02-01", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"unknown session", fmt.Errorf("get session x: %w", port.ErrSessionNotFound), http.StatusNotFound},
		{"invalid filter", fmt.Errorf("%w: unknown country %q", port.ErrInvalidFilter, "Atlantis"), http.StatusBadRequest},
		{"internal", fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, h := newTestHandler(t, Options{})
			svc.EXPECT().Dashboard(mock.Anything, "x", mock.Anything).Return(nil, tt.err)

			rec := serve(h, http.MethodGet, "/api/v1/sessions/x/dashboard", nil)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestDashboardBadDateSkipsUseCase(t *testing.T) {
	_, h := newTestHandler(t, Options{})
	rec := serve(h, http.MethodGet, "/api/v1/dashboard?to=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportCSV(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().Campaigns(mock.Anything, "", mock.Anything).Return([]domain.Campaign{{
		ID: 3, Name: "Campaign 3", Category: domain.CategoryAnimals, Country: domain.CountryBrazil,
		GoalUSD: 9000, CreatedAt: time.Date(2025, time.April, 9, 0, 0, 0, 0, time.UTC),
		RaisedUSD: 9500.25, Status: domain.StatusGoalReached,
	}}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/export.csv", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "filtered_campaigns.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,category,country,goal_usd,created_at,raised_usd,status", lines[0])
	assert.Equal(t, "3,Campaign 3,Animals,Brazil,9000,2025-04-09,9500.25,Goal Reached", lines[1])
}

func TestExportRateLimited(t *testing.T) {
	svc, h := newTestHandler(t, Options{ExportRPS: 0.001, ExportBurst: 1})
	svc.EXPECT().Campaigns(mock.Anything, "s1", mock.Anything).Return(nil, nil).Once()

	first := serve(h, http.MethodGet, "/api/v1/sessions/s1/export.csv", nil)
	assert.Equal(t, http.StatusOK, first.Code)

	second := serve(h, http.MethodGet, "/api/v1/sessions/s1/export.csv", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestCampaigns(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().
		Campaigns(mock.Anything, "", mock.MatchedBy(func(s domain.FilterSpec) bool { return len(s.Countries) == 0 })).
		Return([]domain.Campaign{}, nil)

	rec := serve(h, http.MethodGet, "/api/v1/campaigns?country=", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCreateSession(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().
		CreateSession(mock.Anything, mock.MatchedBy(func(seed *int64) bool { return seed != nil && *seed == 7 })).
		Return(&port.SessionInfo{ID: "new", Seed: 7}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/sessions", strings.NewReader(`{"seed": 7}`))
	require.Equal(t, http.StatusCreated, rec.Code)

	var got port.SessionInfo
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "new", got.ID)
	assert.Equal(t, int64(7), got.Seed)
}

func TestCreateSessionEmptyBody(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().
		CreateSession(mock.Anything, mock.MatchedBy(func(seed *int64) bool { return seed == nil })).
		Return(&port.SessionInfo{ID: "new", Seed: 42}, nil)

	rec := serve(h, http.MethodPost, "/api/v1/sessions", http.NoBody)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateSessionBadJSON(t *testing.T) {
	_, h := newTestHandler(t, Options{})
	rec := serve(h, http.MethodPost, "/api/v1/sessions", strings.NewReader(`{"seed":`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAndDeleteSession(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().GetSession(mock.Anything, "abc").Return(&port.SessionInfo{ID: "abc"}, nil)
	svc.EXPECT().DeleteSession(mock.Anything, "abc").Return(nil)
	svc.EXPECT().DeleteSession(mock.Anything, "default").Return(port.ErrSessionPinned)

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/v1/sessions/abc", nil).Code)
	assert.Equal(t, http.StatusNoContent, serve(h, http.MethodDelete, "/api/v1/sessions/abc", nil).Code)
	assert.Equal(t, http.StatusConflict, serve(h, http.MethodDelete, "/api/v1/sessions/default", nil).Code)
}

func TestMeta(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	w := domain.DefaultWindow()
	svc.EXPECT().Meta(mock.Anything).Return(port.Meta{
		Countries:     domain.Countries,
		Categories:    domain.Categories,
		Window:        w,
		DefaultFilter: domain.DefaultFilter(w),
	})

	rec := serve(h, http.MethodGet, "/api/v1/meta", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Natural Disasters"`)
}

func TestHealthAndMetrics(t *testing.T) {
	_, h := newTestHandler(t, Options{})
	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/healthz", nil).Code)

	rec := serve(h, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fundboard_http_request_duration_seconds")
}
