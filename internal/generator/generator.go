// Package generator synthesizes the campaign, donor and salary datasets.
// All randomness comes from an explicitly passed *rand.Rand.
package generator

import (
	"fmt"
	"math"
	"math/rand"

	"fundboard/internal/core/domain"
)

const (
	CampaignCount = 300
	SalaryCount   = 200
	// DonorPoolSize is the donor count for the full, unfiltered campaign set.
	DonorPoolSize = CampaignCount / 2

	MinGoalUSD = 5000
	MaxGoalUSD = 50000 // exclusive

	MinRaisedRatio = 0.2
	MaxRaisedRatio = 1.3

	meanDonations   = 2.0
	minDonatedUSD   = 10.0
	maxDonatedUSD   = 500.0
	minAge          = 22
	maxAge          = 60 // exclusive
	meanSalaryUSD   = 50000.0
	salaryStdDevUSD = 15000.0
)

// Generator draws entities from rng over a simulation window.
type Generator struct {
	rng    *rand.Rand
	window domain.Window
}

// New returns a Generator that consumes rng. The caller must not share rng
// with other goroutines.
func New(rng *rand.Rand, window domain.Window) *Generator {
	return &Generator{rng: rng, window: window}
}

// Generate builds the full dataset for seed. Identical seeds and windows
// yield identical datasets.
func Generate(seed int64, window domain.Window) domain.Dataset {
	g := New(NewSeededRNG(seed), window)
	return domain.Dataset{
		Seed:      seed,
		Window:    window,
		Campaigns: g.Campaigns(CampaignCount),
		Donors:    g.Donors(DonorPoolSize),
		Salaries:  g.Salaries(SalaryCount),
	}
}

// Campaigns draws n campaigns with ids 1..n.
func (g *Generator) Campaigns(n int) []domain.Campaign {
	start := domain.Day(g.window.Start)
	end := domain.Day(g.window.End)
	days := g.window.Days()

	out := make([]domain.Campaign, n)
	for i := range out {
		id := int64(i + 1)
		goal := int64(intRange(g.rng, MinGoalUSD, MaxGoalUSD))
		created := start.AddDate(0, 0, intRange(g.rng, 0, days))
		if created.After(end) {
			created = end
		}
		raised := float64(goal) * uniform(g.rng, MinRaisedRatio, MaxRaisedRatio)
		out[i] = domain.Campaign{
			ID:        id,
			Name:      fmt.Sprintf("Campaign %d", id),
			Category:  pick(g.rng, domain.Categories),
			Country:   pick(g.rng, domain.Countries),
			GoalUSD:   goal,
			CreatedAt: created,
			RaisedUSD: raised,
			Status:    domain.StatusFor(goal, raised),
		}
	}
	return out
}

// Donors draws n donors with ids 1..n.
func (g *Generator) Donors(n int) []domain.Donor {
	if n <= 0 {
		return []domain.Donor{}
	}
	out := make([]domain.Donor, n)
	for i := range out {
		out[i] = domain.Donor{
			ID:           int64(i + 1),
			Donations:    poisson(g.rng, meanDonations),
			Channel:      pick(g.rng, domain.Channels),
			TotalDonated: uniform(g.rng, minDonatedUSD, maxDonatedUSD),
		}
	}
	return out
}

// Salaries draws n salary records.
func (g *Generator) Salaries(n int) []domain.SalaryRecord {
	out := make([]domain.SalaryRecord, n)
	for i := range out {
		out[i] = domain.SalaryRecord{
			Role:      pick(g.rng, domain.Roles),
			Sector:    pick(g.rng, domain.Sectors),
			Country:   pick(g.rng, domain.Countries),
			Gender:    pick(g.rng, domain.Genders),
			Age:       intRange(g.rng, minAge, maxAge),
			SalaryUSD: math.Round(normal(g.rng, meanSalaryUSD, salaryStdDevUSD)),
		}
	}
	return out
}

// DonorsForView regenerates donors sized to a filtered view
// (floor(campaigns/2)). The source is derived from seed and the view size,
// so equal views always see equal donors.
func DonorsForView(seed int64, window domain.Window, campaigns int) []domain.Donor {
	n := campaigns / 2
	sub := NewSeededRNG(seed*31 + int64(n) + 1)
	return New(sub, window).Donors(n)
}
