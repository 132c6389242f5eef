package domain

import "time"

// Category is the cause a fundraising campaign belongs to.
type Category string

const (
	CategoryHealth           Category = "Health"
	CategoryEducation        Category = "Education"
	CategoryNaturalDisasters Category = "Natural Disasters"
	CategoryAnimals          Category = "Animals"
	CategoryCommunity        Category = "Community"
)

// Categories lists every campaign category in display order.
var Categories = []Category{
	CategoryHealth,
	CategoryEducation,
	CategoryNaturalDisasters,
	CategoryAnimals,
	CategoryCommunity,
}

// Country is where a campaign (or an employee) is located.
type Country string

const (
	CountryArgentina Country = "Argentina"
	CountryUSA       Country = "USA"
	CountryBrazil    Country = "Brazil"
	CountryMexico    Country = "Mexico"
	CountrySpain     Country = "Spain"
)

// Countries lists every supported country in display order.
var Countries = []Country{
	CountryArgentina,
	CountryUSA,
	CountryBrazil,
	CountryMexico,
	CountrySpain,
}

var countryISO = map[Country]string{
	CountryArgentina: "ARG",
	CountryUSA:       "USA",
	CountryBrazil:    "BRA",
	CountryMexico:    "MEX",
	CountrySpain:     "ESP",
}

// ISO3 returns the ISO 3166-1 alpha-3 code used by map charts, or an empty
// string for an unknown country.
func (c Country) ISO3() string {
	return countryISO[c]
}

// CampaignStatus is derived from a campaign's goal and raised amount.
type CampaignStatus string

const (
	StatusGoalReached CampaignStatus = "Goal Reached"
	StatusInProgress  CampaignStatus = "In Progress"
)

// Campaign represents a simulated fundraising campaign.
// Goals are whole dollars; raised amounts keep their fractional part.
type Campaign struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Category  Category       `json:"category"`
	Country   Country        `json:"country"`
	GoalUSD   int64          `json:"goal_usd"`
	CreatedAt time.Time      `json:"created_at"`
	RaisedUSD float64        `json:"raised_usd"`
	Status    CampaignStatus `json:"status"`
}

// StatusFor returns GoalReached when raised covers goal, InProgress otherwise.
func StatusFor(goal int64, raised float64) CampaignStatus {
	if raised >= float64(goal) {
		return StatusGoalReached
	}
	return StatusInProgress
}

// Reached reports whether the campaign met its goal.
func (c Campaign) Reached() bool {
	return c.Status == StatusGoalReached
}

// IsCategory reports whether s names a known category.
func IsCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// IsCountry reports whether s names a known country.
func IsCountry(s string) bool {
	for _, c := range Countries {
		if string(c) == s {
			return true
		}
	}
	return false
}
