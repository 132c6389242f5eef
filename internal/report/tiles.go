package report

import (
	"fundboard/internal/analytics"
	"fundboard/internal/core/domain"
)

// Tile is a labelled, pre-formatted KPI value.
type Tile struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CampaignTiles renders campaign KPIs in dashboard order.
func CampaignTiles(k analytics.KPIs) []Tile {
	return []Tile{
		{Label: "Total Raised", Value: USD(k.TotalRaised)},
		{Label: "Total Goal", Value: USD(float64(k.TotalGoal))},
		{Label: "Success Rate", Value: Percent(k.SuccessRatePct)},
		{Label: "Avg Raised/Campaign", Value: USD(k.AvgRaisedPerCampaign)},
		{Label: "Reached Goal", Value: Count(k.ReachedCount) + " / " + Count(k.TotalCount)},
	}
}

// DonorTiles renders donor KPIs in dashboard order.
func DonorTiles(k analytics.DonorKPIs) []Tile {
	return []Tile{
		{Label: "Donors", Value: Count(k.Count)},
		{Label: "New Donors (%)", Value: Percent(k.NewDonorPct)},
		{Label: "Retention Rate", Value: Percent(k.RetentionPct)},
		{Label: "Avg Donor Value", Value: USD(k.AvgValue)},
	}
}

// TopRow is a top campaigns table row with currency columns formatted.
type TopRow struct {
	ID        int64                 `json:"id"`
	Name      string                `json:"name"`
	Category  domain.Category       `json:"category"`
	Country   domain.Country        `json:"country"`
	GoalUSD   string                `json:"goal_usd"`
	RaisedUSD string                `json:"raised_usd"`
	Status    domain.CampaignStatus `json:"status"`
}

// TopTable formats campaigns, keeping their order.
func TopTable(campaigns []domain.Campaign) []TopRow {
	rows := make([]TopRow, len(campaigns))
	for i, c := range campaigns {
		rows[i] = TopRow{
			ID:        c.ID,
			Name:      c.Name,
			Category:  c.Category,
			Country:   c.Country,
			GoalUSD:   USD(float64(c.GoalUSD)),
			RaisedUSD: USD(c.RaisedUSD),
			Status:    c.Status,
		}
	}
	return rows
}
