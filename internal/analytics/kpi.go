package analytics

import "fundboard/internal/core/domain"

// KPIs summarises a campaign view.
type KPIs struct {
	TotalRaised          float64 `json:"total_raised"`
	TotalGoal            int64   `json:"total_goal"`
	SuccessRatePct       float64 `json:"success_rate_pct"`
	AvgRaisedPerCampaign float64 `json:"avg_raised_per_campaign"`
	ReachedCount         int     `json:"reached_count"`
	TotalCount           int     `json:"total_count"`
}

// ComputeKPIs totals a view. Rates and averages are 0 for an empty view.
func ComputeKPIs(campaigns []domain.Campaign) KPIs {
	var k KPIs
	for _, c := range campaigns {
		k.TotalRaised += c.RaisedUSD
		k.TotalGoal += c.GoalUSD
		if c.Reached() {
			k.ReachedCount++
		}
	}
	k.TotalCount = len(campaigns)
	k.SuccessRatePct = percent(k.ReachedCount, k.TotalCount)
	if k.TotalCount > 0 {
		k.AvgRaisedPerCampaign = k.TotalRaised / float64(k.TotalCount)
	}
	return k
}

// DonorKPIs summarises a donor set.
type DonorKPIs struct {
	Count        int     `json:"count"`
	NewDonorPct  float64 `json:"new_donor_pct"`
	RetentionPct float64 `json:"retention_pct"`
	AvgValue     float64 `json:"avg_value"`
}

// ComputeDonorKPIs counts first-time (exactly one donation) and retained
// (more than one) donors. Everything is 0 for an empty set.
func ComputeDonorKPIs(donors []domain.Donor) DonorKPIs {
	var (
		first, repeat int
		total         float64
	)
	for _, d := range donors {
		switch {
		case d.Donations == 1:
			first++
		case d.Donations > 1:
			repeat++
		}
		total += d.TotalDonated
	}
	k := DonorKPIs{
		Count:        len(donors),
		NewDonorPct:  percent(first, len(donors)),
		RetentionPct: percent(repeat, len(donors)),
	}
	if k.Count > 0 {
		k.AvgValue = total / float64(k.Count)
	}
	return k
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return 100 * float64(part) / float64(whole)
}
