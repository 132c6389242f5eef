package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundboard/internal/core/domain"
	"fundboard/internal/generator"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2025, m, d, 0, 0, 0, 0, time.UTC)
}

func campaign(id int64, cat domain.Category, country domain.Country, created time.Time, goal int64, raised float64) domain.Campaign {
	return domain.Campaign{
		ID:        id,
		Category:  cat,
		Country:   country,
		CreatedAt: created,
		GoalUSD:   goal,
		RaisedUSD: raised,
		Status:    domain.StatusFor(goal, raised),
	}
}

func dataset(t *testing.T) domain.Dataset {
	t.Helper()
	return generator.Generate(42, domain.DefaultWindow())
}

func TestFilterDefaultSelectsEverything(t *testing.T) {
	ds := dataset(t)
	got := Filter(ds.Campaigns, domain.DefaultFilter(ds.Window))
	assert.Equal(t, ds.Campaigns, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	ds := dataset(t)
	spec := domain.FilterSpec{
		Countries:  []domain.Country{domain.CountryUSA, domain.CountrySpain},
		Categories: []domain.Category{domain.CategoryHealth, domain.CategoryAnimals},
		From:       day(time.February, 10),
		To:         day(time.May, 31),
	}
	once := Filter(ds.Campaigns, spec)
	twice := Filter(once, spec)
	require.NotEmpty(t, once)
	assert.Equal(t, once, twice)
	for _, c := range once {
		assert.Contains(t, spec.Countries, c.Country)
		assert.Contains(t, spec.Categories, c.Category)
	}
}

func TestFilterEmptySelections(t *testing.T) {
	ds := dataset(t)
	full := domain.DefaultFilter(ds.Window)

	noCountries := full
	noCountries.Countries = nil
	assert.Empty(t, Filter(ds.Campaigns, noCountries))

	noCategories := full
	noCategories.Categories = []domain.Category{}
	assert.Empty(t, Filter(ds.Campaigns, noCategories))
}

func TestFilterInvertedRangeIsEmpty(t *testing.T) {
	ds := dataset(t)
	spec := domain.DefaultFilter(ds.Window)
	spec.From, spec.To = spec.To, spec.From
	assert.Empty(t, Filter(ds.Campaigns, spec))
}

func TestFilterBoundsAreInclusive(t *testing.T) {
	rows := []domain.Campaign{
		campaign(1, domain.CategoryHealth, domain.CountryUSA, day(time.March, 1), 100, 50),
		campaign(2, domain.CategoryHealth, domain.CountryUSA, day(time.March, 2), 100, 50),
		campaign(3, domain.CategoryHealth, domain.CountryUSA, day(time.March, 3), 100, 50),
	}
	spec := domain.FilterSpec{
		Countries:  []domain.Country{domain.CountryUSA},
		Categories: []domain.Category{domain.CategoryHealth},
		From:       day(time.March, 2),
		To:         day(time.March, 3).Add(15 * time.Hour),
	}
	got := Filter(rows, spec)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	ds := dataset(t)
	before := append([]domain.Campaign(nil), ds.Campaigns...)
	spec := domain.DefaultFilter(ds.Window)
	spec.Countries = []domain.Country{domain.CountryMexico}
	_ = Filter(ds.Campaigns, spec)
	assert.Equal(t, before, ds.Campaigns)
}

func TestComputeKPIsExample(t *testing.T) {
	rows := []domain.Campaign{
		campaign(1, domain.CategoryHealth, domain.CountryUSA, day(time.January, 5), 10000, 12000),
		campaign(2, domain.CategoryHealth, domain.CountryUSA, day(time.January, 6), 8000, 4000),
	}
	k := ComputeKPIs(rows)
	assert.Equal(t, 16000.0, k.TotalRaised)
	assert.Equal(t, int64(18000), k.TotalGoal)
	assert.Equal(t, 50.0, k.SuccessRatePct)
	assert.Equal(t, 8000.0, k.AvgRaisedPerCampaign)
	assert.Equal(t, 1, k.ReachedCount)
	assert.Equal(t, 2, k.TotalCount)
}

func TestComputeKPIsEmpty(t *testing.T) {
	assert.Equal(t, KPIs{}, ComputeKPIs(nil))
}

func TestSumByConservesTotals(t *testing.T) {
	ds := dataset(t)
	for _, key := range []KeyField{KeyCategory, KeyCountry, KeyMonth, KeyStatus} {
		for _, value := range []ValueField{ValueRaised, ValueGoal} {
			var sum float64
			groups := SumBy(ds.Campaigns, key, value)
			for i, g := range groups {
				sum += g.Sum
				if i > 0 {
					assert.Less(t, groups[i-1].Key, g.Key)
				}
			}
			assert.InDelta(t, Total(ds.Campaigns, value), sum, 1e-6, "%s/%s", key, value)
		}
	}
}

func TestSumByEmpty(t *testing.T) {
	assert.Empty(t, SumBy(nil, KeyCategory, ValueRaised))
	assert.Empty(t, CountryBreakdown(nil))
	assert.Empty(t, MonthlySeries(nil))
}

func TestMonthlySeries(t *testing.T) {
	rows := []domain.Campaign{
		campaign(1, domain.CategoryHealth, domain.CountryUSA, day(time.March, 20), 100, 10),
		campaign(2, domain.CategoryHealth, domain.CountryUSA, day(time.January, 2), 100, 20),
		campaign(3, domain.CategoryHealth, domain.CountryUSA, day(time.March, 1), 100, 30),
	}
	got := MonthlySeries(rows)
	require.Len(t, got, 2)
	assert.Equal(t, day(time.January, 1), got[0].Month)
	assert.Equal(t, 20.0, got[0].RaisedUSD)
	assert.Equal(t, day(time.March, 1), got[1].Month)
	assert.Equal(t, 40.0, got[1].RaisedUSD)
}

func TestMonthlySeriesIsChronological(t *testing.T) {
	got := MonthlySeries(dataset(t).Campaigns)
	require.Len(t, got, 7)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].Month.Before(got[i].Month))
	}
}

func TestCountryBreakdownCarriesISO(t *testing.T) {
	got := CountryBreakdown(dataset(t).Campaigns)
	require.Len(t, got, len(domain.Countries))
	for _, c := range got {
		assert.Equal(t, c.Country.ISO3(), c.ISO3)
		assert.NotEmpty(t, c.ISO3)
	}
}

func TestTopN(t *testing.T) {
	ds := dataset(t)
	top := TopN(ds.Campaigns, 10, ValueRaised)
	require.Len(t, top, 10)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].RaisedUSD, top[i].RaisedUSD)
	}
	for _, c := range ds.Campaigns {
		assert.LessOrEqual(t, c.RaisedUSD, top[0].RaisedUSD)
	}
}

func TestTopNSmallInputAndTies(t *testing.T) {
	rows := []domain.Campaign{
		campaign(1, domain.CategoryHealth, domain.CountryUSA, day(time.March, 1), 500, 10),
		campaign(2, domain.CategoryHealth, domain.CountryUSA, day(time.March, 1), 100, 30),
		campaign(3, domain.CategoryHealth, domain.CountryUSA, day(time.March, 1), 500, 30),
	}
	got := TopN(rows, 10, ValueRaised)
	require.Len(t, got, 3)
	assert.Equal(t, []int64{2, 3, 1}, []int64{got[0].ID, got[1].ID, got[2].ID})

	byGoal := TopN(rows, 2, ValueGoal)
	assert.Equal(t, []int64{1, 3}, []int64{byGoal[0].ID, byGoal[1].ID})

	assert.Empty(t, TopN(rows, 0, ValueRaised))
	assert.Equal(t, int64(1), rows[0].ID, "input order must be preserved")
}

func TestComputeDonorKPIs(t *testing.T) {
	donors := []domain.Donor{
		{ID: 1, Donations: 0, TotalDonated: 100},
		{ID: 2, Donations: 1, TotalDonated: 200},
		{ID: 3, Donations: 3, TotalDonated: 300},
		{ID: 4, Donations: 2, TotalDonated: 400},
	}
	k := ComputeDonorKPIs(donors)
	assert.Equal(t, 4, k.Count)
	assert.Equal(t, 25.0, k.NewDonorPct)
	assert.Equal(t, 50.0, k.RetentionPct)
	assert.Equal(t, 250.0, k.AvgValue)
}

func TestComputeDonorKPIsEmpty(t *testing.T) {
	assert.Equal(t, DonorKPIs{}, ComputeDonorKPIs(nil))
}

func TestChannelBreakdown(t *testing.T) {
	donors := []domain.Donor{
		{Channel: domain.ChannelSocial, TotalDonated: 10},
		{Channel: domain.ChannelEmail, TotalDonated: 5},
		{Channel: domain.ChannelSocial, TotalDonated: 2.5},
	}
	assert.Equal(t, []GroupSum{
		{Key: "Email", Sum: 5},
		{Key: "Social", Sum: 12.5},
	}, ChannelBreakdown(donors))
}

func TestSalaryBoxes(t *testing.T) {
	records := []domain.SalaryRecord{
		{Role: domain.RoleEngineer, SalaryUSD: 40},
		{Role: domain.RoleEngineer, SalaryUSD: 10},
		{Role: domain.RoleEngineer, SalaryUSD: 30},
		{Role: domain.RoleEngineer, SalaryUSD: 20},
		{Role: domain.RoleAnalyst, SalaryUSD: 7},
	}
	got := SalaryBoxes(records, ByRole)
	require.Len(t, got, 2)

	assert.Equal(t, BoxStats{Group: "Analyst", Count: 1, Min: 7, Q1: 7, Median: 7, Q3: 7, Max: 7, Mean: 7}, got[0])
	assert.Equal(t, BoxStats{Group: "Engineer", Count: 4, Min: 10, Q1: 17.5, Median: 25, Q3: 32.5, Max: 40, Mean: 25}, got[1])
}

func TestSalaryBoxesCoverAllRecords(t *testing.T) {
	ds := dataset(t)
	for _, dim := range SalaryDimensions {
		total := 0
		for _, b := range SalaryBoxes(ds.Salaries, dim) {
			total += b.Count
			assert.LessOrEqual(t, b.Min, b.Q1)
			assert.LessOrEqual(t, b.Q1, b.Median)
			assert.LessOrEqual(t, b.Median, b.Q3)
			assert.LessOrEqual(t, b.Q3, b.Max)
		}
		assert.Equal(t, len(ds.Salaries), total, string(dim))
	}
	assert.Empty(t, SalaryBoxes(nil, ByGender))
}
