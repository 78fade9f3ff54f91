package core

import (
	"testing"

	"github.com/safecity/crimelens/schema"
	"github.com/stretchr/testify/assert"
)

// TestRankAreasSeverityMean: the severity average is an incremental mean over
// periods, not weighted by crime volume. Three periods with averages 1.0, 2.0
// and 3.0 come out as 2.0 regardless of how many crimes each period holds.
func TestRankAreasSeverityMean(t *testing.T) {
	rows := []schema.AreaPeriodAggregate{
		{Area: "Zone A", Period: "2026-01", CrimeCount: 100, AvgSeverityScore: 1.0},
		{Area: "Zone A", Period: "2026-02", CrimeCount: 1, AvgSeverityScore: 2.0},
		{Area: "Zone A", Period: "2026-03", CrimeCount: 1, AvgSeverityScore: 3.0},
	}

	ranking := RankAreas(rows)

	assert.Len(t, ranking.Forecasts, 1)
	forecast := ranking.Forecasts[0]
	assert.Equal(t, "Zone A", forecast.Area)
	assert.Equal(t, 2.0, forecast.AvgSeverity)
	assert.Equal(t, 102, forecast.TotalCrimes)
	assert.Equal(t, 34.0, forecast.CrimeFrequency)
}

// TestRankAreasScoring verifies the ranking score formula and tiering.
func TestRankAreasScoring(t *testing.T) {
	periods := []string{"2026-01", "2026-02", "2026-03", "2026-04", "2026-05", "2026-06"}

	rows := make([]schema.AreaPeriodAggregate, 0, 18)
	// Flat series: frequency 10, severity 2 -> score 10 + 4 = 14 (Medium,
	// trend 0 so no bonus).
	for _, p := range periods {
		rows = append(rows, schema.AreaPeriodAggregate{
			Area: "Steady", Period: p, CrimeCount: 10, AvgSeverityScore: 2.0,
		})
	}
	// Doubling series [10,10,10,20,20,20]: trend 100% (> 20) earns the +5
	// bonus; frequency 15, severity 1 -> 15 + 2 + 5 = 22 (High).
	for i, p := range periods {
		count := 10
		if i >= 3 {
			count = 20
		}
		rows = append(rows, schema.AreaPeriodAggregate{
			Area: "Surging", Period: p, CrimeCount: count, AvgSeverityScore: 1.0,
		})
	}
	// Flat low series: frequency 1, severity 1 -> score 3 (Low).
	for _, p := range periods {
		rows = append(rows, schema.AreaPeriodAggregate{
			Area: "Quiet", Period: p, CrimeCount: 1, AvgSeverityScore: 1.0,
		})
	}

	ranking := RankAreas(rows)

	assert.Len(t, ranking.Forecasts, 3)
	assert.Equal(t, "Surging", ranking.Forecasts[0].Area)
	assert.Equal(t, 22.0, ranking.Forecasts[0].RiskScore)
	assert.Equal(t, schema.TierHigh, ranking.Forecasts[0].RiskTier)
	assert.Equal(t, schema.TrendIncreasing, ranking.Forecasts[0].TrendDirection)

	assert.Equal(t, "Steady", ranking.Forecasts[1].Area)
	assert.Equal(t, 14.0, ranking.Forecasts[1].RiskScore)
	assert.Equal(t, schema.TierMedium, ranking.Forecasts[1].RiskTier)

	assert.Equal(t, "Quiet", ranking.Forecasts[2].Area)
	assert.Equal(t, schema.TierLow, ranking.Forecasts[2].RiskTier)

	assert.Equal(t, 3, ranking.Summary.TotalAreas)
	assert.Equal(t, 1, ranking.Summary.HighRisk)
	assert.Equal(t, 1, ranking.Summary.MediumRisk)
	assert.Equal(t, 1, ranking.Summary.LowRisk)
}

// TestRankAreasSummaryInvariant: tier counts always sum to the total.
func TestRankAreasSummaryInvariant(t *testing.T) {
	rows := []schema.AreaPeriodAggregate{
		{Area: "A", Period: "2026-01", CrimeCount: 30, AvgSeverityScore: 3.5},
		{Area: "B", Period: "2026-01", CrimeCount: 9, AvgSeverityScore: 1.0},
		{Area: "C", Period: "2026-01", CrimeCount: 1, AvgSeverityScore: 1.0},
		{Area: "D", Period: "2026-01", CrimeCount: 5, AvgSeverityScore: 2.5},
	}

	summary := RankAreas(rows).Summary
	assert.Equal(t, summary.TotalAreas, summary.HighRisk+summary.MediumRisk+summary.LowRisk)
}

// TestRankAreasUnknownBucket: rows with an empty area label group under the
// Unknown bucket.
func TestRankAreasUnknownBucket(t *testing.T) {
	rows := []schema.AreaPeriodAggregate{
		{Area: "", Period: "2026-01", CrimeCount: 4, AvgSeverityScore: 1.0},
		{Area: "", Period: "2026-02", CrimeCount: 6, AvgSeverityScore: 1.0},
	}

	ranking := RankAreas(rows)

	assert.Len(t, ranking.Forecasts, 1)
	assert.Equal(t, schema.AreaUnknown, ranking.Forecasts[0].Area)
	assert.Equal(t, 10, ranking.Forecasts[0].TotalCrimes)
}

// TestRankAreasStableTies: equal scores keep first-seen input order.
func TestRankAreasStableTies(t *testing.T) {
	rows := []schema.AreaPeriodAggregate{
		{Area: "First", Period: "2026-01", CrimeCount: 5, AvgSeverityScore: 1.0},
		{Area: "Second", Period: "2026-01", CrimeCount: 5, AvgSeverityScore: 1.0},
	}

	ranking := RankAreas(rows)

	assert.Equal(t, "First", ranking.Forecasts[0].Area)
	assert.Equal(t, "Second", ranking.Forecasts[1].Area)
	assert.Equal(t, ranking.Forecasts[0].RiskScore, ranking.Forecasts[1].RiskScore)
}

// TestRankAreasBreakdown: the breakdown keeps the trailing six periods in
// chronological order.
func TestRankAreasBreakdown(t *testing.T) {
	periods := []string{"2025-09", "2025-10", "2025-11", "2025-12", "2026-01", "2026-02", "2026-03", "2026-04"}
	rows := make([]schema.AreaPeriodAggregate, 0, len(periods))
	for i, p := range periods {
		rows = append(rows, schema.AreaPeriodAggregate{
			Area: "Zone A", Period: p, CrimeCount: i + 1, AvgSeverityScore: 1.0,
		})
	}

	forecast := RankAreas(rows).Forecasts[0]

	assert.Len(t, forecast.Breakdown, 6)
	assert.Equal(t, "2025-11", forecast.Breakdown[0].Period)
	assert.Equal(t, "2026-04", forecast.Breakdown[5].Period)
}

// TestRankAreasEmpty returns an empty ranking, not nil panics.
func TestRankAreasEmpty(t *testing.T) {
	ranking := RankAreas(nil)
	assert.Empty(t, ranking.Forecasts)
	assert.Equal(t, 0, ranking.Summary.TotalAreas)
}

// BenchmarkRankAreas benchmarks grouping and ranking at a realistic size.
func BenchmarkRankAreas(b *testing.B) {
	rows := make([]schema.AreaPeriodAggregate, 0, 600)
	for a := 0; a < 50; a++ {
		for m := 1; m <= 12; m++ {
			rows = append(rows, schema.AreaPeriodAggregate{
				Area:             "Zone " + string(rune('A'+a%26)),
				Period:           "2026-" + string(rune('0'+m/10)) + string(rune('0'+m%10)),
				CrimeCount:       a + m,
				AvgSeverityScore: float64(m%4) + 1,
			})
		}
	}
	for b.Loop() {
		RankAreas(rows)
	}
}
