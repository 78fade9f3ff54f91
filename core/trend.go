package core

import (
	"sort"

	"github.com/safecity/crimelens/schema"
)

// trendWindow is the number of periods in each half of the windowed trend
// comparison (recent window vs the window before it).
const trendWindow = 3

// GrowthRates annotates a chronologically ordered series with
// period-over-period growth rates in percent. The first period has growth 0
// by definition; a zero previous count also yields 0.
func GrowthRates(series []schema.MonthlyCount) []schema.PeriodGrowth {
	out := make([]schema.PeriodGrowth, 0, len(series))
	for i, m := range series {
		growth := 0.0
		if i > 0 && series[i-1].Count > 0 {
			prev := series[i-1].Count
			growth = schema.Round2(float64(m.Count-prev) / float64(prev) * 100)
		}
		out = append(out, schema.PeriodGrowth{
			Period:     m.Period,
			Count:      m.Count,
			AreaCount:  m.AreaCount,
			GrowthRate: growth,
		})
	}
	return out
}

// WindowedTrend compares the sum of the most recent trendWindow periods to
// the sum of the trendWindow periods before them, in percent. Counts must be
// in chronological order. With fewer than 2*trendWindow periods the missing
// window is simply empty; a zero previous window with recent activity
// reports 100.
func WindowedTrend(counts []int) float64 {
	recentStart := len(counts) - trendWindow
	if recentStart < 0 {
		recentStart = 0
	}
	previousStart := recentStart - trendWindow
	if previousStart < 0 {
		previousStart = 0
	}

	recent := sum(counts[recentStart:])
	previous := sum(counts[previousStart:recentStart])

	if previous > 0 {
		return schema.Round2(float64(recent-previous) / float64(previous) * 100)
	}
	if recent > 0 {
		return 100
	}
	return 0
}

// YearOverYear computes the percent change between two yearly totals. A zero
// previous year yields 0.
func YearOverYear(current, previous int) float64 {
	if previous <= 0 {
		return 0
	}
	return schema.Round2(float64(current-previous) / float64(previous) * 100)
}

// mostAffectedZoneLimit caps the most-affected list in the trend report.
const mostAffectedZoneLimit = 5

// BuildTrendReport assembles the city-level trend dashboard for one year
// from pre-grouped store rows. Pure; all fetching belongs to the caller.
func BuildTrendReport(year int, monthly []schema.MonthlyCount, types []schema.TypeDistribution,
	areas []schema.AreaDistribution, yearly map[int]int) schema.TrendReport {
	// Monthly rows may arrive in any order; growth needs chronology.
	sorted := make([]schema.MonthlyCount, len(monthly))
	copy(sorted, monthly)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Period < sorted[j].Period })

	trends := GrowthRates(sorted)

	currentTotal := yearly[year]
	previousTotal := yearly[year-1]

	zones := make([]schema.AffectedZone, 0, mostAffectedZoneLimit)
	for _, a := range areas {
		if len(zones) == mostAffectedZoneLimit {
			break
		}
		rate := 0.0
		if a.DaysWithCrimes > 0 {
			rate = schema.Round2(float64(a.CrimeCount) / float64(a.DaysWithCrimes))
		}
		zones = append(zones, schema.AffectedZone{
			Area:       a.Area,
			CrimeCount: a.CrimeCount,
			CrimeRate:  rate,
		})
	}

	avgPerMonth := 0.0
	if len(trends) > 0 {
		avgPerMonth = schema.Round2(float64(currentTotal) / float64(len(trends)))
	}

	return schema.TrendReport{
		Year:             year,
		MonthlyTrends:    trends,
		TypeDistribution: types,
		AreaDistribution: areas,
		YearComparison: schema.YearComparison{
			CurrentYear:  currentTotal,
			PreviousYear: previousTotal,
			YoYChange:    YearOverYear(currentTotal, previousTotal),
		},
		MostAffectedZones: zones,
		Summary: schema.TrendSummary{
			TotalCrimes:       currentTotal,
			TotalAreas:        len(areas),
			AvgCrimesPerMonth: avgPerMonth,
		},
	}
}

func sum(counts []int) int {
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
