package core

import (
	"sort"

	"github.com/safecity/crimelens/schema"
)

// trendBonus is added to an area's ranking score when its windowed trend
// exceeds trendBonusThreshold percent.
const (
	trendBonusThreshold = 20.0
	trendBonus          = 5.0
)

// breakdownPeriods is how many trailing periods each forecast carries.
const breakdownPeriods = 6

// areaAccumulator collects one area's rows during grouping.
type areaAccumulator struct {
	area        string
	periods     []schema.MonthlyBreakdown
	totalCrimes int
	avgSeverity float64
}

// RankAreas groups per-area, per-period aggregates, derives statistics and
// returns areas ranked by risk score with a tier summary.
//
// Grouping is exact-match on the area label; rows with an empty label are
// grouped under schema.AreaUnknown. The severity average is an incremental
// mean weighted by the number of periods seen so far, not by crime volume.
func RankAreas(rows []schema.AreaPeriodAggregate) schema.AreaRanking {
	groups := make(map[string]*areaAccumulator)
	order := make([]string, 0)

	for _, row := range rows {
		area := row.Area
		if area == "" {
			area = schema.AreaUnknown
		}
		acc, ok := groups[area]
		if !ok {
			acc = &areaAccumulator{area: area}
			groups[area] = acc
			order = append(order, area)
		}
		acc.periods = append(acc.periods, schema.MonthlyBreakdown{
			Period:            row.Period,
			CrimeCount:        row.CrimeCount,
			HighSeverityCount: row.HighSeverityCount,
		})
		acc.totalCrimes += row.CrimeCount
		n := float64(len(acc.periods))
		acc.avgSeverity = (acc.avgSeverity*(n-1) + row.AvgSeverityScore) / n
	}

	forecasts := make([]schema.AreaForecast, 0, len(order))
	for _, area := range order {
		forecasts = append(forecasts, buildForecast(groups[area]))
	}

	// Descending by risk score; sort must be stable so equal scores keep
	// input order.
	sort.SliceStable(forecasts, func(i, j int) bool {
		return forecasts[i].RiskScore > forecasts[j].RiskScore
	})

	summary := schema.ForecastSummary{TotalAreas: len(forecasts)}
	for _, f := range forecasts {
		switch f.RiskTier {
		case schema.TierHigh:
			summary.HighRisk++
		case schema.TierMedium:
			summary.MediumRisk++
		default:
			summary.LowRisk++
		}
	}

	return schema.AreaRanking{Forecasts: forecasts, Summary: summary}
}

// buildForecast derives one area's ranked statistics from its accumulated
// periods.
func buildForecast(acc *areaAccumulator) schema.AreaForecast {
	sorted := make([]schema.MonthlyBreakdown, len(acc.periods))
	copy(sorted, acc.periods)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Period < sorted[j].Period })

	counts := make([]int, len(sorted))
	for i, p := range sorted {
		counts[i] = p.CrimeCount
	}
	trend := WindowedTrend(counts)

	frequency := 0.0
	if len(sorted) > 0 {
		frequency = schema.Round2(float64(acc.totalCrimes) / float64(len(sorted)))
	}

	score := frequency + acc.avgSeverity*2
	if trend > trendBonusThreshold {
		score += trendBonus
	}

	breakdown := sorted
	if len(breakdown) > breakdownPeriods {
		breakdown = breakdown[len(breakdown)-breakdownPeriods:]
	}

	return schema.AreaForecast{
		Area:           acc.area,
		TotalCrimes:    acc.totalCrimes,
		CrimeFrequency: frequency,
		AvgSeverity:    schema.Round2(acc.avgSeverity),
		Trend:          trend,
		TrendDirection: schema.DirectionOf(trend),
		RiskScore:      schema.Round2(score),
		RiskTier:       schema.TierOf(score),
		Breakdown:      breakdown,
	}
}
