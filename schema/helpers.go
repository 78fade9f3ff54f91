package schema

import "math"

// Clamp100 bounds a score to [0,100].
func Clamp100(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places. Growth and trend values are always
// reported at this precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DirectionOf labels the sign of a growth or trend value.
func DirectionOf(v float64) TrendDirection {
	switch {
	case v > 0:
		return TrendIncreasing
	case v < 0:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

// LevelOf classifies a prediction risk score. Thresholds are fixed; first
// match wins.
func LevelOf(score float64) RiskLevel {
	switch {
	case score >= 70:
		return RiskCritical
	case score >= 50:
		return RiskHigh
	case score >= 30:
		return RiskMedium
	default:
		return RiskLow
	}
}

// TierOf classifies an analytics ranking score.
func TierOf(score float64) RiskTier {
	switch {
	case score >= 15:
		return TierHigh
	case score >= 8:
		return TierMedium
	default:
		return TierLow
	}
}

// ClassOf classifies an overall route safety score.
func ClassOf(score float64) RouteClass {
	switch {
	case score > 70:
		return RouteSafe
	case score > 40:
		return RouteModerate
	default:
		return RouteRisky
	}
}

// Rank orders prediction risk levels for sorting, highest risk first.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskCritical:
		return 3
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}
