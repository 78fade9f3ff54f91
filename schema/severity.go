package schema

// SeverityScale maps severity labels to the numeric weights of one consuming
// component. Each component owns its own calibration; the scales are kept
// separate on purpose and must not be unified without re-deriving the
// thresholds built on top of them.
type SeverityScale map[Severity]float64

// Weight returns the weight for a severity. Unknown or missing labels fall
// back to the scale's medium weight.
func (sc SeverityScale) Weight(s Severity) float64 {
	if w, ok := sc[s]; ok {
		return w
	}
	return sc[SeverityMedium]
}

// AggregateScale weighs severities for area aggregation and trend
// dashboards. Matches the CASE expression the store uses when grouping.
var AggregateScale = SeverityScale{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

// RoutePenaltyScale weighs severities as hazard penalties in route safety
// scoring.
var RoutePenaltyScale = SeverityScale{
	SeverityLow:      5,
	SeverityMedium:   10,
	SeverityHigh:     20,
	SeverityCritical: 30,
}

// HeatScale weighs severities as heatmap intensities.
var HeatScale = SeverityScale{
	SeverityLow:      1,
	SeverityMedium:   3,
	SeverityHigh:     6,
	SeverityCritical: 10,
}
