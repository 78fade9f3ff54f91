package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseSeverity normalizes raw labels with a medium default.
func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Severity
	}{
		{name: "low", raw: "low", expected: SeverityLow},
		{name: "critical", raw: "critical", expected: SeverityCritical},
		{name: "empty defaults to medium", raw: "", expected: SeverityMedium},
		{name: "unknown defaults to medium", raw: "severe", expected: SeverityMedium},
		{name: "case sensitive", raw: "High", expected: SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSeverity(tt.raw))
		})
	}
}

// TestScaleWeights ensures each component keeps its own calibration.
func TestScaleWeights(t *testing.T) {
	assert.Equal(t, 4.0, AggregateScale.Weight(SeverityCritical))
	assert.Equal(t, 30.0, RoutePenaltyScale.Weight(SeverityCritical))
	assert.Equal(t, 10.0, HeatScale.Weight(SeverityCritical))
}

// TestScaleDefaultsToMedium falls back to the scale's own medium weight.
func TestScaleDefaultsToMedium(t *testing.T) {
	assert.Equal(t, 2.0, AggregateScale.Weight(Severity("unknown")))
	assert.Equal(t, 10.0, RoutePenaltyScale.Weight(Severity("")))
	assert.Equal(t, 3.0, HeatScale.Weight(Severity("n/a")))
}

// TestIsHighImpact counts high and critical toward high-severity totals.
func TestIsHighImpact(t *testing.T) {
	assert.True(t, SeverityHigh.IsHighImpact())
	assert.True(t, SeverityCritical.IsHighImpact())
	assert.False(t, SeverityMedium.IsHighImpact())
	assert.False(t, SeverityLow.IsHighImpact())
}
