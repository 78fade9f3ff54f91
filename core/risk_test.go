package core

import (
	"testing"

	"github.com/safecity/crimelens/schema"
	"github.com/stretchr/testify/assert"
)

// TestAssessAreaZeroCrimes verifies the divide-by-zero guard: with no
// recorded crimes the severity rate resolves to 0 and the score is the
// clamped patrol deduction.
func TestAssessAreaZeroCrimes(t *testing.T) {
	tests := []struct {
		name      string
		patrol    float64
		expected  float64
		expectLvl schema.RiskLevel
	}{
		{name: "no patrol", patrol: 0, expected: 0, expectLvl: schema.RiskLow},
		{name: "patrolled", patrol: 8, expected: 0, expectLvl: schema.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := AssessArea(0, 0, tt.patrol)
			assert.Equal(t, tt.expected, risk.Score)
			assert.Equal(t, tt.expectLvl, risk.Level)
			assert.Equal(t, 0.0, risk.Confidence)
		})
	}
}

// TestAssessAreaScoring checks the scoring formula against hand-computed
// values.
func TestAssessAreaScoring(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		highSeverity int
		patrol       float64
		expected     float64
		level        schema.RiskLevel
	}{
		{
			// 3*10 + (1/3)*50 - 2*5 = 36.67
			name: "medium area", total: 3, highSeverity: 1, patrol: 2,
			expected: 30 + 50.0/3 - 10, level: schema.RiskMedium,
		},
		{
			// 5*10 + 1*50 - 0 = 100
			name: "all high severity", total: 5, highSeverity: 5, patrol: 0,
			expected: 100, level: schema.RiskCritical,
		},
		{
			// 20*10 + 0 - 10*5 = 150, clamps to 100
			name: "clamped above", total: 20, highSeverity: 0, patrol: 10,
			expected: 100, level: schema.RiskCritical,
		},
		{
			// 1*10 + 0 - 10*5 = -40, clamps to 0
			name: "clamped below", total: 1, highSeverity: 0, patrol: 10,
			expected: 0, level: schema.RiskLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := AssessArea(tt.total, tt.highSeverity, tt.patrol)
			assert.InDelta(t, tt.expected, risk.Score, 1e-9)
			assert.Equal(t, tt.level, risk.Level)
		})
	}
}

// TestAssessAreaMonotonicity: score never decreases with more crimes or more
// high-severity crimes, and never increases with more patrol.
func TestAssessAreaMonotonicity(t *testing.T) {
	base := AssessArea(5, 2, 3)

	moreCrimes := AssessArea(6, 2, 3)
	assert.GreaterOrEqual(t, moreCrimes.Score, base.Score)

	moreSevere := AssessArea(5, 3, 3)
	assert.GreaterOrEqual(t, moreSevere.Score, base.Score)

	morePatrol := AssessArea(5, 2, 4)
	assert.LessOrEqual(t, morePatrol.Score, base.Score)
}

// TestAssessAreaConfidence grows with observations and caps at 100.
func TestAssessAreaConfidence(t *testing.T) {
	assert.Equal(t, 10.0, AssessArea(1, 0, 0).Confidence)
	assert.Equal(t, 50.0, AssessArea(5, 0, 0).Confidence)
	assert.Equal(t, 100.0, AssessArea(10, 0, 0).Confidence)
	assert.Equal(t, 100.0, AssessArea(500, 0, 0).Confidence)
}

// FuzzAssessArea asserts the score and confidence stay bounded for any
// non-negative input combination.
func FuzzAssessArea(f *testing.F) {
	f.Add(0, 0, 0.0)
	f.Add(10, 5, 7.5)
	f.Add(1000, 1000, 10.0)

	f.Fuzz(func(t *testing.T, total, high int, patrol float64) {
		if total < 0 || high < 0 || high > total || patrol < 0 || patrol > 10 {
			t.Skip()
		}
		risk := AssessArea(total, high, patrol)
		if risk.Score < 0 || risk.Score > 100 {
			t.Fatalf("score out of bounds: %v", risk.Score)
		}
		if risk.Confidence < 0 || risk.Confidence > 100 {
			t.Fatalf("confidence out of bounds: %v", risk.Confidence)
		}
	})
}

// BenchmarkAssessArea benchmarks the risk scoring kernel.
func BenchmarkAssessArea(b *testing.B) {
	for b.Loop() {
		AssessArea(25, 8, 6.5)
	}
}
