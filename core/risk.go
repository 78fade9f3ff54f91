package core

import (
	"math"

	"github.com/safecity/crimelens/schema"
)

// AreaRisk is the bounded risk assessment for a single area.
type AreaRisk struct {
	Score      float64          // [0,100]
	Level      schema.RiskLevel // Derived from Score under fixed thresholds
	Confidence float64          // [0,100], grows with observation volume
}

// AssessArea combines an area's crime volume, high-severity share and patrol
// intensity into a bounded risk score. Higher crime volume and severity raise
// the score; patrol presence lowers it.
//
// The severity rate guard is a correctness requirement: an area with zero
// recorded crimes must resolve to rate 0 rather than dividing by zero.
func AssessArea(totalCrimes, highSeverity int, patrolIntensity float64) AreaRisk {
	severityRate := 0.0
	if totalCrimes > 0 {
		severityRate = float64(highSeverity) / float64(totalCrimes)
	}

	raw := float64(totalCrimes)*10 + severityRate*50 - patrolIntensity*5
	score := schema.Clamp100(raw)

	confidence := math.Min(100, float64(totalCrimes)/10*100)

	return AreaRisk{
		Score:      score,
		Level:      schema.LevelOf(score),
		Confidence: confidence,
	}
}
