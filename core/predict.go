package core

import (
	"time"

	"github.com/safecity/crimelens/schema"
)

// predictionArea collects one area's grouped crime rows during generation.
type predictionArea struct {
	area          string
	totalCrimes   int
	highSeverity  int
	typeCounts    map[string]int
	typeOrder     []string
	dominantType  string
	dominantCount int
}

// GeneratePredictions derives one risk assessment per area from grouped
// crime counts and patrol records. Patrols are matched by exact area label;
// unmatched areas default to patrol intensity 0 and the fixed default
// coordinates. The dominant crime type tie-break is stable: the first type
// encountered in input order wins.
//
// This is a pure transform; pruning stale rows and persisting the output is
// the caller's responsibility.
func GeneratePredictions(crimes []schema.CrimeTypeAggregate, patrols []schema.PatrolRecord,
	predictionDate time.Time) []schema.RiskAssessment {
	groups := make(map[string]*predictionArea)
	order := make([]string, 0)

	for _, row := range crimes {
		area := row.Area
		if area == "" {
			area = schema.AreaUnknown
		}
		acc, ok := groups[area]
		if !ok {
			acc = &predictionArea{area: area, typeCounts: make(map[string]int)}
			groups[area] = acc
			order = append(order, area)
		}
		acc.totalCrimes += row.Count
		if row.Severity.IsHighImpact() {
			acc.highSeverity += row.Count
		}
		if _, seen := acc.typeCounts[row.CrimeType]; !seen {
			acc.typeOrder = append(acc.typeOrder, row.CrimeType)
		}
		acc.typeCounts[row.CrimeType] += row.Count
	}

	patrolByArea := make(map[string]schema.PatrolRecord, len(patrols))
	for _, p := range patrols {
		patrolByArea[p.Area] = p
	}

	assessments := make([]schema.RiskAssessment, 0, len(order))
	for _, area := range order {
		acc := groups[area]

		// Strictly-greater comparison keeps the first-encountered type on
		// ties.
		for _, ct := range acc.typeOrder {
			if acc.typeCounts[ct] > acc.dominantCount {
				acc.dominantType = ct
				acc.dominantCount = acc.typeCounts[ct]
			}
		}
		if acc.dominantType == "" {
			acc.dominantType = schema.DefaultCrimeType
		}

		intensity := 0.0
		lat, lng := schema.DefaultLatitude, schema.DefaultLongitude
		if patrol, ok := patrolByArea[area]; ok {
			intensity = patrol.Intensity
			lat, lng = patrol.Lat, patrol.Lng
		}

		risk := AssessArea(acc.totalCrimes, acc.highSeverity, intensity)

		assessments = append(assessments, schema.RiskAssessment{
			Area:               area,
			Lat:                lat,
			Lng:                lng,
			PredictedCrimeType: acc.dominantType,
			RiskScore:          risk.Score,
			RiskLevel:          risk.Level,
			Confidence:         schema.Round1(risk.Confidence),
			PredictionDate:     predictionDate,
		})
	}

	return assessments
}
