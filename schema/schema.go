// Package schema has records, enums and severity scales for all parts of crimelens.
package schema

import "time"

// LatLng is a point in decimal degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IncidentRecord is one reported crime incident as read from the store.
// Immutable once created; the analytics core never writes these.
type IncidentRecord struct {
	Area       string    // Area label; empty groups under AreaUnknown
	OccurredAt time.Time // Incident timestamp
	CrimeType  string    // Free-text crime category
	Severity   Severity  // Categorical impact label
	Lat        float64
	Lng        float64
}

// PatrolRecord is the policing presence for one area.
type PatrolRecord struct {
	Area         string
	Lat          float64
	Lng          float64
	Intensity    float64 // Officer-assigned 0-10 scale
	OfficerCount int
	LastUpdated  time.Time
}

// AreaPeriodAggregate is one (area, period) row of pre-grouped incident data.
// Period is a year-month label such as "2026-03". Computed fresh on each
// request; it has no identity beyond its key.
type AreaPeriodAggregate struct {
	Area              string  `json:"area"`
	Period            string  `json:"period"`
	CrimeCount        int     `json:"crimeCount"`
	HighSeverityCount int     `json:"highSeverityCount"`
	AvgSeverityScore  float64 `json:"avgSeverityScore"`
}

// CrimeTypeAggregate is one (area, crime type, severity) row of grouped
// incident counts, the input shape for prediction generation.
type CrimeTypeAggregate struct {
	Area      string
	CrimeType string
	Severity  Severity
	Count     int
	Lat       float64
	Lng       float64
}

// RiskAssessment is one generated area prediction, persisted by the caller.
type RiskAssessment struct {
	Area               string    `json:"area"`
	Lat                float64   `json:"lat"`
	Lng                float64   `json:"lng"`
	PredictedCrimeType string    `json:"predictedCrimeType"`
	RiskScore          float64   `json:"riskScore"`  // Clamped to [0,100]
	RiskLevel          RiskLevel `json:"riskLevel"`  // Derived from RiskScore
	Confidence         float64   `json:"confidence"` // [0,100], one decimal
	PredictionDate     time.Time `json:"predictionDate"`
}

// PeriodCount is one period's crime volume in a chronological series.
type PeriodCount struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// MonthlyCount is one month's city-wide crime volume with the number of
// distinct areas reporting.
type MonthlyCount struct {
	Period    string `json:"period"`
	Count     int    `json:"count"`
	AreaCount int    `json:"areaCount"`
}

// PeriodGrowth is a PeriodCount annotated with its period-over-period
// growth rate in percent.
type PeriodGrowth struct {
	Period     string  `json:"period"`
	Count      int     `json:"count"`
	AreaCount  int     `json:"areaCount,omitempty"`
	GrowthRate float64 `json:"growthRate"`
}

// MonthlyBreakdown is one month of an area's history kept on a forecast.
type MonthlyBreakdown struct {
	Period            string `json:"period"`
	CrimeCount        int    `json:"crimeCount"`
	HighSeverityCount int    `json:"highSeverityCount"`
}

// AreaForecast is one ranked area with derived statistics.
type AreaForecast struct {
	Area           string             `json:"area"`
	TotalCrimes    int                `json:"totalCrimes"`
	CrimeFrequency float64            `json:"crimeFrequency"` // Crimes per period with data
	AvgSeverity    float64            `json:"avgSeverity"`
	Trend          float64            `json:"trend"` // Recent 3 vs previous 3 periods, percent
	TrendDirection TrendDirection     `json:"trendDirection"`
	RiskScore      float64            `json:"riskScore"`
	RiskTier       RiskTier           `json:"riskTier"`
	Breakdown      []MonthlyBreakdown `json:"monthlyBreakdown"` // Last 6 periods
}

// ForecastSummary counts ranked areas per risk tier. The tier counts always
// sum to TotalAreas.
type ForecastSummary struct {
	TotalAreas int `json:"totalAreas"`
	HighRisk   int `json:"highRiskAreas"`
	MediumRisk int `json:"mediumRiskAreas"`
	LowRisk    int `json:"lowRiskAreas"`
}

// AreaRanking is the full output of area ranking and classification.
type AreaRanking struct {
	Forecasts []AreaForecast  `json:"predictions"`
	Summary   ForecastSummary `json:"summary"`
}

// Waypoint is one point along a computed route with its safety score.
type Waypoint struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	SafetyScore float64 `json:"safetyScore"` // [0,100]; endpoints fixed at 100
}

// SafeRouteResult is a computed route between two points. Never persisted.
type SafeRouteResult struct {
	Waypoints        []Waypoint `json:"waypoints"`
	TotalDistanceKm  float64    `json:"totalDistanceKm"`
	DirectDistanceKm float64    `json:"directDistanceKm"`
	SafetyScore      float64    `json:"safetyScore"` // Mean of waypoint scores
	EstimatedTimeMin float64    `json:"estimatedTimeMin"`
	RouteClass       RouteClass `json:"routeClass"`
}

// TypeDistribution is one crime type's share of a year.
type TypeDistribution struct {
	CrimeType   string  `json:"crimeType"`
	CrimeCount  int     `json:"crimeCount"`
	AvgSeverity float64 `json:"avgSeverity"`
}

// AreaDistribution is one area's share of a year.
type AreaDistribution struct {
	Area           string `json:"area"`
	CrimeCount     int    `json:"crimeCount"`
	DaysWithCrimes int    `json:"daysWithCrimes"`
}

// AffectedZone is one of the most affected areas in the trend report.
type AffectedZone struct {
	Area       string  `json:"area"`
	CrimeCount int     `json:"crimeCount"`
	CrimeRate  float64 `json:"crimeRate"` // Crimes per day with recorded crime
}

// YearComparison is the year-over-year block of the trend report.
type YearComparison struct {
	CurrentYear  int     `json:"currentYear"`
	PreviousYear int     `json:"previousYear"`
	YoYChange    float64 `json:"yoyChange"`
}

// TrendSummary is the roll-up block of the trend report.
type TrendSummary struct {
	TotalCrimes       int     `json:"totalCrimes"`
	TotalAreas        int     `json:"totalAreas"`
	AvgCrimesPerMonth float64 `json:"avgCrimesPerMonth"`
}

// TrendReport is the city-level crime trend dashboard for one year.
type TrendReport struct {
	Year              int                `json:"year"`
	MonthlyTrends     []PeriodGrowth     `json:"monthlyTrends"`
	TypeDistribution  []TypeDistribution `json:"crimeTypeDistribution"`
	AreaDistribution  []AreaDistribution `json:"areaDistribution"`
	YearComparison    YearComparison     `json:"yearComparison"`
	MostAffectedZones []AffectedZone     `json:"mostAffectedZones"`
	Summary           TrendSummary       `json:"summary"`
}

// StoreStatus reports backend information and row counts for the record
// store.
type StoreStatus struct {
	Backend     DatabaseBackend `json:"backend"`
	Location    string          `json:"location"`
	Incidents   int64           `json:"incidents"`
	Patrols     int64           `json:"patrols"`
	Assessments int64           `json:"assessments"`
}

// HeatPoint is one incident shaped for heatmap rendering.
type HeatPoint struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Intensity float64 `json:"intensity"` // Heat scale weight of the severity
	CrimeType string  `json:"crimeType"`
}
