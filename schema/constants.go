package schema

// Custom string types for type safety.
type (
	// Severity represents the categorical impact label of a crime incident.
	Severity string

	// RiskLevel represents the predicted risk bucket for an area (prediction scale).
	RiskLevel string

	// RiskTier represents the analytics risk bucket for an area (ranking scale).
	// Distinct from RiskLevel: the two scales are calibrated independently.
	RiskTier string

	// TrendDirection represents the sign of a growth or trend value.
	TrendDirection string

	// RouteClass represents the safety classification of a computed route.
	RouteClass string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for the record store.
	DatabaseBackend string
)

// All severities supported. Unknown labels parse to SeverityMedium.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium" // default
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// All prediction risk levels, in ascending order of risk.
const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// All analytics risk tiers used by area ranking.
const (
	TierLow    RiskTier = "Low"
	TierMedium RiskTier = "Medium"
	TierHigh   RiskTier = "High"
)

// All trend directions.
const (
	TrendIncreasing TrendDirection = "Increasing"
	TrendDecreasing TrendDirection = "Decreasing"
	TrendStable     TrendDirection = "Stable"
)

// All route classes.
const (
	RouteSafe     RouteClass = "safe"
	RouteModerate RouteClass = "moderate"
	RouteRisky    RouteClass = "risky"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// AreaUnknown is the bucket for rows whose area label is missing or empty.
// Such rows are grouped, never dropped.
const AreaUnknown = "Unknown"

// DefaultCrimeType is the predicted type when an area has no typed records.
const DefaultCrimeType = "theft"

// Default coordinates used when no patrol record supplies a location for an
// area (city center fallback).
const (
	DefaultLatitude  = 23.8103
	DefaultLongitude = 90.4125
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}

// ValidSeverities lists all valid severity labels.
var ValidSeverities = map[Severity]struct{}{
	SeverityLow:      {},
	SeverityMedium:   {},
	SeverityHigh:     {},
	SeverityCritical: {},
}

// ParseSeverity normalizes a raw severity label. Missing or unrecognized
// labels resolve to SeverityMedium.
func ParseSeverity(raw string) Severity {
	s := Severity(raw)
	if _, ok := ValidSeverities[s]; ok {
		return s
	}
	return SeverityMedium
}

// IsHighImpact reports whether a severity counts toward the high-severity
// totals used by risk scoring and area aggregation.
func (s Severity) IsHighImpact() bool {
	return s == SeverityHigh || s == SeverityCritical
}
