// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/safecity/crimelens/schema"
)

// IncidentReader defines the read operations over recorded crime incidents.
// Grouping happens at the store so the analytics core only sees aggregate
// rows; this allows the core logic to be tested without a real database.
type IncidentReader interface {
	// AreaPeriodAggregates returns per-(area, month) aggregates for the
	// trailing number of months.
	AreaPeriodAggregates(ctx context.Context, months int) ([]schema.AreaPeriodAggregate, error)

	// CrimeTypeAggregates returns per-(area, crime type, severity) counts
	// for the trailing number of days.
	CrimeTypeAggregates(ctx context.Context, days int) ([]schema.CrimeTypeAggregate, error)

	// RecentIncidents returns raw incident rows for the trailing number of
	// days, newest first.
	RecentIncidents(ctx context.Context, days int) ([]schema.IncidentRecord, error)

	// MonthlyCounts returns city-wide monthly totals for one year in
	// chronological order.
	MonthlyCounts(ctx context.Context, year int) ([]schema.MonthlyCount, error)

	// YearlyCounts returns total incident counts keyed by year.
	YearlyCounts(ctx context.Context, years []int) (map[int]int, error)

	// TypeDistribution returns per-crime-type counts for one year, largest
	// first.
	TypeDistribution(ctx context.Context, year int) ([]schema.TypeDistribution, error)

	// AreaDistribution returns per-area counts for one year, largest first.
	AreaDistribution(ctx context.Context, year int) ([]schema.AreaDistribution, error)
}

// PatrolReader defines the read operations over patrol deployments.
type PatrolReader interface {
	// Patrols returns all patrol records.
	Patrols(ctx context.Context) ([]schema.PatrolRecord, error)
}

// AssessmentStore defines persistence for generated risk assessments.
type AssessmentStore interface {
	// PruneStale deletes assessments dated before the given time and
	// returns the number of rows removed. Retention policy, not a core
	// concern: callers prune before inserting a fresh batch.
	PruneStale(ctx context.Context, before time.Time) (int64, error)

	// Insert persists a batch of assessments.
	Insert(ctx context.Context, assessments []schema.RiskAssessment) error

	// List returns current assessments, optionally filtered by exact area
	// label, ordered highest risk first.
	List(ctx context.Context, area string) ([]schema.RiskAssessment, error)
}

// StoreManager bundles the record store facets behind one handle.
// This allows the command layer to be mocked for testing.
type StoreManager interface {
	Incidents() IncidentReader
	Patrols() PatrolReader
	Assessments() AssessmentStore

	// Status reports row counts and backend information.
	Status(ctx context.Context) (schema.StoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}
