package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/schema"
)

// areaDistributionLimit caps the per-area distribution query.
const areaDistributionLimit = 20

// incidentReader implements the IncidentReader interface.
type incidentReader struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.IncidentReader = &incidentReader{} // Compile-time check

// AreaPeriodAggregates returns per-(area, month) aggregates for the trailing
// number of months.
func (r *incidentReader) AreaPeriodAggregates(ctx context.Context, months int) ([]schema.AreaPeriodAggregate, error) {
	cutoff := time.Now().AddDate(0, -months, 0)
	query := fmt.Sprintf(`
		SELECT area, %s AS period, COUNT(*), SUM(%s), AVG(%s)
		FROM %s
		WHERE occurred_at >= %s
		GROUP BY area, period
		ORDER BY area, period`,
		periodExpr(r.backend), highSeverityExpr, severityScoreExpr,
		quoteTableName(incidentsTable, r.backend), placeholder(r.backend, 1))

	rows, err := r.db.QueryContext(ctx, query, formatTime(cutoff, r.backend))
	if err != nil {
		return nil, fmt.Errorf("failed to query area period aggregates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.AreaPeriodAggregate
	for rows.Next() {
		var agg schema.AreaPeriodAggregate
		if err := rows.Scan(&agg.Area, &agg.Period, &agg.CrimeCount, &agg.HighSeverityCount, &agg.AvgSeverityScore); err != nil {
			return nil, fmt.Errorf("failed to scan area period aggregate: %w", err)
		}
		results = append(results, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating area period aggregates: %w", err)
	}
	return results, nil
}

// CrimeTypeAggregates returns per-(area, crime type, severity) counts for the
// trailing number of days. Coordinates are the centroid of the grouped rows.
func (r *incidentReader) CrimeTypeAggregates(ctx context.Context, days int) ([]schema.CrimeTypeAggregate, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	query := fmt.Sprintf(`
		SELECT area, crime_type, severity, COUNT(*), AVG(lat), AVG(lng)
		FROM %s
		WHERE occurred_at >= %s
		GROUP BY area, crime_type, severity
		ORDER BY area, crime_type, severity`,
		quoteTableName(incidentsTable, r.backend), placeholder(r.backend, 1))

	rows, err := r.db.QueryContext(ctx, query, formatTime(cutoff, r.backend))
	if err != nil {
		return nil, fmt.Errorf("failed to query crime type aggregates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.CrimeTypeAggregate
	for rows.Next() {
		var agg schema.CrimeTypeAggregate
		var severity string
		if err := rows.Scan(&agg.Area, &agg.CrimeType, &severity, &agg.Count, &agg.Lat, &agg.Lng); err != nil {
			return nil, fmt.Errorf("failed to scan crime type aggregate: %w", err)
		}
		agg.Severity = schema.ParseSeverity(severity)
		results = append(results, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating crime type aggregates: %w", err)
	}
	return results, nil
}

// RecentIncidents returns raw incident rows for the trailing number of days,
// newest first.
func (r *incidentReader) RecentIncidents(ctx context.Context, days int) ([]schema.IncidentRecord, error) {
	cutoff := time.Now().AddDate(0, 0, -days)
	query := fmt.Sprintf(`
		SELECT area, crime_type, severity, occurred_at, lat, lng
		FROM %s
		WHERE occurred_at >= %s
		ORDER BY occurred_at DESC`,
		quoteTableName(incidentsTable, r.backend), placeholder(r.backend, 1))

	rows, err := r.db.QueryContext(ctx, query, formatTime(cutoff, r.backend))
	if err != nil {
		return nil, fmt.Errorf("failed to query recent incidents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.IncidentRecord
	for rows.Next() {
		var rec schema.IncidentRecord
		var severity string

		switch r.backend {
		case schema.SQLiteBackend:
			var occurredAtStr string
			if err := rows.Scan(&rec.Area, &rec.CrimeType, &severity, &occurredAtStr, &rec.Lat, &rec.Lng); err != nil {
				return nil, fmt.Errorf("failed to scan incident: %w", err)
			}
			occurredAt, err := parseTime(occurredAtStr)
			if err != nil {
				return nil, err
			}
			rec.OccurredAt = occurredAt
		default: // MySQL and PostgreSQL store as native datetime
			if err := rows.Scan(&rec.Area, &rec.CrimeType, &severity, &rec.OccurredAt, &rec.Lat, &rec.Lng); err != nil {
				return nil, fmt.Errorf("failed to scan incident: %w", err)
			}
		}

		rec.Severity = schema.ParseSeverity(severity)
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent incidents: %w", err)
	}
	return results, nil
}

// MonthlyCounts returns city-wide monthly totals for one year in
// chronological order.
func (r *incidentReader) MonthlyCounts(ctx context.Context, year int) ([]schema.MonthlyCount, error) {
	query := fmt.Sprintf(`
		SELECT %s AS period, COUNT(*), COUNT(DISTINCT area)
		FROM %s
		WHERE %s = %s
		GROUP BY period
		ORDER BY period`,
		periodExpr(r.backend), quoteTableName(incidentsTable, r.backend),
		yearExpr(r.backend), placeholder(r.backend, 1))

	rows, err := r.db.QueryContext(ctx, query, strconv.Itoa(year))
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.MonthlyCount
	for rows.Next() {
		var mc schema.MonthlyCount
		if err := rows.Scan(&mc.Period, &mc.Count, &mc.AreaCount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly count: %w", err)
		}
		results = append(results, mc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly counts: %w", err)
	}
	return results, nil
}

// YearlyCounts returns total incident counts keyed by year. Years without
// rows map to 0.
func (r *incidentReader) YearlyCounts(ctx context.Context, years []int) (map[int]int, error) {
	counts := make(map[int]int, len(years))
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE %s = %s`,
		quoteTableName(incidentsTable, r.backend), yearExpr(r.backend), placeholder(r.backend, 1))

	for _, year := range years {
		var count int
		if err := r.db.QueryRowContext(ctx, query, strconv.Itoa(year)).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to query yearly count for %d: %w", year, err)
		}
		counts[year] = count
	}
	return counts, nil
}

// TypeDistribution returns per-crime-type counts for one year, largest first.
func (r *incidentReader) TypeDistribution(ctx context.Context, year int) ([]schema.TypeDistribution, error) {
	query := fmt.Sprintf(`
		SELECT crime_type, COUNT(*), AVG(%s)
		FROM %s
		WHERE %s = %s
		GROUP BY crime_type
		ORDER BY COUNT(*) DESC`,
		severityScoreExpr, quoteTableName(incidentsTable, r.backend),
		yearExpr(r.backend), placeholder(r.backend, 1))

	rows, err := r.db.QueryContext(ctx, query, strconv.Itoa(year))
	if err != nil {
		return nil, fmt.Errorf("failed to query type distribution: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.TypeDistribution
	for rows.Next() {
		var td schema.TypeDistribution
		if err := rows.Scan(&td.CrimeType, &td.CrimeCount, &td.AvgSeverity); err != nil {
			return nil, fmt.Errorf("failed to scan type distribution: %w", err)
		}
		results = append(results, td)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type distribution: %w", err)
	}
	return results, nil
}

// AreaDistribution returns per-area counts for one year, largest first,
// capped at areaDistributionLimit rows.
func (r *incidentReader) AreaDistribution(ctx context.Context, year int) ([]schema.AreaDistribution, error) {
	query := fmt.Sprintf(`
		SELECT area, COUNT(*), COUNT(DISTINCT %s)
		FROM %s
		WHERE %s = %s
		GROUP BY area
		ORDER BY COUNT(*) DESC
		LIMIT %d`,
		dayExpr(r.backend), quoteTableName(incidentsTable, r.backend),
		yearExpr(r.backend), placeholder(r.backend, 1), areaDistributionLimit)

	rows, err := r.db.QueryContext(ctx, query, strconv.Itoa(year))
	if err != nil {
		return nil, fmt.Errorf("failed to query area distribution: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.AreaDistribution
	for rows.Next() {
		var ad schema.AreaDistribution
		if err := rows.Scan(&ad.Area, &ad.CrimeCount, &ad.DaysWithCrimes); err != nil {
			return nil, fmt.Errorf("failed to scan area distribution: %w", err)
		}
		results = append(results, ad)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating area distribution: %w", err)
	}
	return results, nil
}
