package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/schema"
)

// patrolReader implements the PatrolReader interface.
type patrolReader struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.PatrolReader = &patrolReader{} // Compile-time check

// Patrols returns all patrol records.
func (r *patrolReader) Patrols(ctx context.Context) ([]schema.PatrolRecord, error) {
	query := fmt.Sprintf(`
		SELECT area, lat, lng, intensity, officer_count, last_updated
		FROM %s
		ORDER BY area`,
		quoteTableName(patrolsTable, r.backend))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query patrols: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.PatrolRecord
	for rows.Next() {
		var rec schema.PatrolRecord

		switch r.backend {
		case schema.SQLiteBackend:
			var lastUpdatedStr string
			if err := rows.Scan(&rec.Area, &rec.Lat, &rec.Lng, &rec.Intensity, &rec.OfficerCount, &lastUpdatedStr); err != nil {
				return nil, fmt.Errorf("failed to scan patrol: %w", err)
			}
			lastUpdated, err := parseTime(lastUpdatedStr)
			if err != nil {
				return nil, err
			}
			rec.LastUpdated = lastUpdated
		default: // MySQL and PostgreSQL store as native datetime
			if err := rows.Scan(&rec.Area, &rec.Lat, &rec.Lng, &rec.Intensity, &rec.OfficerCount, &rec.LastUpdated); err != nil {
				return nil, fmt.Errorf("failed to scan patrol: %w", err)
			}
		}

		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patrols: %w", err)
	}
	return results, nil
}
