package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/schema"
)

// assessmentStore implements the AssessmentStore interface.
type assessmentStore struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.AssessmentStore = &assessmentStore{} // Compile-time check

// PruneStale deletes assessments dated before the given time and returns the
// number of rows removed.
func (s *assessmentStore) PruneStale(ctx context.Context, before time.Time) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE prediction_date < %s`,
		quoteTableName(assessmentsTable, s.backend), placeholder(s.backend, 1))

	result, err := s.db.ExecContext(ctx, query, formatTime(before, s.backend))
	if err != nil {
		return 0, fmt.Errorf("failed to prune stale assessments: %w", err)
	}
	pruned, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned assessments: %w", err)
	}
	return pruned, nil
}

// Insert persists a batch of assessments in one transaction.
func (s *assessmentStore) Insert(ctx context.Context, assessments []schema.RiskAssessment) error {
	if len(assessments) == 0 {
		return nil
	}

	var query string
	switch s.backend {
	case schema.PostgreSQLBackend:
		query = fmt.Sprintf(`
			INSERT INTO %s (area, lat, lng, predicted_crime_type, risk_score, risk_level, confidence, prediction_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			quoteTableName(assessmentsTable, s.backend))
	default: // SQLite and MySQL
		query = fmt.Sprintf(`
			INSERT INTO %s (area, lat, lng, predicted_crime_type, risk_score, risk_level, confidence, prediction_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			quoteTableName(assessmentsTable, s.backend))
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin assessment insert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, a := range assessments {
		if _, err := tx.ExecContext(ctx, query,
			a.Area, a.Lat, a.Lng, a.PredictedCrimeType,
			a.RiskScore, string(a.RiskLevel), a.Confidence,
			formatTime(a.PredictionDate, s.backend)); err != nil {
			return fmt.Errorf("failed to insert assessment for %s: %w", a.Area, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assessment insert: %w", err)
	}
	return nil
}

// List returns current assessments, optionally filtered by exact area label,
// ordered highest risk first.
func (s *assessmentStore) List(ctx context.Context, area string) ([]schema.RiskAssessment, error) {
	base := fmt.Sprintf(`
		SELECT area, lat, lng, predicted_crime_type, risk_score, risk_level, confidence, prediction_date
		FROM %s`, quoteTableName(assessmentsTable, s.backend))

	var rows *sql.Rows
	var err error
	if area != "" {
		query := fmt.Sprintf("%s WHERE area = %s ORDER BY risk_score DESC", base, placeholder(s.backend, 1))
		rows, err = s.db.QueryContext(ctx, query, area)
	} else {
		query := base + " ORDER BY risk_score DESC"
		rows, err = s.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RiskAssessment
	for rows.Next() {
		var rec schema.RiskAssessment
		var level string

		switch s.backend {
		case schema.SQLiteBackend:
			var predictionDateStr string
			if err := rows.Scan(&rec.Area, &rec.Lat, &rec.Lng, &rec.PredictedCrimeType,
				&rec.RiskScore, &level, &rec.Confidence, &predictionDateStr); err != nil {
				return nil, fmt.Errorf("failed to scan assessment: %w", err)
			}
			predictionDate, err := parseTime(predictionDateStr)
			if err != nil {
				return nil, err
			}
			rec.PredictionDate = predictionDate
		default: // MySQL and PostgreSQL store as native datetime
			if err := rows.Scan(&rec.Area, &rec.Lat, &rec.Lng, &rec.PredictedCrimeType,
				&rec.RiskScore, &level, &rec.Confidence, &rec.PredictionDate); err != nil {
				return nil, fmt.Errorf("failed to scan assessment: %w", err)
			}
		}

		rec.RiskLevel = schema.RiskLevel(level)
		results = append(results, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assessments: %w", err)
	}
	return results, nil
}
