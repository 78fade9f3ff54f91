// Package parquet provides data structures and functions for exporting risk
// assessments to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/safecity/crimelens/schema"
)

// RiskAssessmentRow represents a single persisted area risk assessment.
// This struct maps to the risk_assessments database table.
type RiskAssessmentRow struct {
	// Area is the area label the assessment applies to
	Area string `parquet:"area,snappy"`

	// Lat is the representative latitude for the area
	Lat float64 `parquet:"lat,snappy"`

	// Lng is the representative longitude for the area
	Lng float64 `parquet:"lng,snappy"`

	// PredictedCrimeType is the dominant crime type over the window
	PredictedCrimeType string `parquet:"predicted_crime_type,snappy"`

	// RiskScore is the clamped 0-100 risk score
	RiskScore float64 `parquet:"risk_score,snappy"`

	// RiskLevel is the bucket derived from RiskScore
	RiskLevel string `parquet:"risk_level,snappy"`

	// Confidence is the 0-100 confidence percentage
	Confidence float64 `parquet:"confidence,snappy"`

	// PredictionDate is when the assessment was generated (stored as
	// TIMESTAMP with nanosecond precision)
	PredictionDate time.Time `parquet:"prediction_date,snappy"`
}

// WriteRiskAssessmentsParquet writes a slice of RiskAssessmentRow structs to a Parquet file.
func WriteRiskAssessmentsParquet(data []RiskAssessmentRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RiskAssessmentRow struct tags
	writer := parquet.NewGenericWriter[RiskAssessmentRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRiskAssessments converts schema.RiskAssessment to RiskAssessmentRow for Parquet export.
func ConvertRiskAssessments(assessments []schema.RiskAssessment) []RiskAssessmentRow {
	result := make([]RiskAssessmentRow, len(assessments))
	for i, a := range assessments {
		result[i] = RiskAssessmentRow{
			Area:               a.Area,
			Lat:                a.Lat,
			Lng:                a.Lng,
			PredictedCrimeType: a.PredictedCrimeType,
			RiskScore:          a.RiskScore,
			RiskLevel:          string(a.RiskLevel),
			Confidence:         a.Confidence,
			PredictionDate:     a.PredictionDate,
		}
	}
	return result
}
