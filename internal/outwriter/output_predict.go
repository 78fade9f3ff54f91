package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/internal/parquet"
	"github.com/safecity/crimelens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteAssessments outputs risk assessments, dispatching based on the output
// format configured. Parquet output requires an explicit output file.
func WriteAssessments(assessments []schema.RiskAssessment, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeAssessmentJSONResults(assessments, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeAssessmentCSVResults(assessments, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		rows := parquet.ConvertRiskAssessments(assessments)
		if err := parquet.WriteRiskAssessmentsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet to %s\n", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAssessmentTable(assessments, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeAssessmentJSONResults handles opening the file and calling the JSON writer.
func writeAssessmentJSONResults(assessments []schema.RiskAssessment, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		// 1. Prepare the data structure for JSON with rank added
		type JSONAssessment struct {
			Rank int `json:"rank"`
			schema.RiskAssessment
		}

		output := make([]JSONAssessment, len(assessments))
		for i, a := range assessments {
			output[i] = JSONAssessment{Rank: i + 1, RiskAssessment: a}
		}

		// 2. Use the generic JSON writer
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeAssessmentCSVResults handles opening the file and calling the CSV writer.
func writeAssessmentCSVResults(assessments []schema.RiskAssessment, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"area",
		"lat",
		"lng",
		"predicted_type",
		"risk_score",
		"risk_level",
		"confidence",
		"prediction_date",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, a := range assessments {
				rec := []string{
					strconv.Itoa(i + 1),
					a.Area,
					strconv.FormatFloat(a.Lat, 'f', -1, 64),
					strconv.FormatFloat(a.Lng, 'f', -1, 64),
					a.PredictedCrimeType,
					fmtFloat(a.RiskScore),
					string(a.RiskLevel),
					fmtFloat(a.Confidence),
					a.PredictionDate.Format(contract.DateTimeFormat),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeAssessmentTable generates and writes the human-readable table.
func writeAssessmentTable(assessments []schema.RiskAssessment, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Area", "Predicted", "Score", "Level", "Confidence"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxAreaWidth := GetMaxTableAreaWidth(cfg)
	var data [][]string
	for i, a := range assessments {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateLabel(a.Area, maxAreaWidth),
			a.PredictedCrimeType,
			fmtFloat(a.RiskScore),
			contract.ColorRiskLevel(a.RiskLevel, cfg.UseColors),
			fmtFloat(a.Confidence) + "%",
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d assessments in %v\n", len(assessments), duration); err != nil {
		return err
	}
	return nil
}
