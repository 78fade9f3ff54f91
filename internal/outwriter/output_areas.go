package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteAreaRanking outputs the ranked areas, dispatching based on the output
// format configured.
func WriteAreaRanking(ranking schema.AreaRanking, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtInt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeAreaJSONResults(ranking, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeAreaCSVResults(ranking, cfg, fmtFloat, fmtInt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for area ranking; use 'predict export'")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAreaTable(ranking, cfg, fmtFloat, fmtInt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeAreaJSONResults handles opening the file and calling the JSON writer.
func writeAreaJSONResults(ranking schema.AreaRanking, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, ranking)
	}, "Wrote JSON")
}

// writeAreaCSVResults handles opening the file and calling the CSV writer.
func writeAreaCSVResults(ranking schema.AreaRanking, cfg *contract.Config, fmtFloat func(float64) string, fmtInt func(int) string) error {
	header := []string{
		"rank",
		"area",
		"total_crimes",
		"crime_frequency",
		"avg_severity",
		"trend_pct",
		"trend_direction",
		"risk_score",
		"risk_tier",
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, f := range ranking.Forecasts {
				rec := []string{
					strconv.Itoa(i + 1),
					f.Area,
					fmtInt(f.TotalCrimes),
					fmtFloat(f.CrimeFrequency),
					fmtFloat(f.AvgSeverity),
					fmtFloat(f.Trend),
					string(f.TrendDirection),
					fmtFloat(f.RiskScore),
					string(f.RiskTier),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeAreaTable generates and writes the human-readable ranking table.
func writeAreaTable(ranking schema.AreaRanking, cfg *contract.Config, fmtFloat func(float64) string, fmtInt func(int) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Area", "Crimes", "Freq", "Severity", "Trend", "Score", "Tier"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxAreaWidth := GetMaxTableAreaWidth(cfg)
	var data [][]string
	for i, f := range ranking.Forecasts {
		row := []string{
			strconv.Itoa(i + 1),
			contract.TruncateLabel(f.Area, maxAreaWidth),
			fmtInt(f.TotalCrimes),
			fmtFloat(f.CrimeFrequency),
			fmtFloat(f.AvgSeverity),
			fmtFloat(f.Trend) + "%",
			fmtFloat(f.RiskScore),
			contract.ColorRiskTier(f.RiskTier, cfg.UseColors),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := ranking.Summary
	if _, err := fmt.Fprintf(writer, "Showing %d areas (high: %d, medium: %d, low: %d)\n",
		s.TotalAreas, s.HighRisk, s.MediumRisk, s.LowRisk); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Ranking completed in %v over %d months of history\n",
		duration, cfg.LookbackMonths); err != nil {
		return err
	}
	return nil
}
