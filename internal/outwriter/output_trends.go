package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteTrendReport outputs the trend dashboard, dispatching based on the
// output format configured.
func WriteTrendReport(report schema.TrendReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, fmtInt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeTrendJSONResults(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeTrendCSVResults(report, cfg, fmtFloat, fmtInt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for trends; use 'predict export'")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendText(report, cfg, fmtFloat, fmtInt, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeTrendJSONResults handles opening the file and calling the JSON writer.
func writeTrendJSONResults(report schema.TrendReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "Wrote JSON")
}

// writeTrendCSVResults writes the monthly series; the roll-up blocks only
// render in text and JSON.
func writeTrendCSVResults(report schema.TrendReport, cfg *contract.Config, fmtFloat func(float64) string, fmtInt func(int) string) error {
	header := []string{"period", "count", "area_count", "growth_pct"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, m := range report.MonthlyTrends {
				rec := []string{
					m.Period,
					fmtInt(m.Count),
					fmtInt(m.AreaCount),
					fmtFloat(m.GrowthRate),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeTrendText renders the dashboard blocks in human-readable form.
func writeTrendText(report schema.TrendReport, cfg *contract.Config, fmtFloat func(float64) string, fmtInt func(int) string, duration time.Duration, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Crime Trends %d\n", report.Year); err != nil {
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Period", "Count", "Areas", "Growth", "Direction"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, m := range report.MonthlyTrends {
		data = append(data, []string{
			m.Period,
			fmtInt(m.Count),
			fmtInt(m.AreaCount),
			fmtFloat(m.GrowthRate) + "%",
			contract.ColorTrendDirection(schema.DirectionOf(m.GrowthRate), cfg.UseColors),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(report.MostAffectedZones) > 0 {
		if _, err := fmt.Fprintf(writer, "\nMost affected zones:\n"); err != nil {
			return err
		}
		for i, z := range report.MostAffectedZones {
			if _, err := fmt.Fprintf(writer, "  %d. %s (%d crimes, %s/day)\n",
				i+1, z.Area, z.CrimeCount, fmtFloat(z.CrimeRate)); err != nil {
				return err
			}
		}
	}

	yc := report.YearComparison
	if _, err := fmt.Fprintf(writer, "\nYear over year: %d -> %d (%s%%, %s)\n",
		yc.PreviousYear, yc.CurrentYear, fmtFloat(yc.YoYChange),
		contract.ColorTrendDirection(schema.DirectionOf(yc.YoYChange), cfg.UseColors)); err != nil {
		return err
	}

	s := report.Summary
	if _, err := fmt.Fprintf(writer, "Total: %d crimes across %d areas (avg %s/month)\n",
		s.TotalCrimes, s.TotalAreas, fmtFloat(s.AvgCrimesPerMonth)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Report completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
