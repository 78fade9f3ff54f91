package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/schema"
)

// WriteHeatmap outputs heatmap points, dispatching based on the output format
// configured. Heatmaps are machine-oriented; the text form is a plain listing.
func WriteHeatmap(points []schema.HeatPoint, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeHeatmapJSONResults(points, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeHeatmapCSVResults(points, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for heatmaps; use 'predict export'")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHeatmapText(points, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeHeatmapJSONResults handles opening the file and calling the JSON writer.
func writeHeatmapJSONResults(points []schema.HeatPoint, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, points)
	}, "Wrote JSON")
}

// writeHeatmapCSVResults handles opening the file and calling the CSV writer.
func writeHeatmapCSVResults(points []schema.HeatPoint, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"lat", "lng", "intensity", "crime_type"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, p := range points {
				rec := []string{
					strconv.FormatFloat(p.Lat, 'f', -1, 64),
					strconv.FormatFloat(p.Lng, 'f', -1, 64),
					fmtFloat(p.Intensity),
					p.CrimeType,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeHeatmapText lists points one per line.
func writeHeatmapText(points []schema.HeatPoint, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	for _, p := range points {
		if _, err := fmt.Fprintf(writer, "%.6f,%.6f intensity=%s type=%s\n",
			p.Lat, p.Lng, fmtFloat(p.Intensity), p.CrimeType); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d heat points in %v\n", len(points), duration); err != nil {
		return err
	}
	return nil
}
