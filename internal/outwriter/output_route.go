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

// WriteSafeRoute outputs a planned route, dispatching based on the output
// format configured.
func WriteSafeRoute(result schema.SafeRouteResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRouteJSONResults(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRouteCSVResults(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for routes; use 'predict export'")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRouteText(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeRouteJSONResults handles opening the file and calling the JSON writer.
func writeRouteJSONResults(result schema.SafeRouteResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON")
}

// writeRouteCSVResults writes the waypoint sequence; route totals only render
// in text and JSON.
func writeRouteCSVResults(result schema.SafeRouteResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"waypoint", "lat", "lng", "safety_score"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, wp := range result.Waypoints {
				rec := []string{
					strconv.Itoa(i + 1),
					strconv.FormatFloat(wp.Lat, 'f', -1, 64),
					strconv.FormatFloat(wp.Lng, 'f', -1, 64),
					fmtFloat(wp.SafetyScore),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeRouteText renders the waypoint table and route totals.
func writeRouteText(result schema.SafeRouteResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "Lat", "Lng", "Safety"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, wp := range result.Waypoints {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(wp.Lat, 'f', 6, 64),
			strconv.FormatFloat(wp.Lng, 'f', 6, 64),
			fmtFloat(wp.SafetyScore),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Route: %s km (direct %s km), ~%.0f min, safety %s (%s)\n",
		fmtFloat(result.TotalDistanceKm), fmtFloat(result.DirectDistanceKm),
		result.EstimatedTimeMin, fmtFloat(result.SafetyScore),
		contract.ColorRouteClass(result.RouteClass, cfg.UseColors)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Planned in %v against %d days of incident history\n",
		duration, cfg.RouteDays); err != nil {
		return err
	}
	return nil
}
