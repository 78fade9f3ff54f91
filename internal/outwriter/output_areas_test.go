package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleRanking builds a two-area ranking for writer tests.
func sampleRanking() schema.AreaRanking {
	return schema.AreaRanking{
		Forecasts: []schema.AreaForecast{
			{
				Area: "Gulshan", TotalCrimes: 60, CrimeFrequency: 10,
				AvgSeverity: 2.5, Trend: 33.33, TrendDirection: schema.TrendIncreasing,
				RiskScore: 20, RiskTier: schema.TierHigh,
			},
			{
				Area: "Banani", TotalCrimes: 12, CrimeFrequency: 2,
				AvgSeverity: 1.0, Trend: 0, TrendDirection: schema.TrendStable,
				RiskScore: 4, RiskTier: schema.TierLow,
			},
		},
		Summary: schema.ForecastSummary{TotalAreas: 2, HighRisk: 1, LowRisk: 1},
	}
}

// plainCfg returns a config with colors off so assertions see raw labels.
func plainCfg() *contract.Config {
	return &contract.Config{
		Precision:      2,
		Output:         schema.TextOut,
		LookbackMonths: 12,
		Width:          120,
	}
}

func TestWriteAreaTable(t *testing.T) {
	cfg := plainCfg()
	fmtFloat, fmtInt := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeAreaTable(sampleRanking(), cfg, fmtFloat, fmtInt, time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Gulshan")
	assert.Contains(t, out, "Banani")
	assert.Contains(t, out, "33.33%")
	assert.Contains(t, out, "High")
	assert.Contains(t, out, "Showing 2 areas (high: 1, medium: 0, low: 1)")
	assert.Contains(t, out, "12 months of history")
}

func TestWriteAreaRankingCSV(t *testing.T) {
	cfg := plainCfg()
	cfg.Output = schema.CSVOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "areas.csv")

	require.NoError(t, WriteAreaRanking(sampleRanking(), cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3) // header + 2 rows

	assert.Equal(t, "rank,area,total_crimes,crime_frequency,avg_severity,trend_pct,trend_direction,risk_score,risk_tier", lines[0])
	assert.Contains(t, lines[1], "1,Gulshan,60,10.00,2.50,33.33,Increasing,20.00,High")
	assert.Contains(t, lines[2], "2,Banani")
}

func TestWriteAreaRankingJSON(t *testing.T) {
	cfg := plainCfg()
	cfg.Output = schema.JSONOut
	cfg.OutputFile = filepath.Join(t.TempDir(), "areas.json")

	require.NoError(t, WriteAreaRanking(sampleRanking(), cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var parsed schema.AreaRanking
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.Len(t, parsed.Forecasts, 2)
	assert.Equal(t, "Gulshan", parsed.Forecasts[0].Area)
	assert.Equal(t, 2, parsed.Summary.TotalAreas)
}

func TestWriteAreaRankingParquetUnsupported(t *testing.T) {
	cfg := plainCfg()
	cfg.Output = schema.ParquetOut

	err := WriteAreaRanking(sampleRanking(), cfg, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "predict export")
}
