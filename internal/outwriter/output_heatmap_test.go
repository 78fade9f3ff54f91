package outwriter

import (
	"bytes"
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

func samplePoints() []schema.HeatPoint {
	return []schema.HeatPoint{
		{Lat: 23.8103, Lng: 90.4125, Intensity: 10, CrimeType: "robbery"},
		{Lat: 23.7956, Lng: 90.4074, Intensity: 1, CrimeType: "theft"},
	}
}

func TestWriteHeatmapText(t *testing.T) {
	fmtFloat, _ := createFormatters(1)

	var buf bytes.Buffer
	err := writeHeatmapText(samplePoints(), fmtFloat, time.Millisecond, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "23.810300,90.412500 intensity=10.0 type=robbery")
	assert.Contains(t, out, "23.795600,90.407400 intensity=1.0 type=theft")
	assert.Contains(t, out, "Showing 2 heat points")
}

func TestWriteHeatmapCSV(t *testing.T) {
	cfg := &contract.Config{
		Precision:  1,
		Output:     schema.CSVOut,
		OutputFile: filepath.Join(t.TempDir(), "heatmap.csv"),
	}

	require.NoError(t, WriteHeatmap(samplePoints(), cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "lat,lng,intensity,crime_type", lines[0])
	assert.Equal(t, "23.8103,90.4125,10.0,robbery", lines[1])
}

func TestWriteHeatmapParquetUnsupported(t *testing.T) {
	cfg := &contract.Config{Precision: 1, Output: schema.ParquetOut}
	err := WriteHeatmap(samplePoints(), cfg, time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "predict export")
}
