package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/safecity/crimelens/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorRiskLevel(t *testing.T) {
	tests := []struct {
		name  string
		level schema.RiskLevel
	}{
		{"critical", schema.RiskCritical},
		{"high", schema.RiskHigh},
		{"medium", schema.RiskMedium},
		{"low", schema.RiskLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Colored output always carries the plain label.
			assert.Contains(t, ColorRiskLevel(tt.level, true), string(tt.level))
			// Plain output is exactly the label.
			assert.Equal(t, string(tt.level), ColorRiskLevel(tt.level, false))
		})
	}
}

func TestColorRiskTier(t *testing.T) {
	for _, tier := range []schema.RiskTier{schema.TierHigh, schema.TierMedium, schema.TierLow} {
		assert.Contains(t, ColorRiskTier(tier, true), string(tier))
		assert.Equal(t, string(tier), ColorRiskTier(tier, false))
	}
}

func TestColorRouteClass(t *testing.T) {
	for _, class := range []schema.RouteClass{schema.RouteSafe, schema.RouteModerate, schema.RouteRisky} {
		assert.Contains(t, ColorRouteClass(class, true), string(class))
		assert.Equal(t, string(class), ColorRouteClass(class, false))
	}
}

func TestColorTrendDirection(t *testing.T) {
	for _, dir := range []schema.TrendDirection{schema.TrendIncreasing, schema.TrendDecreasing, schema.TrendStable} {
		assert.Contains(t, ColorTrendDirection(dir, true), string(dir))
		assert.Equal(t, string(dir), ColorTrendDirection(dir, false))
	}
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		maxWidth int
		expected string
	}{
		{"shorter than limit", "Gulshan", 10, "Gulshan"},
		{"exactly at limit", "Gulshan", 7, "Gulshan"},
		{"truncated with ellipsis", "Mohammadpur Housing Estate", 12, "Mohammadp..."},
		{"tiny width left alone", "Gulshan", 3, "Gulshan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateLabel(tt.label, tt.maxWidth))
		})
	}
}

func TestSelectOutputFile(t *testing.T) {
	t.Run("empty path uses stdout", func(t *testing.T) {
		f, err := SelectOutputFile("")
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, f)
	})

	t.Run("path creates file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		f, err := SelectOutputFile(path)
		require.NoError(t, err)
		require.NotEqual(t, os.Stdout, f)
		require.NoError(t, f.Close())

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}

func TestParseBoolString(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
		wantErr  bool
	}{
		{"yes", true, false},
		{"YES", true, false},
		{"true", true, false},
		{"1", true, false},
		{"no", false, false},
		{"False", false, false},
		{"0", false, false},
		{"maybe", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBoolString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetDefaultDBFilePath(t *testing.T) {
	path := GetDefaultDBFilePath()
	assert.True(t, filepath.IsAbs(path) || path == ".crimelens.db")
	assert.Contains(t, path, ".crimelens.db")
}
