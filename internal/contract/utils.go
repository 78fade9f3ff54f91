package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/safecity/crimelens/schema"
)

// Color variables for console output.
var (
	CriticalColor = color.New(color.FgRed, color.Bold)     // standard danger
	HighColor     = color.New(color.FgMagenta, color.Bold) // strong, distinct warning
	ModerateColor = color.New(color.FgYellow)              // standard caution, not bold
	LowColor      = color.New(color.FgCyan)                // informational / low-priority signal
	SafeColor     = color.New(color.FgGreen)               // positive signal
)

// ColorRiskLevel returns a colored label for a prediction risk level.
// Plain string when colors are disabled.
func ColorRiskLevel(level schema.RiskLevel, useColors bool) string {
	text := string(level)
	if !useColors {
		return text
	}
	switch level {
	case schema.RiskCritical:
		return CriticalColor.Sprint(text)
	case schema.RiskHigh:
		return HighColor.Sprint(text)
	case schema.RiskMedium:
		return ModerateColor.Sprint(text)
	default:
		return LowColor.Sprint(text)
	}
}

// ColorRiskTier returns a colored label for an analytics risk tier.
func ColorRiskTier(tier schema.RiskTier, useColors bool) string {
	text := string(tier)
	if !useColors {
		return text
	}
	switch tier {
	case schema.TierHigh:
		return CriticalColor.Sprint(text)
	case schema.TierMedium:
		return ModerateColor.Sprint(text)
	default:
		return LowColor.Sprint(text)
	}
}

// ColorRouteClass returns a colored label for a route classification.
func ColorRouteClass(class schema.RouteClass, useColors bool) string {
	text := string(class)
	if !useColors {
		return text
	}
	switch class {
	case schema.RouteSafe:
		return SafeColor.Sprint(text)
	case schema.RouteModerate:
		return ModerateColor.Sprint(text)
	default:
		return CriticalColor.Sprint(text)
	}
}

// ColorTrendDirection returns a colored label for a trend direction. Rising
// crime is the warning case.
func ColorTrendDirection(dir schema.TrendDirection, useColors bool) string {
	text := string(dir)
	if !useColors {
		return text
	}
	switch dir {
	case schema.TrendIncreasing:
		return CriticalColor.Sprint(text)
	case schema.TrendDecreasing:
		return SafeColor.Sprint(text)
	default:
		return ModerateColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateLabel shortens an area label for table output, keeping the leading
// runes.
func TruncateLabel(label string, maxWidth int) string {
	runes := []rune(label)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return label
}

// LogFatal logs a fatal message to stderr and exits.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetDefaultDBFilePath returns the path to the SQLite DB file used when no
// connection string is configured.
func GetDefaultDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".crimelens.db"
	}
	return filepath.Join(homeDir, ".crimelens.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
