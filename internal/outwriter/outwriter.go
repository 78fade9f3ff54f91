// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"github.com/safecity/crimelens/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableAreaWidth calculates the maximum width for area labels in table
// output based on terminal width and table configuration.
func GetMaxTableAreaWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed numeric columns with borders/padding:
	// Rank + Crimes + Freq + Severity + Trend + Score + Tier.
	baseWidth := 58

	// Reserve generous space for table borders, separators, and padding
	baseWidth += 12

	available := termWidth - baseWidth
	if available < 10 {
		// Minimum reasonable label width
		return 10
	}
	if available > 40 {
		// Maximum label width to prevent overly wide tables
		return 40
	}
	return available
}
