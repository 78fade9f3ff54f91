package cmd

import (
	"github.com/safecity/crimelens/core"
	"github.com/safecity/crimelens/internal/contract"
	"github.com/spf13/cobra"
)

// areasCmd ranks areas by derived risk score.
var areasCmd = &cobra.Command{
	Use:   "areas",
	Short: "Show the top areas ranked by risk score.",
	Long: `Aggregate recorded incident history and rank areas by risk score.

Analyzes per-area monthly history to compute risk metrics, helping you:
- Identify which areas concentrate the most incidents
- Spot areas where crime is surging month over month
- Separate chronic hotspots from short-lived spikes
- Prioritize patrol coverage by risk tier

Scores combine crime frequency, average severity, and the recent trend,
ranking areas from highest to lowest risk.

Examples:
  # Rank all areas over the default 12-month window
  crimelens areas

  # Shorter window, fewer rows
  crimelens areas --months 6 --limit 10

  # Export findings to CSV for tracking
  crimelens areas --output csv --output-file areas.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAreaRanking(rootCtx, cfg, recordStore); err != nil {
			contract.LogFatal("Cannot run area ranking", err)
		}
	},
}
