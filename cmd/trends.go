package cmd

import (
	"github.com/safecity/crimelens/core"
	"github.com/safecity/crimelens/internal/contract"
	"github.com/spf13/cobra"
)

// trendsCmd builds the city-level trend dashboard.
var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show city-wide crime trends for one year.",
	Long: `Build the city-level trend dashboard for a single calendar year.

Shows:
- Monthly incident counts with month-over-month growth
- Crime type distribution with average severity
- Most affected zones with daily incident rates
- Year-over-year comparison against the prior year

Examples:
  # Dashboard for the current year
  crimelens trends

  # Dashboard for a specific year
  crimelens trends --year 2025

  # Monthly series as CSV for spreadsheets
  crimelens trends --output csv --output-file monthly.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTrendReport(rootCtx, cfg, recordStore); err != nil {
			contract.LogFatal("Cannot run trend report", err)
		}
	},
}
