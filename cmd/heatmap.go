package cmd

import (
	"github.com/safecity/crimelens/core"
	"github.com/safecity/crimelens/internal/contract"
	"github.com/spf13/cobra"
)

// heatmapCmd emits recent incidents as weighted heatmap points.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Emit recent incidents as severity-weighted heatmap points.",
	Long: `Shape recent incidents into heatmap points for map rendering.

Each point carries the incident coordinates, its crime type, and an
intensity derived from the severity label. Feed the output into any
map layer that accepts weighted points.

Examples:
  # Points for the default trailing window
  crimelens heatmap

  # A longer window as JSON
  crimelens heatmap --days 90 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHeatmap(rootCtx, cfg, recordStore); err != nil {
			contract.LogFatal("Cannot build heatmap", err)
		}
	},
}
