package cmd

import (
	"github.com/safecity/crimelens/core"
	"github.com/safecity/crimelens/internal/contract"
	"github.com/spf13/cobra"
)

// routeCmd plans a safety-weighted route between two points.
var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Plan the safest route between two points.",
	Long: `Plan a route between two coordinates that avoids recent crime clusters.

Waypoints along the straight line are displaced away from nearby hazard
clusters and scored for safety:
- Recent incidents near a waypoint lower its score by severity
- Patrol presence near a waypoint raises its score
- Endpoints are never moved

Requires: --start and --end in 'lat,lng' decimal degrees.

Examples:
  # Plan with default tunables
  crimelens route --start "23.8103,90.4125" --end "23.7956,90.4074"

  # More waypoints and a wider hazard search radius
  crimelens route --start "23.81,90.41" --end "23.79,90.40" --waypoints 6 --radius 0.02

  # Waypoints as JSON for a map overlay
  crimelens route --start "23.81,90.41" --end "23.79,90.40" --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSafeRoute(rootCtx, cfg, recordStore); err != nil {
			contract.LogFatal("Cannot plan route", err)
		}
	},
}
