// Package cmd defines the command-line interface for crimelens.
package cmd

import (
	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(areasCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the predict subcommands to the parent predict command
	predictCmd.AddCommand(predictRunCmd)
	predictCmd.AddCommand(predictListCmd)
	predictCmd.AddCommand(predictExportCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("backend", string(schema.SQLiteBackend), "Record store backend: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().IntP("months", "m", contract.DefaultLookbackMonths, "Months of incident history for area ranking")
	rootCmd.PersistentFlags().Int("days", 0, "Days of incident history for predict/route/heatmap (0 = defaults)")
	rootCmd.PersistentFlags().StringP("area", "a", "", "Filter results by exact area label")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of trendsCmd to Viper
	trendsCmd.Flags().Int("year", 0, "Dashboard year (0 means current year)")
	if err := viper.BindPFlags(trendsCmd.Flags()); err != nil {
		contract.LogFatal("Error binding trends flags", err)
	}

	// Bind all flags of routeCmd to Viper
	routeCmd.Flags().String("start", "", "Route start point as 'lat,lng' in decimal degrees")
	routeCmd.Flags().String("end", "", "Route end point as 'lat,lng' in decimal degrees")
	routeCmd.Flags().Int("waypoints", contract.DefaultWaypoints, "Number of intermediate waypoints")
	routeCmd.Flags().Float64("radius", contract.DefaultRadiusDeg, "Hazard search radius around each waypoint in degrees")
	routeCmd.Flags().Float64("displacement", contract.DefaultDisplacement, "Waypoint displacement fraction away from hazard clusters")
	routeCmd.Flags().Float64("speed", contract.DefaultSpeedKmh, "Average travel speed in km/h for the time estimate")
	if err := viper.BindPFlags(routeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding route flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
