package cmd

import (
	"github.com/safecity/crimelens/core"
	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/schema"
	"github.com/spf13/cobra"
)

// predictCmd groups the risk assessment subcommands.
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Generate and inspect per-area risk assessments",
	Long: `Generate per-area risk assessments from recent incident history.

Each assessment names the dominant crime type for an area, a risk score,
a risk level, and a confidence that grows with the amount of history
behind it. Assessments are persisted; stale rows are pruned whenever a
fresh batch runs.

Subcommands:
  run    - Generate a fresh batch and persist it
  list   - Show the currently persisted assessments
  export - Export assessments to Parquet for analytics

Examples:
  # Generate today's batch
  crimelens predict run

  # Inspect what is stored, highest risk first
  crimelens predict list

  # Export for analysis in pandas/DuckDB
  crimelens predict export --output-file assessments.parquet`,
}

// predictRunCmd generates and persists a fresh assessment batch.
var predictRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a fresh batch of risk assessments",
	Long: `Generate one assessment per area with recent incident history.

The batch replaces prior assessments: rows dated before today are pruned
before the fresh batch is inserted. Areas without recent incidents get
no assessment.

Examples:
  # Generate from the default trailing window
  crimelens predict run

  # Use a longer history window
  crimelens predict run --days 180`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePredictRun(rootCtx, cfg, recordStore); err != nil {
			contract.LogFatal("Cannot run prediction batch", err)
		}
	},
}

// predictListCmd lists persisted assessments.
var predictListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the persisted risk assessments",
	Long: `List the currently persisted assessments, highest risk first.

Examples:
  # All assessments
  crimelens predict list

  # One area only
  crimelens predict list --area Gulshan`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePredictList(rootCtx, cfg, recordStore); err != nil {
			contract.LogFatal("Cannot list assessments", err)
		}
	},
}

// predictExportCmd exports assessments to a Parquet file.
var predictExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export risk assessments to Parquet for BI tools and analytics",
	Long: `Export the persisted assessments to Parquet format.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all assessments
  crimelens predict export --output-file assessments.parquet

  # Use with DuckDB for analysis
  crimelens predict export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet') LIMIT 10"`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		exportCfg := cfg.Clone()
		exportCfg.Output = schema.ParquetOut
		if err := core.ExecutePredictList(rootCtx, exportCfg, recordStore); err != nil {
			contract.LogFatal("Cannot export assessments", err)
		}
	},
}
