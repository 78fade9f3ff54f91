package contract

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/safecity/crimelens/schema"
)

// Default values for configuration.
const (
	DefaultLookbackMonths = 12
	DefaultPredictionDays = 90
	DefaultRouteDays      = 30
	DefaultResultLimit    = 25
	MaxResultLimit        = 1000
	DefaultPrecision      = 2

	DefaultWaypoints    = 3
	DefaultRadiusDeg    = 0.01
	DefaultDisplacement = 0.3
	DefaultSpeedKmh     = 30.0
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for the analytics commands.
// This struct remains the "final, validated" config.
type Config struct {
	Backend   schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	LookbackMonths int // Months of history for area ranking
	PredictionDays int // Days of history for prediction generation
	RouteDays      int // Days of hazard history for route planning

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	UseColors   bool
	Width       int // Terminal width override (0 = auto-detect)

	Year int // Trend dashboard year; 0 means current year

	AreaFilter string // Optional exact area label filter

	RouteStart   schema.LatLng
	RouteEnd     schema.LatLng
	RouteSet     bool // Whether start/end were provided
	Waypoints    int  // Intermediate waypoint count
	RadiusDeg    float64
	Displacement float64
	SpeedKmh     float64
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Backend    string `mapstructure:"backend"`
	DBConnect  string `mapstructure:"db-connect"`
	Months     int    `mapstructure:"months"`
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Color      string `mapstructure:"color"`
	Width      int    `mapstructure:"width"`

	// --- Fields from trendsCmd.Flags() ---
	Year int `mapstructure:"year"`

	// --- Fields from predictCmd / heatmapCmd flags ---
	Days int    `mapstructure:"days"`
	Area string `mapstructure:"area"`

	// --- Fields from routeCmd.Flags() ---
	Start        string  `mapstructure:"start"`
	End          string  `mapstructure:"end"`
	Waypoints    int     `mapstructure:"waypoints"`
	Radius       float64 `mapstructure:"radius"`
	Displacement float64 `mapstructure:"displacement"`
	Speed        float64 `mapstructure:"speed"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// TrendYear resolves the dashboard year, defaulting to the current year.
func (c *Config) TrendYear(now time.Time) int {
	if c.Year > 0 {
		return c.Year
	}
	return now.Year()
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processWindows(cfg, input); err != nil {
		return err
	}
	if err := processRouteInputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") && !strings.HasPrefix(connStr, "postgres://") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' or use the postgres:// form")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.AreaFilter = strings.TrimSpace(input.Area)

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 3. Backend Validation ---
	cfg.Backend = schema.DatabaseBackend(strings.ToLower(input.Backend))
	if _, ok := schema.ValidDatabaseBackends[cfg.Backend]; !ok {
		return fmt.Errorf("invalid backend '%s'. must be sqlite, mysql, postgresql", input.Backend)
	}
	cfg.DBConnect = input.DBConnect
	if err := ValidateDatabaseConnectionString(cfg.Backend, cfg.DBConnect); err != nil {
		return err
	}

	// --- 4. Trend Year Validation ---
	if input.Year != 0 && (input.Year < 2000 || input.Year > 2100) {
		return fmt.Errorf("year must be between 2000 and 2100 (received %d)", input.Year)
	}
	cfg.Year = input.Year

	return nil
}

// processWindows validates the history windows.
func processWindows(cfg *Config, input *ConfigRawInput) error {
	if input.Months <= 0 {
		return fmt.Errorf("months must be greater than 0 (received %d)", input.Months)
	}
	cfg.LookbackMonths = input.Months

	cfg.PredictionDays = DefaultPredictionDays
	cfg.RouteDays = DefaultRouteDays
	if input.Days != 0 {
		if input.Days < 0 {
			return fmt.Errorf("days must be greater than 0 (received %d)", input.Days)
		}
		cfg.PredictionDays = input.Days
		cfg.RouteDays = input.Days
	}

	return nil
}

// processRouteInputs parses the route endpoints and planner tunables.
func processRouteInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Waypoints = DefaultWaypoints
	if input.Waypoints != 0 {
		if input.Waypoints < 1 {
			return fmt.Errorf("waypoints must be at least 1 (received %d)", input.Waypoints)
		}
		cfg.Waypoints = input.Waypoints
	}

	cfg.RadiusDeg = DefaultRadiusDeg
	if input.Radius != 0 {
		if input.Radius < 0 {
			return fmt.Errorf("radius must be positive (received %v)", input.Radius)
		}
		cfg.RadiusDeg = input.Radius
	}

	cfg.Displacement = DefaultDisplacement
	if input.Displacement != 0 {
		cfg.Displacement = input.Displacement
	}

	cfg.SpeedKmh = DefaultSpeedKmh
	if input.Speed != 0 {
		if input.Speed <= 0 {
			return fmt.Errorf("speed must be greater than 0 (received %v)", input.Speed)
		}
		cfg.SpeedKmh = input.Speed
	}

	if input.Start == "" && input.End == "" {
		cfg.RouteSet = false
		return nil
	}

	start, err := ParseLatLng(input.Start)
	if err != nil {
		return fmt.Errorf("invalid --start: %w", err)
	}
	end, err := ParseLatLng(input.End)
	if err != nil {
		return fmt.Errorf("invalid --end: %w", err)
	}
	cfg.RouteStart = start
	cfg.RouteEnd = end
	cfg.RouteSet = true

	return nil
}

// ParseLatLng parses a "lat,lng" pair in decimal degrees.
func ParseLatLng(s string) (schema.LatLng, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return schema.LatLng{}, fmt.Errorf("expected 'lat,lng', got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return schema.LatLng{}, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return schema.LatLng{}, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	return schema.LatLng{Lat: lat, Lng: lng}, nil
}
