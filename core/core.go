// Package core has core logic for aggregation, scoring and ranking.
package core

import (
	"context"
	"errors"
	"time"

	"github.com/safecity/crimelens/internal/contract"
	"github.com/safecity/crimelens/internal/outwriter"
	"github.com/safecity/crimelens/schema"
)

// GetAreaRanking fetches grouped incident history and ranks every area by
// derived risk score.
func GetAreaRanking(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.AreaRanking, error) {
	rows, err := mgr.Incidents().AreaPeriodAggregates(ctx, cfg.LookbackMonths)
	if err != nil {
		return schema.AreaRanking{}, err
	}
	ranking := RankAreas(rows)
	if len(ranking.Forecasts) > cfg.ResultLimit {
		ranking.Forecasts = ranking.Forecasts[:cfg.ResultLimit]
	}
	return ranking, nil
}

// ExecuteAreaRanking runs the area ranking and prints results.
// It serves as the main entry point for the 'areas' command.
func ExecuteAreaRanking(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	ranking, err := GetAreaRanking(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteAreaRanking(ranking, cfg, time.Since(start))
}

// GetTrendReport fetches one year of grouped history and assembles the
// city-level trend dashboard.
func GetTrendReport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.TrendReport, error) {
	year := cfg.TrendYear(time.Now())
	incidents := mgr.Incidents()

	monthly, err := incidents.MonthlyCounts(ctx, year)
	if err != nil {
		return schema.TrendReport{}, err
	}
	types, err := incidents.TypeDistribution(ctx, year)
	if err != nil {
		return schema.TrendReport{}, err
	}
	areas, err := incidents.AreaDistribution(ctx, year)
	if err != nil {
		return schema.TrendReport{}, err
	}
	yearly, err := incidents.YearlyCounts(ctx, []int{year - 1, year})
	if err != nil {
		return schema.TrendReport{}, err
	}

	return BuildTrendReport(year, monthly, types, areas, yearly), nil
}

// ExecuteTrendReport runs the trend dashboard and prints results.
// It serves as the main entry point for the 'trends' command.
func ExecuteTrendReport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	report, err := GetTrendReport(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteTrendReport(report, cfg, time.Since(start))
}

// GetSafeRoute fetches recent hazards and patrols and plans a route between
// the configured endpoints.
func GetSafeRoute(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.SafeRouteResult, error) {
	if !cfg.RouteSet {
		return schema.SafeRouteResult{}, errors.New("--start and --end are required")
	}

	crimes, err := mgr.Incidents().RecentIncidents(ctx, cfg.RouteDays)
	if err != nil {
		return schema.SafeRouteResult{}, err
	}
	patrols, err := mgr.Patrols().Patrols(ctx)
	if err != nil {
		return schema.SafeRouteResult{}, err
	}

	opts := RouteOptions{
		Steps:           cfg.Waypoints + 1,
		SearchRadiusDeg: cfg.RadiusDeg,
		Displacement:    cfg.Displacement,
		AvgSpeedKmh:     cfg.SpeedKmh,
	}
	return PlanSafeRoute(cfg.RouteStart, cfg.RouteEnd, crimes, patrols, opts), nil
}

// ExecuteSafeRoute plans a route and prints results.
// It serves as the main entry point for the 'route' command.
func ExecuteSafeRoute(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := GetSafeRoute(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteSafeRoute(result, cfg, time.Since(start))
}

// RunPredictionBatch generates one assessment per area with recent history,
// prunes stale persisted rows and inserts the fresh batch. Returns the
// number of pruned rows alongside the generated assessments.
func RunPredictionBatch(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager, now time.Time) (int64, []schema.RiskAssessment, error) {
	crimes, err := mgr.Incidents().CrimeTypeAggregates(ctx, cfg.PredictionDays)
	if err != nil {
		return 0, nil, err
	}
	patrols, err := mgr.Patrols().Patrols(ctx)
	if err != nil {
		return 0, nil, err
	}

	assessments := GeneratePredictions(crimes, patrols, now)

	// Retention: drop assessments dated before today before inserting.
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	pruned, err := mgr.Assessments().PruneStale(ctx, startOfDay)
	if err != nil {
		return 0, nil, err
	}

	if len(assessments) > 0 {
		if err := mgr.Assessments().Insert(ctx, assessments); err != nil {
			return pruned, nil, err
		}
	}

	return pruned, assessments, nil
}

// ExecutePredictRun runs the prediction batch and prints the fresh batch.
// It serves as the main entry point for the 'predict run' command.
func ExecutePredictRun(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	_, assessments, err := RunPredictionBatch(ctx, cfg, mgr, time.Now())
	if err != nil {
		return err
	}
	return outwriter.WriteAssessments(assessments, cfg, time.Since(start))
}

// GetAssessments lists the currently persisted assessments, optionally
// filtered by area label.
func GetAssessments(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.RiskAssessment, error) {
	assessments, err := mgr.Assessments().List(ctx, cfg.AreaFilter)
	if err != nil {
		return nil, err
	}
	if len(assessments) > cfg.ResultLimit {
		assessments = assessments[:cfg.ResultLimit]
	}
	return assessments, nil
}

// ExecutePredictList prints the persisted assessments.
// It serves as the main entry point for the 'predict list' command.
func ExecutePredictList(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	assessments, err := GetAssessments(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteAssessments(assessments, cfg, time.Since(start))
}

// GetHeatmap shapes recent incidents into heatmap points.
func GetHeatmap(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.HeatPoint, error) {
	crimes, err := mgr.Incidents().RecentIncidents(ctx, cfg.RouteDays)
	if err != nil {
		return nil, err
	}
	points := make([]schema.HeatPoint, 0, len(crimes))
	for _, c := range crimes {
		points = append(points, schema.HeatPoint{
			Lat:       c.Lat,
			Lng:       c.Lng,
			Intensity: schema.HeatScale.Weight(c.Severity),
			CrimeType: c.CrimeType,
		})
	}
	return points, nil
}

// ExecuteHeatmap prints recent incidents as heatmap points.
// It serves as the main entry point for the 'heatmap' command.
func ExecuteHeatmap(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	points, err := GetHeatmap(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteHeatmap(points, cfg, time.Since(start))
}
