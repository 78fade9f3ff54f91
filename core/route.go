package core

import (
	"math"

	"github.com/safecity/crimelens/schema"
)

// RouteOptions tunes the safe route planner.
type RouteOptions struct {
	// Steps is the number of segments between start and end; Steps-1
	// intermediate waypoints are generated at even ratios.
	Steps int

	// SearchRadiusDeg is the planar degree-space radius used to find nearby
	// hazards and patrols. 0.01 degree is roughly 1.1 km at the equator.
	// The inclusion check is deliberately planar while the scoring weights
	// use geodesic distance; the asymmetry is part of the calibration.
	SearchRadiusDeg float64

	// Displacement is the fraction of the waypoint-to-centroid vector by
	// which a waypoint is pushed away from a crime cluster.
	Displacement float64

	// AvgSpeedKmh is the assumed travel speed for time estimation.
	AvgSpeedKmh float64
}

// DefaultRouteOptions returns the standard planner calibration.
func DefaultRouteOptions() RouteOptions {
	return RouteOptions{
		Steps:           4,
		SearchRadiusDeg: 0.01,
		Displacement:    0.3,
		AvgSpeedKmh:     30,
	}
}

// distanceEpsilonKm avoids division by zero when a hazard or patrol sits
// exactly on a waypoint.
const distanceEpsilonKm = 0.001

// endpointScore is the fixed safety score of the start and end waypoints;
// endpoints are never penalized.
const endpointScore = 100.0

// PlanSafeRoute produces an ordered waypoint sequence from start to end
// whose intermediate points are displaced away from nearby crime clusters,
// and scores the resulting path. Empty hazard or patrol sets yield identity
// behavior: no displacement, every score stays 100.
func PlanSafeRoute(start, end schema.LatLng, crimes []schema.IncidentRecord,
	patrols []schema.PatrolRecord, opts RouteOptions) schema.SafeRouteResult {
	if opts.Steps < 2 {
		opts.Steps = 2
	}

	waypoints := make([]schema.Waypoint, 0, opts.Steps+1)
	waypoints = append(waypoints, schema.Waypoint{Lat: start.Lat, Lng: start.Lng, SafetyScore: endpointScore})

	for i := 1; i < opts.Steps; i++ {
		ratio := float64(i) / float64(opts.Steps)
		point := schema.LatLng{
			Lat: start.Lat + (end.Lat-start.Lat)*ratio,
			Lng: start.Lng + (end.Lng-start.Lng)*ratio,
		}
		point = displaceFromHazards(point, crimes, opts)
		waypoints = append(waypoints, schema.Waypoint{
			Lat:         point.Lat,
			Lng:         point.Lng,
			SafetyScore: pointSafety(point, crimes, patrols, opts),
		})
	}

	waypoints = append(waypoints, schema.Waypoint{Lat: end.Lat, Lng: end.Lng, SafetyScore: endpointScore})

	totalDistance := 0.0
	for i := 0; i < len(waypoints)-1; i++ {
		totalDistance += DistanceKm(
			schema.LatLng{Lat: waypoints[i].Lat, Lng: waypoints[i].Lng},
			schema.LatLng{Lat: waypoints[i+1].Lat, Lng: waypoints[i+1].Lng},
		)
	}

	scoreSum := 0.0
	for _, wp := range waypoints {
		scoreSum += wp.SafetyScore
	}
	safety := scoreSum / float64(len(waypoints))

	return schema.SafeRouteResult{
		Waypoints:        waypoints,
		TotalDistanceKm:  schema.Round2(totalDistance),
		DirectDistanceKm: schema.Round2(DistanceKm(start, end)),
		SafetyScore:      safety,
		EstimatedTimeMin: math.Round(totalDistance / opts.AvgSpeedKmh * 60),
		RouteClass:       schema.ClassOf(safety),
	}
}

// displaceFromHazards nudges a waypoint away from the centroid of nearby
// crimes. Points with no nearby crimes are left unmoved.
func displaceFromHazards(point schema.LatLng, crimes []schema.IncidentRecord, opts RouteOptions) schema.LatLng {
	var sumLat, sumLng float64
	nearby := 0
	for _, c := range crimes {
		if degreeDistance(point, schema.LatLng{Lat: c.Lat, Lng: c.Lng}) <= opts.SearchRadiusDeg {
			sumLat += c.Lat
			sumLng += c.Lng
			nearby++
		}
	}
	if nearby == 0 {
		return point
	}

	centroidLat := sumLat / float64(nearby)
	centroidLng := sumLng / float64(nearby)

	return schema.LatLng{
		Lat: point.Lat + (point.Lat-centroidLat)*opts.Displacement,
		Lng: point.Lng + (point.Lng-centroidLng)*opts.Displacement,
	}
}

// pointSafety scores a single point: 100 minus distance-weighted severity
// penalties for nearby crimes, plus distance-weighted patrol bonuses,
// clamped to [0,100].
func pointSafety(point schema.LatLng, crimes []schema.IncidentRecord,
	patrols []schema.PatrolRecord, opts RouteOptions) float64 {
	score := 100.0

	for _, c := range crimes {
		loc := schema.LatLng{Lat: c.Lat, Lng: c.Lng}
		if degreeDistance(point, loc) > opts.SearchRadiusDeg {
			continue
		}
		penalty := schema.RoutePenaltyScale.Weight(c.Severity)
		score -= penalty / (DistanceKm(point, loc) + distanceEpsilonKm)
	}

	for _, p := range patrols {
		loc := schema.LatLng{Lat: p.Lat, Lng: p.Lng}
		if degreeDistance(point, loc) > opts.SearchRadiusDeg {
			continue
		}
		score += (p.Intensity * 2) / (DistanceKm(point, loc) + distanceEpsilonKm)
	}

	return schema.Clamp100(score)
}

// degreeDistance is the planar euclidean distance in degree space used only
// for the nearby inclusion check.
func degreeDistance(a, b schema.LatLng) float64 {
	dLat := a.Lat - b.Lat
	dLng := a.Lng - b.Lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}
