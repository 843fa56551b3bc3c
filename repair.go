package main

import "math"

// Repair budgets. Once exhausted, repair accepts the best segment found so
// far rather than failing: the caller must always get a renderable route.
const (
	maxFixDepth      = 6
	offshoreStep     = 0.2 // degrees per spiral step
	offshoreAttempts = 50
)

// fixSegment returns a polyline between a and b that avoids land, recursively
// subdividing at an offshore-pushed midpoint. At maxFixDepth the segment is
// accepted as-is even if it still crosses land.
func fixSegment(oracle *LandOracle, a, b GeoPoint, depth int) ([]GeoPoint, error) {
	crosses, err := oracle.SegmentCrossesLand(a, b)
	if err != nil {
		return nil, err
	}
	if !crosses || depth >= maxFixDepth {
		return []GeoPoint{a, b}, nil
	}

	mid, err := pushOffshore(oracle, a.Midpoint(b))
	if err != nil {
		return nil, err
	}

	left, err := fixSegment(oracle, a, mid, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := fixSegment(oracle, mid, b, depth+1)
	if err != nil {
		return nil, err
	}

	// The midpoint ends the left half and starts the right; keep it once.
	return append(left, right[1:]...), nil
}

// pushOffshore walks an expanding spiral away from p until it reaches water
// or the attempt budget runs out. Attempt i probes the point at heading
// 45deg*i and radius offshoreStep*(i+1) from the original position. Every
// probe is checked, the last included; if none is water, the final probe is
// returned even though it is still on land.
func pushOffshore(oracle *LandOracle, p GeoPoint) (GeoPoint, error) {
	candidate := p
	for attempt := 0; ; attempt++ {
		land, err := oracle.IsLand(candidate)
		if err != nil {
			return GeoPoint{}, err
		}
		if !land || attempt == offshoreAttempts {
			return candidate, nil
		}

		heading := float64(attempt) * 45 * math.Pi / 180
		radius := offshoreStep * float64(attempt+1)
		candidate = GeoPoint{
			Lat: p.Lat + radius*math.Sin(heading),
			Lng: p.Lng + radius*math.Cos(heading),
		}
	}
}

// EnsureSeaSafeSegments repairs every leg of a composed route, inserting
// course-change waypoints where a leg crossed land. Waypoints keep their
// names and kinds; no two consecutive points of the result are geometrically
// identical, and the result holds at most len(path) * 2^maxFixDepth points.
//
// Interior waypoints that sit on land are relocated offshore before the legs
// are repaired: fixSegment only ever moves midpoints, so a land-borne leg end
// would otherwise stay on land through every subdivision. The departure and
// destination are never moved.
func EnsureSeaSafeSegments(oracle *LandOracle, path []Waypoint) ([]Waypoint, error) {
	if len(path) < 2 {
		return path, nil
	}

	repaired := make([]Waypoint, len(path))
	copy(repaired, path)
	for i := 1; i < len(repaired)-1; i++ {
		moved, err := pushOffshore(oracle, repaired[i].GeoPoint)
		if err != nil {
			return nil, err
		}
		repaired[i].GeoPoint = moved
	}

	out := []Waypoint{repaired[0]}
	for i := 0; i < len(repaired)-1; i++ {
		points, err := fixSegment(oracle, repaired[i].GeoPoint, repaired[i+1].GeoPoint, 0)
		if err != nil {
			return nil, err
		}

		// The leading point duplicates the previous segment's trailing point.
		for _, p := range points[1 : len(points)-1] {
			out = appendWaypoint(out, Waypoint{GeoPoint: p, Name: "Course Adjustment", Kind: KindCourseChange})
		}
		out = appendWaypoint(out, repaired[i+1])
	}

	return out, nil
}

// appendWaypoint adds wp unless it would duplicate the previous point. A
// named waypoint wins over a coinciding course adjustment.
func appendWaypoint(out []Waypoint, wp Waypoint) []Waypoint {
	n := len(out)
	if n > 0 && out[n-1].GeoPoint == wp.GeoPoint {
		if wp.Kind != KindCourseChange {
			out[n-1] = wp
		}
		return out
	}
	return append(out, wp)
}

// ensureSeaSafePoints is the bare point-sequence flavor used by the grid
// router. Same repair, same dedup guarantee, no waypoint metadata.
func ensureSeaSafePoints(oracle *LandOracle, path []GeoPoint) ([]GeoPoint, error) {
	if len(path) < 2 {
		return path, nil
	}

	out := []GeoPoint{path[0]}
	for i := 0; i < len(path)-1; i++ {
		points, err := fixSegment(oracle, path[i], path[i+1], 0)
		if err != nil {
			return nil, err
		}
		for _, p := range points[1:] {
			if out[len(out)-1] != p {
				out = append(out, p)
			}
		}
	}

	return out, nil
}
