package main

import "log"

// FindSeaRoute plans a water-only route across a bounded region: the box is
// discretized into a sea grid, the grid into a navigable graph, the start and
// end are snapped to their nearest grid nodes, and the searched path is run
// through sea-safety repair.
//
// An unreachable pair yields an empty, non-nil slice with a nil error - the
// historical contract of this boundary. The only error conditions are a
// failed dataset load (DataLoadError) and an invalid step (ErrInvalidStep).
func FindSeaRoute(oracle *LandOracle, start, end GeoPoint, bounds Bounds, step float64) ([]GeoPoint, error) {
	grid, err := BuildSeaGrid(oracle, bounds, step)
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		log.Printf("sea route: no sea nodes in [%g,%g]x[%g,%g] at step %g\n",
			bounds.MinLat, bounds.MaxLat, bounds.MinLng, bounds.MaxLng, step)
		return []GeoPoint{}, nil
	}

	graph, err := BuildSeaGraph(oracle, grid, step)
	if err != nil {
		return nil, err
	}

	startID := NearestNode(grid, start)
	endID := NearestNode(grid, end)

	path, ok := FindPath(graph, startID, endID)
	if !ok {
		log.Printf("sea route: no path between nodes %d and %d (%d grid nodes)\n", startID, endID, len(grid))
		return []GeoPoint{}, nil
	}

	return ensureSeaSafePoints(oracle, path)
}

// FindMaritimePath plans a long-haul route: archetype composition through
// named chokepoints, then sea-safety repair over every leg.
func FindMaritimePath(oracle *LandOracle, start, end Waypoint) ([]Waypoint, error) {
	return EnsureSeaSafeSegments(oracle, ComposeRoute(start, end))
}
