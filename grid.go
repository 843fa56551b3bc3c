package main

import "errors"

// Bounds is a latitude/longitude bounding box.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MaxLat float64 `json:"maxLat"`
	MinLng float64 `json:"minLng"`
	MaxLng float64 `json:"maxLng"`
}

// Contains reports whether the point lies within the box, edges included.
func (b Bounds) Contains(p GeoPoint) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// ErrInvalidStep rejects non-positive grid steps.
var ErrInvalidStep = errors.New("grid step must be positive")

// stepSlack absorbs floating-point drift when stepping across a bounding box,
// so an end bound reachable by stepping is always included.
const stepSlack = 1e-9

// BuildSeaGrid discretizes the bounding box into candidate sea nodes at a
// fixed angular step, inclusive of both ends, excluding land points and exact
// duplicates.
//
// Cost is O(cells x polygons): a finer step grows cost quadratically per
// dimension, so callers must keep the region tight. Long hauls go through the
// archetype composer instead of a dense ocean-scale grid.
func BuildSeaGrid(oracle *LandOracle, bounds Bounds, step float64) ([]GeoPoint, error) {
	if step <= 0 {
		return nil, ErrInvalidStep
	}

	var grid []GeoPoint
	seen := make(map[GeoPoint]struct{})

	for lat := bounds.MinLat; lat <= bounds.MaxLat+step*stepSlack; lat += step {
		for lng := bounds.MinLng; lng <= bounds.MaxLng+step*stepSlack; lng += step {
			p := GeoPoint{Lat: lat, Lng: lng}
			if _, dup := seen[p]; dup {
				continue
			}
			land, err := oracle.IsLand(p)
			if err != nil {
				return nil, err
			}
			if land {
				continue
			}
			seen[p] = struct{}{}
			grid = append(grid, p)
		}
	}

	return grid, nil
}
