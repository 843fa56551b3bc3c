package main

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
)

// DataLoadError reports a failed fetch or parse of the land boundary dataset.
// It is fatal: the oracle never retries, and every dependent operation
// propagates it unchanged.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("land boundary data from %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// PolygonLoader supplies the land polygon set. Production code uses
// NewGeoJSONLoader; tests inject fixture polygons directly.
type PolygonLoader func() ([]Polygon, error)

// LandOracle answers point-in-land and segment-crosses-land queries against
// a polygon dataset loaded once on first use and cached for the oracle's
// lifetime. The cache is write-once: a load result, success or failure, is
// never revisited.
type LandOracle struct {
	load PolygonLoader

	once     sync.Once
	loaded   atomic.Bool
	polygons []Polygon
	index    *SpatialIndex
	err      error
}

// NewLandOracle creates an oracle backed by the given loader. Nothing is
// fetched until the first query.
func NewLandOracle(load PolygonLoader) *LandOracle {
	return &LandOracle{load: load}
}

func (o *LandOracle) ensureLoaded() error {
	o.once.Do(func() {
		polygons, err := o.load()
		if err != nil {
			var dle *DataLoadError
			if !errors.As(err, &dle) {
				err = &DataLoadError{Source: "polygon loader", Err: err}
			}
			o.err = err
			return
		}
		o.polygons = polygons
		o.index = NewSpatialIndex(polygons)
		o.loaded.Store(true)
		log.Printf("land oracle: %d polygons resident\n", len(polygons))
	})
	return o.err
}

// IsLoaded reports whether the polygon set is resident.
func (o *LandOracle) IsLoaded() bool {
	return o.loaded.Load()
}

// PolygonCount returns the number of resident land polygons, 0 before load.
func (o *LandOracle) PolygonCount() int {
	if !o.loaded.Load() {
		return 0
	}
	return len(o.polygons)
}

// IsLand reports whether the point lies inside any land polygon.
func (o *LandOracle) IsLand(p GeoPoint) (bool, error) {
	if err := o.ensureLoaded(); err != nil {
		return false, err
	}
	for _, polygon := range o.index.QueryPoint(p) {
		if IsPointInPolygon(p, polygon) {
			return true, nil
		}
	}
	return false, nil
}

// SegmentCrossesLand reports whether the straight segment between a and b
// touches or crosses any land polygon. A segment counts as crossing when it
// intersects a boundary edge, when either endpoint is inside, or when its
// midpoint is inside, which catches segments lying entirely within a polygon.
func (o *LandOracle) SegmentCrossesLand(a, b GeoPoint) (bool, error) {
	if err := o.ensureLoaded(); err != nil {
		return false, err
	}

	seg := LineSegment{A: a, B: b}
	mid := a.Midpoint(b)

	for _, polygon := range o.index.QuerySegment(a, b) {
		if DoesSegmentIntersectPolygon(seg, polygon) {
			return true, nil
		}
		if IsPointInPolygon(a, polygon) || IsPointInPolygon(b, polygon) {
			return true, nil
		}
		if IsPointInPolygon(mid, polygon) {
			return true, nil
		}
	}

	return false, nil
}
