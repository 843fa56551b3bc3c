package main

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// PolygonEntry wraps a land polygon for R-tree storage
type PolygonEntry struct {
	Polygon Polygon
	BBox    rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (p *PolygonEntry) Bounds() rtreego.Rect {
	return p.BBox
}

// SpatialIndex narrows land queries to polygons whose bounding box overlaps
// the query region, so point and segment checks never scan the whole dataset.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// NewSpatialIndex builds an R-tree over the polygon set. Degenerate polygons
// (fewer than 3 vertices) are skipped.
func NewSpatialIndex(polygons []Polygon) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node

	for _, polygon := range polygons {
		if len(polygon.Vertices) < 3 {
			continue
		}
		bbox, err := polygonBoundingBox(polygon)
		if err == nil {
			tree.Insert(&PolygonEntry{Polygon: polygon, BBox: bbox})
		}
	}

	return &SpatialIndex{tree: tree}
}

// QueryPoint returns polygons whose bounding box contains the point.
func (si *SpatialIndex) QueryPoint(p GeoPoint) []Polygon {
	return si.query(p.Lng, p.Lat, p.Lng, p.Lat)
}

// QuerySegment returns polygons whose bounding box overlaps the segment's
// bounding box.
func (si *SpatialIndex) QuerySegment(a, b GeoPoint) []Polygon {
	return si.query(
		math.Min(a.Lng, b.Lng), math.Min(a.Lat, b.Lat),
		math.Max(a.Lng, b.Lng), math.Max(a.Lat, b.Lat),
	)
}

func (si *SpatialIndex) query(minX, minY, maxX, maxY float64) []Polygon {
	// rtreego rejects zero-extent rectangles, so pad degenerate queries.
	const pad = 1e-9
	bbox, err := rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{maxX - minX + pad, maxY - minY + pad},
	)
	if err != nil {
		return []Polygon{}
	}

	results := si.tree.SearchIntersect(bbox)
	polygons := make([]Polygon, 0, len(results))

	for _, item := range results {
		entry := item.(*PolygonEntry)
		polygons = append(polygons, entry.Polygon)
	}

	return polygons
}

// polygonBoundingBox computes the axis-aligned bounding box for a polygon
func polygonBoundingBox(polygon Polygon) (rtreego.Rect, error) {
	const pad = 1e-9

	minX, minY := polygon.Vertices[0].Lng, polygon.Vertices[0].Lat
	maxX, maxY := minX, minY

	for _, v := range polygon.Vertices[1:] {
		minX = math.Min(minX, v.Lng)
		maxX = math.Max(maxX, v.Lng)
		minY = math.Min(minY, v.Lat)
		maxY = math.Max(maxY, v.Lat)
	}

	return rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{maxX - minX + pad, maxY - minY + pad},
	)
}
