package main

import "math"

// GeoPoint is a geographic coordinate in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Polygon represents a closed landmass boundary as a list of vertices.
type Polygon struct {
	Vertices []GeoPoint `json:"vertices"`
}

// Distance calculates the planar distance between two points in degrees.
// Good enough for nearest-node snapping and search heuristics over the small
// regions the grid router operates on.
func (p GeoPoint) Distance(other GeoPoint) float64 {
	dLat := p.Lat - other.Lat
	dLng := p.Lng - other.Lng
	return math.Sqrt(dLat*dLat + dLng*dLng)
}

// DistanceMeters calculates the great-circle distance in meters between two
// points using the Haversine formula.
func (p GeoPoint) DistanceMeters(other GeoPoint) float64 {
	const earthRadiusMeters = 6371000.0

	lat1 := p.Lat * math.Pi / 180.0
	lat2 := other.Lat * math.Pi / 180.0
	deltaLat := (other.Lat - p.Lat) * math.Pi / 180.0
	deltaLng := (other.Lng - p.Lng) * math.Pi / 180.0

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Midpoint returns the geometric midpoint of p and other.
func (p GeoPoint) Midpoint(other GeoPoint) GeoPoint {
	return GeoPoint{
		Lat: (p.Lat + other.Lat) / 2,
		Lng: (p.Lng + other.Lng) / 2,
	}
}

// LineSegment represents a straight segment between two points.
type LineSegment struct {
	A, B GeoPoint
}

// DoSegmentsIntersect checks if two line segments intersect. Segments that
// only share an endpoint do not count as intersecting.
func DoSegmentsIntersect(seg1, seg2 LineSegment) bool {
	p1, p2 := seg1.A, seg1.B
	p3, p4 := seg2.A, seg2.B

	// Check if the segments are the same or share endpoints
	if (p1 == p3 && p2 == p4) || (p1 == p4 && p2 == p3) {
		return false
	}
	if p1 == p3 || p1 == p4 || p2 == p3 || p2 == p4 {
		return false
	}

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Check for collinear cases
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

// direction calculates the cross product to determine orientation
func direction(p1, p2, p3 GeoPoint) float64 {
	return (p3.Lng-p1.Lng)*(p2.Lat-p1.Lat) - (p2.Lng-p1.Lng)*(p3.Lat-p1.Lat)
}

// onSegment checks if point q lies on segment pr
func onSegment(p, r, q GeoPoint) bool {
	return q.Lng <= math.Max(p.Lng, r.Lng) && q.Lng >= math.Min(p.Lng, r.Lng) &&
		q.Lat <= math.Max(p.Lat, r.Lat) && q.Lat >= math.Min(p.Lat, r.Lat)
}

// IsPointInPolygon checks if a point is inside a polygon using ray casting
func IsPointInPolygon(point GeoPoint, polygon Polygon) bool {
	n := len(polygon.Vertices)
	if n < 3 {
		return false
	}

	count := 0
	for i := 0; i < n; i++ {
		v1 := polygon.Vertices[i]
		v2 := polygon.Vertices[(i+1)%n]

		if (v1.Lat > point.Lat) != (v2.Lat > point.Lat) {
			slope := (point.Lng-v1.Lng)*(v2.Lat-v1.Lat) - (v2.Lng-v1.Lng)*(point.Lat-v1.Lat)
			if v2.Lat > v1.Lat {
				if slope > 0 {
					count++
				}
			} else {
				if slope < 0 {
					count++
				}
			}
		}
	}

	return count%2 == 1
}

// DoesSegmentIntersectPolygon checks if a line segment intersects any edge of a polygon
func DoesSegmentIntersectPolygon(seg LineSegment, polygon Polygon) bool {
	n := len(polygon.Vertices)
	for i := 0; i < n; i++ {
		edge := LineSegment{
			A: polygon.Vertices[i],
			B: polygon.Vertices[(i+1)%n],
		}
		if DoSegmentsIntersect(seg, edge) {
			return true
		}
	}
	return false
}
