package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squarePolygon builds an axis-aligned box polygon, counter-clockwise.
func squarePolygon(minLat, minLng, maxLat, maxLng float64) Polygon {
	return Polygon{Vertices: []GeoPoint{
		{Lat: minLat, Lng: minLng},
		{Lat: minLat, Lng: maxLng},
		{Lat: maxLat, Lng: maxLng},
		{Lat: maxLat, Lng: minLng},
	}}
}

func TestIsPointInPolygon(t *testing.T) {
	square := squarePolygon(0, 0, 1, 1)

	assert.True(t, IsPointInPolygon(GeoPoint{Lat: 0.5, Lng: 0.5}, square))
	assert.False(t, IsPointInPolygon(GeoPoint{Lat: 0.5, Lng: 1.5}, square))
	assert.False(t, IsPointInPolygon(GeoPoint{Lat: -0.5, Lng: 0.5}, square))
	assert.False(t, IsPointInPolygon(GeoPoint{Lat: 2, Lng: 2}, square))
}

func TestIsPointInPolygonDegenerate(t *testing.T) {
	line := Polygon{Vertices: []GeoPoint{{Lat: 0, Lng: 0}, {Lat: 1, Lng: 1}}}
	assert.False(t, IsPointInPolygon(GeoPoint{Lat: 0.5, Lng: 0.5}, line))
}

func TestDoSegmentsIntersect(t *testing.T) {
	crossing1 := LineSegment{A: GeoPoint{Lat: 0, Lng: -1}, B: GeoPoint{Lat: 0, Lng: 1}}
	crossing2 := LineSegment{A: GeoPoint{Lat: -1, Lng: 0}, B: GeoPoint{Lat: 1, Lng: 0}}
	assert.True(t, DoSegmentsIntersect(crossing1, crossing2))

	parallel := LineSegment{A: GeoPoint{Lat: 1, Lng: -1}, B: GeoPoint{Lat: 1, Lng: 1}}
	assert.False(t, DoSegmentsIntersect(crossing1, parallel))

	// Shared endpoints do not count as intersections.
	shared := LineSegment{A: GeoPoint{Lat: 0, Lng: 1}, B: GeoPoint{Lat: 5, Lng: 5}}
	assert.False(t, DoSegmentsIntersect(crossing1, shared))
}

func TestDoSegmentsIntersectCollinear(t *testing.T) {
	seg := LineSegment{A: GeoPoint{Lat: 0, Lng: 0}, B: GeoPoint{Lat: 0, Lng: 4}}
	overlapping := LineSegment{A: GeoPoint{Lat: 0, Lng: 1}, B: GeoPoint{Lat: 0, Lng: 3}}
	assert.True(t, DoSegmentsIntersect(seg, overlapping))
}

func TestDoesSegmentIntersectPolygon(t *testing.T) {
	square := squarePolygon(-0.5, -0.5, 0.5, 0.5)

	through := LineSegment{A: GeoPoint{Lat: 0, Lng: -2}, B: GeoPoint{Lat: 0, Lng: 2}}
	assert.True(t, DoesSegmentIntersectPolygon(through, square))

	clear := LineSegment{A: GeoPoint{Lat: 2, Lng: -2}, B: GeoPoint{Lat: 2, Lng: 2}}
	assert.False(t, DoesSegmentIntersectPolygon(clear, square))
}

func TestDistanceMeters(t *testing.T) {
	// One degree of latitude is roughly 111 km.
	a := GeoPoint{Lat: 0, Lng: 0}
	b := GeoPoint{Lat: 1, Lng: 0}
	require.InDelta(t, 111195, a.DistanceMeters(b), 200)

	assert.Zero(t, a.DistanceMeters(a))
}

func TestMidpoint(t *testing.T) {
	mid := GeoPoint{Lat: 0, Lng: -1}.Midpoint(GeoPoint{Lat: 2, Lng: 3})
	assert.Equal(t, GeoPoint{Lat: 1, Lng: 1}, mid)
}
