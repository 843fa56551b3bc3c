package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testOracle builds an oracle over fixture polygons, no I/O involved.
func testOracle(polygons ...Polygon) *LandOracle {
	return NewLandOracle(func() ([]Polygon, error) {
		return polygons, nil
	})
}

func TestLandOracleIsLand(t *testing.T) {
	oracle := testOracle(squarePolygon(0, 0, 1, 1))

	land, err := oracle.IsLand(GeoPoint{Lat: 0.5, Lng: 0.5})
	require.NoError(t, err)
	assert.True(t, land)

	land, err = oracle.IsLand(GeoPoint{Lat: 5, Lng: 5})
	require.NoError(t, err)
	assert.False(t, land)
}

func TestLandOracleSegmentCrossesLand(t *testing.T) {
	oracle := testOracle(squarePolygon(-0.5, -0.5, 0.5, 0.5))

	// Straight through the polygon.
	crosses, err := oracle.SegmentCrossesLand(GeoPoint{Lat: 0, Lng: -2}, GeoPoint{Lat: 0, Lng: 2})
	require.NoError(t, err)
	assert.True(t, crosses)

	// Endpoint inside.
	crosses, err = oracle.SegmentCrossesLand(GeoPoint{Lat: 0, Lng: 0}, GeoPoint{Lat: 0, Lng: 2})
	require.NoError(t, err)
	assert.True(t, crosses)

	// Entirely inside: no boundary hit, but the midpoint check catches it.
	crosses, err = oracle.SegmentCrossesLand(GeoPoint{Lat: -0.2, Lng: -0.2}, GeoPoint{Lat: 0.2, Lng: 0.2})
	require.NoError(t, err)
	assert.True(t, crosses)

	// Well clear of the polygon.
	crosses, err = oracle.SegmentCrossesLand(GeoPoint{Lat: 2, Lng: -2}, GeoPoint{Lat: 2, Lng: 2})
	require.NoError(t, err)
	assert.False(t, crosses)
}

func TestLandOracleLoadsOnce(t *testing.T) {
	loads := 0
	oracle := NewLandOracle(func() ([]Polygon, error) {
		loads++
		return []Polygon{squarePolygon(0, 0, 1, 1)}, nil
	})

	assert.False(t, oracle.IsLoaded())

	_, err := oracle.IsLand(GeoPoint{Lat: 0.5, Lng: 0.5})
	require.NoError(t, err)
	_, err = oracle.IsLand(GeoPoint{Lat: 5, Lng: 5})
	require.NoError(t, err)
	_, err = oracle.SegmentCrossesLand(GeoPoint{Lat: 2, Lng: 2}, GeoPoint{Lat: 3, Lng: 3})
	require.NoError(t, err)

	assert.Equal(t, 1, loads)
	assert.True(t, oracle.IsLoaded())
	assert.Equal(t, 1, oracle.PolygonCount())
}

func TestLandOracleLoadFailureIsFatalAndSticky(t *testing.T) {
	loads := 0
	oracle := NewLandOracle(func() ([]Polygon, error) {
		loads++
		return nil, errors.New("boom")
	})

	_, err := oracle.IsLand(GeoPoint{})
	require.Error(t, err)
	var dle *DataLoadError
	require.ErrorAs(t, err, &dle)

	// No retry: the failure is cached.
	_, err2 := oracle.SegmentCrossesLand(GeoPoint{}, GeoPoint{Lat: 1, Lng: 1})
	require.Error(t, err2)
	assert.Equal(t, 1, loads)
	assert.False(t, oracle.IsLoaded())
}

func TestLandOracleKeepsTypedLoaderError(t *testing.T) {
	want := &DataLoadError{Source: "fixture.geojson", Err: errors.New("not found")}
	oracle := NewLandOracle(func() ([]Polygon, error) { return nil, want })

	_, err := oracle.IsLand(GeoPoint{})
	var dle *DataLoadError
	require.ErrorAs(t, err, &dle)
	assert.Equal(t, "fixture.geojson", dle.Source)
}
