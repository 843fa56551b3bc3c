package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {"name": "island"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[0, 0], [1, 0], [1, 1], [0, 1], [0, 0]]]
			}
		},
		{
			"type": "Feature",
			"properties": {"name": "archipelago"},
			"geometry": {
				"type": "MultiPolygon",
				"coordinates": [
					[[[10, 10], [11, 10], [11, 11], [10, 11], [10, 10]]],
					[[[20, 20], [21, 20], [21, 21], [20, 21], [20, 20]]]
				]
			}
		}
	]
}`

func TestParseLandPolygons(t *testing.T) {
	polygons, err := parseLandPolygons([]byte(fixtureGeoJSON))
	require.NoError(t, err)

	// One Polygon plus two MultiPolygon parts.
	require.Len(t, polygons, 3)

	// GeoJSON coordinates are [lng, lat].
	first := polygons[0]
	require.Len(t, first.Vertices, 5)
	assert.Equal(t, GeoPoint{Lat: 0, Lng: 1}, first.Vertices[1])

	assert.True(t, IsPointInPolygon(GeoPoint{Lat: 0.5, Lng: 0.5}, first))
	assert.True(t, IsPointInPolygon(GeoPoint{Lat: 20.5, Lng: 20.5}, polygons[2]))
}

func TestParseLandPolygonsRejectsGarbage(t *testing.T) {
	_, err := parseLandPolygons([]byte(`{"not": "geojson"`))
	assert.Error(t, err)
}

func TestNewGeoJSONLoaderFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "land.geojson")
	require.NoError(t, os.WriteFile(path, []byte(fixtureGeoJSON), 0644))

	polygons, err := NewGeoJSONLoader(path)()
	require.NoError(t, err)
	assert.Len(t, polygons, 3)
}

func TestNewGeoJSONLoaderMissingFile(t *testing.T) {
	_, err := NewGeoJSONLoader(filepath.Join(t.TempDir(), "nope.geojson"))()
	require.Error(t, err)

	var dle *DataLoadError
	require.ErrorAs(t, err, &dle)
	assert.Contains(t, dle.Source, "nope.geojson")
}

func TestGeoJSONLoaderDrivesOracle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "land.geojson")
	require.NoError(t, os.WriteFile(path, []byte(fixtureGeoJSON), 0644))

	oracle := NewLandOracle(NewGeoJSONLoader(path))

	land, err := oracle.IsLand(GeoPoint{Lat: 0.5, Lng: 0.5})
	require.NoError(t, err)
	assert.True(t, land)

	land, err = oracle.IsLand(GeoPoint{Lat: 5, Lng: 5})
	require.NoError(t, err)
	assert.False(t, land)
	assert.Equal(t, 3, oracle.PolygonCount())
}
