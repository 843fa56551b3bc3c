package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// defaultLandDataPath is where the hosting application drops the coastline
// dataset, relative to the server working directory.
const defaultLandDataPath = "data/land-polygons.geojson"

// NewGeoJSONLoader returns a PolygonLoader that fetches a GeoJSON feature
// collection from a file path or an http(s) URL. The oracle invokes it at
// most once; any failure surfaces as a DataLoadError.
func NewGeoJSONLoader(location string) PolygonLoader {
	return func() ([]Polygon, error) {
		data, err := fetchDataset(location)
		if err != nil {
			return nil, &DataLoadError{Source: location, Err: err}
		}

		polygons, err := parseLandPolygons(data)
		if err != nil {
			return nil, &DataLoadError{Source: location, Err: err}
		}

		log.Printf("coastline loader: parsed %d polygons from %s\n", len(polygons), location)
		return polygons, nil
	}
}

func fetchDataset(location string) ([]byte, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		resp, err := http.Get(location)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		return io.ReadAll(resp.Body)
	}

	return os.ReadFile(location)
}

// parseLandPolygons converts a GeoJSON feature collection into land polygons.
// Only outer rings are kept; holes (inland lakes) do not matter for routing.
func parseLandPolygons(data []byte) ([]Polygon, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	var polygons []Polygon
	for _, feature := range fc.Features {
		switch geom := feature.Geometry.(type) {
		case orb.Polygon:
			if polygon, ok := outerRingToPolygon(geom); ok {
				polygons = append(polygons, polygon)
			}
		case orb.MultiPolygon:
			for _, part := range geom {
				if polygon, ok := outerRingToPolygon(part); ok {
					polygons = append(polygons, polygon)
				}
			}
		}
	}

	return polygons, nil
}

func outerRingToPolygon(p orb.Polygon) (Polygon, bool) {
	if len(p) == 0 || len(p[0]) < 3 {
		return Polygon{}, false
	}

	outer := p[0]
	polygon := Polygon{Vertices: make([]GeoPoint, 0, len(outer))}
	for _, pt := range outer {
		polygon.Vertices = append(polygon.Vertices, GeoPoint{Lat: pt.Lat(), Lng: pt.Lon()})
	}
	return polygon, true
}
