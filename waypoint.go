package main

// WaypointKind classifies a waypoint's role within a route.
type WaypointKind string

const (
	KindDeparture    WaypointKind = "departure"
	KindDestination  WaypointKind = "destination"
	KindWaypoint     WaypointKind = "waypoint"
	KindCourseChange WaypointKind = "course_change"
)

// Waypoint is a named point along a route.
type Waypoint struct {
	GeoPoint
	Name string       `json:"name"`
	Kind WaypointKind `json:"kind,omitempty"`
}

// NewWaypoint builds a waypoint from a name and coordinates.
func NewWaypoint(name string, lat, lng float64, kind WaypointKind) Waypoint {
	return Waypoint{
		GeoPoint: GeoPoint{Lat: lat, Lng: lng},
		Name:     name,
		Kind:     kind,
	}
}

// RouteDistanceMeters sums the great-circle leg lengths of a waypoint route.
func RouteDistanceMeters(path []Waypoint) float64 {
	var total float64
	for i := 0; i < len(path)-1; i++ {
		total += path[i].DistanceMeters(path[i+1].GeoPoint)
	}
	return total
}
