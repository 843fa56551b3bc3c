package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
)

// RouteArchetype tags a long-haul routing corridor. Each archetype carries a
// hand-authored template of named chokepoints used instead of dense grid
// search for trans-oceanic legs.
type RouteArchetype string

const (
	ArchetypeIndiaToSEA        RouteArchetype = "india_to_sea"
	ArchetypeIndiaToMiddleEast RouteArchetype = "india_to_middle_east"
	ArchetypeEuropeToAsia      RouteArchetype = "europe_to_asia"
	ArchetypeAroundAfrica      RouteArchetype = "around_africa"
	ArchetypeTransPacific      RouteArchetype = "trans_pacific"
	ArchetypeTransAtlantic     RouteArchetype = "trans_atlantic"
	ArchetypeCoastal           RouteArchetype = "coastal"
	ArchetypeOpenSea           RouteArchetype = "open_sea"
)

// Macro-region bounding boxes for archetype classification. Approximate on
// purpose: they only have to separate corridors, not trace coastlines.
var (
	regionIndia         = Bounds{MinLat: 5, MaxLat: 25, MinLng: 68, MaxLng: 90}
	regionSoutheastAsia = Bounds{MinLat: -10, MaxLat: 22, MinLng: 92, MaxLng: 130}
	regionMiddleEast    = Bounds{MinLat: 12, MaxLat: 32, MinLng: 32, MaxLng: 60}
	regionEurope        = Bounds{MinLat: 35, MaxLat: 62, MinLng: -11, MaxLng: 30}
	regionEastAsia      = Bounds{MinLat: 20, MaxLat: 46, MinLng: 105, MaxLng: 146}
	regionWestPacific   = Bounds{MinLat: -45, MaxLat: 60, MinLng: 100, MaxLng: 180}
	regionEastPacific   = Bounds{MinLat: -55, MaxLat: 60, MinLng: -180, MaxLng: -100}
	regionWestAtlantic  = Bounds{MinLat: -40, MaxLat: 55, MinLng: -100, MaxLng: -30}
	regionEastAtlantic  = Bounds{MinLat: -35, MaxLat: 62, MinLng: -30, MaxLng: 15}
)

// coastalRangeMeters separates short same-region hops from open-sea legs.
const coastalRangeMeters = 1500000

// archetypeRule pairs a classification predicate with the waypoint template
// it selects. The rules table is evaluated in order; the first match wins.
type archetypeRule struct {
	archetype RouteArchetype
	matches   func(start, end GeoPoint) bool
	template  func(start, end GeoPoint) []Waypoint
}

var archetypeRules = []archetypeRule{
	{ArchetypeIndiaToSEA, betweenRegions(regionIndia, regionSoutheastAsia), indiaToSeaTemplate},
	{ArchetypeIndiaToMiddleEast, betweenRegions(regionIndia, regionMiddleEast), indiaToMiddleEastTemplate},
	{ArchetypeEuropeToAsia, europeAsiaMatch, europeToAsiaTemplate},
	{ArchetypeAroundAfrica, aroundAfricaMatch, aroundAfricaTemplate},
	{ArchetypeTransPacific, betweenRegions(regionWestPacific, regionEastPacific), transPacificTemplate},
	{ArchetypeTransAtlantic, betweenRegions(regionWestAtlantic, regionEastAtlantic), transAtlanticTemplate},
	{ArchetypeCoastal, coastalMatch, coastalTemplate},
	{ArchetypeOpenSea, func(GeoPoint, GeoPoint) bool { return true }, openSeaTemplate},
}

// ClassifyRoute maps a start/end pair to its routing corridor.
func ClassifyRoute(start, end GeoPoint) RouteArchetype {
	for _, rule := range archetypeRules {
		if rule.matches(start, end) {
			return rule.archetype
		}
	}
	return ArchetypeOpenSea
}

// ComposeRoute classifies the pair and emits the archetype's chokepoint
// sequence between the start and end waypoints. The output is not guaranteed
// water-only; callers must run it through EnsureSeaSafeSegments.
func ComposeRoute(start, end Waypoint) []Waypoint {
	start.Kind = KindDeparture
	end.Kind = KindDestination

	for _, rule := range archetypeRules {
		if !rule.matches(start.GeoPoint, end.GeoPoint) {
			continue
		}
		log.Printf("route composer: %q -> %q via %s corridor\n", start.Name, end.Name, rule.archetype)

		template := rule.template(start.GeoPoint, end.GeoPoint)
		route := make([]Waypoint, 0, len(template)+2)
		route = append(route, start)
		route = append(route, template...)
		route = append(route, end)
		return route
	}

	// Unreachable: the open_sea rule matches everything.
	return []Waypoint{start, end}
}

// betweenRegions matches a pair with one endpoint in each region, in either
// direction of travel.
func betweenRegions(a, b Bounds) func(start, end GeoPoint) bool {
	return func(start, end GeoPoint) bool {
		return (a.Contains(start) && b.Contains(end)) ||
			(b.Contains(start) && a.Contains(end))
	}
}

func inAsia(p GeoPoint) bool {
	return regionIndia.Contains(p) || regionSoutheastAsia.Contains(p) || regionEastAsia.Contains(p)
}

func europeAsiaMatch(start, end GeoPoint) bool {
	return (regionEurope.Contains(start) && inAsia(end)) ||
		(inAsia(start) && regionEurope.Contains(end))
}

func aroundAfricaMatch(start, end GeoPoint) bool {
	return (regionWestAtlantic.Contains(start) && inAsia(end)) ||
		(inAsia(start) && regionWestAtlantic.Contains(end))
}

func coastalMatch(start, end GeoPoint) bool {
	return start.DistanceMeters(end) < coastalRangeMeters
}

// indiaToSeaTemplate routes through the Malacca corridor toward the
// Singapore Strait. The departure offing clears the Indian coast before the
// run to Dondra Head.
func indiaToSeaTemplate(start, end GeoPoint) []Waypoint {
	departure := start
	fromIndia := regionIndia.Contains(start)
	if !fromIndia {
		departure = end
	}

	wps := []Waypoint{
		{GeoPoint: south(departure, 3), Name: "Departure Offing", Kind: KindCourseChange},
		NewWaypoint("Dondra Head", 5.5, 80.6, KindWaypoint),
		NewWaypoint("Bay of Bengal", 6.0, 90.0, KindWaypoint),
		NewWaypoint("Malacca Strait North", 5.4, 98.2, KindWaypoint),
		NewWaypoint("Malacca Strait", 2.5, 101.2, KindWaypoint),
		NewWaypoint("Singapore Strait", 1.3, 103.8, KindWaypoint),
	}
	if !fromIndia {
		reverseWaypoints(wps)
	}
	return wps
}

func indiaToMiddleEastTemplate(start, end GeoPoint) []Waypoint {
	departure := start
	fromIndia := regionIndia.Contains(start)
	if !fromIndia {
		departure = end
	}

	wps := []Waypoint{
		{GeoPoint: south(departure, 2), Name: "Departure Offing", Kind: KindCourseChange},
		NewWaypoint("Arabian Sea", 15.0, 65.0, KindWaypoint),
		NewWaypoint("Gulf of Oman", 24.2, 59.5, KindWaypoint),
		NewWaypoint("Strait of Hormuz", 26.5, 56.5, KindWaypoint),
	}
	if !fromIndia {
		reverseWaypoints(wps)
	}
	return wps
}

func europeToAsiaTemplate(start, end GeoPoint) []Waypoint {
	wps := []Waypoint{
		NewWaypoint("Mediterranean Transit", 36.5, 14.5, KindWaypoint),
		NewWaypoint("Suez Canal North", 31.3, 32.35, KindWaypoint),
		NewWaypoint("Suez Canal South", 29.9, 32.6, KindWaypoint),
		NewWaypoint("Red Sea Transit", 20.0, 38.5, KindWaypoint),
		NewWaypoint("Bab el-Mandeb", 12.5, 43.3, KindWaypoint),
		NewWaypoint("Gulf of Aden", 12.8, 48.0, KindWaypoint),
	}
	if !regionEurope.Contains(start) {
		reverseWaypoints(wps)
	}
	return wps
}

func aroundAfricaTemplate(start, end GeoPoint) []Waypoint {
	wps := []Waypoint{
		NewWaypoint("Canary Basin", 25.0, -18.0, KindWaypoint),
		NewWaypoint("Gulf of Guinea Offing", 0.0, -2.0, KindWaypoint),
		NewWaypoint("Cape of Good Hope", -34.8, 18.0, KindWaypoint),
		NewWaypoint("Agulhas Offing", -36.5, 22.0, KindWaypoint),
		NewWaypoint("Mozambique Channel", -20.0, 41.5, KindWaypoint),
	}
	if !regionWestAtlantic.Contains(start) {
		reverseWaypoints(wps)
	}
	return wps
}

func transPacificTemplate(start, end GeoPoint) []Waypoint {
	return []Waypoint{
		{GeoPoint: interpolate(start, end, 1.0/3), Name: "Mid-Pacific 1", Kind: KindCourseChange},
		{GeoPoint: interpolate(start, end, 2.0/3), Name: "Mid-Pacific 2", Kind: KindCourseChange},
	}
}

func transAtlanticTemplate(start, end GeoPoint) []Waypoint {
	return []Waypoint{
		{GeoPoint: interpolate(start, end, 0.5), Name: "Mid-Atlantic", Kind: KindCourseChange},
	}
}

// coastalTemplate generates a handful of interpolated offshore points with
// small random lateral jitter, so repeated short hops don't hug one line.
func coastalTemplate(start, end GeoPoint) []Waypoint {
	const legs = 4
	wps := make([]Waypoint, 0, legs-1)
	for i := 1; i < legs; i++ {
		p := interpolate(start, end, float64(i)/legs)
		p.Lat += (rand.Float64() - 0.5) * 0.4
		p.Lng += (rand.Float64() - 0.5) * 0.4
		wps = append(wps, Waypoint{
			GeoPoint: p,
			Name:     fmt.Sprintf("Coastal Leg %d", i),
			Kind:     KindCourseChange,
		})
	}
	return wps
}

func openSeaTemplate(start, end GeoPoint) []Waypoint {
	return []Waypoint{
		{GeoPoint: interpolate(start, end, 1.0/3), Name: "Open Sea Transit 1", Kind: KindCourseChange},
		{GeoPoint: interpolate(start, end, 2.0/3), Name: "Open Sea Transit 2", Kind: KindCourseChange},
	}
}

// interpolate returns the fractional point along the start-end line, taking
// the short way around the antimeridian when the longitude gap exceeds 180.
func interpolate(start, end GeoPoint, t float64) GeoPoint {
	dLng := end.Lng - start.Lng
	if dLng > 180 {
		dLng -= 360
	} else if dLng < -180 {
		dLng += 360
	}

	lng := start.Lng + dLng*t
	if lng > 180 {
		lng -= 360
	} else if lng < -180 {
		lng += 360
	}

	return GeoPoint{Lat: start.Lat + (end.Lat-start.Lat)*t, Lng: lng}
}

// south offsets a point toward the equator-facing open water by a bounded
// number of degrees, clamped away from the pole.
func south(p GeoPoint, degrees float64) GeoPoint {
	return GeoPoint{Lat: math.Max(p.Lat-degrees, -89), Lng: p.Lng}
}

func reverseWaypoints(wps []Waypoint) {
	for i, j := 0, len(wps)-1; i < j; i, j = i+1, j-1 {
		wps[i], wps[j] = wps[j], wps[i]
	}
}
