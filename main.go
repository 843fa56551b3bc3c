package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

type seaRouteRequest struct {
	Start  GeoPoint `json:"start"`
	End    GeoPoint `json:"end"`
	Bounds Bounds   `json:"bounds"`
	Step   float64  `json:"step"`
}

type seaRouteResponse struct {
	Path    []GeoPoint `json:"path"`
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
}

type maritimePathRequest struct {
	Start Waypoint `json:"start"`
	End   Waypoint `json:"end"`
}

type maritimePathResponse struct {
	Waypoints      []Waypoint     `json:"waypoints"`
	Archetype      RouteArchetype `json:"archetype"`
	DistanceMeters float64        `json:"distanceMeters"`
	Success        bool           `json:"success"`
	Message        string         `json:"message,omitempty"`
}

type routeServer struct {
	oracle *LandOracle
}

// corsMiddleware adds CORS headers to allow dashboard requests
func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Handle preflight
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

func (s *routeServer) seaRouteHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("📍 Sea route request received")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req seaRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	log.Printf("   Start: (%.6f, %.6f)\n", req.Start.Lat, req.Start.Lng)
	log.Printf("   End:   (%.6f, %.6f)\n", req.End.Lat, req.End.Lng)
	log.Printf("   Bounds: [%g,%g]x[%g,%g] step %g\n",
		req.Bounds.MinLat, req.Bounds.MaxLat, req.Bounds.MinLng, req.Bounds.MaxLng, req.Step)

	path, err := FindSeaRoute(s.oracle, req.Start, req.End, req.Bounds, req.Step)
	if err != nil {
		writeRouteError(w, err)
		return
	}

	resp := seaRouteResponse{Path: path, Success: len(path) > 0}
	if !resp.Success {
		resp.Message = "No sea route found within the given bounds"
		log.Println("❌ No sea route found")
	} else {
		log.Printf("✅ Sea route found with %d points\n", len(path))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *routeServer) maritimePathHandler(w http.ResponseWriter, r *http.Request) {
	log.Println("🧭 Maritime path request received")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req maritimePathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	log.Printf("   %q (%.4f, %.4f) -> %q (%.4f, %.4f)\n",
		req.Start.Name, req.Start.Lat, req.Start.Lng,
		req.End.Name, req.End.Lat, req.End.Lng)

	waypoints, err := FindMaritimePath(s.oracle, req.Start, req.End)
	if err != nil {
		writeRouteError(w, err)
		return
	}

	distance := RouteDistanceMeters(waypoints)
	log.Printf("✅ Maritime path with %d waypoints, %.2f km\n", len(waypoints), distance/1000)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(maritimePathResponse{
		Waypoints:      waypoints,
		Archetype:      ClassifyRoute(req.Start.GeoPoint, req.End.GeoPoint),
		DistanceMeters: distance,
		Success:        true,
	})
}

// GET /health - reports whether the land dataset is resident
func (s *routeServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := "ready"
	if !s.oracle.IsLoaded() {
		status = "waiting for land boundary data"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":         status,
		"landDataLoaded": s.oracle.IsLoaded(),
		"polygons":       s.oracle.PolygonCount(),
	})
}

func writeRouteError(w http.ResponseWriter, err error) {
	log.Printf("❌ %v\n", err)

	var dle *DataLoadError
	switch {
	case errors.As(err, &dle):
		// Fatal for the whole workflow: no land data means no land avoidance.
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, ErrInvalidStep):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func main() {
	log.Println("========================================")
	log.Println("🚢 Maritime Route Planner")
	log.Println("========================================")

	srv := &routeServer{
		oracle: NewLandOracle(NewGeoJSONLoader(defaultLandDataPath)),
	}

	http.HandleFunc("/findSeaRoute", corsMiddleware(srv.seaRouteHandler))
	http.HandleFunc("/findMaritimePath", corsMiddleware(srv.maritimePathHandler))
	http.HandleFunc("/health", corsMiddleware(srv.healthHandler))

	log.Println("Server starting on :8080")
	log.Println("")
	log.Println("Endpoints:")
	log.Println("  POST /findSeaRoute      - Grid/graph route within a bounded region")
	log.Println("  POST /findMaritimePath  - Long-haul archetype route with sea-safety repair")
	log.Println("  GET  /health            - Land dataset status")
	log.Println("")
	log.Println("CORS enabled for all origins")

	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatal(err)
	}
}
