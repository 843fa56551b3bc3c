package main

import "math"

// Edge is a directed connection to another grid node.
type Edge struct {
	To   int     // id of the destination node
	Cost float64 // uniform hop cost
}

// SeaGraph is the navigable adjacency structure over a sea grid. Node ids are
// assigned positionally at build time and match the grid slice indices; they
// are never re-derived from coordinate values.
type SeaGraph struct {
	Nodes map[int]GeoPoint
	Edges map[int][]Edge
}

// BuildSeaGraph connects grid nodes whose latitude and longitude deltas are
// both within one step (Chebyshev adjacency, not a Euclidean radius). Every
// ordered pair is examined, which is O(n^2) in grid size - a documented
// scaling limit acceptable only for small bounded regions. Edges whose
// segment crosses land are excluded; surviving edges carry uniform cost 1,
// so a shortest path is a fewest-hops path.
func BuildSeaGraph(oracle *LandOracle, grid []GeoPoint, step float64) (*SeaGraph, error) {
	graph := &SeaGraph{
		Nodes: make(map[int]GeoPoint, len(grid)),
		Edges: make(map[int][]Edge),
	}
	for i, p := range grid {
		graph.Nodes[i] = p
	}

	reach := step + step*stepSlack

	for i, a := range grid {
		for j, b := range grid {
			if i == j {
				continue
			}
			if math.Abs(a.Lat-b.Lat) > reach || math.Abs(a.Lng-b.Lng) > reach {
				continue
			}
			crosses, err := oracle.SegmentCrossesLand(a, b)
			if err != nil {
				return nil, err
			}
			if crosses {
				continue
			}
			graph.Edges[i] = append(graph.Edges[i], Edge{To: j, Cost: 1})
		}
	}

	return graph, nil
}
