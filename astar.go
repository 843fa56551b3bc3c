package main

import (
	"container/heap"
)

// pathNode represents a node in the A* search over a sea graph
type pathNode struct {
	NodeID int     // ID of the node in the graph
	G      float64 // Cost from start to this node
	H      float64 // Heuristic cost from this node to end
	F      float64 // Total cost (G + H)
	Parent *pathNode
	Index  int // Index in the heap
}

// priorityQueue implements heap.Interface for the A* open set
type priorityQueue []*pathNode

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].F < pq[j].F
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *priorityQueue) Push(x interface{}) {
	n := len(*pq)
	node := x.(*pathNode)
	node.Index = n
	*pq = append(*pq, node)
}

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*pq = old[0 : n-1]
	return node
}

// FindPath computes a fewest-hops path between two graph nodes using A* with
// a straight-line distance heuristic. Returns the decoded point sequence and
// true, or an empty sequence and false when the nodes are not connected.
func FindPath(graph *SeaGraph, startID, endID int) ([]GeoPoint, bool) {
	if graph == nil || len(graph.Nodes) == 0 {
		return []GeoPoint{}, false
	}
	if _, ok := graph.Nodes[startID]; !ok {
		return []GeoPoint{}, false
	}
	endPoint, ok := graph.Nodes[endID]
	if !ok {
		return []GeoPoint{}, false
	}
	startPoint := graph.Nodes[startID]

	openSet := &priorityQueue{}
	heap.Init(openSet)

	startNode := &pathNode{
		NodeID: startID,
		G:      0,
		H:      startPoint.Distance(endPoint),
		F:      startPoint.Distance(endPoint),
	}
	heap.Push(openSet, startNode)

	closedSet := make(map[int]bool)
	openSetMap := make(map[int]*pathNode)
	openSetMap[startID] = startNode

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*pathNode)
		delete(openSetMap, current.NodeID)

		// Check if we reached the goal
		if current.NodeID == endID {
			path := []GeoPoint{}
			for node := current; node != nil; node = node.Parent {
				path = append([]GeoPoint{graph.Nodes[node.NodeID]}, path...)
			}
			return path, true
		}

		closedSet[current.NodeID] = true

		for _, edge := range graph.Edges[current.NodeID] {
			neighborID := edge.To

			if closedSet[neighborID] {
				continue
			}

			tentativeG := current.G + edge.Cost

			neighbor, exists := openSetMap[neighborID]
			if !exists {
				neighborPoint := graph.Nodes[neighborID]
				neighbor = &pathNode{
					NodeID: neighborID,
					G:      tentativeG,
					H:      neighborPoint.Distance(endPoint),
					Parent: current,
				}
				neighbor.F = neighbor.G + neighbor.H
				heap.Push(openSet, neighbor)
				openSetMap[neighborID] = neighbor
			} else if tentativeG < neighbor.G {
				// Found a better path to this neighbor
				neighbor.G = tentativeG
				neighbor.F = neighbor.G + neighbor.H
				neighbor.Parent = current
				heap.Fix(openSet, neighbor.Index)
			}
		}
	}

	// No path found
	return []GeoPoint{}, false
}

// NearestNode returns the index of the grid point closest to p by
// straight-line distance, scanning the whole grid (O(n)). Returns -1 for an
// empty grid.
func NearestNode(grid []GeoPoint, p GeoPoint) int {
	if len(grid) == 0 {
		return -1
	}

	nearest := 0
	minDist := p.Distance(grid[0])

	for i := 1; i < len(grid); i++ {
		if dist := p.Distance(grid[i]); dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}
