// Package graphmap defines the core Node, Edge, and Graph types together
// with the sentinel errors raised during graph construction.
package graphmap

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates a node with an empty ID was supplied.
	ErrEmptyNodeID = errors.New("graphmap: node ID is empty")

	// ErrDuplicateNodeID indicates two nodes share the same ID.
	ErrDuplicateNodeID = errors.New("graphmap: duplicate node ID")

	// ErrUnknownEndpoint indicates an edge references a non-existent node.
	ErrUnknownEndpoint = errors.New("graphmap: edge endpoint not found")
)

// Point is a position on the 2D map plane.
// Positions exist so edge weights can be derived geometrically; any
// rendering of them belongs to the presentation layer.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between two points.
// Always ≥ 0, which keeps every derived edge weight non-negative.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Node is a map location: a unique identifier, a human-readable display
// name, and a position. Immutable once the Graph owning it is built.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Pos  Point  `json:"pos"`
}

// EdgeSpec names a connection to be created between two existing nodes.
// ID may be left empty; construction assigns "e0", "e1", … in input order.
// From/To carry no direction — traversal is symmetric.
type EdgeSpec struct {
	ID   string `json:"id,omitempty"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Edge is a constructed, weighted connection. Weight is the Euclidean
// distance between the endpoints' positions, fixed at construction time.
type Edge struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Arc is one directed half of an undirected edge as seen from a node in
// the adjacency view: the neighbor reached and the cost of reaching it.
type Arc struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}
