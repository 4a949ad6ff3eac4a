// Package graphmap provides the immutable, positioned graph model consumed
// by the shortest-path engine.
//
// Overview:
//
//   - A Graph is a fixed set of Nodes (unique string IDs, display names,
//     2D positions) and undirected Edges between them.
//   - Edge weight is the Euclidean distance between the endpoints'
//     positions, computed once at construction — never per query.
//   - Construction validates the input (non-empty unique node IDs, edge
//     endpoints that exist) and then the Graph never changes; all accessors
//     are read-only and safe for concurrent use without locks.
//
// The adjacency view (Neighbors) inserts every edge in both directions, so
// traversal is symmetric: From/To on an Edge is a labeling artifact only.
// Self-loops and parallel edges between the same pair are tolerated; weight
// is always ≥ 0 by construction, which is exactly the precondition the
// Dijkstra engine relies on.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyNodeID     — a node with an empty ID was supplied.
//   - ErrDuplicateNodeID — two nodes share the same ID.
//   - ErrUnknownEndpoint — an edge references a node that does not exist.
//
// Typical usage:
//
//	g, err := graphmap.New(
//	    []graphmap.Node{
//	        {ID: "A", Name: "Alpha", Pos: graphmap.Point{X: 0, Y: 0}},
//	        {ID: "B", Name: "Bravo", Pos: graphmap.Point{X: 3, Y: 4}},
//	    },
//	    []graphmap.EdgeSpec{{From: "A", To: "B"}},
//	)
//	if err != nil { ... }
//	g.Edges()[0].Weight // 5 — the A↔B Euclidean distance
//
// Complexity: construction is O(V + E); Node/HasNode lookups are O(1);
// Nodes() returns IDs in sorted order for deterministic iteration.
package graphmap
