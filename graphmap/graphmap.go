package graphmap

import (
	"fmt"
	"sort"
)

// Graph is an immutable set of positioned nodes and undirected weighted
// edges. Build one with New; after that every method is read-only, so a
// single Graph may back any number of concurrent engine runs.
type Graph struct {
	nodes map[string]Node  // node ID → node
	order []string         // node IDs, sorted, for deterministic iteration
	edges []Edge           // constructed edges, input order
	adj   map[string][]Arc // node ID → outgoing arcs (both directions per edge)
}

// New validates the input and constructs a Graph.
//
// Validation (in order, fail fast):
//  1. Every node ID must be non-empty (ErrEmptyNodeID).
//  2. Node IDs must be unique (ErrDuplicateNodeID).
//  3. Every edge endpoint must name an existing node (ErrUnknownEndpoint).
//
// Edge weights are computed here, once, as the Euclidean distance between
// the endpoints' positions. Self-loops (weight 0) and parallel edges are
// both tolerated: each spec produces its own Edge and both directions are
// inserted into the adjacency view, no deduplication.
//
// Complexity: O(V log V + E) — the log factor pays for the sorted node
// ordering.
func New(nodes []Node, specs []EdgeSpec) (*Graph, error) {
	// 1) Index nodes, rejecting empty and duplicate IDs.
	byID := make(map[string]Node, len(nodes))
	order := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("%w: node %q", ErrEmptyNodeID, n.Name)
		}
		if _, dup := byID[n.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		byID[n.ID] = n
		order = append(order, n.ID)
	}
	sort.Strings(order)

	// 2) Construct edges: validate endpoints, derive weights, assign
	//    fallback IDs in input order.
	edges := make([]Edge, 0, len(specs))
	adj := make(map[string][]Arc, len(nodes))
	for i, s := range specs {
		from, ok := byID[s.From]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d references %q", ErrUnknownEndpoint, i, s.From)
		}
		to, ok := byID[s.To]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d references %q", ErrUnknownEndpoint, i, s.To)
		}

		id := s.ID
		if id == "" {
			id = fmt.Sprintf("e%d", i)
		}
		w := Distance(from.Pos, to.Pos)
		edges = append(edges, Edge{ID: id, From: s.From, To: s.To, Weight: w})

		// 3) Undirected semantics: insert the edge in both directions.
		//    A self-loop still gets two entries; the engine's visited
		//    check makes the second one a no-op.
		adj[s.From] = append(adj[s.From], Arc{To: s.To, Weight: w})
		adj[s.To] = append(adj[s.To], Arc{To: s.From, Weight: w})
	}

	return &Graph{nodes: byID, order: order, edges: edges, adj: adj}, nil
}

// Node looks up a node by ID. The second return is false when the ID is
// absent; callers that describe edges by endpoint ID must tolerate that.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether id names a node in the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all nodes in ascending ID order.
// The slice is freshly allocated; mutating it does not affect the Graph.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}

	return out
}

// NodeIDs returns all node IDs in ascending order.
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns all constructed edges in input order.
// The slice is freshly allocated; mutating it does not affect the Graph.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the arcs leaving id: one per incident edge, with the
// undirected edge already unfolded into this node's direction. Returns nil
// for an isolated or unknown node.
// The slice is freshly allocated; mutating it does not affect the Graph.
func (g *Graph) Neighbors(id string) []Arc {
	arcs := g.adj[id]
	if arcs == nil {
		return nil
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }
