// Package mapdata loads static map definitions into graphmap graphs.
//
// A map definition is a small YAML document listing the nodes (identifier,
// display name, 2D position) and the connections between them:
//
//	nodes:
//	  - id: A
//	    name: Alpha
//	    x: 0
//	    y: 0
//	  - id: B
//	    name: Bravo
//	    x: 3
//	    y: 4
//	edges:
//	  - from: A
//	    to: B
//
// Edge weights are never part of the document — graphmap derives them from
// the node positions at construction time. Edge IDs are optional and
// default to graphmap's positional "e<n>" scheme.
//
// The shortest-path engine itself stays file-format-free; mapdata is a
// peripheral producer of graphmap.Graph values for callers that keep
// their maps as data files.
//
// Errors:
//
//   - ErrNoNodes — the document defines no nodes at all.
//   - YAML syntax problems are wrapped with "mapdata:" context.
//   - Structural problems (duplicate IDs, unknown endpoints) surface as
//     the graphmap sentinels, wrapped for errors.Is matching.
package mapdata
