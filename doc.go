// Package routetrace computes and explains single-source shortest paths
// over small, static, positioned graphs — every decision the search makes
// is recorded as a replayable Step, so a presentation layer can animate
// the algorithm node by node.
//
// 🚀 What is routetrace?
//
//	A small, focused library that brings together:
//		• graphmap/ — immutable map graphs: nodes with 2D positions,
//		  undirected edges weighted by Euclidean distance
//		• dijkstra/ — the traced shortest-path engine: a lazy-deletion
//		  priority queue drives relaxation while every visit, neighbor
//		  check, distance update and the final path reconstruction is
//		  appended to an ordered Trace of immutable Steps
//		• mapdata/  — YAML map definitions → graphmap.Graph
//		• styling/  — pluggable route-styling advisor (deterministic
//		  default, optional LLM-backed suggestion with safe fallback)
//
// ✨ Why choose routetrace?
//
//   - Explainable – the Trace IS the explanation: snapshots of the
//     distance table, visited set and queue at every decision point
//   - Deterministic – identical inputs replay to identical traces
//   - Safe to share – a Graph is immutable after construction; concurrent
//     runs over the same graph need no coordination
//   - Pure core – the engine depends on nothing but graphmap
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	ComputeShortestPath(g, "A", "C") returns a Trace whose terminal Step
//	carries the route A→B→C (or A→D→C, whichever is shorter by position).
//
// Dive into the per-package docs for the full API and examples.
//
//	go get github.com/dvoryak/routetrace
package routetrace
