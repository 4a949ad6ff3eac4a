// Package dijkstra provides a traced implementation of Dijkstra's
// shortest-path algorithm over graphmap graphs: alongside computing the
// route it records every algorithmic decision as an immutable Step, so a
// presentation layer can replay the whole search move by move.
//
// Overview:
//
//   - ComputeShortestPath runs one synchronous search from a source node
//     toward a target node and returns the complete Trace. The engine is
//     greedy: it always finalizes the not-yet-visited node with the
//     globally smallest tentative distance, then relaxes its live
//     neighbors.
//   - The priority queue uses lazy deletion: improving a node's distance
//     pushes a fresh entry and leaves the stale one in place; stale
//     entries are recognized (node already visited) and skipped on pop.
//   - The loop stops as soon as the target itself is dequeued and
//     finalized — remaining queue entries are never processed. This does
//     not affect the correctness of the source→target distance.
//   - If the queue empties first, the target is unreachable; that is a
//     normal terminal outcome (StepNoPath), not an error.
//
// Trace contract:
//
//   - Steps appear in strict chronological decision order; that order IS
//     the explanation and is preserved exactly.
//   - A trace always starts with exactly one StepInitialize and ends with
//     exactly one terminal step (StepPathFound or StepNoPath).
//   - Every Step carries deep-copied snapshots of the distance table, the
//     visited set and the queue contents at the instant of emission —
//     later mutation of the live state never retroactively alters an
//     emitted Step.
//   - The distance-table snapshot lists finite distances only; a node
//     absent from it is at +∞ (not yet reached).
//
// State machine, as observed by a caller replaying the Steps:
//
//	initialize → (visit → [consider → update?]* → finish-node)* → path-found | no-path
//
// Error handling (sentinel errors, all raised before the main loop):
//
//   - ErrEmptySource / ErrEmptyTarget — blank node ID supplied.
//   - ErrNilGraph                     — nil *graphmap.Graph.
//   - ErrSourceNotFound / ErrTargetNotFound — the ID names no node.
//
// A disconnected target is NOT one of these: it yields a complete trace
// whose terminal step reports an empty path.
//
// Example usage:
//
//	trace, err := dijkstra.ComputeShortestPath(g, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	route, total, ok := trace.Route()
//	fmt.Println(route, total, ok) // [A B C] 3 true
//
// Complexity: O((V + E) log V) time, O(V + E) space — irrelevant at the
// intended scale (a few dozen nodes) but free to have.
//
// Concurrency: one run owns all of its state; separate runs over the same
// immutable Graph are safe to execute in parallel without coordination.
package dijkstra
