// Package dijkstra implements the traced shortest-path engine: Dijkstra's
// algorithm over an immutable graphmap.Graph, recording every decision —
// visit order, neighbor checks, relaxations, path reconstruction — as an
// ordered sequence of immutable Steps.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/dvoryak/routetrace/graphmap"
)

// ComputeShortestPath runs one Dijkstra search from sourceID toward
// targetID over g and returns the complete execution trace.
//
// Preconditions and validation (in order):
//  1. sourceID must be non-empty (ErrEmptySource).
//  2. targetID must be non-empty (ErrEmptyTarget).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must contain sourceID (ErrSourceNotFound).
//  5. g must contain targetID (ErrTargetNotFound).
//
// Postconditions:
//
//   - The trace opens with exactly one StepInitialize and closes with
//     exactly one terminal step; it is never empty.
//   - The terminal step carries the actual shortest source→target route
//     if one exists, else an empty path with Found=false.
//   - Every snapshot inside every Step is a deep copy of the live state
//     at the instant of emission.
//
// The search terminates early once the target is dequeued and finalized;
// an exhausted queue without reaching the target ends the run normally
// with a StepNoPath terminal.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ComputeShortestPath(g *graphmap.Graph, sourceID, targetID string, opts ...Option) (*Trace, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the caller contract, failing fast before any Step is
	//    emitted: an error never comes with a partially built trace.
	if sourceID == "" {
		return nil, ErrEmptySource
	}
	if targetID == "" {
		return nil, ErrEmptyTarget
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(sourceID) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, sourceID)
	}
	if !g.HasNode(targetID) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, targetID)
	}

	// 3) Assign the trace identity.
	runID := cfg.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	// 4) Prepare the run-scoped state. Nothing here outlives the run and
	//    nothing is shared between runs, so concurrent searches over the
	//    same Graph need no coordination.
	r := &runner{
		g:       g,
		cfg:     cfg,
		source:  sourceID,
		target:  targetID,
		dist:    make(map[string]float64, g.Order()),
		prev:    make(map[string]string, g.Order()),
		visited: make(map[string]bool, g.Order()),
		pq:      make(nodePQ, 0, g.Order()),
	}

	// 5) Initialize, run the main loop, reconstruct the route.
	r.init()
	r.process()
	r.finish()

	return &Trace{RunID: runID, Source: sourceID, Target: targetID, Steps: r.steps}, nil
}

// runner holds the mutable state for a single engine run: the distance
// table, predecessor table, visited set, lazy-deletion heap, and the
// growing step log. One runner per ComputeShortestPath call.
type runner struct {
	g      *graphmap.Graph // read-only for the duration of the run
	cfg    Options
	source string
	target string

	// dist maps node ID → current best known distance from the source.
	// A node absent from the map is at +∞; entries only ever decrease.
	dist map[string]float64

	// prev maps node ID → the node it was reached from on its current
	// best path. Written exactly when dist is written.
	prev map[string]string

	// visited marks nodes whose distance is finalized. Grows only.
	visited map[string]bool

	// pq is the lazy-deletion min-heap: duplicates for one node are
	// tolerated and skipped on pop once the node is visited.
	pq nodePQ

	steps []Step
}

// init seeds the state machine: source at distance 0 as the only queue
// entry, everything else implicitly at +∞. Emits the opening Step.
func (r *runner) init() {
	r.dist[r.source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pqItem{id: r.source, dist: 0})

	r.emit(Step{
		Kind:        StepInitialize,
		Current:     r.source,
		Description: fmt.Sprintf("initialized search from %s to %s", r.label(r.source), r.label(r.target)),
		Reason: r.reason("every node starts at distance ∞ except %s, which starts at 0 and is the only entry in the queue",
			r.label(r.source)),
	})
}

// process is the main loop: repeatedly finalize the closest unvisited
// node and relax its live neighbors, stopping early once the target is
// finalized or the queue runs dry.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(*pqItem)
		u := item.id

		// 2) Lazy deletion: a popped entry for an already-finalized node
		//    is stale. Discard it silently and keep going.
		if r.visited[u] {
			continue
		}

		// 3) Finalize u. Its tentative distance is now its true shortest
		//    distance from the source.
		r.visited[u] = true
		r.emit(Step{
			Kind:        StepVisit,
			Current:     u,
			Description: fmt.Sprintf("visiting %s at distance %s", r.label(u), fmtDist(item.dist)),
			Reason: r.reason("%s holds the smallest tentative distance among unvisited nodes, so that distance is now final",
				r.label(u)),
		})

		// 4) Early termination: once the target is finalized there is
		//    nothing left to prove. Distances elsewhere may stay
		//    non-final; only the source→target chain is guaranteed.
		if u == r.target {
			return
		}

		// 5) Relax all live (non-visited) neighbors of u.
		r.relax(u)

		// 6) Close the visit.
		r.emit(Step{
			Kind:        StepFinishNode,
			Current:     u,
			Description: fmt.Sprintf("finished %s", r.label(u)),
			Reason:      r.reason("all neighbors of %s have been examined; the search returns to the queue", r.label(u)),
		})
	}
}

// relax examines every arc leaving u and attempts to improve its
// neighbors' distances. A "consider" Step is emitted for every live
// neighbor regardless of outcome; an "update" Step follows only when the
// candidate strictly improves.
//
// Assumes dist[u] is finalized before the call.
func (r *runner) relax(u string) {
	base := r.dist[u]
	for _, arc := range r.g.Neighbors(u) {
		v := arc.To

		// Finalized neighbors cannot improve; skip without logging. A
		// self-loop lands here too, since u was just finalized.
		if r.visited[v] {
			continue
		}

		// Candidate distance via u. arc.Weight ≥ 0 by graphmap
		// construction, so base ≤ candidate always holds.
		candidate := base + arc.Weight
		best := r.distTo(v)

		r.emit(Step{
			Kind:        StepConsider,
			Current:     u,
			Neighbor:    v,
			Candidate:   candidate,
			Description: fmt.Sprintf("considering %s from %s: candidate %s", r.label(v), r.label(u), fmtDist(candidate)),
			Reason: r.reason("reaching %s through %s would cost %s against the current best %s",
				r.label(v), r.label(u), fmtDist(candidate), fmtDist(best)),
		})

		// Strict improvement only: ties leave the earlier path in place
		// and push no duplicate entry.
		if candidate >= best {
			continue
		}

		r.dist[v] = candidate
		r.prev[v] = u
		heap.Push(&r.pq, &pqItem{id: v, dist: candidate})

		r.emit(Step{
			Kind:        StepUpdate,
			Current:     u,
			Neighbor:    v,
			Candidate:   candidate,
			Description: fmt.Sprintf("updated %s: distance %s via %s", r.label(v), fmtDist(candidate), r.label(u)),
			Reason: r.reason("%s beats the previous best %s, so the path to %s now comes through %s and a fresh queue entry is pushed",
				fmtDist(candidate), fmtDist(best), r.label(v), r.label(u)),
		})
	}
}

// finish reconstructs the route by walking the predecessor table backward
// from the target and emits the single terminal Step.
func (r *runner) finish() {
	path := r.reconstruct()
	if path == nil {
		// Found=false is the unreachable marker; Total stays zero so the
		// Step remains marshalable (Route() reports +∞ to callers).
		r.emit(Step{
			Kind:        StepNoPath,
			Found:       false,
			Description: fmt.Sprintf("no path from %s to %s", r.label(r.source), r.label(r.target)),
			Reason: r.reason("the queue emptied before %s was ever finalized, so it is unreachable from %s",
				r.label(r.target), r.label(r.source)),
		})

		return
	}

	total := r.dist[r.target]
	r.emit(Step{
		Kind:        StepPathFound,
		Found:       true,
		Path:        path,
		Total:       total,
		Description: fmt.Sprintf("shortest path found: %s (total %s)", strings.Join(path, " → "), fmtDist(total)),
		Reason: r.reason("walking the predecessor table backward from %s reaches %s, so reversing that walk yields the route",
			r.label(r.target), r.label(r.source)),
	})
}

// reconstruct walks prev from target toward source. Returns the forward
// route, or nil when the walk hits a node with no predecessor before
// reaching the source (target never relaxed ⇒ unreachable).
func (r *runner) reconstruct() []string {
	if r.target == r.source {
		return []string{r.source}
	}

	path := []string{r.target}
	for cur := r.target; cur != r.source; {
		p, ok := r.prev[cur]
		if !ok {
			return nil
		}
		path = append(path, p)
		cur = p
	}

	// Reverse in place: the walk produced target→…→source.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// emit appends one Step, stamping its index and deep-copying the live
// distance table, visited set, and queue contents. Steps are immutable
// from this point on: later relaxations can never rewrite an earlier
// snapshot.
func (r *runner) emit(s Step) {
	s.Index = len(r.steps)
	s.Distances = copyDist(r.dist)
	s.Visited = copyVisited(r.visited)
	s.Queue = r.pq.snapshot()
	r.steps = append(r.steps, s)
}

// distTo returns the current best known distance to id, +∞ when the node
// has never been relaxed.
func (r *runner) distTo(id string) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// reason formats a justification sentence, or returns "" when the run was
// configured WithoutReasons.
func (r *runner) reason(format string, args ...interface{}) string {
	if !r.cfg.Reasons {
		return ""
	}

	return fmt.Sprintf(format, args...)
}

// label renders a node for trace text: display name when the lookup
// succeeds, raw ID otherwise. Missing lookups must stay graceful — trace
// description touches node IDs constantly.
func (r *runner) label(id string) string {
	if n, ok := r.g.Node(id); ok && n.Name != "" {
		return n.Name
	}

	return id
}

// fmtDist renders a distance for humans: two decimals, "∞" for infinity.
func fmtDist(d float64) string {
	if math.IsInf(d, 1) {
		return "∞"
	}

	return fmt.Sprintf("%.2f", d)
}

func copyDist(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

func copyVisited(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// pqItem is one (node, tentative distance) entry of the priority queue.
type pqItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *pqItem ordered by ascending distance, operated
// through container/heap. Lazy decrease-key: improving a node pushes a
// fresh item and the stale one is skipped on pop via the visited set.
// Ties break by heap layout, which is deterministic for a given push/pop
// sequence.
type nodePQ []*pqItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *pqItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// snapshot copies the current queue contents, stale duplicates included,
// in internal heap order: the head is the minimum, the tail is not fully
// sorted.
func (pq nodePQ) snapshot() []QueueEntry {
	out := make([]QueueEntry, len(pq))
	for i, it := range pq {
		out[i] = QueueEntry{Node: it.id, Distance: it.dist}
	}

	return out
}
