package dijkstra

import "math"

// StepKind discriminates the algorithmic event a Step records.
// The string values are stable and intended for serialization toward the
// presentation layer.
type StepKind string

const (
	// StepInitialize opens every trace: tables built, source enqueued at 0.
	StepInitialize StepKind = "initialize"

	// StepVisit records a node being dequeued with the smallest tentative
	// distance and its distance becoming final.
	StepVisit StepKind = "visit"

	// StepConsider records one neighbor check during relaxation. Emitted
	// for every live neighbor, whether or not the candidate improves.
	StepConsider StepKind = "consider-neighbor"

	// StepUpdate records a successful relaxation: the neighbor's distance
	// strictly decreased and its predecessor was rewritten.
	StepUpdate StepKind = "update-distance"

	// StepFinishNode closes a visit after all neighbors were considered.
	StepFinishNode StepKind = "finish-node"

	// StepPathFound terminates a trace whose target was reached; it
	// carries the reconstructed route and its total distance.
	StepPathFound StepKind = "path-found"

	// StepNoPath terminates a trace whose queue emptied before the target
	// was ever finalized; its path is empty.
	StepNoPath StepKind = "no-path"
)

// Terminal reports whether the kind ends a trace.
func (k StepKind) Terminal() bool {
	return k == StepPathFound || k == StepNoPath
}

// QueueEntry is one (node, tentative distance) pair of the priority-queue
// snapshot. Stale lazy-deletion duplicates appear here exactly as they sit
// in the live queue.
type QueueEntry struct {
	Node     string  `json:"node"`
	Distance float64 `json:"distance"`
}

// Step is one immutable entry of the execution trace. Distances, Visited
// and Queue are deep copies taken at the instant of emission; the engine
// never touches a Step after appending it.
//
// Distances holds finite values only: a node missing from the map is at
// +∞ (not yet reached). Visited holds visited nodes only, each mapped to
// true. Queue is in internal heap order (the head is always the minimum,
// the tail is not fully sorted).
type Step struct {
	Index     int                `json:"index"`
	Kind      StepKind           `json:"kind"`
	Current   string             `json:"current,omitempty"`
	Neighbor  string             `json:"neighbor,omitempty"`
	Candidate float64            `json:"candidate,omitempty"`
	Distances map[string]float64 `json:"distances"`
	Visited   map[string]bool    `json:"visited"`
	Queue     []QueueEntry       `json:"queue"`

	// Terminal fields: only a path-found / no-path Step fills these.
	Found bool     `json:"found,omitempty"`
	Path  []string `json:"path,omitempty"`
	Total float64  `json:"total,omitempty"`

	Description string `json:"description"`
	Reason      string `json:"reason,omitempty"`
}

// Trace is the ordered, append-only record of one engine run.
type Trace struct {
	RunID  string `json:"run_id"`
	Source string `json:"source"`
	Target string `json:"target"`
	Steps  []Step `json:"steps"`
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int { return len(t.Steps) }

// Terminal returns the final step of the trace. ComputeShortestPath
// guarantees exactly one terminal step, always last.
func (t *Trace) Terminal() Step {
	return t.Steps[len(t.Steps)-1]
}

// Route returns the reconstructed route, its total distance, and whether
// the target was reached. An unreachable target yields (nil, +∞, false).
func (t *Trace) Route() ([]string, float64, bool) {
	term := t.Terminal()
	if !term.Found {
		return nil, math.Inf(1), false
	}
	path := make([]string, len(term.Path))
	copy(path, term.Path)

	return path, term.Total, true
}
