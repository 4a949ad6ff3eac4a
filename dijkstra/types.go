// Package dijkstra defines configuration options and sentinel errors for
// the traced shortest-path engine.
package dijkstra

import "errors"

// Sentinel errors returned by ComputeShortestPath.
// All of them are caller contract violations detected before the main
// loop runs; no partial trace is ever produced alongside an error.
var (
	// ErrEmptySource indicates the provided source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrEmptyTarget indicates the provided target node ID is empty.
	ErrEmptyTarget = errors.New("dijkstra: target node ID is empty")

	// ErrNilGraph indicates a nil *graphmap.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates the source ID names no node in the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrTargetNotFound indicates the target ID names no node in the graph.
	ErrTargetNotFound = errors.New("dijkstra: target node not found in graph")
)

// Options configures a single engine run.
//
// Reasons — include the natural-language justification on each Step
// (the richer trace variant). Enabled by default.
// RunID   — fixed trace identifier; when empty a random UUID is assigned.
type Options struct {
	Reasons bool   // attach a Reason sentence to every Step
	RunID   string // trace identity; "" → random UUID
}

// Option is a functional option for configuring ComputeShortestPath.
type Option func(*Options)

// DefaultOptions returns the Options used when no Option is supplied:
// reasoning text enabled, random run ID.
func DefaultOptions() Options {
	return Options{
		Reasons: true,
		RunID:   "",
	}
}

// WithoutReasons omits the per-Step reasoning sentence, leaving only the
// short description. Useful when the caller renders its own narration.
func WithoutReasons() Option {
	return func(o *Options) {
		o.Reasons = false
	}
}

// WithRunID pins the trace identifier instead of generating a random
// UUID. Lets tests and replay tooling produce byte-identical traces.
func WithRunID(id string) Option {
	return func(o *Options) {
		if id != "" {
			o.RunID = id
		}
	}
}
