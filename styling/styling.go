// Package styling defines the route-styling advisor capability and its
// deterministic default implementation.
package styling

import "context"

// Style describes how the final route overlay should be drawn.
type Style struct {
	// Color is a hex RGB color, "#RRGGBB".
	Color string `json:"color"`

	// StrokeWidth is the route line width in pixels.
	StrokeWidth float64 `json:"stroke_width"`

	// Glow enables a glow effect around the route line.
	Glow bool `json:"glow"`
}

// DefaultStyle returns the fixed fallback style: teal, 4px stroke, glow
// enabled. Used whenever no advisor is configured or an advisor fails.
func DefaultStyle() Style {
	return Style{
		Color:       "#2EC4B6",
		StrokeWidth: 4,
		Glow:        true,
	}
}

// Request carries the context an advisor may use to tailor its
// suggestion.
type Request struct {
	// Width and Height are the map viewport dimensions in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// PathSummary is a short human-readable description of the route,
	// e.g. "A → B → C, total 7.21".
	PathSummary string `json:"path_summary"`

	// Complexity is a qualitative label for the search that produced the
	// route, e.g. "simple", "moderate", "dense".
	Complexity string `json:"complexity"`

	// Occluded reports that other drawings overlap the route area.
	Occluded bool `json:"occluded"`
}

// Advisor suggests a Style for a route. Implementations must degrade
// gracefully: a caller should be able to draw something sensible even
// when the suggestion machinery is unavailable.
type Advisor interface {
	Suggest(ctx context.Context, req Request) (Style, error)
}

// StaticAdvisor always suggests the same Style and never errors. It is
// the deterministic stand-in selected when the external text-generation
// capability is disabled.
type StaticAdvisor struct {
	style Style
}

// NewStaticAdvisor returns a StaticAdvisor holding DefaultStyle().
func NewStaticAdvisor() *StaticAdvisor {
	return &StaticAdvisor{style: DefaultStyle()}
}

// NewStaticAdvisorWithStyle returns a StaticAdvisor holding the given
// style.
func NewStaticAdvisorWithStyle(s Style) *StaticAdvisor {
	return &StaticAdvisor{style: s}
}

// Suggest implements Advisor. The context is ignored: nothing blocks.
func (a *StaticAdvisor) Suggest(_ context.Context, _ Request) (Style, error) {
	return a.style, nil
}
