// Tests for the default style contract and the defensive parsing of
// free-text styling suggestions. In-package to reach parseSuggestion.

package styling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultStyle(t *testing.T) {
	// The fixed fallback the rendering layer relies on when the external
	// capability is disabled or failing.
	s := DefaultStyle()
	assert.Equal(t, "#2EC4B6", s.Color)
	assert.Equal(t, 4.0, s.StrokeWidth)
	assert.True(t, s.Glow)
}

func TestStaticAdvisor(t *testing.T) {
	a := NewStaticAdvisor()
	got, err := a.Suggest(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, DefaultStyle(), got)

	custom := Style{Color: "#FF0000", StrokeWidth: 2, Glow: false}
	b := NewStaticAdvisorWithStyle(custom)
	got, err = b.Suggest(context.Background(), Request{Occluded: true, Complexity: "dense"})
	require.NoError(t, err)
	assert.Equal(t, custom, got)
}

func TestParseSuggestion(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Style
	}{
		{
			name: "full suggestion",
			text: "Use #ff8800 with a stroke width of 6px and a subtle glow.",
			want: Style{Color: "#FF8800", StrokeWidth: 6, Glow: true},
		},
		{
			name: "glow declined",
			text: "A calm line: color #123abc, thickness 2, no glow please.",
			want: Style{Color: "#123ABC", StrokeWidth: 2, Glow: false},
		},
		{
			name: "color only",
			text: "I'd go with #00FF00 here.",
			want: Style{Color: "#00FF00", StrokeWidth: 4, Glow: true},
		},
		{
			name: "garbage falls back entirely",
			text: "As an AI model I cannot pick colors.",
			want: DefaultStyle(),
		},
		{
			name: "empty reply",
			text: "",
			want: DefaultStyle(),
		},
		{
			name: "absurd width rejected",
			text: "Color #112233, stroke width 4000px, glow.",
			want: Style{Color: "#112233", StrokeWidth: 4, Glow: true},
		},
		{
			name: "short hex ignored",
			text: "Maybe #abc with width 3.",
			want: Style{Color: "#2EC4B6", StrokeWidth: 3, Glow: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, parseSuggestion(tc.text))
		})
	}
}

func TestBuildPrompt(t *testing.T) {
	req := Request{
		Width:       800,
		Height:      600,
		PathSummary: "A → B → C, total 3.00",
		Complexity:  "simple",
		Occluded:    true,
	}
	p := buildPrompt(req)
	assert.Contains(t, p, "800x600")
	assert.Contains(t, p, "A → B → C")
	assert.Contains(t, p, "simple")
	assert.Contains(t, p, "must stand out")
}

func TestNewOpenAIAdvisor_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	_, err := NewOpenAIAdvisor()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}
