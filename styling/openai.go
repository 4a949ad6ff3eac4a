package styling

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIAdvisor asks a chat-completion model for a styling suggestion
// and parses the free-text reply defensively. Every failure — transport,
// empty reply, unparseable text — degrades to DefaultStyle rather than
// surfacing to the caller.
type OpenAIAdvisor struct {
	client *openai.Client
	model  string
}

// NewOpenAIAdvisor builds an advisor from the environment:
// OPENAI_API_KEY (required) and OPENAI_MODEL (defaults to gpt-4o-mini).
func NewOpenAIAdvisor() (*OpenAIAdvisor, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		slog.Error("OPENAI_API_KEY environment variable not set")

		return nil, fmt.Errorf("styling: OPENAI_API_KEY environment variable not set")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = openai.GPT4oMini
		slog.Warn("OPENAI_MODEL not set, defaulting to gpt-4o-mini")
	}
	slog.Info("Initializing styling advisor", "model", model)

	return &OpenAIAdvisor{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

// Suggest implements Advisor. The returned error is always nil: the
// rendering layer must never fail because a styling hint was unavailable,
// so every problem falls back to DefaultStyle with a logged warning.
func (a *OpenAIAdvisor) Suggest(ctx context.Context, req Request) (Style, error) {
	prompt := buildPrompt(req)
	slog.Debug("Requesting styling suggestion", "model", a.model)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You are a map styling assistant. Suggest a route line style " +
					"as one short sentence naming a hex color, a stroke width in pixels, " +
					"and whether to use a glow effect.",
			},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		slog.Warn("Styling suggestion call failed, using default style", "error", err)

		return DefaultStyle(), nil
	}
	if len(resp.Choices) == 0 {
		slog.Warn("Styling suggestion returned no choices, using default style")

		return DefaultStyle(), nil
	}

	return parseSuggestion(resp.Choices[0].Message.Content), nil
}

// buildPrompt renders the request context for the model.
func buildPrompt(req Request) string {
	occlusion := "nothing else overlaps the route"
	if req.Occluded {
		occlusion = "other drawings overlap the route, it must stand out"
	}

	return fmt.Sprintf(
		"Map viewport: %dx%d pixels. Route: %s. Search complexity: %s. Occlusion: %s.",
		req.Width, req.Height, req.PathSummary, req.Complexity, occlusion,
	)
}

var (
	hexColorRe = regexp.MustCompile(`#[0-9a-fA-F]{6}\b`)

	// strokeWidthRe grabs the first number within a few characters of the
	// words "width", "stroke" or "px".
	strokeWidthRe = regexp.MustCompile(`(?i)(?:width|stroke|thickness)\D{0,12}(\d+(?:\.\d+)?)`)
)

// parseSuggestion extracts a Style from free text. Each field falls back
// to DefaultStyle individually when the text does not pin it down.
func parseSuggestion(text string) Style {
	style := DefaultStyle()

	if m := hexColorRe.FindString(text); m != "" {
		style.Color = strings.ToUpper(m)
	}

	if m := strokeWidthRe.FindStringSubmatch(text); m != nil {
		if w, err := strconv.ParseFloat(m[1], 64); err == nil && w > 0 && w <= 64 {
			style.StrokeWidth = w
		}
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "no glow"), strings.Contains(lower, "without glow"), strings.Contains(lower, "glow off"):
		style.Glow = false
	case strings.Contains(lower, "glow"):
		style.Glow = true
	}

	return style
}
