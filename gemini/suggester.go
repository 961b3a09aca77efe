package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrunalid-blip/coursechat"
	"google.golang.org/genai"
)

// maxPromptNames bounds the candidate list to a safe prompt size.
const maxPromptNames = 800

// Ensure Suggester implements coursechat.NameSuggester at compile time.
var _ coursechat.NameSuggester = (*Suggester)(nil)

// Suggester implements coursechat.NameSuggester using Google Gemini.
type Suggester struct {
	client *genai.Client
	cfg    config
}

// NewSuggester creates a new Suggester.
func NewSuggester(client *genai.Client, opts ...Option) *Suggester {
	return &Suggester{client: client, cfg: newConfig(opts...)}
}

// SuggestCourseName asks Gemini to pick the best matching course name
// from candidates, returning coursechat.NoMatchToken when none is
// relevant. Only the first line of the model output is used.
func (s *Suggester) SuggestCourseName(ctx context.Context, question string, candidates []string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", coursechat.Errorf(coursechat.EINVALID, "question required")
	}
	if len(candidates) == 0 {
		return coursechat.NoMatchToken, nil
	}
	if len(candidates) > maxPromptNames {
		candidates = candidates[:maxPromptNames]
	}

	callCtx, cancel, err := s.cfg.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer cancel()

	result, err := s.client.Models.GenerateContent(callCtx, s.cfg.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildNamePrompt(question, candidates)}},
		}},
		BuildSuggestConfig(),
	)
	if err != nil {
		return "", coursechat.Errorf(coursechat.EUNAVAILABLE, "gemini suggest: %v", err)
	}
	if result == nil {
		return "", coursechat.Errorf(coursechat.EINTERNAL, "gemini returned nil result")
	}

	line := FirstLine(result.Text())
	if line == "" || strings.EqualFold(line, coursechat.NoMatchToken) {
		return coursechat.NoMatchToken, nil
	}
	return line, nil
}

// BuildSuggestConfig returns the GenerateContentConfig for name
// suggestion calls. Temperature is zero: the task is selection, not
// generation.
func BuildSuggestConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a precise assistant matching user questions to course titles. Respond with exactly one line and no extra text.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildNamePrompt builds the user prompt containing the candidate course
// titles and the question.
func BuildNamePrompt(question string, candidates []string) string {
	var sb strings.Builder
	sb.WriteString("Given the following list of available course titles (one per line) and a user's question, respond with exactly ONE of the following on the first line only:\n")
	sb.WriteString("- The exact matching course title from the list (case-sensitive, exactly as in the list).\n")
	fmt.Fprintf(&sb, "- Or the single token %s if none of the listed courses are relevant.\n\n", coursechat.NoMatchToken)
	sb.WriteString("Available course titles:\n")
	for _, name := range candidates {
		sb.WriteString(name)
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\nUser question: %q\n\n", question)
	fmt.Fprintf(&sb, "Return ONLY the exact course title or %s. No extra text.", coursechat.NoMatchToken)
	return sb.String()
}
