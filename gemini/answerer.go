package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrunalid-blip/coursechat"
	"google.golang.org/genai"
)

// Ensure Answerer implements coursechat.Answerer at compile time.
var _ coursechat.Answerer = (*Answerer)(nil)

// Answerer implements coursechat.Answerer using Google Gemini.
type Answerer struct {
	client *genai.Client
	cfg    config
}

// NewAnswerer creates a new Answerer.
func NewAnswerer(client *genai.Client, opts ...Option) *Answerer {
	return &Answerer{client: client, cfg: newConfig(opts...)}
}

// AnswerGeneral answers the raw question with an HTML fragment. Any
// wrapping code fence is stripped before the answer is returned.
func (a *Answerer) AnswerGeneral(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", coursechat.Errorf(coursechat.EINVALID, "question required")
	}

	callCtx, cancel, err := a.cfg.acquire(ctx)
	if err != nil {
		return "", err
	}
	defer cancel()

	result, err := a.client.Models.GenerateContent(callCtx, a.cfg.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildGeneralPrompt(question)}},
		}},
		BuildAnswerConfig(),
	)
	if err != nil {
		return "", coursechat.Errorf(coursechat.EUNAVAILABLE, "gemini answer: %v", err)
	}
	if result == nil {
		return "", coursechat.Errorf(coursechat.EINTERNAL, "gemini returned nil result")
	}

	answer := StripCodeFences(result.Text())
	if answer == "" {
		return "", coursechat.Errorf(coursechat.EUNAVAILABLE, "gemini returned no text")
	}
	return answer, nil
}

// BuildAnswerConfig returns the GenerateContentConfig for general answer
// calls.
func BuildAnswerConfig() *genai.GenerateContentConfig {
	temp := float32(0.5)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a course advisory assistant. Answer the user's question using simple HTML tags (<p>, <ul>, <li>, <strong>). Do not wrap the answer inside code blocks or backticks; return raw HTML only.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildGeneralPrompt builds the user prompt for a general answer call.
func BuildGeneralPrompt(question string) string {
	return fmt.Sprintf("User question: %q", question)
}
