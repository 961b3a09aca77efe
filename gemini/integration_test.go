//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/mrunalid-blip/coursechat"
	"github.com/mrunalid-blip/coursechat/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func integrationClient(t *testing.T, ctx context.Context) *genai.Client {
	t.Helper()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)
	return client
}

func TestSuggester_Integration_PicksCandidateOrNoMatch(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := integrationClient(t, ctx)
	suggester := gemini.NewSuggester(client)

	candidates := []string{
		"Diploma in Cardiology",
		"Pediatric Nutrition",
		"Fellowship in Diabetes Management",
	}

	got, err := suggester.SuggestCourseName(ctx, "which course covers heart diseases?", candidates)

	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.NotContains(t, got, "\n")
	// The prompt constrains the answer to a listed title or the no-match
	// token.
	valid := append([]string{coursechat.NoMatchToken}, candidates...)
	assert.Contains(t, valid, got)
}

func TestSuggester_Integration_IrrelevantQuestionIsNoMatch(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := integrationClient(t, ctx)
	suggester := gemini.NewSuggester(client)

	got, err := suggester.SuggestCourseName(ctx, "what is the capital of France?",
		[]string{"Diploma in Cardiology", "Pediatric Nutrition"})

	require.NoError(t, err)
	assert.Equal(t, coursechat.NoMatchToken, got)
}

func TestAnswerer_Integration_ReturnsUnfencedAnswer(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := integrationClient(t, ctx)
	answerer := gemini.NewAnswerer(client)

	answer, err := answerer.AnswerGeneral(ctx, "what does a cardiologist do?")

	require.NoError(t, err)
	assert.NotEmpty(t, answer)
	assert.NotContains(t, answer, "```")
}
