package gemini_test

import (
	"context"
	"testing"

	"github.com/mrunalid-blip/coursechat"
	"github.com/mrunalid-blip/coursechat/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggester_SuggestCourseName_RejectsEmptyQuestion(t *testing.T) {
	t.Parallel()

	s := gemini.NewSuggester(nil)

	_, err := s.SuggestCourseName(context.Background(), "  ", []string{"Diploma in Cardiology"})

	require.Error(t, err)
	assert.Equal(t, coursechat.EINVALID, coursechat.ErrorCode(err))
}

func TestSuggester_SuggestCourseName_EmptyCandidates(t *testing.T) {
	t.Parallel()

	// No candidates means no possible match; the model is never called.
	s := gemini.NewSuggester(nil)

	got, err := s.SuggestCourseName(context.Background(), "fees for cardiology?", nil)

	require.NoError(t, err)
	assert.Equal(t, coursechat.NoMatchToken, got)
}

func TestAnswerer_AnswerGeneral_RejectsEmptyQuestion(t *testing.T) {
	t.Parallel()

	a := gemini.NewAnswerer(nil)

	_, err := a.AnswerGeneral(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, coursechat.EINVALID, coursechat.ErrorCode(err))
}
