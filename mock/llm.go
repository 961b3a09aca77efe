package mock

import (
	"context"

	"github.com/mrunalid-blip/coursechat"
)

var _ coursechat.NameSuggester = (*NameSuggester)(nil)

// NameSuggester is a mock implementation of coursechat.NameSuggester.
type NameSuggester struct {
	SuggestCourseNameFn func(ctx context.Context, question string, candidates []string) (string, error)
}

func (s *NameSuggester) SuggestCourseName(ctx context.Context, question string, candidates []string) (string, error) {
	return s.SuggestCourseNameFn(ctx, question, candidates)
}

var _ coursechat.Answerer = (*Answerer)(nil)

// Answerer is a mock implementation of coursechat.Answerer.
type Answerer struct {
	AnswerGeneralFn func(ctx context.Context, question string) (string, error)
}

func (a *Answerer) AnswerGeneral(ctx context.Context, question string) (string, error) {
	return a.AnswerGeneralFn(ctx, question)
}
