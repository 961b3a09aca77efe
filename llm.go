package coursechat

import "context"

// NoMatchToken is the sentinel a NameSuggester returns when none of the
// candidate names is relevant. It never leaks past the capability
// boundary; callers translate it into a MatchResult.
const NoMatchToken = "NO_MATCH"

// NameSuggester proposes a canonical course name for a question.
type NameSuggester interface {
	// SuggestCourseName picks the best matching name from candidates, or
	// NoMatchToken when none is relevant. The contract is one line of
	// output; callers take the first line and treat anything unexpected as
	// NoMatchToken. Failures are EUNAVAILABLE.
	SuggestCourseName(ctx context.Context, question string, candidates []string) (string, error)
}

// Answerer produces a general HTML answer for questions the catalog
// cannot resolve.
type Answerer interface {
	// AnswerGeneral answers the raw question. Output must not be wrapped
	// in code fences; callers strip them defensively if present. Failures
	// are EUNAVAILABLE.
	AnswerGeneral(ctx context.Context, question string) (string, error)
}
