package coursechat

import "context"

// Asker answers natural language questions about the course catalog.
type Asker interface {
	// Ask resolves a question to an HTML answer fragment. It always
	// produces some answer (including a fixed not-found notice) unless the
	// question is empty (EINVALID) or every fallback stage is exhausted
	// (EUNAVAILABLE).
	Ask(ctx context.Context, question string) (string, error)
}
