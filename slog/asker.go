// Package slog provides logging decorators for coursechat services using
// the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mrunalid-blip/coursechat"
)

// Ensure LoggingAsker implements coursechat.Asker.
var _ coursechat.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with per-question logging.
type LoggingAsker struct {
	next   coursechat.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next coursechat.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped Asker and logs the outcome.
func (a *LoggingAsker) Ask(ctx context.Context, question string) (answer string, err error) {
	defer func(begin time.Time) {
		a.logger.Info("question resolved",
			"question", question,
			"answer_len", len(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Ask(ctx, question)
}
