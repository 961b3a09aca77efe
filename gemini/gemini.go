// Package gemini provides Google Gemini implementations of the
// coursechat LLM capabilities: course name suggestion and general
// question answering. Every call carries a bounded timeout and passes
// through a client-side rate limiter; failures surface as EUNAVAILABLE
// so the caller can degrade to its next fallback stage.
package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/mrunalid-blip/coursechat"
	"golang.org/x/time/rate"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// DefaultTimeout bounds a single Gemini call.
const DefaultTimeout = 20 * time.Second

// DefaultRequestsPerSecond is the client-side rate limit for Gemini
// calls, with a burst of 1 (no bursting allowed).
const DefaultRequestsPerSecond = 2.0

// config holds settings shared by the Suggester and the Answerer.
type config struct {
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Suggester or an Answerer.
type Option func(*config)

// WithModel sets the Gemini model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(c *config) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout sets the per-call timeout. Defaults to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithRateLimit sets the client-side requests-per-second limit.
// Defaults to DefaultRequestsPerSecond.
func WithRateLimit(rps float64) Option {
	return func(c *config) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

func newConfig(opts ...Option) config {
	c := config{
		model:   DefaultModel,
		timeout: DefaultTimeout,
		limiter: rate.NewLimiter(rate.Limit(DefaultRequestsPerSecond), 1),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// acquire waits for the rate limiter and returns a context bounded by
// the per-call timeout.
func (c config) acquire(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, coursechat.Errorf(coursechat.EUNAVAILABLE, "gemini rate limit wait: %v", err)
	}
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	return callCtx, cancel, nil
}

// FirstLine returns the first non-empty line of an LLM response,
// trimmed. Anything else the model returned is discarded, per the
// one-line suggestion contract.
func FirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// StripCodeFences removes a wrapping markdown code fence from an LLM
// answer. Models are instructed not to emit fences but occasionally do
// anyway.
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if !strings.HasPrefix(out, "```") {
		return out
	}
	if idx := strings.IndexByte(out, '\n'); idx >= 0 {
		out = out[idx+1:]
	} else {
		out = strings.TrimPrefix(out, "```")
	}
	out = strings.TrimSpace(out)
	out = strings.TrimSuffix(out, "```")
	return strings.TrimSpace(out)
}
