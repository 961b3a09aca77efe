// Package mock provides mock implementations of coursechat interfaces
// for testing.
package mock

import (
	"context"

	"github.com/mrunalid-blip/coursechat"
)

var _ coursechat.Asker = (*Asker)(nil)

// Asker is a mock implementation of coursechat.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}
