package mock

import (
	"context"

	"github.com/mrunalid-blip/coursechat"
)

var _ coursechat.ContactService = (*ContactService)(nil)

// ContactService is a mock implementation of coursechat.ContactService.
type ContactService struct {
	FindContactByEmailFn func(ctx context.Context, email string) (*coursechat.Contact, error)
	FindConversationsFn  func(ctx context.Context, email string) ([]*coursechat.Conversation, error)
}

func (s *ContactService) FindContactByEmail(ctx context.Context, email string) (*coursechat.Contact, error) {
	return s.FindContactByEmailFn(ctx, email)
}

func (s *ContactService) FindConversations(ctx context.Context, email string) ([]*coursechat.Conversation, error) {
	return s.FindConversationsFn(ctx, email)
}
