package coursechat

import (
	"context"
	"time"
)

// Contact is a CRM contact record.
type Contact struct {
	FullName string `json:"fullName"`
	Company  string `json:"company"`
	Stage    string `json:"stage"`
	Email    string `json:"email"`
}

// Conversation is one entry of a contact's chat history.
type Conversation struct {
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
}

// ContactService looks up CRM data for a contact. Implementations must
// offer a deterministic offline response when credentials are
// unconfigured, so callers never require live network access in tests.
type ContactService interface {
	// FindContactByEmail returns the CRM contact for an email address.
	// Returns ENOTFOUND if no contact matches.
	FindContactByEmail(ctx context.Context, email string) (*Contact, error)

	// FindConversations returns the chat history for an email address,
	// most recent first.
	FindConversations(ctx context.Context, email string) ([]*Conversation, error)
}
