// Package zoho provides a Zoho-backed implementation of
// coursechat.ContactService. When no access token is configured the
// client serves deterministic offline records, so callers never need
// live network access in development or tests.
package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mrunalid-blip/coursechat"
)

// DefaultTimeout is the default timeout for Zoho API requests.
const DefaultTimeout = 10 * time.Second

// Default API endpoints.
const (
	DefaultCRMURL     = "https://www.zohoapis.com/crm/v2/Contacts/search"
	DefaultSalesIQURL = "https://salesiq.zoho.com/api/v1/conversations"
)

// Ensure Client implements coursechat.ContactService at compile time.
var _ coursechat.ContactService = (*Client)(nil)

// Client looks up CRM contacts and conversation history via the Zoho
// APIs.
type Client struct {
	accessToken string
	crmURL      string
	salesIQURL  string
	client      *http.Client
	timeout     time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for API requests. Defaults to
// DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithCRMURL overrides the contact search endpoint.
func WithCRMURL(u string) Option {
	return func(c *Client) {
		c.crmURL = u
	}
}

// WithSalesIQURL overrides the conversation history endpoint.
func WithSalesIQURL(u string) Option {
	return func(c *Client) {
		c.salesIQURL = u
	}
}

// NewClient creates a new Client. An empty accessToken puts the client
// in offline mode, where lookups return fixed records.
func NewClient(accessToken string, opts ...Option) *Client {
	c := &Client{
		accessToken: accessToken,
		crmURL:      DefaultCRMURL,
		salesIQURL:  DefaultSalesIQURL,
		timeout:     DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = &http.Client{Timeout: c.timeout}
	return c
}

// Offline reports whether the client serves offline records.
func (c *Client) Offline() bool {
	return c.accessToken == ""
}

// offlineTime keeps offline responses deterministic.
var offlineTime = time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)

// FindContactByEmail returns the CRM contact for an email address.
func (c *Client) FindContactByEmail(ctx context.Context, email string) (*coursechat.Contact, error) {
	if email == "" {
		return nil, coursechat.Errorf(coursechat.EINVALID, "email required")
	}
	if c.Offline() {
		return &coursechat.Contact{
			FullName: "Test User",
			Company:  "ACME Corp",
			Stage:    "Prospect",
			Email:    email,
		}, nil
	}

	var body struct {
		Data []struct {
			FullName string `json:"Full_Name"`
			Company  string `json:"Company"`
			Stage    string `json:"Stage"`
			Email    string `json:"Email"`
		} `json:"data"`
	}
	if err := c.get(ctx, c.crmURL, email, &body); err != nil {
		return nil, err
	}
	if len(body.Data) == 0 {
		return nil, coursechat.Errorf(coursechat.ENOTFOUND, "no contact for %q", email)
	}
	d := body.Data[0]
	return &coursechat.Contact{
		FullName: d.FullName,
		Company:  d.Company,
		Stage:    d.Stage,
		Email:    d.Email,
	}, nil
}

// FindConversations returns the chat history for an email address.
func (c *Client) FindConversations(ctx context.Context, email string) ([]*coursechat.Conversation, error) {
	if email == "" {
		return nil, coursechat.Errorf(coursechat.EINVALID, "email required")
	}
	if c.Offline() {
		return []*coursechat.Conversation{
			{Message: "Asked about pricing", Time: offlineTime},
		}, nil
	}

	var body struct {
		Conversations []struct {
			Message string    `json:"message"`
			Time    time.Time `json:"time"`
		} `json:"conversations"`
	}
	if err := c.get(ctx, c.salesIQURL, email, &body); err != nil {
		return nil, err
	}
	conversations := make([]*coursechat.Conversation, 0, len(body.Conversations))
	for _, conv := range body.Conversations {
		conversations = append(conversations, &coursechat.Conversation{
			Message: conv.Message,
			Time:    conv.Time,
		})
	}
	return conversations, nil
}

func (c *Client) get(ctx context.Context, endpoint, email string, out any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return coursechat.Errorf(coursechat.EINTERNAL, "invalid zoho endpoint %q: %v", endpoint, err)
	}
	q := u.Query()
	q.Set("email", email)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return coursechat.Errorf(coursechat.EINTERNAL, "build zoho request: %v", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Zoho-oauthtoken %s", c.accessToken))

	resp, err := c.client.Do(req)
	if err != nil {
		return coursechat.Errorf(coursechat.EUNAVAILABLE, "zoho request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return coursechat.Errorf(coursechat.EUNAVAILABLE, "zoho HTTP %d for %s", resp.StatusCode, u.Path)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return coursechat.Errorf(coursechat.EINTERNAL, "decode zoho response: %v", err)
	}
	return nil
}
