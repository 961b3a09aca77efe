package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mrunalid-blip/coursechat"
	coursechathttp "github.com/mrunalid-blip/coursechat/http"
	"github.com/mrunalid-blip/coursechat/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandler(asker coursechat.Asker, catalog coursechat.CatalogService, contacts coursechat.ContactService) *coursechathttp.Handler {
	return coursechathttp.NewHandler(asker, catalog, contacts, discardLogger())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandler_Root(t *testing.T) {
	t.Parallel()

	h := newHandler(nil, mock.StaticCatalog(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHandler_Chat(t *testing.T) {
	t.Parallel()

	t.Run("returns the resolved answer", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(_ context.Context, question string) (string, error) {
				assert.Equal(t, "list all courses", question)
				return "<p>Answer.</p>", nil
			},
		}
		h := newHandler(asker, mock.StaticCatalog(), nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat",
			strings.NewReader(`{"question": "list all courses"}`)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<p>Answer.</p>", decodeBody(t, rec)["answer"])
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		t.Parallel()

		h := newHandler(nil, mock.StaticCatalog(), nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat",
			strings.NewReader(`{"question":`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeBody(t, rec)["error"])
	})

	t.Run("rejects a missing question", func(t *testing.T) {
		t.Parallel()

		h := newHandler(nil, mock.StaticCatalog(), nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat",
			strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Missing question", decodeBody(t, rec)["error"])
	})

	t.Run("maps an unavailable pipeline to 503", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(context.Context, string) (string, error) {
				return "", coursechat.Errorf(coursechat.EUNAVAILABLE, "unable to answer question right now")
			},
		}
		h := newHandler(asker, mock.StaticCatalog(), nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat",
			strings.NewReader(`{"question": "anything"}`)))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "unable to answer question right now", decodeBody(t, rec)["error"])
	})

	t.Run("hides internal error details", func(t *testing.T) {
		t.Parallel()

		asker := &mock.Asker{
			AskFn: func(context.Context, string) (string, error) {
				return "", coursechat.Errorf(coursechat.EINTERNAL, "snapshot pointer corrupted")
			},
		}
		h := newHandler(asker, mock.StaticCatalog(), nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat",
			strings.NewReader(`{"question": "anything"}`)))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Something went wrong", body["error"])
		assert.NotContains(t, rec.Body.String(), "snapshot")
	})
}

func TestHandler_ZohoData(t *testing.T) {
	t.Parallel()

	t.Run("bundles contact and conversations", func(t *testing.T) {
		t.Parallel()

		contacts := &mock.ContactService{
			FindContactByEmailFn: func(_ context.Context, email string) (*coursechat.Contact, error) {
				return &coursechat.Contact{FullName: "Jane Doe", Email: email}, nil
			},
			FindConversationsFn: func(context.Context, string) ([]*coursechat.Conversation, error) {
				return []*coursechat.Conversation{{Message: "Asked about pricing"}}, nil
			},
		}
		h := newHandler(nil, mock.StaticCatalog(), contacts)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/zoho-data?email=jane@example.com", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		contact, ok := body["contact"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Jane Doe", contact["fullName"])
		conversations, ok := body["conversations"].([]any)
		require.True(t, ok)
		assert.Len(t, conversations, 1)
	})

	t.Run("requires an email", func(t *testing.T) {
		t.Parallel()

		h := newHandler(nil, mock.StaticCatalog(), &mock.ContactService{})

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/zoho-data", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("responds 404 when CRM is not configured", func(t *testing.T) {
		t.Parallel()

		h := newHandler(nil, mock.StaticCatalog(), nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/zoho-data?email=jane@example.com", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("maps lookup failures to the coded status", func(t *testing.T) {
		t.Parallel()

		contacts := &mock.ContactService{
			FindContactByEmailFn: func(_ context.Context, email string) (*coursechat.Contact, error) {
				return nil, coursechat.Errorf(coursechat.ENOTFOUND, "no contact for %q", email)
			},
			FindConversationsFn: func(context.Context, string) ([]*coursechat.Conversation, error) {
				return nil, nil
			},
		}
		h := newHandler(nil, mock.StaticCatalog(), contacts)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/zoho-data?email=nobody@example.com", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_Reload(t *testing.T) {
	t.Parallel()

	t.Run("reports the reloaded course count", func(t *testing.T) {
		t.Parallel()

		catalog := mock.StaticCatalog(
			&coursechat.Course{Name: "Diploma in Cardiology"},
			&coursechat.Course{Name: "Pediatric Nutrition"},
		)
		h := newHandler(nil, catalog, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/catalog/reload", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["reloaded"])
		assert.Equal(t, float64(2), body["courses"])
	})

	t.Run("a failed reload is still 200 with a warning", func(t *testing.T) {
		t.Parallel()

		catalog := mock.StaticCatalog()
		catalog.ReloadFn = func(context.Context) error {
			return coursechat.Errorf(coursechat.EINTERNAL, "read catalog file: permission denied")
		}
		h := newHandler(nil, catalog, nil)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/catalog/reload", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["reloaded"])
		assert.NotEmpty(t, body["warning"])
	})
}

func TestHandler_PanicRecovery(t *testing.T) {
	t.Parallel()

	asker := &mock.Asker{
		AskFn: func(context.Context, string) (string, error) {
			panic("boom")
		},
	}
	h := newHandler(asker, mock.StaticCatalog(), nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"question": "anything"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
}
