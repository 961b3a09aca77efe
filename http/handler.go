// Package http provides the HTTP transport for the coursechat service:
// the chat endpoint, the CRM lookup endpoint and catalog administration.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/mrunalid-blip/coursechat"
	"golang.org/x/sync/errgroup"
)

// Handler routes coursechat API requests. All responses are JSON.
type Handler struct {
	asker    coursechat.Asker
	catalog  coursechat.CatalogService
	contacts coursechat.ContactService
	logger   *slog.Logger
	mux      *http.ServeMux
}

// NewHandler creates a new Handler. contacts may be nil, in which case
// the CRM endpoint responds with 404.
func NewHandler(asker coursechat.Asker, catalog coursechat.CatalogService, contacts coursechat.ContactService, logger *slog.Logger) *Handler {
	h := &Handler{
		asker:    asker,
		catalog:  catalog,
		contacts: contacts,
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /{$}", h.handleRoot)
	h.mux.HandleFunc("POST /api/chat", h.handleChat)
	h.mux.HandleFunc("GET /api/zoho-data", h.handleZohoData)
	h.mux.HandleFunc("POST /api/catalog/reload", h.handleReload)
	return h
}

// ServeHTTP implements http.Handler with request-ID tagging and panic
// containment around the route handlers.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	w.Header().Set("X-Request-ID", requestID)

	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("handler panic",
				"request_id", requestID,
				"path", r.URL.Path,
				"panic", rec,
			)
			writeError(w, http.StatusInternalServerError, "Something went wrong")
		}
	}()

	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// chatRequest is the inbound chat contract.
type chatRequest struct {
	Question string `json:"question"`
}

// chatResponse carries the structured-markup answer.
type chatResponse struct {
	Answer string `json:"answer"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "Missing question")
		return
	}

	answer, err := h.asker.Ask(r.Context(), req.Question)
	if err != nil {
		h.logger.Error("chat request failed", "question", req.Question, "err", err)
		writeCodedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}

// zohoDataResponse bundles the CRM contact with its chat history.
type zohoDataResponse struct {
	Contact       *coursechat.Contact        `json:"contact"`
	Conversations []*coursechat.Conversation `json:"conversations"`
}

func (h *Handler) handleZohoData(w http.ResponseWriter, r *http.Request) {
	if h.contacts == nil {
		writeError(w, http.StatusNotFound, "CRM lookup not configured")
		return
	}
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "Missing email")
		return
	}

	var resp zohoDataResponse
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		contact, err := h.contacts.FindContactByEmail(ctx, email)
		if err != nil {
			return err
		}
		resp.Contact = contact
		return nil
	})
	g.Go(func() error {
		conversations, err := h.contacts.FindConversations(ctx, email)
		if err != nil {
			return err
		}
		resp.Conversations = conversations
		return nil
	})
	if err := g.Wait(); err != nil {
		h.logger.Error("CRM lookup failed", "email", email, "err", err)
		writeCodedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// reloadResponse reports the outcome of a catalog reload. A degraded
// reload (source failure, empty catalog) is still a 200: the service
// keeps answering.
type reloadResponse struct {
	Reloaded bool   `json:"reloaded"`
	Courses  int    `json:"courses"`
	Warning  string `json:"warning,omitempty"`
}

func (h *Handler) handleReload(w http.ResponseWriter, r *http.Request) {
	resp := reloadResponse{Reloaded: true}
	if err := h.catalog.Reload(r.Context()); err != nil {
		resp.Reloaded = false
		resp.Warning = coursechat.ErrorMessage(err)
	}
	if names, err := h.catalog.CourseNames(r.Context()); err == nil {
		resp.Courses = len(names)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeCodedError maps an application error code to an HTTP status.
// Internal details never leak: EINTERNAL responds with a generic
// message.
func writeCodedError(w http.ResponseWriter, err error) {
	switch coursechat.ErrorCode(err) {
	case coursechat.EINVALID:
		writeError(w, http.StatusBadRequest, coursechat.ErrorMessage(err))
	case coursechat.ENOTFOUND:
		writeError(w, http.StatusNotFound, coursechat.ErrorMessage(err))
	case coursechat.EUNAVAILABLE:
		writeError(w, http.StatusServiceUnavailable, coursechat.ErrorMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, "Something went wrong")
	}
}
