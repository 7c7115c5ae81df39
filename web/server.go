// Package web serves the chat view: an embedded single page, a JSON API
// for turns and settings, and a websocket pushing conversation updates.
package web

import (
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	ai "github.com/spetersoncode/parley"
	"github.com/spetersoncode/parley/prefs"
	"github.com/spetersoncode/parley/session"
)

//go:embed static
var staticFS embed.FS

// Server wires the session, preference store, and hub behind HTTP.
type Server struct {
	session *session.Session
	store   prefs.Store
	hub     *Hub
	log     *slog.Logger
}

// NewServer creates the web server and subscribes the hub to conversation
// changes, so every append reaches connected clients.
func NewServer(s *session.Session, store prefs.Store, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	srv := &Server{
		session: s,
		store:   store,
		hub:     NewHub(log),
		log:     log,
	}
	s.Conversation().Subscribe(func([]ai.Message) {
		srv.hub.Broadcast(srv.state())
	})
	return srv
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Post("/chat", s.handleChat)
		r.Post("/reset", s.handleReset)
		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handleSaveSettings)
		r.Delete("/settings", s.handleClearSettings)
	})

	r.Get("/ws", s.hub.HandleWebSocket)

	static, _ := fs.Sub(staticFS, "static")
	r.Handle("/*", http.FileServerFS(static))

	return r
}

// messageView is a message prepared for rendering: content converted from
// Markdown to HTML, original text kept for copy actions.
type messageView struct {
	ID        string    `json:"id"`
	Role      ai.Role   `json:"role"`
	HTML      string    `json:"html"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// stateView is the full view contract: the rendered conversation plus the
// gating flags. The API key itself never appears here.
type stateView struct {
	Messages []messageView `json:"messages"`
	Busy     bool          `json:"busy"`
	Provider ai.Provider   `json:"provider,omitempty"`
	HasKey   bool          `json:"hasKey"`
}

func (s *Server) state() stateView {
	msgs := s.session.Conversation().Messages()
	views := make([]messageView, len(msgs))
	for i, m := range msgs {
		views[i] = messageView{
			ID:        m.ID,
			Role:      m.Role,
			HTML:      renderMarkdown(m.Content),
			Text:      m.Content,
			CreatedAt: m.CreatedAt,
		}
	}

	view := stateView{
		Messages: views,
		Busy:     s.session.Busy(),
	}
	if p, ok, err := s.store.Load(); err == nil && ok {
		view.Provider = p.Provider
		view.HasKey = p.APIKey != ""
	}
	return view
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.state())
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Send settles before responding; provider failures are already
	// conversation content by the time it returns.
	err := s.session.Send(r.Context(), req.Message)
	switch {
	case errors.Is(err, session.ErrBlankMessage):
		writeError(w, http.StatusBadRequest, "message is required")
		return
	case errors.Is(err, session.ErrBusy):
		writeError(w, http.StatusConflict, "a request is already in flight")
		return
	case errors.Is(err, session.ErrNoAPIKey):
		writeError(w, http.StatusConflict, "no API key configured")
		return
	case err != nil:
		s.log.Error("turn failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	// The subscriber broadcasts fired while the turn was still in flight;
	// push one more snapshot now that the busy flag has cleared.
	state := s.state()
	s.hub.Broadcast(state)
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.session.Conversation().Reset()
	writeJSON(w, http.StatusOK, s.state())
}

// settingsView reports the provider and whether a key is saved, never the
// key itself.
type settingsView struct {
	Provider ai.Provider `json:"provider,omitempty"`
	HasKey   bool        `json:"hasKey"`
}

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	var view settingsView
	if p, ok, err := s.store.Load(); err == nil && ok {
		view.Provider = p.Provider
		view.HasKey = p.APIKey != ""
	}
	writeJSON(w, http.StatusOK, view)
}

type settingsRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
}

func (s *Server) handleSaveSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	provider, err := ai.ParseProvider(req.Provider)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown provider")
		return
	}

	err = s.store.Save(prefs.Preferences{Provider: provider, APIKey: req.APIKey})
	switch {
	case errors.Is(err, prefs.ErrBlankAPIKey):
		writeError(w, http.StatusBadRequest, "API key is required")
		return
	case err != nil:
		s.log.Error("saving preferences failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.log.Info("preferences saved", "provider", provider)
	writeJSON(w, http.StatusOK, settingsView{Provider: provider, HasKey: true})
}

func (s *Server) handleClearSettings(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Clear(); err != nil {
		s.log.Error("clearing preferences failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, settingsView{})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorView struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorView{Error: msg})
}
