package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"quizmd/internal/history"
	"quizmd/internal/logging"
	"quizmd/internal/question"
	"quizmd/internal/review"
)

const defaultMaxUploadBytes = 1 << 20

// api holds the handler dependencies.
type api struct {
	sessions       *sessionStore
	history        *history.Store
	logger         logging.Logger
	maxUploadBytes int64
	strict         bool
}

// NewHandler builds the HTTP handler for the review API.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.MaxUploadBytes < 0 {
		return nil, fmt.Errorf("server: max upload bytes must be >= 0, got %d", cfg.MaxUploadBytes)
	}
	if cfg.MaxSessions < 0 {
		return nil, fmt.Errorf("server: max sessions must be >= 0, got %d", cfg.MaxSessions)
	}
	if cfg.SessionTTL < 0 {
		return nil, fmt.Errorf("server: session ttl must be >= 0, got %s", cfg.SessionTTL)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	a := &api{
		sessions:       newSessionStore(cfg.MaxSessions, cfg.SessionTTL),
		history:        cfg.History,
		logger:         logger,
		maxUploadBytes: cfg.MaxUploadBytes,
		strict:         cfg.Strict,
	}
	if a.maxUploadBytes == 0 {
		a.maxUploadBytes = defaultMaxUploadBytes
	}
	return a.routes(cfg.CORSOrigins), nil
}

func (a *api) routes(origins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer, a.logRequests)
	if len(origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "ok")
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/decks", a.handle(a.uploadDeck))
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", a.handle(a.getSession))
			r.Post("/select", a.handle(a.selectOption))
			r.Post("/next", a.handle(a.navigate(func(s *review.Session) { s.Next() })))
			r.Post("/previous", a.handle(a.navigate(func(s *review.Session) { s.Previous() })))
		})
	})
	return r
}

// handlerFunc is an HTTP handler that reports failures as errors.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (a *api) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			status, body := classify(err)
			if status >= http.StatusInternalServerError {
				a.logger.Error("request failed", "path", r.URL.Path, "error", err)
			} else {
				a.logger.Debug("request rejected", "path", r.URL.Path, "code", body.Code, "error", err)
			}
			respondJSON(w, status, body)
		}
	}
}

func (a *api) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.logger.WithContext(r.Context()).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).String(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// uploadDeck handles POST /api/decks (multipart: file=deck.md).
func (a *api) uploadDeck(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxUploadBytes)
	if err := r.ParseMultipartForm(a.maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return validationError(err, "upload too large", codeUploadTooLarge, http.StatusRequestEntityTooLarge)
		}
		return validationError(err, "invalid multipart upload", codeUploadMissing, http.StatusBadRequest)
	}
	f, hdr, err := r.FormFile("file")
	if err != nil {
		return validationError(fmt.Errorf("file required: %w", err), "file required", codeUploadMissing, http.StatusBadRequest)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return internalError(fmt.Errorf("read upload: %w", err))
	}

	deck, err := question.ParseDeck(data, hdr.Filename)
	if err != nil {
		if errors.Is(err, question.ErrMalformedStructure) {
			return validationError(err, "malformed quiz", codeDeckMalformed, http.StatusUnprocessableEntity)
		}
		return validationError(err, "invalid quiz", codeDeckInvalid, http.StatusUnprocessableEntity)
	}
	if len(deck.Questions) == 0 {
		return validationError(errors.New("no questions found"), "empty quiz", codeDeckEmpty, http.StatusUnprocessableEntity)
	}
	if a.strict {
		if err := question.Check(deck); err != nil {
			return validationError(err, "quiz check failed", codeDeckInvalid, http.StatusUnprocessableEntity)
		}
	}

	id := a.sessions.create(deck, a.sessionOptions(r, deck))
	var resp uploadResponse
	a.sessions.with(id, func(entry *sessionEntry) {
		resp = uploadResponse{
			SessionID: id,
			Title:     deck.Title,
			DeckKey:   deck.Key,
			Questions: len(deck.Questions),
			Session:   newSessionResponse(id, entry),
		}
	})
	a.logger.Info("session created", "session_id", id, "deck", deck.Title, "questions", len(deck.Questions))
	respondJSON(w, http.StatusCreated, resp)
	return nil
}

// sessionOptions attaches the history observer when a store is configured.
func (a *api) sessionOptions(r *http.Request, deck question.Deck) func(id string) []review.Option {
	if a.history == nil {
		return nil
	}
	ctx := r.Context()
	if _, _, err := a.history.UpsertDeck(ctx, deck); err != nil {
		a.logger.Warn("history deck upsert failed", "error", err)
	}
	return func(id string) []review.Option {
		// Answers arrive on later requests, so they must not inherit the
		// upload request's context.
		return []review.Option{review.WithObserver(a.history.Observer(context.WithoutCancel(ctx), id, deck, func(err error) {
			a.logger.Warn("history record failed", "session_id", id, "error", err)
		}))}
	}
}

func (a *api) getSession(w http.ResponseWriter, r *http.Request) error {
	return a.respondSession(w, chi.URLParam(r, "id"), nil)
}

func (a *api) selectOption(w http.ResponseWriter, r *http.Request) error {
	var req selectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return validationError(fmt.Errorf("decode request: %w", err), "invalid request body", codeRequestInvalid, http.StatusBadRequest)
	}
	if err := req.Validate(); err != nil {
		return validationError(err, "invalid option", codeRequestInvalid, http.StatusBadRequest)
	}
	id, _ := question.ParseOptionID(req.Option)
	return a.respondSession(w, chi.URLParam(r, "id"), func(s *review.Session) {
		s.Select(id)
	})
}

func (a *api) navigate(move func(*review.Session)) handlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		return a.respondSession(w, chi.URLParam(r, "id"), move)
	}
}

// respondSession applies fn to the session and writes its view.
func (a *api) respondSession(w http.ResponseWriter, id string, fn func(*review.Session)) error {
	var resp sessionResponse
	ok := a.sessions.with(id, func(entry *sessionEntry) {
		if fn != nil {
			fn(entry.session)
		}
		resp = newSessionResponse(id, entry)
	})
	if !ok {
		return notFoundError(fmt.Errorf("%w: %s", errSessionNotFound, id))
	}
	respondJSON(w, http.StatusOK, resp)
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}
