// Package api exposes the guide backend over HTTP. Handlers are thin:
// they decode the request, call the owning service, and shape the shared
// response envelope. All lifecycle and validation logic lives in core/.
package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nudgyt/scaiguide/core/feedback"
	"github.com/nudgyt/scaiguide/core/guide"
	"github.com/nudgyt/scaiguide/core/logger"
	"github.com/nudgyt/scaiguide/core/notification"
	"github.com/nudgyt/scaiguide/core/response"
	"github.com/nudgyt/scaiguide/core/route"
	"github.com/nudgyt/scaiguide/core/session"
)

// Deps collects the services the HTTP layer delegates to. Guide is
// optional (nil when no LLM provider is configured); the chat endpoints
// then answer 503.
type Deps struct {
	Sessions      *session.Manager[any]
	Guide         *guide.Service
	Feedback      *feedback.Service
	Notifications *notification.Service
	Routes        *route.Service

	// StoreEnabled reports whether the document store connected at
	// startup. It feeds the store diagnostics block in responses.
	StoreEnabled bool

	// Probes are named dependency health checks for /healthz.
	Probes map[string]func(context.Context) error

	Logger *slog.Logger
}

type handler struct {
	deps Deps
	log  *slog.Logger
}

// NewRouter builds the full route table.
func NewRouter(deps Deps) http.Handler {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := &handler{deps: deps, log: log}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.health)

	r.Route("/sessions", func(r chi.Router) {
		r.Get("/", h.listSessions)
		r.Post("/generate", h.generateSession)
		r.Get("/generate", h.generateSession) // legacy clients use GET
		r.Get("/access", h.accessSession)
		r.Post("/update", h.updateSession)
		r.Post("/end", h.endSession)
		r.Post("/handoff", h.handoffSession)
	})

	r.Route("/guide", func(r chi.Router) {
		r.Post("/chat", h.chat)
	})

	r.Get("/exhibits", h.listExhibits)
	r.Post("/exhibits/match", h.matchExhibit)

	r.Route("/feedback", func(r chi.Router) {
		r.Post("/", h.createFeedback)
		r.Get("/", h.listFeedback)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Post("/", h.createNotification)
		r.Get("/", h.listNotifications)
		r.Post("/{id}/read", h.markNotificationRead)
	})

	r.Route("/routes", func(r chi.Router) {
		r.Post("/", h.recordVisit)
		r.Get("/", h.listVisits)
	})

	return r
}

// internalError logs the failure and answers with the envelope the
// clients expect for 5xx.
func (h *handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "request failed",
		logger.Method(r.Method), logger.Path(r.URL.Path), logger.Error(err))
	response.Fail(w, http.StatusInternalServerError, err.Error())
}
