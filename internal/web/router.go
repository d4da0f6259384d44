// Package web is the screen layer: chi routes mirroring the product's
// navigation graph, handlers that call the backend through the gateway client
// and keep per-browser state in the session manager. Handlers never talk to
// storage directly and never interpret backend auth beyond the 401 sentinel.
package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vanta/internal/api"
	"vanta/internal/platform/config"
	"vanta/internal/platform/guard"
	"vanta/internal/platform/metrics"
	"vanta/internal/platform/middleware"
	"vanta/internal/register"
	"vanta/internal/session"
)

// Handler holds every screen's dependencies.
type Handler struct {
	logger   *slog.Logger
	api      *api.Client
	flow     *register.Flow
	sessions *session.Manager
	guard    *guard.Guard
	metrics  *metrics.Metrics
	cfg      config.Config
	views    *Views
}

// New builds the screen handler.
func New(
	logger *slog.Logger,
	client *api.Client,
	sessions *session.Manager,
	actionGuard *guard.Guard,
	m *metrics.Metrics,
	cfg config.Config,
) (*Handler, error) {
	views, err := NewViews()
	if err != nil {
		return nil, err
	}
	return &Handler{
		logger:   logger,
		api:      client,
		flow:     register.NewFlow(client),
		sessions: sessions,
		guard:    actionGuard,
		metrics:  m,
		cfg:      cfg,
		views:    views,
	}, nil
}

// Router wires all screens. Authenticated screens sit behind RequireLogin;
// everything in the signup funnel is reachable logged out.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))

	r.Handle("/static/*", StaticHandler())

	r.Get("/", h.handleSplash)
	r.Get("/invite", h.handleInviteForm)
	r.Post("/invite", h.handleInviteSubmit)
	r.Get("/login", h.handleLoginForm)
	r.Post("/login", h.handleLoginSubmit)
	r.Post("/logout", h.handleLogout)

	r.Route("/register", func(r chi.Router) {
		r.Get("/name", h.handleRegisterStepForm(stepName))
		r.Post("/name", h.handleRegisterStepSubmit(stepName))
		r.Get("/birthday", h.handleRegisterStepForm(stepBirthday))
		r.Post("/birthday", h.handleRegisterStepSubmit(stepBirthday))
		r.Get("/phone", h.handleRegisterStepForm(stepPhone))
		r.Post("/phone", h.handleRegisterStepSubmit(stepPhone))
		r.Get("/userid", h.handleRegisterStepForm(stepUserID))
		r.Post("/userid", h.handleRegisterStepSubmit(stepUserID))
		r.Get("/password", h.handlePasswordForm)
		r.Post("/password", h.handlePasswordSubmit)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin(h.sessions, h.logger))
		r.Get("/parties", h.handleParties)
		r.Get("/party/{id}", h.handlePartyDetail)
		r.Get("/payment/{id}", h.handlePaymentForm)
		r.Post("/payment/{id}", h.handlePaymentSubmit)
		r.Get("/enrolled", h.handleEnrolled)
		r.Get("/coupon", h.handleCoupon)
		r.Post("/coupon/use", h.handleCouponUse)
		r.Get("/profile", h.handleProfile)
		r.Get("/admin", h.handleAdmin)
		r.Post("/admin/approve", h.handleAdminDecision(decisionApprove))
		r.Post("/admin/reject", h.handleAdminDecision(decisionReject))
	})

	return r
}

// handleUnauthorized clears the stored token and bounces to the login screen.
// Every screen that makes a bearer call routes its 401s here.
func (h *Handler) handleUnauthorized(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.ClearToken(w, r); err != nil {
		h.logger.WarnContext(r.Context(), "clear token", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	if err := h.views.Render(w, name, data); err != nil {
		h.logger.ErrorContext(r.Context(), "render", "template", name, "error", err)
	}
}
