package middleware

import (
	"log/slog"
	"net/http"

	"vanta/internal/session"
	"vanta/pkg/requestcontext"
)

// RequireLogin gates screens that need an authenticated user. The check is
// purely client-side presence (token cookie plus a user id in the draft); the
// backend still rejects calls carrying a bad token.
func RequireLogin(sessions *session.Manager, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			draft := sessions.Draft(r.Context(), r)
			if !sessions.LoggedIn(r) || draft.UserID == "" {
				logger.InfoContext(r.Context(), "login required",
					"path", r.URL.Path,
					"request_id", requestcontext.RequestID(r.Context()),
				)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			ctx := requestcontext.WithUserID(r.Context(), draft.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
