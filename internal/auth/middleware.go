package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/modamall/backoffice/internal/platform/httpx"
	"github.com/modamall/backoffice/internal/shared"
)

// RequireSignIn resolves the bearer token to an identity and attaches it to
// the request context. Requests without a live session are rejected.
func RequireSignIn(logger *slog.Logger, sessions *shared.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := sessions.Resolve(r.Context(), BearerToken(r))
			if err != nil {
				if !errors.Is(err, shared.ErrSessionNotFound) {
					logger.Error("resolve session", slog.Any("error", err))
				}
				httpx.RespondError(w, ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(shared.ContextWithIdentity(r.Context(), id)))
		})
	}
}
