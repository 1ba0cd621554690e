package httpapi

import (
	"context"
	"net/http"

	"github.com/taskhive/accounts/internal/account"
)

type contextKey struct{ name string }

var accountContextKey = contextKey{"account"}

// requireAuth gates protected routes. It authenticates the request's access
// token and stores the loaded account in the request context; every failure
// surfaces as the same unauthorized response.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acc, err := h.svc.Authenticate(r.Context(), h.accessTokenFromRequest(r))
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), accountContextKey, acc)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accountFromContext returns the account placed there by requireAuth.
// The bool is false only when the middleware did not run, which is a routing
// mistake rather than an authentication failure.
func accountFromContext(ctx context.Context) (*account.Account, bool) {
	acc, ok := ctx.Value(accountContextKey).(*account.Account)
	return acc, ok
}
