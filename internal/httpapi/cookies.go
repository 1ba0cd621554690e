package httpapi

import (
	"net/http"

	"github.com/taskhive/accounts/internal/auth"
	"github.com/taskhive/accounts/pkg/cookie"
)

// Cookie names match what browser clients of the original API expect.
const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

func (h *Handler) setSessionCookies(w http.ResponseWriter, session *auth.Session) {
	h.setAccessCookie(w, session.AccessToken)
	h.cookies.Set(w, refreshTokenCookie, session.RefreshToken,
		cookie.WithMaxAge(int(h.refreshTTL.Seconds())),
	)
}

func (h *Handler) setAccessCookie(w http.ResponseWriter, accessToken string) {
	h.cookies.Set(w, accessTokenCookie, accessToken,
		cookie.WithMaxAge(int(h.accessTTL.Seconds())),
	)
}

// clearSessionCookies expires both token cookies. Called unconditionally on
// logout so a client with a stale or garbage refresh token still ends up
// signed out locally.
func (h *Handler) clearSessionCookies(w http.ResponseWriter) {
	h.cookies.Delete(w, accessTokenCookie)
	h.cookies.Delete(w, refreshTokenCookie)
}

// accessTokenFromRequest prefers the cookie and falls back to a bearer
// Authorization header for non-browser clients.
func (h *Handler) accessTokenFromRequest(r *http.Request) string {
	if value, err := h.cookies.Get(r, accessTokenCookie); err == nil && value != "" {
		return value
	}
	return bearerToken(r)
}

func (h *Handler) refreshTokenFromRequest(r *http.Request) string {
	value, err := h.cookies.Get(r, refreshTokenCookie)
	if err != nil {
		return ""
	}
	return value
}

func bearerToken(r *http.Request) string {
	const prefix = "Bearer "
	header := r.Header.Get("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}
