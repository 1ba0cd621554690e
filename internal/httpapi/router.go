package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes assembles the API router. All lifecycle endpoints live under
// /api/v1/auth; the health probe sits at the root for load balancers.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, envelope{
			StatusCode: http.StatusNotFound,
			Message:    "Resource not found",
			Success:    false,
		})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, envelope{
			StatusCode: http.StatusMethodNotAllowed,
			Message:    "Method not allowed",
			Success:    false,
		})
	})

	r.Get("/healthz", h.handleHealthz)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Get("/verify-email/{token}", h.handleVerifyEmail)
		r.Post("/login", h.handleLogin)
		r.Post("/resend-verification", h.handleResendVerification)
		r.Post("/forgot-password", h.handleForgotPassword)
		r.Post("/reset-password/{token}", h.handleResetPassword)
		r.Get("/refresh", h.handleRefresh)
		r.Post("/logout", h.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Post("/change-password", h.handleChangePassword)
			r.Get("/profile", h.handleGetProfile)
			r.Post("/profile", h.handleUpdateProfile)
		})
	})

	return r
}
