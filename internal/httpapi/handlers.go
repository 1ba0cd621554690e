package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taskhive/accounts/internal/auth"
	"github.com/taskhive/accounts/pkg/validator"
)

const maxRequestBody = 1 << 20 // 1 MiB

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &auth.Error{Status: http.StatusBadRequest, Message: "Invalid request body"}
	}
	return nil
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := validator.Apply(
		validator.RequiredString("username", req.Username),
		validator.MaxLenString("username", req.Username, 64),
		validator.RequiredString("email", req.Email),
		validator.ValidEmail("email", req.Email),
		validator.RequiredString("password", req.Password),
		validator.MinLenString("password", req.Password, 8),
	); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.svc.Register(r.Context(), auth.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusCreated, "User registered successfully. Please verify your email.", map[string]any{
		"user":      result.Account.Profile(),
		"emailSent": result.MailDelivered,
	})
}

func (h *Handler) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.VerifyEmail(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, "Email verified successfully", map[string]any{
		"user": acc.Profile(),
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	session, err := h.svc.Login(r.Context(), auth.LoginParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.setSessionCookies(w, session)

	respond(w, http.StatusOK, "User logged in successfully", map[string]any{
		"user":         session.Account.Profile(),
		"accessToken":  session.AccessToken,
		"refreshToken": session.RefreshToken,
	})
}

type resendRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleResendVerification(w http.ResponseWriter, r *http.Request) {
	var req resendRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.svc.ResendVerification(r.Context(), auth.ResendParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, "Verification email sent", map[string]any{
		"emailSent": result.MailDelivered,
	})
}

type forgotPasswordRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (h *Handler) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	result, err := h.svc.ForgotPassword(r.Context(), auth.ForgotParams{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, "Password reset link sent to your email", map[string]any{
		"emailSent": result.MailDelivered,
	})
}

type resetPasswordRequest struct {
	Password string `json:"password"`
}

func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	if _, err := h.svc.ResetPassword(r.Context(), chi.URLParam(r, "token"), req.Password); err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, "Password reset successful", nil)
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (h *Handler) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	acc, ok := accountFromContext(r.Context())
	if !ok {
		h.respondError(w, r, &auth.Error{Status: http.StatusUnauthorized, Message: "User not logged in"})
		return
	}

	var req changePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	if _, err := h.svc.ChangePassword(r.Context(), acc.ID, req.OldPassword, req.NewPassword); err != nil {
		h.respondError(w, r, err)
		return
	}

	// The stored refresh token was revoked, so the session cookies are dead
	// weight at best and confusing at worst.
	h.clearSessionCookies(w)

	respond(w, http.StatusOK, "Password changed successfully. Please log in again.", nil)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	acc, ok := accountFromContext(r.Context())
	if !ok {
		h.respondError(w, r, &auth.Error{Status: http.StatusUnauthorized, Message: "User not logged in"})
		return
	}

	profile, err := h.svc.GetProfile(r.Context(), acc.ID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, "Profile fetched successfully", map[string]any{
		"user": profile.Profile(),
	})
}

type updateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	acc, ok := accountFromContext(r.Context())
	if !ok {
		h.respondError(w, r, &auth.Error{Status: http.StatusUnauthorized, Message: "User not logged in"})
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	updated, err := h.svc.UpdateProfile(r.Context(), acc.ID, auth.UpdateProfileParams{
		Name:   req.Name,
		Avatar: req.Avatar,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, "Profile updated successfully", map[string]any{
		"user": updated.Profile(),
	})
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request) {
	accessToken, err := h.svc.Refresh(r.Context(), h.refreshTokenFromRequest(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.setAccessCookie(w, accessToken)

	respond(w, http.StatusOK, "Access token refreshed", map[string]any{
		"accessToken": accessToken,
	})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Logout(r.Context(), h.refreshTokenFromRequest(r))

	// Cookies are cleared regardless: even when the server-side state could
	// not be touched, the client walks away signed out.
	h.clearSessionCookies(w)

	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respond(w, http.StatusOK, "Logged out successfully", nil)
}

func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health(r.Context()); err != nil {
			h.respondError(w, r, &auth.Error{Status: http.StatusServiceUnavailable, Message: "Service unavailable"})
			return
		}
	}
	respond(w, http.StatusOK, "OK", nil)
}
