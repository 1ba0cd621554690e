package httpapi

import (
	"context"
	"log/slog"
	"time"

	"github.com/taskhive/accounts/internal/account"
	"github.com/taskhive/accounts/internal/auth"
	"github.com/taskhive/accounts/pkg/cookie"
	"github.com/taskhive/accounts/pkg/logger"
)

// AuthService is the slice of the lifecycle service the HTTP layer consumes.
// *auth.Service satisfies it; tests substitute a mock.
type AuthService interface {
	Register(ctx context.Context, params auth.RegisterParams) (*auth.RegisterResult, error)
	VerifyEmail(ctx context.Context, rawToken string) (*account.Account, error)
	Login(ctx context.Context, params auth.LoginParams) (*auth.Session, error)
	ResendVerification(ctx context.Context, params auth.ResendParams) (*auth.ResendResult, error)
	ForgotPassword(ctx context.Context, params auth.ForgotParams) (*auth.ForgotResult, error)
	ResetPassword(ctx context.Context, rawToken, newPassword string) (*account.Account, error)
	ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) (*account.Account, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	Authenticate(ctx context.Context, accessToken string) (*account.Account, error)
	GetProfile(ctx context.Context, accountID string) (*account.Account, error)
	UpdateProfile(ctx context.Context, accountID string, params auth.UpdateProfileParams) (*account.Account, error)
}

// Handler exposes the account lifecycle over HTTP.
type Handler struct {
	svc        AuthService
	cookies    *cookie.Manager
	logger     *slog.Logger
	health     func(ctx context.Context) error
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the handler logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.logger = log
		}
	}
}

// WithHealthcheck registers the readiness probe invoked by GET /healthz.
func WithHealthcheck(check func(ctx context.Context) error) Option {
	return func(h *Handler) {
		h.health = check
	}
}

// WithTokenTTLs sets the cookie lifetimes. They should match the lifetimes
// of the tokens they carry so the browser drops a cookie around the time its
// token stops verifying.
func WithTokenTTLs(access, refresh time.Duration) Option {
	return func(h *Handler) {
		if access > 0 {
			h.accessTTL = access
		}
		if refresh > 0 {
			h.refreshTTL = refresh
		}
	}
}

// NewHandler creates the HTTP handler for the account lifecycle API.
func NewHandler(svc AuthService, cookies *cookie.Manager, opts ...Option) *Handler {
	h := &Handler{
		svc:        svc,
		cookies:    cookies,
		logger:     logger.NewDiscard(),
		accessTTL:  time.Hour,
		refreshTTL: 7 * 24 * time.Hour,
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}
