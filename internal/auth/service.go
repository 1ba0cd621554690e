package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taskhive/accounts/internal/account"
	"github.com/taskhive/accounts/pkg/email"
	"github.com/taskhive/accounts/pkg/logger"
)

// Store is the account persistence contract consumed by the service.
// *account.Repository satisfies it; tests substitute a mock.
type Store interface {
	Create(ctx context.Context, acc *account.Account) error
	Save(ctx context.Context, acc *account.Account) error
	FindByID(ctx context.Context, id string) (*account.Account, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*account.Account, error)
	FindByVerificationTokenHash(ctx context.Context, hash string) (*account.Account, error)
	FindByResetTokenHash(ctx context.Context, hash string) (*account.Account, error)
}

// Service orchestrates the account lifecycle: registration, verification,
// login, token refresh, logout, and password recovery.
type Service struct {
	store  Store
	mailer email.EmailSender
	codec  *TokenCodec
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithClock overrides the time source used for token expiries. Intended for
// tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates the lifecycle service.
func NewService(store Store, mailer email.EmailSender, codec *TokenCodec, cfg Config, opts ...Option) *Service {
	s := &Service{
		store:  store,
		mailer: mailer,
		codec:  codec,
		cfg:    cfg,
		logger: logger.NewDiscard(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RegisterParams are the inputs for self-registration.
type RegisterParams struct {
	Username string
	Email    string
	Password string
	Role     string
}

// RegisterResult reports the created account and whether the verification
// email was delivered. A failed delivery does not fail registration; the
// user can request a resend.
type RegisterResult struct {
	Account       *account.Account
	MailDelivered bool
}

// Register creates an unverified account and emails a verification link.
// The token fields are persisted before the mail is sent, so a delivery
// failure leaves the account able to verify via resend.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*RegisterResult, error) {
	username := strings.ToLower(strings.TrimSpace(params.Username))
	emailAddr := strings.ToLower(strings.TrimSpace(params.Email))

	if username == "" || emailAddr == "" || params.Password == "" {
		return nil, invalidInput("All fields are required")
	}

	role := account.Role(strings.ToLower(params.Role))
	if role == "" {
		role = account.RoleUser
	}
	if !allowedPublicRole(role) {
		return nil, invalidInput("Invalid role")
	}

	if _, err := s.store.FindByUsernameOrEmail(ctx, username, emailAddr); err == nil {
		return nil, conflict("User already exists")
	} else if !errors.Is(err, account.ErrNotFound) {
		return nil, unexpected(err)
	}

	digest, err := HashPassword(params.Password, s.cfg.BcryptCost)
	if err != nil {
		return nil, unexpected(err)
	}

	now := s.now()
	acc := account.New(username, emailAddr, digest, role, now)

	token, err := newEphemeralToken(now, s.cfg.VerificationTokenTTL)
	if err != nil {
		return nil, unexpected(err)
	}
	acc.SetVerificationToken(token.Hash, token.Expiry)

	if err := s.store.Create(ctx, acc); err != nil {
		if errors.Is(err, account.ErrDuplicate) {
			return nil, conflict("User already exists")
		}
		return nil, unexpected(err)
	}

	delivered := s.sendVerificationEmail(ctx, acc, token)

	return &RegisterResult{Account: acc, MailDelivered: delivered}, nil
}

// VerifyEmail consumes a verification token. Token fields are cleared only
// on success: an expired token is left in place so the account can still be
// verified through a resend.
func (s *Service) VerifyEmail(ctx context.Context, rawToken string) (*account.Account, error) {
	acc, err := s.store.FindByVerificationTokenHash(ctx, hashEphemeralToken(rawToken))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, notFound("Invalid verification token")
		}
		return nil, unexpected(err)
	}

	if acc.EmailVerificationTokenExpiry == nil || s.now().After(*acc.EmailVerificationTokenExpiry) {
		return nil, invalidInput("Verification token expired")
	}

	acc.ClearVerificationToken()
	acc.IsEmailVerified = true

	if err := s.store.Save(ctx, acc); err != nil {
		return nil, unexpected(err)
	}
	return acc, nil
}

// LoginParams identify the account by username or email plus password.
type LoginParams struct {
	Username string
	Email    string
	Password string
}

// Session is the result of a successful login.
type Session struct {
	Account      *account.Account
	AccessToken  string
	RefreshToken string
}

// Login authenticates a verified account and issues both bearer tokens.
// The refresh token is stored as the account's single current one, which
// revokes any refresh token issued by an earlier login.
func (s *Service) Login(ctx context.Context, params LoginParams) (*Session, error) {
	username := strings.ToLower(strings.TrimSpace(params.Username))
	emailAddr := strings.ToLower(strings.TrimSpace(params.Email))

	if username == "" && emailAddr == "" {
		return nil, invalidInput("Username or email is required")
	}
	if params.Password == "" {
		return nil, invalidInput("Password is required")
	}

	acc, err := s.store.FindByUsernameOrEmail(ctx, username, emailAddr)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, notFound("User does not exist")
		}
		return nil, unexpected(err)
	}

	if !VerifyPassword(acc.PasswordDigest, params.Password) {
		return nil, unauthorized("Invalid user credentials")
	}

	if !acc.IsEmailVerified {
		return nil, unauthorized("Verify your Email before login")
	}

	accessToken, err := s.codec.Issue(acc.ID, TokenAccess)
	if err != nil {
		return nil, unexpected(err)
	}
	refreshToken, err := s.codec.Issue(acc.ID, TokenRefresh)
	if err != nil {
		return nil, unexpected(err)
	}

	acc.RefreshToken = refreshToken
	if err := s.store.Save(ctx, acc); err != nil {
		return nil, unexpected(err)
	}

	return &Session{Account: acc, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ResendParams identify the account and re-confirm its password.
type ResendParams struct {
	Username string
	Email    string
	Password string
}

// ResendResult reports the account and delivery outcome of a resend.
type ResendResult struct {
	Account       *account.Account
	MailDelivered bool
}

// ResendVerification regenerates the verification token for an unverified
// account, overwriting the stored hash and expiry, and resends the email.
func (s *Service) ResendVerification(ctx context.Context, params ResendParams) (*ResendResult, error) {
	acc, err := s.findByIdentifier(ctx, params.Username, params.Email)
	if err != nil {
		return nil, err
	}

	if !VerifyPassword(acc.PasswordDigest, params.Password) {
		return nil, unauthorized("Wrong password")
	}

	if acc.IsEmailVerified {
		return nil, conflict("Email is already verified")
	}

	now := s.now()
	token, err := newEphemeralToken(now, s.cfg.VerificationTokenTTL)
	if err != nil {
		return nil, unexpected(err)
	}
	acc.SetVerificationToken(token.Hash, token.Expiry)

	if err := s.store.Save(ctx, acc); err != nil {
		return nil, unexpected(err)
	}

	delivered := s.sendVerificationEmail(ctx, acc, token)

	return &ResendResult{Account: acc, MailDelivered: delivered}, nil
}

// ForgotParams identify the account requesting a password reset.
type ForgotParams struct {
	Username string
	Email    string
}

// ForgotResult reports the account and delivery outcome of a reset request.
type ForgotResult struct {
	Account       *account.Account
	MailDelivered bool
}

// ForgotPassword generates a reset token, persists its hash and expiry, and
// emails the reset link. A second request overwrites the first token; only
// the most recent one is honored.
func (s *Service) ForgotPassword(ctx context.Context, params ForgotParams) (*ForgotResult, error) {
	acc, err := s.findByIdentifier(ctx, params.Username, params.Email)
	if err != nil {
		return nil, err
	}

	now := s.now()
	token, err := newEphemeralToken(now, s.cfg.ResetTokenTTL)
	if err != nil {
		return nil, unexpected(err)
	}
	acc.SetResetToken(token.Hash, token.Expiry)

	if err := s.store.Save(ctx, acc); err != nil {
		return nil, unexpected(err)
	}

	delivered := true
	link := fmt.Sprintf("%s/api/v1/auth/reset-password/%s", strings.TrimRight(s.cfg.BaseURL, "/"), token.Raw)
	body, err := renderResetEmail(acc.Username, link, token.Expiry)
	if err == nil {
		err = s.mailer.SendEmail(ctx, email.SendEmailParams{
			SendTo:   acc.Email,
			Subject:  "Reset Password link",
			BodyHTML: body,
			Tag:      "password-reset",
		})
	}
	if err != nil {
		delivered = false
		s.logger.Error("failed to send password reset email",
			logger.AccountID(acc.ID),
			logger.Error(err),
			logger.Component("auth"),
		)
	}

	return &ForgotResult{Account: acc, MailDelivered: delivered}, nil
}

// ResetPassword consumes a reset token and sets a new password digest.
// The token pair is cleared on success only; an expired token stays in place
// until overwritten by a newer request.
func (s *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) (*account.Account, error) {
	if len(newPassword) < s.cfg.PasswordMinLength {
		return nil, invalidInput(fmt.Sprintf("New password must be at least %d characters long", s.cfg.PasswordMinLength))
	}

	acc, err := s.store.FindByResetTokenHash(ctx, hashEphemeralToken(rawToken))
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, notFound("Invalid or expired token")
		}
		return nil, unexpected(err)
	}

	if acc.ForgotPasswordTokenExpiry == nil || s.now().After(*acc.ForgotPasswordTokenExpiry) {
		return nil, invalidInput("Token has expired")
	}

	digest, err := HashPassword(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return nil, unexpected(err)
	}

	acc.ClearResetToken()
	acc.PasswordDigest = digest

	if err := s.store.Save(ctx, acc); err != nil {
		return nil, unexpected(err)
	}
	return acc, nil
}

// ChangePassword rotates the password of an authenticated account and clears
// the stored refresh token, forcing re-login everywhere.
func (s *Service) ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) (*account.Account, error) {
	if oldPassword == "" || newPassword == "" {
		return nil, invalidInput("Both old password and new password are required")
	}
	if oldPassword == newPassword {
		return nil, invalidInput("New password cannot be the same as the old password")
	}
	if len(newPassword) < s.cfg.PasswordMinLength {
		return nil, invalidInput(fmt.Sprintf("New password must be at least %d characters long", s.cfg.PasswordMinLength))
	}

	acc, err := s.store.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, notFound("Authenticated user not found")
		}
		return nil, unexpected(err)
	}

	if !VerifyPassword(acc.PasswordDigest, oldPassword) {
		return nil, unauthorized("Invalid user credentials")
	}

	digest, err := HashPassword(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return nil, unexpected(err)
	}

	acc.PasswordDigest = digest
	acc.RefreshToken = ""

	if err := s.store.Save(ctx, acc); err != nil {
		return nil, unexpected(err)
	}
	return acc, nil
}

// Refresh mints a new access token from a valid refresh token. The presented
// token must match the stored current one, so a token revoked by logout,
// password change, or a newer login is rejected even before its expiry.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", unauthorized("Login required")
	}

	subject, err := s.codec.Verify(refreshToken, TokenRefresh)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return "", unauthorized("Refresh token expired. Please log in again")
		}
		return "", unauthorized("Invalid refresh token")
	}

	acc, err := s.store.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return "", unauthorized("Invalid refresh token")
		}
		return "", unexpected(err)
	}

	if acc.RefreshToken != refreshToken {
		return "", unauthorized("Invalid refresh token")
	}

	accessToken, err := s.codec.Issue(acc.ID, TokenAccess)
	if err != nil {
		return "", unexpected(err)
	}
	return accessToken, nil
}

// Logout clears the stored refresh token. The HTTP layer clears the cookies
// unconditionally; the error here only shapes the response body.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return invalidInput("No active session or already logged out")
	}

	subject, err := s.codec.Verify(refreshToken, TokenRefresh)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return unauthorized("Refresh token expired. Please log in again")
		}
		return unauthorized("Invalid refresh token. Please log in again")
	}

	acc, err := s.store.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return unauthorized("Invalid refresh token")
		}
		return unexpected(err)
	}

	acc.RefreshToken = ""
	if err := s.store.Save(ctx, acc); err != nil {
		return unexpected(err)
	}
	return nil
}

// Authenticate is the request authentication gate. Every failure collapses
// to the same Unauthorized so callers cannot probe which check failed.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*account.Account, error) {
	if accessToken == "" {
		return nil, unauthorized("User not logged in")
	}

	subject, err := s.codec.Verify(accessToken, TokenAccess)
	if err != nil {
		return nil, unauthorized("Invalid token")
	}

	acc, err := s.store.FindByID(ctx, subject)
	if err != nil {
		return nil, unauthorized("Invalid token")
	}

	return acc, nil
}

// GetProfile returns the account for an authenticated caller.
func (s *Service) GetProfile(ctx context.Context, accountID string) (*account.Account, error) {
	acc, err := s.store.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, unexpected(err)
	}
	return acc, nil
}

// UpdateProfileParams carry the mutable profile fields. Empty fields are
// left unchanged.
type UpdateProfileParams struct {
	Name   string
	Avatar string
}

// UpdateProfile mutates name and avatar. A request that changes nothing is
// rejected rather than silently succeeding.
func (s *Service) UpdateProfile(ctx context.Context, accountID string, params UpdateProfileParams) (*account.Account, error) {
	acc, err := s.store.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, notFound("User not found")
		}
		return nil, unexpected(err)
	}

	updated := false
	if params.Name != "" && params.Name != acc.Name {
		acc.Name = params.Name
		updated = true
	}
	if params.Avatar != "" && params.Avatar != acc.Avatar {
		acc.Avatar = params.Avatar
		updated = true
	}

	if !updated {
		return nil, invalidInput("No valid data provided for profile update")
	}

	if err := s.store.Save(ctx, acc); err != nil {
		return nil, unexpected(err)
	}
	return acc, nil
}

func (s *Service) findByIdentifier(ctx context.Context, username, emailAddr string) (*account.Account, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	if username == "" && emailAddr == "" {
		return nil, invalidInput("Username or email is required")
	}

	acc, err := s.store.FindByUsernameOrEmail(ctx, username, emailAddr)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return nil, notFound("User does not exist")
		}
		return nil, unexpected(err)
	}
	return acc, nil
}

func (s *Service) sendVerificationEmail(ctx context.Context, acc *account.Account, token ephemeralToken) bool {
	link := fmt.Sprintf("%s/api/v1/auth/verify-email/%s", strings.TrimRight(s.cfg.BaseURL, "/"), token.Raw)

	body, err := renderVerificationEmail(acc.Username, link, token.Expiry)
	if err == nil {
		err = s.mailer.SendEmail(ctx, email.SendEmailParams{
			SendTo:   acc.Email,
			Subject:  "Email Verification",
			BodyHTML: body,
			Tag:      "verify-email",
		})
	}
	if err != nil {
		s.logger.Error("failed to send verification email",
			logger.AccountID(acc.ID),
			logger.Error(err),
			logger.Component("auth"),
		)
		return false
	}
	return true
}

func allowedPublicRole(role account.Role) bool {
	for _, r := range account.PublicRoles {
		if role == r {
			return true
		}
	}
	return false
}
