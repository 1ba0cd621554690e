package account

import (
	"time"

	"github.com/google/uuid"
)

// Role is the single authorization tag carried by an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// PublicRoles are the roles self-registration may request.
var PublicRoles = []Role{RoleUser}

// Account is the identity record persisted in the accounts collection.
//
// The password digest and all token material are excluded from JSON so an
// accidentally serialized Account never leaks credentials; API responses use
// the Profile projection instead.
type Account struct {
	ID             string `bson:"_id" json:"id"`
	Username       string `bson:"username" json:"username"`
	Email          string `bson:"email" json:"email"`
	PasswordDigest []byte `bson:"password_digest" json:"-"`
	Role           Role   `bson:"role" json:"role"`

	Name   string `bson:"name,omitempty" json:"name,omitempty"`
	Avatar string `bson:"avatar,omitempty" json:"avatar,omitempty"`

	IsEmailVerified bool `bson:"is_email_verified" json:"isEmailVerified"`

	// Verification and reset token pairs: hash and expiry are set together
	// and cleared together. The raw token values are never stored.
	EmailVerificationTokenHash   string     `bson:"email_verification_token_hash,omitempty" json:"-"`
	EmailVerificationTokenExpiry *time.Time `bson:"email_verification_token_expiry,omitempty" json:"-"`
	ForgotPasswordTokenHash      string     `bson:"forgot_password_token_hash,omitempty" json:"-"`
	ForgotPasswordTokenExpiry    *time.Time `bson:"forgot_password_token_expiry,omitempty" json:"-"`

	// RefreshToken holds the single current refresh token. Present only for
	// accounts that are logged in somewhere; issuing a new one overwrites
	// the previous, which acts as a revocation list of size one.
	RefreshToken string `bson:"refresh_token,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// New returns an unverified account with a fresh identifier.
func New(username, email string, digest []byte, role Role, now time.Time) *Account {
	return &Account{
		ID:             uuid.NewString(),
		Username:       username,
		Email:          email,
		PasswordDigest: digest,
		Role:           role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// SetVerificationToken stores a new verification token hash with its expiry,
// replacing any previous one.
func (a *Account) SetVerificationToken(hash string, expiry time.Time) {
	a.EmailVerificationTokenHash = hash
	a.EmailVerificationTokenExpiry = &expiry
}

// ClearVerificationToken removes both fields of the verification pair.
func (a *Account) ClearVerificationToken() {
	a.EmailVerificationTokenHash = ""
	a.EmailVerificationTokenExpiry = nil
}

// SetResetToken stores a new password-reset token hash with its expiry,
// replacing any previous one.
func (a *Account) SetResetToken(hash string, expiry time.Time) {
	a.ForgotPasswordTokenHash = hash
	a.ForgotPasswordTokenExpiry = &expiry
}

// ClearResetToken removes both fields of the reset pair.
func (a *Account) ClearResetToken() {
	a.ForgotPasswordTokenHash = ""
	a.ForgotPasswordTokenExpiry = nil
}

// Profile is the public projection of an account returned by the API.
type Profile struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Email           string `json:"email"`
	Name            string `json:"name,omitempty"`
	Avatar          string `json:"avatar,omitempty"`
	Role            Role   `json:"role"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

// Profile returns the public projection of the account.
func (a *Account) Profile() Profile {
	return Profile{
		ID:              a.ID,
		Username:        a.Username,
		Email:           a.Email,
		Name:            a.Name,
		Avatar:          a.Avatar,
		Role:            a.Role,
		IsEmailVerified: a.IsEmailVerified,
	}
}
