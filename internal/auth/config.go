package auth

import "time"

// Config holds lifecycle policy for the auth service.
type Config struct {
	// BaseURL is the public base URL used to build verification and reset
	// links sent by email.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	// VerificationTokenTTL bounds how long an emailed verification link
	// stays valid.
	VerificationTokenTTL time.Duration `env:"VERIFICATION_TOKEN_TTL" envDefault:"24h"`

	// ResetTokenTTL bounds how long an emailed password-reset link stays
	// valid. Shorter than verification: a reset link grants account takeover.
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`

	// BcryptCost is the work factor for password digests.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// PasswordMinLength is the minimum accepted password length.
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH" envDefault:"8"`
}
