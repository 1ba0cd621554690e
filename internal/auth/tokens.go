package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind selects which bearer token a codec operation applies to.
type TokenKind string

const (
	// TokenAccess is the short-lived token authenticating individual requests.
	TokenAccess TokenKind = "access"
	// TokenRefresh is the longer-lived token used only to mint new access tokens.
	TokenRefresh TokenKind = "refresh"
)

// Codec sentinel errors. Callers must not learn more than expired vs invalid;
// the internal cause (signature mismatch, malformed payload) stays here.
var (
	ErrTokenExpired = errors.New("token is expired")
	ErrTokenInvalid = errors.New("invalid token")
)

const minTokenSecretLength = 32

// TokenConfig holds the signing material and lifetimes for both token kinds.
// The secrets must differ: compromise of one kind must not compromise the
// other.
type TokenConfig struct {
	AccessSecret  string        `env:"ACCESS_TOKEN_SECRET,required"`
	RefreshSecret string        `env:"REFRESH_TOKEN_SECRET,required"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"1h"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`
	Issuer        string        `env:"TOKEN_ISSUER" envDefault:"accounts"`
}

// TokenCodec signs and verifies the access and refresh bearer tokens as
// HS256 JWTs. It is purely functional over the injected config and clock.
type TokenCodec struct {
	cfg TokenConfig
	now func() time.Time
}

// TokenCodecOption configures a TokenCodec.
type TokenCodecOption func(*TokenCodec)

// WithTokenClock overrides the time source used for issuance and expiry
// checks. Intended for tests.
func WithTokenClock(now func() time.Time) TokenCodecOption {
	return func(c *TokenCodec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewTokenCodec validates the signing material and returns a codec.
func NewTokenCodec(cfg TokenConfig, opts ...TokenCodecOption) (*TokenCodec, error) {
	if len(cfg.AccessSecret) < minTokenSecretLength {
		return nil, fmt.Errorf("access token secret must be at least %d characters", minTokenSecretLength)
	}
	if len(cfg.RefreshSecret) < minTokenSecretLength {
		return nil, fmt.Errorf("refresh token secret must be at least %d characters", minTokenSecretLength)
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, errors.New("access and refresh token secrets must differ")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	c := &TokenCodec{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Issue signs a token of the given kind for the subject account ID.
func (c *TokenCodec) Issue(subject string, kind TokenKind) (string, error) {
	if subject == "" {
		return "", ErrTokenInvalid
	}

	secret, ttl, err := c.material(kind)
	if err != nil {
		return "", err
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    c.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify checks the signature and expiry of a token of the given kind and
// returns its subject. A token signed for the other kind fails verification
// because the secrets differ.
func (c *TokenCodec) Verify(tokenString string, kind TokenKind) (string, error) {
	secret, _, err := c.material(kind)
	if err != nil {
		return "", err
	}

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(tokenString, &claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if claims.Subject == "" {
		return "", ErrTokenInvalid
	}
	return claims.Subject, nil
}

// TTL returns the configured lifetime for the given kind. Used to keep
// cookie max-age aligned with token expiry.
func (c *TokenCodec) TTL(kind TokenKind) time.Duration {
	switch kind {
	case TokenRefresh:
		return c.cfg.RefreshTTL
	default:
		return c.cfg.AccessTTL
	}
}

func (c *TokenCodec) material(kind TokenKind) ([]byte, time.Duration, error) {
	switch kind {
	case TokenAccess:
		return []byte(c.cfg.AccessSecret), c.cfg.AccessTTL, nil
	case TokenRefresh:
		return []byte(c.cfg.RefreshSecret), c.cfg.RefreshTTL, nil
	default:
		return nil, 0, fmt.Errorf("unknown token kind %q", kind)
	}
}
