package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAccessSecret  = "access-secret-0123456789abcdef0123456789"
	testRefreshSecret = "refresh-secret-0123456789abcdef012345678"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		AccessTTL:     time.Hour,
		RefreshTTL:    7 * 24 * time.Hour,
		Issuer:        "accounts-test",
	}
}

func TestNewTokenCodec(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid config", func(t *testing.T) {
		t.Parallel()

		codec, err := NewTokenCodec(testTokenConfig())
		require.NoError(t, err)
		assert.NotNil(t, codec)
	})

	t.Run("rejects short secrets", func(t *testing.T) {
		t.Parallel()

		cfg := testTokenConfig()
		cfg.AccessSecret = "short"
		_, err := NewTokenCodec(cfg)
		assert.Error(t, err)
	})

	t.Run("rejects identical secrets", func(t *testing.T) {
		t.Parallel()

		cfg := testTokenConfig()
		cfg.RefreshSecret = cfg.AccessSecret
		_, err := NewTokenCodec(cfg)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive lifetimes", func(t *testing.T) {
		t.Parallel()

		cfg := testTokenConfig()
		cfg.AccessTTL = 0
		_, err := NewTokenCodec(cfg)
		assert.Error(t, err)
	})
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := NewTokenCodec(testTokenConfig())
	require.NoError(t, err)

	for _, kind := range []TokenKind{TokenAccess, TokenRefresh} {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			token, err := codec.Issue("account-42", kind)
			require.NoError(t, err)
			require.NotEmpty(t, token)

			subject, err := codec.Verify(token, kind)
			require.NoError(t, err)
			assert.Equal(t, "account-42", subject)
		})
	}
}

func TestTokenCodec_Verify(t *testing.T) {
	t.Parallel()

	codec, err := NewTokenCodec(testTokenConfig())
	require.NoError(t, err)

	t.Run("access token does not verify as refresh", func(t *testing.T) {
		t.Parallel()

		token, err := codec.Issue("account-42", TokenAccess)
		require.NoError(t, err)

		_, err = codec.Verify(token, TokenRefresh)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("refresh token does not verify as access", func(t *testing.T) {
		t.Parallel()

		token, err := codec.Issue("account-42", TokenRefresh)
		require.NoError(t, err)

		_, err = codec.Verify(token, TokenAccess)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("tampered token is invalid", func(t *testing.T) {
		t.Parallel()

		token, err := codec.Issue("account-42", TokenAccess)
		require.NoError(t, err)

		tampered := token[:len(token)-2] + "xx"
		_, err = codec.Verify(tampered, TokenAccess)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("malformed token is invalid", func(t *testing.T) {
		t.Parallel()

		_, err := codec.Verify("not.a.jwt", TokenAccess)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("empty subject is rejected at issue", func(t *testing.T) {
		t.Parallel()

		_, err := codec.Issue("", TokenAccess)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestTokenCodec_Expiry(t *testing.T) {
	t.Parallel()

	issuedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := issuedAt

	codec, err := NewTokenCodec(testTokenConfig(), WithTokenClock(func() time.Time { return current }))
	require.NoError(t, err)

	token, err := codec.Issue("account-42", TokenAccess)
	require.NoError(t, err)

	// Still valid just before the TTL elapses.
	current = issuedAt.Add(time.Hour - time.Minute)
	subject, err := codec.Verify(token, TokenAccess)
	require.NoError(t, err)
	assert.Equal(t, "account-42", subject)

	// Expired once past issuance+TTL.
	current = issuedAt.Add(time.Hour + time.Minute)
	_, err = codec.Verify(token, TokenAccess)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenCodec_TTL(t *testing.T) {
	t.Parallel()

	codec, err := NewTokenCodec(testTokenConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour, codec.TTL(TokenAccess))
	assert.Equal(t, 7*24*time.Hour, codec.TTL(TokenRefresh))
}
