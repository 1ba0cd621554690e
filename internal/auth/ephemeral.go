package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const ephemeralTokenBytes = 32

// ephemeralToken is a single-use, time-boxed random value for out-of-band
// confirmation (email verification, password reset). Only Hash is ever
// persisted; Raw travels inside the emailed link and is never stored or
// logged.
type ephemeralToken struct {
	Raw    string
	Hash   string
	Expiry time.Time
}

// newEphemeralToken generates a fresh token expiring at now+ttl.
func newEphemeralToken(now time.Time, ttl time.Duration) (ephemeralToken, error) {
	buf := make([]byte, ephemeralTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return ephemeralToken{}, fmt.Errorf("failed to generate token: %w", err)
	}

	raw := hex.EncodeToString(buf)
	return ephemeralToken{
		Raw:    raw,
		Hash:   hashEphemeralToken(raw),
		Expiry: now.Add(ttl),
	}, nil
}

// hashEphemeralToken returns the hex SHA-256 digest of a raw token, the form
// under which tokens are stored and looked up. SHA-256 rather than a slow
// password KDF: the input is 256 bits of entropy, not a guessable secret.
func hashEphemeralToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
