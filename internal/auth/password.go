package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a one-way digest of the plaintext password.
// bcrypt embeds a per-call random salt, so hashing the same password twice
// yields different digests.
func HashPassword(plaintext string, cost int) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext), cost)
}

// VerifyPassword reports whether plaintext matches the stored digest.
// The comparison is constant-time within bcrypt; any error, including a
// malformed digest, is treated as a mismatch.
func VerifyPassword(digest []byte, plaintext string) bool {
	return bcrypt.CompareHashAndPassword(digest, []byte(plaintext)) == nil
}
