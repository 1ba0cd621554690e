// Package auth implements the authentication token lifecycle: issuance,
// verification, rotation, and invalidation of access and refresh tokens,
// plus single-use, time-boxed tokens for email verification and password
// recovery.
//
// The Service orchestrates the account state machine (Unregistered →
// PendingVerification → Verified, with an orthogonal LoggedOut ⇄ LoggedIn
// tracked by the stored refresh token). Each account stores at most one
// current refresh token; issuing a new one, logging out, or changing the
// password revokes the previous one. That single-slot storage is a product
// decision: logging in on a second device signs the first one out.
//
// Domain failures are returned as *Error values carrying the HTTP status
// they translate to; the HTTP layer maps them to the response envelope at a
// single boundary.
package auth
