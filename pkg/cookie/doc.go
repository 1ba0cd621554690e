// Package cookie provides an HTTP cookie manager with secure defaults.
//
// The Manager carries a baseline of attributes (http-only, SameSite=Strict,
// path "/") so every call site sets cookies the same way; per-call options
// adjust only what differs, such as max-age. Values are treated as opaque:
// the tokens this service stores in cookies are self-authenticating, so the
// manager does no signing or encryption of its own.
package cookie
