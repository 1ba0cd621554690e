// Package validator provides rule-based request validation.
//
// Rules are small closures paired with the error to report on failure;
// Apply runs them and accumulates every failure instead of stopping at the
// first, so API consumers see all field problems in one response.
//
//	err := validator.Apply(
//		validator.RequiredString("username", req.Username),
//		validator.ValidEmail("email", req.Email),
//		validator.MinLenString("password", req.Password, 8),
//	)
//
// A non-nil result is a ValidationErrors value; Extract recovers it from a
// wrapped error chain for translation into field-level response payloads.
package validator
