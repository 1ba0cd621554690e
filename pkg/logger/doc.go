// Package logger provides a small factory over log/slog with env-driven
// level and format selection, plus attribute helpers that keep log field
// names consistent across the service.
package logger
