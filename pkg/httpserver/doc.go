// Package httpserver wraps net/http's Server with environment-driven
// configuration and graceful shutdown on context cancellation or
// SIGINT/SIGTERM.
package httpserver
