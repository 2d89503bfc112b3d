// Package errors provides structured application errors for responder:
// error values carrying a machine-readable code, a client-facing
// message, and an HTTP status mapping.
package errors
