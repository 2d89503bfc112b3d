// Package server provides responder's HTTP server: a Gin engine with
// HTTP/2 cleartext support, panic recovery, request IDs, and request
// logging through the shared logging facility.
//
// Built-in middleware lives in server/middleware, route handlers in
// server/endpoint.
package server
