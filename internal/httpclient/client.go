// Package httpclient assembles the *http.Client behind a Network API handle:
// the caller's client template, an optional timeout and the middleware chain.
package httpclient

import (
	"net/http"
	"time"
)

// Middleware wraps an http.RoundTripper.
type Middleware func(http.RoundTripper) http.RoundTripper

// Config describes the client Build produces.
type Config struct {
	// Template is copied, never modified. Nil means a zero http.Client.
	Template *http.Client

	// Timeout replaces the template's timeout when positive.
	Timeout time.Duration

	// Middleware wraps the template's transport. The first entry is
	// outermost: it sees the request first and the response last.
	Middleware []Middleware
}

// Build returns a new client whose transport is the template's base
// transport wrapped by cfg.Middleware. Clients built from the same template
// share its connection pool.
func Build(cfg Config) *http.Client {
	client := &http.Client{}
	if cfg.Template != nil {
		clone := *cfg.Template
		client = &clone
	}

	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}

	client.Transport = Chain(BaseTransport(cfg.Template), cfg.Middleware...)

	return client
}

// BaseTransport returns the transport requests from client end up on:
// client.Transport, or http.DefaultTransport when client or its transport
// is nil.
func BaseTransport(client *http.Client) http.RoundTripper {
	if client == nil || client.Transport == nil {
		return http.DefaultTransport
	}
	return client.Transport
}

// Chain wraps next so that middleware[0] is outermost.
//
//	Chain(t, A, B, C) == A(B(C(t)))
func Chain(next http.RoundTripper, middleware ...Middleware) http.RoundTripper {
	for i := len(middleware) - 1; i >= 0; i-- {
		next = middleware[i](next)
	}
	return next
}
