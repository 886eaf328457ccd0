// Package middleware provides the http.RoundTripper layers used by the API clients.
package middleware

import (
	"maps"
	"net/http"
)

// APIKeyHeader is the header carrying the Network API key.
const APIKeyHeader = "X-API-KEY"

// Auth returns a middleware that adds the API key header to all requests.
func Auth(apiKey string) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &headerTransport{
			next:      next,
			overwrite: http.Header{APIKeyHeader: []string{apiKey}},
		}
	}
}

// DefaultHeaders returns a middleware that sets each header in defaults
// unless the request already carries it.
func DefaultHeaders(defaults http.Header) func(http.RoundTripper) http.RoundTripper {
	defaults = defaults.Clone()

	return func(next http.RoundTripper) http.RoundTripper {
		return &headerTransport{
			next:     next,
			defaults: defaults,
		}
	}
}

type headerTransport struct {
	next      http.RoundTripper
	overwrite http.Header
	defaults  http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid modifying original
	req = cloneRequest(req)

	for name, values := range t.defaults {
		if req.Header.Get(name) == "" {
			req.Header[http.CanonicalHeaderKey(name)] = values
		}
	}

	for name, values := range t.overwrite {
		for i, value := range values {
			if i == 0 {
				req.Header.Set(name, value)
				continue
			}
			req.Header.Add(name, value)
		}
	}

	//nolint:wrapcheck // Middleware passes through errors from next handler in chain
	return t.next.RoundTrip(req)
}

// cloneRequest creates a shallow copy of the request with a cloned header map.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)
	return r
}
