package middleware

import (
	"crypto/tls"
	"net/http"
)

// TLSVerification returns a middleware that controls server certificate
// verification. With verify set the chain is returned untouched. Otherwise
// the next transport is cloned with InsecureSkipVerify enabled, keeping any
// other TLS settings it already had.
//
// Only *http.Transport can be reconfigured; any other RoundTripper is passed
// through as is. Check it with SupportsSkipVerify first.
func TLSVerification(verify bool) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		if verify {
			return next
		}

		transport, ok := next.(*http.Transport)
		if !ok {
			return next
		}

		transport = transport.Clone()
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{} //nolint:gosec // MinVersion left to the Go default
		}
		transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec // Opt-in for self-signed controller certificates

		return transport
	}
}

// SupportsSkipVerify reports whether TLSVerification(false) can take effect
// on rt.
func SupportsSkipVerify(rt http.RoundTripper) bool {
	_, ok := rt.(*http.Transport)
	return ok
}
