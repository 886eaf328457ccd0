package middleware_test

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-unifi-network/internal/middleware"
	"github.com/lexfrei/go-unifi-network/observability"
)

func TestAuth(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get("X-API-KEY")
		if apiKey != "test-key-123" {
			t.Errorf("X-API-KEY = %s, want %s", apiKey, "test-key-123")
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := middleware.Auth("test-key-123")(http.DefaultTransport)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("X-API-KEY", "caller-value")

	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want %d", resp.StatusCode, http.StatusOK)
	}
}

func TestAuthDoesNotModifyOriginalRequest(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := middleware.Auth("test-key")(http.DefaultTransport)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	originalHeaders := len(req.Header)

	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	defer resp.Body.Close()

	if len(req.Header) != originalHeaders {
		t.Errorf("Original request was modified: headers = %d, want %d", len(req.Header), originalHeaders)
	}
}

func TestDefaultHeaders(t *testing.T) {
	t.Parallel()

	var accept, contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		contentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := middleware.DefaultHeaders(http.Header{
		"Accept":       []string{"application/json"},
		"Content-Type": []string{"application/json"},
	})(http.DefaultTransport)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("Content-Type", "text/plain")

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", accept)
	assert.Equal(t, "text/plain", contentType, "request headers win over defaults")
}

func TestTLSVerification(t *testing.T) {
	t.Parallel()

	t.Run("verify keeps transport", func(t *testing.T) {
		t.Parallel()

		base := &http.Transport{}
		transport := middleware.TLSVerification(true)(base)

		assert.Same(t, base, transport)
	})

	t.Run("skip verify clones transport", func(t *testing.T) {
		t.Parallel()

		base := &http.Transport{
			TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
		}
		transport := middleware.TLSVerification(false)(base)

		httpTransport, ok := transport.(*http.Transport)
		require.True(t, ok, "Transport is not *http.Transport")
		require.NotSame(t, base, httpTransport)

		require.NotNil(t, httpTransport.TLSClientConfig)
		assert.True(t, httpTransport.TLSClientConfig.InsecureSkipVerify)
		assert.Equal(t, uint16(tls.VersionTLS12), httpTransport.TLSClientConfig.MinVersion)
		assert.False(t, base.TLSClientConfig.InsecureSkipVerify, "original transport must not change")
	})

	t.Run("skip verify against self-signed server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		strict := middleware.TLSVerification(true)(http.DefaultTransport.(*http.Transport).Clone())
		req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
		_, err := strict.RoundTrip(req)
		require.Error(t, err, "self-signed certificate must be rejected when verifying")

		insecure := middleware.TLSVerification(false)(http.DefaultTransport)
		req, _ = http.NewRequest(http.MethodGet, server.URL, nil)
		resp, err := insecure.RoundTrip(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("custom round tripper passes through", func(t *testing.T) {
		t.Parallel()

		custom := roundTripperFunc(func(*http.Request) (*http.Response, error) { return nil, nil })
		transport := middleware.TLSVerification(false)(custom)

		_, ok := transport.(roundTripperFunc)
		assert.True(t, ok)
	})
}

func TestSupportsSkipVerify(t *testing.T) {
	t.Parallel()

	custom := roundTripperFunc(func(*http.Request) (*http.Response, error) { return nil, nil })

	assert.True(t, middleware.SupportsSkipVerify(http.DefaultTransport))
	assert.True(t, middleware.SupportsSkipVerify(&http.Transport{}))
	assert.False(t, middleware.SupportsSkipVerify(custom))
}

type recordingMetrics struct {
	requests []string
	errors   []string
}

func (m *recordingMetrics) RecordHTTPRequest(method, path string, statusCode int, _ time.Duration) {
	m.requests = append(m.requests, method+" "+path+" "+http.StatusText(statusCode))
}

func (m *recordingMetrics) RecordError(operation, errorType string) {
	m.errors = append(m.errors, operation+":"+errorType)
}

func TestObservability(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	metrics := &recordingMetrics{}
	transport := middleware.Observability(observability.NoopLogger(), metrics)(http.DefaultTransport)

	req, _ := http.NewRequest(http.MethodGet, server.URL+"/v1/sites/88f7af54-98f8-306a-a1c7-c9349722b1f6/devices", nil)
	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, []string{"GET /v1/sites/:id/devices Unauthorized"}, metrics.requests)
	assert.Empty(t, metrics.errors)
}

func TestObservabilityTransportError(t *testing.T) {
	t.Parallel()

	metrics := &recordingMetrics{}
	failing := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	transport := middleware.Observability(nil, metrics)(failing)

	req, _ := http.NewRequest(http.MethodGet, "http://unifi.invalid/v1/info", nil)
	_, err := transport.RoundTrip(req) //nolint:bodyclose // Response is nil on error
	require.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Empty(t, metrics.requests)
	assert.Equal(t, []string{"http_request:DeadlineExceeded"}, metrics.errors)
}

func TestObservabilityWithNilParams(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// Should use no-op implementations
	transport := middleware.Observability(nil, nil)(http.DefaultTransport)

	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	defer resp.Body.Close()
}

// roundTripperFunc is an adapter to use functions as http.RoundTripper
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
