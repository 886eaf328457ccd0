// Package testutil provides common testing utilities and helpers.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// APIKeyHeader is the header the mock servers check for the API key.
const APIKeyHeader = "X-API-KEY"

// Request is a captured copy of a request received by a mock server.
type Request struct {
	Method string
	Path   string
	Query  map[string][]string
	Header http.Header
	Body   []byte
}

// Recorder collects the requests received by a mock server.
type Recorder struct {
	mu       sync.Mutex
	requests []Request
}

// Requests returns a snapshot of the captured requests.
func (r *Recorder) Requests() []Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Request(nil), r.requests...)
}

// Last returns the most recent request. It fails the test if none was captured.
func (r *Recorder) Last(t *testing.T) Request {
	t.Helper()

	requests := r.Requests()
	require.NotEmpty(t, requests, "mock server received no requests")

	return requests[len(requests)-1]
}

func (r *Recorder) record(t *testing.T, req *http.Request) {
	t.Helper()

	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		assert.NoError(t, err, "Failed to read request body")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = append(r.requests, Request{
		Method: req.Method,
		Path:   req.URL.Path,
		Query:  req.URL.Query(),
		Header: req.Header.Clone(),
		Body:   body,
	})
}

// NewMockServer creates a test HTTP server with predefined response.
// It validates the request path and API key header, then returns the specified response.
func NewMockServer(t *testing.T, expectedPath, apiKey, responseBody string, statusCode int) (*httptest.Server, *Recorder) {
	t.Helper()

	recorder := &Recorder{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder.record(t, r)

		assert.Equal(t, expectedPath, r.URL.Path, "Request path should match expected")

		if apiKey != "" {
			assert.Equal(t, apiKey, r.Header.Get(APIKeyHeader), "X-API-KEY header should be set")
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, err := w.Write([]byte(responseBody))
		assert.NoError(t, err, "Failed to write response body")
	}))

	return server, recorder
}

// NewMockServerWithHandler creates a test HTTP server with custom handler.
// Use this for more complex test scenarios that need custom request handling.
func NewMockServerWithHandler(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(handler)
}

// NewPagedServer serves items as a paginated collection at path, slicing by
// the offset and limit query parameters the way the controller does.
func NewPagedServer(t *testing.T, path string, items []json.RawMessage) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			t.Errorf("Unexpected request path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}

		offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
		assert.NoError(t, err, "offset query parameter should be an integer")
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		assert.NoError(t, err, "limit query parameter should be an integer")

		start := min(max(offset, 0), len(items))
		end := min(start+max(limit, 0), len(items))
		data := items[start:end]

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(map[string]any{
			"offset":     offset,
			"limit":      limit,
			"count":      len(data),
			"totalCount": len(items),
			"data":       data,
		})
		assert.NoError(t, err, "Failed to write response body")
	}))
}
