package response

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Error kinds. Every error returned by the API clients matches exactly one
// of these with errors.Is, or is an *APIError (match with errors.As).
var (
	// ErrTransport marks network, TLS and connection failures. The
	// underlying error stays in the chain.
	ErrTransport = errors.New("transport error")

	// ErrMalformedURL marks a base URL or request URL that fails to parse.
	ErrMalformedURL = errors.New("malformed URL")

	// ErrConfiguration marks an invalid client configuration.
	ErrConfiguration = errors.New("configuration error")

	// ErrDeserialization marks a response body that does not match the
	// expected shape.
	ErrDeserialization = errors.New("deserialization error")
)

// WithKind attaches kind to err so that errors.Is(result, kind) holds with
// both the standard library and cockroachdb/errors, while err stays
// reachable through Unwrap.
func WithKind(err, kind error) error {
	if err == nil {
		return nil
	}
	return &kindError{cause: err, kind: kind}
}

type kindError struct {
	cause error
	kind  error
}

func (e *kindError) Error() string { return e.cause.Error() }

func (e *kindError) Unwrap() error { return e.cause }

func (e *kindError) Is(target error) bool { return target == e.kind }

// ErrorResponse is the JSON error envelope returned by the API on non-2xx statuses.
type ErrorResponse struct {
	StatusCode  int    `json:"statusCode"`
	StatusName  string `json:"statusName,omitempty"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp,omitempty"`
	RequestPath string `json:"requestPath,omitempty"`
	RequestID   string `json:"requestId,omitempty"`
}

// APIError is returned when the server answers with a non-2xx status and a
// decodable error envelope.
type APIError struct {
	// StatusCode is the status from the envelope, or the HTTP status when
	// the envelope has none.
	StatusCode int
	StatusName string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Message)
}
