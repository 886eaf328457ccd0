package network

import "github.com/lexfrei/go-unifi-network/internal/response"

// APIError is returned for non-2xx responses with a decodable error envelope.
// Match it with errors.As.
type APIError = response.APIError

// ErrorResponse is the JSON error envelope sent with non-2xx responses.
type ErrorResponse = response.ErrorResponse

// Error kinds. Match with errors.Is.
var (
	ErrTransport       = response.ErrTransport
	ErrMalformedURL    = response.ErrMalformedURL
	ErrConfiguration   = response.ErrConfiguration
	ErrDeserialization = response.ErrDeserialization
)
