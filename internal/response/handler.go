// Package response implements the response contract shared by all API operations:
// decode the body on 2xx, decode the error envelope otherwise.
package response

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// IsSuccess reports whether statusCode is in the 2xx range.
func IsSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// Handle completes a round trip that returns data. resp and err are the
// results of http.Client.Do. The response body is always closed.
//
// Usage:
//
//	resp, err := c.httpClient.Do(req)
//	return response.Handle[DeviceDetails](resp, err, "failed to get device details")
func Handle[T any](resp *http.Response, err error, errorMsg string) (*T, error) {
	body, err := readBody(resp, err, errorMsg)
	if err != nil {
		return nil, err
	}

	if !IsSuccess(resp.StatusCode) {
		return nil, apiError(resp.StatusCode, body, errorMsg)
	}

	data := new(T)
	if err := json.Unmarshal(body, data); err != nil {
		return nil, WithKind(errors.Wrapf(err, "%s: decode response body", errorMsg), ErrDeserialization)
	}

	return data, nil
}

// HandleNoContent completes a round trip whose success carries no result.
// Any 2xx status is success and the body is discarded.
//
// Usage:
//
//	resp, err := c.httpClient.Do(req)
//	return response.HandleNoContent(resp, err, "failed to restart device")
func HandleNoContent(resp *http.Response, err error, errorMsg string) error {
	body, err := readBody(resp, err, errorMsg)
	if err != nil {
		return err
	}

	if !IsSuccess(resp.StatusCode) {
		return apiError(resp.StatusCode, body, errorMsg)
	}

	return nil
}

func readBody(resp *http.Response, err error, errorMsg string) ([]byte, error) {
	if err != nil {
		return nil, WithKind(errors.Wrap(err, errorMsg), ErrTransport)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, WithKind(errors.Wrapf(err, "%s: read response body", errorMsg), ErrTransport)
	}

	return body, nil
}

// errorEnvelope is the decoding shape of ErrorResponse. Message is required;
// a body without it is not an envelope.
type errorEnvelope struct {
	StatusCode int     `json:"statusCode"`
	StatusName string  `json:"statusName"`
	Message    *string `json:"message"`
	RequestID  string  `json:"requestId"`
}

// apiError decodes body as an ErrorResponse. An envelope that cannot be
// decoded is a deserialization failure, not an API error.
func apiError(statusCode int, body []byte, errorMsg string) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return WithKind(
			errors.Wrapf(err, "%s: decode error response (status=%d)", errorMsg, statusCode),
			ErrDeserialization,
		)
	}

	if envelope.Message == nil {
		return WithKind(
			errors.Newf("%s: error response without message (status=%d)", errorMsg, statusCode),
			ErrDeserialization,
		)
	}

	apiErr := &APIError{
		StatusCode: envelope.StatusCode,
		StatusName: envelope.StatusName,
		Message:    *envelope.Message,
		RequestID:  envelope.RequestID,
	}
	if apiErr.StatusCode == 0 {
		apiErr.StatusCode = statusCode
	}

	return errors.Wrap(apiErr, errorMsg)
}
