package network

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Identifiers are opaque 128-bit values. The client never interprets them,
// but a payload that omits one, or sends the nil UUID, fails to decode.
type (
	// SiteID identifies a site.
	SiteID = openapi_types.UUID
	// DeviceID identifies an adopted device.
	DeviceID = openapi_types.UUID
	// ClientID identifies a connected client.
	ClientID = openapi_types.UUID
)

// requireID rejects an identifier that was absent from the payload.
func requireID(field string, id openapi_types.UUID) error {
	if id == uuid.Nil {
		return errors.Newf("%s is missing", field)
	}
	return nil
}

const (
	// DefaultPageOffset is sent when the caller does not set an offset.
	DefaultPageOffset = 0
	// DefaultPageLimit is sent when the caller does not set a limit.
	DefaultPageLimit = 25
)

// PageParams selects a slice of a paginated collection.
// A nil *PageParams, or a zero Limit, falls back to the defaults.
type PageParams struct {
	Offset int
	Limit  int
}

// Page is one slice of a server-side paginated collection.
// Count is len(Data); TotalCount is the size of the whole collection.
type Page[T any] struct {
	Offset     int `json:"offset"`
	Limit      int `json:"limit"`
	Count      int `json:"count"`
	TotalCount int `json:"totalCount"`
	Data       []T `json:"data"`
}

// Site is a managed network deployment.
type Site struct {
	ID                SiteID  `json:"id"`
	Name              *string `json:"name,omitempty"`
	InternalReference *string `json:"internalReference,omitempty"`
}

// UnmarshalJSON requires a site ID.
func (s *Site) UnmarshalJSON(data []byte) error {
	type plain Site

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		//nolint:wrapcheck // Decode errors are classified by the response handler
		return err
	}

	if err := requireID("site id", decoded.ID); err != nil {
		return err
	}

	*s = Site(decoded)
	return nil
}

// ApplicationInfo describes the Network application serving the API.
type ApplicationInfo struct {
	ApplicationVersion string `json:"applicationVersion"`
}
