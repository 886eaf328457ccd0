package network

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/lexfrei/go-unifi-network/internal/response"
)

// Component schema names accepted by ValidateResponseBody.
const (
	SchemaApplicationInfo  = "ApplicationInfo"
	SchemaSitePage         = "SitePage"
	SchemaDevicePage       = "DevicePage"
	SchemaDeviceDetails    = "DeviceDetails"
	SchemaDeviceStatistics = "DeviceStatistics"
	SchemaClientPage       = "ClientPage"
	SchemaErrorResponse    = "ErrorResponse"
)

//go:embed openapi.yaml
var openAPISpec []byte

var loadSwagger = sync.OnceValues(func() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load embedded OpenAPI document")
	}

	return doc, nil
})

// GetSwagger returns the embedded OpenAPI document. The document is parsed
// once and shared; callers must not modify it.
func GetSwagger() (*openapi3.T, error) {
	return loadSwagger()
}

// ValidateResponseBody checks a raw JSON body against the named component
// schema. A mismatch is reported as ErrDeserialization.
func ValidateResponseBody(schemaName string, body []byte) error {
	doc, err := GetSwagger()
	if err != nil {
		return err
	}

	schema, ok := doc.Components.Schemas[schemaName]
	if !ok || schema.Value == nil {
		return errors.Newf("unknown schema %q", schemaName)
	}

	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return response.WithKind(errors.Wrap(err, "decode body"), ErrDeserialization)
	}

	if err := schema.Value.VisitJSON(value); err != nil {
		return response.WithKind(errors.Wrapf(err, "body does not match %s", schemaName), ErrDeserialization)
	}

	return nil
}
