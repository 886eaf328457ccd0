package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"golang.org/x/net/http/httpguts"

	"github.com/lexfrei/go-unifi-network/internal/httpclient"
	"github.com/lexfrei/go-unifi-network/internal/middleware"
	"github.com/lexfrei/go-unifi-network/internal/response"
	"github.com/lexfrei/go-unifi-network/observability"
)

const contentTypeJSON = "application/json"

// APIClient is a handle to one UniFi Network application. It is read-only
// after construction and safe for concurrent use.
type APIClient struct {
	server     string
	httpClient *http.Client
}

// ClientConfig holds configuration for the Network API client.
type ClientConfig struct {
	// BaseURL is the integration API root, e.g.
	// "https://192.168.1.1/proxy/network/integration". It is parsed on
	// every call, so a bad value surfaces as ErrMalformedURL.
	BaseURL string

	// APIKey is sent in the X-API-KEY header. Required.
	APIKey string

	// InsecureSkipVerify disables TLS certificate verification. Controllers
	// ship with self-signed certificates, so this is often needed on a LAN.
	// It requires HTTPClient.Transport to be nil or an *http.Transport; for
	// any other RoundTripper NewWithConfig returns ErrConfiguration and TLS
	// is the RoundTripper's own business.
	InsecureSkipVerify bool

	// HTTPClient is an optional template. It is copied and its transport
	// is wrapped with the client middleware.
	HTTPClient *http.Client

	// Timeout bounds each request. Zero keeps HTTPClient's timeout, or none.
	Timeout time.Duration

	// Logger for request logging. Defaults to a no-op logger.
	Logger observability.Logger

	// Metrics for request metrics. Defaults to a no-op recorder.
	Metrics observability.MetricsRecorder
}

// New creates a Network API client with TLS verification enabled.
//
// Example:
//
//	client, err := network.New("https://192.168.1.1/proxy/network/integration", "your-api-key")
func New(baseURL, apiKey string) (*APIClient, error) {
	return NewWithConfig(&ClientConfig{
		BaseURL: baseURL,
		APIKey:  apiKey,
	})
}

// NewWithConfig creates a Network API client from cfg. It performs no
// network activity.
func NewWithConfig(cfg *ClientConfig) (*APIClient, error) {
	if cfg == nil {
		return nil, response.WithKind(errors.New("config is required"), ErrConfiguration)
	}

	if cfg.APIKey == "" {
		return nil, response.WithKind(errors.New("API key is required"), ErrConfiguration)
	}

	if !httpguts.ValidHeaderFieldValue(cfg.APIKey) {
		return nil, response.WithKind(errors.New("API key is not a valid HTTP header value"), ErrConfiguration)
	}

	if cfg.InsecureSkipVerify && !middleware.SupportsSkipVerify(httpclient.BaseTransport(cfg.HTTPClient)) {
		return nil, response.WithKind(
			errors.New("InsecureSkipVerify needs an *http.Transport; configure TLS on the custom transport instead"),
			ErrConfiguration,
		)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = observability.NoopLogger()
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	httpClient := httpclient.Build(httpclient.Config{
		Template: cfg.HTTPClient,
		Timeout:  cfg.Timeout,
		Middleware: []httpclient.Middleware{
			middleware.Observability(logger, metrics),
			middleware.DefaultHeaders(http.Header{"Accept": {contentTypeJSON}}),
			middleware.Auth(cfg.APIKey),
			middleware.TLSVerification(!cfg.InsecureSkipVerify),
		},
	})

	server := cfg.BaseURL
	if !strings.HasSuffix(server, "/") {
		server += "/"
	}

	logger.Debug("network API client created",
		observability.Field{Key: "base_url", Value: cfg.BaseURL},
		observability.Field{Key: "verify_tls", Value: !cfg.InsecureSkipVerify},
	)

	return &APIClient{
		server:     server,
		httpClient: httpClient,
	}, nil
}

// Clone returns a new handle that shares the connection pool and settings.
func (c *APIClient) Clone() *APIClient {
	clone := *c
	return &clone
}

// ListSites returns one page of the sites visible to the API key.
func (c *APIClient) ListSites(ctx context.Context, params *PageParams) (*Page[Site], error) {
	const errorMsg = "failed to list sites"

	query, err := params.query()
	if err != nil {
		return nil, errors.Wrap(err, errorMsg)
	}

	return doJSON[Page[Site]](ctx, c, http.MethodGet, "./v1/sites", query, nil, errorMsg)
}

// ListDevices returns one page of the devices adopted at a site.
func (c *APIClient) ListDevices(ctx context.Context, siteID SiteID, params *PageParams) (*Page[DeviceOverview], error) {
	errorMsg := fmt.Sprintf("failed to list devices for site %s", siteID)

	path, err := operationPath("./v1/sites/%s/devices", siteID)
	if err != nil {
		return nil, errors.Wrap(err, errorMsg)
	}

	query, err := params.query()
	if err != nil {
		return nil, errors.Wrap(err, errorMsg)
	}

	return doJSON[Page[DeviceOverview]](ctx, c, http.MethodGet, path, query, nil, errorMsg)
}

// GetDeviceDetails returns the full description of one device.
func (c *APIClient) GetDeviceDetails(ctx context.Context, siteID SiteID, deviceID DeviceID) (*DeviceDetails, error) {
	errorMsg := fmt.Sprintf("failed to get details of device %s", deviceID)

	path, err := operationPath("./v1/sites/%s/devices/%s", siteID, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, errorMsg)
	}

	return doJSON[DeviceDetails](ctx, c, http.MethodGet, path, nil, nil, errorMsg)
}

// GetDeviceStatistics returns the latest statistics of one device.
func (c *APIClient) GetDeviceStatistics(ctx context.Context, siteID SiteID, deviceID DeviceID) (*DeviceStatistics, error) {
	errorMsg := fmt.Sprintf("failed to get statistics of device %s", deviceID)

	path, err := operationPath("./v1/sites/%s/devices/%s/statistics/latest", siteID, deviceID)
	if err != nil {
		return nil, errors.Wrap(err, errorMsg)
	}

	return doJSON[DeviceStatistics](ctx, c, http.MethodGet, path, nil, nil, errorMsg)
}

// RestartDevice asks a device to reboot. Any 2xx status is success; the
// response body is ignored.
func (c *APIClient) RestartDevice(ctx context.Context, siteID SiteID, deviceID DeviceID) error {
	return c.executeDeviceAction(ctx, siteID, deviceID, DeviceActionRestart)
}

func (c *APIClient) executeDeviceAction(ctx context.Context, siteID SiteID, deviceID DeviceID, action DeviceAction) error {
	errorMsg := fmt.Sprintf("failed to execute %s on device %s", action, deviceID)

	path, err := operationPath("./v1/sites/%s/devices/%s/actions", siteID, deviceID)
	if err != nil {
		return errors.Wrap(err, errorMsg)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, deviceActionRequest{Action: action})
	if err != nil {
		return errors.Wrap(err, errorMsg)
	}

	resp, err := c.httpClient.Do(req)

	//nolint:wrapcheck // response.HandleNoContent wraps errors internally
	return response.HandleNoContent(resp, err, errorMsg)
}

// GetInfo returns information about the Network application.
func (c *APIClient) GetInfo(ctx context.Context) (*ApplicationInfo, error) {
	return doJSON[ApplicationInfo](ctx, c, http.MethodGet, "./v1/info", nil, nil,
		"failed to get application info")
}

// ListClients returns one page of the clients connected at a site.
func (c *APIClient) ListClients(ctx context.Context, siteID SiteID, params *PageParams) (*Page[ClientOverview], error) {
	errorMsg := fmt.Sprintf("failed to list clients for site %s", siteID)

	path, err := operationPath("./v1/sites/%s/clients", siteID)
	if err != nil {
		return nil, errors.Wrap(err, errorMsg)
	}

	query, err := params.query()
	if err != nil {
		return nil, errors.Wrap(err, errorMsg)
	}

	return doJSON[Page[ClientOverview]](ctx, c, http.MethodGet, path, query, nil, errorMsg)
}

func doJSON[T any](
	ctx context.Context,
	c *APIClient,
	method, path string,
	query url.Values,
	body any,
	errorMsg string,
) (*T, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, errors.Wrap(err, errorMsg)
	}

	resp, err := c.httpClient.Do(req)

	//nolint:wrapcheck // response.Handle wraps errors internally
	return response.Handle[T](resp, err, errorMsg)
}

// newRequest resolves path against the base URL. The base URL is parsed
// here rather than at construction.
func (c *APIClient) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	serverURL, err := url.Parse(c.server)
	if err != nil {
		return nil, response.WithKind(errors.Wrapf(err, "parse base URL %q", c.server), ErrMalformedURL)
	}

	if serverURL.Scheme == "" || serverURL.Host == "" {
		return nil, response.WithKind(errors.Newf("base URL %q is not absolute", c.server), ErrMalformedURL)
	}

	queryURL, err := serverURL.Parse(path)
	if err != nil {
		return nil, response.WithKind(errors.Wrapf(err, "resolve %q", path), ErrMalformedURL)
	}

	if len(query) > 0 {
		queryURL.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, queryURL.String(), reader)
	if err != nil {
		return nil, response.WithKind(errors.Wrap(err, "build request"), ErrMalformedURL)
	}

	if body != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}

	return req, nil
}

// operationPath fills format with simple-style path parameters.
func operationPath(format string, ids ...openapi_types.UUID) (string, error) {
	params := make([]any, 0, len(ids))

	for _, id := range ids {
		param, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, id.String())
		if err != nil {
			return "", response.WithKind(errors.Wrap(err, "encode path parameter"), ErrMalformedURL)
		}
		params = append(params, param)
	}

	return fmt.Sprintf(format, params...), nil
}

// query encodes the page selection with form style, filling defaults.
func (p *PageParams) query() (url.Values, error) {
	offset, limit := DefaultPageOffset, DefaultPageLimit
	if p != nil {
		offset = p.Offset
		if p.Limit > 0 {
			limit = p.Limit
		}
	}

	values := url.Values{}
	params := []struct {
		name  string
		value int
	}{
		{name: "offset", value: offset},
		{name: "limit", value: limit},
	}

	for _, param := range params {
		fragment, err := runtime.StyleParamWithLocation("form", true, param.name, runtime.ParamLocationQuery, param.value)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s parameter", param.name)
		}

		parsed, err := url.ParseQuery(fragment)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s parameter", param.name)
		}

		for key, list := range parsed {
			for _, v := range list {
				values.Add(key, v)
			}
		}
	}

	return values, nil
}
