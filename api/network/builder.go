package network

import (
	"net/http"
	"time"

	"github.com/lexfrei/go-unifi-network/observability"
)

// Builder configures an APIClient step by step. TLS verification is on
// unless VerifySSL(false) is called.
//
// Example:
//
//	client, err := network.NewBuilder("https://192.168.1.1/proxy/network/integration").
//		APIKey(os.Getenv("UNIFI_API_KEY")).
//		VerifySSL(false).
//		Build()
type Builder struct {
	cfg ClientConfig
}

// NewBuilder starts a builder for the given base URL.
func NewBuilder(baseURL string) *Builder {
	return &Builder{cfg: ClientConfig{BaseURL: baseURL}}
}

// APIKey sets the key sent in the X-API-KEY header.
func (b *Builder) APIKey(apiKey string) *Builder {
	b.cfg.APIKey = apiKey
	return b
}

// VerifySSL toggles TLS certificate verification.
func (b *Builder) VerifySSL(verify bool) *Builder {
	b.cfg.InsecureSkipVerify = !verify
	return b
}

// HTTPClient sets the template http.Client.
func (b *Builder) HTTPClient(client *http.Client) *Builder {
	b.cfg.HTTPClient = client
	return b
}

// Timeout bounds each request.
func (b *Builder) Timeout(timeout time.Duration) *Builder {
	b.cfg.Timeout = timeout
	return b
}

// Logger sets the request logger.
func (b *Builder) Logger(logger observability.Logger) *Builder {
	b.cfg.Logger = logger
	return b
}

// Metrics sets the request metrics recorder.
func (b *Builder) Metrics(metrics observability.MetricsRecorder) *Builder {
	b.cfg.Metrics = metrics
	return b
}

// Build validates the configuration and returns the client. It fails with
// ErrConfiguration when no usable API key was set.
func (b *Builder) Build() (*APIClient, error) {
	cfg := b.cfg
	return NewWithConfig(&cfg)
}
