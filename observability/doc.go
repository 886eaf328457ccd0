// Package observability provides interfaces for logging and metrics collection
// in the go-unifi-network library.
//
// The Network API client never logs or records anything on its own: every
// event goes through a Logger and a MetricsRecorder supplied in the client
// configuration.
//
// # Logger Interface
//
// The Logger interface supports structured logging with key-value pairs:
//
//	client, err := network.NewWithConfig(&network.ClientConfig{
//		BaseURL: "https://192.168.1.1/proxy/network/integration",
//		APIKey:  apiKey,
//		Logger:  observability.NewSlogLogger(slog.Default()),
//	})
//
// Ready-made adapters exist for log/slog (NewSlogLogger) and
// github.com/sirupsen/logrus (NewLogrusLogger).
//
// # MetricsRecorder Interface
//
// The MetricsRecorder interface receives one event per HTTP round trip
// (method, normalized path, status code, duration) and one event per
// transport failure.
//
// # Default Behavior
//
// If no logger or metrics recorder is provided, the client uses no-op
// implementations that discard all events.
package observability
