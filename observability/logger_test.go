package observability_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexfrei/go-unifi-network/observability"
)

func TestNoopLogger(t *testing.T) {
	t.Parallel()

	logger := observability.NoopLogger()

	// All methods should execute without panicking
	logger.Debug("test debug")
	logger.Info("test info")
	logger.Warn("test warn")
	logger.Error("test error")

	newLogger := logger.With(observability.Field{Key: "key", Value: "value"})
	require.NotNil(t, newLogger)

	newLogger.Info("test with logger")
}

func TestNoopMetricsRecorder(t *testing.T) {
	t.Parallel()

	recorder := observability.NoopMetricsRecorder()

	recorder.RecordHTTPRequest("GET", "/v1/sites", 200, time.Second)
	recorder.RecordError("http_request", "NetworkError")
}

func TestLogrusLogger(t *testing.T) {
	t.Parallel()

	base, hook := logrustest.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)

	logger := observability.NewLogrusLogger(base).
		With(observability.Field{Key: "component", Value: "network"})

	logger.Debug("http request started", observability.Field{Key: "method", Value: "GET"})
	logger.Warn("http request completed with error", observability.Field{Key: "status", Value: 401})

	entries := hook.AllEntries()
	require.Len(t, entries, 2)

	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, "http request started", entries[0].Message)
	assert.Equal(t, "GET", entries[0].Data["method"])
	assert.Equal(t, "network", entries[0].Data["component"])

	assert.Equal(t, logrus.WarnLevel, entries[1].Level)
	assert.Equal(t, 401, entries[1].Data["status"])
	assert.Equal(t, "network", entries[1].Data["component"])
}

func TestLogrusLoggerNil(t *testing.T) {
	t.Parallel()

	logger := observability.NewLogrusLogger(nil)
	require.NotNil(t, logger)
}

func TestSlogLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	logger := observability.NewSlogLogger(slog.New(handler)).
		With(observability.Field{Key: "component", Value: "network"})

	logger.Error("http request failed", observability.Field{Key: "url", Value: "https://unifi.local/v1/info"})

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "http request failed", record["msg"])
	assert.Equal(t, "network", record["component"])
	assert.Equal(t, "https://unifi.local/v1/info", record["url"])
}

func TestField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field observability.Field
		key   string
		value any
	}{
		{
			name:  "string value",
			field: observability.Field{Key: "name", Value: "test"},
			key:   "name",
			value: "test",
		},
		{
			name:  "int value",
			field: observability.Field{Key: "count", Value: 42},
			key:   "count",
			value: 42,
		},
		{
			name:  "nil value",
			field: observability.Field{Key: "null", Value: nil},
			key:   "null",
			value: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.key, tt.field.Key)
			assert.Equal(t, tt.value, tt.field.Value)
		})
	}
}

// BenchmarkNoopLogger measures the overhead of noop logger calls.
func BenchmarkNoopLogger(b *testing.B) {
	logger := observability.NoopLogger()

	b.Run("Info", func(b *testing.B) {
		for n := 0; n < b.N; n++ {
			logger.Info("test message")
		}
	})

	b.Run("InfoWithFields", func(b *testing.B) {
		fields := []observability.Field{
			{Key: "key1", Value: "value1"},
			{Key: "key2", Value: 42},
		}

		for n := 0; n < b.N; n++ {
			logger.Info("test message", fields...)
		}
	})
}
