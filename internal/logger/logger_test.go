//go:build !integration

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug level", level: "debug", expected: zerolog.DebugLevel},
		{name: "info level", level: "info", expected: zerolog.InfoLevel},
		{name: "warn level", level: "warn", expected: zerolog.WarnLevel},
		{name: "error level", level: "error", expected: zerolog.ErrorLevel},
		{name: "upper case", level: "WARN", expected: zerolog.WarnLevel},
		{name: "empty defaults to info", level: "", expected: zerolog.InfoLevel},
		{name: "unknown defaults to info", level: "verbose", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.level, false)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
	Init("info", false)
}

func TestLogger_AddsServiceName(t *testing.T) {
	var buf bytes.Buffer
	initWithWriter("info", false, &buf)
	defer Init("info", false)

	log := Logger()
	log.Info().Msg("ready")

	line := decodeLine(t, &buf)
	assert.Equal(t, ServiceName, line["service"])
	assert.Equal(t, "ready", line["message"])
}

func TestInit_WithPrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	initWithWriter("info", true, &buf)
	defer Init("info", false)

	log := Logger()
	log.Info().Msg("pretty")

	assert.Contains(t, buf.String(), "pretty")
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	initWithWriter("info", false, &buf)
	defer Init("info", false)

	log := WithContext(map[string]interface{}{"sku": "MUG-11-WHT", "quantity": 27})
	log.Info().Msg("calculated")

	line := decodeLine(t, &buf)
	assert.Equal(t, "MUG-11-WHT", line["sku"])
	assert.Equal(t, float64(27), line["quantity"])
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	initWithWriter("info", false, &buf)
	defer Init("info", false)

	ctx := ContextWithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromContext(ctx))

	log := FromContext(ctx)
	log.Info().Msg("with id")
	assert.Equal(t, "req-42", decodeLine(t, &buf)["request_id"])

	buf.Reset()
	log = FromContext(context.Background())
	log.Info().Msg("without id")
	_, ok := decodeLine(t, &buf)["request_id"]
	assert.False(t, ok)
}

func TestContextWithRequestID_EmptyIsNoop(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, ctx, ContextWithRequestID(ctx, ""))
	assert.Empty(t, RequestIDFromContext(ctx))
}
