package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Megallm/megallm-docs/internal/config"
)

func TestNormalizeEndpoint(t *testing.T) {
	cases := []struct {
		raw      string
		endpoint string
		insecure bool
	}{
		{"otel-collector:4318", "otel-collector:4318", true},
		{"http://otel-collector:4318/", "otel-collector:4318", true},
		{"https://otlp.example.com", "otlp.example.com", false},
	}
	for _, tc := range cases {
		endpoint, insecure := normalizeEndpoint(tc.raw)
		assert.Equal(t, tc.endpoint, endpoint, tc.raw)
		assert.Equal(t, tc.insecure, insecure, tc.raw)
	}
}

func TestParseHeaders(t *testing.T) {
	headers := parseHeaders("authorization=Bearer abc, x-team = docs ,broken,=empty")
	assert.Equal(t, map[string]string{
		"authorization": "Bearer abc",
		"x-team":        "docs",
	}, headers)
	assert.Empty(t, parseHeaders(""))
}

func TestSetupWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{ServiceName: "megallm-docs", ServiceNamespace: "megallm", Environment: "test"}
	shutdown, err := Setup(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)

	ctx, span := StartSpan(context.Background(), "test-span")
	assert.NotEmpty(t, TraceID(ctx))
	span.End()

	require.NoError(t, shutdown(context.Background()))
}
