package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

func TestUserAgentFamily(t *testing.T) {
	cases := map[string]string{
		"":                             "unknown",
		"Mozilla/5.0 (X11; Linux)":     "browser",
		"curl/8.4.0":                   "cli",
		"python-requests/2.31":         "sdk",
		"OpenAI/Python 1.3.0":          "sdk",
		"SomethingCustom/1.0":          "other",
	}
	for ua, want := range cases {
		assert.Equal(t, want, userAgentFamily(ua), ua)
	}
}

func TestRecordUpstreamFetch(t *testing.T) {
	before := testutil.ToFloat64(UpstreamFetchesTotal.WithLabelValues("test", "error"))
	RecordUpstreamFetch("test", errors.New("boom"), 10*time.Millisecond)
	after := testutil.ToFloat64(UpstreamFetchesTotal.WithLabelValues("test", "error"))
	assert.Equal(t, before+1, after)
}

func TestRecordUpstreamFetchTimeout(t *testing.T) {
	timeout := platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeTimeout, "Failed to fetch models: context deadline exceeded", context.DeadlineExceeded, "test")

	beforeTimeout := testutil.ToFloat64(UpstreamFetchesTotal.WithLabelValues("timeout-test", "timeout"))
	beforeError := testutil.ToFloat64(UpstreamFetchesTotal.WithLabelValues("timeout-test", "error"))
	RecordUpstreamFetch("timeout-test", timeout, time.Second)

	assert.Equal(t, beforeTimeout+1, testutil.ToFloat64(UpstreamFetchesTotal.WithLabelValues("timeout-test", "timeout")))
	assert.Equal(t, beforeError, testutil.ToFloat64(UpstreamFetchesTotal.WithLabelValues("timeout-test", "error")))
}

func TestSetCatalogAge(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC)
	SetCatalogAge(now.Add(-30*time.Second), now)
	assert.InDelta(t, 30, testutil.ToFloat64(CatalogAgeSeconds), 0.001)

	SetCatalogAge(time.Time{}, now)
	assert.Equal(t, 0.0, testutil.ToFloat64(CatalogAgeSeconds))
}

func TestSetCatalogModels(t *testing.T) {
	SetCatalogModels(7, 2)
	assert.Equal(t, 7.0, testutil.ToFloat64(CatalogModels.WithLabelValues("chat")))
	assert.Equal(t, 2.0, testutil.ToFloat64(CatalogModels.WithLabelValues("embedding")))
}
