package crontab

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Megallm/megallm-docs/internal/domain/catalog"
	"github.com/Megallm/megallm-docs/internal/domain/model"
	"github.com/Megallm/megallm-docs/internal/infrastructure/metrics"
)

type staticGateway struct{}

func (staticGateway) ListModels(ctx context.Context) (*model.Listing, error) {
	return model.NewListing([]model.Model{
		{ID: "gpt-4o", OwnedBy: "openai"},
		{ID: "claude-sonnet-4", OwnedBy: "anthropic"},
		{ID: "text-embedding-3-large", OwnedBy: "openai"},
	}, time.Now()), nil
}

func TestRunPublishesCatalogMetricsAndStops(t *testing.T) {
	presenter := catalog.NewPresenter(staticGateway{}, catalog.Config{RefreshInterval: time.Hour})
	presenter.Refresh(context.Background())
	require.Eventually(t, func() bool {
		return presenter.Snapshot().Status == catalog.StatusLoaded
	}, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewCrontab(presenter).Run(ctx) }()

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.CatalogUp) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CatalogModels.WithLabelValues("chat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CatalogModels.WithLabelValues("embedding")))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("crontab did not stop")
	}
}
