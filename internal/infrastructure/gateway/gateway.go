package gateway

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Megallm/megallm-docs/internal/domain/model"
	"github.com/Megallm/megallm-docs/internal/infrastructure/logger"
	"github.com/Megallm/megallm-docs/internal/infrastructure/metrics"
	"github.com/Megallm/megallm-docs/internal/infrastructure/observability"
	"github.com/Megallm/megallm-docs/internal/utils/httpclients/modelclient"
	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

type callerKey struct{}

// WithCaller labels the upstream fetch metrics of calls made with ctx.
func WithCaller(ctx context.Context, caller string) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func callerFromContext(ctx context.Context) string {
	if caller, ok := ctx.Value(callerKey{}).(string); ok && caller != "" {
		return caller
	}
	return "unknown"
}

// ModelGateway is the single configured upstream client shared by the proxy
// route and the catalog presenter.
type ModelGateway struct {
	client  *modelclient.ModelClient
	timeout time.Duration
	now     func() time.Time
}

var _ model.Gateway = (*ModelGateway)(nil)

func NewModelGateway(client *modelclient.ModelClient, timeout time.Duration) *ModelGateway {
	return &ModelGateway{
		client:  client,
		timeout: timeout,
		now:     time.Now,
	}
}

type callerGateway struct {
	gateway *ModelGateway
	caller  string
}

func (c callerGateway) ListModels(ctx context.Context) (*model.Listing, error) {
	return c.gateway.ListModels(WithCaller(ctx, c.caller))
}

// ForCaller returns a view of the gateway whose fetches are labelled caller.
func (g *ModelGateway) ForCaller(caller string) model.Gateway {
	return callerGateway{gateway: g, caller: caller}
}

// ListModels performs one authenticated fetch. There is no retry; the caller
// decides what to do with a failure.
func (g *ModelGateway) ListModels(ctx context.Context) (*model.Listing, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	caller := callerFromContext(ctx)
	ctx, span := observability.StartSpan(ctx, "upstream.list_models")
	defer span.End()
	observability.AddSpanAttributes(ctx, attribute.String("caller", caller))

	start := time.Now()
	resp, err := g.client.ListModels(ctx)
	metrics.RecordUpstreamFetch(caller, err, time.Since(start))
	if err != nil {
		observability.RecordError(ctx, err)
		log := logger.GetLogger().With().
			Str("caller", caller).
			Str("trace_id", observability.TraceID(ctx)).
			Logger()
		if platformErr := platformerrors.GetPlatformError(err); platformErr != nil {
			platformerrors.LogError(log, platformErr)
		} else {
			log.Error().Err(err).Msg("upstream model listing failed")
		}
		return nil, err
	}

	listing := model.NewListing(resp.Data, g.now().UTC())
	observability.AddSpanAttributes(ctx, attribute.Int("models.total", listing.Total))
	log := logger.GetLogger()
	log.Debug().
		Str("caller", caller).
		Int("total", listing.Total).
		Msg("upstream model listing fetched")
	return listing, nil
}
