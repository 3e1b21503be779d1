package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Megallm/megallm-docs/internal/domain/model"
	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

type fakeGateway struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	models  []model.Model
	err     error
}

func (f *fakeGateway) ListModels(ctx context.Context) (*model.Listing, error) {
	f.mu.Lock()
	f.calls++
	release := f.release
	models, err := f.models, f.err
	f.mu.Unlock()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err != nil {
		return nil, err
	}
	return model.NewListing(models, time.Now()), nil
}

func (f *fakeGateway) set(models []model.Model, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.models, f.err = models, err
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func runPresenter(t *testing.T, p *Presenter) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = p.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
}

func waitForStatus(t *testing.T, p *Presenter, want Status) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return p.Snapshot().Status == want
	}, time.Second, 5*time.Millisecond)
	return p.Snapshot()
}

func TestPresenterStartsLoading(t *testing.T) {
	p := NewPresenter(&fakeGateway{}, Config{})
	snap := p.Snapshot()
	assert.Equal(t, StatusLoading, snap.Status)
	assert.Equal(t, DefaultRefreshInterval, snap.RefreshInterval)
}

func TestPresenterInitialFetch(t *testing.T) {
	gw := &fakeGateway{models: fixtureModels()}
	p := NewPresenter(gw, Config{RefreshInterval: time.Hour})
	runPresenter(t, p)

	snap := waitForStatus(t, p, StatusLoaded)
	assert.Len(t, snap.Models, len(fixtureModels()))
	assert.Empty(t, snap.Error)
	assert.False(t, snap.LastUpdated.IsZero())

	chat, embedding := snap.Counts()
	assert.Equal(t, 6, chat)
	assert.Equal(t, 1, embedding)
}

func TestPresenterFailureClearsModels(t *testing.T) {
	gw := &fakeGateway{models: fixtureModels()}
	p := NewPresenter(gw, Config{RefreshInterval: time.Hour})
	runPresenter(t, p)
	waitForStatus(t, p, StatusLoaded)

	gw.set(nil, platformerrors.NewError(context.Background(), platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeExternal, "Failed to fetch models: Unauthorized", nil, "test"))
	p.Refresh(context.Background())

	snap := waitForStatus(t, p, StatusError)
	assert.Equal(t, "Failed to fetch models: Unauthorized", snap.Error)
	assert.Nil(t, snap.Models)
}

func TestPresenterRetryAfterError(t *testing.T) {
	gw := &fakeGateway{err: errors.New("connection refused")}
	p := NewPresenter(gw, Config{RefreshInterval: time.Hour})
	runPresenter(t, p)

	snap := waitForStatus(t, p, StatusError)
	assert.Equal(t, "connection refused", snap.Error)

	gw.set(fixtureModels(), nil)
	p.Refresh(context.Background())
	snap = waitForStatus(t, p, StatusLoaded)
	assert.Empty(t, snap.Error)
	assert.Len(t, snap.Models, len(fixtureModels()))
}

func TestPresenterDiscardsStaleCompletion(t *testing.T) {
	p := NewPresenter(&fakeGateway{}, Config{})
	p.issued = 2

	newer := model.NewListing(fixtureModels()[:1], time.Now())
	older := model.NewListing(fixtureModels(), time.Now().Add(-time.Minute))

	p.complete(2, false, newer, nil)
	p.complete(1, false, older, nil)

	snap := p.Snapshot()
	assert.Equal(t, StatusLoaded, snap.Status)
	require.Len(t, snap.Models, 1)
	assert.Equal(t, "gpt-4o-mini", snap.Models[0].ID)

	p.complete(1, false, nil, errors.New("late failure"))
	assert.Equal(t, StatusLoaded, p.Snapshot().Status)
}

func TestPresenterSuppressesOverlappingTicks(t *testing.T) {
	release := make(chan struct{})
	gw := &fakeGateway{release: release, models: fixtureModels()}
	p := NewPresenter(gw, Config{})

	ctx := context.Background()
	p.start(ctx, true)
	p.start(ctx, true)
	require.Eventually(t, func() bool { return gw.callCount() == 1 }, time.Second, 5*time.Millisecond)

	// manual refresh is never suppressed
	p.start(ctx, false)
	require.Eventually(t, func() bool { return gw.callCount() == 2 }, time.Second, 5*time.Millisecond)

	close(release)
	p.wg.Wait()
	assert.Equal(t, StatusLoaded, p.Snapshot().Status)

	p.start(ctx, true)
	p.wg.Wait()
	assert.Equal(t, 3, gw.callCount())
}

func TestPresenterAutoRefreshToggle(t *testing.T) {
	gw := &fakeGateway{models: fixtureModels()}
	p := NewPresenter(gw, Config{RefreshInterval: 10 * time.Millisecond, AutoRefresh: true})
	runPresenter(t, p)

	require.Eventually(t, func() bool { return gw.callCount() >= 3 }, time.Second, 5*time.Millisecond)

	p.SetAutoRefresh(false)
	assert.False(t, p.Snapshot().AutoRefresh)
	// let any tick that raced the toggle drain
	time.Sleep(30 * time.Millisecond)
	stopped := gw.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, gw.callCount())

	p.SetAutoRefresh(true)
	require.Eventually(t, func() bool { return gw.callCount() > stopped }, time.Second, 5*time.Millisecond)
}

func TestPresenterAutoRefreshDisabledAtStart(t *testing.T) {
	gw := &fakeGateway{models: fixtureModels()}
	p := NewPresenter(gw, Config{RefreshInterval: 10 * time.Millisecond})
	runPresenter(t, p)

	waitForStatus(t, p, StatusLoaded)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, gw.callCount())
}

func TestPresenterShutdownCancelsInFlightFetches(t *testing.T) {
	gw := &fakeGateway{release: make(chan struct{}), models: fixtureModels()}
	p := NewPresenter(gw, Config{RefreshInterval: time.Hour, FetchTimeout: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = p.Run(ctx)
	}()

	require.Eventually(t, func() bool { return gw.callCount() == 1 }, time.Second, 5*time.Millisecond)
	require.True(t, p.Refresh(context.Background()))
	require.Eventually(t, func() bool { return gw.callCount() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel while fetches were in flight")
	}

	assert.False(t, p.Refresh(context.Background()))
	p.SetAutoRefresh(true)
	assert.Equal(t, 2, gw.callCount())
	// abandoned fetches do not turn into an error state
	assert.Equal(t, StatusLoading, p.Snapshot().Status)
}

type requestKey struct{}

type ctxGateway struct {
	seen chan context.Context
}

func (g *ctxGateway) ListModels(ctx context.Context) (*model.Listing, error) {
	g.seen <- ctx
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestPresenterRefreshOutlivesRequest(t *testing.T) {
	gw := &ctxGateway{seen: make(chan context.Context, 1)}
	p := NewPresenter(gw, Config{FetchTimeout: time.Minute})

	reqCtx, cancelReq := context.WithCancel(context.WithValue(context.Background(), requestKey{}, "req-1"))
	require.True(t, p.Refresh(reqCtx))
	fetchCtx := <-gw.seen
	cancelReq()

	assert.Equal(t, "req-1", fetchCtx.Value(requestKey{}))
	assert.NoError(t, fetchCtx.Err())

	p.shutdown()
	select {
	case <-fetchCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("fetch context not cancelled by shutdown")
	}
	p.wg.Wait()
}

func TestPresenterToggleFetchesOnChange(t *testing.T) {
	gw := &fakeGateway{models: fixtureModels()}
	p := NewPresenter(gw, Config{RefreshInterval: time.Hour})

	p.SetAutoRefresh(true)
	p.wg.Wait()
	assert.Equal(t, 1, gw.callCount())

	p.SetAutoRefresh(true)
	p.wg.Wait()
	assert.Equal(t, 1, gw.callCount())

	p.SetAutoRefresh(false)
	p.wg.Wait()
	assert.Equal(t, 2, gw.callCount())
	assert.Equal(t, StatusLoaded, p.Snapshot().Status)
}
