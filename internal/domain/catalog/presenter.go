package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/Megallm/megallm-docs/internal/domain/model"
	"github.com/Megallm/megallm-docs/internal/infrastructure/logger"
	"github.com/Megallm/megallm-docs/internal/utils/platformerrors"
)

// Status is the lifecycle state of the catalog.
type Status string

const (
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

const (
	DefaultRefreshInterval = 30 * time.Second
	DefaultFetchTimeout    = 30 * time.Second
)

// Config controls the polling behaviour of a Presenter.
type Config struct {
	RefreshInterval time.Duration
	AutoRefresh     bool
	FetchTimeout    time.Duration
}

// Snapshot is a consistent copy of the presenter state.
type Snapshot struct {
	Status          Status
	Error           string
	Models          []model.Model
	LastUpdated     time.Time
	AutoRefresh     bool
	RefreshInterval time.Duration
}

// Tabs derives the tab views of the snapshot's model set.
func (s Snapshot) Tabs() []TabView {
	return BuildTabs(s.Models)
}

// Counts returns the chat and embedding model counts.
func (s Snapshot) Counts() (chat, embedding int) {
	embedding = len(model.EmbeddingModels(s.Models))
	return len(s.Models) - embedding, embedding
}

// Presenter polls the gateway and keeps the latest model set.
//
// Every fetch is numbered when issued. A completion is applied only if no
// later fetch has been applied already, so a slow response never overwrites a
// newer one. Timer ticks are skipped while a timer fetch is still running;
// Refresh always issues a request.
//
// All fetches run under a context owned by the presenter. When Run returns
// that context is cancelled, in-flight fetches are abandoned and no new fetch
// is started. A presenter cannot be run again after that.
type Presenter struct {
	gateway model.Gateway
	cfg     Config

	base   context.Context
	cancel context.CancelFunc

	mu            sync.RWMutex
	status        Status
	errMsg        string
	models        []model.Model
	lastUpdated   time.Time
	autoRefresh   bool
	issued        uint64
	applied       uint64
	timerInFlight bool
	closed        bool

	wake chan struct{}
	wg   sync.WaitGroup
}

func NewPresenter(gateway model.Gateway, cfg Config) *Presenter {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	base, cancel := context.WithCancel(context.Background())
	return &Presenter{
		gateway:     gateway,
		cfg:         cfg,
		base:        base,
		cancel:      cancel,
		status:      StatusLoading,
		autoRefresh: cfg.AutoRefresh,
		wake:        make(chan struct{}, 1),
	}
}

// Run performs the initial fetch and then polls while auto-refresh is on. It
// blocks until ctx is cancelled, then cancels outstanding fetches and waits
// for them to return.
func (p *Presenter) Run(ctx context.Context) error {
	log := logger.GetLogger()
	log.Info().
		Dur("interval", p.cfg.RefreshInterval).
		Bool("auto_refresh", p.AutoRefresh()).
		Msg("catalog presenter started")

	p.start(p.base, false)

	var (
		ticker *time.Ticker
		tick   <-chan time.Time
	)
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
	}
	defer func() {
		stopTicker()
		p.shutdown()
		p.wg.Wait()
		log.Info().Msg("catalog presenter stopped")
	}()

	for {
		if p.AutoRefresh() {
			if ticker == nil {
				ticker = time.NewTicker(p.cfg.RefreshInterval)
				tick = ticker.C
			}
		} else {
			stopTicker()
		}

		select {
		case <-ctx.Done():
			return nil
		case <-p.wake:
		case <-tick:
			p.start(p.base, true)
		}
	}
}

// Refresh re-enters loading and fetches immediately, regardless of the
// auto-refresh setting or fetches already in flight. It does not wait for the
// result. The fetch keeps ctx's values but not its cancellation: it ends with
// the presenter, not with the request that asked for it. It reports whether a
// fetch was started.
func (p *Presenter) Refresh(ctx context.Context) bool {
	return p.start(ctx, false)
}

// SetAutoRefresh toggles polling. Changing the setting fetches once right away
// and restarts the interval; setting the current value again does nothing.
// Disabling stops future ticks only; a fetch already in flight still
// completes.
func (p *Presenter) SetAutoRefresh(enabled bool) {
	p.mu.Lock()
	changed := p.autoRefresh != enabled
	p.autoRefresh = enabled
	p.mu.Unlock()

	if !changed {
		return
	}
	p.start(p.base, false)

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

func (p *Presenter) AutoRefresh() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.autoRefresh
}

// Snapshot returns the current state.
func (p *Presenter) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{
		Status:          p.status,
		Error:           p.errMsg,
		Models:          p.models,
		LastUpdated:     p.lastUpdated,
		AutoRefresh:     p.autoRefresh,
		RefreshInterval: p.cfg.RefreshInterval,
	}
}

func (p *Presenter) start(parent context.Context, fromTimer bool) bool {
	log := logger.GetLogger()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		log.Debug().Msg("catalog presenter stopped, fetch not started")
		return false
	}
	if fromTimer && p.timerInFlight {
		p.mu.Unlock()
		log.Debug().Msg("catalog tick skipped, previous fetch still running")
		return false
	}
	p.issued++
	seq := p.issued
	if fromTimer {
		p.timerInFlight = true
	}
	p.status = StatusLoading
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		fetchCtx, cancel := p.fetchContext(parent)
		defer cancel()
		listing, err := p.gateway.ListModels(fetchCtx)
		p.complete(seq, fromTimer, listing, err)
	}()
	return true
}

// fetchContext carries parent's values, is bounded by FetchTimeout and ends
// when the presenter shuts down.
func (p *Presenter) fetchContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), p.cfg.FetchTimeout)
	stop := context.AfterFunc(p.base, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}

func (p *Presenter) shutdown() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
	p.cancel()
}

func (p *Presenter) complete(seq uint64, fromTimer bool, listing *model.Listing, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if fromTimer {
		p.timerInFlight = false
	}
	if p.closed {
		return
	}
	if seq < p.applied {
		log := logger.GetLogger()
		log.Debug().
			Uint64("seq", seq).
			Uint64("applied", p.applied).
			Msg("discarding stale catalog fetch")
		return
	}
	p.applied = seq

	if err != nil {
		p.status = StatusError
		p.errMsg = errorMessage(err)
		p.models = nil
		return
	}
	p.status = StatusLoaded
	p.errMsg = ""
	p.models = listing.Data
	p.lastUpdated = listing.LastUpdated
}

func errorMessage(err error) string {
	if platformErr := platformerrors.GetPlatformError(err); platformErr != nil {
		return platformErr.Message
	}
	return err.Error()
}
