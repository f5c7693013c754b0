package widget

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/evertonthomazi/go-google-reviews/internal/common"
	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

// State is the acquisition lifecycle of one mounted widget.
type State int

// Lifecycle states. Error and Ready are terminal for a given configuration;
// only reconfiguration restarts acquisition.
const (
	StateLoading State = iota
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Mount owns the lifecycle state and resolved review data for one widget
// instance. All mutation happens under mu; the fetch continuation commits its
// result only if its generation is still current and the mount has not been
// torn down, which suppresses stale responses after reconfiguration.
type Mount struct {
	mu     sync.Mutex
	id     string
	source *Source
	logger *common.Logger

	cfg      *models.WidgetConfig
	state    State
	acqErr   error
	resolved *models.ResolvedReviews

	gen        uint64
	started    bool
	torn       bool
	done       chan struct{}
	doneClosed bool
}

// NewMount creates a mount for a canonical configuration. Supplied-mode
// configurations reach Ready synchronously; remote-mode configurations start
// in Loading and acquire on Start.
func NewMount(cfg *models.WidgetConfig, source *Source, logger *common.Logger) *Mount {
	m := &Mount{
		id:     uuid.New().String()[:8],
		source: source,
		logger: logger,
	}
	m.resetLocked(cfg)
	return m
}

// ID returns the mount's short instance identifier.
func (m *Mount) ID() string {
	return m.id
}

// resetLocked installs cfg as a fresh acquisition generation. Callers other
// than NewMount must hold mu.
func (m *Mount) resetLocked(cfg *models.WidgetConfig) {
	m.closeDoneLocked() // wake waiters of the superseded generation
	m.gen++
	m.cfg = cfg
	m.resolved = nil
	m.acqErr = nil
	m.started = false
	m.done = make(chan struct{})
	m.doneClosed = false

	if cfg.Source == models.SourceSupplied {
		m.resolved = m.source.resolveSupplied(cfg)
		m.state = StateReady
		m.started = true
		m.closeDoneLocked()
		return
	}
	m.state = StateLoading
}

func (m *Mount) closeDoneLocked() {
	if m.done != nil && !m.doneClosed {
		close(m.done)
		m.doneClosed = true
	}
}

// Start begins remote acquisition. It is idempotent: repeated calls for the
// same configuration issue no additional fetch.
func (m *Mount) Start(ctx context.Context) {
	m.mu.Lock()
	if m.torn || m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	gen := m.gen
	cfg := m.cfg
	done := m.done
	m.mu.Unlock()

	go func() {
		resolved, err := m.source.Resolve(ctx, cfg)
		m.commit(gen, done, resolved, err)
	}()
}

// commit applies a fetch result. The generation check drops results that
// arrive after reconfiguration or teardown.
func (m *Mount) commit(gen uint64, done chan struct{}, resolved *models.ResolvedReviews, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.torn || gen != m.gen {
		m.logger.Debug().
			Str("mount", m.id).
			Uint64("gen", gen).
			Msg("Stale fetch result dropped")
		return
	}

	if err != nil {
		m.acqErr = fmt.Errorf("%w: %v", models.ErrAcquisitionFailed, err)
		m.state = StateError
		m.logger.Warn().
			Str("mount", m.id).
			Err(err).
			Msg("Review acquisition failed")
	} else {
		m.resolved = resolved
		m.state = StateReady
	}
	m.closeDoneLocked()
}

// Await starts acquisition if needed and blocks until it completes or ctx is
// done, returning the effective state.
func (m *Mount) Await(ctx context.Context) State {
	m.Start(ctx)

	m.mu.Lock()
	done := m.done
	m.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
	}
	return m.EffectiveState()
}

// Reconfigure replaces the mount's configuration. A remote configuration with
// an unchanged featurableId keeps the current acquisition (no second fetch);
// anything else is treated as a fresh mount of the state machine.
func (m *Mount) Reconfigure(cfg *models.WidgetConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.torn {
		return
	}
	if cfg.Source == models.SourceRemote &&
		m.cfg != nil && m.cfg.Source == models.SourceRemote &&
		m.cfg.FeaturableID == cfg.FeaturableID {
		m.cfg = cfg
		return
	}
	m.resetLocked(cfg)
}

// Teardown invalidates the mount. In-flight fetch results are discarded.
func (m *Mount) Teardown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.torn = true
	m.gen++
	m.closeDoneLocked()
}

// State returns the raw lifecycle state.
func (m *Mount) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// EffectiveState returns the externally observable state: Ready collapses to
// Error for the badge layout when either aggregate figure is missing, since
// the badge cannot render without both.
func (m *Mount) EffectiveState() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.effectiveStateLocked()
}

func (m *Mount) effectiveStateLocked() State {
	if m.state == StateReady &&
		m.cfg.Layout == models.LayoutBadge &&
		!m.resolved.HasAggregates() {
		return StateError
	}
	return m.state
}

// Resolved returns the aggregate state and whether it may be rendered.
func (m *Mount) Resolved() (*models.ResolvedReviews, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateReady {
		return nil, false
	}
	return m.resolved, true
}

// Err returns the acquisition error, if acquisition failed.
func (m *Mount) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.acqErr
}

// Config returns the mount's canonical configuration.
func (m *Mount) Config() *models.WidgetConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cfg
}
