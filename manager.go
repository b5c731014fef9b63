package partid

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// DefaultWaitTimeout bounds the wait for the analysis library to become available.
	DefaultWaitTimeout = 15 * time.Second
	// DefaultPollInterval is the availability polling period during that wait.
	DefaultPollInterval = 100 * time.Millisecond
)

// Library is a morphological analysis library that may become available
// some time after process start.
type Library interface {
	// Available reports whether the library can be used right now.
	Available() bool
	// Loaded is closed or signalled once the library becomes available.
	// A nil channel means the library only supports polling.
	Loaded() <-chan struct{}
	// Build constructs a tokenizer from one dictionary source.
	Build(ctx context.Context, src Source) (Tokenizer, error)
}

// State is the lifecycle stage of a Manager.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	}
	return "uninitialized"
}

// Manager owns the statistical analyzer lifecycle. It loads at most once per
// process: concurrent initialization requests join the load in flight, and a
// failed load is never retried.
type Manager struct {
	library      Library
	sources      []Source
	waitTimeout  time.Duration
	pollInterval time.Duration
	logger       *LogConsumer

	mu        sync.Mutex
	state     State
	tokenizer Tokenizer
	source    Source
	err       error
	done      chan struct{}
}

// Option configures a Manager.
type Option func(*Manager)

func WithLibrary(l Library) Option {
	return func(m *Manager) { m.library = l }
}

// WithSources sets the ordered dictionary sources tried by the build.
func WithSources(sources ...Source) Option {
	return func(m *Manager) { m.sources = append([]Source(nil), sources...) }
}

// WithWaitTimeout bounds the wait for the library. Non-positive values keep
// the default.
func WithWaitTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.waitTimeout = d
		}
	}
}

// WithPollInterval sets the availability polling period. Non-positive values
// keep the default.
func WithPollInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.pollInterval = d
		}
	}
}

func WithLogConsumer(l *LogConsumer) Option {
	return func(m *Manager) { m.logger = l }
}

// NewManager returns an uninitialized manager. Without options it builds
// kagome tokenizers from DefaultSources.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		library:      KagomeLibrary{},
		sources:      append([]Source(nil), DefaultSources...),
		waitTimeout:  DefaultWaitTimeout,
		pollInterval: DefaultPollInterval,
		logger:       NewLogConsumer(),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start begins loading in the background and returns immediately. Only the
// first call has an effect; it reports whether this call started the load.
func (m *Manager) Start() bool {
	m.mu.Lock()
	if m.state != StateUninitialized {
		state := m.state
		m.mu.Unlock()
		m.logger.Log("", fmt.Sprintf("initialization requested while %s, ignoring", state))
		return false
	}
	m.state = StateLoading
	m.mu.Unlock()

	go m.load()
	return true
}

// Init starts loading if needed and waits for the outcome. It returns nil
// once the analyzer is ready and an error wrapping ErrUnavailable when the
// load failed. Callers may always fall back to the dictionary segmenter.
func (m *Manager) Init(ctx context.Context) error {
	m.Start()
	return m.Wait(ctx)
}

// Wait blocks until the load in flight resolves or ctx is done.
func (m *Manager) Wait(ctx context.Context) error {
	if m.State() == StateUninitialized {
		return ErrNotReady
	}
	select {
	case <-m.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateFailed {
		return fmt.Errorf("%w: %w", ErrUnavailable, m.err)
	}
	return nil
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Loading reports whether a load is in flight.
func (m *Manager) Loading() bool { return m.State() == StateLoading }

// Ready reports whether the statistical analyzer can be used.
func (m *Manager) Ready() bool { return m.State() == StateReady }

// Tokenizer returns the loaded tokenizer, if any.
func (m *Manager) Tokenizer() (Tokenizer, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokenizer, m.tokenizer != nil
}

// Source returns the dictionary source the tokenizer was built from.
func (m *Manager) Source() Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}

// Err returns the cause of a failed load.
func (m *Manager) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Manager) load() {
	started := time.Now()
	t, src, err := m.build()

	m.mu.Lock()
	if err != nil {
		m.state = StateFailed
		m.err = err
	} else {
		m.state = StateReady
		m.tokenizer = t
		m.source = src
	}
	close(m.done)
	m.mu.Unlock()

	if err != nil {
		m.logger.Err("", err, "statistical analyzer unavailable, using dictionary segmentation")
		return
	}
	m.logger.Status(src.String(), fmt.Sprintf("statistical analyzer ready in %s", time.Since(started).Round(time.Millisecond)))
}

func (m *Manager) build() (Tokenizer, Source, error) {
	m.logger.Log("", "waiting for morphological analysis library")
	if err := m.waitForLibrary(); err != nil {
		return nil, Source{}, err
	}

	var errs []error
	for _, src := range m.sources {
		m.logger.Log(src.String(), "building tokenizer")
		t, err := m.library.Build(context.Background(), src)
		if err != nil {
			berr := &BuildError{Source: src, Err: err}
			m.logger.Err(src.String(), berr, "dictionary source failed, trying next")
			errs = append(errs, berr)
			continue
		}
		return t, src, nil
	}
	if len(errs) == 0 {
		return nil, Source{}, ErrNoSource
	}
	return nil, Source{}, fmt.Errorf("%w: %w", ErrNoSource, errors.Join(errs...))
}

// waitForLibrary resolves on whichever comes first: the library's push
// notification, a successful poll, or the timeout.
func (m *Manager) waitForLibrary() error {
	if m.library.Available() {
		return nil
	}
	timer := time.NewTimer(m.waitTimeout)
	defer timer.Stop()
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()
	loaded := m.library.Loaded()

	for {
		select {
		case <-loaded:
			m.logger.Log("", "library available (notified)")
			return nil
		case <-ticker.C:
			if m.library.Available() {
				m.logger.Log("", "library available (polled)")
				return nil
			}
		case <-timer.C:
			return fmt.Errorf("%w after %s", ErrInitTimeout, m.waitTimeout)
		}
	}
}

var (
	defaultManager     *Manager
	defaultManagerOnce sync.Once
)

// DefaultManager returns the process-wide manager used by the package-level
// functions. It is created on first use but not started.
func DefaultManager() *Manager {
	defaultManagerOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}
