package partid

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(lib *fakeLibrary, opts ...Option) *Manager {
	base := []Option{
		WithLibrary(lib),
		WithSources(testSources...),
		WithWaitTimeout(time.Second),
		WithPollInterval(5 * time.Millisecond),
	}
	return NewManager(append(base, opts...)...)
}

func TestManagerConcurrentInitBuildsOnce(t *testing.T) {
	lib := &fakeLibrary{available: true, block: make(chan struct{})}
	m := newTestManager(lib)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = m.Init(context.Background())
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(lib.block)
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.EqualValues(t, 1, lib.builds.Load())
	assert.Equal(t, StateReady, m.State())
	assert.Equal(t, "primary", m.Source().Name)
}

func TestManagerStartOnlyOnce(t *testing.T) {
	lib := &fakeLibrary{available: true}
	m := newTestManager(lib)

	var started atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Start() {
				started.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.EqualValues(t, 1, started.Load())
	require.NoError(t, m.Wait(context.Background()))
	assert.False(t, m.Start(), "a finished load is never restarted")
}

func TestManagerSourceFallback(t *testing.T) {
	lib := &fakeLibrary{available: true, fail: map[string]bool{"primary": true}}
	m := newTestManager(lib)

	require.NoError(t, m.Init(context.Background()))
	assert.Equal(t, []string{"primary", "mirror"}, lib.builtNames())
	assert.Equal(t, "mirror", m.Source().Name)
	tok, ok := m.Tokenizer()
	assert.True(t, ok)
	assert.NotNil(t, tok)
}

func TestManagerAllSourcesFail(t *testing.T) {
	lib := &fakeLibrary{available: true, fail: map[string]bool{"primary": true, "mirror": true}}
	m := newTestManager(lib)

	err := m.Init(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, ErrNoSource)
	var be *BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "primary", be.Source.Name)

	assert.Equal(t, StateFailed, m.State())
	_, ok := m.Tokenizer()
	assert.False(t, ok)

	// no retry after a failure
	assert.False(t, m.Start())
	assert.ErrorIs(t, m.Init(context.Background()), ErrUnavailable)
	assert.EqualValues(t, 2, lib.builds.Load())
}

func TestManagerNoSources(t *testing.T) {
	lib := &fakeLibrary{available: true}
	m := NewManager(WithLibrary(lib), WithSources())
	assert.ErrorIs(t, m.Init(context.Background()), ErrNoSource)
}

func TestManagerTimeout(t *testing.T) {
	lib := &fakeLibrary{}
	m := newTestManager(lib, WithWaitTimeout(40*time.Millisecond))

	start := time.Now()
	err := m.Init(context.Background())
	assert.ErrorIs(t, err, ErrInitTimeout)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.GreaterOrEqual(t, time.Since(start), 40*time.Millisecond)
	assert.Zero(t, lib.builds.Load())
	assert.Equal(t, StateFailed, m.State())
	assert.ErrorIs(t, m.Err(), ErrInitTimeout)
}

func TestManagerPushNotification(t *testing.T) {
	lib := &fakeLibrary{loaded: make(chan struct{})}
	// polling would never see the library; only the push can resolve the wait
	m := newTestManager(lib, WithPollInterval(time.Hour))

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(lib.loaded)
	}()
	require.NoError(t, m.Init(context.Background()))
	assert.True(t, m.Ready())
}

func TestManagerPolling(t *testing.T) {
	lib := &fakeLibrary{}
	m := newTestManager(lib)

	go func() {
		time.Sleep(20 * time.Millisecond)
		lib.setAvailable()
	}()
	require.NoError(t, m.Init(context.Background()))
	assert.True(t, m.Ready())
	assert.EqualValues(t, 1, lib.builds.Load())
}

func TestManagerWait(t *testing.T) {
	lib := &fakeLibrary{available: true, block: make(chan struct{})}
	m := newTestManager(lib)

	assert.ErrorIs(t, m.Wait(context.Background()), ErrNotReady)

	require.True(t, m.Start())
	assert.True(t, m.Loading())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, m.Wait(ctx), context.DeadlineExceeded)

	close(lib.block)
	require.NoError(t, m.Wait(context.Background()))
	assert.Equal(t, StateReady, m.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "ready", StateReady.String())
	assert.Equal(t, "failed", StateFailed.String())
}

func TestManagerIgnoresNonPositiveDurations(t *testing.T) {
	lib := &fakeLibrary{}
	m := NewManager(WithLibrary(lib), WithSources(testSources...), WithPollInterval(0), WithWaitTimeout(-time.Second))
	assert.Equal(t, DefaultPollInterval, m.pollInterval)
	assert.Equal(t, DefaultWaitTimeout, m.waitTimeout)

	go func() {
		time.Sleep(20 * time.Millisecond)
		lib.setAvailable()
	}()
	require.NoError(t, m.Init(context.Background()))
	assert.True(t, m.Ready())
}
