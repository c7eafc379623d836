package lifecycle

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNative struct {
	inits     atomic.Int32
	finals    atomic.Int32
	failFirst bool
	lastTZ    string
}

func (f *fakeNative) init(tz string) error {
	n := f.inits.Add(1)
	f.lastTZ = tz
	if f.failFirst && n == 1 {
		return errors.New("time zone not recognized")
	}
	return nil
}

func (f *fakeNative) finalize() { f.finals.Add(1) }

func TestInitializeOnce(t *testing.T) {
	f := &fakeNative{}
	g := New(f.init, f.finalize)

	assert.Equal(t, Uninitialized, g.State())
	assert.ErrorIs(t, g.Require(), ErrNotInitialized)

	require.NoError(t, g.Initialize("UTC"))
	assert.Equal(t, Initialized, g.State())
	assert.NoError(t, g.Require())
	assert.Equal(t, "UTC", f.lastTZ)

	assert.ErrorIs(t, g.Initialize("UTC"), ErrAlreadyInitialized)
	assert.EqualValues(t, 1, f.inits.Load())
}

func TestFailedInitializeCanRetry(t *testing.T) {
	f := &fakeNative{failFirst: true}
	g := New(f.init, f.finalize)

	err := g.Initialize("Mars/Olympus")
	require.Error(t, err)
	assert.Equal(t, Uninitialized, g.State())
	assert.ErrorIs(t, g.Require(), ErrNotInitialized)

	require.NoError(t, g.Initialize("Europe/Brussels"))
	assert.Equal(t, Initialized, g.State())
	assert.EqualValues(t, 2, f.inits.Load())
}

func TestFinalizeIdempotent(t *testing.T) {
	f := &fakeNative{}
	g := New(f.init, f.finalize)

	// Never initialized: nothing to tear down.
	assert.False(t, g.Finalize())
	assert.EqualValues(t, 0, f.finals.Load())
	assert.Equal(t, Uninitialized, g.State())

	require.NoError(t, g.Initialize("UTC"))
	assert.True(t, g.Finalize())
	assert.False(t, g.Finalize())
	assert.EqualValues(t, 1, f.finals.Load())
	assert.Equal(t, Finalized, g.State())
	assert.ErrorIs(t, g.Require(), ErrNotInitialized)
}

func TestInitializeAfterFinalize(t *testing.T) {
	f := &fakeNative{}
	g := New(f.init, f.finalize)

	require.NoError(t, g.Initialize("UTC"))
	g.Finalize()

	assert.ErrorIs(t, g.Initialize("UTC"), ErrFinalized)
	assert.EqualValues(t, 1, f.inits.Load())
}

func TestConcurrentInitialize(t *testing.T) {
	f := &fakeNative{}
	g := New(f.init, f.finalize)

	const n = 32
	var (
		wg      sync.WaitGroup
		ok      atomic.Int32
		already atomic.Int32
	)
	start := make(chan struct{})
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := g.Initialize("UTC")
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, ErrAlreadyInitialized):
				already.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, ok.Load())
	assert.EqualValues(t, n-1, already.Load())
	assert.EqualValues(t, 1, f.inits.Load())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "uninitialized", Uninitialized.String())
	assert.Equal(t, "initialized", Initialized.String())
	assert.Equal(t, "finalized", Finalized.String())
	assert.Equal(t, "unknown", State(9).String())
}
