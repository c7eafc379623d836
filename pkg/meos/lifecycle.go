package meos

import (
	"context"
	"errors"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/lifecycle"
	"github.com/mobilitydb/meos-go/pkg/meos/logging"
)

// State is the lifecycle position of the native library.
type State = lifecycle.State

const (
	Uninitialized = lifecycle.Uninitialized
	Initialized   = lifecycle.Initialized
	Finalized     = lifecycle.Finalized
)

var guard = lifecycle.New(backend.Initialize, backend.Finalize)

// Initialize prepares the native library for use with the given settings.
// It must succeed once before any other call. A timezone the library
// rejects is returned as *NativeCallError and leaves the library
// uninitialized so the call can be retried.
//
// Notices and warnings raised by the native library do not fail a call;
// they are logged at Debug.
func Initialize(cfg Config) error {
	cfg = cfg.withDefaults()

	backend.SetNoticeHandler(noticeLogger(cfg.Logger))
	if err := guard.Initialize(cfg.Timezone); err != nil {
		switch {
		case errors.Is(err, ErrAlreadyInitialized):
			backend.SetNoticeHandler(noticeLogger(logger()))
			return err
		case errors.Is(err, ErrFinalized), errors.Is(err, ErrNotBuilt):
			return err
		}
		return callErr("Initialize", err)
	}

	apply(cfg)
	cfg.Logger.Info(context.Background(), "meos initialized",
		"timezone", cfg.Timezone, "native_version", backend.Version())
	return nil
}

func noticeLogger(l logging.Logger) backend.NoticeFunc {
	return func(level, code int, msg string) {
		l.Debug(context.Background(), "meos notice", "level", level, "code", code, "message", msg)
	}
}

// Finalize releases the native library. It is safe to call more than once
// and before Initialize. Values still alive afterwards can only be freed.
func Finalize() {
	if guard.Finalize() {
		logger().Info(context.Background(), "meos finalized")
	}
}

// CurrentState reports whether the library is uninitialized, initialized or
// finalized.
func CurrentState() State {
	return guard.State()
}

func requireInitialized() error {
	return guard.Require()
}

// Library ties Initialize and Finalize to a value so callers can defer
// Close.
type Library struct {
	cfg    Config
	closed bool
}

// Open initializes the native library and returns a handle whose Close
// finalizes it.
func Open(cfg Config) (*Library, error) {
	if err := Initialize(cfg); err != nil {
		return nil, err
	}
	return &Library{cfg: cfg.withDefaults()}, nil
}

// Config returns the settings the library was opened with.
func (l *Library) Config() Config {
	return l.cfg
}

// Close finalizes the native library. A second Close returns
// ErrFinalized.
func (l *Library) Close() error {
	if l == nil {
		return nil
	}
	if l.closed {
		return ErrFinalized
	}
	Finalize()
	l.closed = true
	return nil
}
