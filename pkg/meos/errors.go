package meos

import (
	"context"
	"errors"
	"fmt"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/lifecycle"
	"github.com/mobilitydb/meos-go/pkg/meos/logging"
)

var (
	// ErrNotInitialized is returned by any operation before Initialize
	// succeeded or after Finalize.
	ErrNotInitialized = lifecycle.ErrNotInitialized

	// ErrAlreadyInitialized is returned by a second Initialize.
	ErrAlreadyInitialized = lifecycle.ErrAlreadyInitialized

	// ErrFinalized is returned by Initialize after Finalize; the native
	// library cannot be restarted in the same process.
	ErrFinalized = lifecycle.ErrFinalized

	// ErrNotBuilt reports that the binary was built without the native
	// bindings (cgo and the meos build tag).
	ErrNotBuilt = backend.ErrNotBuilt

	// ErrReleased is returned by methods called on a value after Free.
	ErrReleased = errors.New("meos: value already released")

	// ErrEmpty reports a result the native library defines as empty, for
	// example a restriction that keeps nothing or a distance between
	// values that share no time.
	ErrEmpty = errors.New("meos: empty result")
)

const maxInputInMessage = 64

// ParseError reports text or binary input the native library rejected.
type ParseError struct {
	Input   string
	Message string
}

func (e *ParseError) Error() string {
	in := e.Input
	if len(in) > maxInputInMessage {
		in = in[:maxInputInMessage] + "..."
	}
	return fmt.Sprintf("meos: parse %q: %s", in, e.Message)
}

// ConstructionError reports a value that could not be assembled from its
// parts, for example instants out of time order.
type ConstructionError struct {
	Op      string
	Message string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("meos.%s: %s", e.Op, e.Message)
}

// NativeCallError reports any other failure raised by the native library.
type NativeCallError struct {
	Op      string
	Code    int
	Message string
}

func (e *NativeCallError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("meos.%s: %s (code %d)", e.Op, e.Message, e.Code)
	}
	return fmt.Sprintf("meos.%s: %s", e.Op, e.Message)
}

// lifecycleErr maps backend sentinels to their public counterparts.
func lifecycleErr(err error) error {
	switch {
	case errors.Is(err, backend.ErrNotReady):
		return ErrNotInitialized
	case errors.Is(err, backend.ErrNotBuilt):
		return ErrNotBuilt
	}
	return nil
}

// nativeMessage extracts the handler message and code and records the
// failure.
func nativeMessage(op string, err error) (string, int) {
	var ne *backend.NativeError
	if !errors.As(err, &ne) {
		return err.Error(), 0
	}
	nativeErrors.WithLabelValues(ne.Op).Inc()
	logger().Debug(context.Background(), "native error",
		"op", op, "native_op", ne.Op, "code", ne.Code, "message", ne.Message)
	return ne.Message, ne.Code
}

func callErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if le := lifecycleErr(err); le != nil {
		return le
	}
	msg, code := nativeMessage(op, err)
	return &NativeCallError{Op: op, Code: code, Message: msg}
}

func parseErr(input string, err error) error {
	if err == nil {
		return nil
	}
	if le := lifecycleErr(err); le != nil {
		return le
	}
	msg, _ := nativeMessage("parse", err)
	return &ParseError{Input: input, Message: msg}
}

func constructErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if le := lifecycleErr(err); le != nil {
		return le
	}
	msg, _ := nativeMessage(op, err)
	return &ConstructionError{Op: op, Message: msg}
}

// noResult is used when a function that signals failure with null returned
// null without reporting a message.
func noResult(op string) error {
	return &NativeCallError{Op: op, Code: -1, Message: "native call returned no result"}
}

func logger() logging.Logger {
	return current().logger
}
