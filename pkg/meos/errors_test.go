package meos

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
)

func TestCallErrMapsLifecycleSentinels(t *testing.T) {
	assert.ErrorIs(t, callErr("Length", backend.ErrNotReady), ErrNotInitialized)
	assert.ErrorIs(t, callErr("Length", fmt.Errorf("wrapped: %w", backend.ErrNotBuilt)), ErrNotBuilt)
	assert.NoError(t, callErr("Length", nil))
}

func TestCallErrWrapsNativeError(t *testing.T) {
	before := testutil.ToFloat64(nativeErrors.WithLabelValues("tpoint_length"))

	err := callErr("Length", &backend.NativeError{Op: "tpoint_length", Code: 12, Message: "bad input"})

	var ce *NativeCallError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Length", ce.Op)
	assert.Equal(t, 12, ce.Code)
	assert.Equal(t, "bad input", ce.Message)
	assert.Equal(t, "meos.Length: bad input (code 12)", err.Error())
	assert.Equal(t, before+1, testutil.ToFloat64(nativeErrors.WithLabelValues("tpoint_length")))
}

func TestParseErr(t *testing.T) {
	err := parseErr("POINT(", &backend.NativeError{Op: "temporal_in", Code: 3, Message: "syntax error"})

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "POINT(", pe.Input)
	assert.Equal(t, "syntax error", pe.Message)
	assert.Equal(t, `meos: parse "POINT(": syntax error`, err.Error())

	assert.ErrorIs(t, parseErr("x", backend.ErrNotReady), ErrNotInitialized)
}

func TestParseErrorTruncatesLongInput(t *testing.T) {
	long := strings.Repeat("a", 200)
	err := &ParseError{Input: long, Message: "bad"}
	assert.Contains(t, err.Error(), strings.Repeat("a", maxInputInMessage)+"...")
	assert.NotContains(t, err.Error(), strings.Repeat("a", maxInputInMessage+1))
	assert.Len(t, err.Input, 200)
}

func TestConstructErr(t *testing.T) {
	err := constructErr("NewTFloatSequence", &backend.NativeError{Op: "tsequence_make_free", Message: "timestamps must be increasing"})

	var ce *ConstructionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "meos.NewTFloatSequence: timestamps must be increasing", err.Error())
}

func TestNativeCallErrorWithoutCode(t *testing.T) {
	assert.Equal(t, "meos.Values: not defined for tgeompoint",
		(&NativeCallError{Op: "Values", Message: "not defined for tgeompoint"}).Error())
}

func TestPlainErrorBecomesNativeCallError(t *testing.T) {
	err := callErr("Copy", errors.New("boom"))
	var ce *NativeCallError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "boom", ce.Message)
	assert.Zero(t, ce.Code)
}
