//go:build cgo && meos

package meos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSequenceFromSpan(t *testing.T) {
	span, err := ParseTstzSpan("[2001-01-01, 2001-01-03]")
	require.NoError(t, err)
	defer span.Free()

	tf, err := NewSequenceFromSpan(2.5, span, InterpNone)
	require.NoError(t, err)
	defer tf.Free()
	assert.Equal(t, Sequence, tf.Subtype())
	assert.Equal(t, Linear, tf.Interpolation())
	v, err := tf.StartValue()
	require.NoError(t, err)
	assert.Equal(t, 2.5, v)
	start, err := tf.StartTimestamp()
	require.NoError(t, err)
	assert.True(t, start.Equal(utc(2001, 1, 1, 0, 0)))
	end, err := tf.EndTimestamp()
	require.NoError(t, err)
	assert.True(t, end.Equal(utc(2001, 1, 3, 0, 0)))

	tb, err := NewSequenceFromSpan(true, span, InterpNone)
	require.NoError(t, err)
	defer tb.Free()
	assert.Equal(t, Step, tb.Interpolation())
	always, err := tb.AlwaysEqual(true)
	require.NoError(t, err)
	assert.True(t, always)

	tt, err := NewSequenceFromSpan("hello", span, Step)
	require.NoError(t, err)
	defer tt.Free()
	s, err := tt.EndValue()
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	origin := mustPoint(t, 1, 2)
	tp, err := NewSequenceFromSpan(origin, span, InterpNone)
	require.NoError(t, err)
	defer tp.Free()
	g, err := tp.EndValue()
	require.NoError(t, err)
	defer g.Free()
	same, err := g.Same(origin)
	require.NoError(t, err)
	assert.True(t, same)
	assert.True(t, origin.Alive())
}

func TestNewSequenceSetFromSpanSet(t *testing.T) {
	spans, err := ParseTstzSpanSet("{[2001-01-01, 2001-01-02], [2001-01-03, 2001-01-04]}")
	require.NoError(t, err)
	defer spans.Free()

	ti, err := NewSequenceSetFromSpanSet(7, spans, InterpNone)
	require.NoError(t, err)
	defer ti.Free()
	assert.Equal(t, SequenceSet, ti.Subtype())
	n, err := ti.NumInstants()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	v, err := ti.MaxValue()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestNewSequenceFromSpanRejects(t *testing.T) {
	span, err := ParseTstzSpan("[2001-01-01, 2001-01-03]")
	require.NoError(t, err)
	defer span.Free()
	freed, err := ParseTstzSpan("[2001-01-01, 2001-01-03]")
	require.NoError(t, err)
	freed.Free()

	var ce *ConstructionError
	_, err = NewSequenceFromSpan(1.0, span, Discrete)
	assert.ErrorAs(t, err, &ce)
	_, err = NewSequenceFromSpan(3, span, Linear)
	assert.ErrorAs(t, err, &ce)
	_, err = NewSequenceFromSpan[*Geometry](nil, span, Linear)
	assert.ErrorAs(t, err, &ce)
	_, err = NewSequenceFromSpan(1.0, freed, Linear)
	assert.ErrorIs(t, err, ErrReleased)
}
