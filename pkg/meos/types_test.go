package meos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

func TestParseInterpolation(t *testing.T) {
	tests := []struct {
		in   string
		want Interpolation
	}{
		{"none", InterpNone},
		{"Discrete", Discrete},
		{"step", Step},
		{"STEPWISE", Step},
		{" linear ", Linear},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseInterpolation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseInterpolation("cubic")
	require.Error(t, err)
}

func TestInterpolationMatchesNative(t *testing.T) {
	assert.Equal(t, backend.InterpDiscrete, Discrete.native())
	assert.Equal(t, backend.InterpStep, Step.native())
	assert.Equal(t, backend.InterpLinear, Linear.native())
	assert.Equal(t, "Linear", Linear.String())
	assert.Equal(t, "None", InterpNone.String())
}

func TestSubtypeKinds(t *testing.T) {
	assert.Equal(t, Instant, subtypeOf(backend.SubtypeInstant))
	assert.Equal(t, SequenceSet, subtypeOf(backend.SubtypeSequenceSet))
	assert.Equal(t, SubtypeUnknown, subtypeOf(backend.SubtypeAny))
	assert.Equal(t, handle.KindSequence, Sequence.kind())
	assert.Equal(t, "SequenceSet", SequenceSet.String())
}

func TestTempTypeNames(t *testing.T) {
	assert.Equal(t, "tgeompoint", TypeTGeomPoint.String())
	assert.Equal(t, "ttext", TypeTText.String())
}

func TestTypeFor(t *testing.T) {
	assert.True(t, typeFor[float64](backend.TypeTFloat))
	assert.False(t, typeFor[float64](backend.TypeTInt))
	assert.True(t, typeFor[*Geometry](backend.TypeTGeogPoint))
	assert.True(t, typeFor[*Geometry](backend.TypeTGeomPoint))
	assert.Equal(t, "tpoint", valueTypeName[*Geometry]())
	assert.Equal(t, "tbool", valueTypeName[bool]())
}

func TestSpanTypeOf(t *testing.T) {
	assert.Equal(t, backend.SpanInt, spanTypeOf[int]())
	assert.Equal(t, backend.SpanFloat, spanTypeOf[float64]())
}

func TestWKBVariants(t *testing.T) {
	assert.Equal(t, uint8(0x0C), uint8(WKBLittleEndian|WKBExtended))
}
