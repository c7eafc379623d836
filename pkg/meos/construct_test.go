package meos

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSamples(t *testing.T) {
	t0 := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		samples []Sample[float64]
		wantErr string
	}{
		{"empty", nil, "no instants"},
		{"single", []Sample[float64]{{1, t0}}, ""},
		{"increasing", []Sample[float64]{{1, t0}, {2, t0.Add(time.Hour)}, {3, t0.Add(2 * time.Hour)}}, ""},
		{"duplicate", []Sample[float64]{{1, t0}, {2, t0}}, "instant 1"},
		{"decreasing", []Sample[float64]{{1, t0.Add(time.Hour)}, {2, t0}}, "is not after"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSamples("NewTFloatSequence", tt.samples)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var ce *ConstructionError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, "NewTFloatSequence", ce.Op)
			assert.Contains(t, ce.Message, tt.wantErr)
		})
	}
}

func TestValidateSamplesNilGeometry(t *testing.T) {
	err := validateSamples("NewTPointSequence", []Sample[*Geometry]{{nil, time.Now()}})
	var ce *ConstructionError
	require.True(t, errors.As(err, &ce))
	assert.Contains(t, ce.Message, "no geometry")
}
