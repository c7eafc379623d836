package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/mobilitydb/meos-go/pkg/meos"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not built", fmt.Errorf("open meos: %w", meos.ErrNotBuilt), exitNoNative},
		{"parse", &meos.ParseError{Input: "[1@", Message: "bad"}, exitInput},
		{"construction", &meos.ConstructionError{Op: "NewTFloatSequence", Message: "no instants"}, exitInput},
		{"other", errors.New("boom"), exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestPrintError(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	PrintError(&buf, meos.ErrNotBuilt)
	assert.Contains(t, buf.String(), "✗ ")
	assert.Contains(t, buf.String(), "-tags meos")

	buf.Reset()
	PrintError(&buf, errors.New("boom"))
	assert.Equal(t, "✗ boom\n", buf.String())
}

func TestParseTemporalUnknownType(t *testing.T) {
	_, err := parseTemporal("tcbuffer", "1@2001-01-01")
	assert.ErrorContains(t, err, "unknown type")
}
