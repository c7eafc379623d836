package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	type report struct {
		level, code int
		msg         string
	}
	var got []report
	SetNoticeHandler(func(level, code int, msg string) {
		got = append(got, report{level, code, msg})
	})
	t.Cleanup(func() { SetNoticeHandler(nil) })

	tests := []struct {
		name   string
		level  int
		failed bool
	}{
		{"notice", 18, false},
		{"warning", 19, false},
		{"error", LevelError, true},
		{"fatal", 22, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = nil
			assert.Equal(t, tt.failed, classify(tt.level, 7, tt.name))
			if tt.failed {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, []report{{tt.level, 7, tt.name}}, got)
			}
		})
	}
}

func TestClassifyWithoutNoticeHandler(t *testing.T) {
	SetNoticeHandler(nil)
	assert.NotPanics(t, func() {
		assert.False(t, classify(19, 1, "dropped"))
	})
	assert.True(t, classify(LevelError, 1, "kept"))
}
