//go:build cgo && meos

package meos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateSpan(t *testing.T) {
	d := func(day int) Date { return Date{2001, time.January, day} }

	parsed, err := ParseDateSpan("[2001-01-01, 2001-01-05]")
	require.NoError(t, err)
	defer parsed.Free()
	wkt, err := parsed.WKT(0)
	require.NoError(t, err)
	assert.Equal(t, "[2001-01-01, 2001-01-06)", wkt)
	upper, err := parsed.Upper()
	require.NoError(t, err)
	assert.Equal(t, d(6), upper)

	s, err := NewDateSpan(d(1), d(3), true, false)
	require.NoError(t, err)
	defer s.Free()
	lower, err := s.Lower()
	require.NoError(t, err)
	assert.Equal(t, d(1), lower)

	tests := []struct {
		day  Date
		want bool
	}{
		{d(1), true},
		{d(2), true},
		{d(3), false},
		{Date{2000, time.December, 31}, false},
	}
	for _, tt := range tests {
		t.Run(tt.day.String(), func(t *testing.T) {
			in, err := ContainsDate(s, tt.day)
			require.NoError(t, err)
			assert.Equal(t, tt.want, in)
		})
	}

	contained, err := parsed.Contains(s)
	require.NoError(t, err)
	assert.True(t, contained)

	period, err := DatePeriod(s)
	require.NoError(t, err)
	defer period.Free()
	start, err := period.Lower()
	require.NoError(t, err)
	assert.True(t, start.Equal(utc(2001, 1, 1, 0, 0)), start)
	width, err := Duration(period)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, width)
}

func TestDateSpanSetAndSet(t *testing.T) {
	ss, err := ParseDateSpanSet("{[2001-01-01, 2001-01-03), [2001-01-05, 2001-01-06)}")
	require.NoError(t, err)
	defer ss.Free()
	n, err := ss.NumSpans()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	periods, err := DatePeriods(ss)
	require.NoError(t, err)
	defer periods.Free()
	total, err := TotalDuration(periods, false)
	require.NoError(t, err)
	assert.Equal(t, 3*24*time.Hour, total)

	set, err := NewDateSet(Date{2001, time.January, 2}, Date{2001, time.January, 1}, Date{2001, time.January, 2})
	require.NoError(t, err)
	defer set.Free()
	count, err := set.NumValues()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	wkt, err := set.WKT(0)
	require.NoError(t, err)
	assert.Equal(t, "{2001-01-01, 2001-01-02}", wkt)

	_, err = NewDateSet()
	var ce *ConstructionError
	require.ErrorAs(t, err, &ce)
}

func TestSpanPositionAndHash(t *testing.T) {
	a, err := NewIntSpan(1, 3, true, false)
	require.NoError(t, err)
	defer a.Free()
	b, err := ParseIntSpan("[5, 7)")
	require.NoError(t, err)
	defer b.Free()

	tests := []struct {
		name string
		fn   func(*IntSpan, *IntSpan) (bool, error)
		ab   bool
		ba   bool
	}{
		{"left", (*IntSpan).Left, true, false},
		{"overleft", (*IntSpan).OverLeft, true, false},
		{"right", (*IntSpan).Right, false, true},
		{"overright", (*IntSpan).OverRight, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.ab, got)
			got, err = tt.fn(b, a)
			require.NoError(t, err)
			assert.Equal(t, tt.ba, got)
		})
	}

	same, err := ParseIntSpan("[1, 2]")
	require.NoError(t, err)
	defer same.Free()
	ha, err := a.Hash()
	require.NoError(t, err)
	hs, err := same.Hash()
	require.NoError(t, err)
	assert.Equal(t, ha, hs)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb)
}
