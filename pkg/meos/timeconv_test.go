package meos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
)

func TestTimestampEpoch(t *testing.T) {
	epoch := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(0), toTimestamp(epoch))
	assert.True(t, fromTimestamp(0).Equal(epoch))
}

func TestTimestampRoundTrip(t *testing.T) {
	tests := []time.Time{
		time.Date(2001, 1, 1, 8, 0, 0, 0, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 999999000, time.UTC),
		time.Date(2024, 2, 29, 12, 30, 0, 123456000, time.FixedZone("CET", 3600)),
	}
	for _, ts := range tests {
		got := fromTimestamp(toTimestamp(ts))
		assert.True(t, got.Equal(ts), "%s != %s", got, ts)
		assert.Equal(t, time.UTC, got.Location())
	}
}

func TestTimestampTruncatesToMicroseconds(t *testing.T) {
	ts := time.Date(2001, 1, 1, 0, 0, 0, 1500, time.UTC)
	assert.Equal(t, 1, fromTimestamp(toTimestamp(ts)).Nanosecond()/1000)
}

func TestIntervalConversion(t *testing.T) {
	iv := toInterval(90 * time.Minute)
	require.NotNil(t, iv)
	assert.Equal(t, int64(90*60*1_000_000), iv.Micros)
	assert.Zero(t, iv.Days)
	assert.Zero(t, iv.Months)

	assert.Nil(t, optInterval(0))
	assert.NotNil(t, optInterval(time.Second))

	assert.Equal(t, 26*time.Hour, fromInterval(backend.Interval{Micros: int64(2 * time.Hour / time.Microsecond), Days: 1}))
	assert.Equal(t, 30*24*time.Hour, fromInterval(backend.Interval{Months: 1}))
}
