package ais

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `t,mmsi,latitude,longitude,sog
2023-01-01 00:00:01,265513270,57.059,12.272,0.2
2023-01-01 00:00:04,219027804,55.47,8.3,0
2023-01-01 00:00:02,265513270,57.06,12.273,0.3
2023-01-01 00:00:02,265513270,57.07,12.274,9.9
2023-01-01 00:00:05,219027804,,8.31,0.1
2023-01-01 00:00:06,219027804,55.48,8.32
not a time,219027804,55.48,8.32,1
2023-01-01 00:00:07,219027804,55.49,8.33,1.5
`

func TestReadRecords(t *testing.T) {
	recs, stats, err := ReadRecords(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Records)
	assert.Equal(t, 3, stats.Skipped)
	require.Len(t, recs, 5)

	first := recs[0]
	assert.Equal(t, int64(265513270), first.MMSI)
	assert.Equal(t, 57.059, first.Lat)
	assert.Equal(t, 12.272, first.Lon)
	assert.Equal(t, 0.2, first.SOG)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 1, 0, time.UTC), first.Time)
}

func TestReadRecordsEmpty(t *testing.T) {
	_, _, err := ReadRecords(strings.NewReader(""))
	require.ErrorIs(t, err, ErrNoHeader)

	recs, stats, err := ReadRecords(strings.NewReader("t,mmsi,latitude,longitude,sog\n"))
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Zero(t, stats.Records)
}

func TestGroupByShip(t *testing.T) {
	recs, _, err := ReadRecords(strings.NewReader(sample))
	require.NoError(t, err)

	ships := groupByShip(recs)
	require.Len(t, ships, 2)

	assert.Equal(t, int64(219027804), ships[0].mmsi)
	assert.Len(t, ships[0].records, 2)

	s := ships[1]
	assert.Equal(t, int64(265513270), s.mmsi)
	require.Len(t, s.records, 2)
	assert.Equal(t, 1, s.dropped)
	assert.True(t, s.records[0].Time.Before(s.records[1].Time))
	assert.Equal(t, 0.3, s.records[1].SOG, "first report of a repeated timestamp wins")
}
