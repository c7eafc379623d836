package meos

import (
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
)

// Native timestamps count microseconds from 2000-01-01T00:00:00Z.
const unixToNativeMicros = 946_684_800 * 1_000_000

func toTimestamp(t time.Time) int64 {
	return t.UnixMicro() - unixToNativeMicros
}

func fromTimestamp(v int64) time.Time {
	return time.UnixMicro(v + unixToNativeMicros).UTC()
}

// toInterval expresses d in the time component only, so no calendar
// arithmetic is applied by the native library.
func toInterval(d time.Duration) *backend.Interval {
	return &backend.Interval{Micros: d.Microseconds()}
}

// optInterval is toInterval for optional arguments, where zero means absent.
func optInterval(d time.Duration) *backend.Interval {
	if d == 0 {
		return nil
	}
	return toInterval(d)
}

// fromInterval counts a day as 24 hours and a month as 30 days.
func fromInterval(iv backend.Interval) time.Duration {
	const day = 24 * time.Hour
	return time.Duration(iv.Micros)*time.Microsecond +
		time.Duration(iv.Days)*day +
		time.Duration(iv.Months)*30*day
}
