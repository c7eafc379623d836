package meos

import (
	"fmt"
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
)

// Date is a calendar day without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Native dates count days from 2000-01-01.
const secondsPerDay = 24 * 60 * 60

func toDateADT(d Date) int32 {
	return int32((d.Time().Unix() - unixToNativeMicros/1_000_000) / secondsPerDay)
}

func fromDateADT(v int32) Date {
	return DateOf(time.Unix(int64(v)*secondsPerDay+unixToNativeMicros/1_000_000, 0).UTC())
}

type (
	DateSpan    = Span[Date]
	DateSpanSet = SpanSet[Date]
	DateSet     = Set[Date]
)

// ParseDateSpan parses a date span such as "[2001-01-01, 2001-01-05)".
func ParseDateSpan(s string) (*DateSpan, error) { return parseSpan[Date](s) }

// ParseDateSpanSet parses a date span set such as
// "{[2001-01-01, 2001-01-03), [2001-01-05, 2001-01-06)}".
func ParseDateSpanSet(s string) (*DateSpanSet, error) { return parseSpanSet[Date](s) }

// NewDateSpan returns the span of days between lower and upper. The native
// library canonicalises date spans to an inclusive lower and exclusive
// upper bound.
func NewDateSpan(lower, upper Date, lowerInc, upperInc bool) (*DateSpan, error) {
	lo, hi := toDateADT(lower), toDateADT(upper)
	return makeSpan[Date]("NewDateSpan", func() (backend.Ptr, error) {
		return backend.DateSpanMake(lo, hi, lowerInc, upperInc)
	})
}

// NewDateSet returns the set of days. Duplicates are removed.
func NewDateSet(values ...Date) (*DateSet, error) {
	days := make([]int32, len(values))
	for i, v := range values {
		days[i] = toDateADT(v)
	}
	return makeSet[Date]("NewDateSet", len(values), func() (backend.Ptr, error) {
		return backend.DateSetMake(days)
	})
}

// ContainsDate reports whether the day d lies in s.
func ContainsDate(s *DateSpan, d Date) (bool, error) {
	day := toDateADT(d)
	return spanQuery(s, "ContainsDate", func(p backend.Ptr) (bool, error) {
		return backend.ContainsSpanDate(p, day)
	})
}

// DatePeriod returns the period covered by the days of s, from midnight
// UTC of its first day to midnight UTC after its last day.
func DatePeriod(s *DateSpan) (*TstzSpan, error) {
	p, err := spanQuery(s, "DatePeriod", backend.DateSpanToTstzSpan)
	if err != nil {
		return nil, err
	}
	return wrapSpan[time.Time](p)
}

// DatePeriods is DatePeriod for every span of s.
func DatePeriods(s *DateSpanSet) (*TstzSpanSet, error) {
	p, err := s.query("DatePeriods", backend.DateSpanSetToTstzSpanSet)
	if err != nil {
		return nil, err
	}
	return wrapSpanSet[time.Time](p)
}
