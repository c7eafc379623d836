//go:build cgo && meos

package meos

import (
	"errors"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func TestInitializeTwice(t *testing.T) {
	require.ErrorIs(t, Initialize(Config{}), ErrAlreadyInitialized)
	assert.Equal(t, Initialized, CurrentState())
	assert.True(t, NativeBuilt())
	assert.NotEmpty(t, NativeVersion())
}

func TestParseTGeomPoint(t *testing.T) {
	tp, err := ParseTGeomPoint("[POINT(1 1)@2000-01-01 08:00, POINT(2 2)@2000-01-01 08:01]")
	require.NoError(t, err)
	defer tp.Free()

	assert.Equal(t, TypeTGeomPoint, tp.TempType())
	assert.Equal(t, Sequence, tp.Subtype())
	assert.Equal(t, Linear, tp.Interpolation())

	n, err := tp.NumInstants()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	start, err := tp.StartTimestamp()
	require.NoError(t, err)
	assert.True(t, start.Equal(utc(2000, 1, 1, 8, 0)))

	end, err := tp.EndTimestamp()
	require.NoError(t, err)
	assert.True(t, end.Equal(utc(2000, 1, 1, 8, 1)))

	d, err := tp.Duration(false)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, d)

	wkt, err := tp.WKT(6)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(wkt, "[POINT(1 1)@2000-01-01 08:00:00"), wkt)

	again, err := ParseTGeomPoint(wkt)
	require.NoError(t, err)
	defer again.Free()
	eq, err := tp.Equal(again)
	require.NoError(t, err)
	assert.True(t, eq)

	ends := []struct {
		name  string
		get   func() (*TPoint, error)
		point string
		at    time.Time
	}{
		{"start", tp.StartInstant, "POINT(1 1)", utc(2000, 1, 1, 8, 0)},
		{"end", tp.EndInstant, "POINT(2 2)", utc(2000, 1, 1, 8, 1)},
	}
	for _, e := range ends {
		t.Run(e.name, func(t *testing.T) {
			inst, err := e.get()
			require.NoError(t, err)
			defer inst.Free()
			assert.Equal(t, Instant, inst.Subtype())

			g, err := inst.StartValue()
			require.NoError(t, err)
			defer g.Free()
			wkt, err := g.WKT(6)
			require.NoError(t, err)
			assert.Equal(t, e.point, wkt)

			ts, err := inst.StartTimestamp()
			require.NoError(t, err)
			assert.True(t, ts.Equal(e.at), ts)
		})
	}
}

func TestFreeWaitsForRunningCalls(t *testing.T) {
	base := handle.Live()
	for round := 0; round < 20; round++ {
		tf, err := ParseTFloat("[1@2001-01-01, 5@2001-01-05]")
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make(chan error, 8)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := tf.MaxValue()
				switch {
				case errors.Is(err, ErrReleased):
				case err != nil:
					errs <- err
				case v != 5:
					errs <- errors.New("unexpected max")
				}
			}()
		}
		tf.Free()
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}
		assert.False(t, tf.Alive())
	}
	assert.Equal(t, base, handle.Live())
}

func TestParseErrorCarriesInput(t *testing.T) {
	_, err := ParseTFloat("not a temporal value")
	var pe *ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
	assert.Equal(t, "not a temporal value", pe.Input)
	assert.NotEmpty(t, pe.Message)
}

func TestNearestApproachDistance(t *testing.T) {
	a, err := ParseTGeomPoint("[Point(0 0 0)@2001-01-01, Point(1 1 1)@2001-01-03, Point(0 0 0)@2001-01-05)")
	require.NoError(t, err)
	defer a.Free()
	b, err := ParseTGeomPoint("[Point(2 0 0)@2001-01-02, Point(1 1 1)@2001-01-04, Point(2 2 2)@2001-01-06)")
	require.NoError(t, err)
	defer b.Free()

	d, err := NearestApproachDistance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-9)
}

func TestNearestApproachDistanceNoCommonTime(t *testing.T) {
	a, err := ParseTFloat("[1@2001-01-01, 2@2001-01-02]")
	require.NoError(t, err)
	defer a.Free()
	b, err := ParseTFloat("[1@2002-01-01, 2@2002-01-02]")
	require.NoError(t, err)
	defer b.Free()

	_, err = NearestApproachDistance(a, b)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestNewSequenceBounds(t *testing.T) {
	samples := []Sample[float64]{
		{Value: 1, Time: utc(2001, 1, 1, 0, 0)},
		{Value: 3, Time: utc(2001, 1, 2, 0, 0)},
		{Value: 2, Time: utc(2001, 1, 3, 0, 0)},
	}

	linear, err := NewTFloatSequence(samples, Linear)
	require.NoError(t, err)
	defer linear.Free()
	lo, err := linear.LowerInc()
	require.NoError(t, err)
	hi, err := linear.UpperInc()
	require.NoError(t, err)
	assert.True(t, lo)
	assert.False(t, hi)

	discrete, err := NewTFloatSequence(samples, Discrete)
	require.NoError(t, err)
	defer discrete.Free()
	hi, err = discrete.UpperInc()
	require.NoError(t, err)
	assert.True(t, hi)

	single, err := NewTFloatSequence(samples[:1], Linear)
	require.NoError(t, err)
	defer single.Free()
	hi, err = single.UpperInc()
	require.NoError(t, err)
	assert.True(t, hi)

	maxV, err := linear.MaxValue()
	require.NoError(t, err)
	assert.Equal(t, 3.0, maxV)

	v, err := linear.ValueAt(utc(2001, 1, 1, 12, 0), false)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, v, 1e-9)

	_, err = linear.ValueAt(utc(2010, 1, 1, 0, 0), false)
	require.ErrorIs(t, err, ErrEmpty)

	values, err := linear.Values()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, values)
}

func TestNewSequenceRejectsOutOfOrder(t *testing.T) {
	base := handle.Live()
	_, err := NewTIntSequence([]Sample[int]{
		{Value: 1, Time: utc(2001, 1, 2, 0, 0)},
		{Value: 2, Time: utc(2001, 1, 1, 0, 0)},
	}, Step)
	var ce *ConstructionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, base, handle.Live())

	_, err = NewTIntSequence([]Sample[int]{{Value: 1, Time: utc(2001, 1, 1, 0, 0)}}, InterpNone)
	require.True(t, errors.As(err, &ce))
}

func TestTextAndBooleanOperations(t *testing.T) {
	tt, err := NewTTextSequence([]Sample[string]{
		{Value: "a", Time: utc(2001, 1, 1, 0, 0)},
		{Value: "b", Time: utc(2001, 1, 2, 0, 0)},
	}, Step)
	require.NoError(t, err)
	defer tt.Free()

	up, err := Upper(tt)
	require.NoError(t, err)
	defer up.Free()
	start, err := up.StartValue()
	require.NoError(t, err)
	assert.Equal(t, "A", start)

	cat, err := Concat(tt, up)
	require.NoError(t, err)
	defer cat.Free()
	end, err := cat.EndValue()
	require.NoError(t, err)
	assert.Equal(t, "bB", end)

	tb, err := ParseTBool("[t@2001-01-01, f@2001-01-02, t@2001-01-03]")
	require.NoError(t, err)
	defer tb.Free()

	ever, err := tb.EverEqual(false)
	require.NoError(t, err)
	assert.True(t, ever)
	always, err := tb.AlwaysEqual(true)
	require.NoError(t, err)
	assert.False(t, always)

	neg, err := Not(tb)
	require.NoError(t, err)
	defer neg.Free()
	both, err := And(tb, neg)
	require.NoError(t, err)
	defer both.Free()
	always, err = both.AlwaysEqual(false)
	require.NoError(t, err)
	assert.True(t, always)

	periods, err := WhenTrue(tb)
	require.NoError(t, err)
	defer periods.Free()
	n, err := periods.NumSpans()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = tt.MinValue()
	require.NoError(t, err)
	_, err = tb.MinValue()
	var nce *NativeCallError
	require.True(t, errors.As(err, &nce))
}

func TestNumberOperations(t *testing.T) {
	tf, err := ParseTFloat("[1@2001-01-01, 3@2001-01-03]")
	require.NoError(t, err)
	defer tf.Free()

	avg, err := TimeWeightedAverage(tf)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, avg, 1e-9)

	integral, err := Integral(tf)
	require.NoError(t, err)
	assert.Greater(t, integral, 0.0)

	sum, err := Add(tf, tf)
	require.NoError(t, err)
	defer sum.Free()
	end, err := sum.EndValue()
	require.NoError(t, err)
	assert.Equal(t, 6.0, end)

	shifted, err := ShiftValue(tf, 10)
	require.NoError(t, err)
	defer shifted.Free()
	start, err := shifted.StartValue()
	require.NoError(t, err)
	assert.Equal(t, 11.0, start)

	spans, err := ValueSpans(tf)
	require.NoError(t, err)
	defer spans.Free()
	bounding, err := spans.Span()
	require.NoError(t, err)
	defer bounding.Free()
	lo, err := bounding.Lower()
	require.NoError(t, err)
	assert.Equal(t, 1.0, lo)

	box, err := ToTBox(tf)
	require.NoError(t, err)
	defer box.Free()
	xmax, err := box.XMax()
	require.NoError(t, err)
	assert.Equal(t, 3.0, xmax)

	set, err := NewFloatSet(1, 3)
	require.NoError(t, err)
	defer set.Free()
	at, err := AtValues(tf, set)
	require.NoError(t, err)
	defer at.Free()
	ts, err := at.NumTimestamps()
	require.NoError(t, err)
	assert.Equal(t, 2, ts)
}

func TestTransformations(t *testing.T) {
	ti, err := ParseTInt("[1@2001-01-01, 2@2001-01-02]")
	require.NoError(t, err)
	defer ti.Free()

	shifted, err := ti.ShiftTime(24 * time.Hour)
	require.NoError(t, err)
	defer shifted.Free()
	start, err := shifted.StartTimestamp()
	require.NoError(t, err)
	assert.True(t, start.Equal(utc(2001, 1, 2, 0, 0)))

	scaled, err := ti.ScaleTime(48 * time.Hour)
	require.NoError(t, err)
	defer scaled.Free()
	d, err := scaled.Duration(false)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, d)

	disc, err := ti.SetInterpolation(Discrete)
	require.NoError(t, err)
	defer disc.Free()
	assert.Equal(t, Discrete, disc.Interpolation())

	inst, err := NewTIntInstant(5, utc(2001, 1, 4, 0, 0))
	require.NoError(t, err)
	defer inst.Free()
	appended, err := ti.AppendInstant(inst, 0, 0)
	require.NoError(t, err)
	defer appended.Free()
	n, err := appended.NumInstants()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	period, err := ParseTstzSpan("[2001-01-05, 2001-01-06]")
	require.NoError(t, err)
	defer period.Free()
	_, err = ti.AtSpan(period)
	require.ErrorIs(t, err, ErrEmpty)

	minus, err := ti.MinusTime(utc(2001, 1, 1, 0, 0))
	require.NoError(t, err)
	defer minus.Free()
	lo, err := minus.LowerInc()
	require.NoError(t, err)
	assert.False(t, lo)
}

func TestFreeThenUse(t *testing.T) {
	base := handle.Live()

	tf, err := ParseTFloat("{1@2001-01-01, 2@2001-01-02}")
	require.NoError(t, err)
	views, err := tf.InstantViews()
	require.NoError(t, err)
	require.Len(t, views, 2)

	v, err := views[1].Value()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, base+1, handle.Live(), "views must not adopt")

	tf.Free()
	tf.Free()
	assert.False(t, tf.Alive())
	assert.Equal(t, base, handle.Live())

	_, err = tf.NumInstants()
	require.ErrorIs(t, err, ErrReleased)
	_, err = views[0].Timestamp()
	require.ErrorIs(t, err, ErrReleased)
	assert.Contains(t, tf.String(), ErrReleased.Error())
}

func TestInstantsAreOwnedCopies(t *testing.T) {
	tf, err := ParseTFloat("[1@2001-01-01, 2@2001-01-02]")
	require.NoError(t, err)

	insts, err := tf.Instants()
	require.NoError(t, err)
	require.Len(t, insts, 2)
	tf.Free()

	v, err := insts[1].StartValue()
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
	assert.Equal(t, Instant, insts[0].Subtype())
	for _, i := range insts {
		i.Free()
	}
}

func TestEncodingsRoundTrip(t *testing.T) {
	tf, err := ParseTFloat("[1.5@2001-01-01, 2.5@2001-01-02]")
	require.NoError(t, err)
	defer tf.Free()

	hex, err := tf.HexWKB()
	require.NoError(t, err)
	back, err := FromHexWKB[float64](hex)
	require.NoError(t, err)
	defer back.Free()
	eq, err := tf.Equal(back)
	require.NoError(t, err)
	assert.True(t, eq)

	_, err = FromHexWKB[int](hex)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Message, "decoded tfloat")

	wkb, err := tf.WKB(WKBLittleEndian)
	require.NoError(t, err)
	fromWKB, err := FromWKB[float64](wkb)
	require.NoError(t, err)
	defer fromWKB.Free()

	js, err := tf.MFJSON(MFJSONOptions{Format: JSONPretty, Precision: 3})
	require.NoError(t, err)
	assert.Contains(t, js, "MovingFloat")
	fromJSON, err := TFloatFromMFJSON(js)
	require.NoError(t, err)
	defer fromJSON.Free()
	eq, err = tf.Equal(fromJSON)
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestSequenceSet(t *testing.T) {
	a, err := ParseTFloat("[1@2001-01-01, 2@2001-01-02]")
	require.NoError(t, err)
	defer a.Free()
	b, err := ParseTFloat("[3@2001-01-03, 4@2001-01-04]")
	require.NoError(t, err)
	defer b.Free()

	ss, err := NewSequenceSet([]*TFloat{a, b}, true)
	require.NoError(t, err)
	defer ss.Free()
	assert.Equal(t, SequenceSet, ss.Subtype())

	withGaps, err := ss.Duration(true)
	require.NoError(t, err)
	assert.Equal(t, 3*24*time.Hour, withGaps)
	without, err := ss.Duration(false)
	require.NoError(t, err)
	assert.Equal(t, 2*24*time.Hour, without)

	_, err = NewSequenceSet([]*TFloat{ss}, true)
	var ce *ConstructionError
	require.True(t, errors.As(err, &ce))
}

func TestConcurrentUse(t *testing.T) {
	base := handle.Live()
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tf, err := ParseTFloat("[1@2001-01-01, 5@2001-01-05]")
			if err != nil {
				errs <- err
				return
			}
			defer tf.Free()
			if _, err := ParseTFloat("garbage"); err == nil {
				errs <- errors.New("garbage parsed")
				return
			}
			v, err := tf.MaxValue()
			if err != nil {
				errs <- err
				return
			}
			if v != 5 {
				errs <- errors.New("unexpected max")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, base, handle.Live())
}

func TestSpeedAndLength(t *testing.T) {
	tp, err := ParseTGeomPoint("[POINT(0 0)@2001-01-01 00:00:00, POINT(3 4)@2001-01-01 00:00:10]")
	require.NoError(t, err)
	defer tp.Free()

	l, err := Length(tp)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, l, 1e-9)

	speed, err := Speed(tp)
	require.NoError(t, err)
	defer speed.Free()
	v, err := speed.StartValue()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-9)

	dir, err := Direction(tp)
	require.NoError(t, err)
	assert.InDelta(t, math.Atan2(3, 4), dir, 1e-9)

	traj, err := Trajectory(tp)
	require.NoError(t, err)
	defer traj.Free()
	wkt, err := traj.WKT(0)
	require.NoError(t, err)
	assert.Equal(t, "LINESTRING(0 0,3 4)", wkt)
}
