package meos

import (

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
)

// Integral returns the area under a temporal number. Step interpolation
// integrates as a staircase and discrete values integrate to zero.
func Integral[V Number](t *Temporal[V]) (float64, error) {
	return query(t, "Integral", backend.TNumberIntegral)
}

// TimeWeightedAverage returns the average of a temporal number weighted by
// the time each value holds.
func TimeWeightedAverage[V Number](t *Temporal[V]) (float64, error) {
	return query(t, "TimeWeightedAverage", backend.TNumberTwavg)
}

// ValueSpans returns the spans of values a temporal number takes.
func ValueSpans[V Number](t *Temporal[V]) (*SpanSet[V], error) {
	p, err := query(t, "ValueSpans", backend.TNumberValueSpans)
	if err != nil {
		return nil, err
	}
	return wrapSpanSet[V](p)
}

// ToTBox returns the value and time bounding box of a temporal number.
func ToTBox[V Number](t *Temporal[V]) (*TBox, error) {
	p, err := query(t, "ToTBox", backend.TNumberToTBox)
	if err != nil {
		return nil, err
	}
	return wrapTBox(p)
}

func arith[V Number](op string, a, b *Temporal[V], kind backend.Arith) (*Temporal[V], error) {
	return derive2[V, V, V](a, b, op, func(pa, pb backend.Ptr) (backend.Ptr, error) {
		return backend.TNumberArith(pa, pb, kind)
	})
}

// Add returns a + b over their common time.
func Add[V Number](a, b *Temporal[V]) (*Temporal[V], error) {
	return arith("Add", a, b, backend.ArithAdd)
}

// Sub returns a - b over their common time.
func Sub[V Number](a, b *Temporal[V]) (*Temporal[V], error) {
	return arith("Sub", a, b, backend.ArithSub)
}

// Mul returns a * b over their common time.
func Mul[V Number](a, b *Temporal[V]) (*Temporal[V], error) {
	return arith("Mul", a, b, backend.ArithMul)
}

// Div returns a / b over their common time. b must never be zero there.
func Div[V Number](a, b *Temporal[V]) (*Temporal[V], error) {
	return arith("Div", a, b, backend.ArithDiv)
}

// Abs returns the absolute value of a temporal number.
func Abs[V Number](t *Temporal[V]) (*Temporal[V], error) {
	return derive[V, V](t, "Abs", backend.TNumberAbs)
}

// DeltaValue returns the change between consecutive instants.
func DeltaValue[V Number](t *Temporal[V]) (*Temporal[V], error) {
	return derive[V, V](t, "DeltaValue", backend.TNumberDeltaValue)
}

func shiftScaleValue[V Number](op string, t *Temporal[V], shift, width V, hasShift, hasWidth bool) (*Temporal[V], error) {
	return derive[V, V](t, op, func(p backend.Ptr) (backend.Ptr, error) {
		switch s := any(shift).(type) {
		case int:
			return backend.TIntShiftScaleValue(p, s, any(width).(int), hasShift, hasWidth)
		case float64:
			return backend.TFloatShiftScaleValue(p, s, any(width).(float64), hasShift, hasWidth)
		}
		return nil, nil
	})
}

// ShiftValue returns t with shift added to every value.
func ShiftValue[V Number](t *Temporal[V], shift V) (*Temporal[V], error) {
	return shiftScaleValue("ShiftValue", t, shift, 0, true, false)
}

// ScaleValue returns t with its value range scaled to width.
func ScaleValue[V Number](t *Temporal[V], width V) (*Temporal[V], error) {
	return shiftScaleValue("ScaleValue", t, 0, width, false, true)
}

// ShiftScaleValue shifts the values of t and scales their range to width.
func ShiftScaleValue[V Number](t *Temporal[V], shift, width V) (*Temporal[V], error) {
	return shiftScaleValue("ShiftScaleValue", t, shift, width, true, true)
}

// Metric is the set of base values with a nearest approach distance.
type Metric interface {
	int | float64 | *Geometry
}

// NearestApproachDistance returns the smallest distance between a and b
// over their common time. Values that share no time yield ErrEmpty.
func NearestApproachDistance[V Metric](a, b *Temporal[V]) (float64, error) {
	pa, pb, unpin, err := pair(a, b)
	if err != nil {
		return 0, err
	}
	defer unpin()
	var (
		d  float64
		ok bool
	)
	switch any(a).(type) {
	case *TInt:
		var n int
		n, ok, err = backend.NadTIntTInt(pa, pb)
		d = float64(n)
	case *TFloat:
		d, ok, err = backend.NadTFloatTFloat(pa, pb)
	case *TPoint:
		d, ok, err = backend.NadTPointTPoint(pa, pb)
	}
	if err != nil {
		return 0, callErr("NearestApproachDistance", err)
	}
	if !ok {
		return 0, ErrEmpty
	}
	return d, nil
}

// Distance returns the temporal distance |a - b| over their common time.
func Distance[V Number](a, b *Temporal[V]) (*Temporal[V], error) {
	return derive2[V, V, V](a, b, "Distance", backend.DistanceTNumberTNumber)
}
