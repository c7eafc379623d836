package meos

import (
	"fmt"
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

// Value is the set of base values a temporal value can carry. Temporal
// points carry *Geometry.
type Value interface {
	bool | int | float64 | string | *Geometry
}

// Number is the set of base values of temporal numbers.
type Number interface {
	int | float64
}

// Temporal is an owned temporal value: an instant, a sequence or a
// sequence set of V. The zero value is not usable; values come from the
// Parse and New functions or from operations on other values.
//
// A Temporal owns native memory. Free releases it; values that become
// unreachable are released by the garbage collector.
type Temporal[V Value] struct {
	h      *handle.Owned
	typ    backend.TempType
	sub    Subtype
	interp Interpolation
}

type (
	TBool  = Temporal[bool]
	TInt   = Temporal[int]
	TFloat = Temporal[float64]
	TText  = Temporal[string]
	// TPoint is a temporal geometry or geography point.
	TPoint = Temporal[*Geometry]
)

func wrapTemporal[V Value](p backend.Ptr) *Temporal[V] {
	typ, sub, interp := backend.TemporalInfo(p)
	s := subtypeOf(sub)
	return &Temporal[V]{
		h:      handle.Adopt(s.kind(), p, backend.Free),
		typ:    typ,
		sub:    s,
		interp: Interpolation(interp),
	}
}

// typeFor reports whether a native temporal type can be held as V.
func typeFor[V Value](typ backend.TempType) bool {
	var zero V
	switch any(zero).(type) {
	case bool:
		return typ == backend.TypeTBool
	case int:
		return typ == backend.TypeTInt
	case float64:
		return typ == backend.TypeTFloat
	case string:
		return typ == backend.TypeTText
	case *Geometry:
		return typ == backend.TypeTGeomPoint || typ == backend.TypeTGeogPoint
	}
	return false
}

func valueTypeName[V Value]() string {
	var zero V
	switch any(zero).(type) {
	case bool:
		return "tbool"
	case int:
		return "tint"
	case float64:
		return "tfloat"
	case string:
		return "ttext"
	}
	return "tpoint"
}

// pin returns the native address for a call and the function that ends
// the call. t cannot be released in between.
func (t *Temporal[V]) pin() (backend.Ptr, func(), error) {
	if err := requireInitialized(); err != nil {
		return nil, unpinned, err
	}
	if t == nil || t.h == nil {
		return nil, unpinned, ErrReleased
	}
	p, unpin := t.h.Pin()
	if p == nil {
		return nil, unpinned, ErrReleased
	}
	return p, unpin, nil
}

func unpinned() {}

func pair[V, W Value](a *Temporal[V], b *Temporal[W]) (backend.Ptr, backend.Ptr, func(), error) {
	pa, unpinA, err := a.pin()
	if err != nil {
		return nil, nil, unpinned, err
	}
	pb, unpinB, err := b.pin()
	if err != nil {
		unpinA()
		return nil, nil, unpinned, err
	}
	return pa, pb, func() { unpinB(); unpinA() }, nil
}

// query runs fn on t and translates its error.
func query[V Value, R any](t *Temporal[V], op string, fn func(backend.Ptr) (R, error)) (R, error) {
	var zero R
	p, unpin, err := t.pin()
	if err != nil {
		return zero, err
	}
	defer unpin()
	out, err := fn(p)
	if err != nil {
		return zero, callErr(op, err)
	}
	return out, nil
}

// derive runs fn on t and adopts the temporal value it returns. A null
// result without a native error is ErrEmpty.
func derive[V, W Value](t *Temporal[V], op string, fn func(backend.Ptr) (backend.Ptr, error)) (*Temporal[W], error) {
	p, err := query(t, op, fn)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrEmpty
	}
	return wrapTemporal[W](p), nil
}

// derive2 is derive for binary operations.
func derive2[V, W, R Value](a *Temporal[V], b *Temporal[W], op string, fn func(backend.Ptr, backend.Ptr) (backend.Ptr, error)) (*Temporal[R], error) {
	pa, pb, unpin, err := pair(a, b)
	if err != nil {
		return nil, err
	}
	p, err := fn(pa, pb)
	unpin()
	if err != nil {
		return nil, callErr(op, err)
	}
	if p == nil {
		return nil, ErrEmpty
	}
	return wrapTemporal[R](p), nil
}

// requireType rejects operations the native library does not define for
// t's base type.
func (t *Temporal[V]) requireType(op string, allowed ...backend.TempType) error {
	for _, a := range allowed {
		if t.typ == a {
			return nil
		}
	}
	return &NativeCallError{Op: op, Message: "not defined for " + t.typ.String()}
}

// Free releases the native value. Further method calls return
// ErrReleased. Free is safe to call more than once.
func (t *Temporal[V]) Free() {
	if t != nil {
		t.h.Free()
	}
}

// Alive reports whether t still owns its native value.
func (t *Temporal[V]) Alive() bool {
	return t != nil && t.h.Alive()
}

// TempType reports the base type.
func (t *Temporal[V]) TempType() TempType { return TempType(t.typ) }

// Subtype reports whether t is an instant, a sequence or a sequence set.
func (t *Temporal[V]) Subtype() Subtype { return t.sub }

// Interpolation reports the interpolation of t.
func (t *Temporal[V]) Interpolation() Interpolation { return t.interp }

// IsGeography reports whether a temporal point uses geodetic coordinates.
func (t *Temporal[V]) IsGeography() bool { return t.typ == backend.TypeTGeogPoint }

// WKT returns the well-known text of t with at most maxDecimals decimals.
func (t *Temporal[V]) WKT(maxDecimals int) (string, error) {
	return query(t, "WKT", func(p backend.Ptr) (string, error) {
		return backend.TemporalOut(t.typ, p, maxDecimals)
	})
}

// EWKT is WKT prefixed with the SRID. It is defined for temporal points.
func (t *Temporal[V]) EWKT(maxDecimals int) (string, error) {
	if err := t.requireType("EWKT", backend.TypeTGeomPoint, backend.TypeTGeogPoint); err != nil {
		return "", err
	}
	return query(t, "EWKT", func(p backend.Ptr) (string, error) {
		return backend.TPointAsEWKT(p, maxDecimals)
	})
}

// String returns the WKT with the configured number of decimals.
func (t *Temporal[V]) String() string {
	s, err := t.WKT(current().maxDecimals)
	if err != nil {
		return fmt.Sprintf("%s(%v)", valueTypeName[V](), err)
	}
	return s
}

// MFJSON returns the OGC Moving Features JSON encoding of t.
func (t *Temporal[V]) MFJSON(opts MFJSONOptions) (string, error) {
	prec := opts.Precision
	if prec <= 0 {
		prec = current().maxDecimals
	}
	return query(t, "MFJSON", func(p backend.Ptr) (string, error) {
		return backend.TemporalAsMFJSON(p, opts.WithBBox, int(opts.Format), prec, opts.SRS)
	})
}

// WKB returns the well-known binary of t.
func (t *Temporal[V]) WKB(variant WKBVariant) ([]byte, error) {
	return query(t, "WKB", func(p backend.Ptr) ([]byte, error) {
		return backend.TemporalAsWKB(p, uint8(variant))
	})
}

// HexWKB returns the extended little endian WKB of t as hex.
func (t *Temporal[V]) HexWKB() (string, error) {
	return query(t, "HexWKB", func(p backend.Ptr) (string, error) {
		return backend.TemporalAsHexWKB(p, uint8(WKBLittleEndian|WKBExtended))
	})
}

// Copy returns an independent copy of t.
func (t *Temporal[V]) Copy() (*Temporal[V], error) {
	return derive[V, V](t, "Copy", backend.TemporalCopy)
}

// NumInstants returns the number of distinct instants.
func (t *Temporal[V]) NumInstants() (int, error) {
	return query(t, "NumInstants", backend.TemporalNumInstants)
}

// StartInstant returns a copy of the first instant.
func (t *Temporal[V]) StartInstant() (*Temporal[V], error) {
	return derive[V, V](t, "StartInstant", backend.TemporalStartInstant)
}

// EndInstant returns a copy of the last instant.
func (t *Temporal[V]) EndInstant() (*Temporal[V], error) {
	return derive[V, V](t, "EndInstant", backend.TemporalEndInstant)
}

// InstantN returns a copy of the n-th instant, counting from 1.
func (t *Temporal[V]) InstantN(n int) (*Temporal[V], error) {
	return derive[V, V](t, "InstantN", func(p backend.Ptr) (backend.Ptr, error) {
		return backend.TemporalInstantN(p, n)
	})
}

// Instants returns owned copies of every instant.
func (t *Temporal[V]) Instants() ([]*Temporal[V], error) {
	n, err := t.NumInstants()
	if err != nil {
		return nil, err
	}
	out := make([]*Temporal[V], 0, n)
	for i := 1; i <= n; i++ {
		inst, err := t.InstantN(i)
		if err != nil {
			for _, o := range out {
				o.Free()
			}
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}

// InstantViews returns views of the instants stored inside t without
// copying them. The views read nothing once t is freed.
func (t *Temporal[V]) InstantViews() ([]InstantView[V], error) {
	ptrs, err := query(t, "InstantViews", backend.TemporalInstants)
	if err != nil {
		return nil, err
	}
	out := make([]InstantView[V], len(ptrs))
	for i, p := range ptrs {
		out[i] = InstantView[V]{b: t.h.Borrow(handle.KindInstant, p), typ: t.typ}
	}
	return out, nil
}

// NumTimestamps returns the number of distinct timestamps.
func (t *Temporal[V]) NumTimestamps() (int, error) {
	return query(t, "NumTimestamps", backend.TemporalNumTimestamps)
}

// StartTimestamp returns the first timestamp.
func (t *Temporal[V]) StartTimestamp() (time.Time, error) {
	v, err := query(t, "StartTimestamp", backend.TemporalStartTimestamp)
	if err != nil {
		return time.Time{}, err
	}
	return fromTimestamp(v), nil
}

// EndTimestamp returns the last timestamp.
func (t *Temporal[V]) EndTimestamp() (time.Time, error) {
	v, err := query(t, "EndTimestamp", backend.TemporalEndTimestamp)
	if err != nil {
		return time.Time{}, err
	}
	return fromTimestamp(v), nil
}

// TimestampN returns the n-th distinct timestamp, counting from 1. An n
// out of range yields ErrEmpty.
func (t *Temporal[V]) TimestampN(n int) (time.Time, error) {
	type res struct {
		v  int64
		ok bool
	}
	r, err := query(t, "TimestampN", func(p backend.Ptr) (res, error) {
		v, ok, err := backend.TemporalTimestampN(p, n)
		return res{v, ok}, err
	})
	if err != nil {
		return time.Time{}, err
	}
	if !r.ok {
		return time.Time{}, ErrEmpty
	}
	return fromTimestamp(r.v), nil
}

// Timestamps returns the distinct timestamps in order.
func (t *Temporal[V]) Timestamps() ([]time.Time, error) {
	vs, err := query(t, "Timestamps", backend.TemporalTimestamps)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(vs))
	for i, v := range vs {
		out[i] = fromTimestamp(v)
	}
	return out, nil
}

// Duration returns the time t is defined. With boundSpan the gaps between
// sequences are included.
func (t *Temporal[V]) Duration(boundSpan bool) (time.Duration, error) {
	iv, err := query(t, "Duration", func(p backend.Ptr) (backend.Interval, error) {
		return backend.TemporalDuration(p, boundSpan)
	})
	if err != nil {
		return 0, err
	}
	return fromInterval(iv), nil
}

// Time returns the periods over which t is defined.
func (t *Temporal[V]) Time() (*SpanSet[time.Time], error) {
	p, err := query(t, "Time", backend.TemporalTime)
	if err != nil {
		return nil, err
	}
	return wrapSpanSet[time.Time](p)
}

// Timespan returns the bounding period of t.
func (t *Temporal[V]) Timespan() (*Span[time.Time], error) {
	p, err := query(t, "Timespan", backend.TemporalTimespan)
	if err != nil {
		return nil, err
	}
	return wrapSpan[time.Time](p)
}

// LowerInc reports whether the first instant is included.
func (t *Temporal[V]) LowerInc() (bool, error) {
	return query(t, "LowerInc", backend.TemporalLowerInc)
}

// UpperInc reports whether the last instant is included.
func (t *Temporal[V]) UpperInc() (bool, error) {
	return query(t, "UpperInc", backend.TemporalUpperInc)
}

func parseTemporal[V Value](typ backend.TempType, s string) (*Temporal[V], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := backend.TemporalIn(typ, s)
	if err != nil {
		return nil, parseErr(s, err)
	}
	if p == nil {
		return nil, &ParseError{Input: s, Message: "no value"}
	}
	return wrapTemporal[V](p), nil
}

// ParseTBool parses the WKT of a temporal boolean, such as
// "{t@2001-01-01, f@2001-01-02}".
func ParseTBool(s string) (*TBool, error) { return parseTemporal[bool](backend.TypeTBool, s) }

// ParseTInt parses the WKT of a temporal integer.
func ParseTInt(s string) (*TInt, error) { return parseTemporal[int](backend.TypeTInt, s) }

// ParseTFloat parses the WKT of a temporal float, such as
// "[1.5@2001-01-01, 2.5@2001-01-02]".
func ParseTFloat(s string) (*TFloat, error) { return parseTemporal[float64](backend.TypeTFloat, s) }

// ParseTText parses the WKT of a temporal text.
func ParseTText(s string) (*TText, error) { return parseTemporal[string](backend.TypeTText, s) }

// ParseTGeomPoint parses the WKT or EWKT of a temporal geometry point, such
// as "[POINT(1 1)@2000-01-01 08:00, POINT(2 2)@2000-01-01 08:01]".
func ParseTGeomPoint(s string) (*TPoint, error) {
	return parseTemporal[*Geometry](backend.TypeTGeomPoint, s)
}

// ParseTGeogPoint parses the WKT or EWKT of a temporal geography point.
func ParseTGeogPoint(s string) (*TPoint, error) {
	return parseTemporal[*Geometry](backend.TypeTGeogPoint, s)
}

func fromMFJSON[V Value](typ backend.TempType, s string) (*Temporal[V], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := backend.TemporalFromMFJSON(typ, s)
	if err != nil {
		return nil, parseErr(s, err)
	}
	if p == nil {
		return nil, &ParseError{Input: s, Message: "no value"}
	}
	return wrapTemporal[V](p), nil
}

// TBoolFromMFJSON parses an MF-JSON temporal boolean.
func TBoolFromMFJSON(s string) (*TBool, error) { return fromMFJSON[bool](backend.TypeTBool, s) }

// TIntFromMFJSON parses an MF-JSON temporal integer.
func TIntFromMFJSON(s string) (*TInt, error) { return fromMFJSON[int](backend.TypeTInt, s) }

// TFloatFromMFJSON parses an MF-JSON temporal float.
func TFloatFromMFJSON(s string) (*TFloat, error) {
	return fromMFJSON[float64](backend.TypeTFloat, s)
}

// TTextFromMFJSON parses an MF-JSON temporal text.
func TTextFromMFJSON(s string) (*TText, error) { return fromMFJSON[string](backend.TypeTText, s) }

// TGeomPointFromMFJSON parses an MF-JSON temporal geometry point.
func TGeomPointFromMFJSON(s string) (*TPoint, error) {
	return fromMFJSON[*Geometry](backend.TypeTGeomPoint, s)
}

// TGeogPointFromMFJSON parses an MF-JSON temporal geography point.
func TGeogPointFromMFJSON(s string) (*TPoint, error) {
	return fromMFJSON[*Geometry](backend.TypeTGeogPoint, s)
}

// adoptDecoded adopts a decoded value, rejecting base types other than V.
func adoptDecoded[V Value](input string, p backend.Ptr, err error) (*Temporal[V], error) {
	if err != nil {
		return nil, parseErr(input, err)
	}
	if p == nil {
		return nil, &ParseError{Input: input, Message: "no value"}
	}
	typ, _, _ := backend.TemporalInfo(p)
	if !typeFor[V](typ) {
		backend.Free(p)
		return nil, &ParseError{
			Input:   input,
			Message: fmt.Sprintf("decoded %s, want %s", typ, valueTypeName[V]()),
		}
	}
	return wrapTemporal[V](p), nil
}

// FromHexWKB decodes hex encoded WKB into a temporal value of base type V.
func FromHexWKB[V Value](s string) (*Temporal[V], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := backend.TemporalFromHexWKB(s)
	return adoptDecoded[V](s, p, err)
}

// FromWKB decodes WKB into a temporal value of base type V.
func FromWKB[V Value](b []byte) (*Temporal[V], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	p, err := backend.TemporalFromWKB(b)
	return adoptDecoded[V](fmt.Sprintf("%x", b), p, err)
}
