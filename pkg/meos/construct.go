package meos

import (
	"fmt"
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

// Sample is a value observed at a point in time.
type Sample[V Value] struct {
	Value V
	Time  time.Time
}

// validateSamples checks the preconditions the native constructor would
// otherwise report less precisely.
func validateSamples[V Value](op string, samples []Sample[V]) error {
	if len(samples) == 0 {
		return &ConstructionError{Op: op, Message: "no instants"}
	}
	for i, s := range samples {
		if g, ok := any(s.Value).(*Geometry); ok && g == nil {
			return &ConstructionError{Op: op, Message: fmt.Sprintf("instant %d has no geometry", i)}
		}
		if i == 0 {
			continue
		}
		prev := samples[i-1].Time
		if !s.Time.After(prev) {
			return &ConstructionError{
				Op: op,
				Message: fmt.Sprintf("instant %d at %s is not after %s",
					i, s.Time.UTC().Format(time.RFC3339Nano), prev.UTC().Format(time.RFC3339Nano)),
			}
		}
	}
	return nil
}

// instMake builds a native instant. The caller owns the result.
func instMake[V Value](v V, ts time.Time) (backend.Ptr, error) {
	at := toTimestamp(ts)
	switch x := any(v).(type) {
	case bool:
		return backend.TBoolInstMake(x, at)
	case int:
		return backend.TIntInstMake(x, at)
	case float64:
		return backend.TFloatInstMake(x, at)
	case string:
		return backend.TTextInstMake(x, at)
	case *Geometry:
		gp, unpinG, err := x.pin()
		if err != nil {
			return nil, err
		}
		defer unpinG()
		p, err := backend.TPointInstMake(gp, at)
		return p, err
	}
	return nil, nil
}

func newInstant[V Value](op string, v V, ts time.Time) (*Temporal[V], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	if err := validateSamples(op, []Sample[V]{{Value: v, Time: ts}}); err != nil {
		return nil, err
	}
	p, err := instMake(v, ts)
	if err != nil {
		return nil, constructErr(op, err)
	}
	if p == nil {
		return nil, noResult(op)
	}
	return wrapTemporal[V](p), nil
}

// NewTBoolInstant returns the instant v@ts.
func NewTBoolInstant(v bool, ts time.Time) (*TBool, error) {
	return newInstant("NewTBoolInstant", v, ts)
}

// NewTIntInstant returns the instant v@ts.
func NewTIntInstant(v int, ts time.Time) (*TInt, error) {
	return newInstant("NewTIntInstant", v, ts)
}

// NewTFloatInstant returns the instant v@ts.
func NewTFloatInstant(v float64, ts time.Time) (*TFloat, error) {
	return newInstant("NewTFloatInstant", v, ts)
}

// NewTTextInstant returns the instant v@ts.
func NewTTextInstant(v string, ts time.Time) (*TText, error) {
	return newInstant("NewTTextInstant", v, ts)
}

// NewTPointInstant returns the instant g@ts. g is copied and stays owned
// by the caller. The result is a geography point when g is a geography.
func NewTPointInstant(g *Geometry, ts time.Time) (*TPoint, error) {
	return newInstant("NewTPointInstant", g, ts)
}

// newSequence builds every instant, then hands them to the native
// constructor, which takes them over. The lower bound is inclusive; the
// upper bound is inclusive for discrete sequences and single instants.
func newSequence[V Value](op string, samples []Sample[V], interp Interpolation) (*Temporal[V], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	if interp == InterpNone {
		return nil, &ConstructionError{Op: op, Message: "a sequence needs an interpolation"}
	}
	if err := validateSamples(op, samples); err != nil {
		return nil, err
	}

	owned := make([]*handle.Owned, 0, len(samples))
	release := func() {
		for _, o := range owned {
			o.Free()
		}
	}
	for _, s := range samples {
		p, err := instMake(s.Value, s.Time)
		if err != nil {
			release()
			return nil, constructErr(op, err)
		}
		if p == nil {
			release()
			return nil, noResult(op)
		}
		owned = append(owned, handle.Adopt(handle.KindInstant, p, backend.Free))
	}

	insts := make([]backend.Ptr, len(owned))
	for i, o := range owned {
		insts[i] = o.IntoRaw()
	}
	upperInc := interp == Discrete || len(insts) == 1
	p, err := backend.TSequenceMakeFree(insts, true, upperInc, interp.native(), true)
	if err != nil {
		return nil, constructErr(op, err)
	}
	if p == nil {
		return nil, noResult(op)
	}
	return wrapTemporal[V](p), nil
}

// NewTBoolSequence builds a sequence from samples in strictly increasing
// time order. Booleans support discrete and step interpolation.
func NewTBoolSequence(samples []Sample[bool], interp Interpolation) (*TBool, error) {
	return newSequence("NewTBoolSequence", samples, interp)
}

// NewTIntSequence builds a sequence from samples in strictly increasing
// time order. Integers support discrete and step interpolation.
func NewTIntSequence(samples []Sample[int], interp Interpolation) (*TInt, error) {
	return newSequence("NewTIntSequence", samples, interp)
}

// NewTFloatSequence builds a sequence from samples in strictly increasing
// time order.
func NewTFloatSequence(samples []Sample[float64], interp Interpolation) (*TFloat, error) {
	return newSequence("NewTFloatSequence", samples, interp)
}

// NewTTextSequence builds a sequence from samples in strictly increasing
// time order. Texts support discrete and step interpolation.
func NewTTextSequence(samples []Sample[string], interp Interpolation) (*TText, error) {
	return newSequence("NewTTextSequence", samples, interp)
}

// NewTPointSequence builds a sequence from samples in strictly increasing
// time order. The geometries are copied and stay owned by the caller.
func NewTPointSequence(samples []Sample[*Geometry], interp Interpolation) (*TPoint, error) {
	return newSequence("NewTPointSequence", samples, interp)
}

// NewSequenceSet combines sequences ordered in time into a sequence set.
// The sequences are copied. With normalize, contiguous sequences that
// continue each other are merged.
func NewSequenceSet[V Value](seqs []*Temporal[V], normalize bool) (*Temporal[V], error) {
	const op = "NewSequenceSet"
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	if len(seqs) == 0 {
		return nil, &ConstructionError{Op: op, Message: "no sequences"}
	}
	ptrs := make([]backend.Ptr, len(seqs))
	for i, s := range seqs {
		if s != nil && s.sub != Sequence {
			return nil, &ConstructionError{Op: op, Message: fmt.Sprintf("element %d is a %s", i, s.sub)}
		}
		p, unpin, err := s.pin()
		if err != nil {
			return nil, err
		}
		defer unpin()
		ptrs[i] = p
	}
	p, err := backend.TSequenceSetMake(ptrs, normalize)
	if err != nil {
		return nil, constructErr(op, err)
	}
	if p == nil {
		return nil, noResult(op)
	}
	return wrapTemporal[V](p), nil
}

// baseValue converts v for the from-base constructors. A geometry stays
// pinned until unpin runs.
func baseValue[V Value](v V) (backend.BaseValue, func(), error) {
	switch x := any(v).(type) {
	case bool:
		return backend.BaseValue{Type: backend.TypeTBool, Bool: x}, unpinned, nil
	case int:
		return backend.BaseValue{Type: backend.TypeTInt, Int: x}, unpinned, nil
	case float64:
		return backend.BaseValue{Type: backend.TypeTFloat, Float: x}, unpinned, nil
	case string:
		return backend.BaseValue{Type: backend.TypeTText, Text: x}, unpinned, nil
	case *Geometry:
		gp, unpin, err := x.pin()
		if err != nil {
			return backend.BaseValue{}, unpinned, err
		}
		typ := backend.TypeTGeomPoint
		if x.IsGeography() {
			typ = backend.TypeTGeogPoint
		}
		return backend.BaseValue{Type: typ, Geo: gp}, unpin, nil
	}
	return backend.BaseValue{}, unpinned, ErrReleased
}

// fromBaseInterp resolves the interpolation of a value held over a time
// span. Booleans, integers and texts only step.
func fromBaseInterp[V Value](op string, interp Interpolation) (Interpolation, error) {
	var zero V
	continuous := false
	switch any(zero).(type) {
	case float64, *Geometry:
		continuous = true
	}
	switch {
	case interp == InterpNone && continuous:
		return Linear, nil
	case interp == InterpNone:
		return Step, nil
	case interp == Discrete:
		return interp, &ConstructionError{Op: op, Message: "a time span needs step or linear interpolation"}
	case interp == Linear && !continuous:
		return interp, &ConstructionError{Op: op, Message: "linear interpolation needs a float or point value"}
	}
	return interp, nil
}

func fromBase[V Value](op string, v V, period pinner, interp Interpolation,
	fn func(backend.BaseValue, backend.Ptr, backend.Interp) (backend.Ptr, error)) (*Temporal[V], error) {
	if err := requireInitialized(); err != nil {
		return nil, err
	}
	if g, ok := any(v).(*Geometry); ok && g == nil {
		return nil, &ConstructionError{Op: op, Message: "no geometry"}
	}
	interp, err := fromBaseInterp[V](op, interp)
	if err != nil {
		return nil, err
	}
	base, unpinV, err := baseValue(v)
	if err != nil {
		return nil, err
	}
	defer unpinV()
	tp, unpinT, err := period.pin()
	if err != nil {
		return nil, err
	}
	defer unpinT()

	p, err := fn(base, tp, interp.native())
	if err != nil {
		return nil, constructErr(op, err)
	}
	if p == nil {
		return nil, noResult(op)
	}
	return wrapTemporal[V](p), nil
}

// NewSequenceFromSpan returns a sequence that holds v over span. With
// InterpNone floats and points are linear and the other types step. A
// geometry is copied and stays owned by the caller.
func NewSequenceFromSpan[V Value](v V, span *TstzSpan, interp Interpolation) (*Temporal[V], error) {
	return fromBase("NewSequenceFromSpan", v, span, interp, backend.SeqFromBaseTstzSpan)
}

// NewSequenceSetFromSpanSet returns a sequence set that holds v over every
// span of spans. Interpolation works as in NewSequenceFromSpan.
func NewSequenceSetFromSpanSet[V Value](v V, spans *TstzSpanSet, interp Interpolation) (*Temporal[V], error) {
	return fromBase("NewSequenceSetFromSpanSet", v, spans, interp, backend.SeqSetFromBaseTstzSpanSet)
}
