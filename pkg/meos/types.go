package meos

import (
	"fmt"
	"strings"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
	"github.com/mobilitydb/meos-go/pkg/meos/internal/handle"
)

// TempType identifies the base type of a temporal value.
type TempType uint8

const (
	TypeUnknown TempType = iota
	TypeTBool
	TypeTInt
	TypeTFloat
	TypeTText
	TypeTGeomPoint
	TypeTGeogPoint
)

func (t TempType) String() string {
	return backend.TempType(t).String()
}

// Subtype is the shape of a temporal value.
type Subtype uint8

const (
	SubtypeUnknown Subtype = iota
	Instant
	Sequence
	SequenceSet
)

func (s Subtype) String() string {
	switch s {
	case Instant:
		return "Instant"
	case Sequence:
		return "Sequence"
	case SequenceSet:
		return "SequenceSet"
	default:
		return "Unknown"
	}
}

func subtypeOf(s backend.Subtype) Subtype {
	switch s {
	case backend.SubtypeInstant:
		return Instant
	case backend.SubtypeSequence:
		return Sequence
	case backend.SubtypeSequenceSet:
		return SequenceSet
	}
	return SubtypeUnknown
}

func (s Subtype) kind() handle.Kind {
	switch s {
	case Instant:
		return handle.KindInstant
	case Sequence:
		return handle.KindSequence
	case SequenceSet:
		return handle.KindSequenceSet
	}
	return handle.KindUnknown
}

// Interpolation describes how values evolve between instants.
type Interpolation uint8

const (
	InterpNone Interpolation = iota
	Discrete
	Step
	Linear
)

func (i Interpolation) String() string {
	switch i {
	case Discrete:
		return "Discrete"
	case Step:
		return "Step"
	case Linear:
		return "Linear"
	default:
		return "None"
	}
}

// ParseInterpolation accepts none, discrete, step, stepwise and linear in
// any letter case.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return InterpNone, nil
	case "discrete":
		return Discrete, nil
	case "step", "stepwise":
		return Step, nil
	case "linear":
		return Linear, nil
	}
	return InterpNone, fmt.Errorf("meos: unknown interpolation %q", s)
}

func (i Interpolation) native() backend.Interp {
	return backend.Interp(i)
}

// JSONFormat selects the layout of MF-JSON output.
type JSONFormat int

const (
	JSONPlain  JSONFormat = backend.JSONPlain
	JSONSpaced JSONFormat = backend.JSONSpaced
	JSONPretty JSONFormat = backend.JSONPretty
)

// MFJSONOptions controls MF-JSON output.
type MFJSONOptions struct {
	// WithBBox adds the bounding box member.
	WithBBox bool
	Format   JSONFormat
	// Precision is the number of decimals of coordinates and floats.
	// Zero selects the configured MaxDecimals.
	Precision int
	// SRS, when set, is written as the crs member.
	SRS string
}

// WKBVariant selects the byte order and extension of WKB output.
type WKBVariant uint8

const (
	// WKBLittleEndian is NDR byte order.
	WKBLittleEndian WKBVariant = WKBVariant(backend.WKBNDR)
	// WKBBigEndian is XDR byte order.
	WKBBigEndian WKBVariant = WKBVariant(backend.WKBXDR)
	// WKBExtended adds SRID information; combine with a byte order.
	WKBExtended WKBVariant = WKBVariant(backend.WKBExtended)
)
