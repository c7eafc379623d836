package backend

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"
)

// ErrNotBuilt reports that the native bindings were not linked into the
// current binary.
var ErrNotBuilt = errors.New("meos/internal/backend: native bindings not built")

// ErrNotReady is returned by calls made while the native library is not
// initialized.
var ErrNotReady = errors.New("meos/internal/backend: native library not initialized")

// Ptr is an opaque address of a native structure.
type Ptr = unsafe.Pointer

// NativeError is a failure reported by the MEOS error handler.
type NativeError struct {
	Op      string
	Level   int
	Code    int
	Message string
}

func (e *NativeError) Error() string {
	return fmt.Sprintf("%s: %s (code %d)", e.Op, e.Message, e.Code)
}

// LevelError is the error handler level of a failed call. Lower levels are
// notices and warnings, which do not fail the call. The values follow the
// PostgreSQL elog levels.
const LevelError = 21

// NoticeFunc receives the handler reports below LevelError.
type NoticeFunc func(level, code int, msg string)

var notice atomic.Pointer[NoticeFunc]

// SetNoticeHandler installs fn as the receiver of notices and warnings.
// nil drops them. fn runs while a native call is in progress and must not
// call back into this package.
func SetNoticeHandler(fn NoticeFunc) {
	if fn == nil {
		notice.Store(nil)
		return
	}
	notice.Store(&fn)
}

// classify reports whether a handler report fails the call. Reports that
// do not are passed to the notice handler.
func classify(level, code int, msg string) bool {
	if level >= LevelError {
		return true
	}
	if fn := notice.Load(); fn != nil {
		(*fn)(level, code, msg)
	}
	return false
}

// TempType mirrors the meosType values of the temporal types.
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
	switch t {
	case TypeTBool:
		return "tbool"
	case TypeTInt:
		return "tint"
	case TypeTFloat:
		return "tfloat"
	case TypeTText:
		return "ttext"
	case TypeTGeomPoint:
		return "tgeompoint"
	case TypeTGeogPoint:
		return "tgeogpoint"
	default:
		return "unknown"
	}
}

// Subtype mirrors tempSubtype.
type Subtype uint8

const (
	SubtypeAny Subtype = iota
	SubtypeInstant
	SubtypeSequence
	SubtypeSequenceSet
)

// Interp mirrors interpType.
type Interp uint8

const (
	InterpNone Interp = iota
	InterpDiscrete
	InterpStep
	InterpLinear
)

// SpanType selects the base type of spans, span sets and sets.
type SpanType uint8

const (
	SpanUnknown SpanType = iota
	SpanInt
	SpanFloat
	SpanTstz
	SpanDate
)

// BaseValue carries the base value of a from-base constructor. Type picks
// the field that is read.
type BaseValue struct {
	Type  TempType
	Bool  bool
	Int   int
	Float float64
	Text  string
	Geo   Ptr
}

// ValueSel selects one of the scalar accessors.
type ValueSel uint8

const (
	ValueStart ValueSel = iota
	ValueEnd
	ValueMin
	ValueMax
)

// SpanPred selects a binary span predicate.
type SpanPred uint8

const (
	SpanEq SpanPred = iota
	SpanOverlaps
	SpanContains
	SpanAdjacent
)

// SpanPos selects a span position predicate.
type SpanPos uint8

const (
	SpanLeft SpanPos = iota
	SpanOverLeft
	SpanRight
	SpanOverRight
)

// BoxCoord selects a box bound.
type BoxCoord uint8

const (
	CoordXMin BoxCoord = iota
	CoordXMax
	CoordYMin
	CoordYMax
)

// Arith selects a temporal arithmetic operator.
type Arith uint8

const (
	ArithAdd Arith = iota
	ArithSub
	ArithMul
	ArithDiv
)

// Interval is the native interval split into its three components.
type Interval struct {
	Micros int64
	Days   int32
	Months int32
}

// MF-JSON output flags, matching json-c's JSON_C_TO_STRING_* values.
const (
	JSONPlain  = 0
	JSONSpaced = 1
	JSONPretty = 2
)

// WKB variants accepted by the *_as_wkb functions.
const (
	WKBNDR      uint8 = 0x08
	WKBXDR      uint8 = 0x10
	WKBExtended uint8 = 0x04
)

// DefaultMaxDecimals is the precision used for text output.
const DefaultMaxDecimals = 15
