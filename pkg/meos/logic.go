package meos

import (
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos/internal/backend"
)

// Not negates a temporal boolean.
func Not(t *TBool) (*TBool, error) {
	return derive[bool, bool](t, "Not", backend.TBoolNot)
}

// And returns the conjunction of a and b over their common time.
func And(a, b *TBool) (*TBool, error) {
	return derive2[bool, bool, bool](a, b, "And", backend.TBoolAnd)
}

// Or returns the disjunction of a and b over their common time.
func Or(a, b *TBool) (*TBool, error) {
	return derive2[bool, bool, bool](a, b, "Or", backend.TBoolOr)
}

// WhenTrue returns the periods where t is true. A value that is never
// true yields ErrEmpty.
func WhenTrue(t *TBool) (*SpanSet[time.Time], error) {
	p, err := query(t, "WhenTrue", backend.TBoolWhenTrue)
	if err != nil {
		return nil, err
	}
	return wrapSpanSet[time.Time](p)
}

// Upper converts a temporal text to upper case.
func Upper(t *TText) (*TText, error) {
	return derive[string, string](t, "Upper", backend.TTextUpper)
}

// Lower converts a temporal text to lower case.
func Lower(t *TText) (*TText, error) {
	return derive[string, string](t, "Lower", backend.TTextLower)
}

// Concat joins a and b at every instant of their common time.
func Concat(a, b *TText) (*TText, error) {
	return derive2[string, string, string](a, b, "Concat", backend.TTextConcat)
}
