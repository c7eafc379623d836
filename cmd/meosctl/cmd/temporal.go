package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos"
)

// temporal is the part of meos.Temporal the commands use regardless of the
// base type.
type temporal interface {
	Free()
	TempType() meos.TempType
	Subtype() meos.Subtype
	Interpolation() meos.Interpolation
	NumInstants() (int, error)
	Duration(boundSpan bool) (time.Duration, error)
	WKT(maxDecimals int) (string, error)
	EWKT(maxDecimals int) (string, error)
	MFJSON(opts meos.MFJSONOptions) (string, error)
	HexWKB() (string, error)
}

var typeNames = []string{"tbool", "tint", "tfloat", "ttext", "tgeompoint", "tgeogpoint"}

func erase[V meos.Value](t *meos.Temporal[V], err error) (temporal, error) {
	if err != nil {
		return nil, err
	}
	return t, nil
}

// parseTemporal reads s as the temporal type named typ. MF-JSON input is
// recognised by its leading brace.
func parseTemporal(typ, s string) (temporal, error) {
	s = strings.TrimSpace(s)
	mf := strings.HasPrefix(s, "{\"")
	switch strings.ToLower(typ) {
	case "tbool":
		if mf {
			return erase(meos.TBoolFromMFJSON(s))
		}
		return erase(meos.ParseTBool(s))
	case "tint":
		if mf {
			return erase(meos.TIntFromMFJSON(s))
		}
		return erase(meos.ParseTInt(s))
	case "tfloat":
		if mf {
			return erase(meos.TFloatFromMFJSON(s))
		}
		return erase(meos.ParseTFloat(s))
	case "ttext":
		if mf {
			return erase(meos.TTextFromMFJSON(s))
		}
		return erase(meos.ParseTText(s))
	case "tgeompoint":
		if mf {
			return erase(meos.TGeomPointFromMFJSON(s))
		}
		return erase(meos.ParseTGeomPoint(s))
	case "tgeogpoint":
		if mf {
			return erase(meos.TGeogPointFromMFJSON(s))
		}
		return erase(meos.ParseTGeogPoint(s))
	}
	return nil, fmt.Errorf("unknown type %q (want one of %s)", typ, strings.Join(typeNames, ", "))
}
