package internalcheck

import (
	"fmt"
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/mobilitydb/meos-go"

var publicPackages = []string{
	modulePath + "/pkg/meos",
	modulePath + "/pkg/meos/ais",
	modulePath + "/pkg/meos/orbgeo",
	modulePath + "/pkg/meos/logging",
}

func TestNoNativeAddressInPublicAPI(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, publicPackages...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			t.Errorf("%s: %v", pkg.PkgPath, e)
		}
		if pkg.Types == nil {
			continue
		}
		scope := pkg.Types.Scope()
		allowed := reexported(scope)
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			if !obj.Exported() {
				continue
			}
			for _, leak := range leaks(obj, allowed) {
				findings = append(findings, fmt.Sprintf("%s.%s: %s", pkg.PkgPath, name, leak))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("public API exposes native or internal types:\n%s", strings.Join(findings, "\n"))
	}
}

// reexported returns the internal types the package exposes under an
// exported alias. Those are part of the API on purpose.
func reexported(scope *types.Scope) map[types.Type]bool {
	out := map[types.Type]bool{}
	for _, name := range scope.Names() {
		if tn, ok := scope.Lookup(name).(*types.TypeName); ok && tn.Exported() && tn.IsAlias() {
			out[types.Unalias(tn.Type())] = true
		}
	}
	return out
}

// leaks lists the forbidden types reachable from obj's signature and from
// the exported fields and methods of a declared type.
func leaks(obj types.Object, allowed map[types.Type]bool) []string {
	var out []string
	report := func(where string, typ types.Type) {
		seen := map[types.Type]bool{}
		for t := range allowed {
			seen[t] = true
		}
		if bad := forbidden(typ, seen); bad != "" {
			out = append(out, where+" uses "+bad)
		}
	}

	tn, ok := obj.(*types.TypeName)
	if !ok {
		report("declaration", obj.Type())
		return out
	}
	if tn.IsAlias() {
		return out
	}

	named, ok := tn.Type().(*types.Named)
	if !ok {
		report("type", tn.Type())
		return out
	}
	if st, ok := named.Underlying().(*types.Struct); ok {
		for i := 0; i < st.NumFields(); i++ {
			if f := st.Field(i); f.Exported() {
				report("field "+f.Name(), f.Type())
			}
		}
	} else {
		report("underlying type", named.Underlying())
	}
	mset := types.NewMethodSet(types.NewPointer(named))
	for i := 0; i < mset.Len(); i++ {
		m := mset.At(i).Obj()
		if m.Exported() {
			report("method "+m.Name(), m.Type())
		}
	}
	return out
}

// forbidden returns a description of the first unsafe.Pointer or internal
// type found in typ, or "". Types in seen are skipped.
func forbidden(typ types.Type, seen map[types.Type]bool) string {
	if typ == nil {
		return ""
	}
	typ = types.Unalias(typ)
	if seen[typ] {
		return ""
	}
	seen[typ] = true

	switch tt := typ.(type) {
	case *types.Basic:
		if tt.Kind() == types.UnsafePointer {
			return "unsafe.Pointer"
		}
	case *types.Named:
		if obj := tt.Obj(); obj.Pkg() != nil && strings.Contains(obj.Pkg().Path(), "/internal/") {
			return obj.Pkg().Path() + "." + obj.Name()
		}
		for i := 0; i < tt.TypeArgs().Len(); i++ {
			if bad := forbidden(tt.TypeArgs().At(i), seen); bad != "" {
				return bad
			}
		}
	case *types.Pointer:
		return forbidden(tt.Elem(), seen)
	case *types.Slice:
		return forbidden(tt.Elem(), seen)
	case *types.Array:
		return forbidden(tt.Elem(), seen)
	case *types.Map:
		if bad := forbidden(tt.Key(), seen); bad != "" {
			return bad
		}
		return forbidden(tt.Elem(), seen)
	case *types.Chan:
		return forbidden(tt.Elem(), seen)
	case *types.Signature:
		for _, tup := range []*types.Tuple{tt.Params(), tt.Results()} {
			for i := 0; i < tup.Len(); i++ {
				if bad := forbidden(tup.At(i).Type(), seen); bad != "" {
					return bad
				}
			}
		}
	case *types.Struct:
		for i := 0; i < tt.NumFields(); i++ {
			if f := tt.Field(i); f.Exported() {
				if bad := forbidden(f.Type(), seen); bad != "" {
					return bad
				}
			}
		}
	}
	return ""
}
