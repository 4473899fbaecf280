package analyze

import (
	"go/types"
	"reflect"

	"mysql-typemap/column"
	"mysql-typemap/primitive"
)

var (
	// namedTypes maps "pkgpath.Name" of the named types the resolver knows
	// to their reflect.Type.
	namedTypes = map[string]reflect.Type{}

	basicTypes = map[types.BasicKind]reflect.Type{
		types.Bool:    reflect.TypeFor[bool](),
		types.Int:     reflect.TypeFor[int](),
		types.Int8:    reflect.TypeFor[int8](),
		types.Int16:   reflect.TypeFor[int16](),
		types.Int32:   reflect.TypeFor[int32](),
		types.Int64:   reflect.TypeFor[int64](),
		types.Uint:    reflect.TypeFor[uint](),
		types.Uint8:   reflect.TypeFor[uint8](),
		types.Uint16:  reflect.TypeFor[uint16](),
		types.Uint32:  reflect.TypeFor[uint32](),
		types.Uint64:  reflect.TypeFor[uint64](),
		types.Float32: reflect.TypeFor[float32](),
		types.Float64: reflect.TypeFor[float64](),
		types.String:  reflect.TypeFor[string](),
	}

	jsonDocumentType = reflect.TypeFor[column.JSON[any]]()
)

func init() {
	for k := primitive.KindEnum(1); int(k) < primitive.KindTotal; k++ {
		rtype := k.ReflectType()
		if rtype == nil || rtype.PkgPath() == "" {
			continue
		}

		namedTypes[rtype.PkgPath()+"."+rtype.Name()] = rtype
	}
}

// ReflectType returns the reflect.Type the resolver should see for t.
// Enum types (named types over bool, integers or string) are returned as
// their builtin type. Types with no column representation report false.
func ReflectType(t types.Type) (reflect.Type, bool) {
	switch tt := types.Unalias(t).(type) {
	case *types.Basic:
		rtype, ok := basicTypes[tt.Kind()]
		return rtype, ok

	case *types.Pointer:
		elem, ok := ReflectType(tt.Elem())
		if !ok {
			return nil, false
		}
		return reflect.PointerTo(elem), true

	case *types.Slice:
		if b, ok := types.Unalias(tt.Elem()).(*types.Basic); ok && b.Kind() == types.Uint8 {
			return reflect.TypeFor[[]byte](), true
		}
		return nil, false

	case *types.Named:
		return reflectNamed(tt)

	default:
		return nil, false
	}
}

func reflectNamed(named *types.Named) (reflect.Type, bool) {
	obj := named.Obj()
	if obj.Pkg() != nil {
		if rtype, ok := namedTypes[obj.Pkg().Path()+"."+obj.Name()]; ok {
			return rtype, true
		}
	}

	if isJSONDocument(named) {
		return jsonDocumentType, true
	}

	// enum: named type over bool, integer or string
	if b, ok := named.Underlying().(*types.Basic); ok {
		rtype, ok := basicTypes[b.Kind()]
		if !ok || !primitive.IsEnumBase(rtype.Kind()) {
			return nil, false
		}
		return rtype, true
	}

	return nil, false
}

// isJSONDocument reports whether the value method set of named has the
// primitive.JSONDocument marker method.
func isJSONDocument(named *types.Named) bool {
	sel := types.NewMethodSet(named).Lookup(nil, "JSONDocument")
	if sel == nil {
		return false
	}

	sig, ok := sel.Type().(*types.Signature)
	return ok && sig.Params().Len() == 0 && sig.Results().Len() == 0
}
