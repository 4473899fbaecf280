package primitive

import (
	"encoding/json"
	"math"
	"reflect"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies a Go value type by the column representation it needs.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBool
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindDecimal
	KindString
	KindBytes
	KindTime
	KindDuration
	KindDate
	KindDateTime
	KindTimeOfDay
	KindUUID
	KindJSON
	KindPrimitiveEnum // named type over any integer number, boolean or string

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// JSONDocument is implemented by structured wrapper types stored as a json column.
// Generic instantiations are matched through this method instead of by type name.
type JSONDocument interface {
	JSONDocument()
}

var (
	jsonDocumentType = reflect.TypeFor[JSONDocument]()

	kindTypes = map[KindEnum]reflect.Type{
		KindBool:      reflect.TypeFor[bool](),
		KindInt:       reflect.TypeFor[int](),
		KindInt8:      reflect.TypeFor[int8](),
		KindInt16:     reflect.TypeFor[int16](),
		KindInt32:     reflect.TypeFor[int32](),
		KindInt64:     reflect.TypeFor[int64](),
		KindUint:      reflect.TypeFor[uint](),
		KindUint8:     reflect.TypeFor[uint8](),
		KindUint16:    reflect.TypeFor[uint16](),
		KindUint32:    reflect.TypeFor[uint32](),
		KindUint64:    reflect.TypeFor[uint64](),
		KindFloat32:   reflect.TypeFor[float32](),
		KindFloat64:   reflect.TypeFor[float64](),
		KindDecimal:   reflect.TypeFor[decimal.Decimal](),
		KindString:    reflect.TypeFor[string](),
		KindBytes:     reflect.TypeFor[[]byte](),
		KindTime:      reflect.TypeFor[time.Time](),
		KindDuration:  reflect.TypeFor[time.Duration](),
		KindDate:      reflect.TypeFor[civil.Date](),
		KindDateTime:  reflect.TypeFor[civil.DateTime](),
		KindTimeOfDay: reflect.TypeFor[civil.Time](),
		KindUUID:      reflect.TypeFor[uuid.UUID](),
		KindJSON:      reflect.TypeFor[json.RawMessage](),
	}

	typeKinds map[reflect.Type]KindEnum

	enumKinds = map[reflect.Kind]KindEnum{
		reflect.Bool:   KindBool,
		reflect.Int:    KindInt,
		reflect.Int8:   KindInt8,
		reflect.Int16:  KindInt16,
		reflect.Int32:  KindInt32,
		reflect.Int64:  KindInt64,
		reflect.Uint:   KindUint,
		reflect.Uint8:  KindUint8,
		reflect.Uint16: KindUint16,
		reflect.Uint32: KindUint32,
		reflect.Uint64: KindUint64,
		reflect.String: KindString,
	}
)

func init() {
	typeKinds = make(map[reflect.Type]KindEnum, len(kindTypes))
	for kind, rtype := range kindTypes {
		typeKinds[rtype] = kind
	}
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64, KindDecimal:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// ReflectType returns the canonical Go type for the kind, or nil for
// KindPrimitiveEnum and invalid kinds.
func (k KindEnum) ReflectType() reflect.Type {
	return kindTypes[k]
}

// FromReflectType classifies rtype by exact type identity. Named types over
// primitive kinds are reported as KindPrimitiveEnum; anything else is the zero kind.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	// check if true primitive type
	if kind, ok := typeKinds[rtype]; ok {
		return kind
	}

	if rtype.Implements(jsonDocumentType) {
		return KindJSON
	}

	// check if it's a primitive enum type
	if IsEnumBase(rtype.Kind()) && rtype.Name() != "" {
		return KindPrimitiveEnum
	}

	return 0
}

// IsEnumBase reports whether a named type of kind k is treated as an enum:
// bool, the integer kinds and string. Named floats are not.
func IsEnumBase(k reflect.Kind) bool {
	_, ok := enumKinds[k]
	return ok
}

// Unwrap returns the builtin type backing a primitive enum type.
// Any other type is returned as is.
func Unwrap(rtype reflect.Type) reflect.Type {
	if FromReflectType(rtype) != KindPrimitiveEnum {
		return rtype
	}

	return enumKinds[rtype.Kind()].ReflectType()
}
