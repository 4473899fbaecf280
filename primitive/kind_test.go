package primitive_test

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"

	"mysql-typemap/primitive"
)

func Example() {
	type IntEnum int
	type StringEnum string
	type Blob []byte
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(StringEnum(""))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Time{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(uuid.UUID{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(json.RawMessage{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Blob{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindString
	// KindPrimitiveEnum
	// KindPrimitiveEnum
	// KindDuration
	// KindTime
	// KindUUID
	// KindJSON
	// KindEnum(0)
	// KindEnum(0)
}

func ExampleUnwrap() {
	type Status uint16
	type Label string

	fmt.Println(primitive.Unwrap(reflect.TypeOf(Status(0))))
	fmt.Println(primitive.Unwrap(reflect.TypeOf(Label(""))))
	fmt.Println(primitive.Unwrap(reflect.TypeOf(time.Duration(0))))
	// Output:
	// uint16
	// string
	// time.Duration
}
