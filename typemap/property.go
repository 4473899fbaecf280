package typemap

import "reflect"

// Property is a Go value type together with its column constraints.
type Property struct {
	Name         string
	Type         reflect.Type
	MaxLength    *int // nil means "use the default"
	IsKey        bool
	IsIndex      bool
	IsRowVersion bool // only meaningful for []byte
}

// KeyOrIndex reports whether the column takes part in a key or an index.
func (p Property) KeyOrIndex() bool {
	return p.IsKey || p.IsIndex
}

// PropertyFor returns an unconstrained property of type T.
func PropertyFor[T any](name string) Property {
	return Property{Name: name, Type: reflect.TypeFor[T]()}
}

// WithMaxLength returns a copy of p with the max length set.
func (p Property) WithMaxLength(n int) Property {
	p.MaxLength = &n
	return p
}
