package typemap

import (
	"fmt"
	"reflect"

	"mysql-typemap/primitive"
)

// Resolver maps Go value types to column types.
// A nil *Mapping means no column type represents the value type.
type Resolver interface {
	FindMapping(t reflect.Type) *Mapping
	FindCustomMapping(p Property) (*Mapping, error)
}

// typeLookup is one step of FindMapping; nil passes on to the next step.
type typeLookup func(t reflect.Type) *Mapping

// MySQL is the Resolver for MySQL.
type MySQL struct {
	opts     Options
	registry *Registry
	text     *TextPolicy
	binary   *BinaryPolicy
	lookups  []typeLookup
}

var _ Resolver = (*MySQL)(nil)

// Default is a resolver with the stock options.
var Default = MustNew(DefaultOptions())

// New creates a resolver. Zero option fields take their defaults.
func New(opts Options) (*MySQL, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resolver options: %w", err)
	}
	opts = opts.withDefaults()

	registry := newRegistry(opts)
	st := registry.types

	m := &MySQL{
		opts:     opts,
		registry: registry,
		text:     NewTextPolicy(opts.DefaultTextLength, st.mediumtext, st.longtext),
		binary: NewBinaryPolicy(
			opts.InlineSizeCeiling,
			st.longblob,
			st.varbinary767,
			st.varbinary767,
			st.rowVersion,
			varbinary,
		),
	}
	m.lookups = []typeLookup{
		m.jsonDocument,
		m.unboundedBytes,
		m.registered,
	}

	return m, nil
}

// MustNew is like New but panics on invalid options.
func MustNew(opts Options) *MySQL {
	m, err := New(opts)
	if err != nil {
		panic(err)
	}

	return m
}

func (m *MySQL) Options() Options { return m.opts }

func (m *MySQL) Registry() *Registry { return m.registry }

func (m *MySQL) TextPolicy() *TextPolicy { return m.text }

func (m *MySQL) BinaryPolicy() *BinaryPolicy { return m.binary }

// FindMappingByName looks up a store type name, ignoring case.
func (m *MySQL) FindMappingByName(storeType string) (*Mapping, bool) {
	return m.registry.ByName(storeType)
}

// FindMapping returns the canonical column type of t, or nil. Pointers map
// like the type they point to.
func (m *MySQL) FindMapping(t reflect.Type) *Mapping {
	if t == nil {
		return nil
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for _, lookup := range m.lookups {
		if mapping := lookup(t); mapping != nil {
			return mapping
		}
	}

	return nil
}

// FindCustomMapping returns the column type for an annotated property, or
// nil when its type has no column representation.
func (m *MySQL) FindCustomMapping(p Property) (*Mapping, error) {
	if p.Type == nil {
		return nil, nil
	}

	t := p.Type
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	t = primitive.Unwrap(t)

	var (
		mapping *Mapping
		err     error
	)

	switch primitive.FromReflectType(t) {
	case primitive.KindString:
		mapping, err = m.text.Resolve(p.MaxLength)
	case primitive.KindBytes:
		mapping, err = m.binary.Resolve(p.IsRowVersion, p.KeyOrIndex(), p.MaxLength)
	default:
		return m.FindMapping(t), nil
	}

	if err != nil {
		if p.Name != "" {
			return nil, fmt.Errorf("property %s: %w", p.Name, err)
		}
		return nil, err
	}

	return mapping, nil
}

func (m *MySQL) jsonDocument(t reflect.Type) *Mapping {
	if primitive.FromReflectType(t) != primitive.KindJSON {
		return nil
	}

	return m.registry.types.json
}

// unboundedBytes maps []byte to longblob. The registry's own []byte entry is
// varbinary(767), the binary policy's default for ordinary columns.
func (m *MySQL) unboundedBytes(t reflect.Type) *Mapping {
	if primitive.FromReflectType(t) != primitive.KindBytes {
		return nil
	}

	return m.binary.unbounded
}

func (m *MySQL) registered(t reflect.Type) *Mapping {
	mapping, _ := m.registry.ByValueType(t)
	return mapping
}
