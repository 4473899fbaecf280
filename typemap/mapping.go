package typemap

// Mapping describes one MySQL column type. Values are immutable and shared
// by pointer between resolutions.
type Mapping struct {
	storeType         string
	dbType            DbType
	unicode           bool
	size              int
	hasSize           bool
	fixedLength       bool
	nonDefaultUnicode bool
	nonDefaultSize    bool
}

// MappingOption customizes a Mapping at construction time.
type MappingOption func(*Mapping)

// WithUnicode overrides the default (true) unicode flag.
func WithUnicode(unicode bool) MappingOption {
	return func(m *Mapping) { m.unicode = unicode }
}

// WithSize sets the declared length or precision.
func WithSize(size int) MappingOption {
	return func(m *Mapping) {
		m.size = size
		m.hasSize = true
	}
}

// WithFixedLength marks a fixed length encoding such as char.
func WithFixedLength() MappingOption {
	return func(m *Mapping) { m.fixedLength = true }
}

// WithNonDefaultUnicode marks the unicode flag as explicitly requested.
func WithNonDefaultUnicode() MappingOption {
	return func(m *Mapping) { m.nonDefaultUnicode = true }
}

// WithNonDefaultSize marks the size as explicitly requested.
func WithNonDefaultSize() MappingOption {
	return func(m *Mapping) { m.nonDefaultSize = true }
}

// NewMapping creates a descriptor. It panics on an empty store type.
func NewMapping(storeType string, dbType DbType, opts ...MappingOption) *Mapping {
	if storeType == "" {
		panic("typemap: empty store type")
	}

	m := &Mapping{
		storeType: storeType,
		dbType:    dbType,
		unicode:   true,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// StoreType returns the physical column type expression, e.g. "varchar(255)".
func (m *Mapping) StoreType() string { return m.storeType }

// DbType returns the generic data kind.
func (m *Mapping) DbType() DbType { return m.dbType }

func (m *Mapping) IsUnicode() bool { return m.unicode }

// Size returns the declared length, if the store type is parameterized.
func (m *Mapping) Size() (int, bool) { return m.size, m.hasSize }

func (m *Mapping) IsFixedLength() bool { return m.fixedLength }

func (m *Mapping) HasNonDefaultUnicode() bool { return m.nonDefaultUnicode }

func (m *Mapping) HasNonDefaultSize() bool { return m.nonDefaultSize }

// Equal reports value equality. Two nil mappings are equal.
func (m *Mapping) Equal(other *Mapping) bool {
	if m == nil || other == nil {
		return m == other
	}

	return *m == *other
}

// String returns the store type.
func (m *Mapping) String() string {
	if m == nil {
		return "<nil>"
	}

	return m.storeType
}
