package typemap

import (
	"encoding/json"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// storeTypes holds the fixed descriptors every table entry points to.
type storeTypes struct {
	// boolean
	bit *Mapping

	// integers
	tinyint   *Mapping
	utinyint  *Mapping
	smallint  *Mapping
	usmallint *Mapping
	int       *Mapping
	uint      *Mapping
	bigint    *Mapping
	ubigint   *Mapping

	// decimals
	decimal *Mapping
	double  *Mapping
	float   *Mapping

	// binary
	char         *Mapping
	varbinary    *Mapping
	varbinary767 *Mapping
	longblob     *Mapping

	// string
	varchar    *Mapping
	tinytext   *Mapping
	text       *Mapping
	mediumtext *Mapping
	longtext   *Mapping

	// date and time
	datetime *Mapping
	date     *Mapping
	time     *Mapping

	json       *Mapping
	rowVersion *Mapping
	uuid       *Mapping
}

func newStoreTypes(opts Options) storeTypes {
	return storeTypes{
		bit: NewMapping("bit", DbTypeBoolean),

		tinyint:   NewMapping("tinyint", DbTypeSByte),
		utinyint:  NewMapping("tinyint unsigned", DbTypeByte),
		smallint:  NewMapping("smallint", DbTypeInt16),
		usmallint: NewMapping("smallint unsigned", DbTypeUInt16),
		int:       NewMapping("int", DbTypeInt32),
		uint:      NewMapping("int unsigned", DbTypeUInt32),
		bigint:    NewMapping("bigint", DbTypeInt64),
		ubigint:   NewMapping("bigint unsigned", DbTypeUInt64),

		decimal: NewMapping("decimal(65,30)", DbTypeDecimal),
		double:  NewMapping("double", DbTypeDouble),
		float:   NewMapping("float", DbTypeSingle),

		char:         NewMapping("char", DbTypeAnsiStringFixedLength, WithUnicode(false), WithFixedLength()),
		varbinary:    NewMapping("varbinary", DbTypeBinary),
		varbinary767: NewMapping("varbinary(767)", DbTypeBinary, WithSize(767)),
		longblob:     NewMapping("longblob", DbTypeBinary),

		varchar: NewMapping("varchar("+itoa(opts.DefaultTextLength)+")", DbTypeAnsiString,
			WithUnicode(false), WithSize(opts.DefaultTextLength)),
		tinytext:   NewMapping("tinytext", DbTypeString),
		text:       NewMapping("text", DbTypeString),
		mediumtext: NewMapping("mediumtext", DbTypeString),
		longtext:   NewMapping("longtext", DbTypeString),

		datetime: NewMapping("datetime", DbTypeDateTime),
		date:     NewMapping("date", DbTypeDate),
		time:     NewMapping("time(6)", DbTypeTime),

		json:       NewMapping("json", DbTypeString),
		rowVersion: NewMapping("TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP", DbTypeBinary),
		uuid:       NewMapping("char(36)", DbTypeGuid, WithUnicode(false), WithFixedLength(), WithSize(36)),
	}
}

// Registry is the static lookup of column types by store type name and by
// Go value type. It is built once and never changes.
type Registry struct {
	types  storeTypes
	byName map[string]*Mapping
	byType map[reflect.Type]*Mapping
}

// NewRegistry builds the registry for the stock options.
func NewRegistry() *Registry {
	return newRegistry(DefaultOptions())
}

func newRegistry(opts Options) *Registry {
	st := newStoreTypes(opts)

	byName := map[string]*Mapping{
		// boolean
		"bit": st.bit,

		// integers
		"tinyint":           st.tinyint,
		"tinyint unsigned":  st.utinyint,
		"smallint":          st.smallint,
		"smallint unsigned": st.usmallint,
		"int":               st.int,
		"int unsigned":      st.uint,
		"bigint":            st.bigint,
		"bigint unsigned":   st.ubigint,

		// decimals
		"decimal": st.decimal,
		"double":  st.double,
		"float":   st.float,

		// binary
		"binary":    st.varbinary,
		"char":      st.char,
		"varbinary": st.varbinary,
		"varchar":   st.varchar,
		"longblob":  st.longblob,

		// string
		"tinytext":   st.tinytext,
		"text":       st.text,
		"mediumtext": st.mediumtext,
		"longtext":   st.longtext,

		// date and time
		"datetime": st.datetime,
		"date":     st.date,
		"time":     st.time,

		"json":             st.json,
		"uniqueidentifier": st.uuid,
	}

	byType := map[reflect.Type]*Mapping{
		// boolean
		reflect.TypeFor[bool](): st.bit,

		// integers
		reflect.TypeFor[int8]():   st.tinyint,
		reflect.TypeFor[uint8]():  st.utinyint,
		reflect.TypeFor[int16]():  st.smallint,
		reflect.TypeFor[uint16](): st.usmallint,
		reflect.TypeFor[int32]():  st.int,
		reflect.TypeFor[uint32](): st.uint,
		reflect.TypeFor[int64]():  st.bigint,
		reflect.TypeFor[uint64](): st.ubigint,
		reflect.TypeFor[int]():    st.bigint,
		reflect.TypeFor[uint]():   st.ubigint,

		// decimals
		reflect.TypeFor[decimal.Decimal](): st.decimal,
		reflect.TypeFor[float32]():         st.float,
		reflect.TypeFor[float64]():         st.double,

		reflect.TypeFor[string](): st.varchar,
		reflect.TypeFor[[]byte](): st.varbinary767,

		// date and time
		reflect.TypeFor[time.Time]():      st.datetime,
		reflect.TypeFor[civil.DateTime](): st.datetime,
		reflect.TypeFor[civil.Date]():     st.date,
		reflect.TypeFor[civil.Time]():     st.time,
		reflect.TypeFor[time.Duration]():  st.time,

		reflect.TypeFor[json.RawMessage](): st.json,
		reflect.TypeFor[uuid.UUID]():       st.uuid,
	}

	return &Registry{
		types:  st,
		byName: byName,
		byType: byType,
	}
}

// ByName looks up a store type name, ignoring case.
func (r *Registry) ByName(name string) (*Mapping, bool) {
	m, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// ByValueType looks up a Go type by exact identity. Named types, pointers
// and generic instantiations do not match their underlying types.
func (r *Registry) ByValueType(t reflect.Type) (*Mapping, bool) {
	m, ok := r.byType[t]
	return m, ok
}

// Names returns the registered store type names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// ValueTypes returns the registered Go types sorted by their string form.
func (r *Registry) ValueTypes() []reflect.Type {
	ts := make([]reflect.Type, 0, len(r.byType))
	for t := range r.byType {
		ts = append(ts, t)
	}
	slices.SortFunc(ts, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})

	return ts
}
