package typemap

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"mysql-typemap/column"
)

type Priority int

type Label string

type Ratio float64

type Flags []byte

type JSON struct{ Raw string }

type payload struct {
	A int `json:"a"`
}

func TestFindMapping_Primitives(t *testing.T) {
	tests := []struct {
		rtype     reflect.Type
		storeType string
	}{
		{reflect.TypeFor[bool](), "bit"},
		{reflect.TypeFor[int32](), "int"},
		{reflect.TypeFor[int](), "bigint"},
		{reflect.TypeFor[float32](), "float"},
		{reflect.TypeFor[float64](), "double"},
		{reflect.TypeFor[string](), "varchar(255)"},
		{reflect.TypeFor[time.Time](), "datetime"},
		{reflect.TypeFor[time.Duration](), "time(6)"},
		{reflect.TypeFor[uuid.UUID](), "char(36)"},
		{reflect.TypeFor[*int32](), "int"},
		{reflect.TypeFor[**bool](), "bit"},
	}

	for _, tt := range tests {
		t.Run(tt.rtype.String(), func(t *testing.T) {
			m := Default.FindMapping(tt.rtype)
			require.NotNil(t, m)
			assert.Equal(t, tt.storeType, m.StoreType())
		})
	}
}

// FindMapping maps []byte to longblob even though the registry's own []byte
// entry is varbinary(767). The registry entry is the binary policy's default
// for ordinary columns.
func TestFindMapping_BytesBypassRegistry(t *testing.T) {
	m := Default.FindMapping(reflect.TypeFor[[]byte]())
	require.NotNil(t, m)
	assert.Equal(t, "longblob", m.StoreType())

	registered, ok := Default.Registry().ByValueType(reflect.TypeFor[[]byte]())
	require.True(t, ok)
	assert.Equal(t, "varbinary(767)", registered.StoreType())
	assert.NotSame(t, registered, m)
}

func TestFindMapping_JSONDocuments(t *testing.T) {
	for _, rtype := range []reflect.Type{
		reflect.TypeFor[column.JSON[payload]](),
		reflect.TypeFor[column.JSON[[]string]](),
		reflect.TypeFor[*column.JSON[map[string]int]](),
		reflect.TypeFor[json.RawMessage](),
	} {
		m := Default.FindMapping(rtype)
		require.NotNil(t, m, rtype.String())
		assert.Equal(t, "json", m.StoreType(), rtype.String())
	}

	// a type that only shares the name is not a json document
	assert.Nil(t, Default.FindMapping(reflect.TypeFor[JSON]()))
}

func TestFindMapping_NoMapping(t *testing.T) {
	assert.Nil(t, Default.FindMapping(nil))
	assert.Nil(t, Default.FindMapping(reflect.TypeFor[payload]()))
	assert.Nil(t, Default.FindMapping(reflect.TypeFor[map[string]int]()))
	assert.Nil(t, Default.FindMapping(reflect.TypeFor[Priority]()), "enums are only unwrapped for properties")
	assert.Nil(t, Default.FindMapping(reflect.TypeFor[Flags]()))
}

func TestFindMappingByName(t *testing.T) {
	m, ok := Default.FindMappingByName("LONGTEXT")
	require.True(t, ok)
	assert.Equal(t, "longtext", m.StoreType())

	_, ok = Default.FindMappingByName("point")
	assert.False(t, ok)
}

func TestFindCustomMapping_Text(t *testing.T) {
	m, err := Default.FindCustomMapping(PropertyFor[string]("Name").WithMaxLength(100))
	require.NoError(t, err)
	assert.Equal(t, "varchar(100)", m.StoreType())

	m, err = Default.FindCustomMapping(PropertyFor[*string]("Bio").WithMaxLength(70000))
	require.NoError(t, err)
	assert.Equal(t, "mediumtext", m.StoreType())

	m, err = Default.FindCustomMapping(PropertyFor[Label]("Label"))
	require.NoError(t, err)
	assert.Equal(t, "varchar(255)", m.StoreType())
}

func TestFindCustomMapping_TextInvalid(t *testing.T) {
	m, err := Default.FindCustomMapping(PropertyFor[string]("Name").WithMaxLength(0))
	assert.Nil(t, m)
	require.ErrorIs(t, err, ErrInvalidConstraint)
	assert.Contains(t, err.Error(), "property Name")
}

func TestFindCustomMapping_Bytes(t *testing.T) {
	m, err := Default.FindCustomMapping(PropertyFor[[]byte]("Blob"))
	require.NoError(t, err)
	assert.Equal(t, "longblob", m.StoreType())

	p := PropertyFor[[]byte]("Hash")
	p.IsIndex = true
	m, err = Default.FindCustomMapping(p)
	require.NoError(t, err)
	assert.Equal(t, "varbinary(767)", m.StoreType())

	p.IsIndex = false
	p.IsKey = true
	m, err = Default.FindCustomMapping(p.WithMaxLength(32))
	require.NoError(t, err)
	assert.Equal(t, "varbinary(32)", m.StoreType())

	p.IsRowVersion = true
	m, err = Default.FindCustomMapping(p)
	require.NoError(t, err)
	assert.Equal(t, rowVersionType, m.StoreType())
}

func TestFindCustomMapping_EnumMatchesUnderlying(t *testing.T) {
	enum, err := Default.FindCustomMapping(PropertyFor[Priority]("Priority"))
	require.NoError(t, err)

	plain, err := Default.FindCustomMapping(PropertyFor[int]("Priority"))
	require.NoError(t, err)

	require.NotNil(t, enum)
	assert.True(t, enum.Equal(plain))
	assert.Equal(t, "bigint", enum.StoreType())

	ratio, err := Default.FindCustomMapping(PropertyFor[Ratio]("Ratio"))
	require.NoError(t, err)
	assert.Nil(t, ratio, "named float is not an enum")
}

func TestFindCustomMapping_FallsBackToFindMapping(t *testing.T) {
	m, err := Default.FindCustomMapping(PropertyFor[uuid.UUID]("ID"))
	require.NoError(t, err)
	assert.Equal(t, "char(36)", m.StoreType())

	m, err = Default.FindCustomMapping(PropertyFor[column.JSON[payload]]("Doc").WithMaxLength(10))
	require.NoError(t, err)
	assert.Equal(t, "json", m.StoreType())

	m, err = Default.FindCustomMapping(PropertyFor[payload]("Nested"))
	require.NoError(t, err)
	assert.Nil(t, m)

	m, err = Default.FindCustomMapping(Property{Name: "untyped"})
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestResolution_IsIdempotent(t *testing.T) {
	props := []Property{
		PropertyFor[string]("a").WithMaxLength(40),
		PropertyFor[[]byte]("b").WithMaxLength(16),
		PropertyFor[int16]("c"),
		PropertyFor[Priority]("d"),
	}

	for _, p := range props {
		first, err := Default.FindCustomMapping(p)
		require.NoError(t, err)

		second, err := Default.FindCustomMapping(p)
		require.NoError(t, err)

		assert.Equal(t, first, second, p.Name)
		assert.True(t, first.Equal(second), p.Name)
	}
}

func TestResolution_ConcurrentReads(t *testing.T) {
	t.Parallel()

	r := MustNew(DefaultOptions())

	var g errgroup.Group
	for i := range 32 {
		g.Go(func() error {
			_, err := r.FindCustomMapping(PropertyFor[string]("s").WithMaxLength(i + 1))
			if err != nil {
				return err
			}

			if m := r.FindMapping(reflect.TypeFor[int64]()); m.StoreType() != "bigint" {
				t.Errorf("unexpected store type %s", m)
			}

			_, _ = r.FindMappingByName("VARCHAR")
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func TestNew_Options(t *testing.T) {
	r, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), r.Options())

	_, err = New(Options{InlineSizeCeiling: -1})
	require.Error(t, err)

	_, err = New(Options{DefaultTextLength: -1})
	require.Error(t, err)

	_, err = New(Options{DefaultTextLength: maxVarcharLength + 1})
	require.Error(t, err)

	r, err = New(Options{DefaultTextLength: maxVarcharLength})
	require.NoError(t, err)

	custom, err := r.FindCustomMapping(PropertyFor[string]("Body"))
	require.NoError(t, err)
	assert.True(t, r.FindMapping(reflect.TypeFor[string]()).Equal(custom))
	assert.Equal(t, "varchar(65535)", custom.StoreType())

	byName, ok := r.FindMappingByName("varchar")
	require.True(t, ok)
	assert.Equal(t, "varchar(65535)", byName.StoreType())

	assert.Panics(t, func() { MustNew(Options{DefaultTextLength: -1}) })
}
