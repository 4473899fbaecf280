package analyze

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePkg = "mysql-typemap/store"

func loadStore(t *testing.T) *TypeGraph {
	t.Helper()

	analyzer := NewAnalyzer("mysql")
	graph, err := analyzer.LoadPackages(storePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	return graph
}

func fieldByName(t *testing.T, s *StructInfo, name string) *FieldInfo {
	t.Helper()

	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}

	require.Failf(t, "field not found", "%s.%s", s.ID.Name, name)
	return nil
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	graph := loadStore(t)

	assert.Contains(t, graph.Packages, storePkg)

	for _, name := range []string{"Product", "Customer", "Order", "OrderItem", "Audit", "Broken"} {
		assert.Contains(t, graph.Structs, TypeID{PkgPath: storePkg, Name: name})
	}

	// enums are not tables
	assert.NotContains(t, graph.Structs, TypeID{PkgPath: storePkg, Name: "OrderStatus"})

	sorted := graph.Sorted()
	require.NotEmpty(t, sorted)
	for i := 1; i < len(sorted); i++ {
		assert.Less(t, sorted[i-1].ID.String(), sorted[i].ID.String())
	}
}

func TestAnalyzer_SkipsUnexportedAndIgnoredFields(t *testing.T) {
	graph := loadStore(t)

	customer := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "Customer"})
	require.NotNil(t, customer)

	names := make(map[string]bool)
	for _, f := range customer.Fields {
		names[f.Name] = true
	}

	assert.True(t, names["Email"])
	assert.True(t, names["Raw"])
	assert.False(t, names["password"])
	assert.False(t, names["Transient"])
}

func TestAnalyzer_FlattensEmbeddedStructs(t *testing.T) {
	graph := loadStore(t)

	product := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "Product"})
	require.NotNil(t, product)

	version := fieldByName(t, product, "Audit.Version")
	assert.True(t, version.Column.RowVersion)
	assert.Equal(t, "version", version.ColumnName())
	assert.Len(t, version.Index, 2)

	created := fieldByName(t, product, "Audit.CreatedAt")
	assert.Equal(t, "created_at", created.ColumnName())
}

func TestAnalyzer_ColumnTags(t *testing.T) {
	graph := loadStore(t)

	product := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "Product"})
	require.NotNil(t, product)

	sku := fieldByName(t, product, "SKU")
	require.NoError(t, sku.TagErr)
	require.NotNil(t, sku.Column.MaxLength)
	assert.Equal(t, 32, *sku.Column.MaxLength)
	assert.True(t, sku.Column.Index)
	assert.Equal(t, "sku", sku.ColumnName())

	attrs := fieldByName(t, product, "Attributes")
	assert.Equal(t, "Attributes", attrs.ColumnName())
	assert.Equal(t, "column.JSON[map[string]string]", attrs.TypeString())

	broken := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "Broken"})
	require.NotNil(t, broken)
	assert.Error(t, fieldByName(t, broken, "Weight").TagErr)
}

func TestReflectType_StoreFields(t *testing.T) {
	graph := loadStore(t)

	order := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "Order"})
	require.NotNil(t, order)

	tests := map[string]string{
		"ID":         "int64",
		"CustomerID": "uuid.UUID",
		"Status":     "string", // enum
		"Priority":   "uint8",  // enum
		"Delivery":   "civil.Time",
		"OrderedAt":  "time.Time",
	}

	for name, want := range tests {
		rtype, ok := ReflectType(fieldByName(t, order, name).GoType)
		require.True(t, ok, name)
		assert.Equal(t, want, rtype.String(), name)
	}

	customer := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "Customer"})
	require.NotNil(t, customer)

	birthday, ok := ReflectType(fieldByName(t, customer, "Birthday").GoType)
	require.True(t, ok)
	assert.Equal(t, reflect.Pointer, birthday.Kind())

	product := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "Product"})
	require.NotNil(t, product)

	attrs, ok := ReflectType(fieldByName(t, product, "Attributes").GoType)
	require.True(t, ok)
	assert.Equal(t, jsonDocumentType, attrs)

	broken := graph.GetStruct(TypeID{PkgPath: storePkg, Name: "Broken"})
	require.NotNil(t, broken)

	_, ok = ReflectType(fieldByName(t, broken, "Tags").GoType)
	assert.False(t, ok)
	_, ok = ReflectType(fieldByName(t, broken, "Location").GoType)
	assert.False(t, ok)
	_, ok = ReflectType(fieldByName(t, broken, "Rating").GoType)
	assert.False(t, ok, "named float is not an enum")
}
