package analyze

import (
	"go/types"
	"reflect"
	"slices"
	"strings"

	"mysql-typemap/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "mysql-typemap/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the type name qualified by the package alias, e.g. "store.Order".
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// StructInfo describes an exported struct type.
type StructInfo struct {
	ID     TypeID
	Fields []FieldInfo // Column fields, embedded structs flattened
}

// FieldInfo describes a struct field that maps to a column.
type FieldInfo struct {
	Name   string            // Go field name, dotted for fields of embedded structs
	GoType types.Type        // Declared field type
	Tag    reflect.StructTag // Raw struct tag
	Column ColumnTag         // Parsed column constraints
	TagErr error             // Set when the column tag could not be parsed
	Index  []int             // Field index path, as for reflect.Value.FieldByIndex
}

// ColumnName returns the column name from the tag, or the field name.
func (f *FieldInfo) ColumnName() string {
	if f.Column.Name != "" {
		return f.Column.Name
	}

	if i := strings.LastIndex(f.Name, "."); i >= 0 {
		return f.Name[i+1:]
	}

	return f.Name
}

// TypeString returns the field type qualified by package aliases.
func (f *FieldInfo) TypeString() string {
	return types.TypeString(f.GoType, func(p *types.Package) string {
		return p.Name()
	})
}

// TypeGraph holds all analyzed structs from loaded packages.
type TypeGraph struct {
	// Structs maps TypeID to StructInfo for all exported structs.
	Structs map[TypeID]*StructInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Structs:  make(map[TypeID]*StructInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetStruct returns the StructInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetStruct(id TypeID) *StructInfo {
	return g.Structs[id]
}

// Sorted returns all structs ordered by package path and name.
func (g *TypeGraph) Sorted() []*StructInfo {
	out := make([]*StructInfo, 0, len(g.Structs))
	for _, s := range g.Structs {
		out = append(out, s)
	}

	slices.SortFunc(out, func(a, b *StructInfo) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return out
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Structs []TypeID // Exported structs defined in this package
}
