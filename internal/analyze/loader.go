package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"
	"slices"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and collects their exported structs.
type Analyzer struct {
	graph  *TypeGraph
	tagKey string
	dir    string
}

// NewAnalyzer creates a new Analyzer reading column constraints from the
// given struct tag key.
func NewAnalyzer(tagKey string) *Analyzer {
	return &Analyzer{
		graph:  NewTypeGraph(),
		tagKey: tagKey,
	}
}

// SetDir sets the directory package patterns are resolved in.
func (a *Analyzer) SetDir(dir string) {
	a.dir = dir
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./store", "mysql-typemap/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// processPackage extracts exported structs from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 {
			continue
		}

		st, ok := named.Underlying().(*types.Struct)
		if !ok {
			continue
		}

		// Column wrapper types are values, not tables.
		if _, isColumn := ReflectType(named); isColumn {
			continue
		}

		id := TypeID{PkgPath: pkg.PkgPath, Name: name}
		info := &StructInfo{ID: id}
		a.collectFields(st, "", nil, info, map[*types.Struct]bool{st: true})

		a.graph.Structs[id] = info
		pkgInfo.Structs = append(pkgInfo.Structs, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

// collectFields appends the column fields of st to info. Fields of embedded
// structs are flattened unless the embedded type is itself a column type.
func (a *Analyzer) collectFields(st *types.Struct, prefix string, index []int, info *StructInfo, seen map[*types.Struct]bool) {
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		tag := reflect.StructTag(st.Tag(i))
		path := append(slices.Clone(index), i)

		column, tagErr := ParseColumnTag(tag.Get(a.tagKey))
		if tagErr == nil && column.Skip {
			continue
		}

		if field.Embedded() {
			if est, ok := types.Unalias(field.Type()).Underlying().(*types.Struct); ok && !seen[est] {
				if _, isColumn := ReflectType(field.Type()); !isColumn {
					seen[est] = true
					a.collectFields(est, prefix+field.Name()+".", path, info, seen)
					delete(seen, est)
					continue
				}
			}
		}

		info.Fields = append(info.Fields, FieldInfo{
			Name:   prefix + field.Name(),
			GoType: field.Type(),
			Tag:    tag,
			Column: column,
			TagErr: tagErr,
			Index:  path,
		})
	}
}
