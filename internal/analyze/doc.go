// Package analyze loads Go packages and extracts the structs whose fields
// become table columns.
//
// It uses golang.org/x/tools/go/packages with go/types to read exported
// struct types without compiling or running them, and converts field types
// to reflect.Type so they can be fed to the typemap resolver.
//
// Key types:
//   - TypeID: package import path + type name
//   - StructInfo: an exported struct and its column fields
//   - FieldInfo: field name, go/types type, tag and parsed column constraints
package analyze
