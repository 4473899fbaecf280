// Package typemap resolves Go value types into MySQL column type descriptors.
//
// The resolver answers "what column type represents this property". Most
// value types have exactly one canonical encoding, looked up in a static
// registry. Strings and byte slices are the exception: their column type
// depends on the declared max length and on whether the column takes part
// in a key or index.
//
// # Resolution order
//
// FindMapping resolves a bare Go type:
//  1. json documents (types implementing primitive.JSONDocument, e.g. column.JSON[T])
//  2. []byte, always the unbounded longblob
//  3. the registry's value type table (exact type identity)
//
// FindCustomMapping resolves an annotated Property:
//  1. enum types are unwrapped to their builtin type
//  2. strings go through the text sizing policy
//  3. byte slices go through the binary sizing policy
//  4. anything else falls back to FindMapping
//
// # Text sizing
//
//	max length          column
//	absent              varchar(255)
//	1 .. 65535          varchar(N)
//	65536 .. 16777215   mediumtext
//	> 16777215          longtext
//	<= 0                ErrInvalidConstraint
//
// # Binary sizing
//
//	row version         TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
//	declared size N     varbinary(N)
//	key or index        varbinary(767)
//	otherwise           longblob
//
// Registry, policies and descriptors are immutable after construction and
// safe for concurrent use.
package typemap
