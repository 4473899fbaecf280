// Package diagnostic collects problems found while resolving struct fields
// to column types.
//
// A field without a column type is not a failure of the resolver itself;
// it is reported here so the caller can show every problem at once.
package diagnostic
