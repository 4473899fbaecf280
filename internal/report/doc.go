// Package report resolves the fields of analyzed structs into MySQL column
// types and renders the result as text or YAML.
package report
