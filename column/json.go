// Package column holds value types that map onto dedicated MySQL column types.
package column

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"mysql-typemap/primitive"
)

// JSON stores V as a json document column.
type JSON[V any] struct {
	Val V
}

var (
	_ primitive.JSONDocument = JSON[any]{}
	_ sql.Scanner            = (*JSON[any])(nil)
	_ driver.Valuer          = JSON[any]{}
)

// NewJSON wraps v.
func NewJSON[V any](v V) JSON[V] {
	return JSON[V]{Val: v}
}

// JSONDocument marks the type as a json column.
func (JSON[V]) JSONDocument() {}

// Value implements driver.Valuer.
func (j JSON[V]) Value() (driver.Value, error) {
	data, err := json.Marshal(j.Val)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json column: %w", err)
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (j *JSON[V]) Scan(src any) error {
	var data []byte

	switch v := src.(type) {
	case nil:
		var zero V
		j.Val = zero
		return nil
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("unsupported json column source %T", src)
	}

	if err := json.Unmarshal(data, &j.Val); err != nil {
		return fmt.Errorf("failed to unmarshal json column: %w", err)
	}

	return nil
}

// MarshalJSON encodes the wrapped value.
func (j JSON[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(j.Val)
}

// UnmarshalJSON decodes into the wrapped value.
func (j *JSON[V]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &j.Val)
}
