package analyze

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnTag holds the constraints parsed from a column struct tag:
//
//	`mysql:"name,maxlen=100,key,index,rowversion"`
//
// The first element is the column name and may be empty. A tag of "-"
// excludes the field.
type ColumnTag struct {
	Name       string
	Skip       bool
	MaxLength  *int
	Key        bool
	Index      bool
	RowVersion bool
}

// ParseColumnTag parses the value of a column struct tag.
func ParseColumnTag(tag string) (ColumnTag, error) {
	var ct ColumnTag

	if tag == "-" {
		ct.Skip = true
		return ct, nil
	}

	if tag == "" {
		return ct, nil
	}

	parts := strings.Split(tag, ",")
	ct.Name = strings.TrimSpace(parts[0])

	for _, opt := range parts[1:] {
		key, value, hasValue := strings.Cut(strings.TrimSpace(opt), "=")

		switch key {
		case "":
			continue
		case "key":
			ct.Key = true
		case "index":
			ct.Index = true
		case "rowversion":
			ct.RowVersion = true
		case "maxlen", "size":
			if !hasValue {
				return ColumnTag{}, fmt.Errorf("option %q requires a value", key)
			}

			n, err := strconv.Atoi(value)
			if err != nil {
				return ColumnTag{}, fmt.Errorf("invalid %s %q: %w", key, value, err)
			}
			ct.MaxLength = &n
		default:
			return ColumnTag{}, fmt.Errorf("unknown column option %q", key)
		}
	}

	return ct, nil
}
