// Package utils holds small generic predicates shared by the sizing policies.
package utils

import "cmp"

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange reports whether lo <= value <= hi.
func IsInRange[T cmp.Ordered](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// IsPositive reports whether value is greater than zero.
func IsPositive[T number](value T) bool {
	return value > 0
}
