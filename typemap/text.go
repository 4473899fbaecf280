package typemap

import (
	"strconv"

	"mysql-typemap/utils"
)

// Length prefix limits of the MySQL storage format.
const (
	maxVarcharLength    = 65535    // 2 byte length prefix
	maxMediumTextLength = 16777215 // 3 byte length prefix
)

// TextPolicy picks the column type for strings from the declared max length.
type TextPolicy struct {
	defaultLength int
	medium        *Mapping
	long          *Mapping
}

// NewTextPolicy creates a policy that uses defaultLength when no max length
// is declared.
func NewTextPolicy(defaultLength int, medium, long *Mapping) *TextPolicy {
	return &TextPolicy{
		defaultLength: defaultLength,
		medium:        medium,
		long:          long,
	}
}

// Resolve returns varchar(N), mediumtext or longtext. A max length that is
// not positive fails with ErrInvalidConstraint.
func (p *TextPolicy) Resolve(declaredMax *int) (*Mapping, error) {
	maxLength := p.defaultLength
	if declaredMax != nil {
		maxLength = *declaredMax
	}

	switch {
	case !utils.IsPositive(maxLength):
		return nil, &ConstraintError{Kind: "string", Value: maxLength}
	case utils.IsInRange(1, maxLength, maxVarcharLength):
		return NewMapping("varchar("+itoa(maxLength)+")", DbTypeAnsiString,
			WithUnicode(false), WithSize(maxLength)), nil
	case maxLength <= maxMediumTextLength:
		return p.medium, nil
	default:
		return p.long, nil
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
