package typemap

import "mysql-typemap/utils"

// BinaryPolicy picks the column type for byte slices from the declared size
// and from how the column is used.
type BinaryPolicy struct {
	ceiling    int
	unbounded  *Mapping
	def        *Mapping
	keyDefault *Mapping
	rowVersion *Mapping
	sized      func(size int) *Mapping
}

// NewBinaryPolicy creates a policy. sized builds the descriptor for an
// explicitly declared size.
func NewBinaryPolicy(
	ceiling int,
	unbounded, def, keyDefault, rowVersion *Mapping,
	sized func(size int) *Mapping,
) *BinaryPolicy {
	return &BinaryPolicy{
		ceiling:    ceiling,
		unbounded:  unbounded,
		def:        def,
		keyDefault: keyDefault,
		rowVersion: rowVersion,
		sized:      sized,
	}
}

// Ceiling returns the largest size MySQL keeps inline.
func (p *BinaryPolicy) Ceiling() int { return p.ceiling }

// Default returns the descriptor for an ordinary binary column.
func (p *BinaryPolicy) Default() *Mapping { return p.def }

// Resolve returns, in order of precedence: the row version marker, the
// sized descriptor for a declared size (the ceiling is not applied), the
// key/index default, or the unbounded descriptor.
func (p *BinaryPolicy) Resolve(isRowVersion, isKeyOrIndex bool, declaredSize *int) (*Mapping, error) {
	switch {
	case isRowVersion:
		return p.rowVersion, nil
	case declaredSize != nil:
		if !utils.IsPositive(*declaredSize) {
			return nil, &ConstraintError{Kind: "binary", Value: *declaredSize}
		}
		return p.sized(*declaredSize), nil
	case isKeyOrIndex:
		return p.keyDefault, nil
	default:
		return p.unbounded, nil
	}
}

// varbinary builds the descriptor for an explicitly sized binary column.
func varbinary(size int) *Mapping {
	return NewMapping("varbinary("+itoa(size)+")", DbTypeBinary,
		WithUnicode(false), WithSize(size), WithNonDefaultSize())
}
