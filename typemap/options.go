package typemap

import "fmt"

const (
	// DefaultInlineSizeCeiling is the largest byte length MySQL keeps inline.
	DefaultInlineSizeCeiling = 8000
	// DefaultTextLength is the varchar length used when none is declared.
	DefaultTextLength = 255
)

// Options configure a resolver. They are fixed at construction.
type Options struct {
	InlineSizeCeiling int `yaml:"inline_size_ceiling"`
	DefaultTextLength int `yaml:"default_text_length"`
}

// DefaultOptions returns the stock MySQL settings.
func DefaultOptions() Options {
	return Options{
		InlineSizeCeiling: DefaultInlineSizeCeiling,
		DefaultTextLength: DefaultTextLength,
	}
}

// withDefaults fills zero fields with their defaults.
func (o Options) withDefaults() Options {
	if o.InlineSizeCeiling == 0 {
		o.InlineSizeCeiling = DefaultInlineSizeCeiling
	}

	if o.DefaultTextLength == 0 {
		o.DefaultTextLength = DefaultTextLength
	}

	return o
}

// Validate rejects negative settings and a default text length that does not
// fit a varchar. Zero means "use the default".
func (o Options) Validate() error {
	if o.InlineSizeCeiling < 0 {
		return fmt.Errorf("inline size ceiling must not be negative: %d", o.InlineSizeCeiling)
	}

	if o.DefaultTextLength < 0 {
		return fmt.Errorf("default text length must not be negative: %d", o.DefaultTextLength)
	}

	if o.DefaultTextLength > maxVarcharLength {
		return fmt.Errorf("default text length must not exceed %d: %d", maxVarcharLength, o.DefaultTextLength)
	}

	return nil
}
