package primitive

import "strings"

// Family groups kinds by semantic category. Values are bit flags so callers can
// test membership in several families at once.
type Family int

const (
	FamilyBoolean    Family = 1 << iota // bool
	FamilyInteger                       // signed and unsigned integers of any width
	FamilyFloat                         // float32, float64
	FamilyDecimal                       // fixed point decimals
	FamilyText                          // string
	FamilyBinary                        // byte sequences
	FamilyTemporal                      // dates, times, durations
	FamilyStructured                    // json documents
	FamilyIdentifier                    // uuids

	FamilyAll  Family = (1 << iota) - 1 // all families combined
	FamilyNone Family = 0               // no family selected
)

var familyNames = []struct {
	family Family
	name   string
}{
	{FamilyBoolean, "boolean"},
	{FamilyInteger, "integer"},
	{FamilyFloat, "float"},
	{FamilyDecimal, "decimal"},
	{FamilyText, "text"},
	{FamilyBinary, "binary"},
	{FamilyTemporal, "temporal"},
	{FamilyStructured, "structured"},
	{FamilyIdentifier, "identifier"},
}

// Has reports whether f shares at least one family with other.
func (f Family) Has(other Family) bool {
	return f&other != 0
}

func (f Family) String() string {
	if f == FamilyNone {
		return "none"
	}

	var parts []string
	for _, fn := range familyNames {
		if f.Has(fn.family) {
			parts = append(parts, fn.name)
		}
	}

	return strings.Join(parts, "|")
}

// Family returns the semantic category of the kind. KindPrimitiveEnum has no
// family of its own; unwrap it first.
func (k KindEnum) Family() Family {
	switch {
	case k == KindBool:
		return FamilyBoolean
	case k.IsInteger():
		return FamilyInteger
	case k.IsFloat():
		return FamilyFloat
	case k == KindDecimal:
		return FamilyDecimal
	case k == KindString:
		return FamilyText
	case k == KindBytes:
		return FamilyBinary
	case k == KindTime, k == KindDuration, k == KindDate, k == KindDateTime, k == KindTimeOfDay:
		return FamilyTemporal
	case k == KindJSON:
		return FamilyStructured
	case k == KindUUID:
		return FamilyIdentifier
	default:
		return FamilyNone
	}
}
