package filter

import "github.com/cristianoliveira/gridsettings/internal/field"

// Text conditions, also used by URL fields.
const (
	TextIs uint32 = iota
	TextIsNot
	TextContains
	TextDoesNotContain
	TextStartsWith
	TextEndsWith
	TextIsEmpty
	TextIsNotEmpty
)

// Number conditions.
const (
	NumberEqual uint32 = iota
	NumberNotEqual
	NumberGreaterThan
	NumberLessThan
	NumberGreaterThanOrEqualTo
	NumberLessThanOrEqualTo
	NumberIsEmpty
	NumberIsNotEmpty
)

// Date conditions.
const (
	DateIs uint32 = iota
	DateBefore
	DateAfter
	DateOnOrBefore
	DateOnOrAfter
	DateWithIn
	DateIsEmpty
	DateIsNotEmpty
)

// Select option conditions, shared by single and multi select fields.
const (
	OptionIs uint32 = iota
	OptionIsNot
	OptionIsEmpty
	OptionIsNotEmpty
)

// Checkbox conditions.
const (
	CheckboxIsChecked uint32 = iota
	CheckboxIsUnchecked
)

// IsValidCondition reports whether condition is declared for the field type.
func IsValidCondition(ft field.FieldType, condition uint32) bool {
	switch ft {
	case field.RichText, field.URL:
		return condition <= TextIsNotEmpty
	case field.Number:
		return condition <= NumberIsNotEmpty
	case field.DateTime:
		return condition <= DateIsNotEmpty
	case field.SingleSelect, field.MultiSelect:
		return condition <= OptionIsNotEmpty
	case field.Checkbox:
		return condition <= CheckboxIsUnchecked
	default:
		return false
	}
}
