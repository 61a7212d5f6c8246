// Package field provides the field entities shared by the filter and group
// payloads, and the string parsers used to validate their identifiers.
package field

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/gridsettings/internal/revision"
)

// FieldType identifies the kind of data a grid field holds.
type FieldType int32

const (
	RichText     FieldType = 0
	Number       FieldType = 1
	DateTime     FieldType = 2
	SingleSelect FieldType = 3
	MultiSelect  FieldType = 4
	Checkbox     FieldType = 5
	URL          FieldType = 6
)

var fieldTypeNames = map[FieldType]string{
	RichText:     "rich_text",
	Number:       "number",
	DateTime:     "date_time",
	SingleSelect: "single_select",
	MultiSelect:  "multi_select",
	Checkbox:     "checkbox",
	URL:          "url",
}

// AllFieldTypes returns every field type in declaration order.
func AllFieldTypes() []FieldType {
	return []FieldType{RichText, Number, DateTime, SingleSelect, MultiSelect, Checkbox, URL}
}

// String returns the wire name of the field type.
func (f FieldType) String() string {
	if name, ok := fieldTypeNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field_type(%d)", int32(f))
}

// IsValid reports whether f is a declared field type.
func (f FieldType) IsValid() bool {
	_, ok := fieldTypeNames[f]
	return ok
}

// ParseFieldType converts a wire name to a FieldType.
func ParseFieldType(raw string) (FieldType, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for ft, n := range fieldTypeNames {
		if n == name {
			return ft, nil
		}
	}
	return RichText, fmt.Errorf("invalid field type: %s", raw)
}

// MarshalText implements encoding.TextMarshaler.
func (f FieldType) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("invalid field type: %d", int32(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *FieldType) UnmarshalText(text []byte) error {
	ft, err := ParseFieldType(string(text))
	if err != nil {
		return err
	}
	*f = ft
	return nil
}

// ToRevision maps the field type to its stored form.
func (f FieldType) ToRevision() revision.FieldType {
	switch f {
	case RichText:
		return revision.FieldTypeRichText
	case Number:
		return revision.FieldTypeNumber
	case DateTime:
		return revision.FieldTypeDateTime
	case SingleSelect:
		return revision.FieldTypeSingleSelect
	case MultiSelect:
		return revision.FieldTypeMultiSelect
	case Checkbox:
		return revision.FieldTypeCheckbox
	case URL:
		return revision.FieldTypeURL
	default:
		panic(fmt.Sprintf("unmapped field type: %d", int32(f)))
	}
}

// FieldTypeFromRevision maps a stored field type back to its entity form.
func FieldTypeFromRevision(rev revision.FieldType) FieldType {
	switch rev {
	case revision.FieldTypeRichText:
		return RichText
	case revision.FieldTypeNumber:
		return Number
	case revision.FieldTypeDateTime:
		return DateTime
	case revision.FieldTypeSingleSelect:
		return SingleSelect
	case revision.FieldTypeMultiSelect:
		return MultiSelect
	case revision.FieldTypeCheckbox:
		return Checkbox
	case revision.FieldTypeURL:
		return URL
	default:
		panic(fmt.Sprintf("unmapped field type revision: %d", uint8(rev)))
	}
}
