// Package revision holds the persistence-facing enumerations for grid views.
// These types are versioned with the stored data and must not be shared with
// the presentation entities that cross the UI boundary.
package revision

// Layout is the stored presentation mode of a grid view.
type Layout uint8

const (
	LayoutTable Layout = 0
	LayoutBoard Layout = 1
)

// String returns the stored name of the layout.
func (l Layout) String() string {
	switch l {
	case LayoutTable:
		return "table"
	case LayoutBoard:
		return "board"
	default:
		return "unknown"
	}
}

// IsValid reports whether l is a declared layout.
func (l Layout) IsValid() bool {
	switch l {
	case LayoutTable, LayoutBoard:
		return true
	default:
		return false
	}
}

// FieldType is the stored type of a grid field.
type FieldType uint8

const (
	FieldTypeRichText     FieldType = 0
	FieldTypeNumber       FieldType = 1
	FieldTypeDateTime     FieldType = 2
	FieldTypeSingleSelect FieldType = 3
	FieldTypeMultiSelect  FieldType = 4
	FieldTypeCheckbox     FieldType = 5
	FieldTypeURL          FieldType = 6
)

// IsValid reports whether f is a declared field type.
func (f FieldType) IsValid() bool {
	return f <= FieldTypeURL
}

var fieldTypeNames = [...]string{"rich_text", "number", "date_time", "single_select", "multi_select", "checkbox", "url"}

// String returns the stored name of the field type.
func (f FieldType) String() string {
	if f.IsValid() {
		return fieldTypeNames[f]
	}
	return "unknown"
}
