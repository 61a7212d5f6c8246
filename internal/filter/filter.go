// Package filter provides the filter entities of a grid view and the
// conversion of filter request payloads into validated parameters.
package filter

import (
	"errors"

	"github.com/cristianoliveira/gridsettings/internal/field"
	"github.com/cristianoliveira/gridsettings/internal/revision"
)

var (
	ErrFieldIDIsEmpty   = errors.New("field id is empty")
	ErrFilterIDIsEmpty  = errors.New("filter id is empty")
	ErrInvalidFieldType = errors.New("field type is not supported")
	ErrInvalidCondition = errors.New("filter condition is not valid for field type")
)

// Filter is a filter currently applied to a grid view.
type Filter struct {
	ID        string          `json:"id" toml:"id"`
	FieldID   string          `json:"field_id" toml:"field_id"`
	FieldType field.FieldType `json:"field_type" toml:"field_type"`
	Condition uint32          `json:"condition" toml:"condition"`
	Content   string          `json:"content" toml:"content"`
}

// RepeatedFilter is the set of filters of a grid view.
type RepeatedFilter struct {
	Items []Filter `json:"items" toml:"items"`
}

// Len returns the number of filters.
func (r RepeatedFilter) Len() int {
	return len(r.Items)
}

// AlterFilterPayload creates a filter, or updates it when FilterID is set.
type AlterFilterPayload struct {
	FieldID   string          `json:"field_id" toml:"field_id"`
	FieldType field.FieldType `json:"field_type" toml:"field_type"`
	FilterID  *string         `json:"filter_id,omitempty" toml:"filter_id,omitempty"`
	Condition uint32          `json:"condition" toml:"condition"`
	Content   string          `json:"content" toml:"content"`
}

// AlterFilterParams is the validated form of AlterFilterPayload.
type AlterFilterParams struct {
	FieldID   string             `json:"field_id"`
	FilterID  *string            `json:"filter_id,omitempty"`
	FieldType revision.FieldType `json:"field_type"`
	Condition uint8              `json:"condition"`
	Content   string             `json:"content"`
}

// ToParams validates the payload.
func (p AlterFilterPayload) ToParams() (AlterFilterParams, error) {
	fieldID, err := field.ParseNotEmptyStr(p.FieldID)
	if err != nil {
		return AlterFilterParams{}, ErrFieldIDIsEmpty
	}

	var filterID *string
	if p.FilterID != nil {
		id, err := field.ParseNotEmptyStr(*p.FilterID)
		if err != nil {
			return AlterFilterParams{}, ErrFilterIDIsEmpty
		}
		s := id.String()
		filterID = &s
	}

	if !p.FieldType.IsValid() {
		return AlterFilterParams{}, ErrInvalidFieldType
	}
	if !IsValidCondition(p.FieldType, p.Condition) {
		return AlterFilterParams{}, ErrInvalidCondition
	}

	return AlterFilterParams{
		FieldID:   fieldID.String(),
		FilterID:  filterID,
		FieldType: p.FieldType.ToRevision(),
		Condition: uint8(p.Condition),
		Content:   p.Content,
	}, nil
}

// IsNew reports whether the params create a filter rather than update one.
func (p AlterFilterParams) IsNew() bool {
	return p.FilterID == nil
}

// DeleteFilterPayload removes a filter from a grid view.
type DeleteFilterPayload struct {
	FieldID   string          `json:"field_id" toml:"field_id"`
	FieldType field.FieldType `json:"field_type" toml:"field_type"`
	FilterID  string          `json:"filter_id" toml:"filter_id"`
}

// DeleteFilterParams is the validated form of DeleteFilterPayload.
type DeleteFilterParams struct {
	FieldID   string             `json:"field_id"`
	FilterID  string             `json:"filter_id"`
	FieldType revision.FieldType `json:"field_type"`
}

// ToParams validates the payload.
func (p DeleteFilterPayload) ToParams() (DeleteFilterParams, error) {
	fieldID, err := field.ParseNotEmptyStr(p.FieldID)
	if err != nil {
		return DeleteFilterParams{}, ErrFieldIDIsEmpty
	}
	filterID, err := field.ParseNotEmptyStr(p.FilterID)
	if err != nil {
		return DeleteFilterParams{}, ErrFilterIDIsEmpty
	}
	if !p.FieldType.IsValid() {
		return DeleteFilterParams{}, ErrInvalidFieldType
	}
	return DeleteFilterParams{
		FieldID:   fieldID.String(),
		FilterID:  filterID.String(),
		FieldType: p.FieldType.ToRevision(),
	}, nil
}
