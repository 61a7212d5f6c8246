// Package group provides the group configuration entities of a grid view and
// the conversion of grouping request payloads into validated parameters.
package group

import (
	"errors"

	"github.com/cristianoliveira/gridsettings/internal/field"
	"github.com/cristianoliveira/gridsettings/internal/revision"
)

var (
	ErrFieldIDIsEmpty        = errors.New("field id is empty")
	ErrGroupIDIsEmpty        = errors.New("group id is empty")
	ErrInvalidFieldType      = errors.New("field type is not supported")
	ErrFieldTypeNotGroupable = errors.New("field type can not be grouped")
)

// GroupConfiguration partitions the rows of a grid view by a field.
type GroupConfiguration struct {
	ID        string          `json:"id" toml:"id"`
	FieldID   string          `json:"field_id" toml:"field_id"`
	FieldType field.FieldType `json:"field_type" toml:"field_type"`
}

// RepeatedGroupConfiguration is the set of group configurations of a grid view.
type RepeatedGroupConfiguration struct {
	Items []GroupConfiguration `json:"items" toml:"items"`
}

// Len returns the number of group configurations.
func (r RepeatedGroupConfiguration) Len() int {
	return len(r.Items)
}

// IsGroupable reports whether rows can be grouped by a field of type ft.
func IsGroupable(ft field.FieldType) bool {
	switch ft {
	case field.SingleSelect, field.MultiSelect, field.Checkbox:
		return true
	default:
		return false
	}
}

// InsertGroupPayload groups a grid view by a field.
type InsertGroupPayload struct {
	FieldID   string          `json:"field_id" toml:"field_id"`
	FieldType field.FieldType `json:"field_type" toml:"field_type"`
}

// InsertGroupParams is the validated form of InsertGroupPayload.
type InsertGroupParams struct {
	FieldID   string             `json:"field_id"`
	FieldType revision.FieldType `json:"field_type"`
}

// ToParams validates the payload.
func (p InsertGroupPayload) ToParams() (InsertGroupParams, error) {
	fieldID, err := field.ParseNotEmptyStr(p.FieldID)
	if err != nil {
		return InsertGroupParams{}, ErrFieldIDIsEmpty
	}
	if !p.FieldType.IsValid() {
		return InsertGroupParams{}, ErrInvalidFieldType
	}
	if !IsGroupable(p.FieldType) {
		return InsertGroupParams{}, ErrFieldTypeNotGroupable
	}
	return InsertGroupParams{
		FieldID:   fieldID.String(),
		FieldType: p.FieldType.ToRevision(),
	}, nil
}

// DeleteGroupPayload removes a group configuration from a grid view.
type DeleteGroupPayload struct {
	FieldID   string          `json:"field_id" toml:"field_id"`
	GroupID   string          `json:"group_id" toml:"group_id"`
	FieldType field.FieldType `json:"field_type" toml:"field_type"`
}

// DeleteGroupParams is the validated form of DeleteGroupPayload.
type DeleteGroupParams struct {
	FieldID   string             `json:"field_id"`
	GroupID   string             `json:"group_id"`
	FieldType revision.FieldType `json:"field_type"`
}

// ToParams validates the payload.
func (p DeleteGroupPayload) ToParams() (DeleteGroupParams, error) {
	fieldID, err := field.ParseNotEmptyStr(p.FieldID)
	if err != nil {
		return DeleteGroupParams{}, ErrFieldIDIsEmpty
	}
	groupID, err := field.ParseNotEmptyStr(p.GroupID)
	if err != nil {
		return DeleteGroupParams{}, ErrGroupIDIsEmpty
	}
	if !p.FieldType.IsValid() {
		return DeleteGroupParams{}, ErrInvalidFieldType
	}
	return DeleteGroupParams{
		FieldID:   fieldID.String(),
		GroupID:   groupID.String(),
		FieldType: p.FieldType.ToRevision(),
	}, nil
}
