package setting

import (
	"github.com/cristianoliveira/gridsettings/internal/field"
	"github.com/cristianoliveira/gridsettings/internal/filter"
	"github.com/cristianoliveira/gridsettings/internal/group"
	"github.com/cristianoliveira/gridsettings/internal/revision"
)

// SettingChangeset is a request to change the settings of one grid view.
// Each sub-operation is optional and independent of the others.
type SettingChangeset struct {
	GridID       string                      `json:"grid_id" toml:"grid_id"`
	LayoutType   GridLayout                  `json:"layout_type" toml:"layout_type"`
	InsertFilter *filter.AlterFilterPayload  `json:"insert_filter,omitempty" toml:"insert_filter,omitempty"`
	DeleteFilter *filter.DeleteFilterPayload `json:"delete_filter,omitempty" toml:"delete_filter,omitempty"`
	InsertGroup  *group.InsertGroupPayload   `json:"insert_group,omitempty" toml:"insert_group,omitempty"`
	DeleteGroup  *group.DeleteGroupPayload   `json:"delete_group,omitempty" toml:"delete_group,omitempty"`
}

// SettingChangesetParams is a validated SettingChangeset.
type SettingChangesetParams struct {
	GridID       string                     `json:"grid_id"`
	LayoutType   revision.Layout            `json:"layout_type"`
	InsertFilter *filter.AlterFilterParams  `json:"insert_filter,omitempty"`
	DeleteFilter *filter.DeleteFilterParams `json:"delete_filter,omitempty"`
	InsertGroup  *group.InsertGroupParams   `json:"insert_group,omitempty"`
	DeleteGroup  *group.DeleteGroupParams   `json:"delete_group,omitempty"`
}

// IsFilterChanged reports whether the changeset inserts or deletes a filter.
func (p SettingChangesetParams) IsFilterChanged() bool {
	return p.InsertFilter != nil || p.DeleteFilter != nil
}

// IsGroupChanged reports whether the changeset inserts or deletes a group.
func (p SettingChangesetParams) IsGroupChanged() bool {
	return p.InsertGroup != nil || p.DeleteGroup != nil
}

// ToParams validates the changeset. Fields are checked in the order grid id,
// insert filter, delete filter, insert group, delete group, and the first
// failure is returned as a *ChangesetError.
func (c SettingChangeset) ToParams() (SettingChangesetParams, error) {
	viewID, err := field.ParseNotEmptyStr(c.GridID)
	if err != nil {
		return SettingChangesetParams{}, &ChangesetError{Kind: InvalidIdentifier, Err: ErrViewIDInvalid}
	}

	params := SettingChangesetParams{GridID: viewID.String()}

	if c.InsertFilter != nil {
		p, err := c.InsertFilter.ToParams()
		if err != nil {
			return SettingChangesetParams{}, &ChangesetError{Kind: InvalidInsertFilterPayload, Err: err}
		}
		params.InsertFilter = &p
	}

	if c.DeleteFilter != nil {
		p, err := c.DeleteFilter.ToParams()
		if err != nil {
			return SettingChangesetParams{}, &ChangesetError{Kind: InvalidDeleteFilterPayload, Err: err}
		}
		params.DeleteFilter = &p
	}

	if c.InsertGroup != nil {
		p, err := c.InsertGroup.ToParams()
		if err != nil {
			return SettingChangesetParams{}, &ChangesetError{Kind: InvalidInsertGroupPayload, Err: err}
		}
		params.InsertGroup = &p
	}

	if c.DeleteGroup != nil {
		p, err := c.DeleteGroup.ToParams()
		if err != nil {
			return SettingChangesetParams{}, &ChangesetError{Kind: InvalidDeleteGroupPayload, Err: err}
		}
		params.DeleteGroup = &p
	}

	params.LayoutType = c.LayoutType.ToRevision()
	return params, nil
}

// Validate is shorthand for c.ToParams().
func Validate(c SettingChangeset) (SettingChangesetParams, error) {
	return c.ToParams()
}
