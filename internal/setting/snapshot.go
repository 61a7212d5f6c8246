package setting

import (
	"github.com/cristianoliveira/gridsettings/internal/filter"
	"github.com/cristianoliveira/gridsettings/internal/group"
	"github.com/cristianoliveira/gridsettings/internal/revision"
)

// GridSetting is the current settings of a grid view as shown to the UI:
// the layouts it can switch to, the active layout, and its filters and
// group configurations.
type GridSetting struct {
	Layouts             []GridLayoutEntity               `json:"layouts" toml:"layouts"`
	LayoutType          GridLayout                       `json:"layout_type" toml:"layout_type"`
	Filters             filter.RepeatedFilter            `json:"filters" toml:"filters"`
	GroupConfigurations group.RepeatedGroupConfiguration `json:"group_configurations" toml:"group_configurations"`
}

// NewGridSetting builds the read model from the stored layout.
func NewGridSetting(layout revision.Layout, filters filter.RepeatedFilter, groups group.RepeatedGroupConfiguration) GridSetting {
	return GridSetting{
		Layouts:             AllGridLayouts(),
		LayoutType:          GridLayoutFromRevision(layout),
		Filters:             filters,
		GroupConfigurations: groups,
	}
}
