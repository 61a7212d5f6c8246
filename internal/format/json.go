package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cristianoliveira/gridsettings/internal/setting"
)

// JSONFormatter writes results as indented JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// paramsOutput adds the derived change flags to the validated changeset.
type paramsOutput struct {
	setting.SettingChangesetParams
	Layout        string `json:"layout"`
	FilterChanged bool   `json:"filter_changed"`
	GroupChanged  bool   `json:"group_changed"`
}

func (f *JSONFormatter) FormatLayouts(layouts []setting.GridLayoutEntity, writer io.Writer) error {
	return writeJSON(writer, layouts)
}

func (f *JSONFormatter) FormatParams(params setting.SettingChangesetParams, writer io.Writer) error {
	return writeJSON(writer, paramsOutput{
		SettingChangesetParams: params,
		Layout:                 params.LayoutType.String(),
		FilterChanged:          params.IsFilterChanged(),
		GroupChanged:           params.IsGroupChanged(),
	})
}

func (f *JSONFormatter) FormatSnapshot(snapshot setting.GridSetting, writer io.Writer) error {
	return writeJSON(writer, snapshot)
}

func writeJSON(writer io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
