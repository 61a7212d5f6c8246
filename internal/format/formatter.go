// Package format provides output formatting functionality for CLI commands.
package format

import (
	"io"

	"github.com/cristianoliveira/gridsettings/internal/setting"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// FormatLayouts writes the layouts a grid view can switch to.
	FormatLayouts(layouts []setting.GridLayoutEntity, writer io.Writer) error

	// FormatParams writes a validated changeset.
	FormatParams(params setting.SettingChangesetParams, writer io.Writer) error

	// FormatSnapshot writes the settings read model of a grid view.
	FormatSnapshot(snapshot setting.GridSetting, writer io.Writer) error
}

// FormatterType represents the type of formatter to use.
type FormatterType string

const (
	// FormatterTypeJSON writes indented JSON.
	FormatterTypeJSON FormatterType = "json"

	// FormatterTypeTable writes bordered tables for terminals.
	FormatterTypeTable FormatterType = "table"
)

// NewFormatter creates a new formatter of the specified type.
// Unknown types fall back to JSON.
func NewFormatter(formatterType FormatterType) Formatter {
	switch formatterType {
	case FormatterTypeTable:
		return NewTableFormatter()
	default:
		return NewJSONFormatter()
	}
}
