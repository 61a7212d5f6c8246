// Package codec decodes grid setting documents sent by callers. Documents are
// JSON or TOML; enum fields use their wire names ("board", "single_select").
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cristianoliveira/gridsettings/internal/filter"
	"github.com/cristianoliveira/gridsettings/internal/group"
	"github.com/cristianoliveira/gridsettings/internal/setting"
	"github.com/pelletier/go-toml/v2"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// ParseFormat converts a format name to a Format.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported input format: %s", raw)
	}
}

// FormatFromPath picks the format from the file extension, or returns
// fallback when the extension is not recognized.
func FormatFromPath(path string, fallback Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return fallback
	}
}

// DecodeChangeset reads one changeset document.
func DecodeChangeset(r io.Reader, format Format) (setting.SettingChangeset, error) {
	var changeset setting.SettingChangeset
	if err := decode(r, format, &changeset); err != nil {
		return setting.SettingChangeset{}, fmt.Errorf("failed to decode changeset: %w", err)
	}
	return changeset, nil
}

// snapshotDocument is the stored shape of a grid setting. The advertised
// layouts are not part of it; they are always rebuilt.
type snapshotDocument struct {
	LayoutType          setting.GridLayout               `json:"layout_type" toml:"layout_type"`
	Filters             filter.RepeatedFilter            `json:"filters" toml:"filters"`
	GroupConfigurations group.RepeatedGroupConfiguration `json:"group_configurations" toml:"group_configurations"`
}

// DecodeSnapshot reads a grid setting document and builds its read model.
func DecodeSnapshot(r io.Reader, format Format) (setting.GridSetting, error) {
	var doc snapshotDocument
	if err := decode(r, format, &doc); err != nil {
		return setting.GridSetting{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return setting.NewGridSetting(doc.LayoutType.ToRevision(), doc.Filters, doc.GroupConfigurations), nil
}

func decode(r io.Reader, format Format, v any) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("empty document")
	}
	switch format {
	case FormatJSON:
		return json.Unmarshal(data, v)
	case FormatTOML:
		return toml.Unmarshal(data, v)
	default:
		return fmt.Errorf("unsupported input format: %s", format)
	}
}
