package app

import (
	"fmt"
	"io"

	"github.com/cristianoliveira/gridsettings/internal/codec"
	"github.com/cristianoliveira/gridsettings/internal/format"
	"github.com/cristianoliveira/gridsettings/internal/logging"
	"github.com/cristianoliveira/gridsettings/internal/setting"
)

// SettingsClient defines dependencies required by grid setting commands.
type SettingsClient interface {
	Layouts() []setting.GridLayoutEntity
	ReadChangeset(r io.Reader, format codec.Format) (setting.SettingChangeset, error)
	ValidateChangeset(changeset setting.SettingChangeset) (setting.SettingChangesetParams, error)
	ReadSnapshot(r io.Reader, format codec.Format) (setting.GridSetting, error)
}

// SettingsUseCase coordinates grid setting command behavior.
type SettingsUseCase struct {
	client SettingsClient
}

// NewSettingsUseCase creates a settings use-case.
func NewSettingsUseCase(client SettingsClient) *SettingsUseCase {
	if client == nil {
		panic("NewSettingsUseCase: client dependency cannot be nil")
	}

	return &SettingsUseCase{client: client}
}

// OutputOptions selects how results are written.
type OutputOptions struct {
	Format format.FormatterType
	Writer io.Writer
}

// DocumentInput is a document to decode plus where to write the result.
type DocumentInput struct {
	Reader io.Reader
	Format codec.Format
	Output OutputOptions
}

// Layouts writes every layout a grid view can take.
func (u *SettingsUseCase) Layouts(out OutputOptions) error {
	layouts := u.client.Layouts()
	logging.Debug("listing layouts", "count", len(layouts))

	if err := format.NewFormatter(out.Format).FormatLayouts(layouts, out.Writer); err != nil {
		return fmt.Errorf("failed to write layouts: %w", err)
	}
	return nil
}

// Validate decodes a changeset, validates it and writes the validated params.
// A rejected changeset is logged with the offending field and returned as an
// error wrapping the *setting.ChangesetError.
func (u *SettingsUseCase) Validate(input DocumentInput) (setting.SettingChangesetParams, error) {
	changeset, err := u.client.ReadChangeset(input.Reader, input.Format)
	if err != nil {
		logging.Warn("changeset unreadable", "format", string(input.Format), "error", err.Error())
		return setting.SettingChangesetParams{}, err
	}

	log := logging.With("grid_id", changeset.GridID, "layout", changeset.LayoutType.String())
	params, err := u.client.ValidateChangeset(changeset)
	if err != nil {
		if kind := setting.KindOf(err); kind != 0 {
			log.Warn("changeset rejected", "kind", kind.String(), "field", kind.Field(), "error", err.Error())
		} else {
			log.Error("changeset validation failed", "error", err.Error())
		}
		return setting.SettingChangesetParams{}, fmt.Errorf("changeset rejected: %w", err)
	}

	log.Info("changeset accepted",
		"filter_changed", params.IsFilterChanged(),
		"group_changed", params.IsGroupChanged())

	if err := format.NewFormatter(input.Output.Format).FormatParams(params, input.Output.Writer); err != nil {
		return params, fmt.Errorf("failed to write changeset: %w", err)
	}
	return params, nil
}

// Snapshot decodes a stored grid setting and writes its read model.
func (u *SettingsUseCase) Snapshot(input DocumentInput) (setting.GridSetting, error) {
	snapshot, err := u.client.ReadSnapshot(input.Reader, input.Format)
	if err != nil {
		logging.Warn("snapshot unreadable", "format", string(input.Format), "error", err.Error())
		return setting.GridSetting{}, err
	}

	logging.Debug("snapshot loaded",
		"layout", snapshot.LayoutType.String(),
		"filters", snapshot.Filters.Len(),
		"groups", snapshot.GroupConfigurations.Len())

	if err := format.NewFormatter(input.Output.Format).FormatSnapshot(snapshot, input.Output.Writer); err != nil {
		return snapshot, fmt.Errorf("failed to write snapshot: %w", err)
	}
	return snapshot, nil
}
