// Package core exposes the grid setting operations used by the CLI.
package core

import (
	"io"

	"github.com/cristianoliveira/gridsettings/internal/codec"
	"github.com/cristianoliveira/gridsettings/internal/setting"
	"github.com/cristianoliveira/gridsettings/internal/version"
)

// Core reads grid setting documents and validates changesets.
type Core struct {
	validate func(setting.SettingChangeset) (setting.SettingChangesetParams, error)
}

var defaultCore = NewCore()

// NewCore creates a Core backed by the setting validator.
func NewCore() *Core {
	return &Core{validate: setting.Validate}
}

// Layouts returns every layout a grid view can take.
func (c *Core) Layouts() []setting.GridLayoutEntity {
	return setting.AllGridLayouts()
}

// ReadChangeset decodes one changeset document without validating it.
func (c *Core) ReadChangeset(r io.Reader, format codec.Format) (setting.SettingChangeset, error) {
	return codec.DecodeChangeset(r, format)
}

// ValidateChangeset converts a changeset into validated params.
func (c *Core) ValidateChangeset(changeset setting.SettingChangeset) (setting.SettingChangesetParams, error) {
	return c.validate(changeset)
}

// ReadSnapshot decodes a stored grid setting document.
func (c *Core) ReadSnapshot(r io.Reader, format codec.Format) (setting.GridSetting, error) {
	return codec.DecodeSnapshot(r, format)
}

// Version returns the build version string.
func (c *Core) Version() string {
	return version.String()
}

// Layouts returns every layout using the default Core.
func Layouts() []setting.GridLayoutEntity {
	return defaultCore.Layouts()
}

// ValidateChangeset validates a changeset using the default Core.
func ValidateChangeset(changeset setting.SettingChangeset) (setting.SettingChangesetParams, error) {
	return defaultCore.ValidateChangeset(changeset)
}
