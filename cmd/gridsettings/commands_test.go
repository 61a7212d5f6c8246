package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cristianoliveira/gridsettings/cmd"
	"github.com/cristianoliveira/gridsettings/internal/core"
	"github.com/cristianoliveira/gridsettings/internal/setting"
	"github.com/cristianoliveira/gridsettings/internal/version"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, c *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	c.SetArgs(args)
	c.SilenceUsage = true
	c.SilenceErrors = true
	err := c.Execute()
	return out.String(), err
}

func TestCommandConstructorsPanicOnNilClient(t *testing.T) {
	assert.Panics(t, func() { NewLayoutsCmd(nil) })
	assert.Panics(t, func() { NewValidateCmd(nil) })
	assert.Panics(t, func() { NewSnapshotCmd(nil) })
	assert.Panics(t, func() { NewVersionCmd(nil) })
}

func TestLayoutsCmd(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, err := runCommand(t, NewLayoutsCmd(core.NewCore()), "")
		require.NoError(t, err)

		var got []setting.GridLayoutEntity
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, setting.AllGridLayouts(), got)
	})

	t.Run("table", func(t *testing.T) {
		out, err := runCommand(t, NewLayoutsCmd(core.NewCore()), "", "--format", "table")
		require.NoError(t, err)
		assert.Contains(t, out, "LAYOUT")
		assert.Contains(t, out, "table")
		assert.Contains(t, out, "board")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := runCommand(t, NewLayoutsCmd(core.NewCore()), "", "--format", "yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported output format")
	})
}

func TestValidateCmd(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr string
		wantOut []string
	}{
		{
			name:    "valid json from stdin",
			stdin:   `{"grid_id":"g1","layout_type":"board","insert_group":{"field_id":"f1","field_type":"single_select"}}`,
			wantOut: []string{`"grid_id": "g1"`, `"layout": "board"`, `"group_changed": true`},
		},
		{
			name:    "valid toml from stdin",
			stdin:   "grid_id = \"g1\"\nlayout_type = \"table\"\n",
			args:    []string{"--input", "toml", "--format", "table"},
			wantOut: []string{"grid_id", "g1", "filter_changed"},
		},
		{
			name:    "rejected grid id",
			stdin:   `{"grid_id":""}`,
			wantErr: "changeset rejected: invalid grid_id",
		},
		{
			name:    "rejected insert filter",
			stdin:   `{"grid_id":"g1","insert_filter":{"field_id":"","field_type":"number"}}`,
			wantErr: "invalid insert_filter",
		},
		{
			name:    "unknown input format",
			stdin:   `{}`,
			args:    []string{"--input", "yaml"},
			wantErr: "unsupported input format",
		},
		{
			name:    "empty document",
			stdin:   "",
			wantErr: "empty document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCommand(t, NewValidateCmd(core.NewCore()), tt.stdin, tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.wantOut {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestValidateCmdReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "changeset.toml")
	doc := `
grid_id = "g1"
layout_type = "board"

[delete_filter]
field_id = "f1"
field_type = "checkbox"
filter_id = "flt1"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, err := runCommand(t, NewValidateCmd(core.NewCore()), "", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"filter_changed": true`)
	assert.Contains(t, out, `"filter_id": "flt1"`)
}

func TestSnapshotCmd(t *testing.T) {
	doc := `{"layout_type":"board","group_configurations":{"items":[{"id":"grp1","field_id":"f1","field_type":"checkbox"}]}}`

	out, err := runCommand(t, NewSnapshotCmd(core.NewCore()), doc, "--format", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "grp1")
	assert.Contains(t, out, "active")
}

func TestVersionCmd(t *testing.T) {
	origVersion := version.Version
	origCommit := version.Commit
	defer func() {
		version.Version = origVersion
		version.Commit = origCommit
	}()

	tests := []struct {
		name     string
		ver      string
		commit   string
		expected string
	}{
		{
			name:     "development version without commit",
			ver:      "development",
			commit:   "unknown",
			expected: "gridsettings version development\n",
		},
		{
			name:     "release version with commit",
			ver:      "1.0.0",
			commit:   "abc1234",
			expected: "gridsettings version 1.0.0+abc1234\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			version.Version = tt.ver
			version.Commit = tt.commit
			out, err := runCommand(t, NewVersionCmd(core.NewCore()), "")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRootRegistersCommands(t *testing.T) {
	names := make([]string, 0, len(cmd.RootCmd.Commands()))
	for _, c := range cmd.RootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"layouts", "validate", "snapshot", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootValidateRejectionFails(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("GRIDSETTINGS_LOGGING_ENABLED", "false")

	var out bytes.Buffer
	cmd.RootCmd.SetOut(&out)
	cmd.RootCmd.SetErr(&out)
	cmd.RootCmd.SetIn(strings.NewReader(`{"grid_id":"g1","delete_group":{"field_id":"f1","field_type":"checkbox"}}`))
	cmd.RootCmd.SetArgs([]string{"validate"})
	defer cmd.RootCmd.SetArgs([]string{})

	err := cmd.RootCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, setting.InvalidDeleteGroupPayload, setting.KindOf(err))
	assert.Empty(t, out.String())
}
