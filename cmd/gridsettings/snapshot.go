/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"github.com/cristianoliveira/gridsettings/cmd"
	"github.com/cristianoliveira/gridsettings/internal/app"
	"github.com/spf13/cobra"
)

const snapshotCommandLong = `Print the settings of a grid view from a stored document.

The document holds layout_type, filters and group_configurations. The
layouts the view can switch to are always listed in full.

USAGE:
    gridsettings snapshot [FILE|-] [OPTIONS]

OPTIONS:
    --format FORMAT  Output format: json or table
    --input FORMAT   Stdin document format: json or toml
    -h, --help       Show this help

EXAMPLES:
    # Show a stored grid setting as a table
    gridsettings snapshot grid.toml --format table`

// NewSnapshotCmd creates the snapshot command with explicit dependencies.
func NewSnapshotCmd(client app.SettingsClient) *cobra.Command {
	if client == nil {
		panic("NewSnapshotCmd: client dependency cannot be nil")
	}

	var flags documentFlags
	snapshotCmd := &cobra.Command{
		Use:   "snapshot [FILE|-]",
		Short: "Show the settings of a grid view",
		Long:  snapshotCommandLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, closeInput, err := openDocument(cmd, args, flags)
			if err != nil {
				return err
			}
			defer closeInput()

			_, err = app.NewSettingsUseCase(client).Snapshot(input)
			return err
		},
	}
	flags.register(snapshotCmd)

	return snapshotCmd
}

// snapshotCmd represents the snapshot command
var snapshotCmd = NewSnapshotCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(snapshotCmd)
}
