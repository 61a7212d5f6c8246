/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"github.com/cristianoliveira/gridsettings/cmd"
	"github.com/cristianoliveira/gridsettings/internal/app"
	"github.com/spf13/cobra"
)

const validateCommandLong = `Validate a grid setting changeset and print the validated result.

The changeset is read from FILE, or from stdin when FILE is omitted or "-".
Files ending in .json or .toml are decoded in that format.

A rejected changeset exits with status 1 and names the rejected field:
grid_id, insert_filter, delete_filter, insert_group or delete_group.

USAGE:
    gridsettings validate [FILE|-] [OPTIONS]

OPTIONS:
    --format FORMAT  Output format: json or table
    --input FORMAT   Stdin document format: json or toml
    -h, --help       Show this help

EXAMPLES:
    # Validate a changeset file
    gridsettings validate changeset.json

    # Validate a TOML changeset from stdin and print a table
    cat changeset.toml | gridsettings validate --input toml --format table`

// NewValidateCmd creates the validate command with explicit dependencies.
func NewValidateCmd(client app.SettingsClient) *cobra.Command {
	if client == nil {
		panic("NewValidateCmd: client dependency cannot be nil")
	}

	var flags documentFlags
	validateCmd := &cobra.Command{
		Use:   "validate [FILE|-]",
		Short: "Validate a grid setting changeset",
		Long:  validateCommandLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, closeInput, err := openDocument(cmd, args, flags)
			if err != nil {
				return err
			}
			defer closeInput()

			_, err = app.NewSettingsUseCase(client).Validate(input)
			return err
		},
	}
	flags.register(validateCmd)

	return validateCmd
}

// validateCmd represents the validate command
var validateCmd = NewValidateCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(validateCmd)
}
