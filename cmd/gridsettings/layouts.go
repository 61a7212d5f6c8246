/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package main

import (
	"github.com/cristianoliveira/gridsettings/cmd"
	"github.com/cristianoliveira/gridsettings/internal/app"
	"github.com/spf13/cobra"
)

const layoutsCommandLong = `List every layout a grid view can take.

USAGE:
    gridsettings layouts [OPTIONS]

OPTIONS:
    --format FORMAT  Output format: json or table
    -h, --help       Show this help

EXAMPLES:
    # List layouts as JSON
    gridsettings layouts

    # List layouts as a table
    gridsettings layouts --format table`

// NewLayoutsCmd creates the layouts command with explicit dependencies.
func NewLayoutsCmd(client app.SettingsClient) *cobra.Command {
	if client == nil {
		panic("NewLayoutsCmd: client dependency cannot be nil")
	}

	var output string
	layoutsCmd := &cobra.Command{
		Use:   "layouts",
		Short: "List grid layouts",
		Long:  layoutsCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := outputFormat(output)
			if err != nil {
				return err
			}
			return app.NewSettingsUseCase(client).Layouts(app.OutputOptions{Format: out, Writer: cmd.OutOrStdout()})
		},
	}
	layoutsCmd.Flags().StringVar(&output, "format", "", "Output format: json or table (default from output_format)")

	return layoutsCmd
}

// layoutsCmd represents the layouts command
var layoutsCmd = NewLayoutsCmd(coreClient)

func init() {
	cmd.RootCmd.AddCommand(layoutsCmd)
}
