/*
Copyright © 2026 Cristian Oliveira <license@cristianoliveira.dev>
*/
package cmd

import (
	"github.com/cristianoliveira/gridsettings/internal/colors"
	"github.com/cristianoliveira/gridsettings/internal/config"
	clierrors "github.com/cristianoliveira/gridsettings/internal/errors"
	"github.com/cristianoliveira/gridsettings/internal/logging"
	"github.com/cristianoliveira/gridsettings/internal/version"
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gridsettings",
	Short: "Validate grid view setting changes.",
	Long: `Validate grid view setting changes.

gridsettings checks changeset documents against the rules of a grid view
(layout, filters and grouping) and prints the validated result.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		colors.SetDebug(config.GetBool("debug", false))
		return logging.InitGlobal()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return logging.ShutdownGlobal()
	},
}

// Execute runs the root command. Errors are printed before being returned.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	err := RootCmd.Execute()
	if err != nil {
		clierrors.NewDefaultCLIHandler().Handle(err)
		_ = logging.ShutdownGlobal()
	}
	return err
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
}
