package main

import (
	"fmt"

	"github.com/cristianoliveira/gridsettings/internal/app"
	"github.com/cristianoliveira/gridsettings/internal/codec"
	"github.com/cristianoliveira/gridsettings/internal/config"
	"github.com/cristianoliveira/gridsettings/internal/format"
	"github.com/spf13/cobra"
)

// documentFlags are the flags shared by commands that read a document.
type documentFlags struct {
	output string
	input  string
}

func (f *documentFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.output, "format", "", "Output format: json or table (default from output_format)")
	c.Flags().StringVar(&f.input, "input", "", "Input format for stdin: json or toml (default from input_format)")
}

// outputFormat resolves the output format, falling back to config.
func outputFormat(flag string) (format.FormatterType, error) {
	if flag == "" {
		flag = config.Get("output_format", string(format.FormatterTypeJSON))
	}
	switch t := format.FormatterType(flag); t {
	case format.FormatterTypeJSON, format.FormatterTypeTable:
		return t, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", flag)
	}
}

// inputFormat resolves the stdin document format, falling back to config.
func inputFormat(flag string) (codec.Format, error) {
	if flag == "" {
		flag = config.Get("input_format", string(codec.FormatJSON))
	}
	return codec.ParseFormat(flag)
}

// openDocument opens the optional FILE argument of c, or stdin.
func openDocument(c *cobra.Command, args []string, flags documentFlags) (app.DocumentInput, func() error, error) {
	fallback, err := inputFormat(flags.input)
	if err != nil {
		return app.DocumentInput{}, nil, err
	}
	out, err := outputFormat(flags.output)
	if err != nil {
		return app.DocumentInput{}, nil, err
	}

	path := app.StdinPath
	if len(args) > 0 {
		path = args[0]
	}
	rc, docFormat, err := app.OpenInput(path, c.InOrStdin(), fallback)
	if err != nil {
		return app.DocumentInput{}, nil, err
	}

	return app.DocumentInput{
		Reader: rc,
		Format: docFormat,
		Output: app.OutputOptions{Format: out, Writer: c.OutOrStdout()},
	}, rc.Close, nil
}
