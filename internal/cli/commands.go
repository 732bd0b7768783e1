package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/specialistvlad/flowgraph/internal/app"
	"github.com/specialistvlad/flowgraph/internal/export"
	"github.com/spf13/cobra"
)

// setup resolves configuration and builds the app for a subcommand.
func setup(cmd *cobra.Command, global *globalOptions) (*app.App, error) {
	cfg, err := global.resolve(cmd)
	if err != nil {
		return nil, err
	}
	return app.NewApp(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg), nil
}

func newCheckCommand(global *globalOptions) *cobra.Command {
	input := &inputOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a program and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, global)
			if err != nil {
				return err
			}
			if input.dir != "" {
				return runApp(a.CheckDir(cmd.Context(), input.dir))
			}
			in, err := input.read()
			if err != nil {
				return err
			}
			return runApp(a.Check(cmd.Context(), in))
		},
	}
	input.register(cmd, true)
	return cmd
}

func newGraphCommand(global *globalOptions) *cobra.Command {
	input := &inputOptions{}
	var output string
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Validate a program and write its dependency graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, global)
			if err != nil {
				return err
			}
			name := changedString(cmd.Flags(), "format", a.Config().Output.Format)
			format, err := export.ParseFormat(name)
			if err != nil {
				return usageError(err)
			}
			in, err := input.read()
			if err != nil {
				return err
			}

			if output == "" {
				return runApp(a.Graph(cmd.Context(), in, format, nil))
			}
			// The file is only written once the graph is known to be valid.
			var buf bytes.Buffer
			if err := a.Graph(cmd.Context(), in, format, &buf); err != nil {
				return runApp(err)
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return runApp(fmt.Errorf("failed to write output file: %w", err))
			}
			return nil
		},
	}
	input.register(cmd, false)
	cmd.Flags().String("format", export.JSON.String(), "Output format. Options: 'json', 'dot', 'edges'.")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the graph to this file instead of stdout.")
	return cmd
}

func newFmtCommand(global *globalOptions) *cobra.Command {
	input := &inputOptions{}
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Print a program in canonical form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, global)
			if err != nil {
				return err
			}
			in, err := input.read()
			if err != nil {
				return err
			}
			return runApp(a.Fmt(cmd.Context(), in))
		},
	}
	input.register(cmd, false)
	return cmd
}
