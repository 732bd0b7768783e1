package cli

import (
	"github.com/specialistvlad/flowgraph/internal/app"
	"github.com/specialistvlad/flowgraph/internal/config"
	"github.com/specialistvlad/flowgraph/internal/fsutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	maxDepth   int
}

func (o *globalOptions) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "Path to an HCL settings file (default "+config.DefaultFile+" if present).")
	flags.StringVar(&o.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&o.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.IntVar(&o.maxDepth, "max-depth", 0, "Deepest allowed nesting of tasks (0 keeps the configured limit).")
}

// resolve layers explicitly set flags over the settings file over the
// defaults.
func (o *globalOptions) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.Context(), o.configPath)
	if err != nil {
		return nil, usageError(err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("max-depth") && o.maxDepth != 0 {
		cfg.MaxDepth = o.maxDepth
	}

	if err := cfg.Validate(); err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

// inputOptions select where the program comes from.
type inputOptions struct {
	inline string
	file   string
	dir    string
}

func (o *inputOptions) register(cmd *cobra.Command, withDir bool) {
	flags := cmd.Flags()
	flags.StringVarP(&o.inline, "input", "i", "", "Program text, e.g. '$a,{b,c},d$'.")
	flags.StringVarP(&o.file, "file", "f", "", "Path to a file containing the program.")
	sources := []string{"input", "file"}
	if withDir {
		flags.StringVarP(&o.dir, "dir", "d", "", "Check every *"+fsutil.ProgramExt+" file below this directory.")
		sources = append(sources, "dir")
	}
	cmd.MarkFlagsMutuallyExclusive(sources...)
	cmd.MarkFlagsOneRequired(sources...)
}

func (o *inputOptions) read() (app.Input, error) {
	in, err := app.ReadInput(o.inline, o.file)
	if err != nil {
		return app.Input{}, runApp(err)
	}
	return in, nil
}

// changedString returns the flag's value when it was set explicitly.
func changedString(flags *pflag.FlagSet, name, fallback string) string {
	if !flags.Changed(name) {
		return fallback
	}
	v, err := flags.GetString(name)
	if err != nil {
		return fallback
	}
	return v
}
