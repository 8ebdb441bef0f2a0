package cli

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/roach88/searchquery/internal/config"
	"github.com/roach88/searchquery/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string
	LogLevel   string
	LogFormat  string

	// Set by prepare.
	Config  *config.Config
	Logger  *slog.Logger
	TraceID string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the searchquery CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "searchquery",
		Short: "Build, translate and lint literature search queries",
		Long: `searchquery builds boolean literature search queries and translates them
into the advanced search syntax of Web of Science, PubMed and IEEE Xplore.
It also lints raw EBSCO query strings.`,
		SilenceUsage:  true,
		SilenceErrors: true, // Execute prints errors not already reported
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: ./searchquery.yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "", "log format (text, json)")

	// Add subcommands
	cmd.AddCommand(NewTranslateCommand(opts))
	cmd.AddCommand(NewLintCommand(opts))
	cmd.AddCommand(NewSyntaxesCommand(opts))

	return cmd
}

// prepare validates global flags, loads configuration and installs the
// logger. It runs once per invocation; subcommands executed on their own
// call it from RunE.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	if o.Config != nil {
		return nil
	}
	if o.Format == "" {
		o.Format = "text"
	}
	if !isValidFormat(o.Format) {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats))
	}

	v := viper.New()
	bindFlag(v, "log.level", cmd, "log-level")
	bindFlag(v, "log.format", cmd, "log-format")
	bindFlag(v, "translate.syntax", cmd, "syntax")
	bindFlag(v, "lint.strict", cmd, "strict")
	bindFlag(v, "lint.max_attempts", cmd, "max-attempts")

	cfg, err := config.Load(v, o.ConfigFile)
	if err != nil {
		return WrapExitError(ExitCommandError, "loading configuration", err)
	}

	level := cfg.Log.Level
	if o.Verbose {
		level = "debug"
	}
	o.Logger = logging.Setup(level, cfg.Log.Format, cmd.ErrOrStderr())
	o.Config = cfg
	o.TraceID = uuid.Must(uuid.NewV7()).String()

	o.Logger.Debug("configuration loaded",
		"trace_id", o.TraceID,
		"command", cmd.Name(),
		"config_file", v.ConfigFileUsed(),
	)
	return nil
}

// bindFlag binds a flag to a config key when cmd has that flag. Unset flags
// fall through to env, file and defaults.
func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.InheritedFlags().Lookup(name)
	}
	if flag == nil {
		return
	}
	_ = v.BindPFlag(key, flag)
}

// formatter builds the OutputFormatter for one command run.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
		TraceID:   o.TraceID,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
