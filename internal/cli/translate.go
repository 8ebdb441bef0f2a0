package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/searchquery/internal/logging"
	"github.com/roach88/searchquery/internal/query"
	"github.com/roach88/searchquery/internal/querydef"
	"github.com/roach88/searchquery/internal/record"
	"github.com/roach88/searchquery/internal/syntax"
)

// TranslateOptions holds flags for the translate command.
type TranslateOptions struct {
	*RootOptions
	Output  string // translation record path
	Replace bool   // overwrite an existing record
}

// TranslateResult is the JSON payload of the translate command.
type TranslateResult struct {
	Syntax      syntax.Syntax       `json:"syntax"`
	Query       string              `json:"query"`
	PreNotation string              `json:"pre_notation"`
	Output      string              `json:"output,omitempty"`
	Record      *record.Translation `json:"record,omitempty"`
}

// NewTranslateCommand creates the translate command.
func NewTranslateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TranslateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "translate <definition>",
		Short: "Translate a query definition into a database syntax",
		Long: `Translate a query definition (.yaml, .cue or .json) into the advanced
search syntax of a literature database.

With --output a translation record is written: a JSON file naming the
database, its advanced search URL and how to paste the query.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.prepare(cmd); err != nil {
				return err
			}
			return runTranslate(opts, args[0], cmd)
		},
	}

	// read through the translate.syntax config key
	cmd.Flags().StringP("syntax", "s", "", "target syntax (pre_notation|wos|pubmed|ieee)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write a translation record to this path")
	cmd.Flags().BoolVar(&opts.Replace, "replace", false, "overwrite an existing translation record")

	return cmd
}

func runTranslate(opts *TranslateOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := logging.WithComponent("translate").With("trace_id", opts.TraceID)

	target, err := syntax.ParseSyntax(opts.Config.Translate.Syntax)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeUnsupportedSyntax, err.Error(), nil)
	}

	def, err := querydef.Load(path)
	if err != nil {
		if errors.Is(err, querydef.ErrUnknownFormat) || errors.Is(err, querydef.ErrInvalidDefinition) {
			return formatter.Fail(ExitCommandError, ErrCodeInvalidDefinition, err.Error(), nil)
		}
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
	}
	formatter.VerboseLog("Loaded definition %s", path)

	q, err := def.Build()
	if err != nil {
		var ce *query.ConstructionError
		if errors.As(err, &ce) {
			return formatter.Fail(ExitFailure, string(ce.Code), err.Error(), nil)
		}
		return formatter.Fail(ExitFailure, ErrCodeGeneric, err.Error(), nil)
	}

	result := TranslateResult{
		Syntax:      target,
		PreNotation: syntax.PreNotation(q.Root()),
	}

	if opts.Output != "" {
		rec, err := record.WriteQuery(opts.Output, q, target, opts.Replace)
		if err != nil {
			return failTranslation(formatter, err)
		}
		result.Query = rec.TranslatedQuery
		result.Output = opts.Output
		result.Record = &rec
	} else {
		result.Query, err = syntax.Translate(q, target)
		if err != nil {
			return failTranslation(formatter, err)
		}
	}

	logger.Info("query translated", "syntax", target, "definition", path, "output", opts.Output)

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	formatter.VerboseLog("Pre-notation: %s", result.PreNotation)
	fmt.Fprintln(formatter.Writer, result.Query)
	if result.Output != "" {
		fmt.Fprintf(formatter.Writer, "Wrote %s translation record to %s\n", result.Record.Database, result.Output)
	}
	return nil
}

// failTranslation maps serialization and record errors to exit codes.
func failTranslation(formatter *OutputFormatter, err error) error {
	switch {
	case errors.Is(err, syntax.ErrUnmappedField):
		return formatter.Fail(ExitFailure, ErrCodeUnmappedField, err.Error(), nil)
	case errors.Is(err, syntax.ErrUnsupportedSyntax):
		return formatter.Fail(ExitCommandError, ErrCodeUnsupportedSyntax, err.Error(), nil)
	case errors.Is(err, record.ErrFileExists):
		return formatter.Fail(ExitCommandError, ErrCodeFileExists, err.Error(), "use --replace to overwrite")
	default:
		return formatter.Fail(ExitCommandError, ErrCodeWriteFailed, err.Error(), nil)
	}
}
