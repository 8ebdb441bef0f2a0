package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/roach88/searchquery/internal/lint"
	"github.com/roach88/searchquery/internal/logging"
)

// LintOptions holds flags for the lint command.
type LintOptions struct {
	*RootOptions
	File    string // read the query from a file
	General string // free-text "Search Fields" annotation
}

// NewLintCommand creates the lint command.
func NewLintCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LintOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "lint [query]",
		Short: "Lint an EBSCO query string",
		Long: `Lint a raw EBSCO query string.

Lower-case operators are capitalized, parentheses are counted, unsupported
field codes are replaced and the token sequence is checked. The corrected
query is printed with every finding.

In strict mode unsupported field codes are not replaced with AB: a
replacement is read from standard input for each of them.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.prepare(cmd); err != nil {
				return err
			}
			return runLint(opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "read the query from a file")
	cmd.Flags().StringVar(&opts.General, "general", "", "content of the general Search Fields annotation")
	// read through the lint.strict and lint.max_attempts config keys
	cmd.Flags().Bool("strict", false, "ask for replacements of unsupported fields")
	cmd.Flags().Int("max-attempts", 5, "replacement prompts per field in strict mode")

	return cmd
}

func runLint(opts *LintOptions, args []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	raw, err := lintInput(opts, args)
	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return formatter.Fail(exitErr.Code, ErrCodeMissingQuery, exitErr.Message, nil)
		}
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, err.Error(), nil)
	}

	strict := opts.Config.Lint.Strict
	logger := logging.WithComponent("lint").With("trace_id", opts.TraceID)
	v := lint.NewValidator(raw, opts.General,
		lint.WithResolver(promptResolver(cmd.InOrStdin(), cmd.ErrOrStderr())),
		lint.WithMaxAttempts(opts.Config.Lint.MaxAttempts),
		lint.WithLogger(logger),
	)

	report, err := v.Lint(strict)
	if err != nil {
		if errors.Is(err, lint.ErrResolutionAbandoned) {
			return formatter.Fail(ExitFailure, ErrCodeResolutionAbandoned, err.Error(), nil)
		}
		return formatter.Fail(ExitFailure, ErrCodeGeneric, err.Error(), nil)
	}
	logger.Info("query linted", "strict", strict, "messages", len(report.Messages), "fatal", report.Fatal)

	if formatter.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		printReport(formatter.Writer, report)
	}

	if report.Fatal {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: query cannot be processed", ErrCodeLintFatal))
	}
	return nil
}

// lintInput returns the query from the positional argument or --file.
func lintInput(opts *LintOptions, args []string) (string, error) {
	switch {
	case len(args) == 1 && opts.File != "":
		return "", NewExitError(ExitCommandError, "give either a query argument or --file, not both")
	case len(args) == 1:
		return args[0], nil
	case opts.File != "":
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return "", fmt.Errorf("reading query file: %w", err)
		}
		return strings.TrimRight(string(data), "\r\n"), nil
	default:
		return "", NewExitError(ExitCommandError, "a query argument or --file is required")
	}
}

var levelColors = map[lint.Level]*color.Color{
	lint.LevelWarning: color.New(color.FgYellow),
	lint.LevelError:   color.New(color.FgRed),
	lint.LevelFatal:   color.New(color.FgRed, color.Bold),
}

// printReport writes findings one per line, coloured by level, followed by
// the corrected query.
func printReport(w io.Writer, report lint.Report) {
	for _, m := range report.Messages {
		level := string(m.Level)
		if c, ok := levelColors[m.Level]; ok {
			level = c.Sprint(level)
		}
		if m.Pos != nil {
			fmt.Fprintf(w, "%s [%s]: %s\n", level, m.Pos, m.Msg)
		} else {
			fmt.Fprintf(w, "%s: %s\n", level, m.Msg)
		}
	}

	if report.Fatal {
		fmt.Fprintln(w, color.New(color.FgRed, color.Bold).Sprint("✗ Query cannot be processed"))
		return
	}
	if len(report.Messages) == 0 {
		fmt.Fprintln(w, color.New(color.FgGreen).Sprint("✓ No findings"))
	}
	fmt.Fprintf(w, "Query: %s\n", report.Query)
}

// promptResolver asks for a replacement field code on prompt and reads one
// line from in per request.
func promptResolver(in io.Reader, prompt io.Writer) lint.Resolver {
	scanner := bufio.NewScanner(in)
	return func(field string) (string, error) {
		fmt.Fprintf(prompt, "Search field %s is not supported. Replace with one of %s: ",
			field, strings.Join(lint.SupportedFields(), ", "))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return scanner.Text(), nil
	}
}
