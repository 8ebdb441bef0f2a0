package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/searchquery/internal/record"
	"github.com/roach88/searchquery/internal/syntax"
)

// SyntaxInfo describes one supported syntax.
type SyntaxInfo struct {
	Name     syntax.Syntax         `json:"name"`
	Database string                `json:"database,omitempty"`
	URL      string                `json:"url,omitempty"`
	Fields   []syntax.FieldMapping `json:"fields,omitempty"`
}

// NewSyntaxesCommand creates the syntaxes command.
func NewSyntaxesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "syntaxes",
		Short:         "List supported syntaxes and their field codes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rootOpts.prepare(cmd); err != nil {
				return err
			}
			return runSyntaxes(rootOpts, cmd)
		},
	}
}

// ListSyntaxes returns every supported syntax with its database and field
// table where it has one.
func ListSyntaxes() []SyntaxInfo {
	var infos []SyntaxInfo
	for _, s := range syntax.All() {
		info := SyntaxInfo{Name: s, Fields: syntax.FieldTable(s)}
		if rec, err := record.ForSyntax(s, ""); err == nil {
			info.Database = rec.Database
			info.URL = rec.URL
		}
		infos = append(infos, info)
	}
	return infos
}

func runSyntaxes(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	infos := ListSyntaxes()

	if formatter.Format == "json" {
		return formatter.Success(infos)
	}

	for _, info := range infos {
		if info.Database != "" {
			fmt.Fprintf(formatter.Writer, "%s: %s\n", info.Name, info.Database)
			fmt.Fprintf(formatter.Writer, "  %s\n", info.URL)
		} else {
			fmt.Fprintf(formatter.Writer, "%s\n", info.Name)
		}
		if info.Name == syntax.SyntaxIEEE {
			fmt.Fprintln(formatter.Writer, "  field names are used verbatim")
		}
		for _, f := range info.Fields {
			fmt.Fprintf(formatter.Writer, "  %-16s %s\n", f.Field, f.Code)
		}
	}
	return nil
}
