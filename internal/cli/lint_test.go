package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/searchquery/internal/lint"
)

type lintRun struct {
	out    string
	errOut string
	err    error
}

func executeLint(t *testing.T, format, stdin string, args ...string) lintRun {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewLintCommand(&RootOptions{Format: format})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	if args == nil {
		args = []string{} // nil makes cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return lintRun{out: out.String(), errOut: errOut.String(), err: err}
}

func TestLint_CapitalizesOperators(t *testing.T) {
	run := executeLint(t, "text", "", "cancer and lung")
	require.NoError(t, run.err)

	assert.Equal(t,
		"Warning [7-10]: Operator 'and' automatically capitalized\n"+
			"Query: cancer AND lung\n",
		run.out)
}

func TestLint_CleanQuery(t *testing.T) {
	run := executeLint(t, "text", "", `TI "heart attack" OR AB stroke`)
	require.NoError(t, run.err)

	assert.Contains(t, run.out, "✓ No findings")
	assert.Contains(t, run.out, `Query: TI "heart attack" OR AB stroke`)
}

func TestLint_FatalExitsWithFailure(t *testing.T) {
	run := executeLint(t, "text", "", "(a OR b")
	require.Error(t, run.err)
	assert.Equal(t, ExitFailure, GetExitCode(run.err))
	assert.Contains(t, run.err.Error(), ErrCodeLintFatal)

	assert.Contains(t, run.out, "Fatal: Unbalanced parentheses: open = 1, close = 0")
	assert.Contains(t, run.out, "✗ Query cannot be processed")
	assert.NotContains(t, run.out, "Query: ")
}

func TestLint_JSON(t *testing.T) {
	run := executeLint(t, "json", "", "--file", filepath.Join("testdata", "lint_query.txt"))
	require.NoError(t, run.err)

	var resp struct {
		Status  string      `json:"status"`
		Data    lint.Report `json:"data"`
		TraceID string      `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(run.out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.TraceID)

	assert.Equal(t, "TI (cancer AND tumor) AND AB lung", resp.Data.Query)
	assert.False(t, resp.Data.Fatal)
	require.Len(t, resp.Data.Messages, 2)
	assert.Equal(t, lint.LevelWarning, resp.Data.Messages[0].Level)
	assert.Equal(t, lint.LevelError, resp.Data.Messages[1].Level)
	assert.Equal(t, &lint.Position{Start: 26, End: 28}, resp.Data.Messages[1].Pos)
}

func TestLint_StrictPromptsForReplacement(t *testing.T) {
	run := executeLint(t, "text", "ZZ\nkw\n KW \n", "XY cancer", "--strict", "--general", "Title")
	require.NoError(t, run.err)

	assert.Equal(t, 3, strings.Count(run.errOut, "Search field XY is not supported"))
	assert.Contains(t, run.out, "Content in Search Fields: 'Title'")
	assert.Contains(t, run.out, "search-field-unsupported: 'XY' replaced with 'KW'.")
	assert.Contains(t, run.out, "Query: KW cancer")
}

func TestLint_StrictFromEnv(t *testing.T) {
	t.Setenv("SEARCHQUERY_LINT_STRICT", "true")

	run := executeLint(t, "text", "TI\n", "XY cancer")
	require.NoError(t, run.err)
	assert.Contains(t, run.out, "Query: TI cancer")
}

func TestLint_StrictAbandons(t *testing.T) {
	run := executeLint(t, "json", "ZZ\nZZ\nTI\n", "XY cancer", "--strict", "--max-attempts", "2")
	require.Error(t, run.err)
	assert.Equal(t, ExitFailure, GetExitCode(run.err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(run.out), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeResolutionAbandoned, resp.Error.Code)
}

func TestLint_StrictWithClosedInput(t *testing.T) {
	run := executeLint(t, "text", "", "XY cancer", "--strict")
	require.Error(t, run.err)
	assert.Equal(t, ExitFailure, GetExitCode(run.err))
	assert.Contains(t, run.out, "unexpected EOF")
}

func TestLint_InputErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		code string
	}{
		{"no query", nil, ErrCodeMissingQuery},
		{"query and file", []string{"a", "--file", "q.txt"}, ErrCodeMissingQuery},
		{"missing file", []string{"--file", filepath.Join("testdata", "absent.txt")}, ErrCodeNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run := executeLint(t, "text", "", tc.args...)
			require.Error(t, run.err)
			assert.Equal(t, ExitCommandError, GetExitCode(run.err))
			assert.Contains(t, run.out, "Error ["+tc.code+"]")
		})
	}
}

func TestPromptResolver(t *testing.T) {
	prompt := &bytes.Buffer{}
	resolve := promptResolver(strings.NewReader("TI\nAB\n"), prompt)

	first, err := resolve("XY")
	require.NoError(t, err)
	second, err := resolve("QQ")
	require.NoError(t, err)
	_, err = resolve("ZZ")

	assert.Equal(t, "TI", first)
	assert.Equal(t, "AB", second)
	assert.Error(t, err)
	assert.Contains(t, prompt.String(), "Search field QQ is not supported. Replace with one of AB, AU,")
}
