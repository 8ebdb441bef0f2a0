package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/searchquery/internal/syntax"
)

func TestListSyntaxes(t *testing.T) {
	infos := ListSyntaxes()
	require.Len(t, infos, 4)

	assert.Equal(t, syntax.SyntaxPreNotation, infos[0].Name)
	assert.Empty(t, infos[0].Database)
	assert.Empty(t, infos[0].Fields)

	assert.Equal(t, "Web of Science - Core Collection", infos[1].Database)
	assert.Contains(t, infos[1].Fields, syntax.FieldMapping{Field: "Title", Code: "TI"})

	assert.Equal(t, "PubMed", infos[2].Database)
	assert.Contains(t, infos[2].Fields, syntax.FieldMapping{Field: "Abstract", Code: "tiab"})

	assert.Equal(t, "IEEE Xplore", infos[3].Database)
	assert.Empty(t, infos[3].Fields)
}

func TestSyntaxesCommand_Text(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewSyntaxesCommand(&RootOptions{Format: "text"})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "pre_notation\n")
	assert.Contains(t, out, "wos: Web of Science - Core Collection\n")
	assert.Contains(t, out, "  https://pubmed.ncbi.nlm.nih.gov/advanced/\n")
	assert.Contains(t, out, "  field names are used verbatim\n")
	assert.Regexp(t, `\n  Author Keywords +ot\n`, out)
}

func TestSyntaxesCommand_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewSyntaxesCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string       `json:"status"`
		Data   []SyntaxInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, ListSyntaxes(), resp.Data)
}

func TestSyntaxesCommand_RejectsArgs(t *testing.T) {
	cmd := NewSyntaxesCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"wos"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
