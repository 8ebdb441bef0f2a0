package querydef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/searchquery/internal/query"
	"github.com/roach88/searchquery/internal/syntax"
)

func cancerDefinition() *Definition {
	return &Definition{
		Operator:    "AND",
		SearchField: "Abstract",
		SearchTerms: []string{"cancer"},
		NestedQueries: []Definition{{
			Operator:    "OR",
			SearchField: "Title",
			SearchTerms: []string{"lung", "breast"},
		}},
	}
}

func TestLoad_AllFormats(t *testing.T) {
	for _, name := range []string{"cancer.yaml", "cancer.cue", "cancer.json"} {
		t.Run(name, func(t *testing.T) {
			def, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, cancerDefinition(), def)
		})
	}
}

func TestLoad_UnknownYAMLField(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "typo.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "search_term")
}

func TestParse_CUERejectsUnknownField(t *testing.T) {
	_, err := Parse([]byte(`{"operator": "AND", "search_term": ["x"]}`), FormatJSON, "typo.json")
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestParse_CUERequiresOperator(t *testing.T) {
	_, err := Parse([]byte(`search_terms: ["x"]`), FormatCUE, "missing.cue")
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestParse_EmptyYAML(t *testing.T) {
	_, err := Parse(nil, FormatYAML, "empty.yaml")
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestLoad_UnknownExtension(t *testing.T) {
	_, err := Load("query.toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_NormalizesToNFC(t *testing.T) {
	decomposed := "cafe\u0301"
	data := []byte("operator: OR\nsearch_field: Title\nsearch_terms: [\"" + decomposed + "\"]\n")

	def, err := Parse(data, FormatYAML, "nfc.yaml")
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9", def.SearchTerms[0])
}

func TestBuild_Translates(t *testing.T) {
	def, err := Load(filepath.Join("testdata", "cancer.yaml"))
	require.NoError(t, err)

	q, err := def.Build()
	require.NoError(t, err)
	assert.Equal(t, query.OperatorAND, q.Operator())

	out, err := syntax.Translate(q, syntax.SyntaxWoS)
	require.NoError(t, err)
	assert.Equal(t, "AB=(cancer) AND (TI=(lung OR breast))", out)
}

func TestBuild_ErrorNamesDefinition(t *testing.T) {
	def := cancerDefinition()
	def.NestedQueries = append(def.NestedQueries, Definition{
		Operator:      "OR",
		NestedQueries: []Definition{{Operator: "XOR", SearchTerms: []string{"a"}}},
	})

	_, err := def.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, query.ErrInvalidOperator)
	assert.True(t, query.IsConstructionError(err))
	assert.Contains(t, err.Error(), "nested_queries[1].nested_queries[0]: ")
}

func TestBuild_EmptyDefinition(t *testing.T) {
	_, err := (&Definition{Operator: "AND"}).Build()
	assert.ErrorIs(t, err, query.ErrEmptyQuery)
	assert.Contains(t, err.Error(), "query: ")
}

func TestFormatFor(t *testing.T) {
	testCases := map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.cue":  FormatCUE,
		"a.json": FormatJSON,
	}
	for path, want := range testCases {
		got, err := FormatFor(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
}
