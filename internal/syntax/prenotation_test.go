package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/searchquery/internal/query"
)

func TestParsePreNotation_RoundTrip(t *testing.T) {
	for name, build := range fixtures {
		t.Run(name, func(t *testing.T) {
			original := build(t)
			text := PreNotation(original.Root())

			parsed, err := ParsePreNotation(text, "")
			require.NoError(t, err)

			assertIsomorphic(t, original.Root(), parsed.Root())
			assert.Equal(t, text, PreNotation(parsed.Root()))
		})
	}
}

func TestParsePreNotation_AppliesSearchField(t *testing.T) {
	q, err := ParsePreNotation("AND[covid]", "Title")
	require.NoError(t, err)

	out, err := Translate(q, SyntaxPubMed)
	require.NoError(t, err)
	assert.Equal(t, "covid[ti]", out)
}

func TestParsePreNotation_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"bare term", "cancer"},
		{"unterminated", "AND[a, b"},
		{"empty operand", "AND[a, , b]"},
		{"empty group", "AND[]"},
		{"trailing input", "AND[a] OR[b]"},
		{"term after group", "AND[OR[a, b], c]"},
		{"junk after group", "AND[OR[a] b]"},
		{"empty input", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := ParsePreNotation(tc.input, "")
			require.Error(t, err)
			assert.Nil(t, q)
			assert.ErrorIs(t, err, ErrMalformedPreNotation)
		})
	}
}

func TestParsePreNotation_UnknownOperator(t *testing.T) {
	_, err := ParsePreNotation("XOR[a, b]", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedPreNotation)
	assert.ErrorIs(t, err, query.ErrInvalidOperator)
}

func assertIsomorphic(t *testing.T, want, got *query.Node) {
	t.Helper()
	require.Equal(t, want.Value(), got.Value())
	require.Equal(t, want.IsOperator(), got.IsOperator(), "node %q", want.Value())
	require.Equal(t, want.Len(), got.Len(), "children of %q", want.Value())
	for i := 0; i < want.Len(); i++ {
		assertIsomorphic(t, want.Child(i), got.Child(i))
	}
}
