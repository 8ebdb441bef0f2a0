// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/roach88/searchquery/internal/query"
)

// AssertGolden compares got against testdata/golden/{name}.golden of the
// calling package.
//
// To regenerate golden files, run the package tests with -update.
func AssertGolden(t *testing.T, name string, got []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, got)
}

// MustQuery builds a query and fails the test on error.
func MustQuery(t *testing.T, op query.Operator, terms []string, nested []*query.Query, field string) *query.Query {
	t.Helper()
	q, err := query.New(op, terms, nested, field)
	require.NoError(t, err)
	return q
}
