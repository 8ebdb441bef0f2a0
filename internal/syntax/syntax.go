package syntax

import (
	"errors"
	"fmt"

	"github.com/roach88/searchquery/internal/query"
)

// Syntax names a query language.
type Syntax string

const (
	SyntaxPreNotation Syntax = "pre_notation"
	SyntaxWoS         Syntax = "wos"
	SyntaxPubMed      Syntax = "pubmed"
	SyntaxIEEE        Syntax = "ieee"
)

var (
	ErrUnsupportedSyntax    = errors.New("syntax not supported")
	ErrUnmappedField        = errors.New("search field not mapped")
	ErrMalformedPreNotation = errors.New("malformed pre-notation")
)

// All returns every supported syntax, canonical form first.
func All() []Syntax {
	return []Syntax{SyntaxPreNotation, SyntaxWoS, SyntaxPubMed, SyntaxIEEE}
}

// ParseSyntax converts a syntax name to a Syntax.
func ParseSyntax(s string) (Syntax, error) {
	for _, known := range All() {
		if string(known) == s {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w (%s)", ErrUnsupportedSyntax, s)
}

// Translate renders q in the given syntax.
func Translate(q *query.Query, s Syntax) (string, error) {
	if q == nil {
		return "", fmt.Errorf("cannot translate nil query")
	}
	return Render(q.Root(), s)
}

// Render serializes the tree rooted at n in the given syntax.
func Render(n *query.Node, s Syntax) (string, error) {
	switch s {
	case SyntaxPreNotation:
		return PreNotation(n), nil
	case SyntaxWoS:
		return WoS(n)
	case SyntaxPubMed:
		return PubMed(n)
	case SyntaxIEEE:
		return IEEE(n)
	default:
		return "", fmt.Errorf("%w (%s)", ErrUnsupportedSyntax, s)
	}
}

// termRun returns the adjacent term operands of n starting at index i that
// share the search field of operand i.
func termRun(n *query.Node, i int) []*query.Node {
	first := n.Child(i)
	run := []*query.Node{first}
	for j := i + 1; j < n.Len(); j++ {
		next := n.Child(j)
		if next.IsOperator() || next.SearchField() != first.SearchField() {
			break
		}
		run = append(run, next)
	}
	return run
}

func isNot(n *query.Node) bool {
	return n.IsOperator() && n.Value() == string(query.OperatorNOT)
}

func joiner(n *query.Node) string {
	return " " + n.Value() + " "
}
