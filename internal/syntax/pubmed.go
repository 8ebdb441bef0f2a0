package syntax

import (
	"strings"

	"github.com/roach88/searchquery/internal/query"
)

// PubMed renders n for the PubMed advanced search query box.
func PubMed(n *query.Node) (string, error) {
	if !n.IsOperator() {
		return pubmedTerm(n)
	}

	op := joiner(n)
	parts := make([]string, 0, n.Len())
	for i := 0; i < n.Len(); {
		child := n.Child(i)
		if child.IsOperator() {
			s, err := PubMed(child)
			if err != nil {
				return "", err
			}
			if n.Len() > 1 && !isNot(child) {
				s = "(" + s + ")"
			}
			parts = append(parts, s)
			i++
			continue
		}

		run := termRun(n, i)
		terms := make([]string, 0, len(run))
		for _, term := range run {
			s, err := pubmedTerm(term)
			if err != nil {
				return "", err
			}
			terms = append(terms, s)
		}
		s := strings.Join(terms, op)
		if len(run) > 1 && len(run) < n.Len() {
			s = "(" + s + ")"
		}
		parts = append(parts, s)
		i += len(run)
	}
	return strings.Join(parts, op), nil
}

func pubmedTerm(n *query.Node) (string, error) {
	code, err := FieldCode(SyntaxPubMed, n.SearchField())
	if err != nil {
		return "", err
	}
	return n.Value() + "[" + code + "]", nil
}
