package syntax

import (
	"strings"

	"github.com/roach88/searchquery/internal/query"
)

// IEEE renders n for the IEEE Xplore command search.
//
// A run of terms opens a parenthesis at its first term. It is closed at the
// last operand, or earlier when the next operand is an operator group, so
// the run never swallows the group that follows it. Operator groups are
// emitted without extra parentheses.
func IEEE(n *query.Node) (string, error) {
	if !n.IsOperator() {
		return ieeeTerm(n)
	}
	if n.Len() == 1 && !n.Child(0).IsOperator() {
		return ieeeTerm(n.Child(0))
	}

	op := joiner(n)
	last := n.Len() - 1
	open := false

	var b strings.Builder
	for i := 0; i <= last; i++ {
		child := n.Child(i)
		if i > 0 {
			b.WriteString(op)
		}

		if child.IsOperator() {
			s, err := IEEE(child)
			if err != nil {
				return "", err
			}
			b.WriteString(s)
			continue
		}

		if !open {
			b.WriteString("(")
			open = true
		}
		s, err := ieeeTerm(child)
		if err != nil {
			return "", err
		}
		b.WriteString(s)

		// lookahead: close the run before an operator group starts
		if i == last || n.Child(i+1).IsOperator() {
			b.WriteString(")")
			open = false
		}
	}
	return b.String(), nil
}

func ieeeTerm(n *query.Node) (string, error) {
	field, err := FieldCode(SyntaxIEEE, n.SearchField())
	if err != nil {
		return "", err
	}
	return `"` + field + `":` + n.Value(), nil
}
