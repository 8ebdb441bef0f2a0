package syntax

import (
	"strings"

	"github.com/roach88/searchquery/internal/query"
)

// WoS renders n for the Web of Science advanced search.
func WoS(n *query.Node) (string, error) {
	if !n.IsOperator() {
		return wosRun([]*query.Node{n}, " ")
	}

	op := joiner(n)
	parts := make([]string, 0, n.Len())
	for i := 0; i < n.Len(); {
		child := n.Child(i)
		if child.IsOperator() {
			s, err := WoS(child)
			if err != nil {
				return "", err
			}
			// NOT groups stay bare: their own field groups already bracket them.
			if n.Len() > 1 && !isNot(child) {
				s = "(" + s + ")"
			}
			parts = append(parts, s)
			i++
			continue
		}

		run := termRun(n, i)
		s, err := wosRun(run, op)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
		i += len(run)
	}
	return strings.Join(parts, op), nil
}

// wosRun renders adjacent terms under one field code: CODE=(t1 OP t2).
func wosRun(run []*query.Node, op string) (string, error) {
	code, err := FieldCode(SyntaxWoS, run[0].SearchField())
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(code)
	b.WriteString("=(")
	for i, term := range run {
		if i > 0 {
			b.WriteString(op)
		}
		b.WriteString(term.Value())
	}
	b.WriteString(")")
	return b.String(), nil
}
