package syntax

import (
	"fmt"
	"strings"

	"github.com/roach88/searchquery/internal/query"
)

// PreNotation renders n in the canonical bracketed form, e.g.
// AND[cancer, OR[lung, breast]]. Search fields are not rendered.
func PreNotation(n *query.Node) string {
	var b strings.Builder
	writePreNotation(&b, n)
	return b.String()
}

func writePreNotation(b *strings.Builder, n *query.Node) {
	b.WriteString(n.Value())
	if n.Len() == 0 {
		return
	}
	b.WriteString("[")
	for i := 0; i < n.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		writePreNotation(b, n.Child(i))
	}
	b.WriteString("]")
}

// ParsePreNotation rebuilds a Query from its pre-notation. The result is
// isomorphic to the tree that was rendered; terms carry searchField, since
// pre-notation has no field information.
//
// Terms must precede operator groups within each group, which is the shape
// query.New produces. Terms may not contain '[', ']' or ','.
func ParsePreNotation(s, searchField string) (*query.Query, error) {
	p := &preParser{src: s}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if rest := strings.TrimSpace(p.src[p.pos:]); rest != "" {
		return nil, p.errorf("unexpected trailing input %q", rest)
	}
	if !expr.group {
		return nil, fmt.Errorf("%w: root %q is not an operator group", ErrMalformedPreNotation, expr.value)
	}
	return expr.build(searchField)
}

type preExpr struct {
	value    string
	group    bool
	children []*preExpr
	offset   int
}

type preParser struct {
	src string
	pos int
}

func (p *preParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrMalformedPreNotation, p.pos, fmt.Sprintf(format, args...))
}

func (p *preParser) parseExpr() (*preExpr, error) {
	start := p.pos
	for p.pos < len(p.src) && !strings.ContainsRune("[],", rune(p.src[p.pos])) {
		p.pos++
	}
	expr := &preExpr{value: strings.TrimSpace(p.src[start:p.pos]), offset: start}
	if expr.value == "" {
		return nil, p.errorf("empty operand")
	}

	if p.pos >= len(p.src) || p.src[p.pos] != '[' {
		return expr, nil
	}

	p.pos++
	expr.group = true
	for {
		child, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		expr.children = append(expr.children, child)

		if p.pos >= len(p.src) {
			return nil, p.errorf("unterminated group %q", expr.value)
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return expr, nil
		default:
			return nil, p.errorf("unexpected %q", p.src[p.pos])
		}
	}
}

func (e *preExpr) build(searchField string) (*query.Query, error) {
	var terms []string
	var nested []*query.Query
	for _, child := range e.children {
		if !child.group {
			if len(nested) > 0 {
				return nil, fmt.Errorf("%w at offset %d: term %q follows an operator group",
					ErrMalformedPreNotation, child.offset, child.value)
			}
			terms = append(terms, child.value)
			continue
		}
		q, err := child.build(searchField)
		if err != nil {
			return nil, err
		}
		nested = append(nested, q)
	}

	op, err := query.ParseOperator(e.value)
	if err != nil {
		return nil, fmt.Errorf("%w at offset %d: %w", ErrMalformedPreNotation, e.offset, err)
	}
	return query.New(op, terms, nested, searchField)
}
