package query

// Operator is the boolean connective of a Query.
type Operator string

const (
	OperatorAND Operator = "AND"
	OperatorOR  Operator = "OR"
	OperatorNOT Operator = "NOT"
)

// ParseOperator converts an operator name to an Operator. Matching is
// case-sensitive: "and" is not an operator.
func ParseOperator(s string) (Operator, error) {
	switch op := Operator(s); op {
	case OperatorAND, OperatorOR, OperatorNOT:
		return op, nil
	default:
		return "", newConstructionError(ErrCodeInvalidOperator, ErrInvalidOperator,
			"operator %q must be one of AND, OR, NOT", s)
	}
}

// Query is a validated query tree tagged with its operator.
type Query struct {
	op       Operator
	tree     *Tree
	consumed bool
}

// New builds a Query whose root is op. The root receives one term operand
// per entry of searchTerms, tagged with searchField, followed by the root of
// every nested query in order.
//
// Nested queries are linked, not copied, and become owned by the new
// Query: on success each of them is marked consumed and cannot be nested
// again.
func New(op Operator, searchTerms []string, nestedQueries []*Query, searchField string) (*Query, error) {
	if _, err := ParseOperator(string(op)); err != nil {
		return nil, err
	}
	if len(searchTerms) == 0 && len(nestedQueries) == 0 {
		return nil, newConstructionError(ErrCodeEmptyQuery, ErrEmptyQuery,
			"%s needs at least one search term or nested query", op)
	}
	for i, nested := range nestedQueries {
		if nested == nil {
			return nil, newConstructionError(ErrCodeNilQuery, ErrNilQuery,
				"nested query %d is nil", i)
		}
		if nested.consumed {
			return nil, newConstructionError(ErrCodeQueryConsumed, ErrQueryConsumed,
				"nested query %d (%s) is already part of another query", i, nested.op)
		}
	}

	root := newOperatorNode(op, searchField)
	root.children = make([]*Node, 0, len(searchTerms)+len(nestedQueries))
	for _, term := range searchTerms {
		root.children = append(root.children, newTermNode(term, searchField))
	}
	for _, nested := range nestedQueries {
		root.children = append(root.children, nested.tree.root)
	}

	q := &Query{op: op, tree: &Tree{root: root}}
	if err := ValidateStructure(root); err != nil {
		return nil, err
	}

	for _, nested := range nestedQueries {
		nested.consumed = true
	}
	return q, nil
}

// And builds an AND query. See New.
func And(searchTerms []string, nestedQueries []*Query, searchField string) (*Query, error) {
	return New(OperatorAND, searchTerms, nestedQueries, searchField)
}

// Or builds an OR query. See New.
func Or(searchTerms []string, nestedQueries []*Query, searchField string) (*Query, error) {
	return New(OperatorOR, searchTerms, nestedQueries, searchField)
}

// Not builds a NOT query. See New.
func Not(searchTerms []string, nestedQueries []*Query, searchField string) (*Query, error) {
	return New(OperatorNOT, searchTerms, nestedQueries, searchField)
}

// Operator returns the root operator.
func (q *Query) Operator() Operator { return q.op }

// Tree returns the query tree.
func (q *Query) Tree() *Tree { return q.tree }

// Root returns the root node of the query tree.
func (q *Query) Root() *Node { return q.tree.root }

// Consumed reports whether q has been nested into another Query.
func (q *Query) Consumed() bool { return q.consumed }
