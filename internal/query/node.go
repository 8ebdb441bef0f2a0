package query

// Node is a single vertex of the query tree: either an operator with
// operands or a search term.
type Node struct {
	value       string
	isOperator  bool
	searchField string
	children    []*Node

	// marked is only used by ValidateStructure.
	marked bool
}

func newOperatorNode(op Operator, searchField string) *Node {
	return &Node{value: string(op), isOperator: true, searchField: searchField}
}

func newTermNode(term, searchField string) *Node {
	return &Node{value: term, searchField: searchField}
}

// Value returns the operator name for operator nodes and the literal
// search term otherwise.
func (n *Node) Value() string { return n.value }

// IsOperator reports whether the node is an AND, OR or NOT group.
func (n *Node) IsOperator() bool { return n.isOperator }

// SearchField returns the field tag, e.g. "Title". It may be empty.
func (n *Node) SearchField() string { return n.searchField }

// Len returns the number of operands.
func (n *Node) Len() int { return len(n.children) }

// Child returns the i-th operand.
func (n *Node) Child(i int) *Node { return n.children[i] }

// Children returns a copy of the operand list in source order.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Tree owns the root node of one Query.
type Tree struct {
	root *Node
}

// Root returns the root operator node.
func (t *Tree) Root() *Node { return t.root }

// Walk visits every node in depth-first pre-order. Returning false from fn
// stops the walk. ValidateStructure and ClearMarks traverse the same way.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	walk(t.root, 0, fn)
}

func walk(n *Node, depth int, fn func(*Node, int) bool) bool {
	if !fn(n, depth) {
		return false
	}
	for _, child := range n.children {
		if !walk(child, depth+1, fn) {
			return false
		}
	}
	return true
}

// ClearMarks resets the validation mark on every node of the tree.
func (t *Tree) ClearMarks() {
	clearMarks(t.root)
}

func clearMarks(n *Node) {
	walk(n, 0, func(n *Node, _ int) bool {
		n.marked = false
		return true
	})
}
