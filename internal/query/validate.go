package query

// ValidateStructure checks that every node below root is reachable through
// exactly one path. It marks nodes during a depth-first walk and fails with
// ErrSharedSubtree on the first node it reaches twice.
//
// Marks are cleared before returning, whether or not validation succeeded,
// so nested trees can be validated again as part of a larger query.
func ValidateStructure(root *Node) error {
	defer clearMarks(root)

	var err error
	walk(root, 0, func(n *Node, depth int) bool {
		if n.marked {
			err = newConstructionError(ErrCodeSharedSubtree, ErrSharedSubtree,
				"node %q at depth %d is linked into the tree more than once", n.value, depth)
			return false
		}
		n.marked = true
		return true
	})
	return err
}
