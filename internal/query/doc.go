// Package query provides the boolean search-query AST used by the
// translators in package syntax.
//
// A Query is one operator (AND, OR, NOT) over an ordered list of operands.
// Operands are either search terms, tagged with a search field such as
// "Title" or "Abstract", or the roots of other, already built queries:
//
//	AND
//	├── cancer            (Abstract)
//	└── OR
//	    ├── lung          (Title)
//	    └── breast        (Title)
//
// Nested queries are linked by reference, not copied. Two guards keep the
// result a tree:
//
//   - Ownership: a Query handed to New as a nested query is consumed. Using
//     it as a nested query again fails with ErrQueryConsumed.
//   - Structure: after assembly, ValidateStructure walks the tree once and
//     marks every node. Reaching a marked node means the same node is linked
//     twice (ErrSharedSubtree). Marks are cleared before New returns.
//
// A Query is immutable once New returns. Operand order is significant: the
// translators place operators between operands in exactly this order.
package query
