// Package lint checks raw query strings written in EBSCO syntax before they
// are submitted.
//
// A Validator holds one query string and runs independent checks over it:
//
//   - CheckOperator capitalizes and, or, not (Warning per rewrite).
//   - CheckParenthesis compares '(' and ')' counts (Fatal on mismatch).
//   - CheckSearchFieldGeneral flags free-text "Search Fields" content in
//     strict mode (Warning).
//   - FilterSearchField replaces unsupported two-letter field codes, either
//     with AB or with a code supplied by a Resolver (Error per field).
//   - CheckTokenSequence tokenizes the query and validates every adjacent
//     token pair against a fixed transition table (Error per bad pair).
//
// Each check returns its own fresh list of messages. Checks that rewrite
// the query (operator casing, field codes) update the Validator in place,
// so later checks see the corrected text. Positions are character offsets
// into the query as it was when the check ran.
//
// Lint runs every check in order and stops after a Fatal finding.
package lint
