// Package syntax renders a query tree in the literal query language of a
// literature database.
//
// Supported syntaxes:
//
//	pre_notation   AND[cancer, OR[lung, breast]]
//	wos            AB=(cancer) AND (TI=(lung OR breast))
//	pubmed         cancer[tiab] AND (lung[ti] OR breast[ti])
//	ieee           ("Abstract":cancer) AND ("Title":lung OR "Title":breast)
//
// Every serializer is a pure recursive walk over query.Node children in
// source order. Operands are joined with the parent operator exactly as
// stored (AND, OR, NOT). The vendor syntaxes differ in how they group
// operands:
//
//   - WoS emits one field code per run of adjacent terms, CODE=(t1 OP t2).
//     Operator operands are parenthesized unless they are NOT groups.
//   - PubMed suffixes every term with its field code, term[code], and
//     parenthesizes runs and operator operands the same way as WoS.
//   - IEEE prefixes every term with its quoted field name. A term run is
//     closed as soon as the next operand is an operator group, so runs are
//     parenthesized independently of the groups that follow them.
//
// Search fields are mapped through fixed tables. A field without an entry
// for the requested syntax fails with ErrUnmappedField instead of producing
// a partial string.
package syntax
