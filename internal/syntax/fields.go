package syntax

import (
	"fmt"
	"sort"
)

var wosFieldCodes = map[string]string{
	"Author Keywords": "AK",
	"Abstract":        "AB",
	"Author":          "AU",
	"DOI":             "DO",
	"ISBN/ISSN":       "IS",
	"Publisher":       "PUBL",
	"Title":           "TI",
}

var pubmedFieldCodes = map[string]string{
	"Author Keywords": "ot",
	"Abstract":        "tiab",
	"Author":          "au",
	"DOI":             "aid",
	"ISBN/ISSN":       "isbn",
	"Publisher":       "pubn",
	"Title":           "ti",
}

// FieldCode maps a search field name to the code used by syntax s.
//
// IEEE uses field names verbatim; any non-empty name maps to itself.
// Pre-notation carries no fields and always fails.
func FieldCode(s Syntax, field string) (string, error) {
	var table map[string]string
	switch s {
	case SyntaxWoS:
		table = wosFieldCodes
	case SyntaxPubMed:
		table = pubmedFieldCodes
	case SyntaxIEEE:
		if field == "" {
			return "", fmt.Errorf("%w: empty search field for %s", ErrUnmappedField, s)
		}
		return field, nil
	default:
		return "", fmt.Errorf("%w (%s)", ErrUnsupportedSyntax, s)
	}

	code, ok := table[field]
	if !ok {
		return "", fmt.Errorf("%w: %q has no %s field code", ErrUnmappedField, field, s)
	}
	return code, nil
}

// FieldMapping is one row of a field table.
type FieldMapping struct {
	Field string `json:"field"`
	Code  string `json:"code"`
}

// FieldTable returns the field table of s sorted by field name. IEEE and
// pre-notation have no table and return nil.
func FieldTable(s Syntax) []FieldMapping {
	var table map[string]string
	switch s {
	case SyntaxWoS:
		table = wosFieldCodes
	case SyntaxPubMed:
		table = pubmedFieldCodes
	default:
		return nil
	}

	rows := make([]FieldMapping, 0, len(table))
	for field, code := range table {
		rows = append(rows, FieldMapping{Field: field, Code: code})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Field < rows[j].Field })
	return rows
}
