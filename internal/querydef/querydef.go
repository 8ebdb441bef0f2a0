// Package querydef loads query definitions from YAML, CUE or JSON files and
// builds them into queries.
//
// A definition mirrors query.New: an operator, an optional search field,
// search terms and nested definitions.
//
//	operator: AND
//	search_field: Abstract
//	search_terms: [cancer]
//	nested_queries:
//	  - operator: OR
//	    search_field: Title
//	    search_terms: [lung, breast]
package querydef

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/searchquery/internal/query"
)

var (
	ErrUnknownFormat     = errors.New("unknown definition format")
	ErrInvalidDefinition = errors.New("invalid query definition")
)

// Definition describes one query and its nested queries.
type Definition struct {
	Operator      string       `yaml:"operator" json:"operator"`
	SearchField   string       `yaml:"search_field,omitempty" json:"search_field,omitempty"`
	SearchTerms   []string     `yaml:"search_terms,omitempty" json:"search_terms,omitempty"`
	NestedQueries []Definition `yaml:"nested_queries,omitempty" json:"nested_queries,omitempty"`
}

// Format is the encoding of a definition file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
	FormatJSON Format = "json"
)

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Load reads the definition stored at path.
func Load(path string) (*Definition, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file: %w", err)
	}
	return Parse(data, format, path)
}

// Parse decodes a definition. name is used in error positions.
func Parse(data []byte, format Format, name string) (*Definition, error) {
	var (
		def *Definition
		err error
	)
	switch format {
	case FormatYAML:
		def, err = decodeYAML(data)
	case FormatCUE, FormatJSON:
		def, err = decodeCUE(data, name)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	def.normalize()
	return def, nil
}

// normalize converts every term and field to NFC so that composed and
// decomposed input translate identically.
func (d *Definition) normalize() {
	d.Operator = strings.TrimSpace(d.Operator)
	d.SearchField = norm.NFC.String(d.SearchField)
	for i, term := range d.SearchTerms {
		d.SearchTerms[i] = norm.NFC.String(term)
	}
	for i := range d.NestedQueries {
		d.NestedQueries[i].normalize()
	}
}

// Build constructs the query bottom-up. Errors name the failing definition,
// e.g. "nested_queries[1].nested_queries[0]".
func (d *Definition) Build() (*query.Query, error) {
	return d.build("query")
}

func (d *Definition) build(path string) (*query.Query, error) {
	op, err := query.ParseOperator(d.Operator)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	nested := make([]*query.Query, 0, len(d.NestedQueries))
	for i := range d.NestedQueries {
		childPath := fmt.Sprintf("nested_queries[%d]", i)
		if path != "query" {
			childPath = path + "." + childPath
		}
		q, err := d.NestedQueries[i].build(childPath)
		if err != nil {
			return nil, err
		}
		nested = append(nested, q)
	}

	q, err := query.New(op, d.SearchTerms, nested, d.SearchField)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}
