// Package record writes translation records: a JSON file telling a user
// which database a translated query is for and how to paste it in.
package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/roach88/searchquery/internal/query"
	"github.com/roach88/searchquery/internal/syntax"
)

// ErrFileExists is returned by Write when the target exists and replace is
// not set.
var ErrFileExists = errors.New("output file already exists")

// Translation is the content of a translation record file.
type Translation struct {
	Database        string `json:"database"`
	URL             string `json:"url"`
	TranslatedQuery string `json:"translatedQuery"`
	Annotations     string `json:"annotations"`
}

type database struct {
	name        string
	url         string
	annotations string
}

var databases = map[syntax.Syntax]database{
	syntax.SyntaxWoS: {
		name: "Web of Science - Core Collection",
		url:  "https://www.webofscience.com/wos/woscc/advanced-search",
		annotations: "Paste the translated string without quotation marks " +
			"into the advanced search free text field.",
	},
	syntax.SyntaxPubMed: {
		name: "PubMed",
		url:  "https://pubmed.ncbi.nlm.nih.gov/advanced/",
		annotations: "Paste the translated string without quotation marks " +
			`into the "Query Box" free text field.`,
	},
	syntax.SyntaxIEEE: {
		name: "IEEE Xplore",
		url:  "https://ieeexplore.ieee.org/search/advanced/command",
		annotations: "Paste the translated string " +
			"without quotation marks into the command search free text field.",
	},
}

// ForSyntax builds the record for a query already translated to s. Only
// database syntaxes have records; pre-notation does not.
func ForSyntax(s syntax.Syntax, translated string) (Translation, error) {
	db, ok := databases[s]
	if !ok {
		return Translation{}, fmt.Errorf("%w: no translation record for %q", syntax.ErrUnsupportedSyntax, s)
	}
	return Translation{
		Database:        db.name,
		URL:             db.url,
		TranslatedQuery: translated,
		Annotations:     db.annotations,
	}, nil
}

// Marshal encodes rec as JSON indented by four spaces. HTML characters are
// not escaped, so the query text stays pasteable.
func Marshal(rec Translation) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(rec); err != nil {
		return nil, fmt.Errorf("encoding translation record: %w", err)
	}
	return buf.Bytes(), nil
}

// Write stores rec at path, creating parent directories. An existing file
// is only overwritten when replace is set.
func Write(path string, rec Translation, replace bool) error {
	data, err := Marshal(rec)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !replace {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return fmt.Errorf("opening %s: %w", path, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// WriteQuery translates q to s and writes its record to path. Nothing is
// written when translation fails.
func WriteQuery(path string, q *query.Query, s syntax.Syntax, replace bool) (Translation, error) {
	translated, err := syntax.Translate(q, s)
	if err != nil {
		return Translation{}, err
	}
	rec, err := ForSyntax(s, translated)
	if err != nil {
		return Translation{}, err
	}
	if err := Write(path, rec, replace); err != nil {
		return Translation{}, err
	}
	return rec, nil
}
