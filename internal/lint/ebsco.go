package lint

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// defaultFieldReplacement is used for unsupported fields outside strict mode.
const defaultFieldReplacement = "AB"

var (
	ErrNoResolver          = errors.New("strict field resolution requires a resolver")
	ErrResolutionAbandoned = errors.New("field resolution abandoned")
)

// Two upper-case letters as a whole word. "OR" is excluded in code since
// RE2 has no lookahead.
var fieldCodeRegex = regexp.MustCompile(`\b[A-Z]{2}\b`)

var supportedFields = map[string]struct{}{
	"TI": {}, "AU": {}, "TX": {}, "AB": {}, "SO": {}, "SU": {},
	"IS": {}, "IB": {}, "DE": {}, "LA": {}, "KW": {},
}

// SupportedFields returns the EBSCO field codes the linter accepts, sorted.
func SupportedFields() []string {
	out := make([]string, 0, len(supportedFields))
	for f := range supportedFields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// IsSupportedField reports whether code is an accepted EBSCO field code.
func IsSupportedField(code string) bool {
	_, ok := supportedFields[code]
	return ok
}

// Resolver supplies a replacement for an unsupported field code. It is
// called repeatedly for the same field until it returns a supported code,
// an error, or the Validator's attempt cap is reached.
type Resolver func(field string) (string, error)

// StaticResolver answers every request with the given replacements in
// turn, repeating the last one.
func StaticResolver(replacements ...string) Resolver {
	i := 0
	return func(string) (string, error) {
		if len(replacements) == 0 {
			return "", ErrNoResolver
		}
		r := replacements[min(i, len(replacements)-1)]
		i++
		return r, nil
	}
}

// CheckSearchFieldGeneral reports one Warning when strict is set and the
// general "Search Fields" annotation has content.
func (v *Validator) CheckSearchFieldGeneral(strict bool) []Message {
	if v.searchFieldGeneral == "" || !strict {
		return nil
	}
	return []Message{{
		Level: LevelWarning,
		Msg: fmt.Sprintf("Content in Search Fields: '%s'\n"+
			"If content is applicable in search, please add to search_terms in the search-string",
			v.searchFieldGeneral),
	}}
}

// FilterSearchField replaces field codes that EBSCO does not support.
//
// Outside strict mode each unsupported code becomes AB. In strict mode the
// Resolver is asked for a replacement until it returns a supported code; if
// that takes more than the attempt cap the query is left unchanged and
// ErrResolutionAbandoned is returned. Either way one Error is reported per
// replaced field.
func (v *Validator) FilterSearchField(strict bool) ([]Message, error) {
	if strict && v.resolve == nil {
		return nil, ErrNoResolver
	}

	var msgs []Message
	corrected := []byte(v.query)

	for _, loc := range fieldCodeRegex.FindAllStringIndex(v.query, -1) {
		field := v.query[loc[0]:loc[1]]
		if field == "OR" || IsSupportedField(field) || !isWholeWord(v.query, loc[0], loc[1]) {
			continue
		}

		if !strict {
			copy(corrected[loc[0]:loc[1]], defaultFieldReplacement)
			msgs = append(msgs, Message{
				Level: LevelError,
				Msg:   fmt.Sprintf("search-field-unsupported: '%s' automatically changed to Abstract AB.", field),
				Pos:   charSpan(v.query, loc[0], loc[1]),
			})
			continue
		}

		replacement, err := v.resolveField(field)
		if err != nil {
			return nil, err
		}
		copy(corrected[loc[0]:loc[1]], replacement)
		msgs = append(msgs, Message{
			Level: LevelError,
			Msg:   fmt.Sprintf("search-field-unsupported: '%s' replaced with '%s'.", field, replacement),
			Pos:   charSpan(v.query, loc[0], loc[1]),
		})
	}

	v.query = string(corrected)
	return msgs, nil
}

func (v *Validator) resolveField(field string) (string, error) {
	for attempt := 1; attempt <= v.maxAttempts; attempt++ {
		replacement, err := v.resolve(field)
		if err != nil {
			return "", fmt.Errorf("resolving field '%s': %w", field, err)
		}
		replacement = strings.TrimSpace(replacement)
		if IsSupportedField(replacement) {
			v.logger.Debug("search field replaced", "field", field, "replacement", replacement, "attempt", attempt)
			return replacement, nil
		}
		v.logger.Debug("replacement is not a supported field", "field", field, "replacement", replacement, "attempt", attempt)
	}
	return "", fmt.Errorf("%w: no supported replacement for '%s' after %d attempts",
		ErrResolutionAbandoned, field, v.maxAttempts)
}
