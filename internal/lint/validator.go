package lint

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const defaultMaxAttempts = 5

var (
	faultyOperatorRegex = regexp.MustCompile(`(?i)\b(?:and|or|not)\b`)
	parenthesisRegex    = regexp.MustCompile(`[()]`)
)

// Validator lints one raw query string.
type Validator struct {
	query              string
	searchFieldGeneral string
	resolve            Resolver
	maxAttempts        int
	logger             *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithResolver sets the strategy used to replace unsupported search fields
// in strict mode.
func WithResolver(r Resolver) Option {
	return func(v *Validator) { v.resolve = r }
}

// WithMaxAttempts caps how often the resolver is asked for one field.
// Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.maxAttempts = n
		}
	}
}

// WithLogger sets the logger for resolution diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// NewValidator creates a Validator for query. searchFieldGeneral is the
// free-text "Search Fields" annotation that accompanies the query; it may
// be empty.
func NewValidator(query, searchFieldGeneral string, opts ...Option) *Validator {
	v := &Validator{
		query:              query,
		searchFieldGeneral: searchFieldGeneral,
		maxAttempts:        defaultMaxAttempts,
		logger:             slog.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Query returns the query string including every correction applied so far.
func (v *Validator) Query() string {
	return v.query
}

// CheckOperator capitalizes boolean operators written in lower or mixed
// case and reports one Warning per rewritten operator. Running it again on
// the corrected query reports nothing.
func (v *Validator) CheckOperator() []Message {
	var msgs []Message
	corrected := []byte(v.query)

	for _, loc := range faultyOperatorRegex.FindAllStringIndex(v.query, -1) {
		if !isWholeWord(v.query, loc[0], loc[1]) {
			continue
		}
		operator := v.query[loc[0]:loc[1]]
		upper := strings.ToUpper(operator)
		if operator == upper {
			continue
		}
		copy(corrected[loc[0]:loc[1]], upper)
		msgs = append(msgs, Message{
			Level: LevelWarning,
			Msg:   fmt.Sprintf("Operator '%s' automatically capitalized", operator),
			Pos:   charSpan(v.query, loc[0], loc[1]),
		})
	}

	v.query = string(corrected)
	return msgs
}

// CheckParenthesis reports a single Fatal message when the numbers of
// opening and closing parentheses differ. It does not locate the
// unbalanced character.
func (v *Validator) CheckParenthesis() []Message {
	open, closed := 0, 0
	for _, p := range parenthesisRegex.FindAllString(v.query, -1) {
		if p == "(" {
			open++
		} else {
			closed++
		}
	}

	if open == closed {
		return nil
	}
	return []Message{{
		Level: LevelFatal,
		Msg:   fmt.Sprintf("Unbalanced parentheses: open = %d, close = %d", open, closed),
	}}
}

// isWholeWord reports whether the byte span [start, end) of s is not joined
// to a letter or digit on either side. RE2's \b only knows ASCII word
// characters, so "noté" would otherwise match "not".
func isWholeWord(s string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(r) {
			return false
		}
	}
	if end < len(s) {
		if r, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
