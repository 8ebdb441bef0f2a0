package lint

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	proximityRegex = regexp.MustCompile(`^[NW]\d+$`)
	fieldRegex     = regexp.MustCompile(`^[A-Z]{2}$`)
)

// Token is a categorized lexical unit of a raw query.
type Token struct {
	Category Category
	Text     string
	Pos      Position
}

// lexer splits EBSCO query text. Offsets are counted in characters.
type lexer struct {
	input []rune
	pos   int
}

// Tokenize splits query into tokens:
//
//	( )            PARENTHESIS_OPEN, PARENTHESIS_CLOSED
//	AND OR NOT     LOGIC_OPERATOR (any case)
//	N5 W3          PROXIMITY_OPERATOR
//	TI AB ...      FIELD (any two upper-case letters)
//	"a phrase"     SEARCH_TERM
//	other words    SEARCH_TERM
func Tokenize(query string) []Token {
	l := &lexer{input: []rune(query)}
	var tokens []Token
	for {
		tok, ok := l.next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func (l *lexer) next() (Token, bool) {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return Token{}, false
	}

	start := l.pos
	switch l.input[l.pos] {
	case '(':
		l.pos++
		return l.token(CategoryParenthesisOpen, start), true
	case ')':
		l.pos++
		return l.token(CategoryParenthesisClosed, start), true
	case '"':
		l.readPhrase()
		return l.token(CategorySearchTerm, start), true
	}

	for l.pos < len(l.input) && !isBoundary(l.input[l.pos]) {
		l.pos++
	}
	return l.token(classifyWord(string(l.input[start:l.pos])), start), true
}

// readPhrase consumes a quoted phrase including both quotes. An
// unterminated phrase runs to the end of the input.
func (l *lexer) readPhrase() {
	l.pos++
	for l.pos < len(l.input) && l.input[l.pos] != '"' {
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++
	}
}

func (l *lexer) token(c Category, start int) Token {
	return Token{
		Category: c,
		Text:     string(l.input[start:l.pos]),
		Pos:      Position{Start: start, End: l.pos},
	}
}

func isBoundary(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')' || r == '"'
}

func classifyWord(word string) Category {
	switch strings.ToUpper(word) {
	case "AND", "OR", "NOT":
		return CategoryLogicOperator
	}
	if proximityRegex.MatchString(word) {
		return CategoryProximityOperator
	}
	if fieldRegex.MatchString(word) {
		return CategoryField
	}
	return CategorySearchTerm
}
