package lint

import (
	"fmt"
	"slices"
)

// Category is the grammatical class of a token in a raw query.
type Category string

const (
	CategoryField             Category = "FIELD"
	CategorySearchTerm        Category = "SEARCH_TERM"
	CategoryLogicOperator     Category = "LOGIC_OPERATOR"
	CategoryProximityOperator Category = "PROXIMITY_OPERATOR"
	CategoryParenthesisOpen   Category = "PARENTHESIS_OPEN"
	CategoryParenthesisClosed Category = "PARENTHESIS_CLOSED"
)

// validTransitions lists the categories allowed to follow each category.
var validTransitions = map[Category][]Category{
	CategoryField: {
		CategorySearchTerm,
		CategoryParenthesisOpen,
	},
	// consecutive search terms are joined into one phrase
	CategorySearchTerm: {
		CategorySearchTerm,
		CategoryLogicOperator,
		CategoryProximityOperator,
		CategoryParenthesisClosed,
	},
	CategoryLogicOperator: {
		CategorySearchTerm,
		CategoryField,
		CategoryParenthesisOpen,
	},
	CategoryProximityOperator: {
		CategorySearchTerm,
		CategoryParenthesisOpen,
		CategoryField,
	},
	CategoryParenthesisOpen: {
		CategoryField,
		CategorySearchTerm,
		CategoryParenthesisOpen,
	},
	CategoryParenthesisClosed: {
		CategoryParenthesisClosed,
		CategoryLogicOperator,
		CategoryProximityOperator,
	},
}

// ValidateTokenPosition checks that a token of category current may follow
// a token of category previous. An empty previous marks the first token
// and always passes. A disallowed pair, or an unknown previous category,
// yields one Error at pos (which may be nil).
func ValidateTokenPosition(current, previous Category, pos *Position) []Message {
	if previous == "" {
		return nil
	}
	if slices.Contains(validTransitions[previous], current) {
		return nil
	}
	return []Message{{
		Level: LevelError,
		Msg:   fmt.Sprintf("Invalid token sequence: '%s' followed by '%s'", previous, current),
		Pos:   pos,
	}}
}

// CheckTokenSequence tokenizes the current query and validates each
// adjacent token pair.
func (v *Validator) CheckTokenSequence() []Message {
	var msgs []Message
	var previous Category
	for _, tok := range Tokenize(v.query) {
		pos := tok.Pos
		msgs = append(msgs, ValidateTokenPosition(tok.Category, previous, &pos)...)
		previous = tok.Category
	}
	return msgs
}
