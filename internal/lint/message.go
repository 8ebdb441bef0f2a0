package lint

import (
	"fmt"
	"unicode/utf8"
)

// Level is the severity of a linter finding.
type Level string

const (
	// LevelWarning marks an automatic, informational fix.
	LevelWarning Level = "Warning"
	// LevelError marks a semantically significant problem that was fixed
	// automatically or needed resolution.
	LevelError Level = "Error"
	// LevelFatal means the string cannot be processed further.
	LevelFatal Level = "Fatal"
)

// Position is a half-open character span [Start, End).
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (p Position) String() string {
	return fmt.Sprintf("%d-%d", p.Start, p.End)
}

// Message is one linter finding.
type Message struct {
	Level Level     `json:"level"`
	Msg   string    `json:"msg"`
	Pos   *Position `json:"pos,omitempty"`
}

func (m Message) String() string {
	if m.Pos != nil {
		return fmt.Sprintf("%s [%s]: %s", m.Level, m.Pos, m.Msg)
	}
	return fmt.Sprintf("%s: %s", m.Level, m.Msg)
}

// HasFatal reports whether any message is Fatal.
func HasFatal(msgs []Message) bool {
	for _, m := range msgs {
		if m.Level == LevelFatal {
			return true
		}
	}
	return false
}

// charSpan converts the byte span [start, end) of s to character offsets.
func charSpan(s string, start, end int) *Position {
	first := utf8.RuneCountInString(s[:start])
	return &Position{
		Start: first,
		End:   first + utf8.RuneCountInString(s[start:end]),
	}
}
