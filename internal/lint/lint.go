package lint

import "errors"

// ErrNotImplemented is returned by checks reserved for later versions.
var ErrNotImplemented = errors.New("not yet implemented")

// Report is the outcome of Lint.
type Report struct {
	Query    string    `json:"query"`
	Messages []Message `json:"messages"`
	Fatal    bool      `json:"fatal"`
}

// Lint runs every check in order: operators, parentheses, general search
// field, field codes, token sequence. It stops after the parenthesis check
// if that finding is Fatal. Report.Query holds the corrected query.
func (v *Validator) Lint(strict bool) (Report, error) {
	report := Report{Messages: []Message{}}

	report.Messages = append(report.Messages, v.CheckOperator()...)

	parens := v.CheckParenthesis()
	report.Messages = append(report.Messages, parens...)
	if HasFatal(parens) {
		report.Query = v.query
		report.Fatal = true
		return report, nil
	}

	report.Messages = append(report.Messages, v.CheckSearchFieldGeneral(strict)...)

	fields, err := v.FilterSearchField(strict)
	if err != nil {
		return Report{}, err
	}
	report.Messages = append(report.Messages, fields...)
	report.Messages = append(report.Messages, v.CheckTokenSequence()...)

	report.Query = v.query
	return report, nil
}

// ListValidator checks a list of numbered queries (S1, S2, ...) combined
// into one search history.
type ListValidator struct {
	QueryList          string
	SearchFieldGeneral string
}

// CheckStringConnector will rewrite connectors such as "#1 OR #2" to
// "S1 OR S2".
func (v *ListValidator) CheckStringConnector() ([]Message, error) {
	return nil, ErrNotImplemented
}

// CheckComments will move comments out of the query list.
func (v *ListValidator) CheckComments() ([]Message, error) {
	return nil, ErrNotImplemented
}
