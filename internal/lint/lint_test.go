package lint

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLint_CorrectsAndReports(t *testing.T) {
	v := NewValidator("TI (cancer and tumor) AND XY lung", "")

	report, err := v.Lint(false)
	require.NoError(t, err)

	assert.Equal(t, "TI (cancer AND tumor) AND AB lung", report.Query)
	assert.False(t, report.Fatal)
	require.Len(t, report.Messages, 2)

	assert.Equal(t, LevelWarning, report.Messages[0].Level)
	assert.Equal(t, Position{Start: 11, End: 14}, *report.Messages[0].Pos)
	assert.Equal(t, LevelError, report.Messages[1].Level)
	assert.Equal(t, Position{Start: 26, End: 28}, *report.Messages[1].Pos)
}

func TestLint_StopsOnFatal(t *testing.T) {
	v := NewValidator("(cancer or XY lung", "")

	report, err := v.Lint(false)
	require.NoError(t, err)

	assert.True(t, report.Fatal)
	assert.Equal(t, "(cancer OR XY lung", report.Query, "field filter never ran")
	require.Len(t, report.Messages, 2)
	assert.Equal(t, LevelFatal, report.Messages[1].Level)
}

func TestLint_StrictIncludesGeneralAndResolution(t *testing.T) {
	v := NewValidator("XY cancer", "Title", WithResolver(StaticResolver("TI")))

	report, err := v.Lint(true)
	require.NoError(t, err)

	assert.Equal(t, "TI cancer", report.Query)
	require.Len(t, report.Messages, 2)
	assert.Equal(t, LevelWarning, report.Messages[0].Level)
	assert.Contains(t, report.Messages[0].Msg, "Content in Search Fields")
	assert.Contains(t, report.Messages[1].Msg, "replaced with 'TI'")
}

func TestLint_StrictAbandonPropagates(t *testing.T) {
	v := NewValidator("XY cancer", "", WithResolver(StaticResolver("no")), WithMaxAttempts(1))

	_, err := v.Lint(true)
	assert.ErrorIs(t, err, ErrResolutionAbandoned)
}

func TestLint_CleanQuery(t *testing.T) {
	report, err := NewValidator(`TI "heart attack" OR AB stroke`, "").Lint(false)
	require.NoError(t, err)

	assert.Empty(t, report.Messages)
	assert.NotNil(t, report.Messages)
}

func TestReportJSON(t *testing.T) {
	report := Report{
		Query: "a AND b",
		Messages: []Message{
			{Level: LevelWarning, Msg: "w", Pos: &Position{Start: 2, End: 5}},
			{Level: LevelFatal, Msg: "f"},
		},
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"query": "a AND b",
		"messages": [
			{"level": "Warning", "msg": "w", "pos": {"start": 2, "end": 5}},
			{"level": "Fatal", "msg": "f"}
		],
		"fatal": false
	}`, string(data))
}

func TestListValidatorNotImplemented(t *testing.T) {
	lv := &ListValidator{QueryList: "S1 OR S2"}

	_, err := lv.CheckStringConnector()
	assert.ErrorIs(t, err, ErrNotImplemented)

	_, err = lv.CheckComments()
	assert.ErrorIs(t, err, ErrNotImplemented)
}
