package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/score-report/internal/service"
)

func TestParseScores(t *testing.T) {
	want := []service.SubjectScore{
		{Subject: "國語文", Score: 70},
		{Subject: "數學", Score: 85.5},
		{Subject: "英語文", Score: 0},
	}

	cases := []struct {
		name    string
		payload string
	}{
		{name: "object keeps document order", payload: `{"國語文": 70, "數學": 85.5, "英語文": 0}`},
		{name: "array of pairs", payload: `[{"subject": "國語文", "score": 70}, {"subject": "數學", "score": 85.5}, {"subject": "英語文", "score": 0}]`},
		{name: "wrapped object", payload: `{"scores": {"國語文": 70, "數學": 85.5, "英語文": 0}}`},
		{name: "wrapped array", payload: `{"scores": [{"subject": "國語文", "score": 70}, {"subject": "數學", "score": 85.5}, {"score": 0, "subject": "英語文"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseScores([]byte(tc.payload))

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseScores_LeavesRangeAndDuplicatesToTheBuilder(t *testing.T) {
	got, err := ParseScores([]byte(`{"數學": 120, "數學": -3}`))

	require.NoError(t, err)
	assert.Equal(t, []service.SubjectScore{{Subject: "數學", Score: 120}, {Subject: "數學", Score: -3}}, got)
}

func TestParseScores_Empty(t *testing.T) {
	got, err := ParseScores([]byte(`{}`))

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseScores_Malformed(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		msg     string
	}{
		{name: "not json", payload: `{"數學": `, msg: "invalid JSON"},
		{name: "scalar", payload: `85`, msg: "expected an object or an array"},
		{name: "string score", payload: `{"數學": "85"}`, msg: `score for "數學" is String`},
		{name: "null score", payload: `{"數學": null}`, msg: "not a number"},
		{name: "array entry not object", payload: `[85]`, msg: "entry 0 is Number"},
		{name: "array entry missing subject", payload: `[{"score": 85}]`, msg: "entry 0 has no subject"},
		{name: "array entry missing score", payload: `[{"subject": "數學", "score": 85}, {"subject": "化學"}]`, msg: `entry 1 ("化學")`},
		{name: "wrapper with sibling subject", payload: `{"scores": {"數學": 80}, "國語文": 70}`, msg: `"scores" must be the only key, found 1 more`},
		{name: "wrapped array with sibling", payload: `{"student": "A", "scores": [{"subject": "數學", "score": 80}]}`, msg: "must be the only key"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseScores([]byte(tc.payload))

			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestReadScores(t *testing.T) {
	got, err := ReadScores(strings.NewReader(`{"化學": 91}`))

	require.NoError(t, err)
	assert.Equal(t, []service.SubjectScore{{Subject: "化學", Score: 91}}, got)
}
