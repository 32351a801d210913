package usecase

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validEntry = `{
	"title": "Data Analyst",
	"match_score": 82,
	"description": "Turn raw data into insight.",
	"skills": ["SQL", "Python", "Statistics"],
	"reasoning": "Strong analytical signals in the quiz."
}`

func arrayOf(n int) string {
	entries := make([]json.RawMessage, n)
	for i := range entries {
		entries[i] = json.RawMessage(validEntry)
	}
	b, _ := json.Marshal(entries)
	return string(b)
}

func TestCleanModelResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[{"a":1}]`, `[{"a":1}]`},
		{"json fence", "```json\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"bare fence", "```\n[{\"a\":1}]\n```", `[{"a":1}]`},
		{"surrounding whitespace", "  [1,2]  \n", "[1,2]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanModelResponse(tc.in))
		})
	}
}

func TestParseRecommendationsValid(t *testing.T) {
	recs, err := ParseRecommendations(arrayOf(3))
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Data Analyst", recs[0].Title)
	assert.Equal(t, 82, recs[0].MatchScore)
	assert.Equal(t, []string{"SQL", "Python", "Statistics"}, recs[0].Skills)
}

func TestParseRecommendationsStripsFence(t *testing.T) {
	recs, err := ParseRecommendations("```json\n" + arrayOf(3) + "\n```")
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestParseRecommendationsTruncatesToThree(t *testing.T) {
	recs, err := ParseRecommendations(arrayOf(5))
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestParseRecommendationsAcceptsShortList(t *testing.T) {
	recs, err := ParseRecommendations(arrayOf(2))
	require.NoError(t, err)
	assert.Len(t, recs, 2)
}

func TestParseRecommendationsRejects(t *testing.T) {
	missingReasoning := `[{"title":"X","match_score":80,"description":"d","skills":["a"]}]`
	emptySkills := `[{"title":"X","match_score":80,"description":"d","skills":[],"reasoning":"r"}]`
	floatScore := `[{"title":"X","match_score":80.5,"description":"d","skills":["a"],"reasoning":"r"}]`
	emptyTitle := `[{"title":"","match_score":80,"description":"d","skills":["a"],"reasoning":"r"}]`

	cases := []struct {
		name string
		in   string
	}{
		{"not json", "I cannot help with that."},
		{"malformed json", `[{"title": "X"`},
		{"object not array", `{"title":"X"}`},
		{"empty array", `[]`},
		{"missing reasoning", missingReasoning},
		{"empty skills", emptySkills},
		{"fractional score", floatScore},
		{"empty title", emptyTitle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recs, err := ParseRecommendations(tc.in)
			assert.Error(t, err, fmt.Sprintf("input %q should be rejected", tc.in))
			assert.Nil(t, recs)
		})
	}
}
