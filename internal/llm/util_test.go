package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "fenced with language tag",
			input: "```json\n{\"persons\": [\"Jane Doe\"]}\n```",
			want:  `{"persons": ["Jane Doe"]}`,
		},
		{
			name:  "fence followed by prose",
			input: "```json\n{\"a\": 1}\n```\nLet me know if you need more.",
			want:  `{"a": 1}`,
		},
		{
			name:  "bare fence with chatter inside",
			input: "```\nHere is the result {\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
		{
			name:  "chatter before fence",
			input: "Here are the entities I found:\n```json\n{\"places\": [\"Boston\"]}\n```",
			want:  `{"places": ["Boston"]}`,
		},
		{
			name:  "braces inside strings",
			input: `Here you go: {"persons": ["J. {Jay} Doe"], "places": ["}"]} thanks`,
			want:  `{"persons": ["J. {Jay} Doe"], "places": ["}"]}`,
		},
		{
			name:  "escaped quote before brace",
			input: `{"a": "say \"}\" now"} trailing`,
			want:  `{"a": "say \"}\" now"}`,
		},
		{
			name:  "array with chatter",
			input: `Sure! ["Go", "Rust"] done`,
			want:  `["Go", "Rust"]`,
		},
		{
			name:  "surrounding whitespace",
			input: "  {\"a\":1}  \n",
			want:  `{"a":1}`,
		},
		{
			name:  "no JSON",
			input: "I could not find any entities.",
			want:  "I could not find any entities.",
		},
		{
			name:  "unbalanced object returned as is",
			input: `{"a": [1, 2`,
			want:  `{"a": [1, 2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

func TestCleanJSONBlock_EntityReplyDecodes(t *testing.T) {
	reply := "Sure! Based on the resume, these are the entities:\n\n```json\n" +
		"{\"persons\": [\"Jane Doe\"], \"places\": [\"Austin, TX\"], \"languages\": [\"Spanish\"]}\n" +
		"```\n\nNote: no other names were found."

	var entities struct {
		Persons   []string `json:"persons"`
		Places    []string `json:"places"`
		Languages []string `json:"languages"`
	}
	require.NoError(t, json.Unmarshal([]byte(CleanJSONBlock(reply)), &entities))

	assert.Equal(t, []string{"Jane Doe"}, entities.Persons)
	assert.Equal(t, []string{"Austin, TX"}, entities.Places)
	assert.Equal(t, []string{"Spanish"}, entities.Languages)
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"a": {"b": 1}}`, extractJSONObject(`{"a": {"b": 1}} tail`))
	assert.Equal(t, `{"s": "{"}`, extractJSONObject(`{"s": "{"}}`))
	assert.Empty(t, extractJSONObject(""))
	assert.Empty(t, extractJSONObject(`x{"a": 1}`))
	assert.Empty(t, extractJSONObject(`{"a": 1`))
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `[[1], [2]]`, extractJSONArray(`[[1], [2]] tail`))
	assert.Equal(t, `["]"]`, extractJSONArray(`["]"] x`))
	assert.Empty(t, extractJSONArray(""))
	assert.Empty(t, extractJSONArray(`[1, 2`))
}
