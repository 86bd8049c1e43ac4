package jotform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeSubmission(t *testing.T) {
	params := encodeSubmission(map[string]any{
		"1_first": "Jane",
		"2":       "jane@example.com",
		"3_area":  float64(415),
	})

	assert.Equal(t, "Jane", params.Get("submission[1][first]"))
	assert.Equal(t, "jane@example.com", params.Get("submission[2]"))
	assert.Equal(t, "415", params.Get("submission[3][area]"))
}

func TestEncodeFormDefinition(t *testing.T) {
	params := encodeFormDefinition(map[string]any{
		"properties": map[string]any{"title": "My Form"},
		"questions": map[string]any{
			"1": map[string]any{"type": "control_textbox", "text": "Name", "order": float64(1)},
		},
	})

	assert.Equal(t, "My Form", params.Get("properties[title]"))
	assert.Equal(t, "control_textbox", params.Get("questions[1][type]"))
	assert.Equal(t, "Name", params.Get("questions[1][text]"))
	assert.Equal(t, "1", params.Get("questions[1][order]"))
}

func TestEncodeFormDefinition_QuestionList(t *testing.T) {
	params := encodeFormDefinition(map[string]any{
		"questions": []any{
			map[string]any{"type": "control_head", "text": "Header"},
			map[string]any{"type": "control_textbox", "text": "Name"},
		},
	})

	assert.Equal(t, "control_head", params.Get("questions[0][type]"))
	assert.Equal(t, "control_textbox", params.Get("questions[1][type]"))
}

func TestStringify(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"text", "text"},
		{float64(3), "3"},
		{float64(3.5), "3.5"},
		{true, "true"},
		{nil, "<nil>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stringify(tt.in))
	}
}
