package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title      string `json:"title" validate:"required,max=10"`
	Week       int    `json:"week" validate:"gte=1,lte=52"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	StartDate  string `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		input    sample
		expected string
	}{
		{
			name:  "Valid",
			input: sample{Title: "Run", Week: 52, Difficulty: "hard", StartDate: "2025-02-10"},
		},
		{
			name:     "Missing title and week out of range",
			input:    sample{Week: 53},
			expected: "title is required; week must be at most 52",
		},
		{
			name:     "Long title",
			input:    sample{Title: "A very long title", Week: 1},
			expected: "title must not exceed 10 characters",
		},
		{
			name:     "Unknown difficulty",
			input:    sample{Title: "Run", Week: 1, Difficulty: "insane"},
			expected: "difficulty must be one of: easy medium hard",
		},
		{
			name:     "Bad date",
			input:    sample{Title: "Run", Week: 1, StartDate: "10/02/2025"},
			expected: "start_date must be a date in format 2006-01-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.expected == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.expected)
		})
	}
}
