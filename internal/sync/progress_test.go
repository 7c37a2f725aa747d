package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProgressPercent(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantCleaned string
		wantPercent int
		wantOK      bool
	}{
		{
			name:        "trailing percent is split off",
			input:       "Rush 01 42",
			wantCleaned: "Rush 01",
			wantPercent: 42,
			wantOK:      true,
		},
		{
			name:        "no digits keeps the name verbatim",
			input:       "Libft",
			wantCleaned: "Libft",
			wantOK:      false,
		},
		{
			name:        "name that is only a number strips to empty",
			input:       "42",
			wantCleaned: "",
			wantPercent: 42,
			wantOK:      true,
		},
		{
			name:        "values above 100 are clamped",
			input:       "Exam 999",
			wantCleaned: "Exam",
			wantPercent: 100,
			wantOK:      true,
		},
		{
			name:        "whitespace after the digits is tolerated",
			input:       "Rush 02 50  ",
			wantCleaned: "Rush 02",
			wantPercent: 50,
			wantOK:      true,
		},
		{
			name:        "digits in the middle do not count",
			input:       "42 Network",
			wantCleaned: "42 Network",
			wantOK:      false,
		},
		{
			name:   "empty name",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, percent, ok := ParseProgressPercent(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCleaned, cleaned)
			if tt.wantOK {
				assert.Equal(t, tt.wantPercent, percent)
			}
		})
	}
}
