package status

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"gitlab.com/tozd/go/errors"
)

func TestFormatSummary(t *testing.T) {
	// Disable color so assertions see plain text
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	tests := []struct {
		name    string
		summary Summary
		want    string
	}{
		{
			name: "multiple_replacements",
			summary: Summary{
				InputFile:    "in.sql",
				OutputFile:   "out.sql",
				Encoding:     "utf-8",
				Replacements: 5,
			},
			want: "✓ in.sql → out.sql (5 columns anonymized, utf-8)",
		},
		{
			name: "single_replacement",
			summary: Summary{
				InputFile:    "in.sql",
				OutputFile:   "out.sql",
				Encoding:     "utf-8",
				Replacements: 1,
			},
			want: "✓ in.sql → out.sql (1 column anonymized, utf-8)",
		},
		{
			name: "no_replacements",
			summary: Summary{
				InputFile:    "in.sql",
				OutputFile:   "out.sql",
				Encoding:     "ISO-8859-1",
				Replacements: 0,
			},
			want: "- in.sql → out.sql (no matching columns, copied unchanged, ISO-8859-1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSummary(tt.summary))
		})
	}
}

func TestFormatError(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	assert.Empty(t, FormatError("io", nil))
	assert.Equal(t, "✗ not found: input file not found",
		FormatError("not found", errors.Base("input file not found")))
}
