package pdf

import (
	"testing"

	"github.com/digitorus/pdfnumber/internal/testpdf"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected bool // whether parsing should succeed
		name     string
	}{
		{
			input:    "D:20240101120000+01'00'",
			expected: true,
			name:     "date with positive timezone offset",
		},
		{
			input:    "D:20240101120000-05'00'",
			expected: true,
			name:     "date with negative timezone offset",
		},
		{
			input:    "D:20240101120000Z",
			expected: true,
			name:     "date in UTC",
		},
		{
			input:    "D:20240101120000",
			expected: true,
			name:     "date without timezone",
		},
		{
			input:    "invalid date",
			expected: false,
			name:     "invalid date format",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := parseDate(test.input)
			if test.expected && err != nil {
				t.Errorf("Expected parsing to succeed, but got error: %v", err)
			}
			if !test.expected && err == nil {
				t.Errorf("Expected parsing to fail, but got result: %s", result)
			}
		})
	}
}

func TestDocumentInfo(t *testing.T) {
	info := DocumentInfo(open(t, testpdf.Simple(2)))
	if info.Pages != 2 {
		t.Errorf("Expected 2 pages, got %d", info.Pages)
	}
	if info.Producer != "testpdf" {
		t.Errorf("Expected producer testpdf, got %q", info.Producer)
	}
	if info.ModDate != nil {
		t.Errorf("Expected no ModDate, got %v", info.ModDate)
	}

	if empty := DocumentInfo(nil); empty.Pages != 0 {
		t.Errorf("Expected no pages without a reader, got %d", empty.Pages)
	}
}
