package numbering

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		template string
		number   int
		total    int
		want     string
	}{
		{"{}", 3, 10, "3"},
		{"Page {} of {}", 3, 10, "Page 3 of 10"},
		{"{1} - {0}", 3, 10, "10 - 3"},
		{"{page}/{total}", 1, 2, "1/2"},
		{"- {} -", -2, 5, "- -2 -"},
		{"{} {} {}", 1, 2, "1 2 {}"},
		{"{name}", 1, 2, "{name}"},
		{"no placeholders", 1, 2, "no placeholders"},
		{"", 1, 2, ""},
		{"{{}}", 1, 10, "{}"},
		{"{{{}}}", 7, 10, "{7}"},
		{"{{page}} {page}", 2, 3, "{page} 2"},
		{"{:03}", 1, 10, "{:03}"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.template, tt.number, tt.total))
		})
	}
}

func ExampleFormat() {
	fmt.Println(Format("Page {} of {}", 4, 12))
	// Output: Page 4 of 12
}

func ExampleSequence() {
	cfg := Config{
		Start:  1,
		Ignore: NewPageSet(2),
		Skip:   NewPageSet(4),
	}
	for page, d := range Sequence(Indices(5), cfg) {
		fmt.Println(page, d)
	}
	// Output:
	// 0 Stamp(1)
	// 1 Stamp(2)
	// 2 Skip
	// 3 Stamp(3)
	// 4 Skip
}
