package numbering

import (
	"regexp"
	"strconv"
)

// DefaultFormat renders the bare page number.
const DefaultFormat = "{}"

var placeholderRegex = regexp.MustCompile(`\{\{|\}\}|\{(\w*)\}`)

// Format expands the stamp text template for a page.
//
// Supported placeholders:
//   - {} - the next positional value: the page number first, then the total
//   - {0} - the page number
//   - {1} - the total page count
//   - {page} - the page number
//   - {total} - the total page count
//
// {{ and }} are literal braces. Unknown placeholders are kept as-is.
func Format(template string, number, total int) string {
	values := [2]string{strconv.Itoa(number), strconv.Itoa(total)}
	next := 0

	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		switch match {
		case "{{":
			return "{"
		case "}}":
			return "}"
		}

		switch key := match[1 : len(match)-1]; key {
		case "":
			if next >= len(values) {
				return match
			}
			next++
			return values[next-1]
		case "0", "page":
			return values[0]
		case "1", "total":
			return values[1]
		default:
			return match
		}
	})
}
