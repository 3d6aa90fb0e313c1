package records

import (
	"regexp"
	"strings"
)

var placeholderRE = regexp.MustCompile(`\{(.*?)\}`)

// RenderTemplate substitutes every {field} placeholder in a campaign's
// contact template with the record's field value. Unknown fields
// render as the empty string. No recursion, no conditionals.
func RenderTemplate(template string, rec Record) string {
	return placeholderRE.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.TrimSpace(match[1 : len(match)-1])
		return rec.Field(key)
	})
}
