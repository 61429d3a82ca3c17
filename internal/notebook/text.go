package notebook

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

// PlainText strips any HTML markup from flashcard content and decodes
// entities, leaving the text suitable for an external service prompt.
func PlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}
