package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// The panel renders stored text straight into its DOM, so everything a
// user types is stripped to plain text before it is persisted.
var strictPolicy = bluemonday.StrictPolicy()

// Text removes all HTML tags and attributes and trims whitespace.
func Text(s string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}
