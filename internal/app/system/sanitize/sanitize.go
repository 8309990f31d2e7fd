// Package sanitize strips markup from user-submitted text before it is
// stored. Discussion titles and bodies come straight from the mobile
// client and are re-rendered to other users.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
