// Package normalize provides canonical forms for user-entered values before
// they are stored or compared.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a display name and collapses interior whitespace runs to a
// single space.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Category maps a group category to its canonical lowercase form.
func Category(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
