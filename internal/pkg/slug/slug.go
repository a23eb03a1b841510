// Package slug normalizes user input into PokeAPI identifiers
package slug

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lower = cases.Lower(language.Und)

// Normalize lowercases s, trims it and joins words with hyphens:
// "Mr Mime" becomes "mr-mime"
func Normalize(s string) string {
	return strings.Join(strings.Fields(lower.String(s)), "-")
}
