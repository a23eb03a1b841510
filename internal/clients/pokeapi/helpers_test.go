package pokeapi_test

import "strings"

// sprintfAll substitutes every %s in format with the same value
func sprintfAll(format, value string) string {
	return strings.ReplaceAll(format, "%s", value)
}
