// Package textops provides pure string transformations.
package textops

import "unicode"

// Capitalize returns s with its first rune upper-cased and the rest unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Reverse returns a new string with the runes of s in reverse order.
// Combining marks are treated as independent runes, not merged with their base.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
