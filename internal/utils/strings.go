package utils

import "strings"

// identifierCutset covers the whitespace the catalog format allows around
// identifier fields: spaces, tabs, and stray CR/LF from foreign line endings
const identifierCutset = " \t\r\n"

// NormalizeCourseNumber canonicalizes a raw course identifier for storage and
// matching: surrounding whitespace is trimmed, then the result is uppercased
// so that "  csci101 " and "CSCI101" refer to the same course. The function
// is pure and idempotent; an all-whitespace input normalizes to "".
func NormalizeCourseNumber(raw string) string {
	return strings.ToUpper(strings.Trim(raw, identifierCutset))
}

// NormalizeFlagValue trims whitespace and lowercases a CLI flag or
// environment value for case-insensitive matching
func NormalizeFlagValue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidateStringInSet normalizes a flag value and checks it against the
// provided valid set, returning the normalized value either way
func ValidateStringInSet(input string, validSet map[string]bool) (string, bool) {
	normalized := NormalizeFlagValue(input)
	return normalized, validSet[normalized]
}
