package utils

import "strings"

// SanitizeName keeps ASCII letters, digits, underscores and spaces, drops
// everything else and trims surrounding spaces. Used on user supplied names
// before they are written to the document store.
func SanitizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, char := range s {
		if isNameChar(char) {
			b.WriteRune(char)
		}
	}
	return strings.TrimSpace(b.String())
}

// IsSafeName reports whether s is already in sanitized form.
func IsSafeName(s string) bool {
	for _, char := range s {
		if !isNameChar(char) {
			return false
		}
	}
	return s == strings.TrimSpace(s)
}

func isNameChar(char rune) bool {
	return (char >= 'a' && char <= 'z') ||
		(char >= 'A' && char <= 'Z') ||
		(char >= '0' && char <= '9') ||
		char == '_' || char == ' '
}
