package collector

import (
	"regexp"
	"strings"
	"unicode"
)

// extensionList matches a double-quoted literal starting with a single dot that is not
// followed by another dot or a slash, up to the last quote on the same line.
var extensionList = regexp.MustCompile(`"\.(?:[^./\n].*)?"`)

// isNoise reports whether r is dropped from a matched literal before it is split:
// any Unicode whitespace, the ASCII separators \x1c-\x1f, and '+'.
func isNoise(r rune) bool {
	return r == '+' || unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Extract returns the extension tokens of the first extension list literal in text.
// The second return value is false when text holds no such literal.
func Extract(text string) ([]string, bool) {
	match := extensionList.FindString(text)
	if match == "" {
		return nil, false
	}

	cleaned := strings.Map(func(r rune) rune {
		if r == '"' || isNoise(r) {
			return -1
		}
		return r
	}, match)

	return strings.Split(cleaned, ","), true
}
