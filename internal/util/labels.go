package util

import (
	"strings"
	"unicode/utf8"
)

var titleCaseExceptions = map[string]bool{
	"and": true,
	"or":  true,
	"the": true,
	"of":  true,
	"in":  true,
	"for": true,
	"to":  true,
	"a":   true,
	"an":  true,
}

func isUpper(s string) bool {
	return strings.ToUpper(s) == s && strings.ToLower(s) != s
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return strings.ToUpper(string(r)) + strings.ToLower(s[size:])
}

// TitleCaseLabel normalizes provider sector labels, e.g.
// "SERVICES-PREPACKAGED SOFTWARE" or "consumer discretionary". Short
// acronyms stay upper case and minor words stay lower case after the
// first word.
func TitleCaseLabel(value string) string {
	text := strings.TrimSpace(value)
	if text == "" {
		return text
	}

	parts := strings.Fields(strings.ReplaceAll(text, "/", " / "))
	formatted := make([]string, 0, len(parts))
	for i, part := range parts {
		lower := strings.ToLower(part)
		if titleCaseExceptions[lower] && i != 0 {
			formatted = append(formatted, lower)
			continue
		}
		if isUpper(part) && utf8.RuneCountInString(part) <= 4 {
			formatted = append(formatted, part)
			continue
		}
		formatted = append(formatted, capitalize(part))
	}

	return strings.ReplaceAll(strings.Join(formatted, " "), " / ", "/")
}
