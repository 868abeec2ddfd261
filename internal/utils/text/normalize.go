package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeToken prepares a token for uniqueness comparison:
//   - converts to lowercase using locale-independent Unicode rules
//   - strips leading and trailing punctuation
//
// Punctuation inside the token is preserved, so "can't" and "state-of-the-art"
// stay intact while "REPEAT." and "repeat," both become "repeat".
func NormalizeToken(token string) string {
	trimmed := strings.TrimFunc(token, unicode.IsPunct)
	if trimmed == "" {
		return ""
	}
	// cases.Caser keeps internal state and must not be shared between goroutines.
	return cases.Lower(language.Und).String(trimmed)
}

// ToUpper returns the full Unicode uppercase form of text. Special casing is
// applied ("ß" becomes "SS") and no locale-specific rules are used, so "i"
// always maps to "I". The empty string maps to itself.
func ToUpper(text string) string {
	if text == "" {
		return ""
	}
	return cases.Upper(language.Und).String(text)
}
