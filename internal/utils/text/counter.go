// Package text provides the text analysis primitives behind the API endpoints.
// Every function is a pure function of its input and is safe for concurrent use.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Multi-byte characters such as "ł", "世" or emoji count as one character each,
// so the result matches the code point length rather than the byte length.
//
// Examples:
//
//	CountRunes("hello")         // returns 5
//	CountRunes("zażółć")        // returns 6
//	CountRunes("hello世界")      // returns 7
//	CountRunes("")              // returns 0
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}

// IsSpace reports whether r separates words. It extends unicode.IsSpace
// with the ASCII information separators U+001C..U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// TrimSpace removes leading and trailing runes matched by IsSpace.
func TrimSpace(text string) string {
	return strings.TrimFunc(text, IsSpace)
}

// Tokenize splits text on runs of IsSpace runes and returns the non-empty
// tokens in order. Leading and trailing whitespace produce no tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, IsSpace)
}

// CountWords returns the number of whitespace-delimited tokens in text.
// Empty and whitespace-only input yields 0.
func CountWords(text string) int {
	return len(Tokenize(text))
}

// CountUniqueWords returns the number of distinct tokens in text after
// normalization with NormalizeToken. Tokens that normalize to the empty
// string (punctuation-only tokens such as "..." or "?!") are not counted.
//
// Examples:
//
//	CountUniqueWords("Hello world!")             // returns 2
//	CountUniqueWords("Repeat, repeat; REPEAT.")  // returns 1
func CountUniqueWords(text string) int {
	return countUnique(Tokenize(text))
}

func countUnique(tokens []string) int {
	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		norm := NormalizeToken(tok)
		if norm == "" {
			continue
		}
		seen[norm] = struct{}{}
	}
	return len(seen)
}

// Stats holds every derived value for a single text.
type Stats struct {
	WordCount   int
	CharCount   int
	UniqueWords int
	Uppercase   string
}

// Analyze computes all statistics for text, tokenizing it only once.
func Analyze(text string) Stats {
	tokens := Tokenize(text)
	return Stats{
		WordCount:   len(tokens),
		CharCount:   CountRunes(text),
		UniqueWords: countUnique(tokens),
		Uppercase:   ToUpper(text),
	}
}
