package text_test

import (
	"strings"
	"testing"

	"text-api/internal/utils/text"
)

/* ───────── Character Counting ───────── */

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "ASCII text", input: "hello", expected: 5},
		{name: "ASCII with spaces", input: "hello world", expected: 11},
		{name: "punctuation", input: "Hello world!", expected: 12},
		{name: "Polish diacritics", input: "zażółć", expected: 6},
		{name: "Japanese hiragana", input: "こんにちは", expected: 5},
		{name: "mixed scripts", input: "hello世界", expected: 7},
		{name: "emoji", input: "Hello👋", expected: 6},
		{name: "flag is two regional indicators", input: "🇯🇵", expected: 2},
		{name: "decomposed accent", input: "cafe\u0301", expected: 5},
		{name: "zero-width space", input: "hello\u200Bworld", expected: 11},
		{name: "empty string", input: "", expected: 0},
		{name: "whitespace only", input: " \t\n ", expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.CountRunes(tt.input); got != tt.expected {
				t.Errorf("CountRunes(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCountRunes_MatchesRuneConversion(t *testing.T) {
	inputs := []string{"", "abc", "こんにちは世界", "🚀✨🤖💡", "Repeat, repeat; REPEAT."}
	for _, in := range inputs {
		if got, want := text.CountRunes(in), len([]rune(in)); got != want {
			t.Errorf("CountRunes(%q) = %d, want %d", in, got, want)
		}
	}
}

/* ───────── Word Counting ───────── */

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "two words", input: "dowolny tekst", expected: 2},
		{name: "runs of spaces", input: "dowolny   tekst", expected: 2},
		{name: "punctuation attached to words", input: "Hello world!", expected: 2},
		{name: "tabs and newlines", input: "one\ttwo\nthree\r\nfour", expected: 4},
		{name: "leading and trailing whitespace", input: "   padded   ", expected: 1},
		{name: "non-breaking space separates", input: "a\u00A0b", expected: 2},
		{name: "file separator splits", input: "a\x1cb", expected: 2},
		{name: "unit separator splits", input: "a\x1fb\x1dc", expected: 3},
		{name: "separators only", input: "\x1c\x1e ", expected: 0},
		{name: "punctuation-only token is still a word", input: "wait ... what", expected: 3},
		{name: "empty string", input: "", expected: 0},
		{name: "whitespace only", input: " \t\n ", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.CountWords(tt.input); got != tt.expected {
				t.Errorf("CountWords(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestIsSpace(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', '\u0085', '\u00A0', '\u2003', '\x1c', '\x1d', '\x1e', '\x1f'} {
		if !text.IsSpace(r) {
			t.Errorf("IsSpace(%U) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '.', '\x1b', '\x00', '\u200B'} {
		if text.IsSpace(r) {
			t.Errorf("IsSpace(%U) = true, want false", r)
		}
	}
}

func TestTrimSpace(t *testing.T) {
	if got := text.TrimSpace("\x1c  hi\x1f\n"); got != "hi" {
		t.Errorf("TrimSpace() = %q, want %q", got, "hi")
	}
}

func TestTokenize(t *testing.T) {
	got := text.Tokenize("  Repeat, repeat;\tREPEAT.  ")
	want := []string{"Repeat,", "repeat;", "REPEAT."}

	if len(got) != len(want) {
		t.Fatalf("Tokenize() returned %d tokens, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

/* ───────── Unique Words ───────── */

func TestCountUniqueWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "distinct words", input: "Hello world!", expected: 2},
		{name: "case and punctuation variants", input: "Repeat, repeat; REPEAT.", expected: 1},
		{name: "quotes and brackets", input: `"word" (word) [WORD]`, expected: 1},
		{name: "internal apostrophe kept", input: "can't cant", expected: 2},
		{name: "internal hyphen kept", input: "state-of-the-art state of the art", expected: 5},
		{name: "punctuation-only tokens ignored", input: "yes ... no —", expected: 2},
		{name: "unicode lowercase", input: "ŻÓŁW żółw", expected: 1},
		{name: "empty string", input: "", expected: 0},
		{name: "whitespace only", input: "   ", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.CountUniqueWords(tt.input); got != tt.expected {
				t.Errorf("CountUniqueWords(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCountUniqueWords_NeverExceedsWordCount(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"a a a",
		"... --- !!!",
		"The quick brown fox jumps over the lazy dog. The dog sleeps.",
		"Repeat, repeat; REPEAT.",
		"こんにちは 世界 こんにちは",
	}

	for _, in := range inputs {
		words := text.CountWords(in)
		unique := text.CountUniqueWords(in)
		if unique > words {
			t.Errorf("CountUniqueWords(%q) = %d exceeds CountWords = %d", in, unique, words)
		}
		if words < 0 || unique < 0 {
			t.Errorf("negative count for %q: words=%d unique=%d", in, words, unique)
		}
	}
}

func TestCountWords_ZeroIffNoNonWhitespace(t *testing.T) {
	inputs := []string{"", " ", "\t\n", "x", " x ", "\u00A0", "a b", "\x1c", "\x1dx"}
	for _, in := range inputs {
		hasContent := text.TrimSpace(in) != ""
		if zero := text.CountWords(in) == 0; zero == hasContent {
			t.Errorf("CountWords(%q) == 0 is %v, but input has content: %v", in, zero, hasContent)
		}
	}
}

/* ───────── Analyze ───────── */

func TestAnalyze(t *testing.T) {
	got := text.Analyze("Repeat, repeat; REPEAT.")
	want := text.Stats{
		WordCount:   3,
		CharCount:   23,
		UniqueWords: 1,
		Uppercase:   "REPEAT, REPEAT; REPEAT.",
	}
	if got != want {
		t.Errorf("Analyze() = %+v, want %+v", got, want)
	}
}

func TestAnalyze_MatchesIndividualFunctions(t *testing.T) {
	inputs := []string{"", "Hello world!", "dowolny   tekst", "Zażółć gęślą jaźń"}
	for _, in := range inputs {
		s := text.Analyze(in)
		if s.WordCount != text.CountWords(in) {
			t.Errorf("%q: WordCount = %d, want %d", in, s.WordCount, text.CountWords(in))
		}
		if s.CharCount != text.CountRunes(in) {
			t.Errorf("%q: CharCount = %d, want %d", in, s.CharCount, text.CountRunes(in))
		}
		if s.UniqueWords != text.CountUniqueWords(in) {
			t.Errorf("%q: UniqueWords = %d, want %d", in, s.UniqueWords, text.CountUniqueWords(in))
		}
		if s.Uppercase != text.ToUpper(in) {
			t.Errorf("%q: Uppercase = %q, want %q", in, s.Uppercase, text.ToUpper(in))
		}
	}
}

func BenchmarkAnalyze(b *testing.B) {
	input := strings.Repeat("Lorem ipsum dolor sit amet, consectetur adipiscing elit. ", 50)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		text.Analyze(input)
	}
}
