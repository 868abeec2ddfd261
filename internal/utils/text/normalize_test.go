package text_test

import (
	"sync"
	"testing"

	"text-api/internal/utils/text"
)

func TestNormalizeToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trailing period", input: "REPEAT.", want: "repeat"},
		{name: "trailing comma", input: "repeat,", want: "repeat"},
		{name: "trailing semicolon", input: "Repeat;", want: "repeat"},
		{name: "surrounding quotes", input: `"quoted"`, want: "quoted"},
		{name: "multiple marks", input: "¿¡Hola!?", want: "hola"},
		{name: "apostrophe preserved", input: "Can't", want: "can't"},
		{name: "hyphen preserved", input: "Well-Known", want: "well-known"},
		{name: "diacritics preserved", input: "Żółw!", want: "żółw"},
		{name: "digits kept", input: "(2024)", want: "2024"},
		{name: "symbols are not punctuation", input: "$100", want: "$100"},
		{name: "punctuation only", input: "...", want: ""},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := text.NormalizeToken(tt.input); got != tt.want {
				t.Errorf("NormalizeToken(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToUpper(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "mixed case", input: "Dowolny Tekst", want: "DOWOLNY TEKST"},
		{name: "already upper", input: "HELLO", want: "HELLO"},
		{name: "polish letters", input: "zażółć gęślą jaźń", want: "ZAŻÓŁĆ GĘŚLĄ JAŹŃ"},
		{name: "sharp s expands", input: "straße", want: "STRASSE"},
		{name: "dotted i is locale independent", input: "istanbul", want: "ISTANBUL"},
		{name: "cyrillic", input: "привет", want: "ПРИВЕТ"},
		{name: "no cased letters", input: "123 !? 世界", want: "123 !? 世界"},
		{name: "whitespace preserved", input: "  a\tb  ", want: "  A\tB  "},
		{name: "empty", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := text.ToUpper(tt.input); got != tt.want {
				t.Errorf("ToUpper(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToUpper_Idempotent(t *testing.T) {
	inputs := []string{"", "Dowolny Tekst", "straße", "Repeat, repeat; REPEAT.", "ŻÓŁW żółw", "Hello👋"}
	for _, in := range inputs {
		once := text.ToUpper(in)
		if twice := text.ToUpper(once); twice != once {
			t.Errorf("ToUpper(ToUpper(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestAnalyzerConcurrentUse(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	errs := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := text.ToUpper("Dowolny Tekst"); got != "DOWOLNY TEKST" {
					errs <- got
					return
				}
				if got := text.CountUniqueWords("Repeat, repeat; REPEAT."); got != 1 {
					errs <- "unique count drifted"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Errorf("concurrent call returned unexpected result: %q", e)
	}
}
