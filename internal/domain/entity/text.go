// Package entity defines the core domain types for text analysis
// along with their validation rules and domain-specific errors.
package entity

// TextInput is the text payload received with a single request.
// It is created per request and never modified.
type TextInput struct {
	Content string
}

// NewTextInput wraps content in a TextInput.
func NewTextInput(content string) TextInput {
	return TextInput{Content: content}
}

// TextStats is the read-only projection derived from exactly one TextInput.
// UniqueWordCount never exceeds WordCount.
type TextStats struct {
	WordCount       int
	CharCount       int
	UniqueWordCount int
	UppercaseForm   string
}
