// Package text provides the HTTP handlers for the text analysis endpoints.
package text

// TextRequest is the body accepted by every text endpoint.
type TextRequest struct {
	Text string `json:"text" example:"dowolny tekst" validate:"required"`
}

// ProcessResponse is returned by POST /process.
type ProcessResponse struct {
	Text      string `json:"text" example:"dowolny tekst"`
	WordCount int    `json:"word_count" example:"2"`
}

// StatsResponse is returned by POST /stats.
type StatsResponse struct {
	Text        string `json:"text" example:"dowolny tekst"`
	WordCount   int    `json:"word_count" example:"2"`
	CharCount   int    `json:"char_count" example:"13"`
	UniqueWords int    `json:"unique_words" example:"2"`
}

// UppercaseResponse is returned by POST /uppercase.
type UppercaseResponse struct {
	OriginalText  string `json:"original_text" example:"dowolny tekst"`
	UppercaseText string `json:"uppercase_text" example:"DOWOLNY TEKST"`
	Length        int    `json:"length" example:"13"`
}
