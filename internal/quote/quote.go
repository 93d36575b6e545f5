package quote

import (
	"strings"
)

// FilterAll is the filter value that selects every quote regardless of category.
const FilterAll = "all"

// ExportFileName is the default name of an exported collection.
const ExportFileName = "quotes.json"

// Quote is a single text/category pair.
type Quote struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// New builds a Quote from user input. Both fields are trimmed and must be
// non-empty afterwards.
func New(text, category string) (Quote, error) {
	q := Quote{
		Text:     strings.TrimSpace(text),
		Category: strings.TrimSpace(category),
	}
	if q.Text == "" {
		return Quote{}, &ValidationError{Field: "text", Reason: "must not be empty"}
	}
	if q.Category == "" {
		return Quote{}, &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return q, nil
}

// Defaults returns the collection seeded on first run.
func Defaults() []Quote {
	return []Quote{
		{Text: "The best way to predict the future is to create it.", Category: "Inspiration"},
		{Text: "Life is what happens when you're busy making other plans.", Category: "Life"},
		{Text: "Do one thing every day that scares you.", Category: "Motivation"},
	}
}

// Categories returns the distinct categories of quotes in first-seen order.
func Categories(quotes []Quote) []string {
	seen := make(map[string]bool, len(quotes))
	var cats []string
	for _, q := range quotes {
		if seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		cats = append(cats, q.Category)
	}
	return cats
}

// HasCategory reports whether any quote carries the given category.
func HasCategory(quotes []Quote, category string) bool {
	for _, q := range quotes {
		if q.Category == category {
			return true
		}
	}
	return false
}

// Filter returns the quotes matching value, or all of them for FilterAll.
// The result never aliases the input slice.
func Filter(quotes []Quote, value string) []Quote {
	var out []Quote
	for _, q := range quotes {
		if value == FilterAll || q.Category == value {
			out = append(out, q)
		}
	}
	return out
}
