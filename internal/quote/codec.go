package quote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Decode parses an externally-sourced collection. The document must be a
// JSON array whose elements are objects with non-blank string "text" and
// "category" fields; any violation rejects the entire batch. Both fields are
// trimmed, as in New.
func Decode(r io.Reader) ([]Quote, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading quotes: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &FormatError{Index: -1, Reason: "top-level value is not an array"}
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &FormatError{Index: -1, Reason: "invalid JSON", Err: err}
	}

	quotes := make([]Quote, 0, len(raw))
	for i, elem := range raw {
		var fields map[string]any
		if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
			return nil, &FormatError{Index: i, Reason: "not an object"}
		}
		text, err := requiredString(fields, "text")
		if err != nil {
			return nil, &FormatError{Index: i, Reason: err.Error()}
		}
		category, err := requiredString(fields, "category")
		if err != nil {
			return nil, &FormatError{Index: i, Reason: err.Error()}
		}
		quotes = append(quotes, Quote{Text: text, Category: category})
	}
	return quotes, nil
}

func requiredString(fields map[string]any, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("missing %q", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string", key)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%q is empty", key)
	}
	return s, nil
}

// Encode writes quotes as an indented JSON array, the format used for
// export files.
func Encode(w io.Writer, quotes []Quote) error {
	if quotes == nil {
		quotes = []Quote{}
	}
	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling quotes: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing quotes: %w", err)
	}
	return nil
}
