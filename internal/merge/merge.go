package merge

import (
	"github.com/ruminaider/quotesync/internal/quote"
)

// Result describes the outcome of a union merge.
type Result struct {
	Merged  []quote.Quote // local quotes followed by every accepted incoming quote
	Added   []quote.Quote // incoming quotes that were appended
	Skipped []quote.Quote // incoming quotes dropped because their text was already present
}

// Changed reports whether the merge appended anything.
func (r Result) Changed() bool {
	return len(r.Added) > 0
}

// Union folds incoming quotes into local. An incoming quote is appended only
// when no quote already in the result has the identical text (case-sensitive);
// local quotes are never removed, reordered, or modified. Applying the same
// incoming batch to the merged output again adds nothing.
func Union(local, incoming []quote.Quote) Result {
	merged := make([]quote.Quote, len(local), len(local)+len(incoming))
	copy(merged, local)

	texts := make(map[string]bool, len(local)+len(incoming))
	for _, q := range local {
		texts[q.Text] = true
	}

	result := Result{}
	for _, q := range incoming {
		if texts[q.Text] {
			result.Skipped = append(result.Skipped, q)
			continue
		}
		texts[q.Text] = true
		merged = append(merged, q)
		result.Added = append(result.Added, q)
	}
	result.Merged = merged
	return result
}
