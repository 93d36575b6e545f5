package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ruminaider/quotesync/internal/quote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func server(text string) quote.Quote {
	return quote.Quote{Text: text, Category: "Server"}
}

func TestUnion_DuplicateTextDropped(t *testing.T) {
	local := quote.Defaults()

	result := Union(local, []quote.Quote{server("Life is what happens when you're busy making other plans.")})
	assert.False(t, result.Changed())
	assert.Len(t, result.Merged, 3)
	require.Len(t, result.Skipped, 1)
	if diff := cmp.Diff(local, result.Merged); diff != "" {
		t.Errorf("merged collection changed (-want +got):\n%s", diff)
	}
}

func TestUnion_NewTextAppended(t *testing.T) {
	local := quote.Defaults()

	result := Union(local, []quote.Quote{server("Stay hungry, stay foolish.")})
	assert.True(t, result.Changed())
	require.Len(t, result.Merged, 4)
	assert.Equal(t, server("Stay hungry, stay foolish."), result.Merged[3])
	assert.Equal(t, []quote.Quote{server("Stay hungry, stay foolish.")}, result.Added)
}

func TestUnion_Idempotent(t *testing.T) {
	incoming := []quote.Quote{server("one"), server("two"), server("The best way to predict the future is to create it.")}

	once := Union(quote.Defaults(), incoming)
	twice := Union(once.Merged, incoming)

	assert.False(t, twice.Changed())
	if diff := cmp.Diff(once.Merged, twice.Merged); diff != "" {
		t.Errorf("second merge changed the collection (-once +twice):\n%s", diff)
	}
}

func TestUnion_NeverMutatesExisting(t *testing.T) {
	local := []quote.Quote{
		{Text: "shared", Category: "Local"},
		{Text: "shared", Category: "Duplicate"},
		{Text: "mine", Category: "Local"},
	}
	before := append([]quote.Quote(nil), local...)

	result := Union(local, []quote.Quote{server("shared"), server("theirs")})

	assert.Equal(t, before, local, "input slice must not be modified")
	assert.Equal(t, before, result.Merged[:len(before)])
	assert.Equal(t, server("theirs"), result.Merged[3])
}

func TestUnion_CaseSensitive(t *testing.T) {
	result := Union([]quote.Quote{{Text: "Hello", Category: "A"}}, []quote.Quote{server("hello")})
	assert.True(t, result.Changed())
	assert.Len(t, result.Merged, 2)
}

func TestUnion_DuplicatesWithinBatch(t *testing.T) {
	result := Union(nil, []quote.Quote{server("x"), server("x"), server("y")})
	assert.Equal(t, []quote.Quote{server("x"), server("y")}, result.Added)
	assert.Equal(t, []quote.Quote{server("x")}, result.Skipped)
}

func TestUnion_EmptyIncoming(t *testing.T) {
	result := Union(quote.Defaults(), nil)
	assert.False(t, result.Changed())
	assert.Equal(t, quote.Defaults(), result.Merged)
}
