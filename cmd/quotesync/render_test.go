package main

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/ruminaider/quotesync/internal/quote"
	"github.com/stretchr/testify/assert"
)

func TestRenderQuote_ContainsTextAndCategory(t *testing.T) {
	out := ansi.Strip(renderQuote(quote.Quote{Text: "Stay hungry.", Category: "Jobs"}))
	assert.Contains(t, out, "Stay hungry.")
	assert.Contains(t, out, "Jobs")
}

func TestRenderCategories_MarksActive(t *testing.T) {
	out := ansi.Strip(renderCategories([]string{"Life", "Work"}, "Work"))
	assert.Equal(t, "  all\n  Life\n* Work\n", out)
}

func TestRenderCategories_AllActive(t *testing.T) {
	out := ansi.Strip(renderCategories([]string{"Life"}, quote.FilterAll))
	assert.Equal(t, "* all\n  Life\n", out)
}

func TestRenderNotification(t *testing.T) {
	out := ansi.Strip(renderNotification([]quote.Quote{{Text: "a", Category: "Server"}, {Text: "b", Category: "Server"}}))
	assert.Contains(t, out, "2 new quote(s)")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
}

func TestAddCmd_RejectsSingleArg(t *testing.T) {
	err := addCmd.Args(addCmd, []string{"only text"})
	assert.Error(t, err)
	assert.NoError(t, addCmd.Args(addCmd, []string{"text", "cat"}))
	assert.NoError(t, addCmd.Args(addCmd, nil))
}
