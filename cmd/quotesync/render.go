package main

import (
	"fmt"
	"strings"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"

	"github.com/ruminaider/quotesync/internal/quote"
)

var flavor = catppuccin.Mocha

var (
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorGreen    = lipgloss.Color(flavor.Green().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

var (
	quoteTextStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Italic(true)

	quoteCategoryStyle = lipgloss.NewStyle().
				Foreground(colorMauve)

	quoteBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOverlay0).
			Padding(0, 2).
			MaxWidth(80)

	activeCategoryStyle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	notifyStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)
)

// renderQuote formats a quote as a boxed block with its category underneath.
func renderQuote(q quote.Quote) string {
	body := quoteTextStyle.Width(72).Render(fmt.Sprintf("“%s”", q.Text)) + "\n" +
		quoteCategoryStyle.Render("~ "+q.Category)
	return quoteBoxStyle.Render(body)
}

// renderCategories lists categories one per line, marking the active one.
func renderCategories(categories []string, active string) string {
	var b strings.Builder
	all := "  " + quote.FilterAll
	if active == quote.FilterAll {
		all = activeCategoryStyle.Render("* " + quote.FilterAll)
	}
	b.WriteString(all + "\n")
	for _, c := range categories {
		if c == active {
			b.WriteString(activeCategoryStyle.Render("* "+c) + "\n")
			continue
		}
		b.WriteString("  " + c + "\n")
	}
	return b.String()
}

// renderNotification is printed by watch when a pull added quotes.
func renderNotification(added []quote.Quote) string {
	var b strings.Builder
	b.WriteString(notifyStyle.Render(fmt.Sprintf("✓ %d new quote(s) from the server", len(added))))
	for _, q := range added {
		b.WriteString("\n  " + dimStyle.Render(q.Text))
	}
	return b.String()
}
