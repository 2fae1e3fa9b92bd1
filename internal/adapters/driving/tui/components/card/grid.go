// Package card renders recommendation cards in a responsive grid.
package card

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/sommelier/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sommelier/internal/core/domain"
)

// Column breakpoints. Narrower than NarrowWidth shows one column,
// narrower than WideWidth shows two, anything else shows five.
const (
	NarrowWidth = 60
	WideWidth   = 150
)

// Line limits for clamped card text.
const (
	titleLines       = 2
	descriptionLines = 2
)

// LoadingText is shown until the grid receives recommendations.
const LoadingText = "Loading recommendations..."

const ellipsis = "…"

// Grid displays recommendations as cards. It never reorders its input.
type Grid struct {
	styles *styles.Styles
	items  []domain.Recommendation
	width  int
}

// NewGrid creates an empty grid.
func NewGrid(s *styles.Styles) *Grid {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Grid{
		styles: s,
		width:  80,
	}
}

// SetItems replaces the displayed recommendations.
func (g *Grid) SetItems(items []domain.Recommendation) {
	g.items = items
}

// Items returns the displayed recommendations.
func (g *Grid) Items() []domain.Recommendation {
	return g.items
}

// Len returns the number of cards.
func (g *Grid) Len() int {
	return len(g.items)
}

// SetWidth sets the available width.
func (g *Grid) SetWidth(width int) {
	g.width = width
}

// Width returns the available width.
func (g *Grid) Width() int {
	return g.width
}

// Columns returns how many cards fit on one row at the given width.
func Columns(width int) int {
	switch {
	case width < NarrowWidth:
		return 1
	case width < WideWidth:
		return 2
	default:
		return 5
	}
}

// View renders the grid.
func (g *Grid) View() string {
	if len(g.items) == 0 {
		return g.styles.Muted.Render(LoadingText)
	}

	cols := Columns(g.width)
	cardWidth := g.width / cols
	// Border and padding take four cells.
	contentWidth := cardWidth - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	rows := make([]string, 0, (len(g.items)+cols-1)/cols)
	for start := 0; start < len(g.items); start += cols {
		end := start + cols
		if end > len(g.items) {
			end = len(g.items)
		}
		cards := make([]string, 0, end-start)
		for _, rec := range g.items[start:end] {
			cards = append(cards, g.renderCard(rec, contentWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (g *Grid) renderCard(rec domain.Recommendation, width int) string {
	lines := []string{
		g.styles.Muted.Render(Clamp("▣ "+rec.CoverRef(), width, 1)),
		g.styles.MatchBadge.Render(rec.MatchLabel()),
		g.styles.CardTitle.Render(Clamp(rec.Title, width, titleLines)),
		g.styles.Muted.Render(Clamp("by "+rec.Author, width, 1)),
		g.styles.Normal.Render(Clamp(rec.Description, width, descriptionLines)),
	}
	lines = append(lines, g.renderKeywords(rec.Keywords, width)...)

	return g.styles.Card.Width(width + 2).Render(strings.Join(lines, "\n"))
}

// renderKeywords lays badges out left to right, wrapping when a row is full.
func (g *Grid) renderKeywords(keywords []string, width int) []string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, kw := range keywords {
		badge := g.styles.KeywordBadge.Render(kw)
		w := lipgloss.Width(badge)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, strings.Join(row, " "))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			rowWidth++
		}
		row = append(row, badge)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, " "))
	}
	return rows
}

// Clamp word-wraps text to width and keeps at most maxLines lines.
// Truncated text ends with an ellipsis.
func Clamp(text string, width, maxLines int) string {
	if width <= 0 || maxLines <= 0 {
		return ""
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	parts := strings.Split(wrapped, "\n")
	for i := range parts {
		parts[i] = strings.TrimRight(parts[i], " ")
	}
	if len(parts) <= maxLines {
		return strings.Join(parts, "\n")
	}

	parts = parts[:maxLines]
	last := []rune(parts[maxLines-1])
	for len(last) > 0 && lipgloss.Width(string(last))+1 > width {
		last = last[:len(last)-1]
	}
	parts[maxLines-1] = strings.TrimRight(string(last), " ") + ellipsis
	return strings.Join(parts, "\n")
}
