package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/slimcoreui/preorder-admin/internal/tui/themes"
	"github.com/slimcoreui/preorder-admin/internal/tui/viewmodel"
)

// RenderGrid renders the card list with the cursor kept inside a window of
// visible rows.
func RenderGrid(cards []viewmodel.CardView, cursor, width, height int, theme themes.Theme) string {
	if len(cards) == 0 {
		return theme.Muted.Render("No Orders Found")
	}

	cardWidth := width - 4
	if cardWidth > 56 {
		cardWidth = 56
	}

	// Rough card height including border; show as many as fit.
	perCard := 11
	visible := height / perCard
	if visible < 1 {
		visible = 1
	}

	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > len(cards) {
		end = len(cards)
	}

	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		rendered = append(rendered, RenderCard(cards[i], theme, cardWidth, i == cursor))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
