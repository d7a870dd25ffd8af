package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/slimcoreui/preorder-admin/internal/tui/themes"
	"github.com/slimcoreui/preorder-admin/internal/tui/viewmodel"
)

// RenderCarousel renders the windowed frame for one cluster. The focused
// card sits full-size in the center; neighbours shrink and dim with distance
// to fake the depth ordering of the web carousel.
func RenderCarousel(vm viewmodel.CarouselView, width int, theme themes.Theme) string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		theme.Title.Render(vm.Title),
		theme.Subtitle.Render("  "+vm.Counter),
	)

	cells := make([]string, 0, len(vm.Items))
	for _, item := range vm.Items {
		if item.Offset == 0 {
			cells = append(cells, RenderCard(item.Card, theme, 44, true))
			continue
		}
		depth := item.Offset
		if depth < 0 {
			depth = -depth
		}
		w := 26 - depth*6
		side := lipgloss.JoinVertical(lipgloss.Left,
			theme.Muted.Render(viewmodel.TruncateString(item.Card.ID, w)),
			theme.Muted.Render(viewmodel.TruncateString(item.Card.Product, w)),
			theme.Muted.Render(item.Card.StatusLabel),
		)
		cells = append(cells, theme.DimmedCard.Width(w).Render(side))
	}

	track := lipgloss.JoinHorizontal(lipgloss.Center, cells...)
	frame := lipgloss.JoinVertical(lipgloss.Center, header, track,
		theme.Muted.Render("←/→ move · enter edit · esc back"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, frame)
}
