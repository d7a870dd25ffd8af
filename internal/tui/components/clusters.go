package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/slimcoreui/preorder-admin/internal/tui/themes"
	"github.com/slimcoreui/preorder-admin/internal/tui/viewmodel"
)

// RenderClusterGrid renders the vision view: one stack per mediator cluster,
// largest first, with the cursor highlighted.
func RenderClusterGrid(cards []viewmodel.ClusterCardView, cursor, width int, theme themes.Theme) string {
	if len(cards) == 0 {
		return theme.Muted.Render("No clusters in view")
	}

	perRow := width / 22
	if perRow < 1 {
		perRow = 1
	}

	stack := func(c viewmodel.ClusterCardView, focused bool) string {
		body := lipgloss.JoinVertical(lipgloss.Center,
			theme.Selected.Render(" "+c.Initial+" "),
			theme.Bold.Render(viewmodel.TruncateString(c.Key, 16)),
			theme.Subtitle.Render(c.Count),
		)
		if focused {
			return theme.FocusedCard.Width(18).Align(lipgloss.Center).Render(body)
		}
		return theme.RoundedBox.Width(18).Align(lipgloss.Center).Render(body)
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, stack(cards[i], i == cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
