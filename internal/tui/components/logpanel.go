package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/slimcoreui/preorder-admin/internal/tui/themes"
	"github.com/slimcoreui/preorder-admin/internal/tui/viewmodel"
)

// RenderLogs renders the remote edit history, most recent first.
func RenderLogs(rows []viewmodel.LogRow, theme themes.Theme) string {
	if len(rows) == 0 {
		return theme.Muted.Render("No recent edits.")
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, theme.Title.Render("Recent Edits"))
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinVertical(lipgloss.Left,
			theme.Muted.Render(r.Time),
			theme.Bold.Render(r.OrderID),
			theme.Subtitle.Render(viewmodel.TruncateString(r.Detail, 60)),
		))
	}
	return theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
