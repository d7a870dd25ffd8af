package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/slimcoreui/preorder-admin/internal/tui/themes"
	"github.com/slimcoreui/preorder-admin/internal/tui/viewmodel"
)

// RenderStats renders the summary strip over the filtered sequence.
func RenderStats(sv viewmodel.StatsView, theme themes.Theme) string {
	cell := func(label, value string) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			theme.Subtitle.Render(label),
			theme.Bold.Render(value),
		)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Box.Render(cell("Orders", sv.Orders)),
		theme.Box.Render(cell("Total", sv.TotalValue)),
		theme.Box.Render(cell("Refundable", sv.Refundable)),
		theme.Box.Render(cell("Commission", sv.Commission)),
		theme.Box.Render(cell("Deducted", sv.Deducted)),
	)
	return theme.BorderedBox.Render(row)
}

// RenderLeaderboard renders the top-mediator ranking.
func RenderLeaderboard(rows []viewmodel.LeaderboardRow, theme themes.Theme) string {
	if len(rows) == 0 {
		return theme.Muted.Render("No mediators in view")
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, theme.Title.Render("Top Mediators"))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s %s %s",
			theme.Subtitle.Render(r.Rank),
			theme.Normal.Render(viewmodel.TruncateString(r.Mediator, 18)),
			theme.Bold.Render(r.Count),
		))
	}
	return theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
