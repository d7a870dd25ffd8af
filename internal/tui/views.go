package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/slimcoreui/preorder-admin/internal/engine"
	"github.com/slimcoreui/preorder-admin/internal/tui/components"
	"github.com/slimcoreui/preorder-admin/internal/tui/viewmodel"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateLoading:
		return m.loadingView()
	case StateGrid:
		return m.gridView()
	case StateVision:
		return m.visionView()
	case StateCarousel:
		return m.carouselView()
	case StateEditing:
		return m.editView()
	case StateLogs:
		return m.logsView()
	case StateHelp:
		return m.helpView()
	}
	return ""
}

func (m Model) loadingView() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.spin.View()+" "+m.theme.Subtitle.Render("Loading orders..."))
}

func (m Model) gridView() string {
	var b strings.Builder

	b.WriteString(m.headerView("Orders"))
	b.WriteString("\n")

	stats := components.RenderStats(viewmodel.NewStatsView(m.stats), m.theme)
	board := components.RenderLeaderboard(viewmodel.NewLeaderboardRows(m.leaders), m.theme)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats, " ", board))
	b.WriteString("\n")

	cards := make([]viewmodel.CardView, 0, len(m.filtered))
	for _, o := range m.filtered {
		cards = append(cards, viewmodel.NewCardView(o))
	}
	gridHeight := m.height - lipgloss.Height(b.String()) - 2
	b.WriteString(components.RenderGrid(cards, m.gridCursor, m.width, gridHeight, m.theme))
	b.WriteString("\n")
	b.WriteString(m.footerView())

	return b.String()
}

func (m Model) visionView() string {
	var b strings.Builder

	b.WriteString(m.headerView("Vision"))
	b.WriteString("\n")
	b.WriteString(components.RenderClusterGrid(viewmodel.NewClusterCards(m.clusters), m.clusterCursor, m.width, m.theme))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("Enter open • Esc back"))

	return b.String()
}

func (m Model) carouselView() string {
	var b strings.Builder

	b.WriteString(m.headerView("Vision • " + m.navigator.Key()))
	b.WriteString("\n")
	b.WriteString(components.RenderCarousel(viewmodel.NewCarouselView(&m.navigator), m.width, m.theme))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("←/→ browse • e edit • Esc back"))

	return b.String()
}

func (m Model) editView() string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		m.editForm.View())
}

func (m Model) logsView() string {
	var b strings.Builder

	b.WriteString(m.headerView("Recent Edits"))
	b.WriteString("\n")
	b.WriteString(components.RenderLogs(viewmodel.NewLogRows(m.logs), m.theme))
	b.WriteString("\n")
	b.WriteString(m.theme.Muted.Render("Esc back"))

	return b.String()
}

func (m Model) helpView() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, group := range m.keymap.FullHelp() {
		for _, binding := range group {
			help := binding.Help()
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				m.theme.Bold.Render(fmt.Sprintf("%-8s", help.Key)),
				m.theme.Subtitle.Render(help.Desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Muted.Render("Press any key to close"))

	return m.theme.Box.Render(b.String())
}

// headerView renders the title bar with the active filter summary; the toast
// rides on the right edge when present.
func (m Model) headerView(section string) string {
	title := m.theme.Title.Render("Preorder Admin") + m.theme.Muted.Render(" • "+section)

	line := title
	if m.toast != "" {
		toast := m.theme.Toast.Render(m.toast)
		gap := m.width - lipgloss.Width(title) - lipgloss.Width(toast)
		if gap < 1 {
			gap = 1
		}
		line = title + strings.Repeat(" ", gap) + toast
	}

	return line + "\n" + m.filterSummaryView()
}

func (m Model) filterSummaryView() string {
	parts := []string{
		filterChip("search", m.criteria.Search),
		filterChip("mediator", m.criteria.Mediator),
		filterChip("status", m.criteria.Status),
		filterChip("month", m.criteria.Month),
		filterChip("type", m.criteria.Type),
	}
	if m.criteria.Sort == engine.SortAsc {
		parts = append(parts, "oldest first")
	} else {
		parts = append(parts, "newest first")
	}

	summary := m.theme.Subtitle.Render(strings.Join(parts, "  "))
	if m.searching {
		summary += "\n" + m.searchInput.View()
	}
	return summary
}

func filterChip(label, value string) string {
	if value == "" || value == engine.Any {
		return label + ":all"
	}
	return label + ":" + value
}

func (m Model) footerView() string {
	var parts []string
	for _, binding := range m.keymap.ShortHelp() {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	return m.theme.Muted.Render(strings.Join(parts, " • "))
}
