// Package themes defines the visual styles for the dashboard.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Selected      lipgloss.Style
	Toast         lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	FocusedCard   lipgloss.Style
	DimmedCard    lipgloss.Style
	DealTag       lipgloss.Style
	MoneyPlus     lipgloss.Style
	MoneyMinus    lipgloss.Style
	StatusPaid    lipgloss.Style
	StatusPending lipgloss.Style
	StatusQueues  lipgloss.Style
	StatusError   lipgloss.Style
	Primary       lipgloss.Color
	Gold          lipgloss.Color
	Paid          lipgloss.Color
	Pending       lipgloss.Color
	Danger        lipgloss.Color
	Border        lipgloss.Color
	MutedColor    lipgloss.Color
	Foreground    lipgloss.Color
}

// Default is the default theme. The accents follow the web panel's palette:
// green for paid, pink for pending, red for deductions, gold for export.
var Default = Theme{
	Primary:    lipgloss.Color("#6c5ce7"),
	Gold:       lipgloss.Color("#fdcb6e"),
	Paid:       lipgloss.Color("#00b894"),
	Pending:    lipgloss.Color("#E91E63"),
	Danger:     lipgloss.Color("#ff7675"),
	Border:     lipgloss.Color("#404040"),
	MutedColor: lipgloss.Color("#636e72"),
	Foreground: lipgloss.Color("#fafafa"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#b2bec3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#636e72")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#6c5ce7")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),
	Toast: lipgloss.NewStyle().
		Background(lipgloss.Color("#2d3436")).
		Foreground(lipgloss.Color("#fdcb6e")).
		Padding(0, 1),

	Box: lipgloss.NewStyle().
		Padding(0, 1),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	FocusedCard: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#6c5ce7")).
		Padding(0, 1),
	DimmedCard: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Foreground(lipgloss.Color("#636e72")).
		Padding(0, 1),

	DealTag: lipgloss.NewStyle().
		Background(lipgloss.Color("#2d3436")).
		Foreground(lipgloss.Color("#b2bec3")).
		Padding(0, 1),
	MoneyPlus: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00b894")),
	MoneyMinus: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff7675")),

	StatusPaid: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00b894")),
	StatusPending: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#E91E63")),
	StatusQueues: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#636e72")),
	StatusError: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff7675")),
}

// StatusStyle maps a card status kind to its style.
func (t Theme) StatusStyle(kind string) lipgloss.Style {
	switch kind {
	case "paid":
		return t.StatusPaid
	case "pending":
		return t.StatusPending
	case "error":
		return t.StatusError
	default:
		return t.StatusQueues
	}
}
