// Package components renders viewmodel projections with lipgloss and hosts
// the interactive edit form.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/slimcoreui/preorder-admin/internal/tui/themes"
	"github.com/slimcoreui/preorder-admin/internal/tui/viewmodel"
)

// RenderCard renders one order card at the given inner width.
func RenderCard(vm viewmodel.CardView, theme themes.Theme, width int, focused bool) string {
	if width < 24 {
		width = 24
	}

	id := viewmodel.TruncateString(vm.ID, width-len(vm.StatusLabel)-2)
	status := theme.StatusStyle(vm.StatusKind).Render(vm.StatusLabel)
	head := padBetween(theme.Bold.Render(id), status, width)

	var lines []string
	lines = append(lines, head)
	if vm.DealType != "" {
		lines = append(lines, theme.DealTag.Render(vm.DealType))
	}
	lines = append(lines, theme.Normal.Render(viewmodel.TruncateString(vm.Product, width)))

	for _, row := range vm.MoneyRows {
		amount := row.Amount
		switch row.Accent {
		case "plus":
			amount = theme.MoneyPlus.Render(amount)
		case "minus":
			amount = theme.MoneyMinus.Render(amount)
		default:
			amount = theme.Bold.Render(amount)
		}
		lines = append(lines, padBetween(theme.Subtitle.Render(row.Label), amount, width))
	}

	lines = append(lines,
		theme.Muted.Render(fmt.Sprintf("DLV %s  FIL %s", vm.DeliveryDate, vm.FilledDate)),
		theme.Muted.Render(fmt.Sprintf("RFD %s  PAD %s", vm.RefundDate, vm.PaidDate)),
	)

	footer := theme.Subtitle.Render(viewmodel.TruncateString(vm.Mediator, width-8))
	var marks []string
	if vm.WhatsAppLink != "" {
		marks = append(marks, "WA")
	}
	if vm.FormLink != "" {
		marks = append(marks, "FORM")
	}
	if len(marks) > 0 {
		footer = padBetween(footer, theme.Muted.Render(strings.Join(marks, " ")), width)
	}
	lines = append(lines, footer)

	if vm.Remarks != "" {
		lines = append(lines, theme.Muted.Render(viewmodel.TruncateString("» "+vm.Remarks, width)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if focused {
		return theme.FocusedCard.Width(width).Render(content)
	}
	return theme.RoundedBox.Width(width).Render(content)
}

// padBetween lays out left and right on one line of the given width.
func padBetween(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
