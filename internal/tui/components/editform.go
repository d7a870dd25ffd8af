package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/slimcoreui/preorder-admin/internal/engine"
	"github.com/slimcoreui/preorder-admin/internal/tui/themes"
)

// Status choices offered by the edit form, in cycle order. The empty entry
// returns an order to the queue.
var statusChoices = []string{"", "PAID", "PENDING", "WARNING"}

// Form fields, by focus index.
const (
	fieldStatus = iota
	fieldFilled
	fieldPaid
	fieldRemarks
	fieldCount
)

// EditFormModel is the modal form for one order's mutable fields. It writes
// into the engine's edit buffer; the parent model commits or cancels the
// session when the form reports done or cancelled.
type EditFormModel struct {
	buffer    *engine.EditBuffer
	theme     themes.Theme
	orderID   string
	inputs    []textinput.Model
	choices   []string
	statusIdx int
	focus     int
	done      bool
	cancelled bool
}

// NewEditFormModel builds a form pre-filled from the active edit buffer.
func NewEditFormModel(orderID string, buffer *engine.EditBuffer, theme themes.Theme) EditFormModel {
	// Free-form statuses from the sheet stay selectable.
	choices := append([]string(nil), statusChoices...)
	statusIdx := -1
	for i, s := range choices {
		if s == buffer.Status {
			statusIdx = i
			break
		}
	}
	if statusIdx < 0 {
		choices = append(choices, buffer.Status)
		statusIdx = len(choices) - 1
	}

	mkInput := func(placeholder, value string, limit int) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.SetValue(value)
		in.CharLimit = limit
		in.Prompt = ""
		return in
	}

	return EditFormModel{
		buffer:    buffer,
		theme:     theme,
		orderID:   orderID,
		choices:   choices,
		statusIdx: statusIdx,
		inputs: []textinput.Model{
			mkInput("DD/MM/YYYY", buffer.FilledDate, 10),
			mkInput("DD/MM/YYYY", buffer.PaidDate, 10),
			mkInput("remarks", buffer.Remarks, 200),
		},
	}
}

// IsDone reports that the operator asked to save.
func (m EditFormModel) IsDone() bool { return m.done }

// IsCancelled reports that the operator abandoned the edit.
func (m EditFormModel) IsCancelled() bool { return m.cancelled }

// Update handles form input.
func (m EditFormModel) Update(msg tea.Msg) (EditFormModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "esc":
		m.cancelled = true
		return m, nil

	case "ctrl+s":
		m.save()
		return m, nil

	case "enter":
		if m.focus == fieldCount-1 {
			m.save()
			return m, nil
		}
		m.setFocus(m.focus + 1)
		return m, nil

	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "left", "right":
		if m.focus == fieldStatus {
			dir := 1
			if key.String() == "left" {
				dir = -1
			}
			m.cycleStatus(dir)
			return m, nil
		}
	}

	if m.focus != fieldStatus {
		var cmd tea.Cmd
		m.inputs[m.focus-1], cmd = m.inputs[m.focus-1].Update(msg)
		return m, cmd
	}
	return m, nil
}

// cycleStatus steps through the status choices. Selecting PAID or PENDING
// pre-fills the paid date via the buffer; the input mirrors it so the
// operator can still override.
func (m *EditFormModel) cycleStatus(dir int) {
	m.statusIdx = (m.statusIdx + dir + len(m.choices)) % len(m.choices)
	m.buffer.SetStatus(m.choices[m.statusIdx])
	m.inputs[fieldPaid-1].SetValue(m.buffer.PaidDate)
}

func (m *EditFormModel) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if focus != fieldStatus && i == focus-1 {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// save flushes the inputs into the edit buffer and marks the form done.
func (m *EditFormModel) save() {
	m.buffer.Status = m.choices[m.statusIdx]
	m.buffer.FilledDate = m.inputs[fieldFilled-1].Value()
	m.buffer.PaidDate = m.inputs[fieldPaid-1].Value()
	m.buffer.Remarks = m.inputs[fieldRemarks-1].Value()
	m.done = true
}

// View renders the form.
func (m EditFormModel) View() string {
	label := func(i int, text string) string {
		if i == m.focus {
			return m.theme.Selected.Render(" " + text + " ")
		}
		return m.theme.Subtitle.Render(" " + text + " ")
	}

	status := m.choices[m.statusIdx]
	if status == "" {
		status = "QUEUES"
	}

	rows := []string{
		m.theme.Title.Render(fmt.Sprintf("Edit %s", m.orderID)),
		lipgloss.JoinHorizontal(lipgloss.Center, label(fieldStatus, "Status"), "◂ "+m.theme.Bold.Render(status)+" ▸"),
		lipgloss.JoinHorizontal(lipgloss.Center, label(fieldFilled, "Filled"), m.inputs[fieldFilled-1].View()),
		lipgloss.JoinHorizontal(lipgloss.Center, label(fieldPaid, "Paid"), m.inputs[fieldPaid-1].View()),
		lipgloss.JoinHorizontal(lipgloss.Center, label(fieldRemarks, "Remarks"), m.inputs[fieldRemarks-1].View()),
		m.theme.Muted.Render("tab next · ←/→ status · ctrl+s save · esc cancel"),
	}
	return m.theme.FocusedCard.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
