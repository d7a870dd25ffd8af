package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/slimcoreui/preorder-admin/internal/common"
	"github.com/slimcoreui/preorder-admin/internal/engine"
	"github.com/slimcoreui/preorder-admin/internal/gateway"
	"github.com/slimcoreui/preorder-admin/internal/model"
	"github.com/slimcoreui/preorder-admin/internal/tui/components"
	"github.com/slimcoreui/preorder-admin/internal/tui/themes"
)

// State represents the current state of the dashboard.
type State int

const (
	StateLoading State = iota
	StateGrid
	StateVision
	StateCarousel
	StateEditing
	StateLogs
	StateHelp
)

// Model holds the dashboard state. The full record set is owned exclusively
// by this model and mutated only inside Update, which bubbletea serializes;
// edit commits and keep-alive traffic can never interleave on it.
type Model struct {
	config Config
	keymap KeyMap
	theme  themes.Theme

	orders    []model.Order
	criteria  engine.Criteria
	mediators []string
	months    []string

	filtered []model.Order
	stats    engine.Stats
	leaders  []engine.LeaderboardEntry
	clusters []engine.Cluster

	session   engine.Session
	navigator engine.Navigator

	editForm    components.EditFormModel
	searchInput textinput.Model
	spin        spinner.Model
	logs        []gateway.EditLog

	toast         string
	state         State
	editReturn    State
	gridCursor    int
	clusterCursor int
	toastSeq      int
	width         int
	height        int
	searching     bool
	quitting      bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	search := textinput.New()
	search.Placeholder = "id, reviewer or product"
	search.Prompt = "/ "
	search.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return Model{
		config:      cfg,
		keymap:      DefaultKeyMap(),
		theme:       cfg.Theme,
		criteria:    engine.DefaultCriteria(),
		searchInput: search,
		spin:        spin,
		state:       StateLoading,
		width:       cfg.Width,
		height:      cfg.Height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.spin.Tick,
		m.loadOrders(),
		m.scheduleKeepAlive(),
	)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case ordersLoadedMsg:
		// A failed load degrades to an empty set; never fatal.
		m.orders = msg.orders
		m.rebuildOptions()
		m.refresh()
		if m.state == StateLoading {
			m.state = StateGrid
		}
		if msg.err != nil {
			cmd := m.setToast("Load failed, showing empty set")
			return m, cmd
		}
		return m, nil

	case syncResultMsg:
		// Local state stands whatever the remote said.
		if msg.err != nil {
			common.LogError(msg.err, "Remote sync failed", common.Fields{"order_id": msg.id})
			cmd := m.setToast("Sync Warning: " + msg.id)
			return m, cmd
		}
		cmd := m.setToast("Synced Successfully!")
		return m, cmd

	case logsLoadedMsg:
		if msg.err != nil {
			m.logs = nil
			cmd := m.setToast("Could not load recent edits")
			return m, cmd
		}
		m.logs = msg.logs
		return m, nil

	case keepAliveTickMsg:
		return m, tea.Batch(m.pingServer(), m.scheduleKeepAlive())

	case pingDoneMsg:
		if msg.err != nil {
			common.LogDebug("Keep-alive ping failed", common.Fields{"error": msg.err.Error()})
		}
		return m, nil

	case toastExpireMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	if m.state == StateEditing {
		return m.updateEditForm(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.state {
	case StateLoading:
		if key.Matches(msg, m.keymap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case StateGrid:
		return m.handleGridKey(msg)
	case StateVision:
		return m.handleVisionKey(msg)
	case StateCarousel:
		return m.handleCarouselKey(msg)
	case StateEditing:
		return m.updateEditForm(msg)
	case StateLogs:
		if key.Matches(msg, m.keymap.Back) || key.Matches(msg, m.keymap.Logs) || key.Matches(msg, m.keymap.Quit) {
			m.state = StateGrid
		}
		return m, nil
	case StateHelp:
		m.state = StateGrid
		return m, nil
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.criteria.Search = m.searchInput.Value()
			m.refresh()
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.gridCursor > 0 {
			m.gridCursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.gridCursor < len(m.filtered)-1 {
			m.gridCursor++
		}

	case key.Matches(msg, m.keymap.Select), key.Matches(msg, m.keymap.Edit):
		if m.gridCursor < len(m.filtered) {
			return m.beginEdit(m.filtered[m.gridCursor].ID)
		}

	case key.Matches(msg, m.keymap.CopyID):
		if m.gridCursor < len(m.filtered) {
			cmd := m.setToast("Order ID: " + m.filtered[m.gridCursor].ID)
			return m, cmd
		}

	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keymap.ClearFilters):
		m.criteria = engine.DefaultCriteria()
		m.searchInput.SetValue("")
		m.refresh()

	case key.Matches(msg, m.keymap.Mediator):
		m.criteria.Mediator = cycleOption(m.criteria.Mediator, m.mediatorOptions())
		m.refresh()

	case key.Matches(msg, m.keymap.Status):
		m.criteria.Status = cycleOption(m.criteria.Status, statusOptions())
		m.refresh()

	case key.Matches(msg, m.keymap.Month):
		m.criteria.Month = cycleOption(m.criteria.Month, m.monthOptions())
		m.refresh()

	case key.Matches(msg, m.keymap.Type):
		m.criteria.Type = cycleOption(m.criteria.Type, typeOptions())
		m.refresh()

	case key.Matches(msg, m.keymap.SortDir):
		if m.criteria.Sort == engine.SortDesc {
			m.criteria.Sort = engine.SortAsc
		} else {
			m.criteria.Sort = engine.SortDesc
		}
		m.refresh()

	case key.Matches(msg, m.keymap.Vision):
		m.state = StateVision
		m.clusterCursor = 0

	case key.Matches(msg, m.keymap.Logs):
		m.state = StateLogs
		return m, m.loadLogs()

	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadOrders()

	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp
	}
	return m, nil
}

func (m Model) handleVisionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit), key.Matches(msg, m.keymap.Back), key.Matches(msg, m.keymap.Vision):
		m.state = StateGrid

	case key.Matches(msg, m.keymap.Left), key.Matches(msg, m.keymap.Up):
		if m.clusterCursor > 0 {
			m.clusterCursor--
		}

	case key.Matches(msg, m.keymap.Right), key.Matches(msg, m.keymap.Down):
		if m.clusterCursor < len(m.clusters)-1 {
			m.clusterCursor++
		}

	case key.Matches(msg, m.keymap.Select):
		if m.clusterCursor < len(m.clusters) {
			// Entering an empty cluster is a silent no-op.
			if m.navigator.Enter(m.clusters, m.clusters[m.clusterCursor].Key) {
				m.state = StateCarousel
			}
		}
	}
	return m, nil
}

func (m Model) handleCarouselKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.navigator.Exit()
		m.state = StateVision

	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Left):
		m.navigator.Move(-1)

	case key.Matches(msg, m.keymap.Right):
		m.navigator.Move(1)

	case key.Matches(msg, m.keymap.Select), key.Matches(msg, m.keymap.Edit):
		if m.navigator.Open() {
			return m.beginEdit(m.navigator.Current().ID)
		}
	}
	return m, nil
}

// beginEdit opens the edit form for the given order. Unknown ids no-op.
func (m Model) beginEdit(id string) (tea.Model, tea.Cmd) {
	if !m.session.Begin(m.orders, id) {
		return m, nil
	}
	m.editForm = components.NewEditFormModel(id, m.session.Buffer(), m.theme)
	m.editReturn = m.state
	m.state = StateEditing
	return m, nil
}

func (m Model) updateEditForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editForm, cmd = m.editForm.Update(msg)

	if m.editForm.IsCancelled() {
		m.session.Cancel()
		m.state = m.editReturn
		return m, cmd
	}
	if m.editForm.IsDone() {
		return m.commitEdit()
	}
	return m, cmd
}

// commitEdit applies the edit optimistically, reprojects every view and
// dispatches the remote sync. The record set is already correct locally when
// the sync is still in flight; the remote outcome only drives notifications.
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	update, ok := m.session.Commit(m.orders)
	m.state = m.editReturn
	m.refresh()

	// Clusters were rebuilt; re-enter the active one so the carousel sees
	// fresh members.
	if m.navigator.Open() {
		clusterKey := m.navigator.Key()
		m.navigator.Exit()
		if !m.navigator.Enter(m.clusters, clusterKey) {
			m.state = StateVision
		}
	}

	if !ok {
		// Stale edit: the record vanished from the set. No remote call.
		return m, nil
	}
	cmd := tea.Batch(
		m.syncUpdate(update),
		m.setToast("Order Updated (Syncing...)"),
	)
	return m, cmd
}

// refresh reruns the filter/sort pass and the fan-out projections. Called on
// every criteria change and after each record-set mutation.
func (m *Model) refresh() {
	m.filtered = m.criteria.Apply(m.orders)
	m.stats = engine.Summarize(m.filtered)
	m.leaders = engine.Leaderboard(m.filtered)
	m.clusters = engine.Clusterize(m.filtered)

	if m.gridCursor >= len(m.filtered) {
		m.gridCursor = len(m.filtered) - 1
	}
	if m.gridCursor < 0 {
		m.gridCursor = 0
	}
	if m.clusterCursor >= len(m.clusters) {
		m.clusterCursor = len(m.clusters) - 1
	}
	if m.clusterCursor < 0 {
		m.clusterCursor = 0
	}
}

// rebuildOptions re-derives the dropdown option sets from the FULL record
// set. Runs when the set is replaced, not when filters change.
func (m *Model) rebuildOptions() {
	m.mediators = engine.MediatorOptions(m.orders)
	m.months = engine.MonthOptions(m.orders)
}

func (m Model) mediatorOptions() []string {
	return append([]string{engine.Any}, m.mediators...)
}

func (m Model) monthOptions() []string {
	return append([]string{engine.Any}, m.months...)
}

func statusOptions() []string {
	return []string{engine.Any, engine.StatusQueues, model.StatusPaid, model.StatusPending, model.StatusWarning}
}

func typeOptions() []string {
	return []string{engine.Any, engine.TypeLess, engine.TypeCommission, engine.TypeFull}
}

// cycleOption steps to the next selection, wrapping at the end.
func cycleOption(current string, options []string) string {
	if len(options) == 0 {
		return engine.Any
	}
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// setToast shows a transient message and schedules its dismissal.
func (m *Model) setToast(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	return m.expireToast(m.toastSeq)
}
