package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slimcoreui/preorder-admin/internal/common"
	"github.com/slimcoreui/preorder-admin/internal/engine"
)

// loadOrders fetches the full record set. Failures degrade to an empty set;
// the fetch gives up after the configured safety timeout rather than waiting
// indefinitely.
func (m Model) loadOrders() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.config.LoadTimeout)
		defer cancel()

		orders, err := m.config.Remote.FetchOrders(ctx)
		if err != nil {
			common.LogError(err, "Initial load failed, proceeding with empty set", nil)
			return ordersLoadedMsg{err: err}
		}
		return ordersLoadedMsg{orders: orders}
	}
}

// syncUpdate dispatches a committed edit to the remote store. The local
// record already reflects the change; only a notification follows.
func (m Model) syncUpdate(update engine.Update) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.config.SyncTimeout)
		defer cancel()

		err := m.config.Remote.UpdateOrder(ctx, update)
		return syncResultMsg{id: update.ID, err: err}
	}
}

// loadLogs fetches the remote edit history for the notification panel.
func (m Model) loadLogs() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.config.SyncTimeout)
		defer cancel()

		logs, err := m.config.Remote.RecentLogs(ctx)
		return logsLoadedMsg{logs: logs, err: err}
	}
}

// scheduleKeepAlive arms the next keep-alive tick.
func (m Model) scheduleKeepAlive() tea.Cmd {
	return tea.Tick(m.config.KeepAlive, func(time.Time) tea.Msg {
		return keepAliveTickMsg{}
	})
}

// pingServer issues the keep-alive call. Failures are ignored.
func (m Model) pingServer() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), m.config.SyncTimeout)
		defer cancel()

		return pingDoneMsg{err: m.config.Remote.Ping(ctx)}
	}
}

// expireToast dismisses the toast with the given sequence number.
func (m Model) expireToast(seq int) tea.Cmd {
	return tea.Tick(m.config.ToastFor, func(time.Time) tea.Msg {
		return toastExpireMsg{seq: seq}
	})
}
