package tui

import (
	"github.com/slimcoreui/preorder-admin/internal/gateway"
	"github.com/slimcoreui/preorder-admin/internal/model"
)

// Data loading messages.
type ordersLoadedMsg struct {
	err    error
	orders []model.Order
}

type logsLoadedMsg struct {
	err  error
	logs []gateway.EditLog
}

// Async operation messages.
type syncResultMsg struct {
	err error
	id  string
}

// Keep-alive scheduling.
type keepAliveTickMsg struct{}

type pingDoneMsg struct {
	err error
}

// Toast lifecycle: a toast dismisses itself unless a newer one replaced it.
type toastExpireMsg struct {
	seq int
}
