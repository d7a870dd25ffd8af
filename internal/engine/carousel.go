package engine

import (
	"github.com/slimcoreui/preorder-admin/internal/model"
)

// WindowRadius is how many cards are rendered either side of the focused one.
const WindowRadius = 2

// Navigator is the carousel state machine over one cluster's members:
// Closed, or Open(key, index) with index always inside [0, len-1].
type Navigator struct {
	key     string
	members []model.Order
	index   int
	open    bool
}

// Open reports whether a cluster is being navigated.
func (n *Navigator) Open() bool { return n.open }

// Key returns the active cluster key, or "" when closed.
func (n *Navigator) Key() string {
	if !n.open {
		return ""
	}
	return n.key
}

// Index returns the focused position within the active cluster.
func (n *Navigator) Index() int { return n.index }

// Len returns the member count of the active cluster.
func (n *Navigator) Len() int { return len(n.members) }

// Current returns the focused order. Only meaningful while open.
func (n *Navigator) Current() model.Order {
	if !n.open || n.index >= len(n.members) {
		return model.Order{}
	}
	return n.members[n.index]
}

// Enter opens the named cluster at its first member. A no-op returning false
// when the key is unknown or the cluster is empty.
func (n *Navigator) Enter(clusters []Cluster, key string) bool {
	for _, c := range clusters {
		if c.Key == key && len(c.Orders) > 0 {
			n.key = key
			n.members = c.Orders
			n.index = 0
			n.open = true
			return true
		}
	}
	return false
}

// Move shifts focus by direction (±1). Moves past either end are rejected
// without a state change; there is no wraparound.
func (n *Navigator) Move(direction int) bool {
	if !n.open {
		return false
	}
	next := n.index + direction
	if next < 0 || next >= len(n.members) {
		return false
	}
	n.index = next
	return true
}

// Exit closes the carousel, discarding position. No history is preserved.
func (n *Navigator) Exit() {
	n.open = false
	n.key = ""
	n.members = nil
	n.index = 0
}

// WindowItem is one rendered carousel card with its offset from the focused
// card; offset 0 is the only interactive one.
type WindowItem struct {
	Order  model.Order
	Offset int
}

// Window returns the members within WindowRadius of the focused index, each
// annotated with its relative offset for depth ordering.
func (n *Navigator) Window() []WindowItem {
	if !n.open {
		return nil
	}
	start := n.index - WindowRadius
	if start < 0 {
		start = 0
	}
	end := n.index + WindowRadius
	if end > len(n.members)-1 {
		end = len(n.members) - 1
	}

	items := make([]WindowItem, 0, end-start+1)
	for i := start; i <= end; i++ {
		items = append(items, WindowItem{Order: n.members[i], Offset: i - n.index})
	}
	return items
}
