package engine

import (
	"github.com/slimcoreui/preorder-admin/internal/model"
)

// EditBuffer holds the mutable fields of an order while it is being edited.
type EditBuffer struct {
	Status     string
	FilledDate string
	PaidDate   string
	Remarks    string
}

// SetStatus updates the buffered status. Choosing PAID or PENDING pre-fills
// the paid date with today as a convenience default; the operator can still
// overwrite it before committing.
func (b *EditBuffer) SetStatus(status string) {
	b.Status = status
	if status == model.StatusPaid || status == model.StatusPending {
		b.PaidDate = model.Today()
	}
}

// Update is the mutation payload dispatched to the remote store after a
// commit. The derived logic status is intentionally absent.
type Update struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	FilledDate string `json:"filledDate"`
	PaidDate   string `json:"paidDate"`
	Remarks    string `json:"remarks"`
}

// Session tracks at most one in-flight edit: Idle -> Editing -> Idle.
// Beginning a second edit simply replaces the slot; there is no queueing.
// The buffer lives behind a pointer so copies of an enclosing model keep
// editing the same slot.
type Session struct {
	id     string
	buffer *EditBuffer
	active bool
}

// Active reports whether an edit is in progress.
func (s *Session) Active() bool { return s.active }

// ID returns the id of the order under edit, or "" when idle.
func (s *Session) ID() string {
	if !s.active {
		return ""
	}
	return s.id
}

// Buffer exposes the edit buffer for the active session; nil while idle.
func (s *Session) Buffer() *EditBuffer { return s.buffer }

// Begin snapshots the mutable fields of the order with the given id into the
// edit buffer. A no-op returning false when the id is not in the set.
func (s *Session) Begin(orders []model.Order, id string) bool {
	for _, o := range orders {
		if o.ID == id {
			s.id = id
			s.buffer = &EditBuffer{
				Status:     o.Status,
				FilledDate: o.FilledDate,
				PaidDate:   o.PaidDate,
				Remarks:    o.Remarks,
			}
			s.active = true
			return true
		}
	}
	return false
}

// Cancel discards the session without touching the record set.
func (s *Session) Cancel() {
	s.active = false
	s.id = ""
	s.buffer = nil
}

// Commit merges the buffer into the matching record in place, re-derives its
// logic status and clears the session. The returned Update is what must be
// dispatched to the remote store; ok is false — and no remote call may be
// issued — when there is no active session or the record has vanished from
// the set (a stale edit, aborted silently).
//
// The local mutation is optimistic: it is visible immediately and is never
// rolled back whatever the remote outcome.
func (s *Session) Commit(orders []model.Order) (Update, bool) {
	if !s.active {
		return Update{}, false
	}
	defer s.Cancel()

	for i := range orders {
		if orders[i].ID != s.id {
			continue
		}
		orders[i].Status = s.buffer.Status
		orders[i].FilledDate = s.buffer.FilledDate
		orders[i].PaidDate = s.buffer.PaidDate
		orders[i].Remarks = s.buffer.Remarks
		orders[i].Normalize()

		return Update{
			ID:         s.id,
			Status:     s.buffer.Status,
			FilledDate: s.buffer.FilledDate,
			PaidDate:   s.buffer.PaidDate,
			Remarks:    s.buffer.Remarks,
		}, true
	}

	return Update{}, false
}
