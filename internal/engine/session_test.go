package engine

import (
	"testing"

	"github.com/slimcoreui/preorder-admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func editableOrders() []model.Order {
	orders := []model.Order{
		{ID: "ORD-1", Status: "PENDING", FilledDate: "", PaidDate: "", Remarks: "call back"},
		{ID: "ORD-2", Status: "PAID", FilledDate: "01/01/2024", PaidDate: "02/01/2024"},
	}
	model.NormalizeAll(orders)
	return orders
}

func TestSession_Begin(t *testing.T) {
	orders := editableOrders()
	var s Session

	ok := s.Begin(orders, "ORD-1")

	require.True(t, ok)
	assert.True(t, s.Active())
	assert.Equal(t, "ORD-1", s.ID())
	assert.Equal(t, EditBuffer{Status: "PENDING", Remarks: "call back"}, *s.Buffer())
}

func TestSession_Begin_UnknownID(t *testing.T) {
	orders := editableOrders()
	var s Session

	ok := s.Begin(orders, "nope")

	assert.False(t, ok)
	assert.False(t, s.Active())
}

func TestSession_Begin_ReplacesSlot(t *testing.T) {
	orders := editableOrders()
	var s Session

	require.True(t, s.Begin(orders, "ORD-1"))
	require.True(t, s.Begin(orders, "ORD-2"))

	assert.Equal(t, "ORD-2", s.ID())
	assert.Equal(t, "PAID", s.Buffer().Status)
}

func TestEditBuffer_SetStatus_AutofillsPaidDate(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		autofill bool
	}{
		{name: "paid", status: model.StatusPaid, autofill: true},
		{name: "pending", status: model.StatusPending, autofill: true},
		{name: "warning", status: model.StatusWarning, autofill: false},
		{name: "cleared", status: "", autofill: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b EditBuffer
			b.SetStatus(tt.status)
			assert.Equal(t, tt.status, b.Status)
			if tt.autofill {
				assert.Equal(t, model.Today(), b.PaidDate)
			} else {
				assert.Empty(t, b.PaidDate)
			}
		})
	}
}

func TestSession_Commit(t *testing.T) {
	orders := editableOrders()
	var s Session
	require.True(t, s.Begin(orders, "ORD-1"))

	s.Buffer().SetStatus(model.StatusPaid)
	s.Buffer().FilledDate = "10/03/2024"
	s.Buffer().Remarks = "settled"

	update, ok := s.Commit(orders)

	require.True(t, ok)
	assert.Equal(t, "ORD-1", update.ID)
	assert.Equal(t, "PAID", update.Status)
	assert.Equal(t, "10/03/2024", update.FilledDate)
	assert.Equal(t, "settled", update.Remarks)

	// The record is mutated in place and its status re-derived.
	assert.Equal(t, "PAID", orders[0].Status)
	assert.Equal(t, "settled", orders[0].Remarks)
	assert.Equal(t, model.LogicValid, orders[0].LogicStatus)

	// The session is cleared.
	assert.False(t, s.Active())
}

func TestSession_Commit_RederivesLogicStatus(t *testing.T) {
	orders := editableOrders()
	var s Session
	require.True(t, s.Begin(orders, "ORD-1"))

	// Paid date set while status stays PENDING: inconsistent.
	s.Buffer().PaidDate = "10/03/2024"

	_, ok := s.Commit(orders)

	require.True(t, ok)
	assert.Equal(t, model.LogicError, orders[0].LogicStatus)
}

func TestSession_Commit_WithoutActiveSession(t *testing.T) {
	orders := editableOrders()
	var s Session

	_, ok := s.Commit(orders)

	assert.False(t, ok)
	assert.Equal(t, editableOrders(), orders)
}

func TestSession_Commit_RecordGone(t *testing.T) {
	orders := editableOrders()
	var s Session
	require.True(t, s.Begin(orders, "ORD-1"))

	// The set was replaced by a refresh that no longer has the record.
	replaced := []model.Order{{ID: "ORD-9"}}

	update, ok := s.Commit(replaced)

	assert.False(t, ok)
	assert.Equal(t, Update{}, update)
	assert.Equal(t, "ORD-9", replaced[0].ID)
	assert.Empty(t, replaced[0].Status)
	// A stale edit aborts silently and still clears the slot.
	assert.False(t, s.Active())
}

func TestSession_Cancel(t *testing.T) {
	orders := editableOrders()
	var s Session
	require.True(t, s.Begin(orders, "ORD-1"))

	s.Cancel()

	assert.False(t, s.Active())
	assert.Empty(t, s.ID())
	_, ok := s.Commit(orders)
	assert.False(t, ok)
}
