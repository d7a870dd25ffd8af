package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  LogicStatus
	}{
		{
			name:  "pending with no dates is valid",
			order: Order{ID: "A1", Status: StatusPending},
			want:  LogicValid,
		},
		{
			name:  "paid date without PAID status is an error",
			order: Order{ID: "A2", Status: StatusPending, PaidDate: "05/01/2024"},
			want:  LogicError,
		},
		{
			name:  "paid without filled date is a warning",
			order: Order{ID: "A3", Status: StatusPaid, PaidDate: "05/01/2024"},
			want:  LogicWarning,
		},
		{
			name:  "paid with filled date is valid",
			order: Order{Status: StatusPaid, PaidDate: "05/01/2024", FilledDate: "04/01/2024"},
			want:  LogicValid,
		},
		{
			name:  "empty status with paid date is an error",
			order: Order{Status: "", PaidDate: "01/02/2024"},
			want:  LogicError,
		},
		{
			name:  "empty record is valid",
			order: Order{},
			want:  LogicValid,
		},
		{
			name:  "error precedence over warning condition",
			order: Order{Status: StatusWarning, PaidDate: "05/01/2024", FilledDate: ""},
			want:  LogicError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.order))
		})
	}
}

func TestDeriveStatus_Deterministic(t *testing.T) {
	order := Order{Status: StatusPending, PaidDate: "05/01/2024"}
	first := DeriveStatus(order)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeriveStatus(order))
	}
}

func TestNormalizeAll(t *testing.T) {
	orders := []Order{
		{ID: "A1", Status: StatusPending},
		{ID: "A2", Status: StatusPending, PaidDate: "05/01/2024"},
		{ID: "A3", Status: StatusPaid, PaidDate: "05/01/2024"},
	}

	NormalizeAll(orders)

	assert.Equal(t, LogicValid, orders[0].LogicStatus)
	assert.Equal(t, LogicError, orders[1].LogicStatus)
	assert.Equal(t, LogicWarning, orders[2].LogicStatus)
}
