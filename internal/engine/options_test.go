package engine

import (
	"testing"

	"github.com/slimcoreui/preorder-admin/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMediatorOptions(t *testing.T) {
	orders := []model.Order{
		{Mediator: "Chitra"},
		{Mediator: "Asha"},
		{Mediator: "N/A"},
		{Mediator: ""},
		{Mediator: "Asha"},
		{Mediator: "Bilal"},
	}

	got := MediatorOptions(orders)
	assert.Equal(t, []string{"Asha", "Bilal", "Chitra"}, got)
}

func TestMediatorOptions_Empty(t *testing.T) {
	assert.Empty(t, MediatorOptions(nil))
}

func TestMonthOptions(t *testing.T) {
	orders := []model.Order{
		{DeliveryDate: "15/03/2024"},
		{DeliveryDate: "02/01/2024"},
		{DeliveryDate: "garbage"},
		{DeliveryDate: ""},
		{DeliveryDate: "28/01/2024"},
		{DeliveryDate: "01/12/2023"},
	}

	got := MonthOptions(orders)
	// Chronological, not lexicographic: Dec 2023 precedes Jan 2024.
	assert.Equal(t, []string{"Dec 2023", "Jan 2024", "Mar 2024"}, got)
}
