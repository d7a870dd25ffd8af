package engine

import (
	"testing"

	"github.com/slimcoreui/preorder-admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []model.Order {
	return []model.Order{
		{ID: "ORD-1", Status: "PAID", Mediator: "Asha", Reviewer: "Ravi", Product: "Phone X", DeliveryDate: "05/01/2024", Commission: 200},
		{ID: "ORD-2", Status: "", Mediator: "Bilal", Reviewer: "Sara", Product: "Tablet Y", DeliveryDate: "12/02/2024", Deducted: 150},
		{ID: "ORD-3", Status: "WARNING", Mediator: "Asha", Reviewer: "Maya", Product: "Phone X Pro", DeliveryDate: "20/01/2024"},
		{ID: "ORD-4", Status: "PENDING", Mediator: "N/A", Reviewer: "Ravi", Product: "Watch Z", DeliveryDate: "bogus"},
		{ID: "ORD-5", Status: "PAID", Mediator: "Chitra", Reviewer: "Dev", Product: "Phone X", DeliveryDate: "05/01/2024", Commission: 80},
	}
}

func ids(orders []model.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestCriteria_Apply_Predicates(t *testing.T) {
	orders := sampleOrders()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "defaults keep everything",
			criteria: DefaultCriteria(),
			want:     []string{"ORD-2", "ORD-3", "ORD-1", "ORD-5", "ORD-4"},
		},
		{
			name: "search matches id case-insensitively",
			criteria: func() Criteria {
				c := DefaultCriteria()
				c.Search = "ord-2"
				return c
			}(),
			want: []string{"ORD-2"},
		},
		{
			name: "search matches reviewer and product",
			criteria: func() Criteria {
				c := DefaultCriteria()
				c.Search = "phone x"
				c.Sort = SortAsc
				return c
			}(),
			want: []string{"ORD-1", "ORD-5", "ORD-3"},
		},
		{
			name: "mediator exact match",
			criteria: func() Criteria {
				c := DefaultCriteria()
				c.Mediator = "Asha"
				c.Sort = SortAsc
				return c
			}(),
			want: []string{"ORD-1", "ORD-3"},
		},
		{
			name: "status exact match",
			criteria: func() Criteria {
				c := DefaultCriteria()
				c.Status = "PAID"
				c.Sort = SortAsc
				return c
			}(),
			want: []string{"ORD-1", "ORD-5"},
		},
		{
			name: "QUEUES matches empty and WARNING statuses only",
			criteria: func() Criteria {
				c := DefaultCriteria()
				c.Status = StatusQueues
				c.Sort = SortAsc
				return c
			}(),
			want: []string{"ORD-3", "ORD-2"},
		},
		{
			name: "month bucket match excludes unparsable dates",
			criteria: func() Criteria {
				c := DefaultCriteria()
				c.Month = "Jan 2024"
				c.Sort = SortAsc
				return c
			}(),
			want: []string{"ORD-1", "ORD-5", "ORD-3"},
		},
		{
			name: "type LESS requires a deduction",
			criteria: func() Criteria {
				c := DefaultCriteria()
				c.Type = TypeLess
				return c
			}(),
			want: []string{"ORD-2"},
		},
		{
			name: "type COMMISSION requires a commission",
			criteria: func() Criteria {
				c := DefaultCriteria()
				c.Type = TypeCommission
				c.Sort = SortAsc
				return c
			}(),
			want: []string{"ORD-1", "ORD-5"},
		},
		{
			name: "type FULL requires neither",
			criteria: func() Criteria {
				c := DefaultCriteria()
				c.Type = TypeFull
				c.Sort = SortAsc
				return c
			}(),
			want: []string{"ORD-4", "ORD-3"},
		},
		{
			name: "predicates combine with AND",
			criteria: func() Criteria {
				c := DefaultCriteria()
				c.Mediator = "Asha"
				c.Status = "PAID"
				c.Month = "Jan 2024"
				return c
			}(),
			want: []string{"ORD-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.criteria.Apply(orders)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCriteria_Apply_Sort(t *testing.T) {
	orders := sampleOrders()

	asc := DefaultCriteria()
	asc.Sort = SortAsc
	got := asc.Apply(orders)
	require.Len(t, got, 5)

	// Unparsable dates sort as the earliest timestamp.
	assert.Equal(t, "ORD-4", got[0].ID)
	// Equal delivery dates keep insertion order.
	assert.Equal(t, []string{"ORD-4", "ORD-1", "ORD-5", "ORD-3", "ORD-2"}, ids(got))

	desc := DefaultCriteria()
	desc.Sort = SortDesc
	assert.Equal(t, []string{"ORD-2", "ORD-3", "ORD-1", "ORD-5", "ORD-4"}, ids(desc.Apply(orders)))
}

func TestCriteria_Apply_Idempotent(t *testing.T) {
	orders := sampleOrders()
	c := DefaultCriteria()
	c.Status = StatusQueues
	c.Search = "o"

	first := c.Apply(orders)
	second := c.Apply(orders)
	assert.Equal(t, first, second)
}

func TestCriteria_Apply_PredicatesCommute(t *testing.T) {
	orders := sampleOrders()

	mediatorOnly := DefaultCriteria()
	mediatorOnly.Mediator = "Asha"
	statusOnly := DefaultCriteria()
	statusOnly.Status = "PAID"
	both := DefaultCriteria()
	both.Mediator = "Asha"
	both.Status = "PAID"

	assert.Equal(t, both.Apply(orders), statusOnly.Apply(mediatorOnly.Apply(orders)))
	assert.Equal(t, both.Apply(orders), mediatorOnly.Apply(statusOnly.Apply(orders)))
}

func TestCriteria_Apply_DoesNotMutateInput(t *testing.T) {
	orders := sampleOrders()
	before := ids(orders)

	c := DefaultCriteria()
	c.Sort = SortAsc
	c.Apply(orders)

	assert.Equal(t, before, ids(orders))
}
