// Package engine implements the derived-state pipeline behind the dashboard:
// the filter/sort pass over the full record set, the aggregation projections
// that fan out from the filtered sequence, the single-slot edit session and
// the carousel navigator.
package engine

import (
	"sort"
	"strings"

	"github.com/slimcoreui/preorder-admin/internal/model"
)

// Any is the wildcard selection that bypasses a filter predicate.
const Any = "All"

// StatusQueues is the synthetic status selection matching orders whose
// status is empty or WARNING.
const StatusQueues = "QUEUES"

// Type filter selections.
const (
	TypeLess       = "LESS"       // deducted > 0
	TypeCommission = "COMMISSION" // commission > 0
	TypeFull       = "FULL"       // neither deduction nor commission
)

// SortDirection orders the filtered sequence by parsed delivery date.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// Criteria is the ephemeral filter state. All predicates are independent and
// combined with AND; Sort is applied after filtering.
type Criteria struct {
	Search   string
	Mediator string
	Status   string
	Month    string
	Type     string
	Sort     SortDirection
}

// DefaultCriteria selects everything, newest deliveries first.
func DefaultCriteria() Criteria {
	return Criteria{
		Mediator: Any,
		Status:   Any,
		Month:    Any,
		Type:     Any,
		Sort:     SortDesc,
	}
}

// Apply runs the filter+sort pass and returns a new sequence. The input set
// is never mutated or reordered.
func (c Criteria) Apply(orders []model.Order) []model.Order {
	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if c.matches(o) {
			filtered = append(filtered, o)
		}
	}

	// Stable keeps insertion order for equal delivery dates.
	sort.SliceStable(filtered, func(i, j int) bool {
		a := model.DateSortKey(filtered[i].DeliveryDate)
		b := model.DateSortKey(filtered[j].DeliveryDate)
		if c.Sort == SortAsc {
			return a < b
		}
		return a > b
	})

	return filtered
}

func (c Criteria) matches(o model.Order) bool {
	return c.matchSearch(o) &&
		c.matchMediator(o) &&
		c.matchStatus(o) &&
		c.matchMonth(o) &&
		c.matchType(o)
}

func (c Criteria) matchSearch(o model.Order) bool {
	if c.Search == "" {
		return true
	}
	needle := strings.ToLower(c.Search)
	return strings.Contains(strings.ToLower(o.ID), needle) ||
		strings.Contains(strings.ToLower(o.Reviewer), needle) ||
		strings.Contains(strings.ToLower(o.Product), needle)
}

func (c Criteria) matchMediator(o model.Order) bool {
	return c.Mediator == Any || o.Mediator == c.Mediator
}

func (c Criteria) matchStatus(o model.Order) bool {
	switch c.Status {
	case Any, "":
		return true
	case StatusQueues:
		return o.Status == "" || o.Status == model.StatusWarning
	default:
		return o.Status == c.Status
	}
}

func (c Criteria) matchMonth(o model.Order) bool {
	if c.Month == Any || c.Month == "" {
		return true
	}
	// Unparsable dates bucket to the invalid sentinel, which is never
	// offered as a selection, so they match no concrete month.
	return model.MonthBucket(o.DeliveryDate) == c.Month
}

func (c Criteria) matchType(o model.Order) bool {
	switch c.Type {
	case TypeLess:
		return o.Deducted > 0
	case TypeCommission:
		return o.Commission > 0
	case TypeFull:
		return o.Deducted == 0 && o.Commission == 0
	default:
		return true
	}
}
