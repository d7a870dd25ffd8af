// Package model defines the order record and its derived consistency status.
package model

// Order statuses stored remotely. The status column is free-form text; these
// are the values the sheet actually uses. An empty status means queued.
const (
	StatusPaid    = "PAID"
	StatusPending = "PENDING"
	StatusWarning = "WARNING"
)

// LogicStatus is the derived consistency flag for an order. It is computed
// locally from status and date fields and is never sent to or read from the
// remote store.
type LogicStatus string

const (
	LogicValid   LogicStatus = "VALID"
	LogicWarning LogicStatus = "WARNING"
	LogicError   LogicStatus = "ERROR"
)

// Order represents a single preorder refund/commission record as returned by
// the remote sheet. Money amounts are INR. Dates are DD/MM/YYYY strings or
// empty.
type Order struct {
	ID           string      `json:"id"`
	Status       string      `json:"status"`
	Mediator     string      `json:"mediator"`
	Reviewer     string      `json:"reviewer"`
	Product      string      `json:"product"`
	DealType     string      `json:"dealType"`
	DeliveryDate string      `json:"deliveryDate"`
	FilledDate   string      `json:"filledDate"`
	RefundDate   string      `json:"refundDate"`
	PaidDate     string      `json:"paidDate"`
	Remarks      string      `json:"remarks"`
	Phone        string      `json:"phone"`
	FormLink     string      `json:"formLink"`
	Total        float64     `json:"total"`
	Refundable   float64     `json:"refundable"`
	Commission   float64     `json:"commission"`
	Deducted     float64     `json:"deducted"`
	LogicStatus  LogicStatus `json:"-"`
}

// DeriveStatus computes the consistency status for an order. It is a pure
// function of Status, PaidDate and FilledDate.
//
// A paid date with a status other than PAID is an ERROR: money is marked as
// handed over but the status column disagrees. A PAID status without a filled
// date is a WARNING: paid without a fulfillment record. ERROR takes
// precedence over WARNING.
func DeriveStatus(o Order) LogicStatus {
	if o.PaidDate != "" && o.Status != StatusPaid {
		return LogicError
	}
	if o.FilledDate == "" && o.Status == StatusPaid {
		return LogicWarning
	}
	return LogicValid
}

// Normalize re-derives the logic status in place. Called on every record
// right after fetch and after any field mutation, never lazily at render
// time.
func (o *Order) Normalize() {
	o.LogicStatus = DeriveStatus(*o)
}

// NormalizeAll derives the logic status for every record in a freshly
// fetched set.
func NormalizeAll(orders []Order) {
	for i := range orders {
		orders[i].Normalize()
	}
}
