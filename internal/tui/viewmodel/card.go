// Package viewmodel contains pure projections from application state to
// display data. Nothing in here touches bubbletea or lipgloss; components
// bind these values to styles.
package viewmodel

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/slimcoreui/preorder-admin/internal/model"
)

// Status kinds drive card accents.
const (
	KindPaid    = "paid"
	KindPending = "pending"
	KindQueues  = "queues"
	KindError   = "error"
)

// MoneyRow is one formatted amount line on a card.
type MoneyRow struct {
	Label  string
	Amount string
	Accent string // "", "plus" or "minus"
}

// CardView is the display projection of one order.
type CardView struct {
	ID           string
	StatusLabel  string
	StatusKind   string
	DealType     string
	Product      string
	Mediator     string
	Remarks      string
	DeliveryDate string
	FilledDate   string
	RefundDate   string
	PaidDate     string
	FormLink     string
	WhatsAppLink string
	MoneyRows    []MoneyRow
}

// NewCardView projects an order onto its card. Display rules follow the
// panel: an empty status shows as QUEUES, a derived ERROR overrides the
// accent and label, and the middle money row shows the deduction when
// present, otherwise the commission.
func NewCardView(o model.Order) CardView {
	label := o.Status
	if label == "" {
		label = "QUEUES"
	}

	kind := KindQueues
	switch o.Status {
	case model.StatusPaid:
		kind = KindPaid
	case model.StatusPending:
		kind = KindPending
	case model.StatusWarning:
		kind = KindError
	}
	if o.LogicStatus == model.LogicError {
		kind = KindError
		label = "ERROR (Check)"
	}

	rows := []MoneyRow{{Label: "Total", Amount: FormatINR(o.Total)}}
	if o.Deducted > 0 {
		rows = append(rows, MoneyRow{Label: "Deducted", Amount: "-" + FormatINR(o.Deducted), Accent: "minus"})
	} else if o.Commission > 0 {
		rows = append(rows, MoneyRow{Label: "Commission", Amount: "+" + FormatINR(o.Commission), Accent: "plus"})
	}
	rows = append(rows, MoneyRow{Label: "REFUNDABLE", Amount: FormatINR(o.Refundable)})

	return CardView{
		ID:           o.ID,
		StatusLabel:  label,
		StatusKind:   kind,
		DealType:     o.DealType,
		Product:      SanitizeForDisplay(o.Product),
		Mediator:     o.Mediator,
		Remarks:      SanitizeForDisplay(o.Remarks),
		DeliveryDate: OrDash(o.DeliveryDate),
		FilledDate:   OrDash(o.FilledDate),
		RefundDate:   OrDash(o.RefundDate),
		PaidDate:     OrDash(o.PaidDate),
		FormLink:     formLink(o),
		WhatsAppLink: whatsAppLink(o),
		MoneyRows:    rows,
	}
}

func formLink(o model.Order) string {
	if len(strings.TrimSpace(o.FormLink)) <= 5 {
		return ""
	}
	return strings.TrimSpace(o.FormLink)
}

// whatsAppLink builds the refund-reminder link shown on cards with a phone
// number. The message mirrors the panel's reminder template.
func whatsAppLink(o model.Order) string {
	phone := strings.TrimSpace(o.Phone)
	if len(phone) <= 5 {
		return ""
	}
	msg := fmt.Sprintf("Hi _%s_,\n\nRefund Reminder for Order: *%s*\nTotal Refund Due: %s",
		o.Mediator, o.ID, FormatINR(o.Refundable))
	return "https://wa.me/" + phone + "?text=" + url.QueryEscape(msg)
}
