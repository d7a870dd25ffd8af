package viewmodel

import (
	"fmt"

	"github.com/slimcoreui/preorder-admin/internal/engine"
	"github.com/slimcoreui/preorder-admin/internal/gateway"
)

// StatsView is the formatted stats strip.
type StatsView struct {
	Orders     string
	TotalValue string
	Refundable string
	Commission string
	Deducted   string
}

// NewStatsView formats the stats projection for display.
func NewStatsView(s engine.Stats) StatsView {
	return StatsView{
		Orders:     fmt.Sprintf("%d", s.Count),
		TotalValue: FormatINR(s.Total),
		Refundable: FormatINR(s.Refundable),
		Commission: FormatINR(s.Commission),
		Deducted:   FormatINR(s.Deducted),
	}
}

// LeaderboardRow is one ranked mediator line.
type LeaderboardRow struct {
	Rank     string
	Mediator string
	Count    string
}

// NewLeaderboardRows formats the leaderboard projection.
func NewLeaderboardRows(entries []engine.LeaderboardEntry) []LeaderboardRow {
	rows := make([]LeaderboardRow, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, LeaderboardRow{
			Rank:     fmt.Sprintf("#%d", i+1),
			Mediator: e.Mediator,
			Count:    fmt.Sprintf("%d", e.Count),
		})
	}
	return rows
}

// ClusterCardView is one mediator stack on the vision grid.
type ClusterCardView struct {
	Key     string
	Initial string
	Count   string
}

// NewClusterCards formats the cluster projection.
func NewClusterCards(clusters []engine.Cluster) []ClusterCardView {
	cards := make([]ClusterCardView, 0, len(clusters))
	for _, c := range clusters {
		cards = append(cards, ClusterCardView{
			Key:     c.Key,
			Initial: Initial(c.Key),
			Count:   fmt.Sprintf("%d Orders", len(c.Orders)),
		})
	}
	return cards
}

// CarouselItemView is one windowed carousel card with its depth offset.
type CarouselItemView struct {
	Card   CardView
	Offset int
}

// CarouselView is the rendered carousel frame.
type CarouselView struct {
	Title   string
	Counter string
	Items   []CarouselItemView
}

// NewCarouselView projects the navigator state onto a frame.
func NewCarouselView(n *engine.Navigator) CarouselView {
	window := n.Window()
	items := make([]CarouselItemView, 0, len(window))
	for _, w := range window {
		items = append(items, CarouselItemView{Card: NewCardView(w.Order), Offset: w.Offset})
	}
	return CarouselView{
		Title:   n.Key(),
		Counter: fmt.Sprintf("%d / %d", n.Index()+1, n.Len()),
		Items:   items,
	}
}

// LogRow is one formatted edit-history line.
type LogRow struct {
	Time    string
	OrderID string
	Detail  string
}

// NewLogRows formats the remote edit history.
func NewLogRows(logs []gateway.EditLog) []LogRow {
	rows := make([]LogRow, 0, len(logs))
	for _, l := range logs {
		rows = append(rows, LogRow{
			Time:    l.Time,
			OrderID: l.OrderID,
			Detail:  SanitizeForDisplay(l.Detail),
		})
	}
	return rows
}
