package engine

import (
	"sort"

	"github.com/slimcoreui/preorder-admin/internal/model"
)

// LeaderboardSize caps the mediator leaderboard.
const LeaderboardSize = 5

// ClusterUnassigned is the cluster key for orders without a real mediator.
const ClusterUnassigned = "Unassigned"

// Stats sums money amounts across the filtered sequence.
type Stats struct {
	Count      int
	Total      float64
	Refundable float64
	Commission float64
	Deducted   float64
}

// Summarize computes the stats projection over the filtered sequence.
func Summarize(filtered []model.Order) Stats {
	s := Stats{Count: len(filtered)}
	for _, o := range filtered {
		s.Total += o.Total
		s.Refundable += o.Refundable
		s.Commission += o.Commission
		s.Deducted += o.Deducted
	}
	return s
}

// LeaderboardEntry is one ranked mediator.
type LeaderboardEntry struct {
	Mediator string
	Count    int
}

// Leaderboard counts orders per real mediator across the filtered sequence,
// descending by count, ties broken by first-encountered order, truncated to
// LeaderboardSize. Blank and placeholder mediators never appear.
func Leaderboard(filtered []model.Order) []LeaderboardEntry {
	counts := make(map[string]int)
	var order []string
	for _, o := range filtered {
		if o.Mediator == "" || o.Mediator == MediatorNone {
			continue
		}
		if _, ok := counts[o.Mediator]; !ok {
			order = append(order, o.Mediator)
		}
		counts[o.Mediator]++
	}

	entries := make([]LeaderboardEntry, 0, len(order))
	for _, m := range order {
		entries = append(entries, LeaderboardEntry{Mediator: m, Count: counts[m]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	return entries
}

// Cluster groups filtered orders sharing a mediator.
type Cluster struct {
	Key    string
	Orders []model.Order
}

// Clusterize groups the filtered sequence by mediator (ClusterUnassigned for
// blanks and the placeholder), largest group first, ties broken by
// first-encountered order. Feeds the carousel navigator.
func Clusterize(filtered []model.Order) []Cluster {
	index := make(map[string]int)
	var clusters []Cluster
	for _, o := range filtered {
		key := o.Mediator
		if key == "" || key == MediatorNone {
			key = ClusterUnassigned
		}
		i, ok := index[key]
		if !ok {
			i = len(clusters)
			index[key] = i
			clusters = append(clusters, Cluster{Key: key})
		}
		clusters[i].Orders = append(clusters[i].Orders, o)
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return len(clusters[i].Orders) > len(clusters[j].Orders)
	})
	return clusters
}
