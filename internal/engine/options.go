package engine

import (
	"sort"
	"time"

	"github.com/slimcoreui/preorder-admin/internal/model"
)

// MediatorNone is the placeholder the sheet uses for orders without an
// assigned mediator.
const MediatorNone = "N/A"

// MediatorOptions derives the mediator dropdown from the FULL record set:
// deduplicated, placeholder and blanks excluded, sorted lexicographically.
// Recomputed when the full set changes, not when filters change.
func MediatorOptions(orders []model.Order) []string {
	seen := make(map[string]struct{}, len(orders))
	var options []string
	for _, o := range orders {
		if o.Mediator == "" || o.Mediator == MediatorNone {
			continue
		}
		if _, ok := seen[o.Mediator]; ok {
			continue
		}
		seen[o.Mediator] = struct{}{}
		options = append(options, o.Mediator)
	}
	sort.Strings(options)
	return options
}

// MonthOptions derives the month dropdown from the FULL record set:
// delivery months bucketed via MonthBucket, invalid sentinel excluded,
// sorted chronologically.
func MonthOptions(orders []model.Order) []string {
	seen := make(map[string]struct{}, len(orders))
	var options []string
	for _, o := range orders {
		bucket := model.MonthBucket(o.DeliveryDate)
		if bucket == model.InvalidMonth {
			continue
		}
		if _, ok := seen[bucket]; ok {
			continue
		}
		seen[bucket] = struct{}{}
		options = append(options, bucket)
	}
	sort.Slice(options, func(i, j int) bool {
		a, _ := time.Parse("Jan 2006", options[i])
		b, _ := time.Parse("Jan 2006", options[j])
		return a.Before(b)
	})
	return options
}
