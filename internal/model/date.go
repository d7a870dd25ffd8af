package model

import (
	"strings"
	"time"
)

// DateLayout is the wire format for all order dates.
const DateLayout = "02/01/2006"

// InvalidMonth is the bucket for dates that fail to parse. It is excluded
// from the month dropdown and never matches a selected month.
const InvalidMonth = "Invalid"

// ParseDate parses a DD/MM/YYYY date string. The second return is false when
// the string is empty or malformed.
func ParseDate(s string) (time.Time, bool) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DateSortKey returns the timestamp used for delivery-date ordering.
// Unparsable dates sort as the earliest possible value.
func DateSortKey(s string) int64 {
	t, ok := ParseDate(s)
	if !ok {
		return 0
	}
	return t.Unix()
}

// MonthBucket buckets a date string into a "Jan 2006" key, or InvalidMonth
// when the date does not parse.
func MonthBucket(s string) string {
	t, ok := ParseDate(s)
	if !ok {
		return InvalidMonth
	}
	return t.Format("Jan 2006")
}

// FormatDate renders a time in the wire date format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current date in wire format. Used to pre-fill the paid
// date when an edit marks an order PAID or PENDING.
func Today() string {
	return FormatDate(time.Now())
}
