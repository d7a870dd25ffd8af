package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "valid date",
			input: "05/01/2024",
			want:  time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "leading and trailing whitespace",
			input: " 28/02/2023 ",
			want:  time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "empty string",
			input: "",
			ok:    false,
		},
		{
			name:  "wrong separator",
			input: "05-01-2024",
			ok:    false,
		},
		{
			name:  "day overflow",
			input: "35/01/2024",
			ok:    false,
		},
		{
			name:  "missing year",
			input: "05/01",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got))
			}
		})
	}
}

func TestDateSortKey(t *testing.T) {
	assert.Equal(t, int64(0), DateSortKey(""))
	assert.Equal(t, int64(0), DateSortKey("garbage"))

	earlier := DateSortKey("01/01/2024")
	later := DateSortKey("02/01/2024")
	assert.Less(t, earlier, later)
	assert.Greater(t, earlier, int64(0))
}

func TestMonthBucket(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "january", input: "05/01/2024", want: "Jan 2024"},
		{name: "december", input: "31/12/2023", want: "Dec 2023"},
		{name: "empty", input: "", want: InvalidMonth},
		{name: "malformed", input: "2024-01-05", want: InvalidMonth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthBucket(tt.input))
		})
	}
}

func TestToday(t *testing.T) {
	got, ok := ParseDate(Today())
	assert.True(t, ok)
	assert.WithinDuration(t, time.Now(), got, 48*time.Hour)
}
