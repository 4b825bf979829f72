package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEventDate(t *testing.T) {
	d, err := ParseEventDate("15/01/2025")

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), d)
}

func TestParseEventDateRejectsOtherLayouts(t *testing.T) {
	for _, in := range []string{"2025-01-15", "15 Jan 2025", "", "32/01/2025"} {
		_, err := ParseEventDate(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestTimeRank(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"7:30 PM", 19*60 + 30},
		{"07:30", 7*60 + 30},
		{"7 PM", 19 * 60},
		{"12 AM", 0},
		{"12 PM", 12 * 60},
		{"11 baje", 11 * 60},
		{"19.15", 19*60 + 15},
		{"shaam ko", -1},
		{"", -1},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, TimeRank(tc.in), "input %q", tc.in)
	}
}

// A correctly ranked evening event must sort after a morning one even
// though "7:30 PM" < "9:00 AM" lexically.
func TestTimeRankFixesLexicalOrdering(t *testing.T) {
	assert.Greater(t, TimeRank("7:30 PM"), TimeRank("9:00 AM"))
}
