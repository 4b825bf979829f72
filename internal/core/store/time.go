package store

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// EventDateLayout is the date form exchanged with the extraction model.
const EventDateLayout = "02/01/2006"

// ParseEventDate turns a DD/MM/YYYY string into a UTC-midnight date.
func ParseEventDate(s string) (time.Time, error) {
	t, err := time.Parse(EventDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("bad event date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// MidnightUTC anchors any instant to its UTC calendar day.
func MidnightUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2})(?:[:.](\d{2}))?\s*(am|pm|baje)?`)

// TimeRank parses the free-text clock string into minutes since
// midnight for ordering. The string itself is stored and displayed
// untouched; -1 means it resisted parsing and sorts first.
func TimeRank(clock string) int64 {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(clock))
	if m == nil || m[1] == "" {
		return -1
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 23 {
		return -1
	}
	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return -1
		}
	}

	switch strings.ToLower(m[3]) {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return int64(hour*60 + minute)
}
