package extraction

import (
	"regexp"
	"strings"

	"github.com/gramsetu/noticeboard/internal/core/model"
)

// MarriageTitle is the canonical label every marriage-family occasion
// collapses to.
const MarriageTitle = "Vivah"

// Any of these appearing in the raw title marks a marriage-family event.
var marriageKeywords = []string{
	"shaadi", "shadi", "vivah", "lagan", "lagna", "sagai",
	"ashirwad", "aashirwad", "nikah",
	"marriage", "wedding", "engagement", "reception",
}

// couplePattern matches the "<name> <conjunction> <name>" pair; the
// matched text becomes the whole description, everything else is dropped.
var couplePattern = regexp.MustCompile(`(?i)([\p{L}]+)\s+(aur|and|weds|evam|&)\s+([\p{L}]+)`)

func isMarriage(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range marriageKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// normalizeCandidate enforces the marriage rules in code, whatever the
// model did with the prompt: canonical title, and the description cut
// down to the conjunction-joined couple names.
func normalizeCandidate(c model.EventCandidate) model.EventCandidate {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)
	c.Date = strings.TrimSpace(c.Date)
	c.Time = strings.TrimSpace(c.Time)

	if isMarriage(c.Title) {
		c.Title = MarriageTitle
		if m := couplePattern.FindString(c.Description); m != "" {
			c.Description = m
		}
	}

	return c
}
