package model

// EventCandidate is the model's raw structured guess at an event,
// pre-validation. Not persisted.
type EventCandidate struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"` // DD/MM/YYYY as exchanged with the model
	Time         string `json:"time"`
	Address      string `json:"address"`
	Organizer    string `json:"organizer"`
	ContactPhone string `json:"contactPhone"`
}

// Valid reports whether the candidate carries the two required fields.
// Anything missing title or date is dropped whole.
func (c EventCandidate) Valid() bool {
	return c.Title != "" && c.Date != ""
}

// MediaInfo describes the flyer a candidate was extracted from.
type MediaInfo struct {
	URL  string    `json:"url,omitempty"`
	Type MediaType `json:"type,omitempty"`
}
