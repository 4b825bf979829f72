package model

// IntentTag is the closed-set category assigned to a free-text query.
type IntentTag string

const (
	IntentToday      IntentTag = "today"
	IntentUpcoming   IntentTag = "upcoming"
	IntentSearch     IntentTag = "search"
	IntentEventIndex IntentTag = "event_index"
	IntentDate       IntentTag = "date"
	IntentUnknown    IntentTag = "unknown"
)

// ParseIntentTag maps a raw classifier response to a tag, falling back
// to IntentUnknown for anything outside the closed set.
func ParseIntentTag(s string) IntentTag {
	switch IntentTag(s) {
	case IntentToday, IntentUpcoming, IntentSearch, IntentEventIndex, IntentDate:
		return IntentTag(s)
	}
	return IntentUnknown
}

type QueryResultType string

const (
	ResultEventDetail QueryResultType = "event_detail"
	ResultEventList   QueryResultType = "event_list"
	ResultNoMatch     QueryResultType = "no_match"
	ResultError       QueryResultType = "error"
)

// QueryResult is the engine's reply: Message is the exact text handed
// to the messaging transport.
type QueryResult struct {
	Type    QueryResultType `json:"type"`
	Events  []Event         `json:"events,omitempty"`
	Message string          `json:"message"`
	IsError bool            `json:"is_error,omitempty"`
}
