package model

import "time"

type EventStatus string

const (
	StatusPending   EventStatus = "pending"
	StatusConfirmed EventStatus = "confirmed"
	StatusCancelled EventStatus = "cancelled"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaPDF   MediaType = "pdf"
	MediaVideo MediaType = "video"
)

type Event struct {
	UUID          string      `json:"uuid"`
	EventIndex    int64       `json:"event_index"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Date          time.Time   `json:"date"`      // UTC midnight
	Time          string      `json:"time"`      // free text, displayed verbatim
	TimeRank      int64       `json:"time_rank"` // minutes since midnight, -1 if unparseable
	Address       string      `json:"address"`
	Organizer     string      `json:"organizer"`
	ContactPhone  string      `json:"contact_phone"`
	MediaURL      string      `json:"media_url,omitempty"`
	MediaType     MediaType   `json:"media_type,omitempty"`
	SourcePhone   string      `json:"source_phone"`
	ExtractedText string      `json:"extracted_text,omitempty"`
	Status        EventStatus `json:"status"`
	ReminderSent  bool        `json:"reminder_sent"`
	CreatedAt     time.Time   `json:"created_at"`
}

// DuplicateNotice is the non-error outcome of a save whose
// (date, time, description) key matches an existing event.
type DuplicateNotice struct {
	ExistingIndex int64  `json:"existing_index"`
	ExistingUUID  string `json:"existing_uuid"`
}
