package store

import (
	"time"

	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

func recordString(rec *neo4j.Record, key string) string {
	if v, ok := rec.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func recordInt64(rec *neo4j.Record, key string) int64 {
	if v, ok := rec.Get(key); ok {
		if n, ok := v.(int64); ok {
			return n
		}
	}
	return 0
}

func recordBool(rec *neo4j.Record, key string) bool {
	if v, ok := rec.Get(key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}

func eventFromRecord(rec *neo4j.Record) model.Event {
	return model.Event{
		UUID:          recordString(rec, "uuid"),
		EventIndex:    recordInt64(rec, "event_index"),
		Title:         recordString(rec, "title"),
		Description:   recordString(rec, "description"),
		Date:          time.Unix(recordInt64(rec, "date"), 0).UTC(),
		Time:          recordString(rec, "time"),
		TimeRank:      recordInt64(rec, "time_rank"),
		Address:       recordString(rec, "address"),
		Organizer:     recordString(rec, "organizer"),
		ContactPhone:  recordString(rec, "contact_phone"),
		MediaURL:      recordString(rec, "media_url"),
		MediaType:     model.MediaType(recordString(rec, "media_type")),
		SourcePhone:   recordString(rec, "source_phone"),
		ExtractedText: recordString(rec, "extracted_text"),
		Status:        model.EventStatus(recordString(rec, "status")),
		ReminderSent:  recordBool(rec, "reminder_sent"),
		CreatedAt:     time.Unix(recordInt64(rec, "created_at"), 0).UTC(),
	}
}

func eventsFromResult(result neo4j.EagerResult) []model.Event {
	events := make([]model.Event, 0, len(result.Records))
	for _, rec := range result.Records {
		events = append(events, eventFromRecord(rec))
	}
	return events
}

func contactFromRecord(rec *neo4j.Record) model.Contact {
	return model.Contact{
		UUID:            recordString(rec, "uuid"),
		Phone:           recordString(rec, "phone"),
		Name:            recordString(rec, "name"),
		Type:            model.ContactType(recordString(rec, "type")),
		OptOut:          recordBool(rec, "opt_out"),
		LastInteraction: time.Unix(recordInt64(rec, "last_interaction"), 0).UTC(),
	}
}
