package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/core/phone"
	"github.com/gramsetu/noticeboard/internal/driver"
)

const (
	eventIndexCounter = "event_index"

	// UpcomingLimit caps the "upcoming" reply.
	UpcomingLimit = 5
)

// Store is the event indexer and persistence layer. Every save re-reads
// current state; the only cross-request coordination is the atomic
// counter bump inside the database.
type Store struct {
	Driver driver.GraphDriver
}

func NewStore(d driver.GraphDriver) *Store {
	return &Store{Driver: d}
}

// NextIndex bumps the event counter and returns the new value. The bump
// and the read are one statement, so concurrent saves never see the
// same index. Called fresh for every save; never cached.
func (s *Store) NextIndex(ctx context.Context) (int64, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.BumpCounterQuery, map[string]interface{}{
		"name": eventIndexCounter,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to bump event counter: %w", err)
	}
	if len(result.Records) == 0 {
		return 0, fmt.Errorf("counter bump returned no value")
	}
	return recordInt64(result.Records[0], "value"), nil
}

// SaveEvent persists a validated candidate. A (date, time, description)
// match short-circuits into a DuplicateNotice with no write. Contact
// registration failures never block the save.
func (s *Store) SaveEvent(ctx context.Context, cand model.EventCandidate, media model.MediaInfo, sourcePhone string) (*model.Event, *model.DuplicateNotice, error) {
	date, err := ParseEventDate(cand.Date)
	if err != nil {
		return nil, nil, err
	}

	dup, err := s.findDuplicate(ctx, date, cand.Time, cand.Description)
	if err != nil {
		return nil, nil, err
	}
	if dup != nil {
		return nil, dup, nil
	}

	index, err := s.NextIndex(ctx)
	if err != nil {
		return nil, nil, err
	}

	audit, _ := json.Marshal(struct {
		Candidate model.EventCandidate `json:"candidate"`
		Media     model.MediaInfo      `json:"media"`
	}{cand, media})

	event := &model.Event{
		UUID:          uuid.New().String(),
		EventIndex:    index,
		Title:         cand.Title,
		Description:   cand.Description,
		Date:          date,
		Time:          cand.Time,
		TimeRank:      TimeRank(cand.Time),
		Address:       cand.Address,
		Organizer:     cand.Organizer,
		ContactPhone:  cand.ContactPhone,
		MediaURL:      media.URL,
		MediaType:     media.Type,
		SourcePhone:   sourcePhone,
		ExtractedText: string(audit),
		Status:        model.StatusConfirmed,
		CreatedAt:     time.Now().UTC(),
	}

	params := map[string]interface{}{
		"uuid":           event.UUID,
		"event_index":    event.EventIndex,
		"title":          event.Title,
		"description":    event.Description,
		"date":           event.Date.Unix(),
		"time":           event.Time,
		"time_rank":      event.TimeRank,
		"address":        event.Address,
		"organizer":      event.Organizer,
		"contact_phone":  event.ContactPhone,
		"media_url":      event.MediaURL,
		"media_type":     string(event.MediaType),
		"source_phone":   event.SourcePhone,
		"extracted_text": event.ExtractedText,
		"status":         string(event.Status),
		"reminder_sent":  event.ReminderSent,
		"created_at":     event.CreatedAt.Unix(),
	}

	if _, err := s.Driver.ExecuteQuery(ctx, driver.SaveEventQuery, params); err != nil {
		return nil, nil, fmt.Errorf("failed to save event: %w", err)
	}

	s.registerContacts(ctx, cand.ContactPhone, cand.Organizer)

	return event, nil, nil
}

func (s *Store) findDuplicate(ctx context.Context, date time.Time, clock, description string) (*model.DuplicateNotice, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.FindDuplicateEventQuery, map[string]interface{}{
		"date":        date.Unix(),
		"time":        clock,
		"description": description,
	})
	if err != nil {
		return nil, fmt.Errorf("duplicate lookup failed: %w", err)
	}
	if len(result.Records) == 0 {
		return nil, nil
	}
	rec := result.Records[0]
	return &model.DuplicateNotice{
		ExistingIndex: recordInt64(rec, "event_index"),
		ExistingUUID:  recordString(rec, "uuid"),
	}, nil
}

// registerContacts opportunistically creates Contacts for every phone
// number found in the event's contactPhone field. Invalid numbers are
// logged and skipped.
func (s *Store) registerContacts(ctx context.Context, contactPhone, organizer string) {
	for _, part := range phone.SplitList(contactPhone) {
		normalized, ok := phone.Normalize(part)
		if !ok {
			log.Printf("skipping invalid contact number %q", part)
			continue
		}
		_, err := s.Driver.ExecuteQuery(ctx, driver.SaveContactQuery, map[string]interface{}{
			"phone":            normalized,
			"uuid":             uuid.New().String(),
			"name":             organizer,
			"type":             string(model.ContactInvitation),
			"last_interaction": time.Now().UTC().Unix(),
		})
		if err != nil {
			log.Printf("failed to register contact %s: %v", normalized, err)
		}
	}
}
