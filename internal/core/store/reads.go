package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/driver"
)

// EventByIndex returns the event carrying the user-facing index, or nil
// when no such event exists.
func (s *Store) EventByIndex(ctx context.Context, index int64) (*model.Event, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.GetEventByIndexQuery, map[string]interface{}{
		"event_index": index,
	})
	if err != nil {
		return nil, fmt.Errorf("index lookup failed: %w", err)
	}
	if len(result.Records) == 0 {
		return nil, nil
	}
	event := eventFromRecord(result.Records[0])
	return &event, nil
}

// Today returns events inside [today 00:00, tomorrow 00:00), ordered by
// time of day.
func (s *Store) Today(ctx context.Context, now time.Time) ([]model.Event, error) {
	start := MidnightUTC(now)
	return s.between(ctx, start, start.Add(24*time.Hour))
}

// OnDate returns the events of one calendar day.
func (s *Store) OnDate(ctx context.Context, day time.Time) ([]model.Event, error) {
	start := MidnightUTC(day)
	return s.between(ctx, start, start.Add(24*time.Hour))
}

func (s *Store) between(ctx context.Context, start, end time.Time) ([]model.Event, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.EventsBetweenQuery, map[string]interface{}{
		"start": start.Unix(),
		"end":   end.Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("date range query failed: %w", err)
	}
	return eventsFromResult(result), nil
}

// Upcoming returns at most UpcomingLimit events dated today or later,
// ascending by date then time.
func (s *Store) Upcoming(ctx context.Context, now time.Time) ([]model.Event, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.UpcomingEventsQuery, map[string]interface{}{
		"start": MidnightUTC(now).Unix(),
		"limit": int64(UpcomingLimit),
	})
	if err != nil {
		return nil, fmt.Errorf("upcoming query failed: %w", err)
	}
	return eventsFromResult(result), nil
}

// Search matches the needle case-insensitively against title,
// description, address and organizer.
func (s *Store) Search(ctx context.Context, needle string) ([]model.Event, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.SearchEventsQuery, map[string]interface{}{
		"needle": strings.ToLower(needle),
	})
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}
	return eventsFromResult(result), nil
}

// ListAll feeds the dashboard, newest first.
func (s *Store) ListAll(ctx context.Context) ([]model.Event, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.ListEventsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("list query failed: %w", err)
	}
	return eventsFromResult(result), nil
}

// UpdateStatus flips an event's status; reports whether the index matched.
func (s *Store) UpdateStatus(ctx context.Context, index int64, status model.EventStatus) (bool, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.UpdateEventStatusQuery, map[string]interface{}{
		"event_index": index,
		"status":      string(status),
	})
	if err != nil {
		return false, fmt.Errorf("status update failed: %w", err)
	}
	return len(result.Records) > 0, nil
}

// RemindersDue returns confirmed events on the given day whose reminder
// has not gone out yet.
func (s *Store) RemindersDue(ctx context.Context, day time.Time) ([]model.Event, error) {
	start := MidnightUTC(day)
	result, err := s.Driver.ExecuteQuery(ctx, driver.ReminderDueQuery, map[string]interface{}{
		"start": start.Unix(),
		"end":   start.Add(24 * time.Hour).Unix(),
	})
	if err != nil {
		return nil, fmt.Errorf("reminder query failed: %w", err)
	}
	return eventsFromResult(result), nil
}

func (s *Store) MarkReminderSent(ctx context.Context, eventUUID string) error {
	_, err := s.Driver.ExecuteQuery(ctx, driver.MarkReminderSentQuery, map[string]interface{}{
		"uuid": eventUUID,
	})
	return err
}

// Contacts returns every contact that has not opted out.
func (s *Store) Contacts(ctx context.Context) ([]model.Contact, error) {
	result, err := s.Driver.ExecuteQuery(ctx, driver.ListContactsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("contact list failed: %w", err)
	}
	contacts := make([]model.Contact, 0, len(result.Records))
	for _, rec := range result.Records {
		contacts = append(contacts, contactFromRecord(rec))
	}
	return contacts, nil
}

// TouchContact records an interaction timestamp for a known contact.
func (s *Store) TouchContact(ctx context.Context, phoneNumber string, at time.Time) error {
	_, err := s.Driver.ExecuteQuery(ctx, driver.TouchContactQuery, map[string]interface{}{
		"phone":            phoneNumber,
		"last_interaction": at.UTC().Unix(),
	})
	return err
}

// SetOptOut flips a contact's broadcast opt-out flag.
func (s *Store) SetOptOut(ctx context.Context, phoneNumber string, optOut bool) error {
	_, err := s.Driver.ExecuteQuery(ctx, driver.SetContactOptOutQuery, map[string]interface{}{
		"phone":   phoneNumber,
		"opt_out": optOut,
	})
	return err
}
