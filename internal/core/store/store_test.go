package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

func candidate(title, date, clock, description string) model.EventCandidate {
	return model.EventCandidate{
		Title:       title,
		Date:        date,
		Time:        clock,
		Description: description,
	}
}

func TestMonotonicIndexing(t *testing.T) {
	mock := &MockDriver{}
	s := NewStore(mock)
	ctx := context.Background()

	for i, c := range []model.EventCandidate{
		candidate("Vivah", "01/03/2025", "7 PM", "Rahul aur Priya"),
		candidate("Janamdin", "02/03/2025", "5 PM", "Aarav ka janamdin"),
		candidate("Satsang", "03/03/2025", "6 PM", "Weekly satsang"),
	} {
		event, dup, err := s.SaveEvent(ctx, c, model.MediaInfo{}, "919876543210")
		assert.NoError(t, err)
		assert.Nil(t, dup)
		assert.Equal(t, int64(i+1), event.EventIndex)
	}

	assert.Len(t, mock.Saves, 3)
}

func TestDuplicateDetectionIsIdempotent(t *testing.T) {
	mock := &MockDriver{}
	s := NewStore(mock)
	ctx := context.Background()

	c := candidate("Vivah", "01/03/2025", "7 PM", "Rahul aur Priya")

	first, dup, err := s.SaveEvent(ctx, c, model.MediaInfo{}, "919876543210")
	assert.NoError(t, err)
	assert.Nil(t, dup)

	second, dup, err := s.SaveEvent(ctx, c, model.MediaInfo{}, "919876543210")
	assert.NoError(t, err)
	assert.Nil(t, second)
	assert.NotNil(t, dup)
	assert.Equal(t, first.EventIndex, dup.ExistingIndex)

	// exactly one write, and the counter was not burned twice
	assert.Len(t, mock.Saves, 1)
	assert.Equal(t, int64(1), mock.Counter)
}

func TestSaveEventRegistersValidContactsOnly(t *testing.T) {
	mock := &MockDriver{}
	s := NewStore(mock)

	c := candidate("Vivah", "01/03/2025", "7 PM", "Rahul aur Priya")
	c.ContactPhone = "09876543210; 1234567, +91 98123 45678"
	c.Organizer = "Sharma Parivar"

	event, _, err := s.SaveEvent(context.Background(), c, model.MediaInfo{}, "919876543210")
	assert.NoError(t, err)
	assert.NotNil(t, event)

	assert.Len(t, mock.Contacts, 2)
	assert.Equal(t, "919876543210", mock.Contacts[0]["phone"])
	assert.Equal(t, "919812345678", mock.Contacts[1]["phone"])
	assert.Equal(t, "Sharma Parivar", mock.Contacts[0]["name"])
	assert.Equal(t, string(model.ContactInvitation), mock.Contacts[0]["type"])
}

func TestSaveEventBadDate(t *testing.T) {
	mock := &MockDriver{}
	s := NewStore(mock)

	_, _, err := s.SaveEvent(context.Background(), candidate("Vivah", "2025-03-01", "7 PM", "x"), model.MediaInfo{}, "")

	assert.Error(t, err)
	assert.Empty(t, mock.Saves)
}

func TestSaveEventPersistenceFailurePropagates(t *testing.T) {
	mock := &MockDriver{Err: errors.New("connection reset")}
	s := NewStore(mock)

	_, _, err := s.SaveEvent(context.Background(), candidate("Vivah", "01/03/2025", "7 PM", "x"), model.MediaInfo{}, "")

	assert.Error(t, err)
}

func TestSaveEventStoresUTCMidnightAndAudit(t *testing.T) {
	mock := &MockDriver{}
	s := NewStore(mock)

	event, _, err := s.SaveEvent(context.Background(), candidate("Vivah", "15/01/2025", "7:30 PM", "Rahul aur Priya"), model.MediaInfo{URL: "https://cdn/x.jpg", Type: model.MediaImage}, "919876543210")
	assert.NoError(t, err)

	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), event.Date)
	assert.Equal(t, int64(19*60+30), event.TimeRank)
	assert.Equal(t, model.StatusConfirmed, event.Status)
	assert.Contains(t, event.ExtractedText, "Rahul aur Priya")
	assert.Contains(t, event.ExtractedText, "https://cdn/x.jpg")
}

func TestTodayWindowParams(t *testing.T) {
	mock := &MockDriver{}
	s := NewStore(mock)
	now := time.Date(2025, 3, 10, 14, 45, 0, 0, time.UTC)

	_, err := s.Today(context.Background(), now)
	assert.NoError(t, err)

	call, err := mock.LastCall(driver.EventsBetweenQuery)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC).Unix(), call.Params["start"])
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC).Unix(), call.Params["end"])
}

func TestUpcomingCapParam(t *testing.T) {
	mock := &MockDriver{}
	s := NewStore(mock)

	_, err := s.Upcoming(context.Background(), time.Now())
	assert.NoError(t, err)

	call, err := mock.LastCall(driver.UpcomingEventsQuery)
	assert.NoError(t, err)
	assert.Equal(t, int64(UpcomingLimit), call.Params["limit"])
}

func TestEventByIndexRoundTrip(t *testing.T) {
	stored := model.Event{
		UUID:       "u-1",
		EventIndex: 7,
		Title:      "Vivah",
		Date:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Time:       "7 PM",
		TimeRank:   19 * 60,
		Status:     model.StatusConfirmed,
		CreatedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	mock := &MockDriver{Results: map[string]neo4j.EagerResult{
		driver.GetEventByIndexQuery: EventResult(stored),
	}}
	s := NewStore(mock)

	got, err := s.EventByIndex(context.Background(), 7)
	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Equal(t, stored, *got)
}

func TestEventByIndexMissing(t *testing.T) {
	s := NewStore(&MockDriver{})

	got, err := s.EventByIndex(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
