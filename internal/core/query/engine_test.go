package query

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gramsetu/noticeboard/internal/core/intent"
	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/core/store"
	"github.com/gramsetu/noticeboard/internal/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
)

func newEngine(mock *store.MockDriver, classifierResponse string) *Engine {
	classifier := intent.NewClassifier(&intent.MockLLMClient{Response: classifierResponse}, "")
	e := NewEngine(store.NewStore(mock), classifier, "https://noticeboard.example.org/events")
	e.Now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return e
}

func sampleEvent(index int64, title string) model.Event {
	return model.Event{
		UUID:       "u-1",
		EventIndex: index,
		Title:      title,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:       "7 PM",
		TimeRank:   19 * 60,
		Address:    "Sharma Bhavan",
		Organizer:  "Sharma Parivar",
		Status:     model.StatusConfirmed,
	}
}

// Numeric input is an index lookup even when the classifier would have
// said search.
func TestNumericDispatchPrecedence(t *testing.T) {
	mock := &store.MockDriver{Results: map[string]neo4j.EagerResult{
		driver.GetEventByIndexQuery: store.EventResult(sampleEvent(5, "Vivah")),
	}}
	e := newEngine(mock, "search")

	result := e.Respond(context.Background(), "5", "")

	assert.Equal(t, model.ResultEventDetail, result.Type)
	assert.Contains(t, result.Message, "*5. Vivah*")

	_, err := mock.LastCall(driver.GetEventByIndexQuery)
	assert.NoError(t, err)
	_, err = mock.LastCall(driver.SearchEventsQuery)
	assert.Error(t, err, "search must not run for numeric input")
}

func TestIndexNotFound(t *testing.T) {
	e := newEngine(&store.MockDriver{}, "search")

	result := e.Respond(context.Background(), "42", "")

	assert.Equal(t, model.ResultError, result.Type)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Message, "42")
}

func TestTodayList(t *testing.T) {
	mock := &store.MockDriver{Results: map[string]neo4j.EagerResult{
		driver.EventsBetweenQuery: store.EventResult(sampleEvent(1, "Vivah"), sampleEvent(2, "Janamdin")),
	}}
	e := newEngine(mock, "today")

	result := e.Respond(context.Background(), "aaj kya hai", "")

	assert.Equal(t, model.ResultEventList, result.Type)
	assert.Len(t, result.Events, 2)
	assert.Contains(t, result.Message, headerToday)
	assert.Contains(t, result.Message, "*1. Vivah*")
	assert.Contains(t, result.Message, "https://noticeboard.example.org/events")
}

func TestTodayEmpty(t *testing.T) {
	e := newEngine(&store.MockDriver{}, "today")

	result := e.Respond(context.Background(), "aaj kya hai", "")

	assert.Equal(t, model.ResultNoMatch, result.Type)
	assert.Equal(t, msgNoToday, result.Message)
}

func TestDateQueryExtractsPattern(t *testing.T) {
	mock := &store.MockDriver{Results: map[string]neo4j.EagerResult{
		driver.EventsBetweenQuery: store.EventResult(sampleEvent(3, "Satsang")),
	}}
	e := newEngine(mock, "date")

	result := e.Respond(context.Background(), "15/01/2025 ko kya hai", "")

	assert.Equal(t, model.ResultEventList, result.Type)

	call, err := mock.LastCall(driver.EventsBetweenQuery)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC).Unix(), call.Params["start"])
}

func TestDateQueryBadFormat(t *testing.T) {
	e := newEngine(&store.MockDriver{}, "date")

	result := e.Respond(context.Background(), "agle mangalvar ko kya hai", "")

	assert.Equal(t, model.ResultError, result.Type)
	assert.Equal(t, msgBadDate, result.Message)
}

func TestSearchUsesQueryText(t *testing.T) {
	mock := &store.MockDriver{Results: map[string]neo4j.EagerResult{
		driver.SearchEventsQuery: store.EventResult(sampleEvent(4, "Vivah")),
	}}
	e := newEngine(mock, "search")

	result := e.Respond(context.Background(), "Sharma ji ki shaadi", "")

	assert.Equal(t, model.ResultEventList, result.Type)

	call, err := mock.LastCall(driver.SearchEventsQuery)
	assert.NoError(t, err)
	assert.Equal(t, "sharma ji ki shaadi", call.Params["needle"])
}

func TestUnknownTagGetsExplicitNoMatch(t *testing.T) {
	e := newEngine(&store.MockDriver{}, "unknown")

	result := e.Respond(context.Background(), "namaste", "")

	assert.Equal(t, model.ResultNoMatch, result.Type)
	assert.Equal(t, msgNoMatch, result.Message)
}

func TestEventIndexTagWithoutNumberGetsNoMatch(t *testing.T) {
	e := newEngine(&store.MockDriver{}, "event_index")

	result := e.Respond(context.Background(), "karyakram number batao", "")

	assert.Equal(t, model.ResultNoMatch, result.Type)
}

func TestStoreFailureIsLocalizedGenericError(t *testing.T) {
	e := newEngine(&store.MockDriver{Err: errors.New("bolt: connection refused")}, "today")

	result := e.Respond(context.Background(), "aaj kya hai", "")

	assert.Equal(t, model.ResultError, result.Type)
	assert.Equal(t, msgGenericErr, result.Message)
	assert.NotContains(t, result.Message, "bolt")
}

func TestFormatEventBlock(t *testing.T) {
	e := sampleEvent(12, "Vivah")
	e.Description = "Rahul aur Priya"
	e.ContactPhone = "919876543210"
	e.MediaURL = "https://cdn/flyer.jpg"

	block := FormatEvent(e)

	assert.Equal(t,
		"🎉 *12. Vivah* — Rahul aur Priya\n"+
			"📅 10/03/2025 | 🕒 7 PM\n"+
			"📍 Sharma Bhavan\n"+
			"👤 Aayojak: Sharma Parivar\n"+
			"📞 Sampark: 919876543210\n"+
			"🔗 https://cdn/flyer.jpg",
		block)
}

func TestFormatEventOmitsEmptyLines(t *testing.T) {
	block := FormatEvent(sampleEvent(1, "Satsang"))

	assert.NotContains(t, block, "Sampark")
	assert.NotContains(t, block, "🔗")
}
