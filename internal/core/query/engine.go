package query

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gramsetu/noticeboard/internal/core/intent"
	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/core/store"
)

var datePattern = regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\b`)

// Engine answers natural-language queries against the event store.
type Engine struct {
	Store        *store.Store
	Classifier   *intent.Classifier
	DashboardURL string

	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func NewEngine(s *store.Store, c *intent.Classifier, dashboardURL string) *Engine {
	return &Engine{
		Store:        s,
		Classifier:   c,
		DashboardURL: dashboardURL,
		Now:          time.Now,
	}
}

// Respond routes a query to the right read and formats the reply.
// Numeric text always pre-empts the classifier; event_index and unknown
// tags land on an explicit no-match reply. Nothing raw ever escapes to
// the chat surface.
func (e *Engine) Respond(ctx context.Context, text, phone string) (result *model.QueryResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("query engine panic for %q: %v", text, r)
			result = &model.QueryResult{Type: model.ResultError, Message: msgGenericErr, IsError: true}
		}
	}()

	if phone != "" {
		if err := e.Store.TouchContact(ctx, phone, e.Now()); err != nil {
			log.Printf("failed to touch contact %s: %v", phone, err)
		}
	}

	trimmed := strings.TrimSpace(text)

	// Numeric input is always an index lookup, whatever the
	// classifier would have said.
	if index, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return e.byIndex(ctx, index)
	}

	switch e.Classifier.Classify(ctx, trimmed) {
	case model.IntentToday:
		return e.today(ctx)
	case model.IntentUpcoming:
		return e.upcoming(ctx)
	case model.IntentDate:
		return e.onDate(ctx, trimmed)
	case model.IntentSearch:
		return e.search(ctx, trimmed)
	default:
		// event_index without a parseable number, and unknown
		return &model.QueryResult{Type: model.ResultNoMatch, Message: msgNoMatch}
	}
}

func (e *Engine) byIndex(ctx context.Context, index int64) *model.QueryResult {
	event, err := e.Store.EventByIndex(ctx, index)
	if err != nil {
		return e.internalError("index lookup", err)
	}
	if event == nil {
		return &model.QueryResult{Type: model.ResultError, Message: fmt.Sprintf(msgNotFound, index), IsError: true}
	}
	return &model.QueryResult{
		Type:    model.ResultEventDetail,
		Events:  []model.Event{*event},
		Message: FormatEvent(*event),
	}
}

func (e *Engine) today(ctx context.Context) *model.QueryResult {
	events, err := e.Store.Today(ctx, e.Now())
	if err != nil {
		return e.internalError("today query", err)
	}
	if len(events) == 0 {
		return &model.QueryResult{Type: model.ResultNoMatch, Message: msgNoToday}
	}
	return &model.QueryResult{
		Type:    model.ResultEventList,
		Events:  events,
		Message: e.formatList(headerToday, events),
	}
}

func (e *Engine) upcoming(ctx context.Context) *model.QueryResult {
	events, err := e.Store.Upcoming(ctx, e.Now())
	if err != nil {
		return e.internalError("upcoming query", err)
	}
	if len(events) == 0 {
		return &model.QueryResult{Type: model.ResultNoMatch, Message: msgNoUpcoming}
	}
	return &model.QueryResult{
		Type:    model.ResultEventList,
		Events:  events,
		Message: e.formatList(headerUpcoming, events),
	}
}

func (e *Engine) onDate(ctx context.Context, text string) *model.QueryResult {
	match := datePattern.FindString(text)
	if match == "" {
		return &model.QueryResult{Type: model.ResultError, Message: msgBadDate, IsError: true}
	}
	day, err := store.ParseEventDate(match)
	if err != nil {
		return &model.QueryResult{Type: model.ResultError, Message: msgBadDate, IsError: true}
	}

	events, err := e.Store.OnDate(ctx, day)
	if err != nil {
		return e.internalError("date query", err)
	}
	if len(events) == 0 {
		return &model.QueryResult{Type: model.ResultNoMatch, Message: fmt.Sprintf(msgNoneOnDate, match)}
	}
	return &model.QueryResult{
		Type:    model.ResultEventList,
		Events:  events,
		Message: e.formatList(fmt.Sprintf(headerOnDate, match), events),
	}
}

func (e *Engine) search(ctx context.Context, text string) *model.QueryResult {
	events, err := e.Store.Search(ctx, text)
	if err != nil {
		return e.internalError("search query", err)
	}
	if len(events) == 0 {
		return &model.QueryResult{Type: model.ResultNoMatch, Message: fmt.Sprintf(msgNoResults, text)}
	}
	return &model.QueryResult{
		Type:    model.ResultEventList,
		Events:  events,
		Message: e.formatList(headerSearch, events),
	}
}

func (e *Engine) internalError(op string, err error) *model.QueryResult {
	log.Printf("%s failed: %v", op, err)
	return &model.QueryResult{Type: model.ResultError, Message: msgGenericErr, IsError: true}
}
