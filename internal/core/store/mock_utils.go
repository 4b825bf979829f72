package store

import (
	"context"
	"fmt"

	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/driver"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type Call struct {
	Query  string
	Params map[string]interface{}
}

// MockDriver is an in-memory stand-in for the Memgraph driver. Writes
// and the counter behave like the real store; read queries answer from
// the Results map.
type MockDriver struct {
	Counter  int64
	Saves    []map[string]interface{}
	Contacts []map[string]interface{}
	Calls    []Call
	Results  map[string]neo4j.EagerResult
	Err      error
}

func (d *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	d.Calls = append(d.Calls, Call{Query: query, Params: params})
	if d.Err != nil {
		return neo4j.EagerResult{}, d.Err
	}

	switch query {
	case driver.BumpCounterQuery:
		d.Counter++
		return singleRecord([]string{"value"}, []interface{}{d.Counter}), nil

	case driver.FindDuplicateEventQuery:
		for _, saved := range d.Saves {
			if saved["date"] == params["date"] && saved["time"] == params["time"] && saved["description"] == params["description"] {
				return singleRecord(
					[]string{"uuid", "event_index"},
					[]interface{}{saved["uuid"], saved["event_index"]},
				), nil
			}
		}
		return neo4j.EagerResult{}, nil

	case driver.SaveEventQuery:
		d.Saves = append(d.Saves, params)
		return singleRecord([]string{"uuid"}, []interface{}{params["uuid"]}), nil

	case driver.SaveContactQuery:
		d.Contacts = append(d.Contacts, params)
		return singleRecord([]string{"uuid"}, []interface{}{params["uuid"]}), nil
	}

	if d.Results != nil {
		if result, ok := d.Results[query]; ok {
			return result, nil
		}
	}
	return neo4j.EagerResult{}, nil
}

func (d *MockDriver) BuildIndices(ctx context.Context) error { return nil }
func (d *MockDriver) Close(ctx context.Context) error        { return nil }

var _ driver.GraphDriver = (*MockDriver)(nil)

func singleRecord(keys []string, values []interface{}) neo4j.EagerResult {
	return neo4j.EagerResult{
		Keys:    keys,
		Records: []*neo4j.Record{{Keys: keys, Values: values}},
	}
}

var eventKeys = []string{
	"uuid", "event_index", "title", "description", "date", "time",
	"time_rank", "address", "organizer", "contact_phone", "media_url",
	"media_type", "source_phone", "extracted_text", "status",
	"reminder_sent", "created_at",
}

// EventRecord renders an Event the way the driver's RETURN clause does,
// for scripting read results in tests.
func EventRecord(e model.Event) *neo4j.Record {
	return &neo4j.Record{
		Keys: eventKeys,
		Values: []interface{}{
			e.UUID, e.EventIndex, e.Title, e.Description, e.Date.Unix(),
			e.Time, e.TimeRank, e.Address, e.Organizer, e.ContactPhone,
			e.MediaURL, string(e.MediaType), e.SourcePhone,
			e.ExtractedText, string(e.Status), e.ReminderSent,
			e.CreatedAt.Unix(),
		},
	}
}

// EventResult wraps events into an EagerResult for the Results map.
func EventResult(events ...model.Event) neo4j.EagerResult {
	result := neo4j.EagerResult{Keys: eventKeys}
	for _, e := range events {
		result.Records = append(result.Records, EventRecord(e))
	}
	return result
}

// LastCall returns the most recent call matching the query, for
// asserting on parameters.
func (d *MockDriver) LastCall(query string) (Call, error) {
	for i := len(d.Calls) - 1; i >= 0; i-- {
		if d.Calls[i].Query == query {
			return d.Calls[i], nil
		}
	}
	return Call{}, fmt.Errorf("no call recorded for query")
}
