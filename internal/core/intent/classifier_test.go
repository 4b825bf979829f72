package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func TestClassifyKnownTags(t *testing.T) {
	cases := map[string]model.IntentTag{
		"today":         model.IntentToday,
		"  Upcoming\n":  model.IntentUpcoming,
		"SEARCH":        model.IntentSearch,
		"event_index":   model.IntentEventIndex,
		"date":          model.IntentDate,
		"\"upcoming\".": model.IntentUpcoming,
	}

	for response, want := range cases {
		mockLLM := &MockLLMClient{Response: response}
		c := NewClassifier(mockLLM, "")

		assert.Equal(t, want, c.Classify(context.Background(), "aaj kya hai"), "response %q", response)
	}
}

func TestClassifyEmbedsQuery(t *testing.T) {
	mockLLM := &MockLLMClient{Response: "today"}
	c := NewClassifier(mockLLM, "")

	c.Classify(context.Background(), "aaj ke karyakram batao")

	assert.Contains(t, mockLLM.LastPrompt, "aaj ke karyakram batao")
}

func TestClassifyCustomPromptKeepsPercent(t *testing.T) {
	mockLLM := &MockLLMClient{Response: "search"}
	c := NewClassifier(mockLLM, "Answer with 100% certainty. User message: {{message}}")

	tag := c.Classify(context.Background(), "Sharma ji ki shaadi")

	assert.Equal(t, model.IntentSearch, tag)
	assert.Contains(t, mockLLM.LastPrompt, "100% certainty")
	assert.Contains(t, mockLLM.LastPrompt, "Sharma ji ki shaadi")
}

func TestClassifyFailureDegradesToUnknown(t *testing.T) {
	mockLLM := &MockLLMClient{Err: errors.New("network down")}
	c := NewClassifier(mockLLM, "")

	assert.Equal(t, model.IntentUnknown, c.Classify(context.Background(), "anything"))
}

func TestClassifyOffVocabularyIsUnknown(t *testing.T) {
	mockLLM := &MockLLMClient{Response: "I think this is a greeting."}
	c := NewClassifier(mockLLM, "")

	assert.Equal(t, model.IntentUnknown, c.Classify(context.Background(), "namaste"))
}

func TestClassifyEmptyResponseIsUnknown(t *testing.T) {
	mockLLM := &MockLLMClient{Response: "   "}
	c := NewClassifier(mockLLM, "")

	assert.Equal(t, model.IntentUnknown, c.Classify(context.Background(), "hmm"))
}
