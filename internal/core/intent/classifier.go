package intent

import (
	"context"
	"log"
	"strings"

	"github.com/gramsetu/noticeboard/internal/config"
	"github.com/gramsetu/noticeboard/internal/core/common"
	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/llm"
)

// DefaultPrompt is used when the config carries no [prompts].classify
// section. The query is substituted for the {{message}} placeholder.
const DefaultPrompt = `You are the query classifier of a community notice service.
Classify the user's message into exactly one of these categories:

today       - events happening today. Examples: "aaj ke karyakram", "what's on today", "aaj kya hai"
upcoming    - events coming up. Examples: "aane wale karyakram", "upcoming events", "agle programs"
date        - events on a specific date. Examples: "15/01/2025 ko kya hai", "events on 02/03/2025"
event_index - a single event referred to by number. Examples: "karyakram number 5", "event 12 ka detail"
search      - looking up events by keyword. Examples: "Sharma ji ki shaadi", "mandir ke programs", "vivah"
unknown     - anything else. Examples: "namaste", "thank you", "kaise ho"

User message: {{message}}

Respond with exactly one keyword from: today, upcoming, date, event_index, search, unknown.
Do not output any other text.`

type Classifier struct {
	LLM    llm.LLMClient
	Prompt string
}

func NewClassifier(llmClient llm.LLMClient, prompt string) *Classifier {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &Classifier{
		LLM:    llmClient,
		Prompt: prompt,
	}
}

// Classify maps a free-text query to an intent tag. Any failure, an
// empty response or an off-vocabulary answer degrades to IntentUnknown
// so the query pipeline keeps going. Single attempt, no retries.
func (c *Classifier) Classify(ctx context.Context, query string) model.IntentTag {
	prompt := strings.ReplaceAll(c.Prompt, config.MessagePlaceholder, query)

	response, err := c.LLM.Generate(ctx, prompt)
	if err != nil {
		log.Printf("intent classification failed, treating as unknown: %v", err)
		return model.IntentUnknown
	}

	fields := strings.Fields(strings.ToLower(common.StripFences(response)))
	if len(fields) == 0 {
		return model.IntentUnknown
	}
	return model.ParseIntentTag(strings.Trim(fields[0], `"'.`))
}
