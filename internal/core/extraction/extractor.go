package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gramsetu/noticeboard/internal/config"
	"github.com/gramsetu/noticeboard/internal/core/common"
	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/llm"
)

// MediaCallTimeout is the hard ceiling on the multimodal model call.
const MediaCallTimeout = 120 * time.Second

// Static fallback when content sniffing fails. PDF never sniffs.
var fallbackMIME = map[model.MediaType]string{
	model.MediaImage: "image/jpeg",
	model.MediaVideo: "video/mp4",
	model.MediaPDF:   "application/pdf",
}

type Extractor struct {
	LLM     llm.LLMClient
	Prompts config.Prompts
}

func NewExtractor(llmClient llm.LLMClient, prompts config.Prompts) *Extractor {
	if prompts.MediaExtraction == "" {
		prompts.MediaExtraction = DefaultMediaPrompt
	}
	if prompts.TextExtraction == "" {
		prompts.TextExtraction = DefaultTextPrompt
	}
	return &Extractor{
		LLM:     llmClient,
		Prompts: prompts,
	}
}

// ExtractFromMedia reads a downloaded flyer and asks the model for event
// candidates. Every failure comes back as a *Error value so the caller
// can keep going with the rest of the batch.
func (e *Extractor) ExtractFromMedia(ctx context.Context, filePath string, mediaType model.MediaType) ([]model.EventCandidate, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, newError(KindService, "failed to read media file: %v", err)
	}

	mime := detectMIME(filePath, mediaType)

	ctx, cancel := context.WithTimeout(ctx, MediaCallTimeout)
	defer cancel()

	response, err := e.LLM.GenerateWithMedia(ctx, e.Prompts.MediaExtraction, data, mime)
	if err != nil {
		return nil, newError(KindService, "model call failed: %v", err)
	}

	return parseAndValidate(response)
}

// ExtractFromText runs the same JSON contract against plain message
// text. No event-like content yields an empty slice and a nil error,
// signalling the caller to fall through to the query engine.
func (e *Extractor) ExtractFromText(ctx context.Context, text string) ([]model.EventCandidate, error) {
	prompt := strings.ReplaceAll(e.Prompts.TextExtraction, config.MessagePlaceholder, text)

	response, err := e.LLM.Generate(ctx, prompt)
	if err != nil {
		return nil, newError(KindService, "model call failed: %v", err)
	}

	candidates, err := parseAndValidate(response)
	if err != nil {
		var exErr *Error
		if errors.As(err, &exErr) && (exErr.Kind == KindNoJSON || exErr.Kind == KindInvalid) {
			return []model.EventCandidate{}, nil
		}
		return nil, err
	}
	return candidates, nil
}

func detectMIME(filePath string, mediaType model.MediaType) string {
	if mediaType == model.MediaPDF {
		return fallbackMIME[model.MediaPDF]
	}
	if mt, err := mimetype.DetectFile(filePath); err == nil {
		return mt.String()
	}
	if m, ok := fallbackMIME[mediaType]; ok {
		return m
	}
	return "application/octet-stream"
}

// parseAndValidate isolates the JSON payload, accepts a single object or
// an array, normalizes each candidate and keeps the valid subset.
// Invalid candidates are logged and dropped; the call errors only when
// nothing survives.
func parseAndValidate(response string) ([]model.EventCandidate, error) {
	raw, err := parseCandidates(response)
	if err != nil {
		return nil, err
	}

	valid := make([]model.EventCandidate, 0, len(raw))
	for _, c := range raw {
		c = normalizeCandidate(c)
		if !c.Valid() {
			log.Printf("dropping candidate missing title/date: %+v", c)
			continue
		}
		valid = append(valid, c)
	}

	if len(valid) == 0 {
		return nil, newError(KindInvalid, "no candidate carried both title and date")
	}
	return valid, nil
}

func parseCandidates(response string) ([]model.EventCandidate, error) {
	body := common.StripFences(response)

	// The array path wins only when the bracketed slice really is a
	// candidate array. Bracketed prose ahead of the object, like
	// "[Note: one event] {...}", falls through to the brace slice.
	bracket := strings.IndexByte(body, '[')
	brace := strings.IndexByte(body, '{')
	if bracket != -1 && (brace == -1 || bracket < brace) {
		if end := strings.LastIndexByte(body, ']'); end > bracket {
			var arr []model.EventCandidate
			if err := json.Unmarshal([]byte(body[bracket:end+1]), &arr); err == nil {
				return arr, nil
			}
		}
	}

	cand, err := common.ParseJSON[model.EventCandidate](body)
	if err != nil {
		if errors.Is(err, common.ErrNoJSON) {
			return nil, newError(KindNoJSON, "response carried no JSON object")
		}
		return nil, newError(KindBadJSON, "payload did not parse: %v", err)
	}
	return []model.EventCandidate{cand}, nil
}
