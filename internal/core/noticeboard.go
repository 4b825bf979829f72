package core

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gramsetu/noticeboard/internal/config"
	"github.com/gramsetu/noticeboard/internal/core/extraction"
	"github.com/gramsetu/noticeboard/internal/core/intent"
	"github.com/gramsetu/noticeboard/internal/core/model"
	"github.com/gramsetu/noticeboard/internal/core/query"
	"github.com/gramsetu/noticeboard/internal/core/store"
	"github.com/gramsetu/noticeboard/internal/driver"
	"github.com/gramsetu/noticeboard/internal/llm"
)

const (
	msgSaved         = "✅ Karyakram #%d save ho gaya: %s"
	msgDuplicate     = "ℹ️ Yeh karyakram pehle se #%d par maujood hai."
	msgExtractFailed = "Maaf kijiye, is flyer se karyakram nahi nikal paya."
	msgSaveFailed    = "Maaf kijiye, karyakram save nahi ho paya. Kripya dobara koshish karein."
)

// Noticeboard ties the extractors, the store and the query engine
// together. One inbound message is processed synchronously to
// completion; media items within it strictly in order.
type Noticeboard struct {
	Driver     driver.GraphDriver
	Store      *store.Store
	Extractor  *extraction.Extractor
	Classifier *intent.Classifier
	Query      *query.Engine
}

func NewNoticeboard(d driver.GraphDriver, llmClient llm.LLMClient, cfg *config.Config) *Noticeboard {
	s := store.NewStore(d)
	classifier := intent.NewClassifier(llmClient, cfg.Prompts.Classify)
	return &Noticeboard{
		Driver:     d,
		Store:      s,
		Extractor:  extraction.NewExtractor(llmClient, cfg.Prompts),
		Classifier: classifier,
		Query:      query.NewEngine(s, classifier, cfg.DashboardURL),
	}
}

func (n *Noticeboard) BuildIndices(ctx context.Context) error {
	return n.Driver.BuildIndices(ctx)
}

// IngestMedia runs one downloaded flyer through extraction and save and
// returns the admin-facing reply. Extraction and save failures produce
// an apology line, never an error, so the caller continues its batch.
func (n *Noticeboard) IngestMedia(ctx context.Context, localPath string, mediaType model.MediaType, mediaURL, sourcePhone string) string {
	candidates, err := n.Extractor.ExtractFromMedia(ctx, localPath, mediaType)
	if err != nil {
		log.Printf("media extraction failed for %s: %v", localPath, err)
		return msgExtractFailed
	}
	return n.saveAll(ctx, candidates, model.MediaInfo{URL: mediaURL, Type: mediaType}, sourcePhone)
}

// IngestText tries the text extractor first; when the message carries
// no event it falls through to the query engine, so an admin can also
// just ask questions.
func (n *Noticeboard) IngestText(ctx context.Context, text, sourcePhone string) string {
	candidates, err := n.Extractor.ExtractFromText(ctx, text)
	if err != nil {
		log.Printf("text extraction failed: %v", err)
		return msgExtractFailed
	}
	if len(candidates) == 0 {
		return n.Query.Respond(ctx, text, sourcePhone).Message
	}
	return n.saveAll(ctx, candidates, model.MediaInfo{}, sourcePhone)
}

// Answer handles the non-admin path.
func (n *Noticeboard) Answer(ctx context.Context, text, phone string) string {
	return n.Query.Respond(ctx, text, phone).Message
}

// saveAll persists a non-empty candidate batch, one reply line each.
// Both callers guarantee at least one candidate: ExtractFromMedia
// errors when nothing survives and IngestText falls through to the
// query engine on an empty slice.
func (n *Noticeboard) saveAll(ctx context.Context, candidates []model.EventCandidate, media model.MediaInfo, sourcePhone string) string {
	lines := make([]string, 0, len(candidates))
	for _, cand := range candidates {
		event, dup, err := n.Store.SaveEvent(ctx, cand, media, sourcePhone)
		switch {
		case err != nil:
			log.Printf("failed to save event %q: %v", cand.Title, err)
			lines = append(lines, msgSaveFailed)
		case dup != nil:
			lines = append(lines, fmt.Sprintf(msgDuplicate, dup.ExistingIndex))
		default:
			lines = append(lines, fmt.Sprintf(msgSaved, event.EventIndex, event.Title))
		}
	}
	return strings.Join(lines, "\n")
}
