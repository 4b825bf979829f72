package llm

import (
	"context"
)

type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)

	// GenerateWithMedia sends the prompt together with an inline binary
	// payload (flyer image, PDF, video frame) of the given MIME type.
	GenerateWithMedia(ctx context.Context, prompt string, data []byte, mimeType string) (string, error)
}
