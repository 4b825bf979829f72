package extraction

import (
	"context"
)

type MockLLMClient struct {
	Response   string
	Err        error
	LastPrompt string
	LastMIME   string
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

func (m *MockLLMClient) GenerateWithMedia(ctx context.Context, prompt string, data []byte, mimeType string) (string, error) {
	m.LastPrompt = prompt
	m.LastMIME = mimeType
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
