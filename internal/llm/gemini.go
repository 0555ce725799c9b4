package llm

import (
	"context"
	"fmt"
	"sync"

	"github.com/dafibh/mint/mint-backend/internal/domain"
	"google.golang.org/genai"
)

// GeminiClient talks to Google's Gemini API.
// The underlying client is created on first use, so a missing API key
// surfaces as a failed completion rather than a start-up error.
type GeminiClient struct {
	cfg *genai.ClientConfig

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiClient creates a Gemini client. baseURL is only set in tests.
func NewGeminiClient(apiKey, baseURL string) *GeminiClient {
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}

	return &GeminiClient{cfg: cfg}
}

func (g *GeminiClient) genaiClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, g.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	g.client = client
	return client, nil
}

// Complete implements domain.CompletionClient
func (g *GeminiClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	client, err := g.genaiClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx,
		req.Model,
		genai.Text(req.UserPrompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
			Temperature:       genai.Ptr(req.Temperature),
			MaxOutputTokens:   int32(req.MaxTokens),
			CandidateCount:    int32(req.Candidates),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", domain.ErrEmptyCompletion
	}

	return text, nil
}
