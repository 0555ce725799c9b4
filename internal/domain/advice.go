package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Advice is a successfully generated investment strategy.
// Markdown is the model's reply, trimmed but otherwise unmodified.
type Advice struct {
	Markdown    string          `json:"advice"`
	Savings     decimal.Decimal `json:"savings"`
	Model       string          `json:"model"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// CompletionRequest describes a single chat-completion exchange
type CompletionRequest struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	MaxTokens    int
	Candidates   int
	Temperature  float32
}

// CompletionClient sends prompts to a text-generation service
type CompletionClient interface {
	// Complete returns the text of the first candidate
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
