package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dafibh/mint/mint-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// Fixed completion parameters
const (
	DefaultMaxTokens   = 1000
	DefaultCandidates  = 1
	DefaultTemperature = float32(0.7)
	DefaultTimeout     = 60 * time.Second
)

// AdviceService builds strategy prompts and asks the completion client for advice
type AdviceService struct {
	client  domain.CompletionClient
	model   string
	timeout time.Duration
	now     func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewAdviceService creates a new AdviceService
func NewAdviceService(client domain.CompletionClient, model string, timeout time.Duration) *AdviceService {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &AdviceService{
		client:   client,
		model:    model,
		timeout:  timeout,
		now:      time.Now,
		inFlight: make(map[string]struct{}),
	}
}

// Generate produces an investment strategy for the profile.
//
// Only one request per session may be pending at a time; a concurrent call
// for the same session returns domain.ErrRequestInFlight without contacting
// the model. An empty sessionID disables the guard. Any failure of the
// completion call is logged and returned wrapped in domain.ErrAdviceUnavailable.
func (s *AdviceService) Generate(ctx context.Context, sessionID string, profile domain.FinancialProfile) (*domain.Advice, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if !s.acquire(sessionID) {
		return nil, domain.ErrRequestInFlight
	}
	defer s.release(sessionID)

	savings := profile.Savings()
	prompt := BuildStrategyPrompt(profile)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := s.now()
	text, err := s.client.Complete(ctx, domain.CompletionRequest{
		Model:        s.model,
		SystemPrompt: SystemPrompt,
		UserPrompt:   prompt,
		MaxTokens:    DefaultMaxTokens,
		Candidates:   DefaultCandidates,
		Temperature:  DefaultTemperature,
	})
	if err == nil && strings.TrimSpace(text) == "" {
		err = domain.ErrEmptyCompletion
	}
	if err != nil {
		log.Error().
			Err(err).
			Str("model", s.model).
			Str("session_id", sessionID).
			Dur("latency", s.now().Sub(start)).
			Msg("Failed to get investment strategy from completion service")
		return nil, fmt.Errorf("%w: %w", domain.ErrAdviceUnavailable, err)
	}

	log.Info().
		Str("model", s.model).
		Str("session_id", sessionID).
		Str("savings", savings.StringFixed(2)).
		Dur("latency", s.now().Sub(start)).
		Msg("Investment strategy generated")

	return &domain.Advice{
		Markdown:    strings.TrimSpace(text),
		Savings:     savings,
		Model:       s.model,
		GeneratedAt: s.now(),
	}, nil
}

// Pending reports whether a request is outstanding for the session
func (s *AdviceService) Pending(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[sessionID]
	return ok
}

func (s *AdviceService) acquire(sessionID string) bool {
	if sessionID == "" {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[sessionID]; busy {
		return false
	}
	s.inFlight[sessionID] = struct{}{}
	return true
}

func (s *AdviceService) release(sessionID string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	delete(s.inFlight, sessionID)
	s.mu.Unlock()
}
