package testutil

import (
	"context"
	"sync"

	"github.com/dafibh/mint/mint-backend/internal/domain"
)

// MockCompletionClient is a mock implementation of domain.CompletionClient
type MockCompletionClient struct {
	mu         sync.Mutex
	Requests   []domain.CompletionRequest
	Response   string
	Err        error
	CompleteFn func(ctx context.Context, req domain.CompletionRequest) (string, error)
}

// NewMockCompletionClient creates a MockCompletionClient returning response
func NewMockCompletionClient(response string) *MockCompletionClient {
	return &MockCompletionClient{Response: response}
}

// Complete records the request and returns the configured response
func (m *MockCompletionClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, req)
	fn := m.CompleteFn
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}

// Calls returns the number of completion requests issued
func (m *MockCompletionClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

// LastRequest returns the most recent request, or a zero value if none
func (m *MockCompletionClient) LastRequest() domain.CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Requests) == 0 {
		return domain.CompletionRequest{}
	}
	return m.Requests[len(m.Requests)-1]
}
