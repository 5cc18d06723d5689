package mock

import (
	"context"
	"sync"

	"github.com/caralegal/cara/ai"
)

// MockCompleter is a test double for ai.Completer.
// It allows custom behavior injection via function fields.
// Safe for concurrent use, matching the Completer contract.
type MockCompleter struct {
	// CompleteFunc is called by Complete if set.
	// If nil, returns a canned empty JSON object.
	CompleteFunc func(ctx context.Context, req ai.CompletionRequest) (*ai.Completion, error)

	mu          sync.Mutex
	callCount   int
	lastRequest ai.CompletionRequest
}

// NewMockCompleter creates a mock completer with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockCompleter() *MockCompleter {
	return &MockCompleter{}
}

// Complete records the request and delegates to CompleteFunc when set.
func (m *MockCompleter) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.Completion, error) {
	m.mu.Lock()
	m.callCount++
	m.lastRequest = req
	fn := m.CompleteFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, req)
	}

	return &ai.Completion{Content: "{}"}, nil
}

// CallCount returns the number of times Complete was called.
func (m *MockCompleter) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the most recent request passed to Complete.
func (m *MockCompleter) LastRequest() ai.CompletionRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRequest
}

// Reset clears the call count, recorded request, and custom functions.
func (m *MockCompleter) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastRequest = ai.CompletionRequest{}
	m.CompleteFunc = nil
}
