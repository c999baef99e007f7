package api

import (
	"context"
	"sync"
)

// MockClient is a Generator for tests. Func, when set, wins over
// Reply/Err and lets a test block or vary results per prompt.
type MockClient struct {
	Reply string
	Err   error
	Func  func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

// Ensure MockClient implements Generator
var _ Generator = (*MockClient)(nil)

func (m *MockClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	fn := m.Func
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, prompt)
	}
	return m.Reply, m.Err
}

// Calls returns how many requests were issued
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

// Prompts returns the prompts received, in call order
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.prompts))
	copy(out, m.prompts)
	return out
}

// LastPrompt returns the most recent prompt, or ""
func (m *MockClient) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}
