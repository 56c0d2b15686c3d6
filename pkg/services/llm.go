package services

import (
	"context"
	"strings"

	"github.com/jman2424/tariq-hala-bot/pkg/session"

	"github.com/vmkteam/embedlog"
)

// LLM answers free-text questions the deterministic resolver declined.
type LLM interface {
	Answer(ctx context.Context, question string, history []session.Turn) (string, error)
}

// MockLLM is a mock implementation of LLM for local runs without an API key
// and for tests.
type MockLLM struct {
	logger embedlog.Logger
}

// NewMockLLM creates a new mock LLM service
func NewMockLLM(logger embedlog.Logger) *MockLLM {
	return &MockLLM{logger: logger}
}

// Answer mocks a completion with simple keyword heuristics.
func (m *MockLLM) Answer(ctx context.Context, question string, history []session.Turn) (string, error) {
	m.logger.Print(ctx, "mock llm answer", "question", question, "history_len", len(history))

	q := strings.ToLower(question)
	switch {
	case strings.Contains(q, "halal"):
		return "All our products are certified Halal by reputable bodies.", nil
	case strings.Contains(q, "fresh") || strings.Contains(q, "frozen"):
		return "We sell both fresh and frozen cuts — fresh meat is prepared daily in our branches.", nil
	case strings.Contains(q, "order"):
		return "You can order right here: add items with 'add <product>' and then type 'checkout'.", nil
	default:
		return "Thanks for your question! For anything I can't answer here, please call 0208 908 9440.", nil
	}
}
