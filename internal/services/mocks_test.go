package services

import (
	"context"
	"errors"
	"sync/atomic"

	model "github.com/katasiddartha-lang/health-coach-ai/internal/models"
	"github.com/katasiddartha-lang/health-coach-ai/internal/provider/huggingface"
)

// Compile-time checks that the mocks satisfy the service contracts
var (
	_ Generator = (*MockGenerator)(nil)
	_ Catalog   = (*MockCatalog)(nil)
)

// MockGenerator is a func-field fake for the inference capability.
type MockGenerator struct {
	GenerateFunc      func(ctx context.Context, apiKey, prompt string, spec huggingface.GenerationSpec) (string, error)
	GenerateCallCount int32
	LastPrompt        string
	LastSpec          huggingface.GenerationSpec
}

func (m *MockGenerator) Generate(ctx context.Context, apiKey, prompt string, spec huggingface.GenerationSpec) (string, error) {
	atomic.AddInt32(&m.GenerateCallCount, 1)
	m.LastPrompt = prompt
	m.LastSpec = spec
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, apiKey, prompt, spec)
	}
	return "", errors.New("GenerateFunc not implemented in mock")
}

// MockCatalog is a func-field fake for the exercise catalog.
type MockCatalog struct {
	SearchFunc      func(ctx context.Context, query string, limit int) []model.Exercise
	SearchCallCount int32
}

func (m *MockCatalog) Search(ctx context.Context, query string, limit int) []model.Exercise {
	atomic.AddInt32(&m.SearchCallCount, 1)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, limit)
	}
	return []model.Exercise{}
}

func catalogWith(n int) *MockCatalog {
	return &MockCatalog{
		SearchFunc: func(ctx context.Context, query string, limit int) []model.Exercise {
			exercises := make([]model.Exercise, 0, limit)
			for i := 0; i < n && i < limit; i++ {
				exercises = append(exercises, model.Exercise{ID: int64(i + 1)})
			}
			return exercises
		},
	}
}
