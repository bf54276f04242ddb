package testhelpers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-realm/backend/internal/types"
)

// MockSuggester is a mock implementation of the service.Suggester interface
type MockSuggester struct {
	mock.Mock
}

func (m *MockSuggester) Suggest(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockTokenValidator is a mock implementation of middleware.TokenValidator
type MockTokenValidator struct {
	mock.Mock
}

func (m *MockTokenValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}
