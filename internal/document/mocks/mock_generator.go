package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, text string) ([]byte, error) {
	args := m.Called(ctx, text)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}
