package mocks

import (
	"context"

	"rentdocs/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Generate(ctx context.Context, name model.TemplateName, fields model.FieldSet) (*model.GeneratedFile, error) {
	args := m.Called(ctx, name, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GeneratedFile), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, category model.Category, data []byte) (*model.GeneratedFile, error) {
	args := m.Called(ctx, category, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GeneratedFile), args.Error(1)
}
