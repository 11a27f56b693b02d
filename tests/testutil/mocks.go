package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/mihailo/promptdeck-api/internal/models"
	"github.com/mihailo/promptdeck-api/internal/services"
	"github.com/stretchr/testify/mock"
)

// MockCollectionService mocks the CollectionService
type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) Create(ctx context.Context, userID uuid.UUID, name string, description, icon *string, isDefault bool) (*models.Collection, error) {
	args := m.Called(ctx, userID, name, description, icon, isDefault)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockCollectionService) GetOwned(ctx context.Context, collectionID, userID uuid.UUID) (*models.Collection, error) {
	args := m.Called(ctx, collectionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

func (m *MockCollectionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Collection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Collection), args.Error(1)
}

func (m *MockCollectionService) Update(ctx context.Context, collectionID uuid.UUID, upd services.CollectionUpdate) (*models.Collection, error) {
	args := m.Called(ctx, collectionID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Collection), args.Error(1)
}

// MockTemplateService mocks the TemplateService
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) Create(ctx context.Context, userID uuid.UUID, p services.TemplateCreate) (*models.Template, error) {
	args := m.Called(ctx, userID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateService) GetOwned(ctx context.Context, templateID, userID uuid.UUID) (*models.Template, error) {
	args := m.Called(ctx, templateID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateService) ListByUser(ctx context.Context, userID uuid.UUID, favoritesOnly bool) ([]models.Template, error) {
	args := m.Called(ctx, userID, favoritesOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Template), args.Error(1)
}

func (m *MockTemplateService) Update(ctx context.Context, templateID uuid.UUID, upd services.TemplateUpdate) (*models.Template, error) {
	args := m.Called(ctx, templateID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

// MockVariableService mocks the VariableService
type MockVariableService struct {
	mock.Mock
}

func (m *MockVariableService) Create(ctx context.Context, templateID uuid.UUID, p services.VariableCreate) (*models.Variable, error) {
	args := m.Called(ctx, templateID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Variable), args.Error(1)
}

func (m *MockVariableService) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]models.Variable, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Variable), args.Error(1)
}

func (m *MockVariableService) Update(ctx context.Context, variableID, templateID uuid.UUID, upd services.VariableUpdate) (*models.Variable, error) {
	args := m.Called(ctx, variableID, templateID, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Variable), args.Error(1)
}

func (m *MockVariableService) Delete(ctx context.Context, variableID, templateID uuid.UUID) error {
	args := m.Called(ctx, variableID, templateID)
	return args.Error(0)
}
