package handlers

import (
	"context"

	"github.com/google/uuid"
	"github.com/mihailo/promptdeck-api/internal/models"
	"github.com/mihailo/promptdeck-api/internal/services"
)

// CollectionServiceInterface defines the methods used by handlers from CollectionService
type CollectionServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, name string, description, icon *string, isDefault bool) (*models.Collection, error)
	GetOwned(ctx context.Context, collectionID, userID uuid.UUID) (*models.Collection, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Collection, error)
	Update(ctx context.Context, collectionID uuid.UUID, upd services.CollectionUpdate) (*models.Collection, error)
}

// TemplateServiceInterface defines the methods used by handlers from TemplateService
type TemplateServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, p services.TemplateCreate) (*models.Template, error)
	GetOwned(ctx context.Context, templateID, userID uuid.UUID) (*models.Template, error)
	ListByUser(ctx context.Context, userID uuid.UUID, favoritesOnly bool) ([]models.Template, error)
	Update(ctx context.Context, templateID uuid.UUID, upd services.TemplateUpdate) (*models.Template, error)
}

// VariableServiceInterface defines the methods used by handlers from VariableService
type VariableServiceInterface interface {
	Create(ctx context.Context, templateID uuid.UUID, p services.VariableCreate) (*models.Variable, error)
	ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]models.Variable, error)
	Update(ctx context.Context, variableID, templateID uuid.UUID, upd services.VariableUpdate) (*models.Variable, error)
	Delete(ctx context.Context, variableID, templateID uuid.UUID) error
}
