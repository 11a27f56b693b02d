package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/mihailo/promptdeck-api/internal/database"
	"github.com/mihailo/promptdeck-api/internal/models"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// CreateCollection creates a test collection owned by userID
func (f *Fixtures) CreateCollection(t *testing.T, userID uuid.UUID, opts ...CollectionOption) *models.Collection {
	t.Helper()
	f.counter++

	col := &models.Collection{
		UserID: userID,
		Name:   fmt.Sprintf("Collection %d", f.counter),
	}

	for _, opt := range opts {
		opt(col)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO collections (user_id, name, description, icon, is_default)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, description, icon, is_default, created_at, updated_at
	`, col.UserID, col.Name, col.Description, col.Icon, col.IsDefault).Scan(
		&col.ID, &col.UserID, &col.Name, &col.Description, &col.Icon,
		&col.IsDefault, &col.CreatedAt, &col.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create collection: %v", err)
	}

	return col
}

// CollectionOption configures a test collection
type CollectionOption func(*models.Collection)

func WithCollectionName(name string) CollectionOption {
	return func(col *models.Collection) {
		col.Name = name
	}
}

func WithDefault() CollectionOption {
	return func(col *models.Collection) {
		col.IsDefault = true
	}
}

// CreateTemplate creates a test template owned by userID
func (f *Fixtures) CreateTemplate(t *testing.T, userID uuid.UUID, opts ...TemplateOption) *models.Template {
	t.Helper()
	f.counter++

	tpl := &models.Template{
		UserID:     userID,
		Name:       fmt.Sprintf("Template %d", f.counter),
		PromptBody: fmt.Sprintf("Prompt body %d with {{placeholder}}", f.counter),
		Tags:       json.RawMessage(`[]`),
	}

	for _, opt := range opts {
		opt(tpl)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO templates (collection_id, user_id, name, description, model_hint, prompt_body, tags, is_favorite)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, collection_id, user_id, name, description, model_hint, prompt_body, tags, is_favorite, is_system, created_at, updated_at
	`, tpl.CollectionID, tpl.UserID, tpl.Name, tpl.Description, tpl.ModelHint, tpl.PromptBody, tpl.Tags, tpl.IsFavorite).Scan(
		&tpl.ID, &tpl.CollectionID, &tpl.UserID, &tpl.Name, &tpl.Description,
		&tpl.ModelHint, &tpl.PromptBody, &tpl.Tags, &tpl.IsFavorite,
		&tpl.IsSystem, &tpl.CreatedAt, &tpl.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create template: %v", err)
	}

	return tpl
}

// TemplateOption configures a test template
type TemplateOption func(*models.Template)

func WithTemplateName(name string) TemplateOption {
	return func(tpl *models.Template) {
		tpl.Name = name
	}
}

func WithCollection(col *models.Collection) TemplateOption {
	return func(tpl *models.Template) {
		tpl.CollectionID = &col.ID
	}
}

func WithPromptBody(body string) TemplateOption {
	return func(tpl *models.Template) {
		tpl.PromptBody = body
	}
}

func WithFavorite() TemplateOption {
	return func(tpl *models.Template) {
		tpl.IsFavorite = true
	}
}

// CreateVariable creates a test variable attached to templateID
func (f *Fixtures) CreateVariable(t *testing.T, templateID uuid.UUID, opts ...VariableOption) *models.Variable {
	t.Helper()
	f.counter++

	v := &models.Variable{
		TemplateID: templateID,
		Name:       fmt.Sprintf("variable_%d", f.counter),
	}

	for _, opt := range opts {
		opt(v)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO template_variables (template_id, name, label, description, input_type, default_value, options, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, template_id, name, label, description, input_type, default_value, options, order_index, created_at
	`, v.TemplateID, v.Name, v.Label, v.Description, v.InputType, v.DefaultValue, v.Options, v.OrderIndex).Scan(
		&v.ID, &v.TemplateID, &v.Name, &v.Label, &v.Description,
		&v.InputType, &v.DefaultValue, &v.Options, &v.OrderIndex, &v.CreatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create variable: %v", err)
	}

	return v
}

// VariableOption configures a test variable
type VariableOption func(*models.Variable)

func WithVariableName(name string) VariableOption {
	return func(v *models.Variable) {
		v.Name = name
	}
}

func WithOrderIndex(idx int) VariableOption {
	return func(v *models.Variable) {
		v.OrderIndex = &idx
	}
}
