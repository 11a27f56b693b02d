package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mihailo/promptdeck-api/internal/database"
	"github.com/mihailo/promptdeck-api/internal/models"
)

var (
	ErrTemplateNotFound  = errors.New("template not found")
	ErrTemplateForbidden = errors.New("template belongs to another user")
)

type TemplateService struct {
	db *database.DB
}

func NewTemplateService(db *database.DB) *TemplateService {
	return &TemplateService{db: db}
}

type TemplateCreate struct {
	CollectionID *uuid.UUID
	Name         string
	Description  *string
	ModelHint    *string
	PromptBody   string
	Tags         json.RawMessage
	IsFavorite   bool
}

// Create inserts a template for userID. is_system is never set here: only
// the promote-system tool flips it.
func (s *TemplateService) Create(ctx context.Context, userID uuid.UUID, p TemplateCreate) (*models.Template, error) {
	if p.Tags == nil {
		p.Tags = json.RawMessage("[]")
	}

	var tpl models.Template
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO templates (collection_id, user_id, name, description, model_hint, prompt_body, tags, is_favorite)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, collection_id, user_id, name, description, model_hint, prompt_body, tags, is_favorite, is_system, created_at, updated_at
	`, p.CollectionID, userID, p.Name, p.Description, p.ModelHint, p.PromptBody, p.Tags, p.IsFavorite).Scan(
		&tpl.ID, &tpl.CollectionID, &tpl.UserID, &tpl.Name, &tpl.Description,
		&tpl.ModelHint, &tpl.PromptBody, &tpl.Tags, &tpl.IsFavorite,
		&tpl.IsSystem, &tpl.CreatedAt, &tpl.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// GetOwned resolves a template and checks its owner. Unlike collections, a
// template owned by someone else reports ErrTemplateForbidden rather than
// not-found; existing clients depend on the distinction.
func (s *TemplateService) GetOwned(ctx context.Context, templateID, userID uuid.UUID) (*models.Template, error) {
	var tpl models.Template
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, collection_id, user_id, name, description, model_hint, prompt_body, tags, is_favorite, is_system, created_at, updated_at
		FROM templates
		WHERE id = $1
	`, templateID).Scan(
		&tpl.ID, &tpl.CollectionID, &tpl.UserID, &tpl.Name, &tpl.Description,
		&tpl.ModelHint, &tpl.PromptBody, &tpl.Tags, &tpl.IsFavorite,
		&tpl.IsSystem, &tpl.CreatedAt, &tpl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	if tpl.UserID != userID {
		return nil, ErrTemplateForbidden
	}
	return &tpl, nil
}

func (s *TemplateService) ListByUser(ctx context.Context, userID uuid.UUID, favoritesOnly bool) ([]models.Template, error) {
	query := `
		SELECT id, collection_id, user_id, name, description, model_hint, prompt_body, tags, is_favorite, is_system, created_at, updated_at
		FROM templates
		WHERE user_id = $1`
	if favoritesOnly {
		query += ` AND is_favorite = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		var tpl models.Template
		if err := rows.Scan(
			&tpl.ID, &tpl.CollectionID, &tpl.UserID, &tpl.Name, &tpl.Description,
			&tpl.ModelHint, &tpl.PromptBody, &tpl.Tags, &tpl.IsFavorite,
			&tpl.IsSystem, &tpl.CreatedAt, &tpl.UpdatedAt,
		); err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}

// TemplateUpdate carries the fields of a partial update. ClearCollection
// detaches the template; it wins over CollectionID.
type TemplateUpdate struct {
	CollectionID    *uuid.UUID
	ClearCollection bool
	Name            *string
	Description     *string
	ModelHint       *string
	PromptBody      *string
	Tags            json.RawMessage
	IsFavorite      *bool
}

func (u TemplateUpdate) Empty() bool {
	return u.CollectionID == nil && !u.ClearCollection && u.Name == nil && u.Description == nil &&
		u.ModelHint == nil && u.PromptBody == nil && u.Tags == nil && u.IsFavorite == nil
}

func (s *TemplateService) Update(ctx context.Context, templateID uuid.UUID, upd TemplateUpdate) (*models.Template, error) {
	if upd.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	var set []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if upd.ClearCollection {
		set = append(set, "collection_id = NULL")
	} else if upd.CollectionID != nil {
		set = append(set, "collection_id = "+arg(*upd.CollectionID))
	}
	if upd.Name != nil {
		set = append(set, "name = "+arg(*upd.Name))
	}
	if upd.Description != nil {
		set = append(set, "description = "+arg(*upd.Description))
	}
	if upd.ModelHint != nil {
		set = append(set, "model_hint = "+arg(*upd.ModelHint))
	}
	if upd.PromptBody != nil {
		set = append(set, "prompt_body = "+arg(*upd.PromptBody))
	}
	if upd.Tags != nil {
		set = append(set, "tags = "+arg(upd.Tags))
	}
	if upd.IsFavorite != nil {
		set = append(set, "is_favorite = "+arg(*upd.IsFavorite))
	}
	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE templates
		SET %s
		WHERE id = %s
		RETURNING id, collection_id, user_id, name, description, model_hint, prompt_body, tags, is_favorite, is_system, created_at, updated_at
	`, strings.Join(set, ", "), arg(templateID))

	var tpl models.Template
	err := s.db.Pool.QueryRow(ctx, query, args...).Scan(
		&tpl.ID, &tpl.CollectionID, &tpl.UserID, &tpl.Name, &tpl.Description,
		&tpl.ModelHint, &tpl.PromptBody, &tpl.Tags, &tpl.IsFavorite,
		&tpl.IsSystem, &tpl.CreatedAt, &tpl.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}
	return &tpl, nil
}
