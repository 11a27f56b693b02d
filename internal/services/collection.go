package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mihailo/promptdeck-api/internal/database"
	"github.com/mihailo/promptdeck-api/internal/models"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrNoFieldsToUpdate   = errors.New("no fields to update")
)

type CollectionService struct {
	db *database.DB
}

func NewCollectionService(db *database.DB) *CollectionService {
	return &CollectionService{db: db}
}

func (s *CollectionService) Create(ctx context.Context, userID uuid.UUID, name string, description, icon *string, isDefault bool) (*models.Collection, error) {
	var col models.Collection
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO collections (user_id, name, description, icon, is_default)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, description, icon, is_default, created_at, updated_at
	`, userID, name, description, icon, isDefault).Scan(
		&col.ID, &col.UserID, &col.Name, &col.Description, &col.Icon,
		&col.IsDefault, &col.CreatedAt, &col.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &col, nil
}

// GetOwned resolves a collection that belongs to userID. A collection owned
// by someone else is indistinguishable from one that does not exist.
func (s *CollectionService) GetOwned(ctx context.Context, collectionID, userID uuid.UUID) (*models.Collection, error) {
	var col models.Collection
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, user_id, name, description, icon, is_default, created_at, updated_at
		FROM collections
		WHERE id = $1 AND user_id = $2
	`, collectionID, userID).Scan(
		&col.ID, &col.UserID, &col.Name, &col.Description, &col.Icon,
		&col.IsDefault, &col.CreatedAt, &col.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return &col, nil
}

func (s *CollectionService) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Collection, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, user_id, name, description, icon, is_default, created_at, updated_at
		FROM collections
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var collections []models.Collection
	for rows.Next() {
		var col models.Collection
		if err := rows.Scan(
			&col.ID, &col.UserID, &col.Name, &col.Description, &col.Icon,
			&col.IsDefault, &col.CreatedAt, &col.UpdatedAt,
		); err != nil {
			return nil, err
		}
		collections = append(collections, col)
	}
	return collections, nil
}

// CollectionUpdate carries the fields of a partial update. A nil field was
// not provided by the caller and is left untouched.
type CollectionUpdate struct {
	Name        *string
	Description *string
	Icon        *string
	IsDefault   *bool
}

func (u CollectionUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Icon == nil && u.IsDefault == nil
}

func (s *CollectionService) Update(ctx context.Context, collectionID uuid.UUID, upd CollectionUpdate) (*models.Collection, error) {
	if upd.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	var set []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if upd.Name != nil {
		set = append(set, "name = "+arg(*upd.Name))
	}
	if upd.Description != nil {
		set = append(set, "description = "+arg(*upd.Description))
	}
	if upd.Icon != nil {
		set = append(set, "icon = "+arg(*upd.Icon))
	}
	if upd.IsDefault != nil {
		set = append(set, "is_default = "+arg(*upd.IsDefault))
	}
	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE collections
		SET %s
		WHERE id = %s
		RETURNING id, user_id, name, description, icon, is_default, created_at, updated_at
	`, strings.Join(set, ", "), arg(collectionID))

	var col models.Collection
	err := s.db.Pool.QueryRow(ctx, query, args...).Scan(
		&col.ID, &col.UserID, &col.Name, &col.Description, &col.Icon,
		&col.IsDefault, &col.CreatedAt, &col.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return &col, nil
}
