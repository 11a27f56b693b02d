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

var ErrVariableNotFound = errors.New("variable not found")

// VariableService manages the variables attached to a template. Ownership
// is inherited through the template; callers resolve the template first.
type VariableService struct {
	db *database.DB
}

func NewVariableService(db *database.DB) *VariableService {
	return &VariableService{db: db}
}

type VariableCreate struct {
	Name         string
	Label        *string
	Description  *string
	InputType    *string
	DefaultValue *string
	Options      json.RawMessage
	OrderIndex   *int
}

func (s *VariableService) Create(ctx context.Context, templateID uuid.UUID, p VariableCreate) (*models.Variable, error) {
	var v models.Variable
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO template_variables (template_id, name, label, description, input_type, default_value, options, order_index)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, template_id, name, label, description, input_type, default_value, options, order_index, created_at
	`, templateID, p.Name, p.Label, p.Description, p.InputType, p.DefaultValue, p.Options, p.OrderIndex).Scan(
		&v.ID, &v.TemplateID, &v.Name, &v.Label, &v.Description,
		&v.InputType, &v.DefaultValue, &v.Options, &v.OrderIndex, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *VariableService) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]models.Variable, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, template_id, name, label, description, input_type, default_value, options, order_index, created_at
		FROM template_variables
		WHERE template_id = $1
		ORDER BY order_index ASC NULLS LAST, created_at ASC
	`, templateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variables []models.Variable
	for rows.Next() {
		var v models.Variable
		if err := rows.Scan(
			&v.ID, &v.TemplateID, &v.Name, &v.Label, &v.Description,
			&v.InputType, &v.DefaultValue, &v.Options, &v.OrderIndex, &v.CreatedAt,
		); err != nil {
			return nil, err
		}
		variables = append(variables, v)
	}
	return variables, nil
}

type VariableUpdate struct {
	Name         *string
	Label        *string
	Description  *string
	InputType    *string
	DefaultValue *string
	Options      json.RawMessage
	OrderIndex   *int
}

func (u VariableUpdate) Empty() bool {
	return u.Name == nil && u.Label == nil && u.Description == nil &&
		u.InputType == nil && u.DefaultValue == nil && u.Options == nil && u.OrderIndex == nil
}

// Update patches a variable matched by both its id and its parent template.
// A mismatched pair reads as not-found.
func (s *VariableService) Update(ctx context.Context, variableID, templateID uuid.UUID, upd VariableUpdate) (*models.Variable, error) {
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
	if upd.Label != nil {
		set = append(set, "label = "+arg(*upd.Label))
	}
	if upd.Description != nil {
		set = append(set, "description = "+arg(*upd.Description))
	}
	if upd.InputType != nil {
		set = append(set, "input_type = "+arg(*upd.InputType))
	}
	if upd.DefaultValue != nil {
		set = append(set, "default_value = "+arg(*upd.DefaultValue))
	}
	if upd.Options != nil {
		set = append(set, "options = "+arg(upd.Options))
	}
	if upd.OrderIndex != nil {
		set = append(set, "order_index = "+arg(*upd.OrderIndex))
	}

	query := fmt.Sprintf(`
		UPDATE template_variables
		SET %s
		WHERE id = %s AND template_id = %s
		RETURNING id, template_id, name, label, description, input_type, default_value, options, order_index, created_at
	`, strings.Join(set, ", "), arg(variableID), arg(templateID))

	var v models.Variable
	err := s.db.Pool.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.TemplateID, &v.Name, &v.Label, &v.Description,
		&v.InputType, &v.DefaultValue, &v.Options, &v.OrderIndex, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrVariableNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (s *VariableService) Delete(ctx context.Context, variableID, templateID uuid.UUID) error {
	result, err := s.db.Pool.Exec(ctx, `
		DELETE FROM template_variables WHERE id = $1 AND template_id = $2
	`, variableID, templateID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrVariableNotFound
	}
	return nil
}
