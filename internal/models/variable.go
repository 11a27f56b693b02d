package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Variable describes a single placeholder in a template's prompt body and
// how a client should collect a value for it.
type Variable struct {
	ID           uuid.UUID       `json:"id"`
	TemplateID   uuid.UUID       `json:"template_id"`
	Name         string          `json:"name"`
	Label        *string         `json:"label,omitempty"`
	Description  *string         `json:"description,omitempty"`
	InputType    *string         `json:"input_type,omitempty"`
	DefaultValue *string         `json:"default_value,omitempty"`
	Options      json.RawMessage `json:"options,omitempty"`
	OrderIndex   *int            `json:"order_index,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
