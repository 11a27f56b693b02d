package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateVariableRequest struct {
	Name         string          `json:"name"`
	Label        *string         `json:"label,omitempty"`
	Description  *string         `json:"description,omitempty"`
	InputType    *string         `json:"input_type,omitempty"`
	DefaultValue *string         `json:"default_value,omitempty"`
	Options      json.RawMessage `json:"options,omitempty"`
	OrderIndex   *int            `json:"order_index,omitempty"`
}

type UpdateVariableRequest struct {
	Name         *string         `json:"name,omitempty"`
	Label        *string         `json:"label,omitempty"`
	Description  *string         `json:"description,omitempty"`
	InputType    *string         `json:"input_type,omitempty"`
	DefaultValue *string         `json:"default_value,omitempty"`
	Options      json.RawMessage `json:"options,omitempty"`
	OrderIndex   *int            `json:"order_index,omitempty"`
}

func (r UpdateVariableRequest) Empty() bool {
	return r.Name == nil && r.Label == nil && r.Description == nil &&
		r.InputType == nil && r.DefaultValue == nil && r.Options == nil && r.OrderIndex == nil
}

type VariableResponse struct {
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

type VariableData struct {
	Variable VariableResponse `json:"variable"`
}

type VariableListData struct {
	Items []VariableResponse `json:"items"`
	Total int                `json:"total"`
}
