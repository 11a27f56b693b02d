package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	CollectionID *uuid.UUID      `json:"collection_id,omitempty"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	ModelHint    *string         `json:"model_hint,omitempty"`
	PromptBody   string          `json:"prompt_body"`
	Tags         json.RawMessage `json:"tags,omitempty"`
	IsFavorite   *bool           `json:"is_favorite,omitempty"`
}

type UpdateTemplateRequest struct {
	CollectionID OptionalUUID    `json:"collection_id,omitzero"`
	Name         *string         `json:"name,omitempty"`
	Description  *string         `json:"description,omitempty"`
	ModelHint    *string         `json:"model_hint,omitempty"`
	PromptBody   *string         `json:"prompt_body,omitempty"`
	Tags         json.RawMessage `json:"tags,omitempty"`
	IsFavorite   *bool           `json:"is_favorite,omitempty"`
}

func (r UpdateTemplateRequest) Empty() bool {
	return !r.CollectionID.Set && r.Name == nil && r.Description == nil &&
		r.ModelHint == nil && r.PromptBody == nil && r.Tags == nil && r.IsFavorite == nil
}

type TemplateResponse struct {
	ID           uuid.UUID       `json:"id"`
	CollectionID *uuid.UUID      `json:"collection_id,omitempty"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	ModelHint    *string         `json:"model_hint,omitempty"`
	PromptBody   string          `json:"prompt_body"`
	Tags         json.RawMessage `json:"tags"`
	IsFavorite   bool            `json:"is_favorite"`
	IsSystem     bool            `json:"is_system"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type TemplateData struct {
	Template TemplateResponse `json:"template"`
}

type TemplateListData struct {
	Items []TemplateResponse `json:"items"`
	Total int                `json:"total"`
}
