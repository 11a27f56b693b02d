package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Template struct {
	ID           uuid.UUID       `json:"id"`
	CollectionID *uuid.UUID      `json:"collection_id,omitempty"`
	UserID       uuid.UUID       `json:"user_id"`
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
