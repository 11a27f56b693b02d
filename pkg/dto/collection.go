package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCollectionRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	IsDefault   *bool   `json:"is_default,omitempty"`
}

type UpdateCollectionRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	IsDefault   *bool   `json:"is_default,omitempty"`
}

func (r UpdateCollectionRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Icon == nil && r.IsDefault == nil
}

type CollectionResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	IsDefault   bool      `json:"is_default"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CollectionData struct {
	Collection CollectionResponse `json:"collection"`
}

type CollectionListData struct {
	Items []CollectionResponse `json:"items"`
	Total int                  `json:"total"`
}
