package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/mihailo/promptdeck-api/internal/middleware"
	"github.com/mihailo/promptdeck-api/internal/models"
	"github.com/mihailo/promptdeck-api/internal/services"
	"github.com/mihailo/promptdeck-api/pkg/dto"
)

type CollectionHandler struct {
	collectionService CollectionServiceInterface
}

func NewCollectionHandler(collectionService CollectionServiceInterface) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func (h *CollectionHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateCollectionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	isDefault := false
	if req.IsDefault != nil {
		isDefault = *req.IsDefault
	}

	col, err := h.collectionService.Create(context.Background(), userID, req.Name, req.Description, req.Icon, isDefault)
	if err != nil {
		c.InternalServerError("failed to create collection")
		return
	}

	_ = c.JSON(201, dto.Success(dto.CollectionData{Collection: collectionResponse(col)}))
}

func (h *CollectionHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	collectionID, err := uuid.Parse(c.Param("collectionId"))
	if err != nil {
		c.BadRequest("invalid collection id")
		return
	}

	var req dto.UpdateCollectionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	// Reject before touching the store.
	if req.Empty() {
		c.BadRequest("no fields to update")
		return
	}

	ctx := context.Background()

	if _, err := h.collectionService.GetOwned(ctx, collectionID, userID); err != nil {
		if errors.Is(err, services.ErrCollectionNotFound) {
			c.NotFound("collection not found")
			return
		}
		c.InternalServerError("failed to fetch collection")
		return
	}

	col, err := h.collectionService.Update(ctx, collectionID, services.CollectionUpdate{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		IsDefault:   req.IsDefault,
	})
	if err != nil {
		if errors.Is(err, services.ErrCollectionNotFound) {
			c.NotFound("collection not found")
			return
		}
		if errors.Is(err, services.ErrNoFieldsToUpdate) {
			c.BadRequest("no fields to update")
			return
		}
		c.InternalServerError("failed to update collection")
		return
	}

	_ = c.JSON(200, dto.Success(dto.CollectionData{Collection: collectionResponse(col)}))
}

func (h *CollectionHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	collections, err := h.collectionService.ListByUser(context.Background(), userID)
	if err != nil {
		c.InternalServerError("failed to list collections")
		return
	}

	items := make([]dto.CollectionResponse, len(collections))
	for i := range collections {
		items[i] = collectionResponse(&collections[i])
	}

	_ = c.JSON(200, dto.Success(dto.CollectionListData{Items: items, Total: len(items)}))
}

func collectionResponse(col *models.Collection) dto.CollectionResponse {
	return dto.CollectionResponse{
		ID:          col.ID,
		Name:        col.Name,
		Description: col.Description,
		Icon:        col.Icon,
		IsDefault:   col.IsDefault,
		CreatedAt:   col.CreatedAt,
		UpdatedAt:   col.UpdatedAt,
	}
}
