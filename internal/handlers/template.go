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

type TemplateHandler struct {
	templateService   TemplateServiceInterface
	collectionService CollectionServiceInterface
}

func NewTemplateHandler(templateService TemplateServiceInterface, collectionService CollectionServiceInterface) *TemplateHandler {
	return &TemplateHandler{
		templateService:   templateService,
		collectionService: collectionService,
	}
}

func (h *TemplateHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateTemplateRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}
	if req.PromptBody == "" {
		c.BadRequest("prompt_body is required")
		return
	}

	ctx := context.Background()

	if req.CollectionID != nil {
		if _, err := h.collectionService.GetOwned(ctx, *req.CollectionID, userID); err != nil {
			if errors.Is(err, services.ErrCollectionNotFound) {
				c.NotFound("collection not found")
				return
			}
			c.InternalServerError("failed to fetch collection")
			return
		}
	}

	isFavorite := false
	if req.IsFavorite != nil {
		isFavorite = *req.IsFavorite
	}

	tpl, err := h.templateService.Create(ctx, userID, services.TemplateCreate{
		CollectionID: req.CollectionID,
		Name:         req.Name,
		Description:  req.Description,
		ModelHint:    req.ModelHint,
		PromptBody:   req.PromptBody,
		Tags:         req.Tags,
		IsFavorite:   isFavorite,
	})
	if err != nil {
		c.InternalServerError("failed to create template")
		return
	}

	_ = c.JSON(201, dto.Success(dto.TemplateData{Template: templateResponse(tpl)}))
}

func (h *TemplateHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.BadRequest("invalid template id")
		return
	}

	var req dto.UpdateTemplateRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Empty() {
		c.BadRequest("no fields to update")
		return
	}

	ctx := context.Background()

	if _, err := h.templateService.GetOwned(ctx, templateID, userID); err != nil {
		if errors.Is(err, services.ErrTemplateForbidden) {
			c.Forbidden("template belongs to another user")
			return
		}
		if errors.Is(err, services.ErrTemplateNotFound) {
			c.NotFound("template not found")
			return
		}
		c.InternalServerError("failed to fetch template")
		return
	}

	upd := services.TemplateUpdate{
		Name:        req.Name,
		Description: req.Description,
		ModelHint:   req.ModelHint,
		PromptBody:  req.PromptBody,
		Tags:        req.Tags,
		IsFavorite:  req.IsFavorite,
	}

	// A null collection_id detaches the template; an absent one leaves it alone.
	if req.CollectionID.Set {
		if req.CollectionID.Value == nil {
			upd.ClearCollection = true
		} else {
			if _, err := h.collectionService.GetOwned(ctx, *req.CollectionID.Value, userID); err != nil {
				if errors.Is(err, services.ErrCollectionNotFound) {
					c.NotFound("collection not found")
					return
				}
				c.InternalServerError("failed to fetch collection")
				return
			}
			upd.CollectionID = req.CollectionID.Value
		}
	}

	tpl, err := h.templateService.Update(ctx, templateID, upd)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			c.NotFound("template not found")
			return
		}
		if errors.Is(err, services.ErrNoFieldsToUpdate) {
			c.BadRequest("no fields to update")
			return
		}
		c.InternalServerError("failed to update template")
		return
	}

	_ = c.JSON(200, dto.Success(dto.TemplateData{Template: templateResponse(tpl)}))
}

func (h *TemplateHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	favoritesOnly := c.QueryParam("favorites") == "true"

	templates, err := h.templateService.ListByUser(context.Background(), userID, favoritesOnly)
	if err != nil {
		c.InternalServerError("failed to list templates")
		return
	}

	items := make([]dto.TemplateResponse, len(templates))
	for i := range templates {
		items[i] = templateResponse(&templates[i])
	}

	_ = c.JSON(200, dto.Success(dto.TemplateListData{Items: items, Total: len(items)}))
}

func templateResponse(tpl *models.Template) dto.TemplateResponse {
	return dto.TemplateResponse{
		ID:           tpl.ID,
		CollectionID: tpl.CollectionID,
		Name:         tpl.Name,
		Description:  tpl.Description,
		ModelHint:    tpl.ModelHint,
		PromptBody:   tpl.PromptBody,
		Tags:         tpl.Tags,
		IsFavorite:   tpl.IsFavorite,
		IsSystem:     tpl.IsSystem,
		CreatedAt:    tpl.CreatedAt,
		UpdatedAt:    tpl.UpdatedAt,
	}
}
