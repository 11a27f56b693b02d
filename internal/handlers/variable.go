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

// VariableHandler serves the variables nested under a template. Every
// operation resolves template ownership before touching variable rows.
type VariableHandler struct {
	variableService VariableServiceInterface
	templateService TemplateServiceInterface
}

func NewVariableHandler(variableService VariableServiceInterface, templateService TemplateServiceInterface) *VariableHandler {
	return &VariableHandler{
		variableService: variableService,
		templateService: templateService,
	}
}

func (h *VariableHandler) resolveTemplate(c *drift.Context, userID uuid.UUID) (uuid.UUID, bool) {
	templateID, err := uuid.Parse(c.Param("templateId"))
	if err != nil {
		c.BadRequest("invalid template id")
		return uuid.Nil, false
	}

	if _, err := h.templateService.GetOwned(context.Background(), templateID, userID); err != nil {
		if errors.Is(err, services.ErrTemplateForbidden) {
			c.Forbidden("template belongs to another user")
			return uuid.Nil, false
		}
		if errors.Is(err, services.ErrTemplateNotFound) {
			c.NotFound("template not found")
			return uuid.Nil, false
		}
		c.InternalServerError("failed to fetch template")
		return uuid.Nil, false
	}

	return templateID, true
}

func (h *VariableHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateVariableRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}

	templateID, ok := h.resolveTemplate(c, userID)
	if !ok {
		return
	}

	v, err := h.variableService.Create(context.Background(), templateID, services.VariableCreate{
		Name:         req.Name,
		Label:        req.Label,
		Description:  req.Description,
		InputType:    req.InputType,
		DefaultValue: req.DefaultValue,
		Options:      req.Options,
		OrderIndex:   req.OrderIndex,
	})
	if err != nil {
		c.InternalServerError("failed to create variable")
		return
	}

	_ = c.JSON(201, dto.Success(dto.VariableData{Variable: variableResponse(v)}))
}

func (h *VariableHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	variableID, err := uuid.Parse(c.Param("variableId"))
	if err != nil {
		c.BadRequest("invalid variable id")
		return
	}

	var req dto.UpdateVariableRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Empty() {
		c.BadRequest("no fields to update")
		return
	}

	templateID, ok := h.resolveTemplate(c, userID)
	if !ok {
		return
	}

	v, err := h.variableService.Update(context.Background(), variableID, templateID, services.VariableUpdate{
		Name:         req.Name,
		Label:        req.Label,
		Description:  req.Description,
		InputType:    req.InputType,
		DefaultValue: req.DefaultValue,
		Options:      req.Options,
		OrderIndex:   req.OrderIndex,
	})
	if err != nil {
		if errors.Is(err, services.ErrVariableNotFound) {
			c.NotFound("variable not found")
			return
		}
		if errors.Is(err, services.ErrNoFieldsToUpdate) {
			c.BadRequest("no fields to update")
			return
		}
		c.InternalServerError("failed to update variable")
		return
	}

	_ = c.JSON(200, dto.Success(dto.VariableData{Variable: variableResponse(v)}))
}

func (h *VariableHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	variableID, err := uuid.Parse(c.Param("variableId"))
	if err != nil {
		c.BadRequest("invalid variable id")
		return
	}

	templateID, ok := h.resolveTemplate(c, userID)
	if !ok {
		return
	}

	if err := h.variableService.Delete(context.Background(), variableID, templateID); err != nil {
		if errors.Is(err, services.ErrVariableNotFound) {
			c.NotFound("variable not found")
			return
		}
		c.InternalServerError("failed to delete variable")
		return
	}

	_ = c.JSON(200, dto.Envelope{Success: true})
}

func (h *VariableHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	templateID, ok := h.resolveTemplate(c, userID)
	if !ok {
		return
	}

	variables, err := h.variableService.ListByTemplate(context.Background(), templateID)
	if err != nil {
		c.InternalServerError("failed to list variables")
		return
	}

	items := make([]dto.VariableResponse, len(variables))
	for i := range variables {
		items[i] = variableResponse(&variables[i])
	}

	_ = c.JSON(200, dto.Success(dto.VariableListData{Items: items, Total: len(items)}))
}

func variableResponse(v *models.Variable) dto.VariableResponse {
	return dto.VariableResponse{
		ID:           v.ID,
		TemplateID:   v.TemplateID,
		Name:         v.Name,
		Label:        v.Label,
		Description:  v.Description,
		InputType:    v.InputType,
		DefaultValue: v.DefaultValue,
		Options:      v.Options,
		OrderIndex:   v.OrderIndex,
		CreatedAt:    v.CreatedAt,
	}
}
