package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	driftmw "github.com/m1z23r/drift/pkg/middleware"
	"github.com/mihailo/promptdeck-api/internal/middleware"
	"github.com/mihailo/promptdeck-api/internal/models"
	"github.com/mihailo/promptdeck-api/internal/services"
	"github.com/mihailo/promptdeck-api/pkg/dto"
	"github.com/mihailo/promptdeck-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTemplateTest(t *testing.T) (*testutil.MockTemplateService, *testutil.MockCollectionService, *TemplateHandler, *services.JWTService) {
	t.Helper()
	mockTemplateService := new(testutil.MockTemplateService)
	mockCollectionService := new(testutil.MockCollectionService)
	handler := NewTemplateHandler(mockTemplateService, mockCollectionService)
	jwtSvc := services.NewJWTService("test-secret-key", 15*time.Minute)
	return mockTemplateService, mockCollectionService, handler, jwtSvc
}

func TestTemplateHandler_Create_Success(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	template := &models.Template{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "Explain",
		PromptBody: "Explain {{topic}}",
		Tags:       json.RawMessage(`[]`),
	}

	mockTemplateService.On("Create", mock.Anything, userID, mock.Anything).Return(template, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/templates", handler.Create)

	body, _ := json.Marshal(dto.CreateTemplateRequest{Name: "Explain", PromptBody: "Explain {{topic}}"})
	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodPost, "/templates", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var response struct {
		Success bool             `json:"success"`
		Data    dto.TemplateData `json:"data"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Equal(t, template.ID, response.Data.Template.ID)
	assert.False(t, response.Data.Template.IsSystem)

	mockTemplateService.AssertExpectations(t)
}

func TestTemplateHandler_Create_MissingPromptBody(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/templates", handler.Create)

	body, _ := json.Marshal(dto.CreateTemplateRequest{Name: "Explain"})
	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodPost, "/templates", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "prompt_body is required")

	mockTemplateService.AssertNotCalled(t, "Create")
}

// A collection owned by someone else resolves as not-found and nothing is inserted.
func TestTemplateHandler_Create_ForeignCollection(t *testing.T) {
	mockTemplateService, mockCollectionService, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	collectionID := uuid.New()

	mockCollectionService.On("GetOwned", mock.Anything, collectionID, userID).Return(nil, services.ErrCollectionNotFound)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Post("/templates", handler.Create)

	body, _ := json.Marshal(dto.CreateTemplateRequest{
		Name:         "Explain",
		PromptBody:   "Explain {{topic}}",
		CollectionID: &collectionID,
	})
	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodPost, "/templates", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "collection not found")

	mockTemplateService.AssertNotCalled(t, "Create")
	mockCollectionService.AssertExpectations(t)
}

func TestTemplateHandler_Update_Success(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()
	name := "Explain better"
	existing := &models.Template{ID: templateID, UserID: userID, Name: "Explain", Tags: json.RawMessage(`[]`)}
	updated := &models.Template{ID: templateID, UserID: userID, Name: name, Tags: json.RawMessage(`[]`)}

	mockTemplateService.On("GetOwned", mock.Anything, templateID, userID).Return(existing, nil)
	mockTemplateService.On("Update", mock.Anything, templateID, services.TemplateUpdate{Name: &name}).Return(updated, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/templates/:templateId", handler.Update)

	body, _ := json.Marshal(dto.UpdateTemplateRequest{Name: &name})
	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodPatch, "/templates/"+templateID.String(), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Success bool             `json:"success"`
		Data    dto.TemplateData `json:"data"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, name, response.Data.Template.Name)

	mockTemplateService.AssertExpectations(t)
}

// An explicit null collection_id detaches the template; no collection lookup runs.
func TestTemplateHandler_Update_DetachCollection(t *testing.T) {
	mockTemplateService, mockCollectionService, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()
	collectionID := uuid.New()
	existing := &models.Template{ID: templateID, UserID: userID, CollectionID: &collectionID, Name: "Explain", Tags: json.RawMessage(`[]`)}
	detached := &models.Template{ID: templateID, UserID: userID, Name: "Explain", Tags: json.RawMessage(`[]`)}

	mockTemplateService.On("GetOwned", mock.Anything, templateID, userID).Return(existing, nil)
	mockTemplateService.On("Update", mock.Anything, templateID, services.TemplateUpdate{ClearCollection: true}).Return(detached, nil)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/templates/:templateId", handler.Update)

	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodPatch, "/templates/"+templateID.String(), bytes.NewReader([]byte(`{"collection_id":null}`)))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Success bool             `json:"success"`
		Data    dto.TemplateData `json:"data"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Nil(t, response.Data.Template.CollectionID)

	mockCollectionService.AssertNotCalled(t, "GetOwned")
	mockTemplateService.AssertExpectations(t)
}

// A store failure during ownership resolution is a 500, not a 404.
func TestTemplateHandler_Update_StoreUnavailable(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()
	name := "x"

	mockTemplateService.On("GetOwned", mock.Anything, templateID, userID).Return(nil, errors.New("connection refused"))

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/templates/:templateId", handler.Update)

	body, _ := json.Marshal(dto.UpdateTemplateRequest{Name: &name})
	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodPatch, "/templates/"+templateID.String(), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to fetch template")

	mockTemplateService.AssertNotCalled(t, "Update")
}

// Another user's template is distinguishable from a missing one: 403, not 404.
func TestTemplateHandler_Update_Forbidden(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()
	name := "x"

	mockTemplateService.On("GetOwned", mock.Anything, templateID, userID).Return(nil, services.ErrTemplateForbidden)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/templates/:templateId", handler.Update)

	body, _ := json.Marshal(dto.UpdateTemplateRequest{Name: &name})
	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodPatch, "/templates/"+templateID.String(), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "template belongs to another user")

	mockTemplateService.AssertNotCalled(t, "Update")
}

func TestTemplateHandler_Update_NotFound(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()
	name := "x"

	mockTemplateService.On("GetOwned", mock.Anything, templateID, userID).Return(nil, services.ErrTemplateNotFound)

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/templates/:templateId", handler.Update)

	body, _ := json.Marshal(dto.UpdateTemplateRequest{Name: &name})
	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodPatch, "/templates/"+templateID.String(), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "template not found")
}

func TestTemplateHandler_Update_NoFields(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templateID := uuid.New()

	app := drift.New()
	app.Use(driftmw.BodyParser())
	app.Use(middleware.Auth(jwtSvc))
	app.Patch("/templates/:templateId", handler.Update)

	body, _ := json.Marshal(dto.UpdateTemplateRequest{})
	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodPatch, "/templates/"+templateID.String(), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "no fields to update")

	mockTemplateService.AssertNotCalled(t, "GetOwned")
	mockTemplateService.AssertNotCalled(t, "Update")
}

func TestTemplateHandler_List_Success(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templates := []models.Template{
		{ID: uuid.New(), UserID: userID, Name: "A", Tags: json.RawMessage(`[]`)},
		{ID: uuid.New(), UserID: userID, Name: "B", Tags: json.RawMessage(`[]`)},
	}

	mockTemplateService.On("ListByUser", mock.Anything, userID, false).Return(templates, nil)

	app := drift.New()
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/templates", handler.List)

	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Success bool                 `json:"success"`
		Data    dto.TemplateListData `json:"data"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Len(t, response.Data.Items, 2)
	assert.Equal(t, 2, response.Data.Total)

	mockTemplateService.AssertExpectations(t)
}

func TestTemplateHandler_List_FavoritesOnly(t *testing.T) {
	mockTemplateService, _, handler, jwtSvc := setupTemplateTest(t)

	userID := uuid.New()
	templates := []models.Template{
		{ID: uuid.New(), UserID: userID, Name: "B", IsFavorite: true, Tags: json.RawMessage(`[]`)},
	}

	mockTemplateService.On("ListByUser", mock.Anything, userID, true).Return(templates, nil)

	app := drift.New()
	app.Use(middleware.Auth(jwtSvc))
	app.Get("/templates", handler.List)

	token := generateTestToken(t, jwtSvc, userID, "test@example.com")
	req := httptest.NewRequest(http.MethodGet, "/templates?favorites=true", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Success bool                 `json:"success"`
		Data    dto.TemplateListData `json:"data"`
	}
	err := json.Unmarshal(rec.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Len(t, response.Data.Items, 1)
	assert.True(t, response.Data.Items[0].IsFavorite)

	mockTemplateService.AssertExpectations(t)
}
