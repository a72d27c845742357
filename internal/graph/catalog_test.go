package graph

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/project-tracker-api/internal/dto"
	"github.com/yukikurage/project-tracker-api/internal/models"
	"github.com/yukikurage/project-tracker-api/internal/repository"
	"github.com/yukikurage/project-tracker-api/internal/resolver"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestCatalog(t *testing.T) (*Catalog, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Organization{},
		&models.Project{},
		&models.Task{},
		&models.Comment{},
	)
	require.NoError(t, err)

	res := resolver.New(
		repository.NewOrganizationRepository(db),
		repository.NewProjectRepository(db),
		repository.NewTaskRepository(db),
		repository.NewCommentRepository(db),
	)
	return NewCatalog(res), db
}

func TestExecute_UnknownOperation(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	_, err := catalog.Execute("frobnicate", nil)

	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestExecute_InvalidArguments(t *testing.T) {
	catalog, _ := newTestCatalog(t)

	_, err := catalog.Execute("organization", json.RawMessage(`{"slug": 5}`))

	assert.ErrorIs(t, err, ErrInvalidArguments)
}

func TestExecute_DispatchesQuery(t *testing.T) {
	catalog, db := newTestCatalog(t)
	org := &models.Organization{Name: "Acme Corp", Slug: "acme", ContactEmail: "hello@acme.test"}
	require.NoError(t, db.Create(org).Error)

	result, err := catalog.Execute("organization", json.RawMessage(`{"slug": "acme"}`))

	require.NoError(t, err)
	found, ok := result.(*dto.OrganizationDTO)
	require.True(t, ok)
	require.NotNil(t, found)
	assert.Equal(t, "Acme Corp", found.Name)
}

func TestExecute_DispatchesMutation(t *testing.T) {
	catalog, db := newTestCatalog(t)

	result, err := catalog.Execute("createOrganization", json.RawMessage(
		`{"name": "Acme Corp", "slug": "acme", "contact_email": "hello@acme.test"}`,
	))

	require.NoError(t, err)
	payload, ok := result.(resolver.OrganizationPayload)
	require.True(t, ok)
	assert.True(t, payload.Success)

	var count int64
	require.NoError(t, db.Model(&models.Organization{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog, _ := newTestCatalog(t)

	router := gin.New()
	router.POST("/api/graph", catalog.Handler())

	body := []byte(`{"operation": "allOrganizations"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/graph", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "data")
}

func TestHandler_UnknownOperation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	catalog, _ := newTestCatalog(t)

	router := gin.New()
	router.POST("/api/graph", catalog.Handler())

	body := []byte(`{"operation": "frobnicate"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/graph", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
