package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marlon/enrollhub/internal/app/models"
	"github.com/marlon/enrollhub/internal/app/models/dto"
	"github.com/marlon/enrollhub/internal/pkg/apperrors"
)

// stubAdmissionService records calls and returns canned results
type stubAdmissionService struct {
	transitionResult *dto.TransitionResult
	transitionErr    error
	lastID           int64
	lastStatus       string
}

func (s *stubAdmissionService) CreateAdmission(ctx context.Context, admission *models.Admission) (int64, error) {
	return 1, nil
}

func (s *stubAdmissionService) GetAdmission(ctx context.Context, id int64) (*models.Admission, error) {
	return nil, apperrors.ErrAdmissionNotFound
}

func (s *stubAdmissionService) ListAdmissions(ctx context.Context) ([]*models.Admission, error) {
	return []*models.Admission{}, nil
}

func (s *stubAdmissionService) UpdateAdmission(ctx context.Context, admission *models.Admission) error {
	return nil
}

func (s *stubAdmissionService) DeleteAdmission(ctx context.Context, id int64) error {
	return nil
}

func (s *stubAdmissionService) Transition(ctx context.Context, id int64, targetStatus string) (*dto.TransitionResult, error) {
	s.lastID = id
	s.lastStatus = targetStatus
	if s.transitionErr != nil {
		return nil, s.transitionErr
	}
	return s.transitionResult, nil
}

func setupAdmissionRouter(svc *stubAdmissionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewAdmissionController(svc)
	router.PATCH("/api/admissions/:id/status", controller.UpdateAdmissionStatus)
	router.GET("/api/admissions/:id", controller.GetAdmissionByID)
	return router
}

func TestUpdateAdmissionStatusAccepted(t *testing.T) {
	svc := &stubAdmissionService{
		transitionResult: &dto.TransitionResult{
			Status:    models.StatusAccepted,
			StudentID: 42,
			StudentNo: "A25-0004",
		},
	}
	router := setupAdmissionRouter(svc)

	body := bytes.NewBufferString(`{"status":"accepted"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admissions/7/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), svc.lastID)
	assert.Equal(t, "accepted", svc.lastStatus)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "A25-0004", data["student_no"])
}

func TestUpdateAdmissionStatusInvalidValue(t *testing.T) {
	svc := &stubAdmissionService{transitionErr: apperrors.ErrInvalidStatus}
	router := setupAdmissionRouter(svc)

	body := bytes.NewBufferString(`{"status":"approved"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admissions/7/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeInvalidStatus, resp.Error.Code)
}

func TestUpdateAdmissionStatusMissingBody(t *testing.T) {
	svc := &stubAdmissionService{}
	router := setupAdmissionRouter(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/admissions/7/status", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	// binding catches the missing status before the service is reached
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.lastID)
}

func TestUpdateAdmissionStatusBadID(t *testing.T) {
	router := setupAdmissionRouter(&stubAdmissionService{})

	body := bytes.NewBufferString(`{"status":"accepted"}`)
	req := httptest.NewRequest(http.MethodPatch, "/api/admissions/abc/status", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAdmissionNotFound(t *testing.T) {
	router := setupAdmissionRouter(&stubAdmissionService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admissions/5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}
