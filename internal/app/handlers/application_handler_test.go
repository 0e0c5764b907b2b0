package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

type MockStateMachineService struct {
	mock.Mock
}

func (m *MockStateMachineService) TransitionState(ctx context.Context, tenantID string, applicationID primitive.ObjectID, newStatus models.ApplicationStatus, userID, reason string) (*models.LoanApplication, error) {
	args := m.Called(ctx, tenantID, applicationID, newStatus, userID, reason)
	if args.Get(0) != nil {
		return args.Get(0).(*models.LoanApplication), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStateMachineService) GetApplicationWithHistory(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (*models.LoanApplication, []models.StateTransition, error) {
	args := m.Called(ctx, tenantID, applicationID)
	if args.Get(0) != nil {
		return args.Get(0).(*models.LoanApplication), args.Get(1).([]models.StateTransition), args.Error(2)
	}
	return nil, nil, args.Error(2)
}

func setupTransitionRouter(service *MockStateMachineService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewApplicationHandler(service)
	r.GET("/applications/:applicationId", handler.GetApplication)
	r.POST("/applications/:applicationId/transitions", handler.TransitionStatus)
	return r
}

func TestTransitionStatusRequiresTenantHeader(t *testing.T) {
	r := setupTransitionRouter(new(MockStateMachineService))

	body, _ := json.Marshal(models.TransitionRequest{NewStatus: "routed", UserID: "analyst-1"})
	req := httptest.NewRequest(http.MethodPost, "/applications/"+primitive.NewObjectID().Hex()+"/transitions", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), consts.ErrorMissingTenant.Code)
}

func TestTransitionStatusRejectsMalformedID(t *testing.T) {
	r := setupTransitionRouter(new(MockStateMachineService))

	body, _ := json.Marshal(models.TransitionRequest{NewStatus: "routed", UserID: "analyst-1"})
	req := httptest.NewRequest(http.MethodPost, "/applications/not-an-id/transitions", bytes.NewReader(body))
	req.Header.Set(consts.TenantHeader, "tenant-a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), consts.ErrorInvalidApplicationID.Code)
}

func TestTransitionStatusConflictOnIllegalEdge(t *testing.T) {
	service := new(MockStateMachineService)
	service.On("TransitionState", mock.Anything, "tenant-a", mock.Anything, models.StatusApproved, "analyst-1", "").Return(nil, consts.ErrorInvalidTransition)
	r := setupTransitionRouter(service)

	body, _ := json.Marshal(models.TransitionRequest{NewStatus: "approved", UserID: "analyst-1"})
	req := httptest.NewRequest(http.MethodPost, "/applications/"+primitive.NewObjectID().Hex()+"/transitions", bytes.NewReader(body))
	req.Header.Set(consts.TenantHeader, "tenant-a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), consts.ErrorInvalidTransition.Code)
}

func TestTransitionStatusOK(t *testing.T) {
	service := new(MockStateMachineService)
	application := &models.LoanApplication{ID: primitive.NewObjectID(), TenantID: "tenant-a", Status: models.StatusRouted}
	service.On("TransitionState", mock.Anything, "tenant-a", application.ID, models.StatusRouted, "analyst-1", "assigned").Return(application, nil)
	r := setupTransitionRouter(service)

	body, _ := json.Marshal(models.TransitionRequest{NewStatus: "routed", UserID: "analyst-1", Reason: "assigned"})
	req := httptest.NewRequest(http.MethodPost, "/applications/"+application.ID.Hex()+"/transitions", bytes.NewReader(body))
	req.Header.Set(consts.TenantHeader, "tenant-a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetApplicationNotFound(t *testing.T) {
	service := new(MockStateMachineService)
	service.On("GetApplicationWithHistory", mock.Anything, "tenant-a", mock.Anything).Return(nil, nil, consts.ErrorApplicationNotFound)
	r := setupTransitionRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/applications/"+primitive.NewObjectID().Hex(), nil)
	req.Header.Set(consts.TenantHeader, "tenant-a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetApplicationIncludesHistory(t *testing.T) {
	service := new(MockStateMachineService)
	application := &models.LoanApplication{ID: primitive.NewObjectID(), TenantID: "tenant-a", Status: models.StatusRouted}
	history := []models.StateTransition{{From: models.StatusPending, To: models.StatusReceived}}
	service.On("GetApplicationWithHistory", mock.Anything, "tenant-a", application.ID).Return(application, history, nil)
	r := setupTransitionRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/applications/"+application.ID.Hex(), nil)
	req.Header.Set(consts.TenantHeader, "tenant-a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "history")
}
