package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"andes/quipu_loan_decisioning/internal/pkg/models"
	"andes/quipu_loan_decisioning/internal/pkg/services"
)

type ApplicationHandler struct {
	stateMachineService services.StateMachineServiceInterface
}

func NewApplicationHandler(stateMachineService services.StateMachineServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{stateMachineService: stateMachineService}
}

// GetApplication returns the application aggregate along with its full
// transition history.
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	tenantID, applicationID, err := tenantAndApplicationID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	application, history, err := h.stateMachineService.GetApplicationWithHistory(c.Request.Context(), tenantID, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"application": application,
		"history":     history,
	})
}

// TransitionStatus applies a single edge of the status graph.
func (h *ApplicationHandler) TransitionStatus(c *gin.Context) {
	tenantID, applicationID, err := tenantAndApplicationID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req models.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.stateMachineService.TransitionState(c.Request.Context(), tenantID, applicationID, models.ApplicationStatus(req.NewStatus), req.UserID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}
