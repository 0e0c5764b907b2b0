package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"andes/quipu_loan_decisioning/internal/pkg/models"
	"andes/quipu_loan_decisioning/internal/pkg/services"
)

type DecisionHandler struct {
	decisionService services.DecisionServiceInterface
}

func NewDecisionHandler(decisionService services.DecisionServiceInterface) *DecisionHandler {
	return &DecisionHandler{decisionService: decisionService}
}

func (h *DecisionHandler) ScoreApplication(c *gin.Context) {
	tenantID, applicationID, err := tenantAndApplicationID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.decisionService.ScoreApplication(c.Request.Context(), tenantID, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"scoring": result})
}

func (h *DecisionHandler) AutomaticDecision(c *gin.Context) {
	tenantID, applicationID, err := tenantAndApplicationID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	decision, err := h.decisionService.MakeAutomaticDecision(c.Request.Context(), tenantID, applicationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"decision": decision})
}

func (h *DecisionHandler) ManualDecision(c *gin.Context) {
	tenantID, applicationID, err := tenantAndApplicationID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req models.ManualDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision, err := h.decisionService.MakeManualDecision(c.Request.Context(), tenantID, applicationID, models.DecisionResult(req.Result), req.Comments, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"decision": decision})
}
