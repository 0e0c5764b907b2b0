package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/models"
	"andes/quipu_loan_decisioning/internal/pkg/services"
)

type DisbursementHandler struct {
	disbursementService services.DisbursementServiceInterface
}

func NewDisbursementHandler(disbursementService services.DisbursementServiceInterface) *DisbursementHandler {
	return &DisbursementHandler{disbursementService: disbursementService}
}

func (h *DisbursementHandler) Disburse(c *gin.Context) {
	tenantID, applicationID, err := tenantAndApplicationID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req models.DisbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountID, err := primitive.ObjectIDFromHex(req.DestinationAccountID)
	if err != nil {
		respondError(c, consts.ErrorInvalidAccount)
		return
	}

	details, err := h.disbursementService.Disburse(c.Request.Context(), tenantID, applicationID, req.RequestID, accountID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"disbursement": details})
}
