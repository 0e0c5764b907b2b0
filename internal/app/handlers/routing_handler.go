package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/models"
	"andes/quipu_loan_decisioning/internal/pkg/services"
)

type RoutingHandler struct {
	routingService services.RoutingServiceInterface
}

func NewRoutingHandler(routingService services.RoutingServiceInterface) *RoutingHandler {
	return &RoutingHandler{routingService: routingService}
}

func (h *RoutingHandler) RouteApplication(c *gin.Context) {
	tenantID, applicationID, err := tenantAndApplicationID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req models.RouteApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.routingService.RouteApplication(c.Request.Context(), tenantID, applicationID, req.District, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}

func (h *RoutingHandler) ReassignAgent(c *gin.Context) {
	tenantID, applicationID, err := tenantAndApplicationID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var req models.ReassignAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	newAgentID, err := primitive.ObjectIDFromHex(req.NewAgentID)
	if err != nil {
		respondError(c, consts.ErrorAgentNotFound)
		return
	}

	application, err := h.routingService.ReassignAgent(c.Request.Context(), tenantID, applicationID, newAgentID, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"application": application})
}
