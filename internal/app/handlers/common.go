package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/models"
	"andes/quipu_loan_decisioning/internal/pkg/utils"
)

// statusFor maps error sentinels onto HTTP status codes. Anything not
// listed is a 500.
var statusFor = map[string]int{
	consts.ErrorApplicationNotFound.Code:   http.StatusNotFound,
	consts.ErrorAgentNotFound.Code:         http.StatusNotFound,
	consts.ErrorInvalidTransition.Code:     http.StatusConflict,
	consts.ErrorApplicationFinalized.Code:  http.StatusConflict,
	consts.ErrorDuplicateRequest.Code:      http.StatusConflict,
	consts.ErrorAlreadyDisbursed.Code:      http.StatusConflict,
	consts.ErrorInvalidState.Code:          http.StatusConflict,
	consts.ErrorAgentAtCapacity.Code:       http.StatusConflict,
	consts.ErrorNoBranchAvailable.Code:     http.StatusConflict,
	consts.ErrorInvalidStatusValue.Code:    http.StatusBadRequest,
	consts.ErrorInvalidDecisionResult.Code: http.StatusBadRequest,
	consts.ErrorCommentsTooShort.Code:      http.StatusBadRequest,
	consts.ErrorScoringMissing.Code:        http.StatusBadRequest,
	consts.ErrorMissingTenant.Code:         http.StatusBadRequest,
	consts.ErrorInvalidApplicationID.Code:  http.StatusBadRequest,
	consts.ErrorInvalidLoanTerms.Code:      http.StatusBadRequest,
	consts.ErrorInvalidAccount.Code:        http.StatusBadRequest,
	consts.ErrorApplicationNotRouted.Code:  http.StatusBadRequest,
}

func respondError(c *gin.Context, err error) {
	code := utils.GetErrorCode(err)
	status, ok := statusFor[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	message := err.Error()
	var customErr *models.CustomError
	if !errors.As(err, &customErr) {
		message = "Internal server error"
	}

	c.JSON(status, gin.H{"code": code, "message": message})
}

// tenantAndApplicationID extracts the tenant header and the application
// id path parameter shared by every endpoint.
func tenantAndApplicationID(c *gin.Context) (string, primitive.ObjectID, error) {
	tenantID := c.GetHeader(consts.TenantHeader)
	if tenantID == "" {
		return "", primitive.NilObjectID, consts.ErrorMissingTenant
	}

	applicationID, err := primitive.ObjectIDFromHex(c.Param("applicationId"))
	if err != nil {
		return "", primitive.NilObjectID, consts.ErrorInvalidApplicationID
	}

	return tenantID, applicationID, nil
}
