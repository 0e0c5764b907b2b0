package services

import (
	"context"

	"andes/quipu_loan_decisioning/internal/app/middleware"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

// correlationID pulls the request id attached by the context middleware so
// audit events can be tied back to the originating HTTP request.
func correlationID(ctx context.Context) string {
	if details, ok := ctx.Value(middleware.LogDetailsKey).(models.RequestDetails); ok {
		return details.RequestID
	}
	return ""
}
