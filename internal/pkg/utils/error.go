package utils

import (
	"errors"

	"andes/quipu_loan_decisioning/internal/pkg/models"
)

func GetErrorCode(err error) string {
	var customErr *models.CustomError
	if errors.As(err, &customErr) {
		return customErr.ErrorCode()
	}
	return "QUIPU_INTERNAL_ERROR"
}
