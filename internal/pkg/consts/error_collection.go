package consts

import "andes/quipu_loan_decisioning/internal/pkg/models"

var (
	ErrorApplicationNotFound = &models.CustomError{
		Code:    "QUIPU_DECISIONING_APPLICATION_NOT_FOUND",
		Message: "Loan application not found",
	}
	ErrorInvalidTransition = &models.CustomError{
		Code:    "QUIPU_DECISIONING_WORKFLOW_INVALID_TRANSITION",
		Message: "Status transition not allowed",
	}
	ErrorInvalidStatusValue = &models.CustomError{
		Code:    "QUIPU_DECISIONING_VALIDATION_STATUS_VALUE_INVALID",
		Message: "Status value is not part of the application lifecycle",
	}
	ErrorApplicationFinalized = &models.CustomError{
		Code:    "QUIPU_DECISIONING_WORKFLOW_APPLICATION_FINALIZED",
		Message: "Application is disbursed and can no longer be modified",
	}
	ErrorNoBranchAvailable = &models.CustomError{
		Code:    "QUIPU_ROUTING_NO_BRANCH_AVAILABLE",
		Message: "No active branch available for routing",
	}
	ErrorAgentNotFound = &models.CustomError{
		Code:    "QUIPU_ROUTING_AGENT_NOT_FOUND",
		Message: "Agent not found",
	}
	ErrorAgentAtCapacity = &models.CustomError{
		Code:    "QUIPU_ROUTING_AGENT_AT_CAPACITY",
		Message: "Agent has reached its maximum concurrent loan count",
	}
	ErrorApplicationNotRouted = &models.CustomError{
		Code:    "QUIPU_ROUTING_APPLICATION_NOT_ROUTED",
		Message: "Application has no routing assignment to change",
	}
	ErrorInvalidDecisionResult = &models.CustomError{
		Code:    "QUIPU_DECISIONING_VALIDATION_DECISION_RESULT_INVALID",
		Message: "Decision result is not a valid outcome",
	}
	ErrorCommentsTooShort = &models.CustomError{
		Code:    "QUIPU_DECISIONING_VALIDATION_COMMENTS_TOO_SHORT",
		Message: "Rejected and observed decisions require a comment of at least 5 characters",
	}
	ErrorScoringMissing = &models.CustomError{
		Code:    "QUIPU_DECISIONING_VALIDATION_SCORING_MISSING",
		Message: "Application has no scoring result to decide on",
	}
	ErrorDuplicateRequest = &models.CustomError{
		Code:    "QUIPU_DISBURSEMENT_VALIDATION_DUPLICATE_REQUEST",
		Message: "Disbursement request id was already processed",
	}
	ErrorAlreadyDisbursed = &models.CustomError{
		Code:    "QUIPU_DISBURSEMENT_VALIDATION_ALREADY_DISBURSED",
		Message: "Loan was already disbursed",
	}
	ErrorInvalidState = &models.CustomError{
		Code:    "QUIPU_DISBURSEMENT_VALIDATION_APPLICATION_NOT_APPROVED",
		Message: "Application is not in an approved state",
	}
	ErrorInvalidAccount = &models.CustomError{
		Code:    "QUIPU_DISBURSEMENT_VALIDATION_ACCOUNT_INVALID",
		Message: "Destination account missing, inactive or owned by another applicant",
	}
	ErrorInvalidLoanTerms = &models.CustomError{
		Code:    "QUIPU_DISBURSEMENT_VALIDATION_LOAN_TERMS_INVALID",
		Message: "Loan amount and term must be present and greater than zero",
	}
	ErrorMissingTenant = &models.CustomError{
		Code:    "QUIPU_DECISIONING_VALIDATION_TENANT_MISSING",
		Message: "Tenant id header is required",
	}
	ErrorInvalidApplicationID = &models.CustomError{
		Code:    "QUIPU_DECISIONING_VALIDATION_APPLICATION_ID_INVALID",
		Message: "Application id is not a valid object id",
	}
)
