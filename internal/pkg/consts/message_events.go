package consts

// Notification template kinds sent to applicants.
const (
	NotificationLoanApproved  = "LOAN_APPROVED"
	NotificationLoanRejected  = "LOAN_REJECTED"
	NotificationLoanObserved  = "LOAN_OBSERVED"
	NotificationLoanDisbursed = "LOAN_DISBURSED"
)

// Audit actions published for every mutating operation.
const (
	AuditActionRouted            = "APPLICATION_ROUTED"
	AuditActionAgentReassigned   = "APPLICATION_AGENT_REASSIGNED"
	AuditActionStatusTransition  = "APPLICATION_STATUS_TRANSITION"
	AuditActionScored            = "APPLICATION_SCORED"
	AuditActionAutomaticDecision = "APPLICATION_AUTOMATIC_DECISION"
	AuditActionManualDecision    = "APPLICATION_MANUAL_DECISION"
	AuditActionDisbursed         = "APPLICATION_DISBURSED"
)

const AuditEntityLoanApplication = "LOAN_APPLICATION"
