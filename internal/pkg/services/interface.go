package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/internal/pkg/models"
)

type ApplicationStoreInterface interface {
	GetApplication(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (*models.LoanApplication, error)
	UpdateFields(ctx context.Context, tenantID string, applicationID primitive.ObjectID, fields bson.M) (bool, error)
	FinalizeDisbursement(ctx context.Context, tenantID string, applicationID primitive.ObjectID, details models.DisbursementDetails) (bool, error)
}

type TransitionStoreInterface interface {
	AppendTransition(ctx context.Context, transition models.StateTransition) error
	ListTransitions(ctx context.Context, tenantID string, applicationID primitive.ObjectID) ([]models.StateTransition, error)
}

type BranchStoreInterface interface {
	GetBranch(ctx context.Context, tenantID string, branchID primitive.ObjectID) (*models.Branch, error)
	HighestPriorityRule(ctx context.Context, tenantID, district string) (*models.RoutingRule, error)
	ActiveBranchByDistrict(ctx context.Context, tenantID, district string) (*models.Branch, error)
	AnyActiveBranch(ctx context.Context, tenantID string) (*models.Branch, error)
}

type AgentStoreInterface interface {
	GetAgent(ctx context.Context, tenantID string, agentID primitive.ObjectID) (*models.Agent, error)
	EligibleAgentsByLoad(ctx context.Context, tenantID string, branchID primitive.ObjectID) ([]models.Agent, error)
	TryAcquireSlot(ctx context.Context, tenantID string, agentID primitive.ObjectID) (bool, error)
	DecrementLoad(ctx context.Context, tenantID string, agentID primitive.ObjectID) error
}

type AccountStoreInterface interface {
	GetAccount(ctx context.Context, tenantID string, accountID primitive.ObjectID) (*models.Account, error)
	CreditBalance(ctx context.Context, tenantID string, accountID primitive.ObjectID, amount float64) error
}

type ScheduleStoreInterface interface {
	InsertEntries(ctx context.Context, entries []models.RepaymentScheduleEntry) error
}

type AccountingStoreInterface interface {
	InsertEntries(ctx context.Context, entries []models.AccountingEntry) error
}

type LedgerStoreInterface interface {
	PostTransaction(ctx context.Context, transaction models.LedgerTransaction) error
}

type DisbursementStoreInterface interface {
	FindByRequestID(ctx context.Context, requestID string) (*models.DisbursementRecord, error)
	CreateRecord(ctx context.Context, record models.DisbursementRecord) error
}

type TenantSettingsStoreInterface interface {
	GetSettings(ctx context.Context, tenantID string) (*models.TenantSettings, error)
}

type AuditPublisherInterface interface {
	PublishAuditEvent(ctx context.Context, event models.AuditEvent) error
}

type NotificationServiceInterface interface {
	NotifyApplicant(ctx context.Context, notification models.NotificationRequest) error
}

type StateMachineServiceInterface interface {
	TransitionState(ctx context.Context, tenantID string, applicationID primitive.ObjectID, newStatus models.ApplicationStatus, userID, reason string) (*models.LoanApplication, error)
	GetApplicationWithHistory(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (*models.LoanApplication, []models.StateTransition, error)
}

type RoutingServiceInterface interface {
	RouteApplication(ctx context.Context, tenantID string, applicationID primitive.ObjectID, district, userID string) (*models.LoanApplication, error)
	ReassignAgent(ctx context.Context, tenantID string, applicationID, newAgentID primitive.ObjectID, userID string) (*models.LoanApplication, error)
}

type DecisionServiceInterface interface {
	ScoreApplication(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (*models.ScoringResult, error)
	MakeAutomaticDecision(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (*models.Decision, error)
	MakeManualDecision(ctx context.Context, tenantID string, applicationID primitive.ObjectID, result models.DecisionResult, comments, userID string) (*models.Decision, error)
}

type DisbursementServiceInterface interface {
	Disburse(ctx context.Context, tenantID string, applicationID primitive.ObjectID, requestID string, accountID primitive.ObjectID, userID string) (*models.DisbursementDetails, error)
}
