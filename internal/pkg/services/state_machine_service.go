package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

// StateMachineService owns the generic status transition path. Every edge
// it applies is validated against models.AllowedTransitions and recorded
// in the append-only transition log.
type StateMachineService struct {
	applicationRepo ApplicationStoreInterface
	transitionRepo  TransitionStoreInterface
	auditPublisher  AuditPublisherInterface
}

func NewStateMachineService(applicationRepo ApplicationStoreInterface, transitionRepo TransitionStoreInterface, auditPublisher AuditPublisherInterface) *StateMachineService {
	return &StateMachineService{
		applicationRepo: applicationRepo,
		transitionRepo:  transitionRepo,
		auditPublisher:  auditPublisher,
	}
}

func (s *StateMachineService) TransitionState(ctx context.Context, tenantID string, applicationID primitive.ObjectID, newStatus models.ApplicationStatus, userID, reason string) (*models.LoanApplication, error) {
	if !newStatus.IsValid() {
		return nil, consts.ErrorInvalidStatusValue
	}

	application, err := s.applicationRepo.GetApplication(ctx, tenantID, applicationID)
	if err != nil {
		return nil, err
	}

	if application.Status == models.StatusDisbursed {
		return nil, consts.ErrorApplicationFinalized
	}
	if !application.Status.CanTransition(newStatus) {
		logger.Info(ctx, "Transition %s -> %s rejected for application %s", application.Status, newStatus, applicationID.Hex())
		return nil, consts.ErrorInvalidTransition
	}

	previousStatus := application.Status
	now := time.Now().UTC()

	matched, err := s.applicationRepo.UpdateFields(ctx, tenantID, applicationID, bson.M{
		"status":    newStatus,
		"updatedAt": now,
	})
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, consts.ErrorApplicationFinalized
	}

	if err := s.transitionRepo.AppendTransition(ctx, models.StateTransition{
		ID:            primitive.NewObjectID(),
		TenantID:      tenantID,
		ApplicationID: applicationID,
		From:          previousStatus,
		To:            newStatus,
		Timestamp:     now,
		UserID:        userID,
		Reason:        reason,
	}); err != nil {
		logger.Error(ctx, "Failed to append transition %s -> %s for application %s: %v", previousStatus, newStatus, applicationID.Hex(), err)
	}

	s.publishAudit(ctx, tenantID, applicationID, userID, previousStatus, newStatus, reason)

	application.Status = newStatus
	application.UpdatedAt = now
	return application, nil
}

func (s *StateMachineService) GetApplicationWithHistory(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (*models.LoanApplication, []models.StateTransition, error) {
	application, err := s.applicationRepo.GetApplication(ctx, tenantID, applicationID)
	if err != nil {
		return nil, nil, err
	}
	history, err := s.transitionRepo.ListTransitions(ctx, tenantID, applicationID)
	if err != nil {
		return nil, nil, err
	}
	return application, history, nil
}

func (s *StateMachineService) publishAudit(ctx context.Context, tenantID string, applicationID primitive.ObjectID, userID string, from, to models.ApplicationStatus, reason string) {
	event := models.AuditEvent{
		Actor:      userID,
		Action:     consts.AuditActionStatusTransition,
		EntityType: consts.AuditEntityLoanApplication,
		EntityID:   applicationID.Hex(),
		TenantID:   tenantID,
		Before:     map[string]interface{}{"status": from},
		After:      map[string]interface{}{"status": to, "reason": reason},
		CorrelationID: correlationID(ctx),
	}
	if err := s.auditPublisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish audit event for application %s: %v", applicationID.Hex(), err)
	}
}
