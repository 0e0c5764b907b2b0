package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/models"
	"andes/quipu_loan_decisioning/internal/pkg/scoring"
	"andes/quipu_loan_decisioning/internal/pkg/utils/worker"
)

// DecisionService computes risk scores and records automatic and manual
// decisions. Applicant notifications go out through the worker pool and
// never block or fail the decision itself.
type DecisionService struct {
	workerPool          *worker.WorkerPool
	applicationRepo     ApplicationStoreInterface
	transitionRepo      TransitionStoreInterface
	tenantSettingsRepo  TenantSettingsStoreInterface
	auditPublisher      AuditPublisherInterface
	notificationService NotificationServiceInterface
}

func NewDecisionService(workerPool *worker.WorkerPool, applicationRepo ApplicationStoreInterface, transitionRepo TransitionStoreInterface, tenantSettingsRepo TenantSettingsStoreInterface, auditPublisher AuditPublisherInterface, notificationService NotificationServiceInterface) *DecisionService {
	return &DecisionService{
		workerPool:          workerPool,
		applicationRepo:     applicationRepo,
		transitionRepo:      transitionRepo,
		tenantSettingsRepo:  tenantSettingsRepo,
		auditPublisher:      auditPublisher,
		notificationService: notificationService,
	}
}

// ScoreApplication runs the scoring model against the applicant snapshot
// and persists the result. Recomputation overwrites the previous result
// wholesale.
func (s *DecisionService) ScoreApplication(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (*models.ScoringResult, error) {
	application, err := s.applicationRepo.GetApplication(ctx, tenantID, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status == models.StatusDisbursed {
		return nil, consts.ErrorApplicationFinalized
	}

	settings, err := s.tenantSettingsRepo.GetSettings(ctx, tenantID)
	if err != nil {
		logger.Warn(ctx, "Failed to load tenant settings for %s, using default thresholds: %v", tenantID, err)
	}

	engine := scoring.NewEngine(scoring.ThresholdsForTenant(settings))
	result := engine.CalculateScore(application)

	matched, err := s.applicationRepo.UpdateFields(ctx, tenantID, applicationID, bson.M{
		"scoring":   result,
		"updatedAt": result.CalculatedAt,
	})
	if err != nil {
		return nil, err
	}
	if !matched {
		return nil, consts.ErrorApplicationFinalized
	}

	event := models.AuditEvent{
		Actor:         models.SystemUser,
		Action:        consts.AuditActionScored,
		EntityType:    consts.AuditEntityLoanApplication,
		EntityID:      applicationID.Hex(),
		TenantID:      tenantID,
		After:         result,
		CorrelationID: correlationID(ctx),
	}
	if err := s.auditPublisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish scoring audit event for application %s: %v", applicationID.Hex(), err)
	}

	return &result, nil
}

// MakeAutomaticDecision applies the band policy to an already scored
// application. Bands A and B advance toward human review, C parks the
// application in observation, D rejects it. No band auto-approves.
func (s *DecisionService) MakeAutomaticDecision(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (*models.Decision, error) {
	application, err := s.applicationRepo.GetApplication(ctx, tenantID, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status == models.StatusDisbursed {
		return nil, consts.ErrorApplicationFinalized
	}
	if application.Scoring == nil {
		return nil, consts.ErrorScoringMissing
	}

	band := application.Scoring.Band
	targetStatus, ok := consts.AutoDecisionStatus[band]
	if !ok {
		return nil, consts.ErrorInvalidDecisionResult
	}
	if !application.Status.CanTransition(targetStatus) {
		return nil, consts.ErrorInvalidTransition
	}

	decision := models.Decision{
		Result:      consts.AutoDecisionPolicy[band],
		DecidedBy:   models.SystemUser,
		DecidedAt:   time.Now().UTC(),
		Comments:    consts.AutoDecisionComments[band],
		IsAutomatic: true,
	}

	if err := s.applyDecision(ctx, tenantID, application, decision, targetStatus, consts.AuditActionAutomaticDecision); err != nil {
		return nil, err
	}
	return &decision, nil
}

// MakeManualDecision records a reviewer decision and drives the status to
// the matching state. Rejections and observations require a substantive
// comment.
func (s *DecisionService) MakeManualDecision(ctx context.Context, tenantID string, applicationID primitive.ObjectID, result models.DecisionResult, comments, userID string) (*models.Decision, error) {
	if result != models.DecisionApproved && result != models.DecisionRejected && result != models.DecisionObserved {
		return nil, consts.ErrorInvalidDecisionResult
	}

	comments = strings.TrimSpace(comments)
	switch result {
	case models.DecisionApproved:
		if comments == "" {
			comments = consts.DefaultApprovalComment
		}
	default:
		if len(comments) < consts.MinDecisionCommentLength {
			return nil, consts.ErrorCommentsTooShort
		}
	}

	application, err := s.applicationRepo.GetApplication(ctx, tenantID, applicationID)
	if err != nil {
		return nil, err
	}
	if application.Status == models.StatusDisbursed {
		return nil, consts.ErrorApplicationFinalized
	}
	if !consts.ManualDecisionSources[application.Status] {
		return nil, consts.ErrorInvalidTransition
	}

	// The reviewer's verdict becomes the status directly. No scoring
	// precondition either: a human may reject an unscored application.
	targetStatus := models.ApplicationStatus(result)

	decision := models.Decision{
		Result:      result,
		DecidedBy:   userID,
		DecidedAt:   time.Now().UTC(),
		Comments:    comments,
		IsAutomatic: false,
	}

	if err := s.applyDecision(ctx, tenantID, application, decision, targetStatus, consts.AuditActionManualDecision); err != nil {
		return nil, err
	}
	return &decision, nil
}

func (s *DecisionService) applyDecision(ctx context.Context, tenantID string, application *models.LoanApplication, decision models.Decision, targetStatus models.ApplicationStatus, auditAction string) error {
	previousStatus := application.Status

	matched, err := s.applicationRepo.UpdateFields(ctx, tenantID, application.ID, bson.M{
		"decision":  decision,
		"status":    targetStatus,
		"updatedAt": decision.DecidedAt,
	})
	if err != nil {
		return err
	}
	if !matched {
		return consts.ErrorApplicationFinalized
	}

	if err := s.transitionRepo.AppendTransition(ctx, models.StateTransition{
		ID:            primitive.NewObjectID(),
		TenantID:      tenantID,
		ApplicationID: application.ID,
		From:          previousStatus,
		To:            targetStatus,
		Timestamp:     decision.DecidedAt,
		UserID:        decision.DecidedBy,
		Reason:        decision.Comments,
	}); err != nil {
		logger.Error(ctx, "Failed to append decision transition for application %s: %v", application.ID.Hex(), err)
	}

	event := models.AuditEvent{
		Actor:         decision.DecidedBy,
		Action:        auditAction,
		EntityType:    consts.AuditEntityLoanApplication,
		EntityID:      application.ID.Hex(),
		TenantID:      tenantID,
		Before:        map[string]interface{}{"status": previousStatus},
		After:         decision,
		CorrelationID: correlationID(ctx),
	}
	if err := s.auditPublisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish decision audit event for application %s: %v", application.ID.Hex(), err)
	}

	s.queueDecisionNotification(application, decision)
	return nil
}

func (s *DecisionService) queueDecisionNotification(application *models.LoanApplication, decision models.Decision) {
	var templateKind string
	switch decision.Result {
	case models.DecisionApproved:
		templateKind = consts.NotificationLoanApproved
	case models.DecisionRejected:
		templateKind = consts.NotificationLoanRejected
	case models.DecisionObserved:
		templateKind = consts.NotificationLoanObserved
	default:
		return
	}

	notification := models.NotificationRequest{
		RecipientEmail: application.Applicant.Email,
		RecipientName:  application.Applicant.FullName,
		TemplateKind:   templateKind,
		TemplateData: map[string]string{
			"applicationId": application.ID.Hex(),
			"loanAmount":    fmt.Sprintf("%.2f", application.LoanAmount),
			"comments":      decision.Comments,
		},
	}

	s.workerPool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.notificationService.NotifyApplicant(ctx, notification); err != nil {
			logger.Error("Failed to notify applicant %s about %s: %v", notification.RecipientEmail, templateKind, err)
		}
	})
}
