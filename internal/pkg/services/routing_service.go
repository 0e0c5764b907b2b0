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

// RoutingService assigns received applications to a branch and, when
// capacity permits, to the least loaded active agent of that branch.
type RoutingService struct {
	applicationRepo ApplicationStoreInterface
	transitionRepo  TransitionStoreInterface
	branchRepo      BranchStoreInterface
	agentRepo       AgentStoreInterface
	auditPublisher  AuditPublisherInterface
}

func NewRoutingService(applicationRepo ApplicationStoreInterface, transitionRepo TransitionStoreInterface, branchRepo BranchStoreInterface, agentRepo AgentStoreInterface, auditPublisher AuditPublisherInterface) *RoutingService {
	return &RoutingService{
		applicationRepo: applicationRepo,
		transitionRepo:  transitionRepo,
		branchRepo:      branchRepo,
		agentRepo:       agentRepo,
		auditPublisher:  auditPublisher,
	}
}

func (s *RoutingService) RouteApplication(ctx context.Context, tenantID string, applicationID primitive.ObjectID, district, userID string) (*models.LoanApplication, error) {
	application, err := s.applicationRepo.GetApplication(ctx, tenantID, applicationID)
	if err != nil {
		return nil, err
	}

	if application.Status == models.StatusDisbursed {
		return nil, consts.ErrorApplicationFinalized
	}
	if !application.Status.CanTransition(models.StatusRouted) {
		return nil, consts.ErrorInvalidTransition
	}

	branch, err := s.resolveBranch(ctx, tenantID, district)
	if err != nil {
		return nil, err
	}

	agentID, err := s.pickAgent(ctx, tenantID, branch.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	routing := models.RoutingInfo{
		BranchID:   branch.ID,
		AgentID:    agentID,
		District:   district,
		AssignedAt: now,
	}

	previousStatus := application.Status
	matched, err := s.applicationRepo.UpdateFields(ctx, tenantID, applicationID, bson.M{
		"routing":   routing,
		"status":    models.StatusRouted,
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
		To:            models.StatusRouted,
		Timestamp:     now,
		UserID:        userID,
	}); err != nil {
		logger.Error(ctx, "Failed to append routing transition for application %s: %v", applicationID.Hex(), err)
	}

	event := models.AuditEvent{
		Actor:         userID,
		Action:        consts.AuditActionRouted,
		EntityType:    consts.AuditEntityLoanApplication,
		EntityID:      applicationID.Hex(),
		TenantID:      tenantID,
		After:         routing,
		CorrelationID: correlationID(ctx),
	}
	if err := s.auditPublisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish routing audit event for application %s: %v", applicationID.Hex(), err)
	}

	application.Routing = &routing
	application.Status = models.StatusRouted
	application.UpdatedAt = now
	return application, nil
}

func (s *RoutingService) ReassignAgent(ctx context.Context, tenantID string, applicationID, newAgentID primitive.ObjectID, userID string) (*models.LoanApplication, error) {
	application, err := s.applicationRepo.GetApplication(ctx, tenantID, applicationID)
	if err != nil {
		return nil, err
	}

	if application.Status == models.StatusDisbursed {
		return nil, consts.ErrorApplicationFinalized
	}
	if application.Routing == nil {
		return nil, consts.ErrorApplicationNotRouted
	}

	newAgent, err := s.agentRepo.GetAgent(ctx, tenantID, newAgentID)
	if err != nil {
		return nil, err
	}
	if !newAgent.IsActive || newAgent.BranchID != application.Routing.BranchID {
		return nil, consts.ErrorAgentNotFound
	}

	previousAgentID := application.Routing.AgentID
	if previousAgentID != nil && *previousAgentID == newAgentID {
		return application, nil
	}

	acquired, err := s.agentRepo.TryAcquireSlot(ctx, tenantID, newAgentID)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, consts.ErrorAgentAtCapacity
	}

	now := time.Now().UTC()
	matched, err := s.applicationRepo.UpdateFields(ctx, tenantID, applicationID, bson.M{
		"routing.agentId": newAgentID,
		"updatedAt":       now,
	})
	if err != nil {
		return nil, err
	}
	if !matched {
		// Roll the reserved slot back, the application was finalized
		// between the read and the write.
		if decErr := s.agentRepo.DecrementLoad(ctx, tenantID, newAgentID); decErr != nil {
			logger.Error(ctx, "Failed to release slot on agent %s: %v", newAgentID.Hex(), decErr)
		}
		return nil, consts.ErrorApplicationFinalized
	}

	if previousAgentID != nil {
		if err := s.agentRepo.DecrementLoad(ctx, tenantID, *previousAgentID); err != nil {
			logger.Error(ctx, "Failed to decrement load on previous agent %s: %v", previousAgentID.Hex(), err)
		}
	}

	before := map[string]interface{}{}
	if previousAgentID != nil {
		before["agentId"] = previousAgentID.Hex()
	}
	event := models.AuditEvent{
		Actor:         userID,
		Action:        consts.AuditActionAgentReassigned,
		EntityType:    consts.AuditEntityLoanApplication,
		EntityID:      applicationID.Hex(),
		TenantID:      tenantID,
		Before:        before,
		After:         map[string]interface{}{"agentId": newAgentID.Hex()},
		CorrelationID: correlationID(ctx),
	}
	if err := s.auditPublisher.PublishAuditEvent(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish reassignment audit event for application %s: %v", applicationID.Hex(), err)
	}

	application.Routing.AgentID = &newAgentID
	application.UpdatedAt = now
	return application, nil
}

// resolveBranch walks the three-tier resolution order: explicit routing
// rule, any active branch in the district, any active branch at all.
func (s *RoutingService) resolveBranch(ctx context.Context, tenantID, district string) (*models.Branch, error) {
	rule, err := s.branchRepo.HighestPriorityRule(ctx, tenantID, district)
	if err != nil {
		return nil, err
	}
	if rule != nil {
		branch, err := s.branchRepo.GetBranch(ctx, tenantID, rule.BranchID)
		if err == nil && branch != nil && branch.IsActive {
			return branch, nil
		}
		logger.Warn(ctx, "Routing rule %s points at missing or inactive branch %s, falling through", rule.ID.Hex(), rule.BranchID.Hex())
	}

	branch, err := s.branchRepo.ActiveBranchByDistrict(ctx, tenantID, district)
	if err != nil {
		return nil, err
	}
	if branch != nil {
		return branch, nil
	}

	branch, err = s.branchRepo.AnyActiveBranch(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, consts.ErrorNoBranchAvailable
	}
	return branch, nil
}

// pickAgent reserves a slot on the least loaded active agent with spare
// capacity. A branch with no available agent is not an error, the
// application routes to the branch unassigned.
func (s *RoutingService) pickAgent(ctx context.Context, tenantID string, branchID primitive.ObjectID) (*primitive.ObjectID, error) {
	agents, err := s.agentRepo.EligibleAgentsByLoad(ctx, tenantID, branchID)
	if err != nil {
		return nil, err
	}

	for _, agent := range agents {
		acquired, err := s.agentRepo.TryAcquireSlot(ctx, tenantID, agent.ID)
		if err != nil {
			return nil, err
		}
		if acquired {
			agentID := agent.ID
			return &agentID, nil
		}
	}

	logger.Info(ctx, "No agent with spare capacity at branch %s, routing without assignment", branchID.Hex())
	return nil, nil
}
