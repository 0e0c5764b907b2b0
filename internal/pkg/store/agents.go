package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/db"
	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

type AgentRepository struct {
	repo *MongoRepository[models.Agent]
}

func NewAgentRepository() *AgentRepository {
	collection := db.MDB.Database.Collection(consts.AgentsCollection)
	mrepo := NewMongoRepository[models.Agent](collection)
	return &AgentRepository{repo: mrepo}
}

func (r *AgentRepository) GetAgent(ctx context.Context, tenantID string, agentID primitive.ObjectID) (*models.Agent, error) {

	filter := bson.M{"_id": agentID, "tenantId": tenantID}

	agent, err := r.repo.Read(ctx, filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorAgentNotFound
		}
		return nil, err
	}
	return &agent, nil
}

// EligibleAgentsByLoad returns active agents at the branch with spare
// capacity, least-loaded first.
func (r *AgentRepository) EligibleAgentsByLoad(ctx context.Context, tenantID string, branchID primitive.ObjectID) ([]models.Agent, error) {

	filter := bson.M{
		"tenantId": tenantID,
		"branchId": branchID,
		"isActive": true,
		"$expr":    bson.M{"$lt": bson.A{"$currentLoanCount", "$maxConcurrentLoans"}},
	}

	return r.repo.FindAllSorted(ctx, filter, bson.D{{Key: "currentLoanCount", Value: 1}})
}

// TryAcquireSlot increments the agent's load only while the agent is
// still active and under capacity, in a single conditional update. A
// false return means another routing call won the slot or the agent
// filled up in the meantime.
func (r *AgentRepository) TryAcquireSlot(ctx context.Context, tenantID string, agentID primitive.ObjectID) (bool, error) {

	filter := bson.M{
		"_id":      agentID,
		"tenantId": tenantID,
		"isActive": true,
		"$expr":    bson.M{"$lt": bson.A{"$currentLoanCount", "$maxConcurrentLoans"}},
	}
	update := bson.M{"$inc": bson.M{"currentLoanCount": 1}}

	result, err := r.repo.UpdateRaw(ctx, filter, update)
	if err != nil {
		logger.Error(ctx, "Agents : Error while acquiring slot %v", err)
		return false, fmt.Errorf("Agents : error while acquiring slot %v", err.Error())
	}

	return result.ModifiedCount > 0, nil
}

// IncrementLoad bumps the counter unconditionally. Reassignment applies
// it even when the target agent has been deactivated since.
func (r *AgentRepository) IncrementLoad(ctx context.Context, tenantID string, agentID primitive.ObjectID) error {

	filter := bson.M{"_id": agentID, "tenantId": tenantID}
	update := bson.M{"$inc": bson.M{"currentLoanCount": 1}}

	_, err := r.repo.UpdateRaw(ctx, filter, update)
	if err != nil {
		logger.Error(ctx, "Agents : Error while incrementing load %v", err)
		return fmt.Errorf("Agents : error while incrementing load %v", err.Error())
	}
	return nil
}

// DecrementLoad lowers the counter, clamped at zero. The counter is
// advisory, a negative value would only mislead the load balancer.
func (r *AgentRepository) DecrementLoad(ctx context.Context, tenantID string, agentID primitive.ObjectID) error {

	filter := bson.M{
		"_id":              agentID,
		"tenantId":         tenantID,
		"currentLoanCount": bson.M{"$gt": 0},
	}
	update := bson.M{"$inc": bson.M{"currentLoanCount": -1}}

	_, err := r.repo.UpdateRaw(ctx, filter, update)
	if err != nil {
		logger.Error(ctx, "Agents : Error while decrementing load %v", err)
		return fmt.Errorf("Agents : error while decrementing load %v", err.Error())
	}
	return nil
}
