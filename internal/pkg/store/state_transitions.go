package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/db"
	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

type StateTransitionRepository struct {
	repo *MongoRepository[models.StateTransition]
}

func NewStateTransitionRepository() *StateTransitionRepository {
	collection := db.MDB.Database.Collection(consts.StateTransitionsCollection)
	mrepo := NewMongoRepository[models.StateTransition](collection)
	return &StateTransitionRepository{repo: mrepo}
}

// AppendTransition writes one immutable log entry. There is no update or
// delete path on this collection.
func (r *StateTransitionRepository) AppendTransition(ctx context.Context, transition models.StateTransition) error {

	_, err := r.repo.Create(ctx, transition)
	if err != nil {
		logger.Error(ctx, "StateTransitions : Error while inserting %v", err)
		return fmt.Errorf("StateTransitions : error while inserting %v", err.Error())
	}

	return nil
}

func (r *StateTransitionRepository) ListTransitions(ctx context.Context, tenantID string, applicationID primitive.ObjectID) ([]models.StateTransition, error) {

	filter := bson.M{"tenantId": tenantID, "applicationId": applicationID}

	return r.repo.FindAllSorted(ctx, filter, bson.D{{Key: "timestamp", Value: 1}})
}
