package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/db"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

type BranchRepository struct {
	branches *MongoRepository[models.Branch]
	rules    *MongoRepository[models.RoutingRule]
}

func NewBranchRepository() *BranchRepository {
	return &BranchRepository{
		branches: NewMongoRepository[models.Branch](db.MDB.Database.Collection(consts.BranchesCollection)),
		rules:    NewMongoRepository[models.RoutingRule](db.MDB.Database.Collection(consts.RoutingRulesCollection)),
	}
}

func (r *BranchRepository) GetBranch(ctx context.Context, tenantID string, branchID primitive.ObjectID) (*models.Branch, error) {

	filter := bson.M{"_id": branchID, "tenantId": tenantID}

	branch, err := r.branches.Read(ctx, filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}

// HighestPriorityRule returns the active routing rule matching the
// district with the highest priority, or nil when no rule matches.
func (r *BranchRepository) HighestPriorityRule(ctx context.Context, tenantID, district string) (*models.RoutingRule, error) {

	filter := bson.M{"tenantId": tenantID, "district": district, "isActive": true}

	rule, err := r.rules.ReadSorted(ctx, filter, bson.D{{Key: "priority", Value: -1}})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &rule, nil
}

// ActiveBranchByDistrict returns an active branch whose own district
// matches, or nil when there is none.
func (r *BranchRepository) ActiveBranchByDistrict(ctx context.Context, tenantID, district string) (*models.Branch, error) {

	filter := bson.M{"tenantId": tenantID, "district": district, "isActive": true}

	branch, err := r.branches.Read(ctx, filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}

// AnyActiveBranch is the last-resort fallback tier.
func (r *BranchRepository) AnyActiveBranch(ctx context.Context, tenantID string) (*models.Branch, error) {

	filter := bson.M{"tenantId": tenantID, "isActive": true}

	branch, err := r.branches.Read(ctx, filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &branch, nil
}
