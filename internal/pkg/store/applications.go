package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/db"
	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

type ApplicationRepository struct {
	repo *MongoRepository[models.LoanApplication]
}

func NewApplicationRepository() *ApplicationRepository {
	collection := db.MDB.Database.Collection(consts.LoanApplicationsCollection)
	mrepo := NewMongoRepository[models.LoanApplication](collection)
	return &ApplicationRepository{repo: mrepo}
}

func (r *ApplicationRepository) GetApplication(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (*models.LoanApplication, error) {

	filter := bson.M{"_id": applicationID, "tenantId": tenantID}

	application, err := r.repo.Read(ctx, filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, consts.ErrorApplicationNotFound
		}
		logger.Error(ctx, "Applications : Error while reading %v", err)
		return nil, err
	}

	return &application, nil
}

// UpdateFields applies a $set on the aggregate and stamps updatedAt. The
// filter excludes disbursed applications so the finalized invariant holds
// even if the caller's earlier status read is stale; it reports whether a
// document was actually matched.
func (r *ApplicationRepository) UpdateFields(ctx context.Context, tenantID string, applicationID primitive.ObjectID, fields bson.M) (bool, error) {

	filter := bson.M{
		"_id":      applicationID,
		"tenantId": tenantID,
		"status":   bson.M{"$ne": models.StatusDisbursed},
	}
	fields["updatedAt"] = time.Now().UTC()

	result, err := r.repo.UpdateRaw(ctx, filter, bson.M{"$set": fields})
	if err != nil {
		logger.Error(ctx, "Applications : Error while updating %v", err)
		return false, fmt.Errorf("Applications : error while updating %v", err.Error())
	}

	return result.MatchedCount > 0, nil
}

// FinalizeDisbursement is the single write path allowed to move an
// application into the terminal disbursed state. Meant to run inside the
// disbursement transaction.
func (r *ApplicationRepository) FinalizeDisbursement(ctx context.Context, tenantID string, applicationID primitive.ObjectID, details models.DisbursementDetails) (bool, error) {

	now := time.Now().UTC()
	filter := bson.M{
		"_id":      applicationID,
		"tenantId": tenantID,
		"status":   models.StatusApproved,
	}
	update := bson.M{"$set": bson.M{
		"status":              models.StatusDisbursed,
		"disbursementDetails": details,
		"disbursedAt":         now,
		"updatedAt":           now,
	}}

	result, err := r.repo.UpdateRaw(ctx, filter, update)
	if err != nil {
		logger.Error(ctx, "Applications : Error while finalizing disbursement %v", err)
		return false, err
	}

	return result.MatchedCount > 0, nil
}

func (r *ApplicationRepository) CreateApplication(ctx context.Context, application models.LoanApplication) error {

	_, err := r.repo.Create(ctx, application)
	if err != nil {
		logger.Error(ctx, "Applications : Error while inserting %v", err)
		return fmt.Errorf("Applications : error while inserting %v", err.Error())
	}

	return nil
}
