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

type RepaymentScheduleRepository struct {
	repo *MongoRepository[models.RepaymentScheduleEntry]
}

func NewRepaymentScheduleRepository() *RepaymentScheduleRepository {
	collection := db.MDB.Database.Collection(consts.RepaymentScheduleCollection)
	mrepo := NewMongoRepository[models.RepaymentScheduleEntry](collection)
	return &RepaymentScheduleRepository{repo: mrepo}
}

func (r *RepaymentScheduleRepository) InsertEntries(ctx context.Context, entries []models.RepaymentScheduleEntry) error {

	documents := make([]interface{}, len(entries))
	for i, entry := range entries {
		documents[i] = entry
	}

	if err := r.repo.CreateMany(ctx, documents); err != nil {
		logger.Error(ctx, "RepaymentSchedule : Error while inserting %v", err)
		return fmt.Errorf("RepaymentSchedule : error while inserting %v", err.Error())
	}
	return nil
}

func (r *RepaymentScheduleRepository) ListByApplication(ctx context.Context, tenantID string, applicationID primitive.ObjectID) ([]models.RepaymentScheduleEntry, error) {

	filter := bson.M{"tenantId": tenantID, "applicationId": applicationID}

	return r.repo.FindAllSorted(ctx, filter, bson.D{{Key: "installmentNumber", Value: 1}})
}

func (r *RepaymentScheduleRepository) CountByApplication(ctx context.Context, tenantID string, applicationID primitive.ObjectID) (int64, error) {

	filter := bson.M{"tenantId": tenantID, "applicationId": applicationID}

	return r.repo.CountDocuments(ctx, filter)
}
