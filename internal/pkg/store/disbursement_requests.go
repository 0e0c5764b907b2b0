package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/db"
	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

type DisbursementRequestRepository struct {
	repo *MongoRepository[models.DisbursementRecord]
}

func NewDisbursementRequestRepository() *DisbursementRequestRepository {
	collection := db.MDB.Database.Collection(consts.DisbursementRequestsCollection)
	mrepo := NewMongoRepository[models.DisbursementRecord](collection)
	return &DisbursementRequestRepository{repo: mrepo}
}

// FindByRequestID reads the durable idempotency record. The Redis hint
// is only ever a fast path, this read is the source of truth.
func (r *DisbursementRequestRepository) FindByRequestID(ctx context.Context, requestID string) (*models.DisbursementRecord, error) {

	filter := bson.M{"requestId": requestID}

	record, err := r.repo.Read(ctx, filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		logger.Error(ctx, "DisbursementRequests : Error while reading %v", err)
		return nil, err
	}
	return &record, nil
}

// CreateRecord persists the idempotency marker. Runs inside the
// disbursement transaction when the ctx carries a session.
func (r *DisbursementRequestRepository) CreateRecord(ctx context.Context, record models.DisbursementRecord) error {

	_, err := r.repo.Create(ctx, record)
	if err != nil {
		logger.Error(ctx, "DisbursementRequests : Error while inserting %v", err)
		return fmt.Errorf("DisbursementRequests : error while inserting %v", err.Error())
	}
	return nil
}
