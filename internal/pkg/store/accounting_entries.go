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

type AccountingEntryRepository struct {
	repo *MongoRepository[models.AccountingEntry]
}

func NewAccountingEntryRepository() *AccountingEntryRepository {
	collection := db.MDB.Database.Collection(consts.AccountingEntriesCollection)
	mrepo := NewMongoRepository[models.AccountingEntry](collection)
	return &AccountingEntryRepository{repo: mrepo}
}

func (r *AccountingEntryRepository) InsertEntries(ctx context.Context, entries []models.AccountingEntry) error {

	documents := make([]interface{}, len(entries))
	for i, entry := range entries {
		documents[i] = entry
	}

	if err := r.repo.CreateMany(ctx, documents); err != nil {
		logger.Error(ctx, "AccountingEntries : Error while inserting %v", err)
		return fmt.Errorf("AccountingEntries : error while inserting %v", err.Error())
	}
	return nil
}

func (r *AccountingEntryRepository) ListByApplication(ctx context.Context, tenantID string, applicationID primitive.ObjectID) ([]models.AccountingEntry, error) {

	filter := bson.M{"tenantId": tenantID, "applicationId": applicationID}

	return r.repo.FindAllSorted(ctx, filter, bson.D{{Key: "entryNumber", Value: 1}})
}
