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

type AccountRepository struct {
	repo *MongoRepository[models.Account]
}

func NewAccountRepository() *AccountRepository {
	collection := db.MDB.Database.Collection(consts.AccountsCollection)
	mrepo := NewMongoRepository[models.Account](collection)
	return &AccountRepository{repo: mrepo}
}

func (r *AccountRepository) GetAccount(ctx context.Context, tenantID string, accountID primitive.ObjectID) (*models.Account, error) {

	filter := bson.M{"_id": accountID, "tenantId": tenantID}

	account, err := r.repo.Read(ctx, filter)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// CreditBalance adds the disbursed principal to the account. Runs inside
// the disbursement transaction when the ctx carries a session.
func (r *AccountRepository) CreditBalance(ctx context.Context, tenantID string, accountID primitive.ObjectID, amount float64) error {

	filter := bson.M{"_id": accountID, "tenantId": tenantID}
	update := bson.M{
		"$inc": bson.M{"balance": amount},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	}

	_, err := r.repo.UpdateRaw(ctx, filter, update)
	if err != nil {
		logger.Error(ctx, "Accounts : Error while crediting balance %v", err)
		return fmt.Errorf("Accounts : error while crediting balance %v", err.Error())
	}
	return nil
}
