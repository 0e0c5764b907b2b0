package store

import (
	"context"
	"fmt"

	"andes/quipu_loan_decisioning/internal/pkg/consts"
	"andes/quipu_loan_decisioning/internal/pkg/db"
	"andes/quipu_loan_decisioning/internal/pkg/logger"
	"andes/quipu_loan_decisioning/internal/pkg/models"
)

type LedgerTransactionRepository struct {
	repo *MongoRepository[models.LedgerTransaction]
}

func NewLedgerTransactionRepository() *LedgerTransactionRepository {
	collection := db.MDB.Database.Collection(consts.LedgerTransactionsCollection)
	mrepo := NewMongoRepository[models.LedgerTransaction](collection)
	return &LedgerTransactionRepository{repo: mrepo}
}

// PostTransaction appends one ledger posting. Runs inside the
// disbursement transaction when the ctx carries a session.
func (r *LedgerTransactionRepository) PostTransaction(ctx context.Context, transaction models.LedgerTransaction) error {

	_, err := r.repo.Create(ctx, transaction)
	if err != nil {
		logger.Error(ctx, "LedgerTransactions : Error while inserting %v", err)
		return fmt.Errorf("LedgerTransactions : error while inserting %v", err.Error())
	}
	return nil
}
