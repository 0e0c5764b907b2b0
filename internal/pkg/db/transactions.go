package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner groups a set of writes into one atomic unit. Repositories
// join the transaction through the session-bearing context.
type TxRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// RunInTransaction executes fn inside a Mongo multi-document transaction.
func (mdb *MongoDB) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := mdb.Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
