package database

import (
	"clinic-service/internal/pkg/exceptions"
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// MongoTransactor runs a unit of work inside a mongo session transaction.
// Repositories pick the session up from the context they receive, so every
// collection call made by fn joins the same transaction.
type MongoTransactor struct {
	Client          *mongo.Client
	UseTransactions bool
}

func NewMongoTransactor(client *mongo.Client, useTransactions bool) *MongoTransactor {
	return &MongoTransactor{
		Client:          client,
		UseTransactions: useTransactions,
	}
}

func (t *MongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.UseTransactions {
		return fn(ctx)
	}

	session, err := t.Client.StartSession()
	if err != nil {
		return exceptions.ErrMongoDBTransaction(err)
	}
	defer session.EndSession(ctx)

	txnOptions := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		return nil, fn(sessCtx)
	}, txnOptions)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) {
			return customErr
		}
		return exceptions.ErrMongoDBTransaction(err)
	}
	return nil
}
