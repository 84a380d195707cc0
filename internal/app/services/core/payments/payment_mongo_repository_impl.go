package payments

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PaymentMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentMongoRepository(db *mongo.Client, dbName string) contracts.PaymentRepository {
	return &PaymentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPayments),
	}
}

func (r *PaymentMongoRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, payment)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *PaymentMongoRepository) FindAll(ctx context.Context) ([]models.Payment, error) {
	return r.find(ctx, bson.M{})
}

func (r *PaymentMongoRepository) FindByPatient(ctx context.Context, patient string) ([]models.Payment, error) {
	return r.find(ctx, bson.M{"patient": patient})
}

func (r *PaymentMongoRepository) CountByStatus(ctx context.Context, patient, status string) (int64, error) {
	filter := bson.M{"status": status}
	if patient != "" {
		filter["patient"] = patient
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *PaymentMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Payment, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return payments, nil
}
