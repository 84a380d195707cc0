package reports

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportMongoRepository struct {
	Collection *mongo.Collection
}

// NewReportMongoRepository binds a repository to one report collection.
func NewReportMongoRepository(db *mongo.Client, dbName, collectionName string) contracts.ReportRepository {
	return &ReportMongoRepository{
		Collection: db.Database(dbName).Collection(collectionName),
	}
}

func (r *ReportMongoRepository) Create(ctx context.Context, report *models.Report) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, report)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ReportMongoRepository) FindAll(ctx context.Context) ([]models.Report, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReportMongoRepository) FindByPatient(ctx context.Context, patient string) ([]models.Report, error) {
	return r.find(ctx, bson.M{"patient": patient})
}

func (r *ReportMongoRepository) Update(ctx context.Context, reportID primitive.ObjectID, reportType, content, entity string) error {
	update := bson.M{"$set": bson.M{
		"type":     reportType,
		"content":  content,
		"entity":   entity,
		"editedAt": time.Now(),
	}}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": reportID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil, "report")
	}
	return nil
}

func (r *ReportMongoRepository) DeleteByID(ctx context.Context, reportID primitive.ObjectID) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": reportID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil, "report")
	}
	return nil
}

func (r *ReportMongoRepository) CountCreatedSince(ctx context.Context, patient string, since time.Time) (int64, error) {
	filter := bson.M{
		"patient":   patient,
		"createdAt": bson.M{"$gte": since},
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *ReportMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Report, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "createdAt", Value: -1},
	})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return reports, nil
}
