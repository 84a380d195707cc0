package patients

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

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) Create(ctx context.Context, patient *models.Patient) error {
	if patient.ID.IsZero() {
		patient.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	patients := []models.Patient{}
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

func (r *PatientMongoRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *PatientMongoRepository) FindByName(ctx context.Context, name string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"name": name})
}

func (r *PatientMongoRepository) Update(ctx context.Context, patient *models.Patient) error {
	update := bson.M{"$set": bson.M{
		"name":          patient.Name,
		"email":         patient.Email,
		"contact":       patient.Contact,
		"address":       patient.Address,
		"age":           patient.Age,
		"familyContext": patient.FamilyContext,
	}}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"userId": patient.UserID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil, "patient")
	}
	return nil
}

func (r *PatientMongoRepository) DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"userId": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}
