package appointments

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

func (r *AppointmentMongoRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	_, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error) {
	var appointment models.Appointment
	err := r.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByPatient(ctx context.Context, patient string) ([]models.Appointment, error) {
	sort := bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}}
	return r.find(ctx, bson.M{"patient": patient}, sort)
}

func (r *AppointmentMongoRepository) FindByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.find(ctx, bson.M{"date": date}, bson.D{{Key: "time", Value: 1}})
}

func (r *AppointmentMongoRepository) UpdateSlot(ctx context.Context, appointmentID primitive.ObjectID, date, slotTime string) error {
	update := bson.M{"$set": bson.M{
		"date":      date,
		"time":      slotTime,
		"updatedAt": time.Now(),
	}}
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": appointmentID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": appointmentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrAppointmentNotFound(nil)
	}
	return nil
}

func (r *AppointmentMongoRepository) CountByDateAndStatus(ctx context.Context, date, status string) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"date": date, "status": status})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *AppointmentMongoRepository) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Appointment, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := []models.Appointment{}
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}
