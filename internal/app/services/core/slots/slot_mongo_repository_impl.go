package slots

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionOccupiedSlots),
	}
}

// Insert relies on the unique (date, time) index: the duplicate key error is
// the only signal that the slot is taken.
func (r *SlotMongoRepository) Insert(ctx context.Context, slot *models.OccupiedSlot) error {
	result, err := r.Collection.InsertOne(ctx, slot)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrSlotAlreadyOccupied(err)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	if insertedID, ok := result.InsertedID.(primitive.ObjectID); ok {
		slot.ID = insertedID
	}
	return nil
}

func (r *SlotMongoRepository) Exists(ctx context.Context, date, slotTime string) (bool, error) {
	filter := bson.M{"date": date, "time": slotTime}
	count, err := r.Collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count > 0, nil
}

func (r *SlotMongoRepository) FindOccupiedTimes(ctx context.Context, date string) ([]string, error) {
	values, err := r.Collection.Distinct(ctx, "time", bson.M{"date": date})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	times := make([]string, 0, len(values))
	for _, value := range values {
		slotTime, ok := value.(string)
		if !ok {
			return nil, exceptions.ErrMongoDBIterateDocuments(fmt.Errorf("unexpected time value %v", value))
		}
		times = append(times, slotTime)
	}
	return times, nil
}

func (r *SlotMongoRepository) DeleteByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (int64, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{"appointmentId": appointmentID})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *SlotMongoRepository) DeleteOne(ctx context.Context, appointmentID primitive.ObjectID, date, slotTime string) (int64, error) {
	filter := bson.M{
		"appointmentId": appointmentID,
		"date":          date,
		"time":          slotTime,
	}
	result, err := r.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount, nil
}

func (r *SlotMongoRepository) CountByAppointmentID(ctx context.Context, appointmentID primitive.ObjectID) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{"appointmentId": appointmentID})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
