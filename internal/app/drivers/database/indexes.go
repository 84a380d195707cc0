package database

import (
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/exceptions"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type collectionIndexes struct {
	collection string
	models     []mongo.IndexModel
}

func clinicIndexes() []collectionIndexes {
	return []collectionIndexes{
		{
			collection: constvars.MongoCollectionOccupiedSlots,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}},
					Options: options.Index().SetUnique(true).SetName("uniq_date_time"),
				},
				{
					Keys:    bson.D{{Key: "appointmentId", Value: 1}},
					Options: options.Index().SetName("idx_appointment_id"),
				},
			},
		},
		{
			collection: constvars.MongoCollectionAppointments,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "patient", Value: 1}}, Options: options.Index().SetName("idx_patient")},
				{Keys: bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}, Options: options.Index().SetName("idx_date_time")},
			},
		},
		{
			collection: constvars.MongoCollectionUsers,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_username")},
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
			},
		},
		{
			collection: constvars.MongoCollectionPatients,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_user_id")},
				{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetName("idx_name")},
			},
		},
		{
			collection: constvars.MongoCollectionMessages,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "read", Value: 1}}, Options: options.Index().SetName("idx_recipient_read")},
				{Keys: bson.D{{Key: "sender", Value: 1}}, Options: options.Index().SetName("idx_sender")},
			},
		},
		{
			collection: constvars.MongoCollectionSessionReports,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "patient", Value: 1}, {Key: "date", Value: -1}}, Options: options.Index().SetName("idx_patient_date")},
			},
		},
		{
			collection: constvars.MongoCollectionExternalReports,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "patient", Value: 1}, {Key: "date", Value: -1}}, Options: options.Index().SetName("idx_patient_date")},
			},
		},
		{
			collection: constvars.MongoCollectionPayments,
			models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "patient", Value: 1}, {Key: "status", Value: 1}}, Options: options.Index().SetName("idx_patient_status")},
			},
		},
	}
}

// EnsureIndexes creates every index the service relies on. The unique
// (date, time) index on occupied slots is what rejects a double booking.
func EnsureIndexes(ctx context.Context, db *mongo.Database) ([]string, error) {
	var created []string
	for _, ci := range clinicIndexes() {
		names, err := db.Collection(ci.collection).Indexes().CreateMany(ctx, ci.models)
		if err != nil {
			return created, exceptions.ErrMongoDBCreateIndex(err, ci.collection)
		}
		for _, name := range names {
			created = append(created, ci.collection+"."+name)
		}
	}
	return created, nil
}
