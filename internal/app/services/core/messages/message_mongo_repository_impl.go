package messages

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

type MessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewMessageMongoRepository(db *mongo.Client, dbName string) contracts.MessageRepository {
	return &MessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMessages),
	}
}

func (r *MessageMongoRepository) Create(ctx context.Context, message *models.Message) error {
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, message)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *MessageMongoRepository) FindAll(ctx context.Context) ([]models.Message, error) {
	return r.find(ctx, bson.M{})
}

func (r *MessageMongoRepository) FindBySender(ctx context.Context, sender string) ([]models.Message, error) {
	return r.find(ctx, bson.M{"sender": sender})
}

func (r *MessageMongoRepository) FindByRecipient(ctx context.Context, recipient string) ([]models.Message, error) {
	return r.find(ctx, bson.M{"recipient": recipient})
}

func (r *MessageMongoRepository) FindByParticipant(ctx context.Context, name string) ([]models.Message, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"sender": name},
			{"recipient": name},
		},
	}
	return r.find(ctx, filter)
}

func (r *MessageMongoRepository) Update(ctx context.Context, messageID primitive.ObjectID, subject, text string) error {
	update := bson.M{"$set": bson.M{
		"subject":  subject,
		"text":     text,
		"editedAt": time.Now(),
	}}
	return r.updateOne(ctx, messageID, update)
}

func (r *MessageMongoRepository) MarkRead(ctx context.Context, messageID primitive.ObjectID) error {
	return r.updateOne(ctx, messageID, bson.M{"$set": bson.M{"read": true}})
}

func (r *MessageMongoRepository) DeleteByID(ctx context.Context, messageID primitive.ObjectID) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": messageID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil, "message")
	}
	return nil
}

// CountUnread counts unread messages of messageType. An empty recipient
// matches every recipient.
func (r *MessageMongoRepository) CountUnread(ctx context.Context, recipient, messageType string) (int64, error) {
	filter := bson.M{"read": false, "type": messageType}
	if recipient != "" {
		filter["recipient"] = recipient
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *MessageMongoRepository) find(ctx context.Context, filter bson.M) ([]models.Message, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}

func (r *MessageMongoRepository) updateOne(ctx context.Context, messageID primitive.ObjectID, update bson.M) error {
	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": messageID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil, "message")
	}
	return nil
}
