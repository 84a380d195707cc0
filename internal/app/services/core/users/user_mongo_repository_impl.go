package users

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (r *UserMongoRepository) Create(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.Collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrUsernameAlreadyExist(err)
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID})
}

func (r *UserMongoRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserMongoRepository) FindByUsernameAndRole(ctx context.Context, username, role string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"username": username, "role": role})
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserMongoRepository) Update(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.UpdatedAt = &now
	update := bson.M{"$set": bson.M{
		"email":     user.Email,
		"password":  user.Password,
		"name":      user.Name,
		"updatedAt": now,
	}}

	result, err := r.Collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil, "user")
	}
	return nil
}

func (r *UserMongoRepository) DeleteByID(ctx context.Context, userID primitive.ObjectID) error {
	result, err := r.Collection.DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrDocumentNotFound(nil, "user")
	}
	return nil
}

func (r *UserMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := r.Collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}
