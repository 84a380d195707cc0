package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernameAndRole(ctx context.Context, username, role string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID primitive.ObjectID) error
}
