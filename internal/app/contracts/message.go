package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageUsecase interface {
	Send(ctx context.Context, request *requests.SendMessage) (string, error)
	Reply(ctx context.Context, request *requests.ReplyMessage) (string, error)
	ListForClient(ctx context.Context, name string) (*responses.ClientMessages, error)
	ListAll(ctx context.Context) ([]models.Message, error)
	ListByClient(ctx context.Context, name string) ([]models.Message, error)
	Edit(ctx context.Context, messageID string, request *requests.EditMessage) error
	Delete(ctx context.Context, messageID string) error
	MarkRead(ctx context.Context, messageID string) error
}

type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	FindAll(ctx context.Context) ([]models.Message, error)
	FindBySender(ctx context.Context, sender string) ([]models.Message, error)
	FindByRecipient(ctx context.Context, recipient string) ([]models.Message, error)
	FindByParticipant(ctx context.Context, name string) ([]models.Message, error)
	Update(ctx context.Context, messageID primitive.ObjectID, subject, text string) error
	MarkRead(ctx context.Context, messageID primitive.ObjectID) error
	DeleteByID(ctx context.Context, messageID primitive.ObjectID) error
	CountUnread(ctx context.Context, recipient, messageType string) (int64, error)
}
