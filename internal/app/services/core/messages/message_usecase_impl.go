package messages

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"clinic-service/internal/pkg/exceptions"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type messageUsecase struct {
	MessageRepository contracts.MessageRepository
	ProviderName      string
	Log               *zap.Logger
}

func NewMessageUsecase(messageRepository contracts.MessageRepository, providerName string, logger *zap.Logger) contracts.MessageUsecase {
	return &messageUsecase{
		MessageRepository: messageRepository,
		ProviderName:      providerName,
		Log:               logger,
	}
}

func (uc *messageUsecase) Send(ctx context.Context, request *requests.SendMessage) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.Send called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, request.Sender),
	)

	message := &models.Message{
		Sender:    request.Sender,
		Recipient: uc.ProviderName,
		Subject:   request.Subject,
		Text:      request.Text,
		Type:      constvars.MessageTypeClientToAdmin,
		CreatedAt: time.Now(),
	}
	err := uc.MessageRepository.Create(ctx, message)
	if err != nil {
		uc.Log.Error("messageUsecase.Send error creating message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("messageUsecase.Send succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, message.ID.Hex()),
	)
	return message.ID.Hex(), nil
}

func (uc *messageUsecase) Reply(ctx context.Context, request *requests.ReplyMessage) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.Reply called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, request.Recipient),
	)

	message := &models.Message{
		Sender:    uc.ProviderName,
		Recipient: request.Recipient,
		Subject:   request.Subject,
		Text:      request.Text,
		Type:      constvars.MessageTypeAdminToClient,
		CreatedAt: time.Now(),
	}
	err := uc.MessageRepository.Create(ctx, message)
	if err != nil {
		uc.Log.Error("messageUsecase.Reply error creating message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("messageUsecase.Reply succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, message.ID.Hex()),
	)
	return message.ID.Hex(), nil
}

func (uc *messageUsecase) ListForClient(ctx context.Context, name string) (*responses.ClientMessages, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.ListForClient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, name),
	)

	sent, err := uc.MessageRepository.FindBySender(ctx, name)
	if err != nil {
		uc.Log.Error("messageUsecase.ListForClient error fetching sent messages",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	received, err := uc.MessageRepository.FindByRecipient(ctx, name)
	if err != nil {
		uc.Log.Error("messageUsecase.ListForClient error fetching received messages",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("messageUsecase.ListForClient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(sent)+len(received)),
	)
	return &responses.ClientMessages{Sent: sent, Received: received}, nil
}

func (uc *messageUsecase) ListAll(ctx context.Context) ([]models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.ListAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	messages, err := uc.MessageRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("messageUsecase.ListAll error fetching messages",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return messages, nil
}

func (uc *messageUsecase) ListByClient(ctx context.Context, name string) ([]models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.ListByClient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientKey, name),
	)

	messages, err := uc.MessageRepository.FindByParticipant(ctx, name)
	if err != nil {
		uc.Log.Error("messageUsecase.ListByClient error fetching messages",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return messages, nil
}

func (uc *messageUsecase) Edit(ctx context.Context, messageID string, request *requests.EditMessage) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.Edit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, messageID),
	)

	objectID, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	err = uc.MessageRepository.Update(ctx, objectID, request.Subject, request.Text)
	if err != nil {
		uc.Log.Error("messageUsecase.Edit error updating message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("messageUsecase.Edit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, messageID),
	)
	return nil
}

func (uc *messageUsecase) Delete(ctx context.Context, messageID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, messageID),
	)

	objectID, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	err = uc.MessageRepository.DeleteByID(ctx, objectID)
	if err != nil {
		uc.Log.Error("messageUsecase.Delete error deleting message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *messageUsecase) MarkRead(ctx context.Context, messageID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("messageUsecase.MarkRead called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, messageID),
	)

	objectID, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	err = uc.MessageRepository.MarkRead(ctx, objectID)
	if err != nil {
		uc.Log.Error("messageUsecase.MarkRead error updating message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}
