package notifications

import (
	"clinic-service/internal/app/contracts"
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/constvars"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type notificationRelay struct {
	MessageRepository contracts.MessageRepository
	ProviderName      string
	Log               *zap.Logger
}

func NewNotificationRelay(messageRepository contracts.MessageRepository, providerName string, logger *zap.Logger) contracts.NotificationRelay {
	return &notificationRelay{
		MessageRepository: messageRepository,
		ProviderName:      providerName,
		Log:               logger,
	}
}

// NotifyCancellation writes the cancellation message once. The provider
// cancelling notifies the patient, anyone else notifies the provider.
func (r *notificationRelay) NotifyCancellation(ctx context.Context, appointment *models.Appointment, reason, cancelledBy string) (*models.Message, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("notificationRelay.NotifyCancellation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
		zap.String(constvars.LoggingCancelledByKey, cancelledBy),
	)

	provider := appointment.Provider
	if provider == "" {
		provider = r.ProviderName
	}

	message := &models.Message{
		Sender:         appointment.Patient,
		Recipient:      provider,
		Type:           constvars.MessageTypeClientToAdmin,
		Subject:        fmt.Sprintf(constvars.CancellationSubjectFormat, appointment.Date, appointment.Time),
		Text:           fmt.Sprintf(constvars.CancellationTextFormat, appointment.Date, appointment.Time, reason),
		Read:           false,
		IsCancellation: true,
		CreatedAt:      time.Now(),
	}
	if cancelledBy == provider {
		message.Sender = provider
		message.Recipient = appointment.Patient
		message.Type = constvars.MessageTypeAdminToClient
	}

	err := r.MessageRepository.Create(ctx, message)
	if err != nil {
		r.Log.Error("notificationRelay.NotifyCancellation error persisting message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID.Hex()),
			zap.Error(err),
		)
		return nil, err
	}

	r.Log.Info("notificationRelay.NotifyCancellation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMessageIDKey, message.ID.Hex()),
	)
	return message, nil
}
