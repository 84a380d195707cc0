package contracts

import (
	"clinic-service/internal/app/models"
	"context"
)

type NotificationRelay interface {
	NotifyCancellation(ctx context.Context, appointment *models.Appointment, reason, cancelledBy string) (*models.Message, error)
}

type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error
}
