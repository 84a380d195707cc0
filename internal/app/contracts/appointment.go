package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AppointmentUsecase interface {
	ListAvailable(ctx context.Context, date string) ([]string, error)
	Create(ctx context.Context, request *requests.CreateAppointment) (string, error)
	Reschedule(ctx context.Context, appointmentID string, request *requests.RescheduleAppointment) error
	Cancel(ctx context.Context, appointmentID string, request *requests.CancelAppointment) (*models.Message, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Appointment, error)
	ExportCalendar(ctx context.Context, patient string) ([]byte, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	FindByID(ctx context.Context, appointmentID primitive.ObjectID) (*models.Appointment, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Appointment, error)
	FindByDate(ctx context.Context, date string) ([]models.Appointment, error)
	UpdateSlot(ctx context.Context, appointmentID primitive.ObjectID, date, slotTime string) error
	DeleteByID(ctx context.Context, appointmentID primitive.ObjectID) error
	CountByDateAndStatus(ctx context.Context, date, status string) (int64, error)
}
