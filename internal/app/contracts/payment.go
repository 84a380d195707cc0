package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"context"
)

type PaymentUsecase interface {
	Create(ctx context.Context, request *requests.CreatePayment) (string, error)
	ListAll(ctx context.Context) ([]models.Payment, error)
	ListByPatient(ctx context.Context, patient string) ([]models.Payment, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindAll(ctx context.Context) ([]models.Payment, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Payment, error)
	// CountByStatus counts every patient's payments when patient is empty.
	CountByStatus(ctx context.Context, patient, status string) (int64, error)
}
