package contracts

import (
	"clinic-service/internal/app/models"
	"clinic-service/internal/pkg/dto/requests"
	"clinic-service/internal/pkg/dto/responses"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReportUsecase interface {
	Create(ctx context.Context, request *requests.CreateReport) (string, error)
	ListAll(ctx context.Context) (*responses.Reports, error)
	ListByPatient(ctx context.Context, patient string) (*responses.Reports, error)
	Update(ctx context.Context, reportID string, request *requests.UpdateReport) error
	Delete(ctx context.Context, reportID, reportType string) error
}

// ReportRepository stores reports of one kind. Normal session reports and
// external reports each get their own instance.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	FindAll(ctx context.Context) ([]models.Report, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Report, error)
	Update(ctx context.Context, reportID primitive.ObjectID, reportType, content, entity string) error
	DeleteByID(ctx context.Context, reportID primitive.ObjectID) error
	CountCreatedSince(ctx context.Context, patient string, since time.Time) (int64, error)
}
